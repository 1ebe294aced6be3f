package sampleResolver

import (
	"sort"
)

// Sample forward and reverse files of one sample, in concatenation order
type Sample struct {
	ID      SampleID
	Forward []RawFile
	Reverse []RawFile
}

// SamplePlan SampleID -> Sample, built once by BuildPlan
type SamplePlan struct {
	Samples map[SampleID]*Sample

	// file names whose SampleID fell back to the whole name
	Passthrough []string
}

// IDs sorted SampleIDs
func (plan SamplePlan) IDs() []SampleID {
	var ids = make([]SampleID, 0, len(plan.Samples))
	for id := range plan.Samples {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// IDStrings sorted SampleIDs as strings
func (plan SamplePlan) IDStrings() []string {
	var ids = plan.IDs()
	var s = make([]string, len(ids))
	for i, id := range ids {
		s[i] = string(id)
	}
	return s
}

func sortRawFiles(files []RawFile) {
	sort.Slice(files, func(i, j int) bool {
		if files[i].Name != files[j].Name {
			return files[i].Name < files[j].Name
		}
		return files[i].FullPath < files[j].FullPath
	})
}

// BuildPlan groups files by SampleID and classifies each file into forward or reverse.
// The first file that can not be classified aborts with *ClassificationError.
func BuildPlan(files []RawFile, nc NamingConvention) (SamplePlan, error) {
	if err := nc.Check(); err != nil {
		return SamplePlan{}, err
	}

	var sorted = append([]RawFile(nil), files...)
	sortRawFiles(sorted)

	var sampleID func(string) (SampleID, bool)
	switch nc.mode() {
	case ModePrefix:
		var delimiter = nc.Delimiter
		if delimiter == "" {
			delimiter = DefaultDelimiter
		}
		sampleID = func(name string) (SampleID, bool) {
			return ExtractSampleID(name, delimiter)
		}
	default:
		sampleID = NewSuffixStripper(nc.suffixes()).Strip
	}

	var plan = SamplePlan{Samples: make(map[SampleID]*Sample)}
	for _, f := range sorted {
		id, ok := sampleID(f.Name)
		if !ok {
			plan.Passthrough = append(plan.Passthrough, f.Name)
		}

		direction, err := ClassifyFile(f.Name, nc.Style, nc.Strict)
		if err != nil {
			return SamplePlan{}, err
		}

		var sample, exists = plan.Samples[id]
		if !exists {
			sample = &Sample{ID: id}
			plan.Samples[id] = sample
		}
		switch direction {
		case Forward:
			sample.Forward = append(sample.Forward, f)
		case Reverse:
			sample.Reverse = append(sample.Reverse, f)
		}
	}
	return plan, nil
}

// ValidationResult outcome of ValidatePlan
type ValidationResult struct {
	Pass       bool
	Violations []SampleID
}

// Err nil when passed, else *PlanInconsistencyError
func (r ValidationResult) Err() error {
	if r.Pass {
		return nil
	}
	return &PlanInconsistencyError{Samples: r.Violations}
}

// ValidatePlan reports samples with an empty forward or reverse list
func ValidatePlan(plan SamplePlan) ValidationResult {
	var result = ValidationResult{Pass: true}
	for _, id := range plan.IDs() {
		var sample = plan.Samples[id]
		if len(sample.Forward) == 0 || len(sample.Reverse) == 0 {
			result.Violations = append(result.Violations, id)
		}
	}
	result.Pass = len(result.Violations) == 0
	return result
}
