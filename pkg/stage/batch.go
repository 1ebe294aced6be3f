package stage

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"FastqMe/pkg/sampleResolver"
)

// Batch one staging run: resolve samples, merge, summarize, write config
type Batch struct {
	DataDir    string
	OutputDir  string
	ConfigPath string
	Genome     string

	Convention sampleResolver.NamingConvention

	SameDir bool
	Merge   bool
	Count   bool
	Plot    bool

	Files      []sampleResolver.RawFile
	Plan       sampleResolver.SamplePlan
	Validation sampleResolver.ValidationResult
	Merged     []MergedSample
}

// Resolve discovers raw files and builds and validates the sample plan
func (batch *Batch) Resolve() (err error) {
	batch.Files, err = sampleResolver.Discover(batch.DataDir, batch.Convention.Extensions)
	if err != nil {
		return err
	}
	slog.Info("Discover", "dir", batch.DataDir, "files", len(batch.Files))
	if len(batch.Files) == 0 {
		return fmt.Errorf("no fastq files found under %s", batch.DataDir)
	}
	if batch.SameDir {
		if err = sampleResolver.SingleDirectory(batch.Files); err != nil {
			return err
		}
	}
	batch.Plan, err = sampleResolver.BuildPlan(batch.Files, batch.Convention)
	if err != nil {
		return err
	}
	for _, name := range batch.Plan.Passthrough {
		slog.Warn("no known pair suffix or delimiter, whole file name used as sample id", "file", name)
	}
	batch.Validation = sampleResolver.ValidatePlan(batch.Plan)
	return nil
}

// MergeFastq concatenates per-sample files. Without Merge only sizes are collected.
func (batch *Batch) MergeFastq() (err error) {
	if !batch.Merge {
		batch.Merged, err = SummaryOnly(batch.Plan, batch.OutputDir)
		return err
	}
	var now = time.Now()
	batch.Merged, err = MergePlan(batch.Plan, batch.OutputDir)
	if err != nil {
		return err
	}
	slog.Info("MergePlan", "samples", len(batch.Merged), "time", time.Since(now))
	if batch.Count {
		if err = CountMerged(batch.Merged); err != nil {
			return err
		}
	}
	return nil
}

// SummaryPrefix <OutputDir>/samples
func (batch *Batch) SummaryPrefix() string {
	return filepath.Join(batch.OutputDir, "samples")
}

// Summary writes samples.xlsx and, with Plot, samples.html and samples.png into OutputDir
func (batch *Batch) Summary() error {
	if !batch.Merge {
		// nothing written into OutputDir without merge
		return nil
	}
	var prefix = batch.SummaryPrefix()
	if err := WriteSummaryXlsx(prefix+".xlsx", batch.Merged); err != nil {
		return err
	}
	if batch.Plot && len(batch.Merged) > 0 {
		if err := PlotSummaryHTML(prefix+".html", batch.Merged); err != nil {
			return err
		}
		if err := PlotSummaryPNG(prefix+".png", batch.Merged); err != nil {
			return err
		}
	}
	return nil
}

// SequenceData merged output directory, or the raw directory when not merging
func (batch *Batch) SequenceData() string {
	var dir = batch.DataDir
	if batch.Merge {
		dir = batch.OutputDir
	}
	if abs, err := filepath.Abs(dir); err == nil {
		return abs
	}
	return dir
}

// WriteConfig writes the dataset config of the plan
func (batch *Batch) WriteConfig() error {
	var path = batch.ConfigPath
	if path == "" {
		path = DefaultConfigName
	}
	var cfg = DatasetConfig{
		SequenceData: batch.SequenceData(),
		Genome:       batch.Genome,
		Samples:      batch.Plan.IDStrings(),
	}
	if err := SaveDatasetConfig(path, cfg); err != nil {
		return err
	}
	slog.Info(path+" has been created", "samples", len(cfg.Samples))
	return nil
}
