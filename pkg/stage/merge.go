package stage

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"FastqMe/pkg/sampleResolver"
)

// MergedSample outputs of one merged sample
type MergedSample struct {
	ID           string
	Forward      []string
	Reverse      []string
	ForwardOut   string
	ReverseOut   string
	ForwardBytes int64
	ReverseBytes int64

	// -1 when not counted
	ForwardReads int
	ReverseReads int
}

// MergedPaths <outputDir>/<id>_1.fq.gz and <outputDir>/<id>_2.fq.gz
func MergedPaths(outputDir, id string) (fq1, fq2 string) {
	return filepath.Join(outputDir, id+"_1.fq.gz"), filepath.Join(outputDir, id+"_2.fq.gz")
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}

// Concatenate writes paths into destPath in order, byte for byte.
// A partial destPath is removed on failure.
func Concatenate(paths []string, destPath string) (written int64, err error) {
	if len(paths) == 0 {
		return 0, errors.New("nothing to concatenate into " + destPath)
	}
	for _, p := range paths {
		if samePath(p, destPath) {
			return 0, fmt.Errorf("output %s is also an input", destPath)
		}
	}

	out, err := os.Create(destPath)
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := out.Close(); err == nil && cerr != nil {
			err = cerr
		}
		if err != nil {
			os.Remove(destPath)
		}
	}()

	for _, p := range paths {
		var n int64
		n, err = appendFile(out, p)
		written += n
		if err != nil {
			return written, fmt.Errorf("concatenate %s: %w", p, err)
		}
	}
	return written, nil
}

func appendFile(w io.Writer, path string) (int64, error) {
	in, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer in.Close()
	return io.Copy(w, in)
}

// mergedOutputs MergedPaths of m, "" for a side without input files
func mergedOutputs(outputDir string, m MergedSample) (fq1, fq2 string) {
	fq1, fq2 = MergedPaths(outputDir, m.ID)
	if len(m.Forward) == 0 {
		slog.Warn("no forward reads, skip", "id", m.ID)
		fq1 = ""
	}
	if len(m.Reverse) == 0 {
		slog.Warn("no reverse reads, skip", "id", m.ID)
		fq2 = ""
	}
	return
}

func fullPaths(files []sampleResolver.RawFile) []string {
	var paths = make([]string, len(files))
	for i, f := range files {
		paths[i] = f.FullPath
	}
	return paths
}

// MergePlan concatenates forward and reverse lists of every sample into outputDir.
// A side without input files is skipped and its output path left empty.
func MergePlan(plan sampleResolver.SamplePlan, outputDir string) ([]MergedSample, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, err
	}
	var merged []MergedSample
	for _, id := range plan.IDs() {
		var (
			sample = plan.Samples[id]
			m      = MergedSample{
				ID:           string(id),
				Forward:      fullPaths(sample.Forward),
				Reverse:      fullPaths(sample.Reverse),
				ForwardReads: -1,
				ReverseReads: -1,
			}
			err error
		)
		m.ForwardOut, m.ReverseOut = mergedOutputs(outputDir, m)

		slog.Info("merge", "id", m.ID, "forward", len(m.Forward), "reverse", len(m.Reverse))
		if m.ForwardOut != "" {
			if m.ForwardBytes, err = Concatenate(m.Forward, m.ForwardOut); err != nil {
				return merged, err
			}
		}
		if m.ReverseOut != "" {
			if m.ReverseBytes, err = Concatenate(m.Reverse, m.ReverseOut); err != nil {
				return merged, err
			}
		}
		merged = append(merged, m)
	}
	return merged, nil
}

// SummaryOnly MergedSample records of plan without writing anything, byte sizes from stat
func SummaryOnly(plan sampleResolver.SamplePlan, outputDir string) ([]MergedSample, error) {
	var merged []MergedSample
	for _, id := range plan.IDs() {
		var sample = plan.Samples[id]
		var m = MergedSample{
			ID:           string(id),
			Forward:      fullPaths(sample.Forward),
			Reverse:      fullPaths(sample.Reverse),
			ForwardReads: -1,
			ReverseReads: -1,
		}
		m.ForwardOut, m.ReverseOut = mergedOutputs(outputDir, m)
		var err error
		if m.ForwardBytes, err = totalSize(m.Forward); err != nil {
			return nil, err
		}
		if m.ReverseBytes, err = totalSize(m.Reverse); err != nil {
			return nil, err
		}
		merged = append(merged, m)
	}
	return merged, nil
}

func totalSize(paths []string) (total int64, err error) {
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return 0, err
		}
		total += info.Size()
	}
	return total, nil
}
