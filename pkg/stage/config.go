package stage

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/liserjrqlxue/goUtil/osUtil"
)

// DefaultConfigName read by the alignment pipeline
const DefaultConfigName = "task_samples.yaml"

// DatasetConfig metadata of a staged dataset
type DatasetConfig struct {
	SequenceData string
	Genome       string
	Samples      []string
}

// WriteDatasetConfig writes cfg as a line-oriented document, samples sorted
func WriteDatasetConfig(w io.Writer, cfg DatasetConfig) error {
	var samples = append([]string(nil), cfg.Samples...)
	sort.Strings(samples)

	var bw = bufio.NewWriter(w)
	fmt.Fprintln(bw, "---")
	fmt.Fprintf(bw, "sequence_data: %s\n", cfg.SequenceData)
	fmt.Fprintf(bw, "genome: %s\n", cfg.Genome)
	fmt.Fprintln(bw, "samples:")
	for _, s := range samples {
		fmt.Fprintf(bw, "  - %s\n", s)
	}
	// bufio keeps the first write error
	return bw.Flush()
}

// SaveDatasetConfig replaces path with cfg, the file is closed before return
func SaveDatasetConfig(path string, cfg DatasetConfig) (err error) {
	if osUtil.FileExists(path) {
		if err = os.Remove(path); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return WriteDatasetConfig(f, cfg)
}
