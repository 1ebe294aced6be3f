package stage

import (
	"bufio"
	"fmt"
	"os"

	gzip "github.com/klauspost/pgzip"
)

// CountReads number of records of a gzipped fastq, multi-member gzip streams included
func CountReads(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	gr, err := gzip.NewReader(f)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	defer gr.Close()

	var (
		n       = 0
		scanner = bufio.NewScanner(gr)
	)
	scanner.Buffer(make([]byte, 1024*1024), 64*1024*1024)
	for scanner.Scan() {
		n++
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	if n%4 != 0 {
		return n / 4, fmt.Errorf("%s: %d lines is not a multiple of 4", path, n)
	}
	return n / 4, nil
}

// CountMerged fills ForwardReads and ReverseReads, forward and reverse must agree when both exist
func CountMerged(merged []MergedSample) error {
	for i := range merged {
		var m = &merged[i]
		var err error
		if m.ForwardOut != "" {
			if m.ForwardReads, err = CountReads(m.ForwardOut); err != nil {
				return err
			}
		}
		if m.ReverseOut != "" {
			if m.ReverseReads, err = CountReads(m.ReverseOut); err != nil {
				return err
			}
		}
		if m.ForwardOut == "" || m.ReverseOut == "" {
			continue
		}
		if m.ForwardReads != m.ReverseReads {
			return fmt.Errorf("%s: forward has %d reads, reverse has %d", m.ID, m.ForwardReads, m.ReverseReads)
		}
	}
	return nil
}
