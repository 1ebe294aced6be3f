package sampleResolver

import (
	"testing"
)

func TestExtractSampleID(t *testing.T) {
	var tests = []struct {
		name      string
		delimiter string
		want      SampleID
		ok        bool
	}{
		{"S1_L001_R1_001.fastq.gz", "_", "S1", true},
		{"S1-L001_R1.fq.gz", "-", "S1", true},
		{"abc__def.fq.gz", "__", "abc", true},
		{"nodelim.fastq.gz", "_", "nodelim.fastq.gz", false},
		{"_leading.fq.gz", "_", "_leading.fq.gz", false},
		{"S1_R1.fq.gz", "", "S1_R1.fq.gz", false},
	}
	for _, tt := range tests {
		got, ok := ExtractSampleID(tt.name, tt.delimiter)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ExtractSampleID(%q, %q) = %q, %v; want %q, %v", tt.name, tt.delimiter, got, ok, tt.want, tt.ok)
		}
	}
}

func TestStripSuffix(t *testing.T) {
	var tests = []struct {
		name string
		want SampleID
		ok   bool
	}{
		{"sample_R1_001.fastq.gz", "sample", true},
		{"sample_R2_001.fastq.gz", "sample", true},
		{"sample_R1_001.fq.gz", "sample", true},
		{"sample_R2.fastq.gz", "sample", true},
		{"sample_R1.fq.gz", "sample", true},
		{"sample_1.fastq.gz", "sample", true},
		{"sample_2.fq.gz", "sample", true},
		{"S1_L001_R1_001.fastq.gz", "S1_L001", true},
		{"sample_A.fq.gz", "sample_A.fq.gz", false},
		{"_1.fq.gz", "_1.fq.gz", false},
	}
	for _, tt := range tests {
		got, ok := StripSuffix(tt.name, nil)
		if got != tt.want || ok != tt.ok {
			t.Errorf("StripSuffix(%q) = %q, %v; want %q, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}

func TestSuffixStripper_longestWins(t *testing.T) {
	// both suffixes match, the longer one must be removed
	var s = NewSuffixStripper([]string{"_001.fastq.gz", "_R1_001.fastq.gz"})
	got, ok := s.Strip("x_R1_001.fastq.gz")
	if !ok || got != "x" {
		t.Errorf("Strip = %q, %v; want x, true", got, ok)
	}
}

func TestSortSuffixes(t *testing.T) {
	var got = SortSuffixes(DefaultSuffixes)
	for i := 1; i < len(got); i++ {
		if len(got[i]) > len(got[i-1]) {
			t.Fatalf("not sorted by length: %v", got)
		}
	}
	if got[0] != "_R1_001.fastq.gz" || got[1] != "_R2_001.fastq.gz" {
		t.Errorf("unexpected head %v", got[:2])
	}
	if DefaultSuffixes[0] != "_1.fq.gz" {
		t.Error("SortSuffixes modified its input")
	}
}
