package stage

import (
	"bytes"
	"path/filepath"
	"testing"
)

func TestWriteDatasetConfig(t *testing.T) {
	var buf bytes.Buffer
	var cfg = DatasetConfig{
		SequenceData: "/data/run1",
		Genome:       "hg38",
		Samples:      []string{"S2", "S1"},
	}
	if err := WriteDatasetConfig(&buf, cfg); err != nil {
		t.Fatal(err)
	}
	var want = "---\nsequence_data: /data/run1\ngenome: hg38\nsamples:\n  - S1\n  - S2\n"
	if buf.String() != want {
		t.Errorf("config:\n%s\nwant:\n%s", buf.String(), want)
	}
	if cfg.Samples[0] != "S2" {
		t.Error("WriteDatasetConfig reordered its input")
	}
}

func TestSaveDatasetConfig_replaces(t *testing.T) {
	var path = filepath.Join(t.TempDir(), DefaultConfigName)
	writeFile(t, path, "old content that is longer than the new one\n\n\n\n\n\n\n\n")

	if err := SaveDatasetConfig(path, DatasetConfig{SequenceData: "d", Genome: "g"}); err != nil {
		t.Fatal(err)
	}
	if got := readFile(t, path); got != "---\nsequence_data: d\ngenome: g\nsamples:\n" {
		t.Errorf("content = %q", got)
	}
}
