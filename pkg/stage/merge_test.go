package stage

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"FastqMe/pkg/sampleResolver"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

func TestConcatenate(t *testing.T) {
	var dir = t.TempDir()
	var a, b, c = filepath.Join(dir, "a"), filepath.Join(dir, "b"), filepath.Join(dir, "c")
	writeFile(t, a, "AAA")
	writeFile(t, b, "")
	writeFile(t, c, "CC\n")

	var dest = filepath.Join(dir, "out")
	n, err := Concatenate([]string{c, a, b}, dest)
	if err != nil {
		t.Fatalf("Concatenate: %v", err)
	}
	if n != 6 {
		t.Errorf("written = %d; want 6", n)
	}
	if got := readFile(t, dest); got != "CC\nAAA" {
		t.Errorf("content = %q", got)
	}
}

func TestConcatenate_failures(t *testing.T) {
	var dir = t.TempDir()
	var a = filepath.Join(dir, "a")
	writeFile(t, a, "AAA")

	t.Run("missing input removes partial output", func(t *testing.T) {
		var dest = filepath.Join(dir, "partial")
		if _, err := Concatenate([]string{a, filepath.Join(dir, "missing")}, dest); err == nil {
			t.Fatal("expected error")
		}
		if _, err := os.Stat(dest); !os.IsNotExist(err) {
			t.Errorf("partial output left behind: %v", err)
		}
	})

	t.Run("output is input", func(t *testing.T) {
		if _, err := Concatenate([]string{a}, a); err == nil {
			t.Fatal("expected error")
		}
		if got := readFile(t, a); got != "AAA" {
			t.Errorf("input clobbered: %q", got)
		}
	})

	t.Run("empty list", func(t *testing.T) {
		if _, err := Concatenate(nil, filepath.Join(dir, "none")); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestMergePlan(t *testing.T) {
	var (
		dir    = t.TempDir()
		raw    = filepath.Join(dir, "raw")
		outDir = filepath.Join(dir, "merged")
	)
	writeFile(t, filepath.Join(raw, "S1_L001_R1_001.fastq.gz"), "f1")
	writeFile(t, filepath.Join(raw, "S1_L002_R1_001.fastq.gz"), "f2")
	writeFile(t, filepath.Join(raw, "S1_L001_R2_001.fastq.gz"), "r1")
	writeFile(t, filepath.Join(raw, "S1_L002_R2_001.fastq.gz"), "r2")
	writeFile(t, filepath.Join(raw, "S2_R1.fq.gz"), "x")
	writeFile(t, filepath.Join(raw, "S2_R2.fq.gz"), "y")

	files, err := sampleResolver.Discover(raw, nil)
	if err != nil {
		t.Fatal(err)
	}
	plan, err := sampleResolver.BuildPlan(files, sampleResolver.NewNamingConvention(sampleResolver.StyleRx, sampleResolver.ModePrefix))
	if err != nil {
		t.Fatal(err)
	}

	merged, err := MergePlan(plan, outDir)
	if err != nil {
		t.Fatalf("MergePlan: %v", err)
	}
	if len(merged) != 2 || merged[0].ID != "S1" || merged[1].ID != "S2" {
		t.Fatalf("merged = %+v", merged)
	}
	if got := readFile(t, filepath.Join(outDir, "S1_1.fq.gz")); got != "f1f2" {
		t.Errorf("S1_1 = %q", got)
	}
	if got := readFile(t, filepath.Join(outDir, "S1_2.fq.gz")); got != "r1r2" {
		t.Errorf("S1_2 = %q", got)
	}
	if got := readFile(t, filepath.Join(outDir, "S2_2.fq.gz")); got != "y" {
		t.Errorf("S2_2 = %q", got)
	}
	if merged[0].ForwardBytes != 4 || merged[0].ReverseReads != -1 {
		t.Errorf("S1 record = %+v", merged[0])
	}

	summary, err := SummaryOnly(plan, outDir)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(summary, merged) {
		t.Errorf("SummaryOnly = %+v; want %+v", summary, merged)
	}
}

func TestMergedPaths(t *testing.T) {
	fq1, fq2 := MergedPaths("out", "S1")
	if !strings.HasSuffix(fq1, "S1_1.fq.gz") || !strings.HasSuffix(fq2, "S1_2.fq.gz") {
		t.Errorf("MergedPaths = %s %s", fq1, fq2)
	}
}
