package stage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func testMerged() []MergedSample {
	return []MergedSample{
		{
			ID: "S1", Forward: []string{"a_R1.fq.gz", "b_R1.fq.gz"}, Reverse: []string{"a_R2.fq.gz"},
			ForwardOut: "out/S1_1.fq.gz", ReverseOut: "out/S1_2.fq.gz",
			ForwardBytes: 3 * mb, ReverseBytes: 2 * mb, ForwardReads: -1, ReverseReads: -1,
		},
		{
			ID: "S2", Forward: []string{"c_R1.fq.gz"}, Reverse: []string{"c_R2.fq.gz"},
			ForwardOut: "out/S2_1.fq.gz", ReverseOut: "out/S2_2.fq.gz",
			ForwardBytes: mb, ReverseBytes: mb, ForwardReads: 10, ReverseReads: 10,
		},
	}
}

func TestWriteSummaryXlsx(t *testing.T) {
	var path = filepath.Join(t.TempDir(), "summary.xlsx")
	if err := WriteSummaryXlsx(path, testMerged()); err != nil {
		t.Fatal(err)
	}

	xlsx, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	defer xlsx.Close()
	rows, err := xlsx.GetRows(SummarySheet)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %v", rows)
	}
	if rows[1][1] != "S1" || rows[1][4] != "a_R1.fq.gz,b_R1.fq.gz" {
		t.Errorf("row 2 = %v", rows[1])
	}
	if rows[2][8] != "10" {
		t.Errorf("row 3 = %v", rows[2])
	}
}

func TestPlotSummary(t *testing.T) {
	var dir = t.TempDir()
	var html = filepath.Join(dir, "summary.html")
	if err := PlotSummaryHTML(html, testMerged()); err != nil {
		t.Fatal(err)
	}
	var png = filepath.Join(dir, "summary.png")
	if err := PlotSummaryPNG(png, testMerged()); err != nil {
		t.Fatal(err)
	}
	for _, p := range []string{html, png} {
		info, err := os.Stat(p)
		if err != nil || info.Size() == 0 {
			t.Errorf("%s: %v", p, err)
		}
	}
}
