package stage

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

const SummarySheet = "Samples"

var summaryTitle = []interface{}{
	"序号", "SampleID",
	"Forward", "Reverse",
	"ForwardFiles", "ReverseFiles",
	"ForwardBytes", "ReverseBytes",
	"ForwardReads", "ReverseReads",
}

func setRow(xlsx *excelize.File, sheet string, col, row int, value []interface{}) error {
	cellName, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return xlsx.SetSheetRow(sheet, cellName, &value)
}

func readsCell(n int) interface{} {
	if n < 0 {
		return ""
	}
	return n
}

// WriteSummaryXlsx one row per merged sample in sheet Samples
func WriteSummaryXlsx(path string, merged []MergedSample) (err error) {
	var excel = excelize.NewFile()
	defer func() {
		if cerr := excel.Close(); err == nil {
			err = cerr
		}
	}()
	if err = excel.SetSheetName("Sheet1", SummarySheet); err != nil {
		return err
	}
	if err = setRow(excel, SummarySheet, 1, 1, summaryTitle); err != nil {
		return err
	}
	for i, m := range merged {
		var row = []interface{}{
			i + 1, m.ID,
			m.ForwardOut, m.ReverseOut,
			strings.Join(m.Forward, ","), strings.Join(m.Reverse, ","),
			m.ForwardBytes, m.ReverseBytes,
			readsCell(m.ForwardReads), readsCell(m.ReverseReads),
		}
		if err = setRow(excel, SummarySheet, 1, i+2, row); err != nil {
			return err
		}
	}
	return excel.SaveAs(path)
}
