package calendar

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"metreg/model"
)

// WriteXLSX renders the calendar rows and totals to an xlsx workbook: one
// row per department, one column per month, and a final totals row.
func WriteXLSX(w io.Writer, rows []model.CalendarRow, totals [12]int, year int) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := fmt.Sprintf("План %d", year)
	f.SetSheetName(f.GetSheetName(0), sheet)

	header := make([]any, 0, 14)
	header = append(header, "Подразделение")
	for _, name := range MonthNames {
		header = append(header, name)
	}
	header = append(header, "Итого")
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("calendar export: header: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		lastCol, _ := excelize.CoordinatesToCellName(len(header), 1)
		_ = f.SetCellStyle(sheet, "A1", lastCol, bold)
	}

	for i, row := range rows {
		cells := make([]any, 0, 14)
		cells = append(cells, row.DepartmentLabel)
		sum := 0
		for _, n := range row.MonthCounts {
			cells = append(cells, n)
			sum += n
		}
		cells = append(cells, sum)
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return fmt.Errorf("calendar export: row %s: %w", row.DepartmentKey, err)
		}
	}

	totalRow := make([]any, 0, 14)
	totalRow = append(totalRow, "Итого")
	sum := 0
	for _, n := range totals {
		totalRow = append(totalRow, n)
		sum += n
	}
	totalRow = append(totalRow, sum)
	cell, _ := excelize.CoordinatesToCellName(1, len(rows)+2)
	if err := f.SetSheetRow(sheet, cell, &totalRow); err != nil {
		return fmt.Errorf("calendar export: totals: %w", err)
	}

	if err := f.SetColWidth(sheet, "A", "A", 22); err != nil {
		return fmt.Errorf("calendar export: layout: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("calendar export: write: %w", err)
	}
	return nil
}
