package render

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Sheet1"

// XLSX writes one header row of field names and one row of mapped
// values, in the template's declared field order.
func XLSX(outputPath string, fields []string, values map[string]string) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	for i, field := range fields {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("xlsx column %d: %w", i+1, err)
		}
		if err := f.SetCellValue(sheetName, col+"1", field); err != nil {
			return fmt.Errorf("xlsx header %q: %w", field, err)
		}
		if err := f.SetCellValue(sheetName, col+"2", values[field]); err != nil {
			return fmt.Errorf("xlsx value %q: %w", field, err)
		}
	}
	if err := f.SaveAs(outputPath); err != nil {
		return fmt.Errorf("writing xlsx output: %w", err)
	}
	return nil
}
