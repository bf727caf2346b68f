package employee

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	exportSheet       = "Employees"
	ContentTypeXlsx   = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	exportFileTimeFmt = "2006-01-02"
)

var exportHeaders = []any{"ID", "First name", "Last name", "Age", "Position", "Department"}

// WriteWorkbook собирает xlsx с выгрузкой сотрудников: строка заголовков и по строке на сотрудника
func WriteWorkbook(employees []Response) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, fmt.Errorf("error naming sheet: %w", err)
	}
	if err := f.SetSheetRow(exportSheet, "A1", &exportHeaders); err != nil {
		return nil, fmt.Errorf("error writing header row: %w", err)
	}
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("error creating header style: %w", err)
	}
	if err := f.SetCellStyle(exportSheet, "A1", "F1", style); err != nil {
		return nil, fmt.Errorf("error styling header row: %w", err)
	}

	for i, employee := range employees {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []any{
			employee.Id, employee.FirstName, employee.LastName,
			employee.Age, employee.Position, employee.DepartmentName,
		}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("error writing row %d: %w", i+2, err)
		}
	}
	_ = f.SetColWidth(exportSheet, "B", "C", 20)
	_ = f.SetColWidth(exportSheet, "E", "F", 25)

	return f.WriteToBuffer()
}
