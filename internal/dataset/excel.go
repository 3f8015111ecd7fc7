package dataset

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ReadWorkbook parses the first worksheet of an uploaded workbook into a raw
// table. The first row is the header; remaining rows are data.
func ReadWorkbook(data []byte) (*RawTable, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return &RawTable{}, nil
	}

	return &RawTable{Headers: rows[0], Rows: rows[1:]}, nil
}

// WriteWorkbook serializes a table to a single-sheet workbook. Blank cells
// stay blank; numeric cells keep their native type.
func WriteWorkbook(t *Table, sheetName string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if sheetName == "" {
		sheetName = "data"
	}
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("name sheet: %w", err)
	}

	header := make([]interface{}, t.ColumnCount())
	for i := 0; i < t.ColumnCount(); i++ {
		header[i] = t.ColumnAt(i).Name
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for r := 0; r < t.RowCount(); r++ {
		row := make([]interface{}, t.ColumnCount())
		for c := 0; c < t.ColumnCount(); c++ {
			row[c] = cellValue(t.ColumnAt(c).Values[r])
		}
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return nil, fmt.Errorf("cell coordinates: %w", err)
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", r, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func cellValue(v Value) interface{} {
	if v.Null {
		return nil
	}
	switch v.Kind {
	case KindInt:
		return v.Int
	case KindFloat:
		return v.Float
	default:
		return v.Text
	}
}
