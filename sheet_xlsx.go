package main

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const worksheetName = "Batidas"

// xlsxCodec stores sheets as Excel workbooks, the format the original
// spreadsheets were produced in.
type xlsxCodec struct{}

func (xlsxCodec) Ext() string { return "xlsx" }

func (xlsxCodec) Read(path string) ([]DayRecord, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("planilha sem abas")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	var records []DayRecord
	for i, row := range rows {
		if i == 0 {
			// header row
			continue
		}
		if len(row) == 0 || row[0] == "" {
			continue
		}
		records = append(records, cellsToRecord(row))
	}
	return records, nil
}

func (xlsxCodec) Write(path string, records []DayRecord) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", worksheetName); err != nil {
		return err
	}

	header := make([]interface{}, len(sheetHeader))
	for i, h := range sheetHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(worksheetName, "A1", &header); err != nil {
		return err
	}

	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}

		row := []interface{}{r.Date, r.Weekday, r.Month, r.PunchIn, r.PunchOut, "", r.ExpectedHours, ""}
		if r.Closed() {
			// totals are written as numbers so the close operation and
			// external spreadsheet tools can sum them
			row[5] = r.TotalHours
			row[7] = r.Balance
		}
		if err := f.SetSheetRow(worksheetName, cell, &row); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}
