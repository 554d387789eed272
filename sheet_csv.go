package main

import (
	"encoding/csv"
	"os"
)

// csvCodec stores sheets as plain delimited text with the same columns as
// the workbook encoding, for setups without a spreadsheet viewer.
type csvCodec struct{}

func (csvCodec) Ext() string { return "csv" }

func (csvCodec) Read(path string) ([]DayRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
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

func (csvCodec) Write(path string, records []DayRecord) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(sheetHeader); err != nil {
		return err
	}
	for _, r := range records {
		if err := writer.Write(recordToCells(r)); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
