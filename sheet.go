package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// sheetHeader matches the columns the original spreadsheets were written
// with; both codecs must keep emitting and parsing these exact names.
var sheetHeader = []string{
	"Data",
	"Dia da Semana",
	"Mês",
	"Hora 1",
	"Hora 2",
	"Total (h)",
	"Horas Previstas",
	"Saldo (h)",
}

// sheetCodec is one on-disk encoding of a sheet. Reads load every data row,
// writes rewrite the whole file.
type sheetCodec interface {
	Ext() string
	Read(path string) ([]DayRecord, error)
	Write(path string, records []DayRecord) error
}

// SheetStore resolves one sheet file per user inside the data directory and
// round-trips it through the configured codec.
type SheetStore struct {
	dir   string
	codec sheetCodec
	log   *logrus.Entry
}

func NewSheetStore(dir, format string, log *logrus.Entry) (*SheetStore, error) {
	var codec sheetCodec
	switch format {
	case "", "xlsx":
		codec = xlsxCodec{}
	case "csv":
		codec = csvCodec{}
	default:
		return nil, fmt.Errorf("%w: formato de planilha desconhecido %q", ErrValidation, format)
	}

	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("falha ao criar diretório de dados: %w", err)
	}

	return &SheetStore{dir: dir, codec: codec, log: log}, nil
}

// PathFor resolves the deterministic file path of a user's sheet.
func (s *SheetStore) PathFor(user string) string {
	name := fmt.Sprintf("batidas_%s.%s", strings.ReplaceAll(user, " ", "_"), s.codec.Ext())
	return filepath.Join(s.dir, name)
}

// Exists reports whether the user already has a sheet file on disk.
func (s *SheetStore) Exists(user string) bool {
	_, err := os.Stat(s.PathFor(user))
	return err == nil
}

// OpenOrCreate loads the user's sheet into memory, starting an empty one
// when no file exists yet.
func (s *SheetStore) OpenOrCreate(user string) (*Sheet, error) {
	path := s.PathFor(user)
	sheet := &Sheet{User: user, Path: path}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return sheet, nil
	}

	records, err := s.codec.Read(path)
	if err != nil {
		return nil, fmt.Errorf("falha ao ler planilha %s: %w", path, err)
	}
	sheet.Records = records
	return sheet, nil
}

// Persist rewrites the whole sheet file from memory. There is no guard
// against two processes writing the same file at once.
func (s *SheetStore) Persist(sheet *Sheet) error {
	if err := s.codec.Write(sheet.Path, sheet.Records); err != nil {
		return fmt.Errorf("falha ao gravar planilha %s: %w", sheet.Path, err)
	}

	s.log.WithFields(logrus.Fields{
		"usuario": sheet.User,
		"arquivo": sheet.Path,
		"linhas":  len(sheet.Records),
	}).Debug("planilha gravada")
	return nil
}

// FindDay returns the record for the given date or nil.
func (sh *Sheet) FindDay(date string) *DayRecord {
	for i := range sh.Records {
		if sh.Records[i].Date == date {
			return &sh.Records[i]
		}
	}
	return nil
}

// AppendDay adds a new day; a second record for the same date is a conflict.
func (sh *Sheet) AppendDay(record DayRecord) error {
	if sh.FindDay(record.Date) != nil {
		return fmt.Errorf("%w: %s", ErrConflict, record.Date)
	}
	sh.Records = append(sh.Records, record)
	return nil
}

// UpdateDay overwrites the record for record.Date in place.
func (sh *Sheet) UpdateDay(record DayRecord) error {
	for i := range sh.Records {
		if sh.Records[i].Date == record.Date {
			sh.Records[i] = record
			return nil
		}
	}
	return fmt.Errorf("%w: dia %s", ErrNotFound, record.Date)
}

// recordToCells and cellsToRecord are shared by both codecs so the two
// encodings stay field-for-field interchangeable.
func recordToCells(r DayRecord) []string {
	total, balance := "", ""
	if r.Closed() {
		total = FormatHours(r.TotalHours)
		balance = FormatHours(r.Balance)
	}
	return []string{
		r.Date,
		r.Weekday,
		r.Month,
		r.PunchIn,
		r.PunchOut,
		total,
		FormatHours(r.ExpectedHours),
		balance,
	}
}

func cellsToRecord(cells []string) DayRecord {
	// tolerate short rows from hand-edited files
	get := func(i int) string {
		if i < len(cells) {
			return strings.TrimSpace(cells[i])
		}
		return ""
	}

	r := DayRecord{
		Date:     get(0),
		Weekday:  get(1),
		Month:    get(2),
		PunchIn:  get(3),
		PunchOut: get(4),
	}
	if v, ok := ParseHours(get(5)); ok {
		r.TotalHours = v
	}
	if v, ok := ParseHours(get(6)); ok {
		r.ExpectedHours = v
	}
	if v, ok := ParseHours(get(7)); ok {
		r.Balance = v
	}
	return r
}
