package main

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	dateLayout  = "02/01/2006"
	clockLayout = "15:04"
)

// Weekday and month names are written in Portuguese so sheets produced by
// older versions of the tool keep the same vocabulary.
var weekdayNames = map[time.Weekday]string{
	time.Monday:    "Segunda-feira",
	time.Tuesday:   "Terça-feira",
	time.Wednesday: "Quarta-feira",
	time.Thursday:  "Quinta-feira",
	time.Friday:    "Sexta-feira",
	time.Saturday:  "Sábado",
	time.Sunday:    "Domingo",
}

var monthNames = map[time.Month]string{
	time.January:   "Janeiro",
	time.February:  "Fevereiro",
	time.March:     "Março",
	time.April:     "Abril",
	time.May:       "Maio",
	time.June:      "Junho",
	time.July:      "Julho",
	time.August:    "Agosto",
	time.September: "Setembro",
	time.October:   "Outubro",
	time.November:  "Novembro",
	time.December:  "Dezembro",
}

func WeekdayName(t time.Time) string {
	return weekdayNames[t.Weekday()]
}

func MonthName(t time.Time) string {
	return monthNames[t.Month()]
}

// Round2 rounds to two decimal places, the precision every persisted hour
// value is kept at.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ParseClock parses an "HH:MM" cell value.
func ParseClock(s string) (time.Time, error) {
	t, err := time.Parse(clockLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("hora inválida %q: %w", s, err)
	}
	return t, nil
}

// CombineClock places a parsed wall-clock time onto the calendar day of ref.
// Punches spanning midnight are not modeled.
func CombineClock(ref, clock time.Time) time.Time {
	return time.Date(ref.Year(), ref.Month(), ref.Day(), clock.Hour(), clock.Minute(), 0, 0, ref.Location())
}

// FormatHours renders an hour value the way it is stored in sheet cells.
func FormatHours(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ParseHours parses an hour cell; empty cells mean "not set".
func ParseHours(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	// older sheets exported with spreadsheet locales may carry a comma
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func PrintTable(headers []string, rows [][]string, footers []string) {
	colWidths := make([]int, len(headers))
	for i, header := range headers {
		colWidths[i] = len(header)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > colWidths[i] {
				colWidths[i] = len(cell)
			}
		}
	}

	// print header
	for i, header := range headers {
		fmt.Fprintf(os.Stdout, "%-*s\t", colWidths[i], header)
	}
	fmt.Fprintln(os.Stdout)

	// print rows
	for _, row := range rows {
		for i, cell := range row {
			fmt.Fprintf(os.Stdout, "%-*s\t", colWidths[i], cell)
		}
		fmt.Fprintln(os.Stdout)
	}

	// print footer
	for i, footer := range footers {
		if footer != "" {
			fmt.Fprintf(os.Stdout, "%-*s\t", colWidths[i], footer)
		} else {
			// print empty space for skipped footer
			fmt.Fprintf(os.Stdout, "%-*s\t", colWidths[i], "")
		}
	}
	fmt.Fprintln(os.Stdout)
}
