package main

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// Punch records the next punch of today for the given user. The first call
// of the day opens the row with the expected hours snapshot, the second
// closes it and computes total and balance, any further call fails.
func (a *App) Punch(username, password string, overrideHours float64) (*PunchResult, error) {
	if err := a.users.Authenticate(username, password); err != nil {
		return nil, err
	}

	expected := overrideHours
	if expected <= 0 {
		expected = a.users.Quota(username)
	}
	if expected <= 0 {
		expected = a.cfg.DefaultDailyHours
	}

	now := a.now()
	sheet, err := a.sheets.OpenOrCreate(username)
	if err != nil {
		return nil, err
	}

	date := now.Format(dateLayout)
	rec := sheet.FindDay(date)

	if rec == nil {
		record := DayRecord{
			Date:          date,
			Weekday:       WeekdayName(now),
			Month:         MonthName(now),
			PunchIn:       now.Format(clockLayout),
			ExpectedHours: expected,
		}
		if err := sheet.AppendDay(record); err != nil {
			return nil, err
		}
		if err := a.sheets.Persist(sheet); err != nil {
			return nil, err
		}

		a.log.WithFields(logrus.Fields{
			"usuario": username,
			"data":    date,
			"hora":    record.PunchIn,
		}).Info("primeira batida registrada")
		return &PunchResult{Path: sheet.Path, Record: record}, nil
	}

	if rec.Closed() {
		return nil, fmt.Errorf("%w (%s)", ErrAlreadyClosed, date)
	}

	if rec.PunchIn == "" {
		// hand-edited row with an empty first slot, fill it like a fresh day
		updated := *rec
		updated.PunchIn = now.Format(clockLayout)
		updated.ExpectedHours = expected
		if err := sheet.UpdateDay(updated); err != nil {
			return nil, err
		}
		if err := a.sheets.Persist(sheet); err != nil {
			return nil, err
		}
		return &PunchResult{Path: sheet.Path, Record: updated}, nil
	}

	if err := a.checkDuplicateWindow(now, rec.PunchIn); err != nil {
		return nil, err
	}

	in, err := ParseClock(rec.PunchIn)
	if err != nil {
		return nil, err
	}

	updated := *rec
	updated.PunchOut = now.Format(clockLayout)
	updated.TotalHours = Round2(now.Sub(CombineClock(now, in)).Hours())
	// balance is computed against the snapshot taken at the first punch,
	// not against this call's override
	updated.Balance = Round2(updated.TotalHours - updated.ExpectedHours)

	if err := sheet.UpdateDay(updated); err != nil {
		return nil, err
	}
	if err := a.sheets.Persist(sheet); err != nil {
		return nil, err
	}

	a.log.WithFields(logrus.Fields{
		"usuario": username,
		"data":    date,
		"total":   updated.TotalHours,
		"saldo":   updated.Balance,
	}).Info("dia fechado")
	return &PunchResult{Path: sheet.Path, Record: updated}, nil
}

// checkDuplicateWindow guards against accidental double punches within the
// configured window of the previous one.
func (a *App) checkDuplicateWindow(now time.Time, lastPunch string) error {
	if lastPunch == "" {
		return nil
	}
	clock, err := ParseClock(lastPunch)
	if err != nil {
		// unparseable cell in a hand-edited sheet, let the punch through
		return nil
	}

	window := time.Duration(a.cfg.DuplicateWindowMinutes) * time.Minute
	if diff := now.Sub(CombineClock(now, clock)); diff >= 0 && diff < window {
		return fmt.Errorf("%w (última às %s)", ErrDuplicatePunch, lastPunch)
	}
	return nil
}

// CloseSheet sums worked hours and balance across every closed day of the
// user's sheet. It only reads; nothing on disk is marked as closed.
func (a *App) CloseSheet(username string) (*Summary, error) {
	if !a.sheets.Exists(username) {
		return nil, fmt.Errorf("%w: nenhuma planilha para %q", ErrNotFound, username)
	}

	sheet, err := a.sheets.OpenOrCreate(username)
	if err != nil {
		return nil, err
	}

	var total, balance float64
	for _, r := range sheet.Records {
		if !r.Closed() {
			continue
		}
		total += r.TotalHours
		balance += r.Balance
	}

	return &Summary{
		Path:       sheet.Path,
		TotalHours: Round2(total),
		Balance:    Round2(balance),
	}, nil
}
