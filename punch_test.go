package main

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logrus.NewEntry(logger)
}

func newTestApp(t *testing.T, format string) *App {
	t.Helper()

	dir := t.TempDir()
	log := testLogger()

	cfg := DefaultConfig()
	cfg.DataDir = dir
	cfg.SheetFormat = format

	users, err := LoadUserStore(dir+"/users.yaml", log)
	if err != nil {
		t.Fatalf("load user store: %v", err)
	}

	sheets, err := NewSheetStore(dir, format, log)
	if err != nil {
		t.Fatalf("new sheet store: %v", err)
	}

	return NewApp(cfg, dir+"/config.toml", users, sheets, log)
}

func fixedClock(a *App, at time.Time) {
	a.now = func() time.Time { return at }
}

func TestPunchLifecycle(t *testing.T) {
	a := newTestApp(t, "csv")
	if err := a.RegisterUser("maria", "segredo"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := a.SetQuota("maria", 8.0); err != nil {
		t.Fatalf("set quota: %v", err)
	}

	day := time.Date(2026, time.August, 28, 9, 0, 0, 0, time.Local)
	fixedClock(a, day)

	result, err := a.Punch("maria", "segredo", 0)
	if err != nil {
		t.Fatalf("first punch: %v", err)
	}
	rec := result.Record
	if rec.PunchIn != "09:00" || rec.PunchOut != "" {
		t.Errorf("first punch row = %q/%q, want 09:00/empty", rec.PunchIn, rec.PunchOut)
	}
	if rec.Date != "28/08/2026" {
		t.Errorf("date = %q, want 28/08/2026", rec.Date)
	}
	if rec.Weekday != "Sexta-feira" || rec.Month != "Agosto" {
		t.Errorf("names = %q/%q, want Sexta-feira/Agosto", rec.Weekday, rec.Month)
	}
	if rec.ExpectedHours != 8.0 {
		t.Errorf("expected hours = %v, want 8", rec.ExpectedHours)
	}

	fixedClock(a, day.Add(8*time.Hour+30*time.Minute))
	result, err = a.Punch("maria", "segredo", 0)
	if err != nil {
		t.Fatalf("second punch: %v", err)
	}
	rec = result.Record
	if rec.PunchOut != "17:30" {
		t.Errorf("punch out = %q, want 17:30", rec.PunchOut)
	}
	if rec.TotalHours != 8.5 {
		t.Errorf("total = %v, want 8.5", rec.TotalHours)
	}
	if rec.Balance != 0.5 {
		t.Errorf("balance = %v, want 0.5", rec.Balance)
	}

	fixedClock(a, day.Add(10*time.Hour))
	if _, err := a.Punch("maria", "segredo", 0); !errors.Is(err, ErrAlreadyClosed) {
		t.Errorf("third punch err = %v, want ErrAlreadyClosed", err)
	}
}

func TestPunchDuplicateWindow(t *testing.T) {
	a := newTestApp(t, "csv")
	if err := a.RegisterUser("joao", "senha"); err != nil {
		t.Fatalf("register: %v", err)
	}

	day := time.Date(2026, time.August, 28, 9, 0, 0, 0, time.Local)
	fixedClock(a, day)
	if _, err := a.Punch("joao", "senha", 0); err != nil {
		t.Fatalf("first punch: %v", err)
	}

	fixedClock(a, day.Add(3*time.Minute))
	if _, err := a.Punch("joao", "senha", 0); !errors.Is(err, ErrDuplicatePunch) {
		t.Errorf("punch inside window err = %v, want ErrDuplicatePunch", err)
	}

	fixedClock(a, day.Add(5*time.Minute))
	if _, err := a.Punch("joao", "senha", 0); err != nil {
		t.Errorf("punch at window edge: %v", err)
	}
}

func TestPunchAuth(t *testing.T) {
	a := newTestApp(t, "csv")
	if err := a.RegisterUser("ana", "certa"); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := a.Punch("ana", "errada", 0); !errors.Is(err, ErrAuth) {
		t.Errorf("wrong password err = %v, want ErrAuth", err)
	}
	if _, err := a.Punch("ninguem", "x", 0); !errors.Is(err, ErrAuth) {
		t.Errorf("unknown user err = %v, want ErrAuth", err)
	}

	// the day row must not have been created by the failed attempts
	sheet, err := a.sheets.OpenOrCreate("ana")
	if err != nil {
		t.Fatalf("open sheet: %v", err)
	}
	if len(sheet.Records) != 0 {
		t.Errorf("records after failed auth = %d, want 0", len(sheet.Records))
	}
}

func TestPunchExpectedHoursSnapshot(t *testing.T) {
	a := newTestApp(t, "csv")
	if err := a.RegisterUser("rui", "pw"); err != nil {
		t.Fatalf("register: %v", err)
	}

	day := time.Date(2026, time.August, 28, 8, 0, 0, 0, time.Local)
	fixedClock(a, day)
	if _, err := a.Punch("rui", "pw", 6.0); err != nil {
		t.Fatalf("first punch: %v", err)
	}

	// the override of the closing call must not replace the snapshot
	fixedClock(a, day.Add(7*time.Hour))
	result, err := a.Punch("rui", "pw", 9.0)
	if err != nil {
		t.Fatalf("second punch: %v", err)
	}
	if result.Record.ExpectedHours != 6.0 {
		t.Errorf("expected hours = %v, want snapshot 6", result.Record.ExpectedHours)
	}
	if result.Record.Balance != 1.0 {
		t.Errorf("balance = %v, want 1 (7h worked - 6h snapshot)", result.Record.Balance)
	}
}

func TestPunchDefaultHoursFallback(t *testing.T) {
	a := newTestApp(t, "csv")
	if err := a.RegisterUser("bia", "pw"); err != nil {
		t.Fatalf("register: %v", err)
	}

	fixedClock(a, time.Date(2026, time.August, 28, 8, 0, 0, 0, time.Local))
	result, err := a.Punch("bia", "pw", 0)
	if err != nil {
		t.Fatalf("punch: %v", err)
	}
	// no override given, so the registration default applies
	if result.Record.ExpectedHours != defaultDailyHours {
		t.Errorf("expected hours = %v, want %v", result.Record.ExpectedHours, defaultDailyHours)
	}
}

func TestCloseSheet(t *testing.T) {
	a := newTestApp(t, "csv")

	t.Run("no sheet yet", func(t *testing.T) {
		if _, err := a.CloseSheet("fantasma"); !errors.Is(err, ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})

	t.Run("sums closed rows", func(t *testing.T) {
		sheet, err := a.sheets.OpenOrCreate("carla")
		if err != nil {
			t.Fatalf("open sheet: %v", err)
		}
		sheet.Records = []DayRecord{
			{Date: "26/08/2026", PunchIn: "09:00", PunchOut: "17:00", TotalHours: 8.0, ExpectedHours: 7.8, Balance: 0.2},
			{Date: "27/08/2026", PunchIn: "09:00", PunchOut: "16:30", TotalHours: 7.5, ExpectedHours: 7.8, Balance: -0.3},
			{Date: "28/08/2026", PunchIn: "09:00", ExpectedHours: 7.8}, // open day is ignored
		}
		if err := a.sheets.Persist(sheet); err != nil {
			t.Fatalf("persist: %v", err)
		}

		summary, err := a.CloseSheet("carla")
		if err != nil {
			t.Fatalf("close: %v", err)
		}
		if summary.TotalHours != 15.5 {
			t.Errorf("total = %v, want 15.5", summary.TotalHours)
		}
		if summary.Balance != -0.1 {
			t.Errorf("balance = %v, want -0.1", summary.Balance)
		}
		if summary.Path != a.sheets.PathFor("carla") {
			t.Errorf("path = %q, want %q", summary.Path, a.sheets.PathFor("carla"))
		}
	})
}
