package main

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// App is the core the front ends talk to. It owns the stores and the
// config; the adapters only collect input and present results.
type App struct {
	cfg     Config
	cfgPath string
	users   *UserStore
	sheets  *SheetStore
	log     *logrus.Entry
	now     func() time.Time
}

func NewApp(cfg Config, cfgPath string, users *UserStore, sheets *SheetStore, log *logrus.Entry) *App {
	return &App{
		cfg:     cfg,
		cfgPath: cfgPath,
		users:   users,
		sheets:  sheets,
		log:     log,
		now:     time.Now,
	}
}

func (a *App) RegisterUser(username, password string) error {
	return a.users.Register(username, password)
}

func (a *App) SetQuota(username string, hours float64) error {
	return a.users.SetQuota(username, hours)
}

// SettingsUpdate carries the optional fields of the settings command; nil
// means keep the current value.
type SettingsUpdate struct {
	DataDir                *string
	SheetFormat            *string
	DefaultDailyHours      *float64
	DuplicateWindowMinutes *int
}

// UpdateSettings applies the update and persists the config immediately.
// Changing the data dir or format takes effect on the next start.
func (a *App) UpdateSettings(update SettingsUpdate) (Config, error) {
	cfg := a.cfg
	if update.DataDir != nil {
		cfg.DataDir = *update.DataDir
	}
	if update.SheetFormat != nil {
		if *update.SheetFormat != "xlsx" && *update.SheetFormat != "csv" {
			return cfg, fmt.Errorf("%w: formato de planilha desconhecido %q", ErrValidation, *update.SheetFormat)
		}
		cfg.SheetFormat = *update.SheetFormat
	}
	if update.DefaultDailyHours != nil {
		if *update.DefaultDailyHours <= 0 {
			return cfg, fmt.Errorf("%w: carga horária deve ser positiva", ErrValidation)
		}
		cfg.DefaultDailyHours = *update.DefaultDailyHours
	}
	if update.DuplicateWindowMinutes != nil {
		if *update.DuplicateWindowMinutes < 0 {
			return cfg, fmt.Errorf("%w: janela de batidas não pode ser negativa", ErrValidation)
		}
		cfg.DuplicateWindowMinutes = *update.DuplicateWindowMinutes
	}

	if err := SaveConfig(cfg, a.cfgPath); err != nil {
		return cfg, err
	}
	a.cfg = cfg
	a.log.WithField("arquivo", a.cfgPath).Info("configuração salva")
	return cfg, nil
}

// Display prints the user's sheet as a table with a totals footer.
func (a *App) Display(username string) error {
	summary, err := a.CloseSheet(username)
	if err != nil {
		return err
	}

	sheet, err := a.sheets.OpenOrCreate(username)
	if err != nil {
		return err
	}

	fmt.Printf("Planilha - %s\n", username)

	var rows [][]string
	for _, r := range sheet.Records {
		total, balance := "", ""
		if r.Closed() {
			total = FormatHours(r.TotalHours)
			balance = FormatHours(r.Balance)
		}
		rows = append(rows, []string{
			r.Date,
			r.Weekday,
			r.PunchIn,
			r.PunchOut,
			total,
			FormatHours(r.ExpectedHours),
			balance,
		})
	}

	headers := []string{"Data", "Dia", "Hora 1", "Hora 2", "Total (h)", "Previstas", "Saldo (h)"}
	footers := []string{"", "", "", "Total:", FormatHours(summary.TotalHours), "", FormatHours(summary.Balance)}
	PrintTable(headers, rows, footers)

	return nil
}
