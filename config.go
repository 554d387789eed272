package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the process-wide settings. It is loaded once at startup and
// saved immediately whenever the settings command changes it.
type Config struct {
	DataDir                string  `toml:"data_dir"`
	SheetFormat            string  `toml:"sheet_format"`
	DefaultDailyHours      float64 `toml:"default_daily_hours"`
	DuplicateWindowMinutes int     `toml:"duplicate_window_minutes"`
}

func DefaultConfig() Config {
	return Config{
		DataDir:                defaultDataDir(),
		SheetFormat:            "xlsx",
		DefaultDailyHours:      7.2,
		DuplicateWindowMinutes: 5,
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "batidaponto"
	}
	return filepath.Join(home, ".local", "share", "batidaponto")
}

func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "batidaponto", "config.toml")
}

// LoadConfig reads the config file, falling back to defaults when it does
// not exist yet.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("falha ao ler configuração %s: %w", path, err)
	}
	return cfg, nil
}

func SaveConfig(cfg Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("falha ao criar diretório de configuração: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("falha ao abrir arquivo de configuração: %w", err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("falha ao gravar configuração: %w", err)
	}
	return nil
}
