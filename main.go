package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if os.Getenv("PONTO_DEBUG") != "" {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.WarnLevel)
	}
	log := logrus.NewEntry(logger)

	cfgPath := DefaultConfigPath()
	cfg, err := LoadConfig(cfgPath)
	if err != nil {
		log.WithError(err).Fatal("falha ao carregar configuração")
	}

	users, err := LoadUserStore(filepath.Join(cfg.DataDir, "users.yaml"), log)
	if err != nil {
		log.WithError(err).Fatal("falha ao carregar usuários")
	}

	sheets, err := NewSheetStore(cfg.DataDir, cfg.SheetFormat, log)
	if err != nil {
		log.WithError(err).Fatal("falha ao abrir armazenamento de planilhas")
	}

	app := NewApp(cfg, cfgPath, users, sheets, log)

	if err := SetupCommands(app).Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
