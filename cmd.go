package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func SetupCommands(a *App) *cobra.Command {
	// root command
	rootCmd := &cobra.Command{
		Use:   "batidaponto",
		Short: "Batimento de ponto com carga horária diária ajustável",
	}

	// command for registering a new user
	registerCmd := &cobra.Command{
		Use:   "register [usuario]",
		Short: "Cria um novo usuário",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := promptLine("Senha: ")
			if err != nil {
				return err
			}
			if err := a.RegisterUser(args[0], password); err != nil {
				return err
			}
			fmt.Printf("Usuário %s criado (%.2fh padrão).\n", args[0], defaultDailyHours)
			return nil
		},
	}

	// command for recording a punch, optionally overriding today's quota
	punchCmd := &cobra.Command{
		Use:   "punch [usuario] [horas]",
		Short: "Registra uma batida de ponto",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var override float64
			if len(args) > 1 {
				v, err := strconv.ParseFloat(args[1], 64)
				if err != nil || v <= 0 {
					return fmt.Errorf("%w: horas inválidas %q", ErrValidation, args[1])
				}
				override = v
			}

			password, err := promptLine("Senha: ")
			if err != nil {
				return err
			}

			result, err := a.Punch(args[0], password, override)
			if err != nil {
				return err
			}

			if result.Record.Closed() {
				fmt.Printf("Dia fechado: %.2fh trabalhadas, saldo %+.2fh.\n", result.Record.TotalHours, result.Record.Balance)
			} else {
				fmt.Printf("Entrada registrada às %s.\n", result.Record.PunchIn)
			}
			fmt.Printf("Registro salvo em: %s\n", result.Path)
			return nil
		},
	}

	// command for changing a user's daily quota
	quotaCmd := &cobra.Command{
		Use:   "quota [usuario] [horas]",
		Short: "Define a carga horária diária do usuário",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			hours, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("%w: horas inválidas %q", ErrValidation, args[1])
			}
			if err := a.SetQuota(args[0], hours); err != nil {
				return err
			}
			fmt.Printf("%s: %.2fh por dia.\n", args[0], hours)
			return nil
		},
	}

	// command for summarizing a user's sheet
	closeCmd := &cobra.Command{
		Use:   "close [usuario]",
		Short: "Fecha a folha: soma horas e saldo da planilha",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := a.CloseSheet(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Total: %.2fh\nSaldo: %+.2fh\nArquivo: %s\n", summary.TotalHours, summary.Balance, summary.Path)
			return nil
		},
	}

	// command for printing a user's sheet as a table
	displayCmd := &cobra.Command{
		Use:   "display [usuario]",
		Short: "Exibe a planilha do usuário",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Display(args[0])
		},
	}

	// command for changing settings; saved immediately
	settingsCmd := &cobra.Command{
		Use:   "settings",
		Short: "Altera as configurações",
		RunE: func(cmd *cobra.Command, args []string) error {
			var update SettingsUpdate
			if cmd.Flags().Changed("pasta") {
				v, _ := cmd.Flags().GetString("pasta")
				update.DataDir = &v
			}
			if cmd.Flags().Changed("formato") {
				v, _ := cmd.Flags().GetString("formato")
				update.SheetFormat = &v
			}
			if cmd.Flags().Changed("horas-padrao") {
				v, _ := cmd.Flags().GetFloat64("horas-padrao")
				update.DefaultDailyHours = &v
			}
			if cmd.Flags().Changed("janela-minutos") {
				v, _ := cmd.Flags().GetInt("janela-minutos")
				update.DuplicateWindowMinutes = &v
			}

			cfg, err := a.UpdateSettings(update)
			if err != nil {
				return err
			}
			fmt.Printf("Pasta: %s\nFormato: %s\nHoras padrão: %.2f\nJanela: %d min\n",
				cfg.DataDir, cfg.SheetFormat, cfg.DefaultDailyHours, cfg.DuplicateWindowMinutes)
			return nil
		},
	}
	settingsCmd.Flags().String("pasta", "", "pasta onde as planilhas são gravadas")
	settingsCmd.Flags().String("formato", "", "formato das planilhas (xlsx ou csv)")
	settingsCmd.Flags().Float64("horas-padrao", 0, "carga horária padrão")
	settingsCmd.Flags().Int("janela-minutos", 0, "minutos mínimos entre batidas")

	// command for the interactive console loop
	consoleCmd := &cobra.Command{
		Use:   "console",
		Short: "Modo console interativo",
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunConsole(a)
		},
	}

	// add commands
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(punchCmd)
	rootCmd.AddCommand(quotaCmd)
	rootCmd.AddCommand(closeCmd)
	rootCmd.AddCommand(displayCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(consoleCmd)

	return rootCmd
}
