package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/nexidian/gocliselect"
)

func promptLine(label string) (string, error) {
	reader := bufio.NewReader(os.Stdin)
	fmt.Print(label)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// RunConsole runs the interactive menu loop. Every error is printed and
// control returns to the menu; only "Sair" leaves the loop.
func RunConsole(a *App) error {
	for {
		menu := gocliselect.NewMenu("Batimento de Ponto")
		menu.AddItem("Registrar ponto", "punch")
		menu.AddItem("Novo usuário", "register")
		menu.AddItem("Definir carga horária", "quota")
		menu.AddItem("Fechar folha", "close")
		menu.AddItem("Exibir planilha", "display")
		menu.AddItem("Sair", "quit")

		choice, _ := menu.Display()
		switch choice {
		case "punch":
			consolePunch(a)
		case "register":
			consoleRegister(a)
		case "quota":
			consoleQuota(a)
		case "close":
			consoleClose(a)
		case "display":
			consoleDisplay(a)
		default:
			return nil
		}
	}
}

func consolePunch(a *App) {
	username, err := promptLine("Usuário: ")
	if err != nil {
		printErr(err)
		return
	}
	password, err := promptLine("Senha: ")
	if err != nil {
		printErr(err)
		return
	}
	hoursStr, err := promptLine("Horas do dia (vazio=padrão): ")
	if err != nil {
		printErr(err)
		return
	}

	var override float64
	if hoursStr != "" {
		override, err = strconv.ParseFloat(hoursStr, 64)
		if err != nil || override <= 0 {
			printErr(fmt.Errorf("%w: horas inválidas %q", ErrValidation, hoursStr))
			return
		}
	}

	result, err := a.Punch(username, password, override)
	if err != nil {
		printErr(err)
		return
	}
	if result.Record.Closed() {
		fmt.Printf("Dia fechado: %.2fh trabalhadas, saldo %+.2fh.\n", result.Record.TotalHours, result.Record.Balance)
	}
	fmt.Println("Ponto registrado em", result.Path)
}

func consoleRegister(a *App) {
	username, err := promptLine("Usuário: ")
	if err != nil {
		printErr(err)
		return
	}
	password, err := promptLine("Senha: ")
	if err != nil {
		printErr(err)
		return
	}

	if err := a.RegisterUser(username, password); err != nil {
		printErr(err)
		return
	}
	fmt.Printf("Usuário criado (%.2fh padrão).\n", defaultDailyHours)
}

func consoleQuota(a *App) {
	username, err := promptLine("Usuário: ")
	if err != nil {
		printErr(err)
		return
	}
	hoursStr, err := promptLine("Horas por dia: ")
	if err != nil {
		printErr(err)
		return
	}

	hours, err := strconv.ParseFloat(hoursStr, 64)
	if err != nil {
		printErr(fmt.Errorf("%w: horas inválidas %q", ErrValidation, hoursStr))
		return
	}
	if err := a.SetQuota(username, hours); err != nil {
		printErr(err)
		return
	}
	fmt.Println("Carga atualizada.")
}

func consoleClose(a *App) {
	username, err := promptLine("Usuário: ")
	if err != nil {
		printErr(err)
		return
	}

	summary, err := a.CloseSheet(username)
	if err != nil {
		printErr(err)
		return
	}
	fmt.Printf("Total %.2fh, saldo %+.2fh (%s)\n", summary.TotalHours, summary.Balance, summary.Path)
}

func consoleDisplay(a *App) {
	username, err := promptLine("Usuário: ")
	if err != nil {
		printErr(err)
		return
	}
	if err := a.Display(username); err != nil {
		printErr(err)
	}
}

func printErr(err error) {
	// unexpected I/O errors keep their wrapped detail, the known kinds
	// read well on their own
	switch {
	case errors.Is(err, ErrValidation),
		errors.Is(err, ErrAuth),
		errors.Is(err, ErrNotFound),
		errors.Is(err, ErrConflict),
		errors.Is(err, ErrDuplicatePunch),
		errors.Is(err, ErrAlreadyClosed):
		fmt.Println("Erro:", err)
	default:
		fmt.Println("Erro inesperado:", err)
	}
}
