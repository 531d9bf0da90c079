package usecase

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/diillson/expense-manager-go/internal/domain/entity"
	"github.com/diillson/expense-manager-go/internal/domain/repository"
	"github.com/diillson/expense-manager-go/internal/shared/types"
)

const (
	choiceView   = "1"
	choiceAdd    = "2"
	choiceRemove = "3"
	choiceEdit   = "4"
)

const (
	menuTitle = "***** Expense Manager *****"

	msgInvalidCommand = "Invalid command. Please try again."
)

var menuOptions = []string{
	"1. View Expenses",
	"2. Add Expense",
	"3. Remove Expense",
	"4. Edit Expense",
	"[INFO] Press q to quit at any stage",
}

// LedgerUseCase handles the interactive expense menu.
type LedgerUseCase struct {
	ledger  repository.LedgerRepository
	input   types.LineReader
	console types.ConsoleInterface
}

// NewLedgerUseCase creates a new ledger use case.
func NewLedgerUseCase(
	ledger repository.LedgerRepository,
	input types.LineReader,
	console types.ConsoleInterface,
) *LedgerUseCase {
	return &LedgerUseCase{
		ledger:  ledger,
		input:   input,
		console: console,
	}
}

// Run executa o loop de comandos até o usuário digitar q no menu.
func (uc *LedgerUseCase) Run(ctx context.Context) error {
	entries, err := uc.ledger.Len(ctx)
	if err != nil {
		return err
	}
	logrus.WithField("entries", entries).Debug("command loop started")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		uc.displayMenu()

		choice, err := uc.readToken()
		if err != nil {
			return err
		}

		uc.console.Println(choice)

		switch choice {
		case choiceView:
			err = uc.View(ctx)
		case choiceAdd:
			err = uc.Add(ctx)
		case choiceRemove:
			err = uc.Remove(ctx)
		case choiceEdit:
			err = uc.Edit(ctx)
		case entity.QuitSentinel:
			logrus.Debug("command loop stopped by user")
			return nil
		default:
			logrus.WithField("choice", choice).Debug("invalid menu choice")
			uc.console.Println(msgInvalidCommand)
		}
		if err != nil {
			return err
		}
	}
}

// displayMenu exibe o menu principal.
func (uc *LedgerUseCase) displayMenu() {
	uc.console.Println(uc.console.Heading(menuTitle))
	for _, option := range menuOptions {
		uc.console.Println(option)
	}
}

// readLine lê uma linha crua; uma falha de leitura é fatal para o loop.
func (uc *LedgerUseCase) readLine() (string, error) {
	line, err := uc.input.ReadLine()
	if err != nil {
		return "", fmt.Errorf("failed to read line: %w", err)
	}
	return line, nil
}

// readToken reads a line and normalizes it for use as a name or menu choice.
func (uc *LedgerUseCase) readToken() (string, error) {
	line, err := uc.readLine()
	if err != nil {
		return "", err
	}
	return entity.NormalizeName(line), nil
}
