package usecase

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/diillson/expense-manager-go/internal/domain/entity"
	"github.com/diillson/expense-manager-go/internal/shared/types"
)

const (
	promptAddName    = "Please enter the expense name or press q to cancel this operation: "
	promptAddAmount  = "Please enter the expense value: "
	promptRemoveName = "Please enter the expense name you want to delete or press q to cancel this operation: "
	promptEditName   = "Please enter the expense name you want to edit or press q to cancel this operation: "
	promptEditAmount = "Please enter the new expense value: "

	msgNoEntries = "No entries yet"
)

// View lista todas as despesas do ledger.
func (uc *LedgerUseCase) View(ctx context.Context) error {
	expenses, err := uc.ledger.List(ctx)
	if err != nil {
		return err
	}

	if len(expenses) == 0 {
		uc.console.Println(msgNoEntries)
		return nil
	}

	for _, e := range expenses {
		uc.console.Println(e.String())
	}
	return nil
}

// Add reads a name and then an amount, inserting or overwriting the entry.
// The amount prompt repeats silently until a number is entered; q is not checked there.
func (uc *LedgerUseCase) Add(ctx context.Context) error {
	uc.console.Println(promptAddName)
	name, err := uc.readToken()
	if err != nil {
		return err
	}
	if name == entity.QuitSentinel {
		return nil
	}

	amount, err := uc.readAmount(promptAddAmount)
	if err != nil {
		return err
	}

	if err := uc.ledger.Put(ctx, entity.Expense{Name: name, Amount: amount}); err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"name":   name,
		"amount": amount,
	}).Debug("expense added")
	return nil
}

// Remove apaga uma despesa pelo nome, repetindo o prompt até acertar ou receber q.
func (uc *LedgerUseCase) Remove(ctx context.Context) error {
	for {
		uc.console.Println(promptRemoveName)
		name, err := uc.readToken()
		if err != nil {
			return err
		}
		if name == entity.QuitSentinel {
			return nil
		}

		removed, err := uc.ledger.Delete(ctx, name)
		if errors.Is(err, types.ErrExpenseNotFound) {
			uc.console.Printf("Operation failed, %s possibly does not exist. Please try again.\n", name)
			continue
		}
		if err != nil {
			return err
		}

		uc.console.Printf("Successfully removed %s with value of %s\n", removed.Name, entity.FormatAmount(removed.Amount))
		logrus.WithFields(logrus.Fields{
			"name":   removed.Name,
			"amount": removed.Amount,
		}).Debug("expense removed")
		return nil
	}
}

// Edit overwrites the amount of an existing entry.
// Unknown names re-prompt for a name; once a name matches, the amount prompt repeats
// until a number is entered and the operation ends.
func (uc *LedgerUseCase) Edit(ctx context.Context) error {
	for {
		uc.console.Println(promptEditName)
		name, err := uc.readToken()
		if err != nil {
			return err
		}
		if name == entity.QuitSentinel {
			return nil
		}

		previous, err := uc.ledger.Get(ctx, name)
		if errors.Is(err, types.ErrExpenseNotFound) {
			uc.console.Printf("Entry with name %s not exist. Please try again.\n", name)
			continue
		}
		if err != nil {
			return err
		}

		amount, err := uc.readAmount(promptEditAmount)
		if err != nil {
			return err
		}

		if err := uc.ledger.Put(ctx, entity.Expense{Name: name, Amount: amount}); err != nil {
			return err
		}
		logrus.WithFields(logrus.Fields{
			"name":     name,
			"previous": previous.Amount,
			"amount":   amount,
		}).Debug("expense edited")
		return nil
	}
}

// readAmount repete o prompt até o valor digitado ser um número.
func (uc *LedgerUseCase) readAmount(prompt string) (float64, error) {
	for {
		uc.console.Println(prompt)
		line, err := uc.readLine()
		if err != nil {
			return 0, err
		}

		amount, err := entity.ParseAmount(line)
		if err != nil {
			logrus.WithError(err).Debug("amount rejected")
			continue
		}
		return amount, nil
	}
}
