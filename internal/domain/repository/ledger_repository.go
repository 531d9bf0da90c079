package repository

import (
	"context"

	"github.com/diillson/expense-manager-go/internal/domain/entity"
)

// LedgerRepository defines the storage for expense entries, keyed by normalized name.
type LedgerRepository interface {
	// List retorna todas as despesas ordenadas por nome.
	List(ctx context.Context) ([]entity.Expense, error)
	// Get returns types.ErrExpenseNotFound when the name has no entry.
	Get(ctx context.Context, name string) (entity.Expense, error)
	// Put insere a despesa ou sobrescreve o valor existente.
	Put(ctx context.Context, expense entity.Expense) error
	// Delete removes the entry and returns it, or types.ErrExpenseNotFound.
	Delete(ctx context.Context, name string) (entity.Expense, error)
	Len(ctx context.Context) (int, error)
}
