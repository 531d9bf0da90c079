package memory

import (
	"context"
	"fmt"

	"github.com/diillson/expense-manager-go/internal/domain/entity"
	"github.com/diillson/expense-manager-go/internal/domain/repository"
	"github.com/diillson/expense-manager-go/internal/shared/types"
)

// LedgerRepositoryImpl guarda as despesas num map em memória.
// Não há lock: o ledger é acessado por uma única goroutine.
type LedgerRepositoryImpl struct {
	m map[string]float64
}

// NewLedgerRepository cria um ledger já populado com as despesas de seed.
func NewLedgerRepository(seed []entity.Expense) repository.LedgerRepository {
	r := &LedgerRepositoryImpl{
		m: make(map[string]float64, len(seed)),
	}
	for _, e := range seed {
		r.m[e.Name] = e.Amount
	}
	return r
}

func (r *LedgerRepositoryImpl) List(_ context.Context) ([]entity.Expense, error) {
	expenses := make([]entity.Expense, 0, len(r.m))
	for name, amount := range r.m {
		expenses = append(expenses, entity.Expense{Name: name, Amount: amount})
	}
	entity.SortByName(expenses)
	return expenses, nil
}

func (r *LedgerRepositoryImpl) Get(_ context.Context, name string) (entity.Expense, error) {
	amount, ok := r.m[name]
	if !ok {
		return entity.Expense{}, fmt.Errorf("memory.LedgerRepository.Get %q: %w", name, types.ErrExpenseNotFound)
	}
	return entity.Expense{Name: name, Amount: amount}, nil
}

func (r *LedgerRepositoryImpl) Put(_ context.Context, expense entity.Expense) error {
	r.m[expense.Name] = expense.Amount
	return nil
}

func (r *LedgerRepositoryImpl) Delete(_ context.Context, name string) (entity.Expense, error) {
	amount, ok := r.m[name]
	if !ok {
		return entity.Expense{}, fmt.Errorf("memory.LedgerRepository.Delete %q: %w", name, types.ErrExpenseNotFound)
	}
	delete(r.m, name)
	return entity.Expense{Name: name, Amount: amount}, nil
}

func (r *LedgerRepositoryImpl) Len(_ context.Context) (int, error) {
	return len(r.m), nil
}
