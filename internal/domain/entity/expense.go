package entity

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// QuitSentinel cancela a operação atual quando digitado num prompt de nome ou no menu.
const QuitSentinel = "q"

// Expense represents a named expense and its amount.
type Expense struct {
	Name   string  `json:"name" yaml:"name" toml:"name"`
	Amount float64 `json:"amount" yaml:"amount" toml:"amount"`
}

// String renderiza a despesa no formato "<nome> <valor>".
func (e Expense) String() string {
	return e.Name + " " + FormatAmount(e.Amount)
}

// NormalizeName trims surrounding whitespace and lowercases a name or command token.
func NormalizeName(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// ParseAmount converte o texto digitado em um valor float64.
// Literais hexadecimais e separadores "_" não são aceitos; nan aceita sinal e
// magnitudes fora do intervalo saturam para ±Inf.
func ParseAmount(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	unsigned := strings.TrimLeft(s, "+-")
	if strings.HasPrefix(unsigned, "0x") || strings.HasPrefix(unsigned, "0X") || strings.Contains(s, "_") {
		return 0, &strconv.NumError{Func: "ParseFloat", Num: s, Err: strconv.ErrSyntax}
	}
	if len(s)-len(unsigned) <= 1 && strings.EqualFold(unsigned, "nan") {
		return math.NaN(), nil
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return value, nil
		}
		return 0, err
	}
	return value, nil
}

// FormatAmount renders an amount in its shortest exact decimal form, without exponent.
func FormatAmount(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case v == 0 && math.Signbit(v):
		return "-0"
	}
	return decimal.NewFromFloat(v).String()
}

// DefaultSeed retorna as despesas com que o ledger é criado.
func DefaultSeed() []Expense {
	return []Expense{
		{Name: "supermarket purchase", Amount: 50.0},
		{Name: "telephone bill", Amount: 29.99},
		{Name: "electricity", Amount: 32.17},
	}
}

// SortByName orders expenses by name, in place.
func SortByName(expenses []Expense) {
	sort.Slice(expenses, func(i, j int) bool {
		return expenses[i].Name < expenses[j].Name
	})
}
