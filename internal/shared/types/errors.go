package types

import "errors"

var (
	ErrExpenseNotFound         = errors.New("expense not found")
	ErrInputClosed             = errors.New("input stream closed")
	ErrReservedName            = errors.New("expense name is reserved for the quit command")
	ErrDuplicateSeedName       = errors.New("seed contains the same expense name more than once")
	ErrUnsupportedConfigFormat = errors.New("unsupported config file format")
)
