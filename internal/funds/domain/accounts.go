package domain

import (
	"slices"

	"github.com/shopspring/decimal"
)

type Account struct {
	Number  string
	Balance decimal.Decimal
}

type User struct {
	Name           string
	AccountNumbers []string
}

func (u User) Owns(accountNumber string) bool {
	return slices.Contains(u.AccountNumbers, accountNumber)
}
