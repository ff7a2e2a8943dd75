//go:generate mockgen -destination=../../../gen/mocks/funds/services.go -package=mocks github.com/Lexv0lk/funds-service/internal/funds/domain MoneyMover,AccountService

package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

type MoneyMover interface {
	TransferMoney(ctx context.Context, amount decimal.Decimal, fromNumber, toNumber string, user User) (bool, error)
	Withdraw(ctx context.Context, amount decimal.Decimal, fromNumber string, user User) (bool, error)
	Deposit(ctx context.Context, amount decimal.Decimal, toNumber string) (bool, error)
}

type AccountService interface {
	OpenAccount(ctx context.Context, number string, user User) error
}
