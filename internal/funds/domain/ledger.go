//go:generate mockgen -destination=../../../gen/mocks/funds/domain.go -package=mocks github.com/Lexv0lk/funds-service/internal/funds/domain AccountFinder,AccountOpener,Authorizer,EventPublisher,Ledger

package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

type AccountFinder interface {
	GetAccount(ctx context.Context, number string) (Account, bool, error)
}

type BalanceGetter interface {
	GetBalance(ctx context.Context, account Account) (decimal.Decimal, error)
}

type Poster interface {
	Debit(ctx context.Context, amount decimal.Decimal, account Account, tx *TxHandle) (TxHandle, error)
	Credit(ctx context.Context, amount decimal.Decimal, account Account, tx *TxHandle) (TxHandle, error)
}

type TxFinalizer interface {
	Commit(ctx context.Context, tx TxHandle) error
	Rollback(ctx context.Context, tx TxHandle) error
}

type Ledger interface {
	AccountFinder
	BalanceGetter
	Poster
	TxFinalizer
}

type Authorizer interface {
	IsAuthorizedToWithdraw(ctx context.Context, account Account, user User) (bool, error)
}

type AccountOpener interface {
	OpenAccount(ctx context.Context, number string, holder string) error
}
