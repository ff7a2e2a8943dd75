package application

import (
	"context"
	"fmt"

	"github.com/Lexv0lk/funds-service/internal/funds/domain"
)

type AccountsCase struct {
	accountFinder domain.AccountFinder
	accountOpener domain.AccountOpener
}

func NewAccountsCase(accountFinder domain.AccountFinder, accountOpener domain.AccountOpener) *AccountsCase {
	return &AccountsCase{
		accountFinder: accountFinder,
		accountOpener: accountOpener,
	}
}

// OpenAccount opens an empty account held by user.
func (ac *AccountsCase) OpenAccount(ctx context.Context, number string, user domain.User) error {
	_, found, err := ac.accountFinder.GetAccount(ctx, number)
	if err != nil {
		return fmt.Errorf("failed to get account %s: %w", number, err)
	}
	if found {
		return &domain.AccountExistsError{AccountNumber: number}
	}

	err = ac.accountOpener.OpenAccount(ctx, number, user.Name)
	if err != nil {
		return fmt.Errorf("failed to open account %s: %w", number, err)
	}

	return nil
}
