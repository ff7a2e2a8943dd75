package postgres

import (
	"context"
	"fmt"

	"github.com/Lexv0lk/funds-service/internal/funds/domain"
	"github.com/Lexv0lk/funds-service/internal/pkg/database"
)

type HolderAuthorizer struct {
	querier database.Querier
}

func NewHolderAuthorizer(querier database.Querier) *HolderAuthorizer {
	return &HolderAuthorizer{
		querier: querier,
	}
}

func (ha *HolderAuthorizer) IsAuthorizedToWithdraw(ctx context.Context, account domain.Account, user domain.User) (bool, error) {
	holderSQL := `SELECT EXISTS (SELECT 1 FROM account_holders WHERE account_number = $1 AND user_name = $2)`

	var isHolder bool
	err := ha.querier.QueryRow(ctx, holderSQL, account.Number, user.Name).Scan(&isHolder)
	if err != nil {
		return false, fmt.Errorf("failed to check account holder: %w", err)
	}

	return isHolder, nil
}
