package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lexv0lk/funds-service/internal/funds/domain"
	"github.com/Lexv0lk/funds-service/internal/pkg/database"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

type AccountRegistry struct {
	txManager database.TxManager
}

func NewAccountRegistry(txManager database.TxManager) *AccountRegistry {
	return &AccountRegistry{
		txManager: txManager,
	}
}

// OpenAccount creates an empty account together with its first holder.
func (ar *AccountRegistry) OpenAccount(ctx context.Context, number string, holder string) error {
	return ar.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		insertAccountSQL := `INSERT INTO accounts (number, balance) VALUES ($1, 0)`
		_, err := executor.Exec(ctx, insertAccountSQL, number)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
				return &domain.AccountExistsError{AccountNumber: number}
			}

			return fmt.Errorf("failed to insert account: %w", err)
		}

		insertHolderSQL := `INSERT INTO account_holders (account_number, user_name) VALUES ($1, $2)`
		_, err = executor.Exec(ctx, insertHolderSQL, number, holder)
		if err != nil {
			return fmt.Errorf("failed to insert account holder: %w", err)
		}

		return nil
	})
}
