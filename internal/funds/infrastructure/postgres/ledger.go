package postgres

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Lexv0lk/funds-service/internal/funds/domain"
	"github.com/Lexv0lk/funds-service/internal/pkg/database"
	"github.com/Lexv0lk/funds-service/internal/pkg/logging"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const (
	directionDebit  = "debit"
	directionCredit = "credit"
)

// Ledger keeps every transaction opened by a posting in a registry until it
// is committed or rolled back, so that later postings can join it by handle.
type Ledger struct {
	pool   database.Pool
	logger logging.Logger

	mu   sync.Mutex
	open map[domain.TxHandle]pgx.Tx
}

func NewLedger(pool database.Pool, logger logging.Logger) *Ledger {
	return &Ledger{
		pool:   pool,
		logger: logger,
		open:   make(map[domain.TxHandle]pgx.Tx),
	}
}

func (l *Ledger) GetAccount(ctx context.Context, number string) (domain.Account, bool, error) {
	selectAccountSQL := `SELECT number, balance::text FROM accounts WHERE number = $1`

	var account domain.Account
	var rawBalance string
	err := l.pool.QueryRow(ctx, selectAccountSQL, number).Scan(&account.Number, &rawBalance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Account{}, false, nil
		}

		return domain.Account{}, false, fmt.Errorf("failed to select account: %w", err)
	}

	account.Balance, err = decimal.NewFromString(rawBalance)
	if err != nil {
		return domain.Account{}, false, fmt.Errorf("failed to parse balance of account %s: %w", number, err)
	}

	return account, true, nil
}

func (l *Ledger) GetBalance(ctx context.Context, account domain.Account) (decimal.Decimal, error) {
	selectBalanceSQL := `SELECT balance::text FROM accounts WHERE number = $1`

	var rawBalance string
	err := l.pool.QueryRow(ctx, selectBalanceSQL, account.Number).Scan(&rawBalance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, domain.NewAccountNotFoundError(account.Number)
		}

		return decimal.Zero, fmt.Errorf("failed to select balance: %w", err)
	}

	balance, err := decimal.NewFromString(rawBalance)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse balance of account %s: %w", account.Number, err)
	}

	return balance, nil
}

func (l *Ledger) Debit(ctx context.Context, amount decimal.Decimal, account domain.Account, tx *domain.TxHandle) (domain.TxHandle, error) {
	return l.post(ctx, tx, func(ctx context.Context, executor database.Executor, handle domain.TxHandle) error {
		// the balance guard keeps concurrent debits from overdrawing the account
		debitSQL := `UPDATE accounts SET balance = balance - $1 WHERE number = $2 AND balance >= $1`
		tag, err := executor.Exec(ctx, debitSQL, amount.String(), account.Number)
		if err != nil {
			return fmt.Errorf("failed to debit account %s: %w", account.Number, err)
		} else if tag.RowsAffected() == 0 {
			return domain.NewInsufficientFundsError(account.Number)
		}

		return insertPosting(ctx, executor, handle, account.Number, directionDebit, amount)
	})
}

func (l *Ledger) Credit(ctx context.Context, amount decimal.Decimal, account domain.Account, tx *domain.TxHandle) (domain.TxHandle, error) {
	return l.post(ctx, tx, func(ctx context.Context, executor database.Executor, handle domain.TxHandle) error {
		creditSQL := `UPDATE accounts SET balance = balance + $1 WHERE number = $2`
		tag, err := executor.Exec(ctx, creditSQL, amount.String(), account.Number)
		if err != nil {
			return fmt.Errorf("failed to credit account %s: %w", account.Number, err)
		} else if tag.RowsAffected() == 0 {
			return domain.NewAccountNotFoundError(account.Number)
		}

		return insertPosting(ctx, executor, handle, account.Number, directionCredit, amount)
	})
}

func (l *Ledger) Commit(ctx context.Context, handle domain.TxHandle) error {
	tx, err := l.lookup(handle)
	if err != nil {
		return err
	}

	err = tx.Commit(ctx)
	if err != nil {
		return fmt.Errorf("failed to commit transaction %s: %w", handle, err)
	}

	l.forget(handle)
	return nil
}

func (l *Ledger) Rollback(ctx context.Context, handle domain.TxHandle) error {
	tx, err := l.lookup(handle)
	if err != nil {
		return err
	}
	l.forget(handle)

	err = tx.Rollback(ctx)
	if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return fmt.Errorf("failed to rollback transaction %s: %w", handle, err)
	}

	return nil
}

type postFunc func(ctx context.Context, executor database.Executor, handle domain.TxHandle) error

// post runs postFn within the transaction behind handle, or within a new one
// when handle is nil. A new transaction is registered only if postFn succeeds.
func (l *Ledger) post(ctx context.Context, handle *domain.TxHandle, postFn postFunc) (domain.TxHandle, error) {
	if handle != nil {
		tx, err := l.lookup(*handle)
		if err != nil {
			return domain.TxHandle{}, err
		}

		err = postFn(ctx, tx, *handle)
		if err != nil {
			return domain.TxHandle{}, err
		}

		return *handle, nil
	}

	tx, err := l.pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel: pgx.ReadCommitted,
	})
	if err != nil {
		return domain.TxHandle{}, fmt.Errorf("failed to begin transaction: %w", err)
	}

	newHandle := domain.NewTxHandle()
	err = postFn(ctx, tx, newHandle)
	if err != nil {
		rollbackErr := tx.Rollback(ctx)
		if rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			l.logger.Error("failed to rollback transaction", "transaction", newHandle.String(), "error", rollbackErr.Error())
		}

		return domain.TxHandle{}, err
	}

	l.mu.Lock()
	l.open[newHandle] = tx
	l.mu.Unlock()

	return newHandle, nil
}

func (l *Ledger) lookup(handle domain.TxHandle) (pgx.Tx, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	tx, ok := l.open[handle]
	if !ok {
		return nil, &domain.UnknownTransactionError{Handle: handle}
	}

	return tx, nil
}

func (l *Ledger) forget(handle domain.TxHandle) {
	l.mu.Lock()
	delete(l.open, handle)
	l.mu.Unlock()
}

func (l *Ledger) openTransactions() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.open)
}

func insertPosting(ctx context.Context, executor database.Executor, handle domain.TxHandle, accountNumber, direction string, amount decimal.Decimal) error {
	insertPostingSQL := `INSERT INTO postings (transaction_id, account_number, direction, amount) VALUES ($1, $2, $3, $4)`
	_, err := executor.Exec(ctx, insertPostingSQL, handle.String(), accountNumber, direction, amount.String())
	if err != nil {
		return fmt.Errorf("failed to insert %s posting: %w", direction, err)
	}

	return nil
}
