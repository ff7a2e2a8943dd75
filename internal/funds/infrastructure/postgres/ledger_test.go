package postgres

import (
	"testing"

	mocks "github.com/Lexv0lk/funds-service/gen/mocks/logging"
	"github.com/Lexv0lk/funds-service/internal/funds/domain"
	"github.com/golang/mock/gomock"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var readCommitted = pgx.TxOptions{IsoLevel: pgx.ReadCommitted}

func newMockLedger(t *testing.T) (*Ledger, pgxmock.PgxConnIface, *mocks.MockLogger) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mock, err := pgxmock.NewConn()
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close(t.Context()) })

	logger := mocks.NewMockLogger(ctrl)
	return NewLedger(mock, logger), mock, logger
}

func TestLedger_GetAccount(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name   string
		number string

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)

		expectedAccount domain.Account
		expectedFound   bool
		expectedErr     error
	}

	tests := []testCase{
		{
			name:   "account found",
			number: "12345",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				rows := pgxmock.NewRows([]string{"number", "balance"}).
					AddRow("12345", "250.5000")
				mock.ExpectQuery("SELECT number").
					WithArgs("12345").
					WillReturnRows(rows)
			},
			expectedAccount: domain.Account{Number: "12345", Balance: decimal.RequireFromString("250.5000")},
			expectedFound:   true,
		},
		{
			name:   "account absent",
			number: "99999",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("SELECT number").
					WithArgs("99999").
					WillReturnError(pgx.ErrNoRows)
			},
			expectedFound: false,
		},
		{
			name:   "database error",
			number: "12345",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("SELECT number").
					WithArgs("12345").
					WillReturnError(assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ledger, mock, _ := newMockLedger(t)
			tt.prepareFn(t, mock)

			account, found, err := ledger.GetAccount(t.Context(), tt.number)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedFound, found)
			assert.Equal(t, tt.expectedAccount.Number, account.Number)
			assert.True(t, tt.expectedAccount.Balance.Equal(account.Balance))
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestLedger_GetBalance(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name string

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)

		expectedBalance decimal.Decimal
		expectedErr     error
	}

	tests := []testCase{
		{
			name: "balance found",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("SELECT balance").
					WithArgs("12345").
					WillReturnRows(pgxmock.NewRows([]string{"balance"}).AddRow("500.0000"))
			},
			expectedBalance: decimal.NewFromInt(500),
		},
		{
			name: "account vanished",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("SELECT balance").
					WithArgs("12345").
					WillReturnError(pgx.ErrNoRows)
			},
			expectedErr: &domain.ValidationError{},
		},
		{
			name: "database error",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("SELECT balance").
					WithArgs("12345").
					WillReturnError(assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ledger, mock, _ := newMockLedger(t)
			tt.prepareFn(t, mock)

			balance, err := ledger.GetBalance(t.Context(), domain.Account{Number: "12345"})

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.True(t, tt.expectedBalance.Equal(balance))
		})
	}
}

func TestLedger_TransferLegsShareTransaction(t *testing.T) {
	t.Parallel()
	ledger, mock, _ := newMockLedger(t)

	from := domain.Account{Number: "12345"}
	to := domain.Account{Number: "54321"}
	amount := decimal.NewFromInt(100)

	mock.ExpectBeginTx(readCommitted)
	mock.ExpectExec("UPDATE accounts SET balance = balance -").
		WithArgs("100", "12345").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("INSERT INTO postings").
		WithArgs(pgxmock.AnyArg(), "12345", "debit", "100").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("UPDATE accounts SET balance = balance \\+").
		WithArgs("100", "54321").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("INSERT INTO postings").
		WithArgs(pgxmock.AnyArg(), "54321", "credit", "100").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	handle, err := ledger.Debit(t.Context(), amount, from, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, ledger.openTransactions())

	continued, err := ledger.Credit(t.Context(), amount, to, handle.Ref())
	require.NoError(t, err)
	assert.Equal(t, handle, continued)

	require.NoError(t, ledger.Commit(t.Context(), handle))
	assert.Equal(t, 0, ledger.openTransactions())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedger_Debit(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name string

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)

		expectedErr  error
		expectedOpen int
	}

	tests := []testCase{
		{
			name: "begin fails",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectBeginTx(readCommitted).WillReturnError(assert.AnError)
			},
			expectedErr: assert.AnError,
		},
		{
			name: "balance guard rejects overdraft",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectBeginTx(readCommitted)
				mock.ExpectExec("UPDATE").
					WithArgs("100", "12345").
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
				mock.ExpectRollback()
			},
			expectedErr: &domain.InsufficientFundsError{},
		},
		{
			name: "posting insert fails",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectBeginTx(readCommitted)
				mock.ExpectExec("UPDATE").
					WithArgs("100", "12345").
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectExec("INSERT").
					WithArgs(pgxmock.AnyArg(), "12345", "debit", "100").
					WillReturnError(assert.AnError)
				mock.ExpectRollback()
			},
			expectedErr: assert.AnError,
		},
		{
			name: "opened transaction is registered",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectBeginTx(readCommitted)
				mock.ExpectExec("UPDATE").
					WithArgs("100", "12345").
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectExec("INSERT").
					WithArgs(pgxmock.AnyArg(), "12345", "debit", "100").
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
			expectedOpen: 1,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ledger, mock, _ := newMockLedger(t)
			tt.prepareFn(t, mock)

			_, err := ledger.Debit(t.Context(), decimal.NewFromInt(100), domain.Account{Number: "12345"}, nil)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectedOpen, ledger.openTransactions())
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestLedger_CreditUnknownAccountInOpenTransaction(t *testing.T) {
	t.Parallel()
	ledger, mock, _ := newMockLedger(t)

	mock.ExpectBeginTx(readCommitted)
	mock.ExpectExec("UPDATE").
		WithArgs("10", "12345").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("INSERT").
		WithArgs(pgxmock.AnyArg(), "12345", "debit", "10").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("UPDATE").
		WithArgs("10", "00000").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectRollback()

	handle, err := ledger.Debit(t.Context(), decimal.NewFromInt(10), domain.Account{Number: "12345"}, nil)
	require.NoError(t, err)

	_, err = ledger.Credit(t.Context(), decimal.NewFromInt(10), domain.Account{Number: "00000"}, handle.Ref())
	assert.ErrorIs(t, err, &domain.ValidationError{})
	assert.Equal(t, 1, ledger.openTransactions(), "continued transaction stays open for the caller to roll back")

	require.NoError(t, ledger.Rollback(t.Context(), handle))
	assert.Equal(t, 0, ledger.openTransactions())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedger_CommitFailureThenRollback(t *testing.T) {
	t.Parallel()
	ledger, mock, _ := newMockLedger(t)

	mock.ExpectBeginTx(readCommitted)
	mock.ExpectExec("UPDATE").
		WithArgs("10", "54321").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("INSERT").
		WithArgs(pgxmock.AnyArg(), "54321", "credit", "10").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit().WillReturnError(assert.AnError)
	mock.ExpectRollback().WillReturnError(pgx.ErrTxClosed)

	handle, err := ledger.Credit(t.Context(), decimal.NewFromInt(10), domain.Account{Number: "54321"}, nil)
	require.NoError(t, err)

	err = ledger.Commit(t.Context(), handle)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 1, ledger.openTransactions())

	assert.NoError(t, ledger.Rollback(t.Context(), handle))
	assert.Equal(t, 0, ledger.openTransactions())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedger_UnknownHandle(t *testing.T) {
	t.Parallel()
	ledger, mock, _ := newMockLedger(t)

	unknown := domain.NewTxHandle()

	_, err := ledger.Debit(t.Context(), decimal.NewFromInt(10), domain.Account{Number: "12345"}, unknown.Ref())
	assert.ErrorIs(t, err, &domain.UnknownTransactionError{})

	assert.ErrorIs(t, ledger.Commit(t.Context(), unknown), &domain.UnknownTransactionError{})
	assert.ErrorIs(t, ledger.Rollback(t.Context(), unknown), &domain.UnknownTransactionError{})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedger_FailedRollbackOfNewTransactionIsLogged(t *testing.T) {
	t.Parallel()
	ledger, mock, logger := newMockLedger(t)

	mock.ExpectBeginTx(readCommitted)
	mock.ExpectExec("UPDATE").
		WithArgs("10", "12345").
		WillReturnError(assert.AnError)
	mock.ExpectRollback().WillReturnError(assert.AnError)
	logger.EXPECT().Error("failed to rollback transaction", "transaction", gomock.Any(), "error", assert.AnError.Error())

	_, err := ledger.Debit(t.Context(), decimal.NewFromInt(10), domain.Account{Number: "12345"}, nil)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 0, ledger.openTransactions())
}
