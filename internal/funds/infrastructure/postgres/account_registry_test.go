package postgres

import (
	"testing"

	mocks "github.com/Lexv0lk/funds-service/gen/mocks/logging"
	"github.com/Lexv0lk/funds-service/internal/funds/domain"
	"github.com/Lexv0lk/funds-service/internal/pkg/database"
	"github.com/golang/mock/gomock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountRegistry_OpenAccount(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name string

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)

		expectedErr error
	}

	tests := []testCase{
		{
			name: "account opened",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectBeginTx(readCommitted)
				mock.ExpectExec("INSERT INTO accounts").
					WithArgs("12345").
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
				mock.ExpectExec("INSERT INTO account_holders").
					WithArgs("12345", "alice").
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
				mock.ExpectCommit()
				mock.ExpectRollback()
			},
		},
		{
			name: "account already exists",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectBeginTx(readCommitted)
				mock.ExpectExec("INSERT INTO accounts").
					WithArgs("12345").
					WillReturnError(&pgconn.PgError{Code: uniqueViolationCode})
				mock.ExpectRollback()
			},
			expectedErr: &domain.AccountExistsError{},
		},
		{
			name: "holder insert fails",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectBeginTx(readCommitted)
				mock.ExpectExec("INSERT INTO accounts").
					WithArgs("12345").
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
				mock.ExpectExec("INSERT INTO account_holders").
					WithArgs("12345", "alice").
					WillReturnError(assert.AnError)
				mock.ExpectRollback()
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			mock, err := pgxmock.NewConn()
			require.NoError(t, err)
			defer mock.Close(t.Context())

			tt.prepareFn(t, mock)

			registry := NewAccountRegistry(database.NewDelegateTxManager(mock, mocks.NewMockLogger(ctrl)))
			err = registry.OpenAccount(t.Context(), "12345", "alice")

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
