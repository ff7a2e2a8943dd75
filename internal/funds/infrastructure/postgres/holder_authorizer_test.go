package postgres

import (
	"testing"

	"github.com/Lexv0lk/funds-service/internal/funds/domain"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHolderAuthorizer_IsAuthorizedToWithdraw(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name string
		user domain.User

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)

		expectedAuthorized bool
		expectedErr        error
	}

	tests := []testCase{
		{
			name: "user holds account",
			user: domain.User{Name: "alice"},
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("SELECT EXISTS").
					WithArgs("12345", "alice").
					WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
			},
			expectedAuthorized: true,
		},
		{
			name: "user does not hold account",
			user: domain.User{Name: "mallory", AccountNumbers: []string{"12345"}},
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("SELECT EXISTS").
					WithArgs("12345", "mallory").
					WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
			},
			expectedAuthorized: false,
		},
		{
			name: "database error",
			user: domain.User{Name: "alice"},
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("SELECT EXISTS").
					WithArgs("12345", "alice").
					WillReturnError(assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			mock, err := pgxmock.NewConn()
			require.NoError(t, err)
			defer mock.Close(t.Context())

			tt.prepareFn(t, mock)

			authorizer := NewHolderAuthorizer(mock)
			authorized, err := authorizer.IsAuthorizedToWithdraw(t.Context(), domain.Account{Number: "12345"}, tt.user)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectedAuthorized, authorized)
		})
	}
}
