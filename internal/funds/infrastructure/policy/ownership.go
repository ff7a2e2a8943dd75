package policy

import (
	"context"

	"github.com/Lexv0lk/funds-service/internal/funds/domain"
)

// OwnershipAuthorizer lets a user withdraw only from accounts listed in the
// user's token claims.
type OwnershipAuthorizer struct{}

func NewOwnershipAuthorizer() *OwnershipAuthorizer {
	return &OwnershipAuthorizer{}
}

func (OwnershipAuthorizer) IsAuthorizedToWithdraw(_ context.Context, account domain.Account, user domain.User) (bool, error) {
	return user.Owns(account.Number), nil
}
