package domain

import "fmt"

//region ValidationError

type ValidationReason int

const (
	ReasonMinimumAmount ValidationReason = iota + 1
	ReasonSameAccount
	ReasonAccountNotFound
)

// ValidationError is returned before any posting. AccountNumber is empty when
// the reason does not concern a particular account.
type ValidationError struct {
	Reason        ValidationReason
	AccountNumber string
	Msg           string
}

func NewMinimumAmountError(kind MovementKind) *ValidationError {
	return &ValidationError{
		Reason: ReasonMinimumAmount,
		Msg:    fmt.Sprintf("Minimum amount for %s is %s$", kind, MinimumAmount),
	}
}

func NewSameAccountError(accountNumber string) *ValidationError {
	return &ValidationError{
		Reason:        ReasonSameAccount,
		AccountNumber: accountNumber,
		Msg:           fmt.Sprintf("Cannot transfer to same account number '%s'", accountNumber),
	}
}

func NewAccountNotFoundError(accountNumber string) *ValidationError {
	return &ValidationError{
		Reason:        ReasonAccountNotFound,
		AccountNumber: accountNumber,
		Msg:           fmt.Sprintf("Account '%s' not found", accountNumber),
	}
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func (e *ValidationError) Is(target error) bool {
	_, ok := target.(*ValidationError)
	return ok
}

//endregion

//region AuthorizationError

type AuthorizationError struct {
	AccountNumber string
	UserName      string
}

func NewAuthorizationError(accountNumber, userName string) *AuthorizationError {
	return &AuthorizationError{
		AccountNumber: accountNumber,
		UserName:      userName,
	}
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("Cannot withdraw from account '%s' because user '%s' is not authorized to perform withdrawal",
		e.AccountNumber, e.UserName)
}

func (e *AuthorizationError) Is(target error) bool {
	_, ok := target.(*AuthorizationError)
	return ok
}

//endregion

//region InsufficientFundsError

type InsufficientFundsError struct {
	AccountNumber string
}

func NewInsufficientFundsError(accountNumber string) *InsufficientFundsError {
	return &InsufficientFundsError{AccountNumber: accountNumber}
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("Not enough money on account '%s'", e.AccountNumber)
}

func (e *InsufficientFundsError) Is(target error) bool {
	_, ok := target.(*InsufficientFundsError)
	return ok
}

//endregion

//region UnknownTransactionError

type UnknownTransactionError struct {
	Handle TxHandle
}

func (e *UnknownTransactionError) Error() string {
	return fmt.Sprintf("transaction %s is not open", e.Handle)
}

func (e *UnknownTransactionError) Is(target error) bool {
	_, ok := target.(*UnknownTransactionError)
	return ok
}

//endregion

//region AccountExistsError

type AccountExistsError struct {
	AccountNumber string
}

func (e *AccountExistsError) Error() string {
	return fmt.Sprintf("Account '%s' already exists", e.AccountNumber)
}

func (e *AccountExistsError) Is(target error) bool {
	_, ok := target.(*AccountExistsError)
	return ok
}

//endregion
