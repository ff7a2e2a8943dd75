package application

import (
	"context"
	"fmt"
	"time"

	"github.com/Lexv0lk/funds-service/internal/funds/domain"
	"github.com/Lexv0lk/funds-service/internal/pkg/logging"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MoneyMovementCase sequences validation, authorization and ledger postings
// for transfers, withdrawals and deposits.
//
// Failures detected before the first posting are returned as errors. Once a
// posting has been made, a failure rolls the ledger transaction back and is
// reported only as a false result; the cause goes to the logger.
type MoneyMovementCase struct {
	ledger     domain.Ledger
	authorizer domain.Authorizer
	publisher  domain.EventPublisher
	logger     logging.Logger
}

func NewMoneyMovementCase(
	ledger domain.Ledger,
	authorizer domain.Authorizer,
	publisher domain.EventPublisher,
	logger logging.Logger,
) *MoneyMovementCase {
	return &MoneyMovementCase{
		ledger:     ledger,
		authorizer: authorizer,
		publisher:  publisher,
		logger:     logger,
	}
}

func (mc *MoneyMovementCase) TransferMoney(ctx context.Context, amount decimal.Decimal, fromNumber, toNumber string, user domain.User) (bool, error) {
	if amount.LessThanOrEqual(domain.MinimumAmount) {
		return false, domain.NewMinimumAmountError(domain.MovementTransfer)
	}

	if fromNumber == toNumber {
		return false, domain.NewSameAccountError(fromNumber)
	}

	fromAccount, err := mc.findAccount(ctx, fromNumber)
	if err != nil {
		return false, err
	}

	toAccount, err := mc.findAccount(ctx, toNumber)
	if err != nil {
		return false, err
	}

	err = mc.ensureCanWithdraw(ctx, amount, fromAccount, user)
	if err != nil {
		return false, err
	}

	tx, err := mc.ledger.Debit(ctx, amount, fromAccount, nil)
	if err != nil {
		return false, fmt.Errorf("failed to debit account %s: %w", fromNumber, err)
	}

	_, err = mc.ledger.Credit(ctx, amount, toAccount, tx.Ref())
	if err != nil {
		mc.rollback(ctx, domain.MovementTransfer, tx, fmt.Errorf("failed to credit account %s: %w", toNumber, err))
		return false, nil
	}

	if !mc.commit(ctx, domain.MovementTransfer, tx) {
		return false, nil
	}

	mc.publish(ctx, domain.MoneyMovedEvent{
		Kind:        domain.MovementTransfer,
		FromAccount: fromNumber,
		ToAccount:   toNumber,
		Amount:      amount,
	}, tx)

	return true, nil
}

func (mc *MoneyMovementCase) Withdraw(ctx context.Context, amount decimal.Decimal, fromNumber string, user domain.User) (bool, error) {
	if amount.LessThanOrEqual(domain.MinimumAmount) {
		return false, domain.NewMinimumAmountError(domain.MovementWithdrawal)
	}

	fromAccount, err := mc.findAccount(ctx, fromNumber)
	if err != nil {
		return false, err
	}

	err = mc.ensureCanWithdraw(ctx, amount, fromAccount, user)
	if err != nil {
		return false, err
	}

	tx, err := mc.ledger.Debit(ctx, amount, fromAccount, nil)
	if err != nil {
		return false, fmt.Errorf("failed to debit account %s: %w", fromNumber, err)
	}

	if !mc.commit(ctx, domain.MovementWithdrawal, tx) {
		return false, nil
	}

	mc.publish(ctx, domain.MoneyMovedEvent{
		Kind:        domain.MovementWithdrawal,
		FromAccount: fromNumber,
		Amount:      amount,
	}, tx)

	return true, nil
}

// Deposit is neither amount-limited nor user-gated.
func (mc *MoneyMovementCase) Deposit(ctx context.Context, amount decimal.Decimal, toNumber string) (bool, error) {
	toAccount, err := mc.findAccount(ctx, toNumber)
	if err != nil {
		return false, err
	}

	tx, err := mc.ledger.Credit(ctx, amount, toAccount, nil)
	if err != nil {
		return false, fmt.Errorf("failed to credit account %s: %w", toNumber, err)
	}

	if !mc.commit(ctx, domain.MovementDeposit, tx) {
		return false, nil
	}

	mc.publish(ctx, domain.MoneyMovedEvent{
		Kind:      domain.MovementDeposit,
		ToAccount: toNumber,
		Amount:    amount,
	}, tx)

	return true, nil
}

func (mc *MoneyMovementCase) findAccount(ctx context.Context, number string) (domain.Account, error) {
	account, found, err := mc.ledger.GetAccount(ctx, number)
	if err != nil {
		return domain.Account{}, fmt.Errorf("failed to get account %s: %w", number, err)
	}

	if !found {
		return domain.Account{}, domain.NewAccountNotFoundError(number)
	}

	return account, nil
}

func (mc *MoneyMovementCase) ensureCanWithdraw(ctx context.Context, amount decimal.Decimal, account domain.Account, user domain.User) error {
	authorized, err := mc.authorizer.IsAuthorizedToWithdraw(ctx, account, user)
	if err != nil {
		return fmt.Errorf("failed to authorize withdrawal from account %s: %w", account.Number, err)
	}

	if !authorized {
		return domain.NewAuthorizationError(account.Number, user.Name)
	}

	balance, err := mc.ledger.GetBalance(ctx, account)
	if err != nil {
		return fmt.Errorf("failed to get balance of account %s: %w", account.Number, err)
	}

	if balance.LessThan(amount) {
		return domain.NewInsufficientFundsError(account.Number)
	}

	return nil
}

func (mc *MoneyMovementCase) commit(ctx context.Context, kind domain.MovementKind, tx domain.TxHandle) bool {
	err := mc.ledger.Commit(ctx, tx)
	if err != nil {
		mc.rollback(ctx, kind, tx, fmt.Errorf("failed to commit transaction: %w", err))
		return false
	}

	return true
}

func (mc *MoneyMovementCase) rollback(ctx context.Context, kind domain.MovementKind, tx domain.TxHandle, cause error) {
	mc.logger.Error("money movement rolled back",
		"kind", string(kind),
		"transaction", tx.String(),
		"error", cause.Error(),
	)

	err := mc.ledger.Rollback(ctx, tx)
	if err != nil {
		mc.logger.Error("failed to rollback transaction", "transaction", tx.String(), "error", err.Error())
	}
}

func (mc *MoneyMovementCase) publish(ctx context.Context, event domain.MoneyMovedEvent, tx domain.TxHandle) {
	event.ID = uuid.NewString()
	event.TransactionID = tx.String()
	event.OccurredAt = time.Now().UTC()

	err := mc.publisher.Publish(ctx, event)
	if err != nil {
		mc.logger.Warn("failed to publish money moved event", "transaction", tx.String(), "error", err.Error())
	}
}
