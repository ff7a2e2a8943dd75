package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/Lexv0lk/funds-service/internal/funds/domain"
	"github.com/shopspring/decimal"
)

type Direction string

const (
	DirectionDebit  Direction = "debit"
	DirectionCredit Direction = "credit"
)

type Posting struct {
	TransactionID domain.TxHandle
	AccountNumber string
	Direction     Direction
	Amount        decimal.Decimal
}

type account struct {
	balance  decimal.Decimal
	reserved decimal.Decimal
	holders  []string
}

// Ledger keeps accounts in memory. Postings are staged per transaction and
// applied together on commit. A staged debit reserves its amount, so a debit
// that the account cannot cover fails when it is posted, not at commit.
type Ledger struct {
	mu       sync.Mutex
	accounts map[string]*account
	open     map[domain.TxHandle][]Posting
	journal  []Posting
}

func NewLedger() *Ledger {
	return &Ledger{
		accounts: make(map[string]*account),
		open:     make(map[domain.TxHandle][]Posting),
	}
}

func (l *Ledger) OpenAccount(_ context.Context, number string, holder string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.accounts[number]; ok {
		return &domain.AccountExistsError{AccountNumber: number}
	}

	l.accounts[number] = &account{
		balance: decimal.Zero,
		holders: []string{holder},
	}
	return nil
}

// Seed opens an account with an initial balance, replacing any existing one.
func (l *Ledger) Seed(number string, balance decimal.Decimal, holders ...string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.accounts[number] = &account{
		balance: balance,
		holders: holders,
	}
}

func (l *Ledger) GetAccount(_ context.Context, number string) (domain.Account, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	acc, ok := l.accounts[number]
	if !ok {
		return domain.Account{}, false, nil
	}

	return domain.Account{Number: number, Balance: acc.balance}, true, nil
}

func (l *Ledger) GetBalance(_ context.Context, target domain.Account) (decimal.Decimal, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	acc, ok := l.accounts[target.Number]
	if !ok {
		return decimal.Zero, domain.NewAccountNotFoundError(target.Number)
	}

	return acc.balance, nil
}

func (l *Ledger) IsAuthorizedToWithdraw(_ context.Context, target domain.Account, user domain.User) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	acc, ok := l.accounts[target.Number]
	if !ok {
		return false, nil
	}

	return slices.Contains(acc.holders, user.Name), nil
}

func (l *Ledger) Debit(ctx context.Context, amount decimal.Decimal, target domain.Account, tx *domain.TxHandle) (domain.TxHandle, error) {
	return l.stage(ctx, DirectionDebit, amount, target, tx)
}

func (l *Ledger) Credit(ctx context.Context, amount decimal.Decimal, target domain.Account, tx *domain.TxHandle) (domain.TxHandle, error) {
	return l.stage(ctx, DirectionCredit, amount, target, tx)
}

func (l *Ledger) stage(_ context.Context, direction Direction, amount decimal.Decimal, target domain.Account, tx *domain.TxHandle) (domain.TxHandle, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	acc, ok := l.accounts[target.Number]
	if !ok {
		return domain.TxHandle{}, domain.NewAccountNotFoundError(target.Number)
	}

	var handle domain.TxHandle
	if tx == nil {
		handle = domain.NewTxHandle()
	} else {
		handle = *tx
		if _, ok := l.open[handle]; !ok {
			return domain.TxHandle{}, &domain.UnknownTransactionError{Handle: handle}
		}
	}

	if direction == DirectionDebit {
		if acc.balance.Sub(acc.reserved).LessThan(amount) {
			return domain.TxHandle{}, domain.NewInsufficientFundsError(target.Number)
		}
		acc.reserved = acc.reserved.Add(amount)
	}

	l.open[handle] = append(l.open[handle], Posting{
		TransactionID: handle,
		AccountNumber: target.Number,
		Direction:     direction,
		Amount:        amount,
	})

	return handle, nil
}

// Commit applies every staged posting of tx or none of them. A transaction
// that would leave a balance negative stays open.
func (l *Ledger) Commit(_ context.Context, tx domain.TxHandle) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	postings, ok := l.open[tx]
	if !ok {
		return &domain.UnknownTransactionError{Handle: tx}
	}

	balances := make(map[string]decimal.Decimal)
	order := make([]string, 0, len(postings))
	for _, p := range postings {
		current, seen := balances[p.AccountNumber]
		if !seen {
			current = l.accounts[p.AccountNumber].balance
			order = append(order, p.AccountNumber)
		}

		if p.Direction == DirectionDebit {
			balances[p.AccountNumber] = current.Sub(p.Amount)
		} else {
			balances[p.AccountNumber] = current.Add(p.Amount)
		}
	}

	for _, number := range order {
		if balances[number].IsNegative() {
			return domain.NewInsufficientFundsError(number)
		}
	}

	for number, balance := range balances {
		l.accounts[number].balance = balance
	}
	l.release(postings)
	l.journal = append(l.journal, postings...)
	delete(l.open, tx)

	return nil
}

func (l *Ledger) Rollback(_ context.Context, tx domain.TxHandle) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	postings, ok := l.open[tx]
	if !ok {
		return &domain.UnknownTransactionError{Handle: tx}
	}

	l.release(postings)
	delete(l.open, tx)
	return nil
}

func (l *Ledger) release(postings []Posting) {
	for _, p := range postings {
		if p.Direction == DirectionDebit {
			acc := l.accounts[p.AccountNumber]
			acc.reserved = acc.reserved.Sub(p.Amount)
		}
	}
}

// Postings returns committed postings in commit order.
func (l *Ledger) Postings() []Posting {
	l.mu.Lock()
	defer l.mu.Unlock()

	return slices.Clone(l.journal)
}
