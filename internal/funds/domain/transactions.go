package domain

import "github.com/google/uuid"

// TxHandle groups ledger postings that are committed or rolled back together.
// Postings that take a *TxHandle open a new transaction when it is nil.
type TxHandle uuid.UUID

func NewTxHandle() TxHandle {
	return TxHandle(uuid.New())
}

func (h TxHandle) Ref() *TxHandle {
	return &h
}

func (h TxHandle) String() string {
	return uuid.UUID(h).String()
}
