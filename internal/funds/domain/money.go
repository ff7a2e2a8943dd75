package domain

import "github.com/shopspring/decimal"

// MinimumAmount is an exclusive floor for transfers and withdrawals.
var MinimumAmount = decimal.NewFromInt(1)

// AmountScale is the number of decimal places a ledger stores.
const AmountScale = 4

type MovementKind string

const (
	MovementTransfer   MovementKind = "transfer"
	MovementWithdrawal MovementKind = "withdrawal"
	MovementDeposit    MovementKind = "deposit"
)
