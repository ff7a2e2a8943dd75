package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type MoneyMovedEvent struct {
	ID            string          `json:"id"`
	Kind          MovementKind    `json:"kind"`
	FromAccount   string          `json:"from_account,omitempty"`
	ToAccount     string          `json:"to_account,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	TransactionID string          `json:"transaction_id"`
	OccurredAt    time.Time       `json:"occurred_at"`
}

type EventPublisher interface {
	Publish(ctx context.Context, event MoneyMovedEvent) error
}

type NopEventPublisher struct{}

func (NopEventPublisher) Publish(context.Context, MoneyMovedEvent) error {
	return nil
}
