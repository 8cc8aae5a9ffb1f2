package domain

import (
	"time"

	"github.com/google/uuid"
)

type PaymentEventKind string

const (
	EventAccessoryPurchased PaymentEventKind = "accessory_purchased"
	EventDonationCompleted  PaymentEventKind = "donation_completed"
)

// PaymentEvent is published after a purchase or donation has been recorded.
// ID is fixed when the event is built, so consumers can drop duplicates.
type PaymentEvent struct {
	ID         uuid.UUID        `json:"id"`
	Kind       PaymentEventKind `json:"kind"`
	DogID      int64            `json:"dog_id"`
	UserID     string           `json:"user_id"`
	Price      Amount           `json:"price"`
	Reference  string           `json:"reference"`
	OccurredAt time.Time        `json:"occurred_at"`
}
