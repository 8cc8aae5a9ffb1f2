package domain

type DonationState string

const (
	DonationCompleted DonationState = "completed"
)

type Donation struct {
	ID            int64         `json:"id,omitempty"`
	SponsorID     string        `json:"id_padrino"`
	DogID         int64         `json:"id_dog"`
	NeedID        *int64        `json:"id_need"`
	Price         Amount        `json:"price"`
	TransactionID string        `json:"transaction_id"`
	State         DonationState `json:"state"`
}
