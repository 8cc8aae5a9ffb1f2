package domain

type PaymentType string

const (
	PaymentAccessory PaymentType = "accessory"
	PaymentNeed      PaymentType = "need"
)

// PaymentContext is what the payment screen receives through its query string.
// Price and DogID are kept as received; each workflow parses what it needs.
type PaymentContext struct {
	Type              PaymentType
	Price             string
	DogID             string
	AccessoryCategory string
	AccessoryName     string
	NeedID            string
}

func (pc PaymentContext) IsAccessory() bool {
	return pc.Type == PaymentAccessory
}
