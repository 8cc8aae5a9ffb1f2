package domain

import "time"

const (
	DefaultAccessoryCategory    = "accesorio"
	DefaultAccessoryName        = "accesorio para perro"
	DefaultAccessoryDescription = "accesorio"
)

type AccessoryDescriptor struct {
	Category    string
	Name        string
	Description string
}

func NewAccessoryDescriptor(category, name string) AccessoryDescriptor {
	d := AccessoryDescriptor{
		Category:    category,
		Name:        name,
		Description: name,
	}
	if d.Category == "" {
		d.Category = DefaultAccessoryCategory
	}
	if d.Name == "" {
		d.Name = DefaultAccessoryName
	}
	if d.Description == "" {
		d.Description = DefaultAccessoryDescription
	}
	return d
}

// AccessoryPurchase is a row of the "Accessories" table. Category and Name
// hold the raw values the buyer submitted and may be empty.
type AccessoryPurchase struct {
	ID        int64
	DogID     int64
	UserID    string
	Category  string
	Name      string
	Price     Amount
	ImageURL  string
	CreatedAt time.Time
}
