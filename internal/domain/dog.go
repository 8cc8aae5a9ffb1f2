package domain

const (
	DefaultDogName  = "perro"
	DefaultDogBreed = "perro mestizo"
	DefaultDogSize  = "mediano"
	DefaultDogAge   = "adulto"
	DefaultDogColor = "cafe"
)

type DogSummary struct {
	ID    int64
	Name  string
	Breed string
	Size  string
	Age   string
	Color string
}

// DefaultDogSummary is used when the dog cannot be fetched.
func DefaultDogSummary(id int64) DogSummary {
	return DogSummary{
		ID:    id,
		Name:  DefaultDogName,
		Breed: DefaultDogBreed,
		Size:  DefaultDogSize,
		Age:   DefaultDogAge,
		Color: DefaultDogColor,
	}
}

// WithDefaults fills every empty field with its default.
func (d DogSummary) WithDefaults() DogSummary {
	def := DefaultDogSummary(d.ID)
	if d.Name == "" {
		d.Name = def.Name
	}
	if d.Breed == "" {
		d.Breed = def.Breed
	}
	if d.Size == "" {
		d.Size = def.Size
	}
	if d.Age == "" {
		d.Age = def.Age
	}
	if d.Color == "" {
		d.Color = def.Color
	}
	return d
}
