package domain

import "errors"

var (
	ErrMissingParams   = errors.New("missing price or dogId")
	ErrInvalidDogID    = errors.New("dog id is missing or not a number")
	ErrInvalidPrice    = errors.New("price is not a number")
	ErrMissingCategory = errors.New("accessory category is missing")
	ErrImageGeneration = errors.New("could not generate image")
	ErrNoSession       = errors.New("no user session")
)
