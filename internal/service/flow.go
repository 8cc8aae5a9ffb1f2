package service

import (
	"context"
	"strconv"

	"padrino-pay/internal/domain"
	"padrino-pay/internal/screen"
	"padrino-pay/internal/session"
	"padrino-pay/internal/worker"
)

// state is what the steps of one submission share.
type state struct {
	sess session.Session
	pc   domain.PaymentContext

	dogID int64
	price domain.Amount

	dog       domain.DogSummary
	accessory domain.AccessoryDescriptor
	imageURL  string
	purchase  *domain.AccessoryPurchase
	donation  *domain.Donation
}

type step struct {
	name string
	// label replaces the submit control text while the step runs. Empty
	// keeps the previous one.
	label string
	run   func(ctx context.Context, st *state) error
}

type flow struct {
	name      string
	steps     []step
	followUps func(st *state) []worker.Job
	success   func(st *state) screen.SuccessView
	alert     func(err error) string
}

// parseID returns 0 for anything that is not a positive integer.
func parseID(raw string) int64 {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0
	}
	return id
}

func parseOptionalID(raw string) *int64 {
	if id := parseID(raw); id > 0 {
		return &id
	}
	return nil
}
