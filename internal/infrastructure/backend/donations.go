package backend

import (
	"context"
	"net/http"

	"padrino-pay/internal/domain"
)

// CreateDonation posts the donation to POST /donations and returns the
// record as stored by the backend.
func (c *Client) CreateDonation(ctx context.Context, donation domain.Donation) (*domain.Donation, error) {
	var created domain.Donation
	if err := c.fetchJSON(ctx, http.MethodPost, "/donations", donation, &created, nil); err != nil {
		return nil, err
	}
	return &created, nil
}
