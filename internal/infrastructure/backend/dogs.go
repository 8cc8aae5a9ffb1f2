package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"padrino-pay/internal/domain"
)

type dogResponse struct {
	ID    int64      `json:"id"`
	Name  string     `json:"name"`
	Breed string     `json:"breed"`
	Size  string     `json:"size"`
	Age   flexString `json:"age"`
	Color string     `json:"color"`
}

// flexString accepts a JSON string or number. Zero, null and other JSON
// values decode to the empty string.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	var v any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return err
	}
	switch t := v.(type) {
	case string:
		*f = flexString(t)
	case json.Number:
		if n, err := t.Float64(); err == nil && n == 0 {
			*f = ""
			return nil
		}
		*f = flexString(t.String())
	default:
		*f = ""
	}
	return nil
}

// GetDog fetches GET /dogs/{id}. Fields the backend leaves empty stay empty.
func (c *Client) GetDog(ctx context.Context, id int64) (domain.DogSummary, error) {
	var dog dogResponse
	if err := c.fetchJSON(ctx, http.MethodGet, fmt.Sprintf("/dogs/%d", id), nil, &dog, nil); err != nil {
		return domain.DogSummary{}, err
	}
	return domain.DogSummary{
		ID:    dog.ID,
		Name:  dog.Name,
		Breed: dog.Breed,
		Size:  dog.Size,
		Age:   string(dog.Age),
		Color: dog.Color,
	}, nil
}

// UpdateDogStats notifies POST /dogs/{id}/update-stats. The response body is
// ignored.
func (c *Client) UpdateDogStats(ctx context.Context, id int64, category string) error {
	body := map[string]string{"category": category}
	return c.fetchJSON(ctx, http.MethodPost, fmt.Sprintf("/dogs/%d/update-stats", id), body, nil, nil)
}
