package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
)

var priceFormat = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)

// Amount is a price in the currency's major unit. The backend may encode it as
// a JSON number or, for numeric columns, as a string.
type Amount float64

// ParseAmount accepts a positive plain decimal with at most two fraction
// digits, the shape of the "Accessories".price column.
func ParseAmount(s string) (Amount, error) {
	if !priceFormat.MatchString(s) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPrice, s)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPrice, s)
	}
	return Amount(f), nil
}

func (a Amount) String() string {
	return strconv.FormatFloat(float64(a), 'f', -1, 64)
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", s, err)
		}
		*a = Amount(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*a = Amount(f)
	return nil
}
