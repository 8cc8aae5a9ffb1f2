package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    Amount
		wantErr bool
	}{
		{in: "10", want: 10},
		{in: "10.5", want: 10.5},
		{in: "0.99", want: 0.99},
		{in: "", wantErr: true},
		{in: "0", wantErr: true},
		{in: "-10", wantErr: true},
		{in: "+10", wantErr: true},
		{in: "NaN", wantErr: true},
		{in: "Inf", wantErr: true},
		{in: "0x1p3", wantErr: true},
		{in: "1e3", wantErr: true},
		{in: "10.999", wantErr: true},
		{in: " 10", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAmount(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPrice)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAmount_UnmarshalJSON(t *testing.T) {
	var v struct {
		Price Amount `json:"price"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"price":"25.00"}`), &v))
	assert.Equal(t, Amount(25), v.Price)

	require.NoError(t, json.Unmarshal([]byte(`{"price":12.5}`), &v))
	assert.Equal(t, Amount(12.5), v.Price)

	assert.Error(t, json.Unmarshal([]byte(`{"price":"abc"}`), &v))
}
