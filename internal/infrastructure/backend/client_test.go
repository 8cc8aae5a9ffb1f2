package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"padrino-pay/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL+"/api", 5*time.Second, zap.NewNop())
}

func TestFetchJSON_NonSuccessBecomesStatusError(t *testing.T) {
	for _, code := range []int{http.StatusBadRequest, http.StatusUnauthorized, http.StatusNotFound, http.StatusBadGateway} {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(code)
			w.Write([]byte(`{"message":"nope"}`))
		})

		_, err := client.GetDog(context.Background(), 1)
		require.Error(t, err)

		var statusErr *StatusError
		require.True(t, errors.As(err, &statusErr))
		assert.Equal(t, code, statusErr.Code)
		assert.True(t, errors.Is(err, ErrUnexpectedStatus))
	}
}

func TestFetchJSON_MergesHeaders(t *testing.T) {
	var gotContentType, gotTrace string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotTrace = r.Header.Get("X-Trace")
		w.Write([]byte(`{}`))
	})

	err := client.fetchJSON(context.Background(), http.MethodGet, "/dogs", nil, nil, http.Header{"X-Trace": {"abc"}})
	require.NoError(t, err)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "abc", gotTrace)
}

func TestGetDog(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/dogs/3", r.URL.Path)
		w.Write([]byte(`{"id":3,"name":"Toby","breed":"beagle","size":"","age":4,"color":null}`))
	})

	dog, err := client.GetDog(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, domain.DogSummary{ID: 3, Name: "Toby", Breed: "beagle", Age: "4"}, dog)
}

func TestGetDog_AgeVariants(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{`"cachorro"`, "cachorro"},
		{`2.5`, "2.5"},
		{`0`, ""},
		{`null`, ""},
		{`true`, ""},
	}
	for _, tt := range tests {
		var f flexString
		require.NoError(t, json.Unmarshal([]byte(tt.raw), &f))
		assert.Equal(t, tt.want, string(f), tt.raw)
	}
}

func TestUpdateDogStats(t *testing.T) {
	var body map[string]string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/dogs/7/update-stats", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Write([]byte(`{"ok":true}`))
	})

	require.NoError(t, client.UpdateDogStats(context.Background(), 7, "accesorio"))
	assert.Equal(t, map[string]string{"category": "accesorio"}, body)
}

func TestCreateDonation(t *testing.T) {
	var sent map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/donations", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&sent))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":11,"id_padrino":"u-1","id_dog":3,"id_need":5,"price":"25.50","transaction_id":"TXN-1","state":"completed"}`))
	})

	needID := int64(5)
	created, err := client.CreateDonation(context.Background(), domain.Donation{
		SponsorID:     "u-1",
		DogID:         3,
		NeedID:        &needID,
		Price:         25.5,
		TransactionID: "TXN-1",
		State:         domain.DonationCompleted,
	})
	require.NoError(t, err)

	assert.Equal(t, "u-1", sent["id_padrino"])
	assert.Equal(t, float64(3), sent["id_dog"])
	assert.Equal(t, float64(5), sent["id_need"])
	assert.Equal(t, 25.5, sent["price"])
	assert.Equal(t, "completed", sent["state"])

	assert.Equal(t, int64(11), created.ID)
	assert.Equal(t, domain.Amount(25.5), created.Price)
	assert.Equal(t, "TXN-1", created.TransactionID)
}

func TestGenerateDogWithAccessory_AppliesRequestDefaults(t *testing.T) {
	var sent generateImageRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/ai/generate-dog-with-accessory", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&sent))
		w.Write([]byte(`{"success":true,"imageUrl":"https://img/raw.png","storageUrl":"https://cdn/stored.png"}`))
	})

	result, err := client.GenerateDogWithAccessory(context.Background(),
		domain.DogSummary{ID: 3, Name: "Toby"},
		domain.AccessoryDescriptor{Category: "collar", Name: "RedCollar"})
	require.NoError(t, err)

	assert.Equal(t, aiDogData{ID: 3, Name: "Toby", Breed: "dog", Size: "medium", Age: "adult", Color: "brown"}, sent.DogData)
	assert.Equal(t, aiAccessoryData{Category: "collar", Name: "RedCollar", Description: "RedCollar"}, sent.AccessoryData)
	assert.True(t, result.Success)
	assert.Equal(t, "https://cdn/stored.png", result.URL())
}

func TestGenerateImageResult_URLFallsBackToImageURL(t *testing.T) {
	r := GenerateImageResult{Success: true, ImageURL: "https://img/raw.png"}
	assert.Equal(t, "https://img/raw.png", r.URL())
}
