package backend

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"padrino-pay/internal/domain"
)

type aiDogData struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Breed string `json:"breed"`
	Size  string `json:"size"`
	Age   string `json:"age"`
	Color string `json:"color"`
}

type aiAccessoryData struct {
	Category    string `json:"category"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type generateImageRequest struct {
	DogData       aiDogData       `json:"dogData"`
	AccessoryData aiAccessoryData `json:"accessoryData"`
}

type GenerateImageResult struct {
	Success    bool   `json:"success"`
	ImageURL   string `json:"imageUrl"`
	StorageURL string `json:"storageUrl"`
	Error      string `json:"error"`
}

// URL prefers the stored copy of the image over the provider URL.
func (r GenerateImageResult) URL() string {
	if r.StorageURL != "" {
		return r.StorageURL
	}
	return r.ImageURL
}

// GenerateDogWithAccessory asks POST /ai/generate-dog-with-accessory for a
// picture of the dog wearing the accessory. A response with success=false is
// not an error at this level.
func (c *Client) GenerateDogWithAccessory(ctx context.Context, dog domain.DogSummary, accessory domain.AccessoryDescriptor) (*GenerateImageResult, error) {
	req := generateImageRequest{
		DogData: aiDogData{
			ID:    dog.ID,
			Name:  dog.Name,
			Breed: orDefault(dog.Breed, "dog"),
			Size:  orDefault(dog.Size, "medium"),
			Age:   orDefault(dog.Age, "adult"),
			Color: orDefault(dog.Color, "brown"),
		},
		AccessoryData: aiAccessoryData{
			Category:    accessory.Category,
			Name:        accessory.Name,
			Description: orDefault(accessory.Description, accessory.Name),
		},
	}
	c.logger.Debug("Requesting AI image",
		zap.Int64("dog_id", dog.ID),
		zap.String("category", accessory.Category),
		zap.String("accessory", accessory.Name))

	var result GenerateImageResult
	if err := c.fetchJSON(ctx, http.MethodPost, "/ai/generate-dog-with-accessory", req, &result, nil); err != nil {
		return nil, err
	}
	return &result, nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
