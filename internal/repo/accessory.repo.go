package repo

import (
	"context"
	"database/sql"
	"fmt"

	"padrino-pay/internal/domain"
)

type AccessoryRepo interface {
	// Insert stores the purchase and returns the row as persisted.
	Insert(ctx context.Context, purchase *domain.AccessoryPurchase) (*domain.AccessoryPurchase, error)
}

type accessoryRepo struct {
	db *sql.DB
}

func NewAccessoryRepo(db *sql.DB) AccessoryRepo {
	return &accessoryRepo{db: db}
}

func (r *accessoryRepo) Insert(ctx context.Context, purchase *domain.AccessoryPurchase) (*domain.AccessoryPurchase, error) {
	query := `
		INSERT INTO "Accessories" (id_dog, id_user, category, name, price, imagen_ia)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, id_dog, id_user, category, name, price, imagen_ia, created_at
	`
	row := r.db.QueryRowContext(ctx, query,
		purchase.DogID,
		purchase.UserID,
		nullString(purchase.Category),
		nullString(purchase.Name),
		float64(purchase.Price),
		nullString(purchase.ImageURL),
	)

	var (
		p                        domain.AccessoryPurchase
		category, name, imageURL sql.NullString
		price                    float64
	)
	err := row.Scan(
		&p.ID,
		&p.DogID,
		&p.UserID,
		&category,
		&name,
		&price,
		&imageURL,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert accessory purchase: %w", err)
	}
	p.Category = category.String
	p.Name = name.String
	p.Price = domain.Amount(price)
	p.ImageURL = imageURL.String
	return &p, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
