package models

import (
	"time"

	"github.com/google/uuid"
)

type Business struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Slug        string    `json:"slug" db:"slug"`
	Description *string   `json:"description,omitempty" db:"description"`
	LogoURL     *string   `json:"logo_url,omitempty" db:"logo_url"`
	BannerURL   *string   `json:"banner_url,omitempty" db:"banner_url"`
	OwnerID     string    `json:"owner_id" db:"owner_id"`
	Website     *string   `json:"website,omitempty" db:"website"`
	Location    *string   `json:"location,omitempty" db:"location"`
	Category    *string   `json:"category,omitempty" db:"category"`
	IsFeatured  bool      `json:"is_featured" db:"is_featured"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

type CreateBusinessRequest struct {
	Name        string  `json:"name" validate:"required,lte=255"`
	Slug        string  `json:"slug" validate:"required,lte=255"`
	Description *string `json:"description"`
	LogoURL     *string `json:"logo_url"`
	BannerURL   *string `json:"banner_url"`
	OwnerID     string  `json:"owner_id"`
	Website     *string `json:"website"`
	Location    *string `json:"location"`
	Category    *string `json:"category"`
}
