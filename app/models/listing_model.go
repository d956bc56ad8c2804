package models

import (
	"time"

	"github.com/google/uuid"
)

// Listing categories. Type and Category are redundant duplicates kept for
// compatibility with existing rows; treat Category as the source of truth.
const (
	CategoryForSale = "for-sale"
	CategoryService = "service"
	CategoryHousing = "housing"
	CategoryRequest = "request"
)

type Listing struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	// Price is nil for "free" or "negotiable" listings.
	Price       *float64 `json:"price" db:"price"`
	Type        string   `json:"type" db:"type"` // Deprecated: duplicate of Category.
	Category    string   `json:"category" db:"category"`
	Subcategory *string  `json:"subcategory,omitempty" db:"subcategory"`
	Images      []string `json:"images" db:"images"`
	SellerID    string   `json:"seller_id" db:"seller_id"`
	SellerName  string   `json:"seller_name" db:"seller_name"`
	Whatsapp    *string  `json:"whatsapp,omitempty" db:"whatsapp"`
	Telegram    *string  `json:"telegram,omitempty" db:"telegram"`
	Available   bool     `json:"available" db:"available"`
	Views       int      `json:"views" db:"views"`
	// Deprecated: businesses are being phased out, column kept for old rows.
	BusinessID *string   `json:"business_id,omitempty" db:"business_id"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

type CreateListingRequest struct {
	Title       string   `json:"title" validate:"required,lte=255"`
	Description string   `json:"description" validate:"required"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Type        string   `json:"type" validate:"omitempty,oneof=for-sale service housing request"`
	Category    string   `json:"category" validate:"required,oneof=for-sale service housing request"`
	Subcategory *string  `json:"subcategory"`
	Images      []string `json:"images"`
	SellerID    string   `json:"seller_id"`
	SellerName  string   `json:"seller_name" validate:"required,lte=255"`
	Whatsapp    *string  `json:"whatsapp"`
	Telegram    *string  `json:"telegram"`
}

type SetAvailabilityRequest struct {
	Available *bool `json:"available" validate:"required"`
}
