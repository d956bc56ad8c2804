package controllers

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/floatlist/floatlist-backend/app/models"
	"github.com/floatlist/floatlist-backend/app/queries"
)

// Businesses are being phased out in favor of plain seller listings; this
// surface stays read-mostly until old storefronts are migrated.
type BusinessController struct {
	Businesses *queries.BusinessQueries
}

func (ctl *BusinessController) GetBusinessBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing slug"})
	}

	business, err := ctl.Businesses.GetBusinessBySlug(slug)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Business not found"})
	}
	return c.JSON(business)
}

func (ctl *BusinessController) GetFeaturedBusinesses(c *fiber.Ctx) error {
	businesses, err := ctl.Businesses.GetFeaturedBusinesses()
	if err != nil {
		log.Printf("error fetching featured businesses: %v", err)
		businesses = []models.Business{}
	}
	return c.JSON(businesses)
}

func (ctl *BusinessController) CreateBusiness(c *fiber.Ctx) error {
	req := &models.CreateBusinessRequest{}
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing required fields"})
	}

	now := time.Now()
	business := &models.Business{
		ID:          uuid.New(),
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		LogoURL:     req.LogoURL,
		BannerURL:   req.BannerURL,
		OwnerID:     req.OwnerID,
		Website:     req.Website,
		Location:    req.Location,
		Category:    req.Category,
		IsFeatured:  false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := ctl.Businesses.CreateBusiness(business); err != nil {
		if errors.Is(err, queries.ErrSlugTaken) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Slug already taken"})
		}
		log.Printf("error creating business: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create business"})
	}

	return c.Status(fiber.StatusCreated).JSON(business)
}
