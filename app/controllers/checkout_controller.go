package controllers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/floatlist/floatlist-backend/app/models"
	"github.com/floatlist/floatlist-backend/pkg/config"
	"github.com/floatlist/floatlist-backend/pkg/payments"
	"github.com/floatlist/floatlist-backend/pkg/utils"
)

var validate = validator.New()

// PaymentService is what the checkout endpoints need from the payments
// layer; *payments.Client satisfies it, tests substitute a stub.
type PaymentService interface {
	Enabled() bool
	CreatePurchaseSession(req models.CheckoutRequest, origin string) (*payments.Session, error)
	CreateRentalSession(req models.SubscriptionCheckoutRequest, origin string) (*payments.Session, error)
}

type CheckoutController struct {
	Payments PaymentService
	Config   *config.Config
}

func (ctl *CheckoutController) origin(c *fiber.Ctx) string {
	return utils.ResolveOrigin(c.Get("Origin"), ctl.Config.AllowedOrigins, ctl.Config.SiteURL)
}

// CreateCheckout handles POST /checkout: a one-time purchase session.
func (ctl *CheckoutController) CreateCheckout(c *fiber.Ctx) error {
	req := &models.CheckoutRequest{}
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	// A disabled processor answers 503 even for bodies that would fail
	// validation.
	if !ctl.Payments.Enabled() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Payment processing is not configured"})
	}

	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing required fields"})
	}

	sess, err := ctl.Payments.CreatePurchaseSession(*req, ctl.origin(c))
	if err != nil {
		log.Printf("stripe checkout error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create checkout session"})
	}

	return c.Status(fiber.StatusOK).JSON(models.CheckoutSessionResponse{SessionID: sess.ID, URL: sess.URL})
}

// CreateSubscriptionCheckout handles POST /checkout/subscription: a
// recurring rental session, optionally with a one-time deposit.
func (ctl *CheckoutController) CreateSubscriptionCheckout(c *fiber.Ctx) error {
	req := &models.SubscriptionCheckoutRequest{}
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if !ctl.Payments.Enabled() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Payment processing is not configured"})
	}

	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing required fields"})
	}

	sess, err := ctl.Payments.CreateRentalSession(*req, ctl.origin(c))
	if err != nil {
		log.Printf("stripe subscription error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create subscription session"})
	}

	return c.Status(fiber.StatusOK).JSON(models.CheckoutSessionResponse{SessionID: sess.ID, URL: sess.URL})
}
