package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/floatlist/floatlist-backend/app/controllers"
)

func RegisterCheckoutRoutes(app *fiber.App, ctl *controllers.CheckoutController) {
	app.Post("/checkout", ctl.CreateCheckout)
	app.Post("/checkout/subscription", ctl.CreateSubscriptionCheckout)
}
