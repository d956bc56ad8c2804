package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/floatlist/floatlist-backend/app/controllers"
)

func RegisterListingRoutes(app *fiber.App, ctl *controllers.ListingController) {
	app.Get("/listings", ctl.GetListingBoard)
	app.Get("/listings/:id", ctl.GetListingByID)
	app.Post("/listings", ctl.CreateListing)
	app.Patch("/listings/:id/availability", ctl.SetAvailability)
}
