package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/floatlist/floatlist-backend/app/controllers"
)

func RegisterBusinessRoutes(app *fiber.App, ctl *controllers.BusinessController) {
	app.Get("/businesses/featured", ctl.GetFeaturedBusinesses)
	app.Get("/businesses/:slug", ctl.GetBusinessBySlug)
	app.Post("/businesses", ctl.CreateBusiness)
}
