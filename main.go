package main

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"

	"github.com/floatlist/floatlist-backend/app/controllers"
	"github.com/floatlist/floatlist-backend/app/queries"
	"github.com/floatlist/floatlist-backend/pkg/config"
	"github.com/floatlist/floatlist-backend/pkg/database"
	"github.com/floatlist/floatlist-backend/pkg/payments"
	"github.com/floatlist/floatlist-backend/pkg/routes"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.AllowedOrigins, ", "),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("NS Market API")
	})

	db, err := database.Connect(cfg)
	if err != nil {
		// Missing database is a degraded mode, not a crash: the board
		// answers empty until the store comes back.
		log.Printf("database unavailable: %v", err)
	}

	listingCtl := &controllers.ListingController{Listings: &queries.ListingQueries{DB: db}}
	businessCtl := &controllers.BusinessController{Businesses: &queries.BusinessQueries{DB: db}}
	checkoutCtl := &controllers.CheckoutController{Payments: payments.NewClient(cfg), Config: cfg}

	routes.RegisterListingRoutes(app, listingCtl)
	routes.RegisterBusinessRoutes(app, businessCtl)
	routes.RegisterCheckoutRoutes(app, checkoutCtl)

	log.Fatal(app.Listen(":" + cfg.Port))
}
