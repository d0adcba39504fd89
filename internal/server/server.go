package server

import (
	"log"
	"strings"

	"github.com/garvv29/Suraksha/internal/auth"
	"github.com/garvv29/Suraksha/internal/config"
	"github.com/garvv29/Suraksha/internal/professional"
	"github.com/garvv29/Suraksha/internal/system"
	"github.com/garvv29/Suraksha/internal/trainee"
	"github.com/garvv29/Suraksha/internal/training"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// New builds the fiber application with every route registered. Errors
// raised as *fiber.Error render as the {"error": message} envelope;
// anything else becomes a generic 500 without detail leakage.
func New(cfg *config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "An unexpected error occurred",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	api.Post("/login", auth.LoginHandler(cfg))

	api.Post("/register_professional", professional.RegisterHandler())
	api.Get("/get_professionals", professional.ListHandler())
	api.Put("/edit_professional/:id", professional.EditHandler())
	api.Delete("/delete_professional/:id", professional.DeleteHandler())

	api.Post("/register_trainee", trainee.RegisterHandler())
	api.Get("/get_trainees", trainee.ListHandler())
	api.Put("/edit_trainee/:id", trainee.EditHandler())
	api.Delete("/delete_trainee/:id", trainee.DeleteHandler())

	api.Post("/create_training", training.CreateHandler())
	api.Get("/get_trainings", training.ListHandler())
	api.Put("/edit_training/:id", training.EditHandler())
	api.Delete("/delete_training/:id", training.DeleteHandler())

	api.Get("/health", system.HealthHandler())
	api.Get("/data", system.DataHandler())

	app.Use(func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Endpoint not found")
	})

	return app
}
