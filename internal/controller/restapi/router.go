package restapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/littleroamers/roamers/config"
	v1 "github.com/littleroamers/roamers/internal/controller/restapi/v1"
	"github.com/littleroamers/roamers/internal/usecase"
	"github.com/littleroamers/roamers/pkg/logger"
)

// @title Roamers
// @version 1.0.0
// @host localhost:8080
// @BasePath /v1
func NewRouter(
	app *fiber.App,
	cfg *config.Config,
	uploads usecase.UploadUseCase,
	activities usecase.ActivityUseCase,
	walks usecase.WalkUseCase,
	stats usecase.StatsUseCase,
	l logger.Interface,
) {
	// Swagger
	if cfg.Swagger.Enabled {
		app.Get("/swagger/*", swagger.HandlerDefault)
	}

	// Routers
	apiV1Group := app.Group("/v1")
	{
		v1.NewRoutes(apiV1Group, uploads, activities, walks, stats, l)
	}
}
