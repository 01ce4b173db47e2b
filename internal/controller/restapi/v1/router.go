package v1

import (
	"github.com/gofiber/fiber/v2"
	"github.com/littleroamers/roamers/internal/usecase"
	"github.com/littleroamers/roamers/pkg/logger"
)

func NewRoutes(
	apiV1Group fiber.Router,
	uploads usecase.UploadUseCase,
	activities usecase.ActivityUseCase,
	walks usecase.WalkUseCase,
	stats usecase.StatsUseCase,
	l logger.Interface,
) {
	r := &V1{
		uploads:    uploads,
		activities: activities,
		walks:      walks,
		stats:      stats,
		logger:     l,
	}

	{
		// Images
		apiV1Group.Post("/images/upload", r.uploadImage)
		apiV1Group.Get("/images/*", r.getImage)
		apiV1Group.Delete("/images/*", r.deleteImage)

		// Activities; /stats and /autocomplete are registered before
		// /:id so they are not swallowed by the param route.
		apiV1Group.Get("/activities/stats", r.activityStats)
		apiV1Group.Get("/activities/autocomplete", r.activityAutocomplete)
		apiV1Group.Get("/activities", r.listActivities)
		apiV1Group.Post("/activities", r.createActivity)
		apiV1Group.Get("/activities/:id", r.getActivity)
		apiV1Group.Patch("/activities/:id", r.updateActivity)
		apiV1Group.Delete("/activities/:id", r.deleteActivity)

		// Walks (legacy records)
		apiV1Group.Get("/walks", r.listWalks)
		apiV1Group.Post("/walks", r.createWalk)
		apiV1Group.Get("/walks/:id", r.getWalk)
		apiV1Group.Patch("/walks/:id", r.updateWalk)
		apiV1Group.Delete("/walks/:id", r.deleteWalk)
	}
}
