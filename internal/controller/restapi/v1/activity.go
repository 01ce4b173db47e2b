package v1

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/littleroamers/roamers/internal/controller/restapi/v1/response"
	"github.com/littleroamers/roamers/internal/controller/restapi/v1/validate"
	"github.com/littleroamers/roamers/internal/dto"
	"github.com/littleroamers/roamers/pkg/types/errs"
)

// @Summary 	List activities
// @Tags 		activities
// @Produce 	json
// @Success 	200 {array} response.Activity
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/v1/activities [get]
func (r *V1) listActivities(ctx *fiber.Ctx) error {
	activities, err := r.activities.List(ctx.UserContext())
	if err != nil {
		r.logger.Error(err, "restapi - v1 - listActivities")

		return errorResponse(ctx, http.StatusInternalServerError, "database problems")
	}

	return ctx.JSON(response.FromActivities(activities))
}

// @Summary 	Get activity
// @Tags 		activities
// @Produce 	json
// @Param		id 	path	 string true "Activity ID(uuid)"
// @Success 	200 {object} response.Activity
// @Failure 	400 {object} response.Error "Invalid ID"
// @Failure 	404 {object} response.Error "Activity not found"
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/v1/activities/{id} [get]
func (r *V1) getActivity(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid id")
	}

	activity, err := r.activities.GetByID(ctx.UserContext(), id)
	if err != nil {
		if errors.Is(err, errs.ErrRecordNotFound) {
			return errorResponse(ctx, http.StatusNotFound, "activity not found")
		}
		r.logger.Error(err, "restapi - v1 - getActivity")

		return errorResponse(ctx, http.StatusInternalServerError, "database problems")
	}

	return ctx.JSON(response.FromActivity(activity))
}

// @Summary 	Create activity
// @Tags 		activities
// @Accept 		json
// @Produce 	json
// @Param 		request body dto.CreateActivity true "Activity"
// @Success 	201 {object} response.Activity
// @Failure 	400 {object} response.Error "Invalid body"
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/v1/activities [post]
func (r *V1) createActivity(ctx *fiber.Ctx) error {
	var input dto.CreateActivity
	if err := ctx.BodyParser(&input); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid request body")
	}

	if err := validate.Struct(input); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	activity, err := r.activities.Create(ctx.UserContext(), input)
	if err != nil {
		r.logger.Error(err, "restapi - v1 - createActivity")

		return errorResponse(ctx, http.StatusInternalServerError, "database problems")
	}

	return ctx.Status(http.StatusCreated).JSON(response.FromActivity(activity))
}

// @Summary 	Update activity
// @Description Partial update; absent fields stay unchanged, image_key "" clears the image
// @Tags 		activities
// @Accept 		json
// @Produce 	json
// @Param		id 		path	 string 			true "Activity ID(uuid)"
// @Param 		request body 	 dto.UpdateActivity true "Changed fields"
// @Success 	200 {object} response.Activity
// @Failure 	400 {object} response.Error "Invalid ID or body"
// @Failure 	404 {object} response.Error "Activity not found"
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/v1/activities/{id} [patch]
func (r *V1) updateActivity(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid id")
	}

	var input dto.UpdateActivity
	if err := ctx.BodyParser(&input); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid request body")
	}

	if err := validate.Struct(input); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	activity, err := r.activities.Update(ctx.UserContext(), id, input)
	if err != nil {
		if errors.Is(err, errs.ErrRecordNotFound) {
			return errorResponse(ctx, http.StatusNotFound, "activity not found")
		}
		r.logger.Error(err, "restapi - v1 - updateActivity")

		return errorResponse(ctx, http.StatusInternalServerError, "database problems")
	}

	return ctx.JSON(response.FromActivity(activity))
}

// @Summary 	Delete activity
// @Description Deletes the record, then best-effort deletes its image blob
// @Tags 		activities
// @Param		id 	path	 string true "Activity ID(uuid)"
// @Success		204 "Deleted"
// @Failure 	400 {object} response.Error "Invalid ID"
// @Failure 	404 {object} response.Error "Activity not found"
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/v1/activities/{id} [delete]
func (r *V1) deleteActivity(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid id")
	}

	if err := r.activities.Delete(ctx.UserContext(), id); err != nil {
		if errors.Is(err, errs.ErrRecordNotFound) {
			return errorResponse(ctx, http.StatusNotFound, "activity not found")
		}
		r.logger.Error(err, "restapi - v1 - deleteActivity")

		return errorResponse(ctx, http.StatusInternalServerError, "database problems")
	}

	return ctx.SendStatus(http.StatusNoContent)
}

// @Summary 	Autocomplete suggestions
// @Description Distinct people and tags across all activities, for entry-form suggestions
// @Tags 		activities
// @Produce 	json
// @Success 	200 {object} entity.Autocomplete
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/v1/activities/autocomplete [get]
func (r *V1) activityAutocomplete(ctx *fiber.Ctx) error {
	suggestions, err := r.activities.Autocomplete(ctx.UserContext())
	if err != nil {
		r.logger.Error(err, "restapi - v1 - activityAutocomplete")

		return errorResponse(ctx, http.StatusInternalServerError, "database problems")
	}

	return ctx.JSON(suggestions)
}

// @Summary 	Activity statistics
// @Description Dashboard aggregates; cached briefly, so totals may lag writes by up to the cache TTL
// @Tags 		activities
// @Produce 	json
// @Success 	200 {object} entity.ActivityStats
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/v1/activities/stats [get]
func (r *V1) activityStats(ctx *fiber.Ctx) error {
	stats, err := r.stats.Stats(ctx.UserContext())
	if err != nil {
		r.logger.Error(err, "restapi - v1 - activityStats")

		return errorResponse(ctx, http.StatusInternalServerError, "database problems")
	}

	return ctx.JSON(stats)
}
