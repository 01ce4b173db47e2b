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

// @Summary 	List walks
// @Tags 		walks
// @Produce 	json
// @Success 	200 {array} response.Walk
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/v1/walks [get]
func (r *V1) listWalks(ctx *fiber.Ctx) error {
	walks, err := r.walks.List(ctx.UserContext())
	if err != nil {
		r.logger.Error(err, "restapi - v1 - listWalks")

		return errorResponse(ctx, http.StatusInternalServerError, "database problems")
	}

	return ctx.JSON(response.FromWalks(walks))
}

// @Summary 	Get walk
// @Tags 		walks
// @Produce 	json
// @Param		id 	path	 string true "Walk ID(uuid)"
// @Success 	200 {object} response.Walk
// @Failure 	400 {object} response.Error "Invalid ID"
// @Failure 	404 {object} response.Error "Walk not found"
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/v1/walks/{id} [get]
func (r *V1) getWalk(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid id")
	}

	walk, err := r.walks.GetByID(ctx.UserContext(), id)
	if err != nil {
		if errors.Is(err, errs.ErrRecordNotFound) {
			return errorResponse(ctx, http.StatusNotFound, "walk not found")
		}
		r.logger.Error(err, "restapi - v1 - getWalk")

		return errorResponse(ctx, http.StatusInternalServerError, "database problems")
	}

	return ctx.JSON(response.FromWalk(walk))
}

// @Summary 	Create walk
// @Tags 		walks
// @Accept 		json
// @Produce 	json
// @Param 		request body dto.CreateWalk true "Walk"
// @Success 	201 {object} response.Walk
// @Failure 	400 {object} response.Error "Invalid body"
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/v1/walks [post]
func (r *V1) createWalk(ctx *fiber.Ctx) error {
	var input dto.CreateWalk
	if err := ctx.BodyParser(&input); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid request body")
	}

	if err := validate.Struct(input); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	walk, err := r.walks.Create(ctx.UserContext(), input)
	if err != nil {
		r.logger.Error(err, "restapi - v1 - createWalk")

		return errorResponse(ctx, http.StatusInternalServerError, "database problems")
	}

	return ctx.Status(http.StatusCreated).JSON(response.FromWalk(walk))
}

// @Summary 	Update walk
// @Tags 		walks
// @Accept 		json
// @Produce 	json
// @Param		id 		path	 string 		true "Walk ID(uuid)"
// @Param 		request body 	 dto.UpdateWalk true "Changed fields"
// @Success 	200 {object} response.Walk
// @Failure 	400 {object} response.Error "Invalid ID or body"
// @Failure 	404 {object} response.Error "Walk not found"
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/v1/walks/{id} [patch]
func (r *V1) updateWalk(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid id")
	}

	var input dto.UpdateWalk
	if err := ctx.BodyParser(&input); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid request body")
	}

	if err := validate.Struct(input); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	walk, err := r.walks.Update(ctx.UserContext(), id, input)
	if err != nil {
		if errors.Is(err, errs.ErrRecordNotFound) {
			return errorResponse(ctx, http.StatusNotFound, "walk not found")
		}
		r.logger.Error(err, "restapi - v1 - updateWalk")

		return errorResponse(ctx, http.StatusInternalServerError, "database problems")
	}

	return ctx.JSON(response.FromWalk(walk))
}

// @Summary 	Delete walk
// @Tags 		walks
// @Param		id 	path	 string true "Walk ID(uuid)"
// @Success		204 "Deleted"
// @Failure 	400 {object} response.Error "Invalid ID"
// @Failure 	404 {object} response.Error "Walk not found"
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/v1/walks/{id} [delete]
func (r *V1) deleteWalk(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid id")
	}

	if err := r.walks.Delete(ctx.UserContext(), id); err != nil {
		if errors.Is(err, errs.ErrRecordNotFound) {
			return errorResponse(ctx, http.StatusNotFound, "walk not found")
		}
		r.logger.Error(err, "restapi - v1 - deleteWalk")

		return errorResponse(ctx, http.StatusInternalServerError, "database problems")
	}

	return ctx.SendStatus(http.StatusNoContent)
}
