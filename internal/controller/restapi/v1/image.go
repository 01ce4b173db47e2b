package v1

import (
	"errors"
	"io"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/littleroamers/roamers/internal/controller/restapi/v1/response"
	"github.com/littleroamers/roamers/internal/usecase/upload"
	"github.com/littleroamers/roamers/pkg/types/errs"
)

// Stored images are content-addressed by a random key and never change,
// so the proxy marks them immutable for a year.
const imageCacheControl = "public, max-age=31536000, immutable"

// @Summary  	Upload image
// @Description Validates, optimizes (HEIC converted, EXIF-stripped, resized to fit 2000x2000) and stores an image
// @Tags 		images
// @Accept 		mpfd
// @Produce 	json
// @Param 		image formData file true "Image file (jpeg, png, webp, gif, heic)"
// @Success 	201 {object} response.UploadImage
// @Failure 	400 {object} response.Error "Not an image or invalid dimensions"
// @Failure 	413 {object} response.Error "Image too large"
// @Failure 	415 {object} response.Error "Unsupported format"
// @Failure 	422 {object} response.Error "Conversion or optimization failed"
// @Failure 	500 {object} response.Error "Storage failure"
// @Router 		/v1/images/upload [post]
func (r *V1) uploadImage(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("image")
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "image file is required")
	}

	if file.Size == 0 {
		return errorResponse(ctx, http.StatusBadRequest, "image file is empty")
	}

	fileReader, err := file.Open()
	if err != nil {
		r.logger.Error(err, "restapi - v1 - uploadImage")

		return errorResponse(ctx, http.StatusInternalServerError, "problems with opening the file")
	}
	defer fileReader.Close()

	data, err := io.ReadAll(fileReader)
	if err != nil {
		r.logger.Error(err, "restapi - v1 - uploadImage")

		return errorResponse(ctx, http.StatusInternalServerError, "problems with reading the file")
	}

	contentType := file.Header.Get("Content-Type")

	result, err := r.uploads.UploadImage(ctx.UserContext(), data, contentType, file.Filename)
	if err != nil {
		r.logger.Error(err, "restapi - v1 - uploadImage")

		return uploadErrorResponse(ctx, err)
	}

	resp := response.UploadImage{
		ImageKey: result.ImageKey,
		ImageURL: upload.ResolveURL(result.ImageKey),
		Metadata: result.Metadata,
	}

	return ctx.Status(http.StatusCreated).JSON(resp)
}

// @Summary 	Serve stored image
// @Description Streams an image from the private blob store through the app origin
// @Tags 		images
// @Produce 	image/jpeg,image/png,image/webp
// @Param 		key path string true "Object key"
// @Success 	200 {file} 	binary
// @Failure 	400 {object} response.Error "Missing key"
// @Failure 	404 {object} response.Error "Image not found"
// @Failure 	500 {object} response.Error "Storage failure"
// @Router 		/v1/images/{key} [get]
func (r *V1) getImage(ctx *fiber.Ctx) error {
	key := ctx.Params("*")
	if key == "" {
		return errorResponse(ctx, http.StatusBadRequest, "image key is required")
	}

	data, contentType, err := r.uploads.FetchImage(ctx.UserContext(), key)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return errorResponse(ctx, http.StatusNotFound, "image not found")
		}
		r.logger.Error(err, "restapi - v1 - getImage")

		return errorResponse(ctx, http.StatusInternalServerError, "storage problems")
	}

	ctx.Set(fiber.HeaderContentType, contentType)
	ctx.Set(fiber.HeaderCacheControl, imageCacheControl)

	return ctx.Send(data)
}

// @Summary 	Delete stored image
// @Tags 		images
// @Param 		key path string true "Object key"
// @Success		204 "Deleted"
// @Failure 	400 {object} response.Error "Missing key"
// @Failure 	500 {object} response.Error "Storage failure"
// @Router 		/v1/images/{key} [delete]
func (r *V1) deleteImage(ctx *fiber.Ctx) error {
	key := ctx.Params("*")
	if key == "" {
		return errorResponse(ctx, http.StatusBadRequest, "image key is required")
	}

	if !r.uploads.DeleteImage(ctx.UserContext(), key) {
		return errorResponse(ctx, http.StatusInternalServerError, "storage problems")
	}

	return ctx.SendStatus(http.StatusNoContent)
}
