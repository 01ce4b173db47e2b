package errs

import "errors"

var (
	ErrRecordNotFound = errors.New("record not found")

	// Upload validation, recoverable by the user.
	ErrTooLarge          = errors.New("image too large")
	ErrUnsupportedFormat = errors.New("unsupported image format")
	ErrInvalidDimensions = errors.New("invalid image dimensions")
	ErrNotAnImage        = errors.New("not a valid image file")

	// Processing, unprocessable input.
	ErrHeicConversionFailed = errors.New("heic conversion failed")
	ErrOptimizationFailed   = errors.New("image optimization failed")

	// Blob store, infrastructure.
	ErrUploadFailed = errors.New("image upload failed")
	ErrNotFound     = errors.New("image not found")
	ErrFetchFailed  = errors.New("image fetch failed")
)
