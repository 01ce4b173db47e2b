package processor

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/littleroamers/roamers/internal/entity"
	"github.com/littleroamers/roamers/pkg/types/errs"
)

const (
	maxWidth  = 2000
	maxHeight = 2000
)

type ImageProcessor struct {
}

func New() *ImageProcessor {
	return &ImageProcessor{}
}

// Optimize runs the full pipeline on an uploaded buffer: detect the
// source format, convert HEIC to JPEG first if needed, bake in the EXIF
// orientation, bound the image to 2000x2000 without ever enlarging it,
// and re-encode with format-specific quality. Re-encoding drops all
// metadata, which is why the rotation is applied at decode time.
func (p *ImageProcessor) Optimize(ctx context.Context, data []byte, declaredType string) (*entity.OptimizedImage, error) {
	working := data

	format := DetectFormat(data, declaredType)
	if format == entity.FormatHEIC {
		converted, err := p.ConvertHEIC(data)
		if err != nil {
			return nil, fmt.Errorf("ImageProcessor - Optimize - p.ConvertHEIC: %w", err)
		}
		working = converted
	}

	img, err := imaging.Decode(bytes.NewReader(working), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("ImageProcessor - Optimize - imaging.Decode: %w: %v", errs.ErrOptimizationFailed, err)
	}

	output := outputFormat(format, declaredType)

	bounds := img.Bounds()
	if bounds.Dx() > maxWidth || bounds.Dy() > maxHeight {
		img = imaging.Fit(img, maxWidth, maxHeight, imaging.Lanczos)
	}

	encoded, err := encode(img, output)
	if err != nil {
		return nil, fmt.Errorf("ImageProcessor - Optimize - encode: %w: %v", errs.ErrOptimizationFailed, err)
	}

	bounds = img.Bounds()

	return &entity.OptimizedImage{
		Data:        encoded,
		ContentType: output.ContentType(),
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
		Size:        len(encoded),
	}, nil
}

// Validate enforces the upload policy before any expensive processing:
// size ceiling, parseable buffer, allowed format, sane dimensions.
// Pure inspection, no side effects.
func (p *ImageProcessor) Validate(data []byte, maxSizeMB int) error {
	sizeMB := float64(len(data)) / (1024 * 1024)
	if sizeMB > float64(maxSizeMB) {
		return fmt.Errorf("%w: %.1fMB (max: %dMB)", errs.ErrTooLarge, sizeMB, maxSizeMB)
	}

	cfg, name, err := decodeConfig(data)
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrNotAnImage, err)
	}

	if formatFromName(name) == entity.FormatUnknown {
		return fmt.Errorf("%w: %s (allowed: JPEG, PNG, WebP, HEIC, GIF)", errs.ErrUnsupportedFormat, name)
	}

	if cfg.Width < 1 || cfg.Height < 1 {
		return errs.ErrInvalidDimensions
	}

	return nil
}

// outputFormat picks the stored encoding for a detected source format.
// HEIC always becomes JPEG; PNG stays PNG to preserve transparency;
// WebP stays WebP; everything else becomes JPEG as the smallest, most
// compatible default. The declared MIME type breaks ties when content
// detection was inconclusive.
func outputFormat(detected entity.Format, declaredType string) entity.Format {
	switch detected {
	case entity.FormatHEIC:
		return entity.FormatJPEG
	case entity.FormatPNG:
		return entity.FormatPNG
	case entity.FormatWebP:
		return entity.FormatWebP
	case entity.FormatJPEG, entity.FormatGIF, entity.FormatUnknown:
	}

	switch strings.ToLower(declaredType) {
	case "image/png":
		return entity.FormatPNG
	case "image/webp":
		return entity.FormatWebP
	}

	return entity.FormatJPEG
}

func decodeConfig(data []byte) (image.Config, string, error) {
	cfg, name, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return image.Config{}, "", err
	}

	return cfg, name, nil
}
