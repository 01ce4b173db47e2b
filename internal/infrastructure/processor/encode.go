package processor

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/littleroamers/roamers/internal/entity"
)

const (
	jpegQuality = 85
	webpQuality = 85
)

// encode re-encodes a decoded image in the given output format.
// Only JPEG, PNG and WebP are valid output formats; the format
// selection in Optimize never produces anything else.
func encode(img image.Image, format entity.Format) ([]byte, error) {
	switch format {
	case entity.FormatJPEG:
		return encodeJPEG(img)
	case entity.FormatPNG:
		return encodePNG(img)
	case entity.FormatWebP:
		return encodeWebP(img)
	case entity.FormatGIF, entity.FormatHEIC, entity.FormatUnknown:
		return nil, fmt.Errorf("format %q is not an output format", format)
	default:
		return nil, fmt.Errorf("format %q is not an output format", format)
	}
}

func encodeJPEG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG, imaging.PNGCompressionLevel(png.BestCompression)); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func encodeWebP(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
