package processor

import (
	"bytes"
	"image"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/littleroamers/roamers/internal/entity"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "github.com/gen2brain/heic"   // registers heic/heif decoding
	_ "golang.org/x/image/webp"     // registers webp decoding
)

// DetectFormat determines the true source format of an image buffer.
//
// Declared HEIC/HEIF MIME types are trusted outright, then the content is
// probed (ftyp containers lie outside what image.DecodeConfig magic
// matching always catches), then the codec's own format report is used.
// A buffer the codec cannot read at all is assumed to be HEIC: phone
// photos with a missing or wrong MIME type are the dominant case here.
func DetectFormat(data []byte, declaredType string) entity.Format {
	switch strings.ToLower(declaredType) {
	case "image/heic", "image/heif":
		return entity.FormatHEIC
	}

	if mt := mimetype.Detect(data); mt.Is("image/heic") || mt.Is("image/heif") {
		return entity.FormatHEIC
	}

	if _, name, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
		return formatFromName(name)
	}

	return entity.FormatHEIC
}

func formatFromName(name string) entity.Format {
	switch name {
	case "jpeg":
		return entity.FormatJPEG
	case "png":
		return entity.FormatPNG
	case "webp":
		return entity.FormatWebP
	case "gif":
		return entity.FormatGIF
	case "heic", "heif":
		return entity.FormatHEIC
	default:
		return entity.FormatUnknown
	}
}
