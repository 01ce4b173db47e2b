package entity

// Format is the detected source format of an uploaded image.
// It is a closed set: every switch over it must handle all variants.
type Format int

const (
	FormatUnknown Format = iota
	FormatJPEG
	FormatPNG
	FormatWebP
	FormatGIF
	FormatHEIC
)

func (f Format) String() string {
	switch f {
	case FormatJPEG:
		return "jpeg"
	case FormatPNG:
		return "png"
	case FormatWebP:
		return "webp"
	case FormatGIF:
		return "gif"
	case FormatHEIC:
		return "heic"
	default:
		return "unknown"
	}
}

// ContentType returns the MIME type for the format. HEIC is never an
// output format, it is always converted to JPEG before encoding.
func (f Format) ContentType() string {
	switch f {
	case FormatPNG:
		return "image/png"
	case FormatWebP:
		return "image/webp"
	case FormatGIF:
		return "image/gif"
	default:
		return "image/jpeg"
	}
}
