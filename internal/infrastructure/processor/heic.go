package processor

import (
	"bytes"
	"fmt"

	"github.com/disintegration/imaging"
	"github.com/gen2brain/heic"
	"github.com/littleroamers/roamers/pkg/types/errs"
)

// ConvertHEIC decodes a HEIC/HEIF buffer and re-encodes it as a
// maximum-quality JPEG. Lossy compression happens later in Optimize,
// not here. A buffer the decoder cannot parse is a terminal error,
// malformed HEIC is not transient.
func (p *ImageProcessor) ConvertHEIC(data []byte) ([]byte, error) {
	img, err := heic.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrHeicConversionFailed, err)
	}

	var buf bytes.Buffer
	err = imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(100))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrHeicConversionFailed, err)
	}

	return buf.Bytes(), nil
}
