package infrastructure

import (
	"context"

	"github.com/littleroamers/roamers/internal/entity"
)

type (
	ImageProcessor interface {
		Validate(data []byte, maxSizeMB int) error
		Optimize(ctx context.Context, data []byte, declaredType string) (*entity.OptimizedImage, error)
		ConvertHEIC(data []byte) ([]byte, error)
	}
)
