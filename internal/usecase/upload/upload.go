package upload

import (
	"context"
	"fmt"

	"github.com/littleroamers/roamers/internal/entity"
	"github.com/littleroamers/roamers/internal/infrastructure"
	"github.com/littleroamers/roamers/internal/repo"
	"github.com/littleroamers/roamers/pkg/logger"
)

// UploadUseCase runs the image ingestion pipeline: validate, sniff,
// convert, optimize, store. Each upload is independent; failures are
// surfaced immediately and never retried here.
type UploadUseCase struct {
	blobRepo  repo.BlobRepo
	processor infrastructure.ImageProcessor
	maxSizeMB int

	logger logger.Interface
}

func New(blobRepo repo.BlobRepo, p infrastructure.ImageProcessor, maxSizeMB int, l logger.Interface) *UploadUseCase {
	return &UploadUseCase{
		blobRepo:  blobRepo,
		processor: p,
		maxSizeMB: maxSizeMB,
		logger:    l,
	}
}

func (uc *UploadUseCase) UploadImage(ctx context.Context, data []byte, contentType, filename string) (*entity.UploadResult, error) {
	// 1. cheap policy checks before any expensive decoding
	if err := uc.processor.Validate(data, uc.maxSizeMB); err != nil {
		return nil, fmt.Errorf("UploadUseCase - UploadImage - uc.processor.Validate: %w", err)
	}

	// 2. sniff, convert, resize, re-encode
	optimized, err := uc.processor.Optimize(ctx, data, contentType)
	if err != nil {
		return nil, fmt.Errorf("UploadUseCase - UploadImage - uc.processor.Optimize: %w", err)
	}

	uc.logger.Info("optimized %s: %dx%d, %d -> %d bytes",
		filename, optimized.Width, optimized.Height, len(data), optimized.Size)

	// 3. store under a fresh key; the caller persists the key
	key, err := uc.blobRepo.Store(ctx, optimized.Data, optimized.ContentType, filename)
	if err != nil {
		return nil, fmt.Errorf("UploadUseCase - UploadImage - uc.blobRepo.Store: %w", err)
	}

	return &entity.UploadResult{
		ImageKey: key,
		Metadata: entity.ImageMetadata{
			Width:       optimized.Width,
			Height:      optimized.Height,
			Size:        optimized.Size,
			ContentType: optimized.ContentType,
		},
	}, nil
}

func (uc *UploadUseCase) FetchImage(ctx context.Context, key string) ([]byte, string, error) {
	data, contentType, err := uc.blobRepo.Fetch(ctx, key)
	if err != nil {
		return nil, "", fmt.Errorf("UploadUseCase - FetchImage - uc.blobRepo.Fetch: %w", err)
	}

	return data, contentType, nil
}

func (uc *UploadUseCase) DeleteImage(ctx context.Context, key string) bool {
	return uc.blobRepo.Delete(ctx, key)
}
