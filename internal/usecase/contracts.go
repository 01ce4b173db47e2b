package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/littleroamers/roamers/internal/dto"
	"github.com/littleroamers/roamers/internal/entity"
)

type (
	UploadUseCase interface {
		UploadImage(ctx context.Context, data []byte, contentType, filename string) (*entity.UploadResult, error)
		FetchImage(ctx context.Context, key string) ([]byte, string, error)
		DeleteImage(ctx context.Context, key string) bool
	}

	ActivityUseCase interface {
		List(ctx context.Context) ([]entity.Activity, error)
		GetByID(ctx context.Context, id uuid.UUID) (*entity.Activity, error)
		Create(ctx context.Context, input dto.CreateActivity) (*entity.Activity, error)
		Update(ctx context.Context, id uuid.UUID, input dto.UpdateActivity) (*entity.Activity, error)
		Delete(ctx context.Context, id uuid.UUID) error
		Autocomplete(ctx context.Context) (*entity.Autocomplete, error)
	}

	WalkUseCase interface {
		List(ctx context.Context) ([]entity.Walk, error)
		GetByID(ctx context.Context, id uuid.UUID) (*entity.Walk, error)
		Create(ctx context.Context, input dto.CreateWalk) (*entity.Walk, error)
		Update(ctx context.Context, id uuid.UUID, input dto.UpdateWalk) (*entity.Walk, error)
		Delete(ctx context.Context, id uuid.UUID) error
	}

	StatsUseCase interface {
		Stats(ctx context.Context) (*entity.ActivityStats, error)
	}
)
