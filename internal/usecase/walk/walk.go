package walk

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/littleroamers/roamers/internal/dto"
	"github.com/littleroamers/roamers/internal/entity"
	"github.com/littleroamers/roamers/internal/repo"
	"github.com/littleroamers/roamers/pkg/logger"
)

// WalkUseCase serves the legacy walks records. Walks carry no images,
// so there is no blob cleanup to coordinate here.
type WalkUseCase struct {
	walkRepo repo.WalkRepo

	logger logger.Interface
}

func New(walkRepo repo.WalkRepo, l logger.Interface) *WalkUseCase {
	return &WalkUseCase{
		walkRepo: walkRepo,
		logger:   l,
	}
}

func (uc *WalkUseCase) List(ctx context.Context) ([]entity.Walk, error) {
	walks, err := uc.walkRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("WalkUseCase - List - uc.walkRepo.List: %w", err)
	}

	return walks, nil
}

func (uc *WalkUseCase) GetByID(ctx context.Context, id uuid.UUID) (*entity.Walk, error) {
	walk, err := uc.walkRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("WalkUseCase - GetByID - uc.walkRepo.GetByID: %w", err)
	}

	return walk, nil
}

func (uc *WalkUseCase) Create(ctx context.Context, input dto.CreateWalk) (*entity.Walk, error) {
	now := time.Now()

	walk := &entity.Walk{
		ID:              uuid.New(),
		Title:           input.Title,
		Notes:           input.Notes,
		DurationMinutes: input.DurationMinutes,
		WalkDate:        input.WalkDate,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := uc.walkRepo.Create(ctx, walk); err != nil {
		return nil, fmt.Errorf("WalkUseCase - Create - uc.walkRepo.Create: %w", err)
	}

	return walk, nil
}

func (uc *WalkUseCase) Update(ctx context.Context, id uuid.UUID, input dto.UpdateWalk) (*entity.Walk, error) {
	walk, err := uc.walkRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("WalkUseCase - Update - uc.walkRepo.GetByID: %w", err)
	}

	if input.Title != nil {
		walk.Title = *input.Title
	}
	if input.Notes != nil {
		walk.Notes = input.Notes
	}
	if input.DurationMinutes != nil {
		walk.DurationMinutes = *input.DurationMinutes
	}
	if input.WalkDate != nil {
		walk.WalkDate = *input.WalkDate
	}
	walk.UpdatedAt = time.Now()

	if err := uc.walkRepo.Update(ctx, walk); err != nil {
		return nil, fmt.Errorf("WalkUseCase - Update - uc.walkRepo.Update: %w", err)
	}

	return walk, nil
}

func (uc *WalkUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	if err := uc.walkRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("WalkUseCase - Delete - uc.walkRepo.Delete: %w", err)
	}

	return nil
}
