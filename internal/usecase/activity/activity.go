package activity

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

type ActivityUseCase struct {
	activityRepo repo.ActivityRepo
	blobRepo     repo.BlobRepo
	transactor   repo.Transactor

	logger logger.Interface
}

func New(
	activityRepo repo.ActivityRepo,
	blobRepo repo.BlobRepo,
	transactor repo.Transactor,
	l logger.Interface,
) *ActivityUseCase {
	return &ActivityUseCase{
		activityRepo: activityRepo,
		blobRepo:     blobRepo,
		transactor:   transactor,
		logger:       l,
	}
}

func (uc *ActivityUseCase) List(ctx context.Context) ([]entity.Activity, error) {
	activities, err := uc.activityRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("ActivityUseCase - List - uc.activityRepo.List: %w", err)
	}

	return activities, nil
}

func (uc *ActivityUseCase) GetByID(ctx context.Context, id uuid.UUID) (*entity.Activity, error) {
	activity, err := uc.activityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("ActivityUseCase - GetByID - uc.activityRepo.GetByID: %w", err)
	}

	return activity, nil
}

func (uc *ActivityUseCase) Create(ctx context.Context, input dto.CreateActivity) (*entity.Activity, error) {
	// Best-effort only; Exists returns false on transient store errors
	// too, so a missing blob is worth a warning but never a rejection.
	if input.ImageKey != nil && *input.ImageKey != "" && !uc.blobRepo.Exists(ctx, *input.ImageKey) {
		uc.logger.Warn("ActivityUseCase - Create - image key %s not found in store", *input.ImageKey)
	}

	now := time.Now()

	activity := &entity.Activity{
		ID:                uuid.New(),
		Title:             input.Title,
		Notes:             input.Notes,
		DurationMinutes:   input.DurationMinutes,
		ActivityDate:      input.ActivityDate,
		DistanceKm:        input.DistanceKm,
		ElevationGainM:    input.ElevationGainM,
		People:            orEmpty(input.People),
		Tags:              orEmpty(input.Tags),
		WeatherConditions: input.WeatherConditions,
		TemperatureC:      input.TemperatureC,
		ImageKey:          input.ImageKey,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := uc.activityRepo.Create(ctx, activity); err != nil {
		return nil, fmt.Errorf("ActivityUseCase - Create - uc.activityRepo.Create: %w", err)
	}

	return activity, nil
}

// Update applies a partial update. When the image key changes, the old
// blob is deleted only after the record update has committed, so a
// crash in between leaves an orphaned blob, never a dangling reference.
func (uc *ActivityUseCase) Update(ctx context.Context, id uuid.UUID, input dto.UpdateActivity) (*entity.Activity, error) {
	var (
		activity *entity.Activity
		oldKey   string
	)

	err := uc.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		activity, err = uc.activityRepo.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("ActivityUseCase - Update - uc.activityRepo.GetByID: %w", err)
		}

		oldKey = applyUpdate(activity, input)
		activity.UpdatedAt = time.Now()

		if err := uc.activityRepo.Update(ctx, activity); err != nil {
			return fmt.Errorf("ActivityUseCase - Update - uc.activityRepo.Update: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("ActivityUseCase - Update - uc.transactor.WithinTransaction: %w", err)
	}

	if oldKey != "" {
		if !uc.blobRepo.Delete(ctx, oldKey) {
			uc.logger.Warn("ActivityUseCase - Update - failed to delete replaced blob key=%s", oldKey)
		}
	}

	return activity, nil
}

// Delete removes the record first and only then cleans up the blob.
// Blob deletion is best-effort; a failure never blocks the delete.
func (uc *ActivityUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	var imageKey string

	err := uc.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		activity, err := uc.activityRepo.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("ActivityUseCase - Delete - uc.activityRepo.GetByID: %w", err)
		}

		if activity.ImageKey != nil {
			imageKey = *activity.ImageKey
		}

		if err := uc.activityRepo.Delete(ctx, id); err != nil {
			return fmt.Errorf("ActivityUseCase - Delete - uc.activityRepo.Delete: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("ActivityUseCase - Delete - uc.transactor.WithinTransaction: %w", err)
	}

	if imageKey != "" {
		if !uc.blobRepo.Delete(ctx, imageKey) {
			uc.logger.Warn("ActivityUseCase - Delete - failed to delete blob key=%s", imageKey)
		}
	}

	return nil
}

// Autocomplete collects the distinct people and tags across all
// activities for entry-form suggestions.
func (uc *ActivityUseCase) Autocomplete(ctx context.Context) (*entity.Autocomplete, error) {
	people, err := uc.activityRepo.DistinctPeople(ctx)
	if err != nil {
		return nil, fmt.Errorf("ActivityUseCase - Autocomplete - uc.activityRepo.DistinctPeople: %w", err)
	}

	tags, err := uc.activityRepo.DistinctTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("ActivityUseCase - Autocomplete - uc.activityRepo.DistinctTags: %w", err)
	}

	return &entity.Autocomplete{
		People: orEmpty(people),
		Tags:   orEmpty(tags),
	}, nil
}

// applyUpdate patches the entity in place and returns the key of a
// replaced or cleared image blob, "" when the image did not change.
func applyUpdate(activity *entity.Activity, input dto.UpdateActivity) string {
	if input.Title != nil {
		activity.Title = *input.Title
	}
	if input.Notes != nil {
		activity.Notes = input.Notes
	}
	if input.DurationMinutes != nil {
		activity.DurationMinutes = *input.DurationMinutes
	}
	if input.ActivityDate != nil {
		activity.ActivityDate = *input.ActivityDate
	}
	if input.DistanceKm != nil {
		activity.DistanceKm = input.DistanceKm
	}
	if input.ElevationGainM != nil {
		activity.ElevationGainM = input.ElevationGainM
	}
	if input.People != nil {
		activity.People = orEmpty(*input.People)
	}
	if input.Tags != nil {
		activity.Tags = orEmpty(*input.Tags)
	}
	if input.WeatherConditions != nil {
		activity.WeatherConditions = input.WeatherConditions
	}
	if input.TemperatureC != nil {
		activity.TemperatureC = input.TemperatureC
	}

	if input.ImageKey == nil {
		return ""
	}

	var oldKey string
	if activity.ImageKey != nil && *activity.ImageKey != *input.ImageKey {
		oldKey = *activity.ImageKey
	}

	if *input.ImageKey == "" {
		activity.ImageKey = nil
	} else {
		activity.ImageKey = input.ImageKey
	}

	return oldKey
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}

	return s
}
