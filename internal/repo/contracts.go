package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/littleroamers/roamers/internal/entity"
)

type (
	// BlobRepo is the gateway to the object store. Store returns the
	// generated object key; Delete and Exists are best-effort and never
	// return an error.
	BlobRepo interface {
		Store(ctx context.Context, data []byte, contentType, originalFilename string) (string, error)
		Fetch(ctx context.Context, key string) ([]byte, string, error)
		Delete(ctx context.Context, key string) bool
		Exists(ctx context.Context, key string) bool
	}

	ActivityRepo interface {
		List(ctx context.Context) ([]entity.Activity, error)
		GetByID(ctx context.Context, id uuid.UUID) (*entity.Activity, error)
		Create(ctx context.Context, activity *entity.Activity) error
		Update(ctx context.Context, activity *entity.Activity) error
		Delete(ctx context.Context, id uuid.UUID) error
		DistinctPeople(ctx context.Context) ([]string, error)
		DistinctTags(ctx context.Context) ([]string, error)
	}

	WalkRepo interface {
		List(ctx context.Context) ([]entity.Walk, error)
		GetByID(ctx context.Context, id uuid.UUID) (*entity.Walk, error)
		Create(ctx context.Context, walk *entity.Walk) error
		Update(ctx context.Context, walk *entity.Walk) error
		Delete(ctx context.Context, id uuid.UUID) error
	}

	StatsRepo interface {
		Totals(ctx context.Context) (activities int, hours, distance float64, err error)
		HoursInYear(ctx context.Context, year int) (float64, error)
		WeeklyCounts(ctx context.Context, weeks int) ([]entity.WeeklyBucket, error)
		WeatherCounts(ctx context.Context) ([]entity.WeatherPattern, error)
	}

	Transactor interface {
		WithinTransaction(ctx context.Context, f func(ctx context.Context) error) error
	}
)
