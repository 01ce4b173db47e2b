package persistent

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/littleroamers/roamers/internal/entity"
	"github.com/littleroamers/roamers/pkg/postgres"
	"github.com/littleroamers/roamers/pkg/types/errs"
)

const (
	// Table
	activitiesTable = "activities"

	// Columns
	idColumn                = "id"
	titleColumn             = "title"
	notesColumn             = "notes"
	durationMinutesColumn   = "duration_minutes"
	activityDateColumn      = "activity_date"
	distanceKmColumn        = "distance_km"
	elevationGainMColumn    = "elevation_gain_m"
	peopleColumn            = "people"
	tagsColumn              = "tags"
	weatherConditionsColumn = "weather_conditions"
	temperatureCColumn      = "temperature_c"
	imageKeyColumn          = "image_key"
	createdAtColumn         = "created_at"
	updatedAtColumn         = "updated_at"
)

var activityColumns = []string{
	idColumn,
	titleColumn,
	notesColumn,
	durationMinutesColumn,
	activityDateColumn,
	distanceKmColumn,
	elevationGainMColumn,
	peopleColumn,
	tagsColumn,
	weatherConditionsColumn,
	temperatureCColumn,
	imageKeyColumn,
	createdAtColumn,
	updatedAtColumn,
}

type ActivityRepo struct {
	*postgres.Postgres
}

func NewActivityRepo(pg *postgres.Postgres) *ActivityRepo {
	return &ActivityRepo{pg}
}

func (r *ActivityRepo) List(ctx context.Context) ([]entity.Activity, error) {
	sql, args, err := r.Builder.
		Select(activityColumns...).
		From(activitiesTable).
		OrderBy(activityDateColumn + " DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("ActivityRepo - List - r.Builder.ToSql: %w", err)
	}

	executor := r.GetExecutor(ctx)

	rows, err := executor.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("ActivityRepo - List - executor.Query: %w", err)
	}
	defer rows.Close()

	activities := make([]entity.Activity, 0)
	for rows.Next() {
		activity, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("ActivityRepo - List - scanActivity: %w", err)
		}
		activities = append(activities, *activity)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ActivityRepo - List - rows.Err: %w", err)
	}

	return activities, nil
}

func (r *ActivityRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Activity, error) {
	sql, args, err := r.Builder.
		Select(activityColumns...).
		From(activitiesTable).
		Where(squirrel.Eq{idColumn: id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("ActivityRepo - GetByID - r.Builder.ToSql: %w", err)
	}

	executor := r.GetExecutor(ctx)

	activity, err := scanActivity(executor.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("ActivityRepo - GetByID: %w", errs.ErrRecordNotFound)
		}
		return nil, fmt.Errorf("ActivityRepo - GetByID - executor.QueryRow: %w", err)
	}

	return activity, nil
}

func (r *ActivityRepo) Create(ctx context.Context, activity *entity.Activity) error {
	sql, args, err := r.Builder.
		Insert(activitiesTable).
		Columns(activityColumns...).
		Values(
			activity.ID,
			activity.Title,
			activity.Notes,
			activity.DurationMinutes,
			activity.ActivityDate,
			activity.DistanceKm,
			activity.ElevationGainM,
			activity.People,
			activity.Tags,
			activity.WeatherConditions,
			activity.TemperatureC,
			activity.ImageKey,
			activity.CreatedAt,
			activity.UpdatedAt,
		).ToSql()
	if err != nil {
		return fmt.Errorf("ActivityRepo - Create - r.Builder.ToSql: %w", err)
	}

	executor := r.GetExecutor(ctx)

	_, err = executor.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("ActivityRepo - Create - executor.Exec: %w", err)
	}

	return nil
}

func (r *ActivityRepo) Update(ctx context.Context, activity *entity.Activity) error {
	sql, args, err := r.Builder.
		Update(activitiesTable).
		Set(titleColumn, activity.Title).
		Set(notesColumn, activity.Notes).
		Set(durationMinutesColumn, activity.DurationMinutes).
		Set(activityDateColumn, activity.ActivityDate).
		Set(distanceKmColumn, activity.DistanceKm).
		Set(elevationGainMColumn, activity.ElevationGainM).
		Set(peopleColumn, activity.People).
		Set(tagsColumn, activity.Tags).
		Set(weatherConditionsColumn, activity.WeatherConditions).
		Set(temperatureCColumn, activity.TemperatureC).
		Set(imageKeyColumn, activity.ImageKey).
		Set(updatedAtColumn, activity.UpdatedAt).
		Where(squirrel.Eq{idColumn: activity.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("ActivityRepo - Update - r.Builder.ToSql: %w", err)
	}

	executor := r.GetExecutor(ctx)

	tag, err := executor.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("ActivityRepo - Update - executor.Exec: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("ActivityRepo - Update: %w", errs.ErrRecordNotFound)
	}

	return nil
}

func (r *ActivityRepo) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := r.Builder.
		Delete(activitiesTable).
		Where(squirrel.Eq{idColumn: id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("ActivityRepo - Delete - r.Builder.ToSql: %w", err)
	}

	executor := r.GetExecutor(ctx)

	tag, err := executor.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("ActivityRepo - Delete - executor.Exec: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("ActivityRepo - Delete: %w", errs.ErrRecordNotFound)
	}

	return nil
}

func (r *ActivityRepo) DistinctPeople(ctx context.Context) ([]string, error) {
	values, err := r.distinctArrayValues(ctx, peopleColumn)
	if err != nil {
		return nil, fmt.Errorf("ActivityRepo - DistinctPeople - r.distinctArrayValues: %w", err)
	}

	return values, nil
}

func (r *ActivityRepo) DistinctTags(ctx context.Context) ([]string, error) {
	values, err := r.distinctArrayValues(ctx, tagsColumn)
	if err != nil {
		return nil, fmt.Errorf("ActivityRepo - DistinctTags - r.distinctArrayValues: %w", err)
	}

	return values, nil
}

// distinctArrayValues unnests a text[] column and returns its distinct
// non-empty values in sorted order.
func (r *ActivityRepo) distinctArrayValues(ctx context.Context, column string) ([]string, error) {
	sql, args, err := r.Builder.
		Select("DISTINCT UNNEST(" + column + ") AS value").
		From(activitiesTable).
		Where(squirrel.Expr(column + " IS NOT NULL AND array_length(" + column + ", 1) > 0")).
		OrderBy("value").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("r.Builder.ToSql: %w", err)
	}

	executor := r.GetExecutor(ctx)

	rows, err := executor.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("executor.Query: %w", err)
	}
	defer rows.Close()

	values := make([]string, 0)
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return nil, fmt.Errorf("rows.Scan: %w", err)
		}
		if value != "" {
			values = append(values, value)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows.Err: %w", err)
	}

	return values, nil
}

func scanActivity(row pgx.Row) (*entity.Activity, error) {
	var activity entity.Activity

	err := row.Scan(
		&activity.ID,
		&activity.Title,
		&activity.Notes,
		&activity.DurationMinutes,
		&activity.ActivityDate,
		&activity.DistanceKm,
		&activity.ElevationGainM,
		&activity.People,
		&activity.Tags,
		&activity.WeatherConditions,
		&activity.TemperatureC,
		&activity.ImageKey,
		&activity.CreatedAt,
		&activity.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &activity, nil
}
