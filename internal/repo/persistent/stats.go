package persistent

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/littleroamers/roamers/internal/entity"
	"github.com/littleroamers/roamers/pkg/postgres"
)

type StatsRepo struct {
	*postgres.Postgres
}

func NewStatsRepo(pg *postgres.Postgres) *StatsRepo {
	return &StatsRepo{pg}
}

func (r *StatsRepo) Totals(ctx context.Context) (int, float64, float64, error) {
	sql, args, err := r.Builder.
		Select(
			"COUNT(*)",
			"COALESCE(SUM("+durationMinutesColumn+") / 60.0, 0)",
			"COALESCE(SUM("+distanceKmColumn+"), 0)",
		).
		From(activitiesTable).
		ToSql()
	if err != nil {
		return 0, 0, 0, fmt.Errorf("StatsRepo - Totals - r.Builder.ToSql: %w", err)
	}

	executor := r.GetExecutor(ctx)

	var (
		activities      int
		hours, distance float64
	)
	err = executor.QueryRow(ctx, sql, args...).Scan(&activities, &hours, &distance)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("StatsRepo - Totals - executor.QueryRow: %w", err)
	}

	return activities, hours, distance, nil
}

func (r *StatsRepo) HoursInYear(ctx context.Context, year int) (float64, error) {
	sql, args, err := r.Builder.
		Select("COALESCE(SUM(" + durationMinutesColumn + ") / 60.0, 0)").
		From(activitiesTable).
		Where(squirrel.Expr("EXTRACT(YEAR FROM "+activityDateColumn+") = ?", year)).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("StatsRepo - HoursInYear - r.Builder.ToSql: %w", err)
	}

	executor := r.GetExecutor(ctx)

	var hours float64
	err = executor.QueryRow(ctx, sql, args...).Scan(&hours)
	if err != nil {
		return 0, fmt.Errorf("StatsRepo - HoursInYear - executor.QueryRow: %w", err)
	}

	return hours, nil
}

func (r *StatsRepo) WeeklyCounts(ctx context.Context, weeks int) ([]entity.WeeklyBucket, error) {
	sql, args, err := r.Builder.
		Select(
			"DATE_TRUNC('week', "+activityDateColumn+")::date AS week_start",
			"COUNT(*)",
		).
		From(activitiesTable).
		Where(squirrel.Expr(activityDateColumn+" >= CURRENT_DATE - ?::interval", fmt.Sprintf("%d weeks", weeks))).
		GroupBy("week_start").
		OrderBy("week_start ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("StatsRepo - WeeklyCounts - r.Builder.ToSql: %w", err)
	}

	executor := r.GetExecutor(ctx)

	rows, err := executor.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("StatsRepo - WeeklyCounts - executor.Query: %w", err)
	}
	defer rows.Close()

	buckets := make([]entity.WeeklyBucket, 0, weeks)
	for rows.Next() {
		var (
			weekStart time.Time
			count     int
		)
		if err := rows.Scan(&weekStart, &count); err != nil {
			return nil, fmt.Errorf("StatsRepo - WeeklyCounts - rows.Scan: %w", err)
		}

		buckets = append(buckets, entity.WeeklyBucket{
			Week:  weekStart.Format("Jan 2"),
			Count: count,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("StatsRepo - WeeklyCounts - rows.Err: %w", err)
	}

	return buckets, nil
}

func (r *StatsRepo) WeatherCounts(ctx context.Context) ([]entity.WeatherPattern, error) {
	sql, args, err := r.Builder.
		Select(weatherConditionsColumn, "COUNT(*)").
		From(activitiesTable).
		Where(squirrel.And{
			squirrel.NotEq{weatherConditionsColumn: nil},
			squirrel.NotEq{weatherConditionsColumn: ""},
		}).
		GroupBy(weatherConditionsColumn).
		OrderBy("COUNT(*) DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("StatsRepo - WeatherCounts - r.Builder.ToSql: %w", err)
	}

	executor := r.GetExecutor(ctx)

	rows, err := executor.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("StatsRepo - WeatherCounts - executor.Query: %w", err)
	}
	defer rows.Close()

	patterns := make([]entity.WeatherPattern, 0)
	for rows.Next() {
		var pattern entity.WeatherPattern
		if err := rows.Scan(&pattern.Condition, &pattern.Count); err != nil {
			return nil, fmt.Errorf("StatsRepo - WeatherCounts - rows.Scan: %w", err)
		}
		patterns = append(patterns, pattern)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("StatsRepo - WeatherCounts - rows.Err: %w", err)
	}

	return patterns, nil
}
