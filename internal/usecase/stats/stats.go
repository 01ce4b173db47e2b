package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/littleroamers/roamers/internal/entity"
	"github.com/littleroamers/roamers/internal/repo"
	"github.com/littleroamers/roamers/pkg/logger"
)

const (
	cacheKey    = "activity-stats"
	weeklyWeeks = 12
)

// Cache is the stats snapshot cache. Get reports a miss for any
// transport failure; the aggregates are then recomputed from Postgres.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

type StatsUseCase struct {
	statsRepo repo.StatsRepo
	cache     Cache
	cacheTTL  time.Duration

	logger logger.Interface
}

func New(statsRepo repo.StatsRepo, cache Cache, cacheTTL time.Duration, l logger.Interface) *StatsUseCase {
	return &StatsUseCase{
		statsRepo: statsRepo,
		cache:     cache,
		cacheTTL:  cacheTTL,
		logger:    l,
	}
}

func (uc *StatsUseCase) Stats(ctx context.Context) (*entity.ActivityStats, error) {
	if uc.cache != nil {
		if cached, ok := uc.cache.Get(ctx, cacheKey); ok {
			stats := &entity.ActivityStats{}
			if err := json.Unmarshal([]byte(cached), stats); err == nil {
				return stats, nil
			}
			uc.logger.Warn("StatsUseCase - Stats - stale cache entry, recomputing")
		}
	}

	stats, err := uc.compute(ctx)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if encoded, err := json.Marshal(stats); err == nil {
			if err := uc.cache.Set(ctx, cacheKey, string(encoded), uc.cacheTTL); err != nil {
				uc.logger.Warn("StatsUseCase - Stats - uc.cache.Set: %v", err)
			}
		}
	}

	return stats, nil
}

func (uc *StatsUseCase) compute(ctx context.Context) (*entity.ActivityStats, error) {
	activities, hours, distance, err := uc.statsRepo.Totals(ctx)
	if err != nil {
		return nil, fmt.Errorf("StatsUseCase - compute - uc.statsRepo.Totals: %w", err)
	}

	hoursThisYear, err := uc.statsRepo.HoursInYear(ctx, time.Now().Year())
	if err != nil {
		return nil, fmt.Errorf("StatsUseCase - compute - uc.statsRepo.HoursInYear: %w", err)
	}

	weekly, err := uc.statsRepo.WeeklyCounts(ctx, weeklyWeeks)
	if err != nil {
		return nil, fmt.Errorf("StatsUseCase - compute - uc.statsRepo.WeeklyCounts: %w", err)
	}

	weather, err := uc.statsRepo.WeatherCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("StatsUseCase - compute - uc.statsRepo.WeatherCounts: %w", err)
	}

	return &entity.ActivityStats{
		TotalActivities: activities,
		TotalHours:      hours,
		TotalDistance:   distance,
		HoursThisYear:   hoursThisYear,
		WeeklyActivity:  weekly,
		WeatherPatterns: withPercentages(weather),
	}, nil
}

// withPercentages fills in each condition's share of the total,
// rounded to the nearest whole percent.
func withPercentages(patterns []entity.WeatherPattern) []entity.WeatherPattern {
	total := 0
	for _, p := range patterns {
		total += p.Count
	}

	if total == 0 {
		return patterns
	}

	for i := range patterns {
		patterns[i].Percentage = (patterns[i].Count*100 + total/2) / total
	}

	return patterns
}
