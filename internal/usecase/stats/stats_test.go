package stats

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/littleroamers/roamers/internal/entity"
)

type nopLogger struct{}

func (nopLogger) Debug(message interface{}, args ...interface{}) {}
func (nopLogger) Info(message string, args ...interface{})       {}
func (nopLogger) Warn(message string, args ...interface{})       {}
func (nopLogger) Error(message interface{}, args ...interface{}) {}
func (nopLogger) Fatal(message interface{}, args ...interface{}) {}

type fakeStatsRepo struct {
	calls   int
	weather []entity.WeatherPattern
}

func (f *fakeStatsRepo) Totals(context.Context) (int, float64, float64, error) {
	f.calls++
	return 42, 63.5, 128.2, nil
}

func (f *fakeStatsRepo) HoursInYear(context.Context, int) (float64, error) {
	return 20.25, nil
}

func (f *fakeStatsRepo) WeeklyCounts(context.Context, int) ([]entity.WeeklyBucket, error) {
	return []entity.WeeklyBucket{{Week: "Jun 2", Count: 3}}, nil
}

func (f *fakeStatsRepo) WeatherCounts(context.Context) ([]entity.WeatherPattern, error) {
	return f.weather, nil
}

type fakeCache struct {
	entries map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string]string{}}
}

func (f *fakeCache) Get(_ context.Context, key string) (string, bool) {
	v, ok := f.entries[key]
	return v, ok
}

func (f *fakeCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	f.entries[key] = value
	return nil
}

func TestStatsComputesPercentages(t *testing.T) {
	repo := &fakeStatsRepo{weather: []entity.WeatherPattern{
		{Condition: "sunny", Count: 2},
		{Condition: "rainy", Count: 1},
	}}
	uc := New(repo, newFakeCache(), time.Minute, nopLogger{})

	stats, err := uc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}

	if stats.TotalActivities != 42 {
		t.Errorf("total activities = %d, want 42", stats.TotalActivities)
	}
	if stats.WeatherPatterns[0].Percentage != 67 {
		t.Errorf("sunny percentage = %d, want 67", stats.WeatherPatterns[0].Percentage)
	}
	if stats.WeatherPatterns[1].Percentage != 33 {
		t.Errorf("rainy percentage = %d, want 33", stats.WeatherPatterns[1].Percentage)
	}
}

func TestStatsCacheHitSkipsRepo(t *testing.T) {
	repo := &fakeStatsRepo{}
	cache := newFakeCache()
	uc := New(repo, cache, time.Minute, nopLogger{})

	if _, err := uc.Stats(context.Background()); err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if _, err := uc.Stats(context.Background()); err != nil {
		t.Fatalf("Stats: %v", err)
	}

	if repo.calls != 1 {
		t.Errorf("repo computed %d times, want 1 (second call from cache)", repo.calls)
	}
}

func TestStatsCachedSnapshotRoundTrips(t *testing.T) {
	repo := &fakeStatsRepo{weather: []entity.WeatherPattern{{Condition: "sunny", Count: 4}}}
	cache := newFakeCache()
	uc := New(repo, cache, time.Minute, nopLogger{})

	first, err := uc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}

	cached := &entity.ActivityStats{}
	if err := json.Unmarshal([]byte(cache.entries[cacheKey]), cached); err != nil {
		t.Fatalf("cached snapshot is not valid JSON: %v", err)
	}

	second, err := uc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if second.TotalHours != first.TotalHours || second.HoursThisYear != first.HoursThisYear {
		t.Error("cached stats differ from computed stats")
	}
}

func TestStatsStaleCacheRecomputes(t *testing.T) {
	repo := &fakeStatsRepo{}
	cache := newFakeCache()
	cache.entries[cacheKey] = "{not json"
	uc := New(repo, cache, time.Minute, nopLogger{})

	if _, err := uc.Stats(context.Background()); err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if repo.calls != 1 {
		t.Errorf("repo computed %d times, want 1", repo.calls)
	}
}

func TestStatsNilCache(t *testing.T) {
	repo := &fakeStatsRepo{}
	uc := New(repo, nil, time.Minute, nopLogger{})

	if _, err := uc.Stats(context.Background()); err != nil {
		t.Fatalf("Stats: %v", err)
	}
}
