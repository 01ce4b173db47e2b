package activity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/littleroamers/roamers/internal/dto"
	"github.com/littleroamers/roamers/internal/entity"
	"github.com/littleroamers/roamers/pkg/types/errs"
)

type nopLogger struct{}

func (nopLogger) Debug(message interface{}, args ...interface{}) {}
func (nopLogger) Info(message string, args ...interface{})       {}
func (nopLogger) Warn(message string, args ...interface{})       {}
func (nopLogger) Error(message interface{}, args ...interface{}) {}
func (nopLogger) Fatal(message interface{}, args ...interface{}) {}

type fakeActivityRepo struct {
	activities map[uuid.UUID]entity.Activity
	people     []string
	tags       []string
}

func newFakeActivityRepo() *fakeActivityRepo {
	return &fakeActivityRepo{activities: map[uuid.UUID]entity.Activity{}}
}

func (f *fakeActivityRepo) List(context.Context) ([]entity.Activity, error) {
	out := make([]entity.Activity, 0, len(f.activities))
	for _, a := range f.activities {
		out = append(out, a)
	}

	return out, nil
}

func (f *fakeActivityRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Activity, error) {
	a, ok := f.activities[id]
	if !ok {
		return nil, errs.ErrRecordNotFound
	}

	return &a, nil
}

func (f *fakeActivityRepo) Create(_ context.Context, a *entity.Activity) error {
	f.activities[a.ID] = *a
	return nil
}

func (f *fakeActivityRepo) Update(_ context.Context, a *entity.Activity) error {
	if _, ok := f.activities[a.ID]; !ok {
		return errs.ErrRecordNotFound
	}
	f.activities[a.ID] = *a

	return nil
}

func (f *fakeActivityRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.activities[id]; !ok {
		return errs.ErrRecordNotFound
	}
	delete(f.activities, id)

	return nil
}

func (f *fakeActivityRepo) DistinctPeople(context.Context) ([]string, error) {
	return f.people, nil
}

func (f *fakeActivityRepo) DistinctTags(context.Context) ([]string, error) {
	return f.tags, nil
}

// fakeTransactor flips committed after the callback returns, so blob
// fakes can assert deletions happen only post-commit.
type fakeTransactor struct {
	committed bool
}

func (f *fakeTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		return err
	}
	f.committed = true

	return nil
}

type deleteCall struct {
	key            string
	afterCommitted bool
}

type fakeBlobRepo struct {
	tx       *fakeTransactor
	deleteOK bool
	deletes  []deleteCall
}

func (f *fakeBlobRepo) Store(context.Context, []byte, string, string) (string, error) {
	return "", nil
}

func (f *fakeBlobRepo) Fetch(context.Context, string) ([]byte, string, error) {
	return nil, "", errs.ErrNotFound
}

func (f *fakeBlobRepo) Delete(_ context.Context, key string) bool {
	f.deletes = append(f.deletes, deleteCall{key: key, afterCommitted: f.tx.committed})
	return f.deleteOK
}

func (f *fakeBlobRepo) Exists(context.Context, string) bool { return false }

func strPtr(s string) *string { return &s }

func newTestUseCase() (*ActivityUseCase, *fakeActivityRepo, *fakeBlobRepo) {
	repo := newFakeActivityRepo()
	tx := &fakeTransactor{}
	blobs := &fakeBlobRepo{tx: tx, deleteOK: true}

	return New(repo, blobs, tx, nopLogger{}), repo, blobs
}

func seedActivity(repo *fakeActivityRepo, imageKey *string) entity.Activity {
	a := entity.Activity{
		ID:              uuid.New(),
		Title:           "morning hike",
		DurationMinutes: 90,
		ActivityDate:    time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC),
		People:          []string{},
		Tags:            []string{"hike"},
		ImageKey:        imageKey,
	}
	repo.activities[a.ID] = a

	return a
}

func TestUpdateReplacedImageDeletedAfterCommit(t *testing.T) {
	uc, repo, blobs := newTestUseCase()
	seeded := seedActivity(repo, strPtr("activities/old.jpg"))

	updated, err := uc.Update(context.Background(), seeded.ID, dto.UpdateActivity{
		ImageKey: strPtr("activities/new.jpg"),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if updated.ImageKey == nil || *updated.ImageKey != "activities/new.jpg" {
		t.Errorf("image key = %v, want activities/new.jpg", updated.ImageKey)
	}

	if len(blobs.deletes) != 1 {
		t.Fatalf("blob deletes = %d, want 1", len(blobs.deletes))
	}
	if blobs.deletes[0].key != "activities/old.jpg" {
		t.Errorf("deleted key = %q, want activities/old.jpg", blobs.deletes[0].key)
	}
	if !blobs.deletes[0].afterCommitted {
		t.Error("old blob deleted before the record update committed")
	}
}

func TestUpdateClearsImage(t *testing.T) {
	uc, repo, blobs := newTestUseCase()
	seeded := seedActivity(repo, strPtr("activities/old.jpg"))

	updated, err := uc.Update(context.Background(), seeded.ID, dto.UpdateActivity{
		ImageKey: strPtr(""),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if updated.ImageKey != nil {
		t.Errorf("image key = %q, want nil", *updated.ImageKey)
	}
	if len(blobs.deletes) != 1 || blobs.deletes[0].key != "activities/old.jpg" {
		t.Errorf("blob deletes = %+v, want one delete of activities/old.jpg", blobs.deletes)
	}
}

func TestUpdateSameImageKeyNoDelete(t *testing.T) {
	uc, repo, blobs := newTestUseCase()
	seeded := seedActivity(repo, strPtr("activities/same.jpg"))

	if _, err := uc.Update(context.Background(), seeded.ID, dto.UpdateActivity{
		ImageKey: strPtr("activities/same.jpg"),
	}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	if len(blobs.deletes) != 0 {
		t.Errorf("blob deletes = %+v, want none", blobs.deletes)
	}
}

func TestUpdateBlobDeleteFailureNotFatal(t *testing.T) {
	uc, repo, blobs := newTestUseCase()
	blobs.deleteOK = false
	seeded := seedActivity(repo, strPtr("activities/old.jpg"))

	if _, err := uc.Update(context.Background(), seeded.ID, dto.UpdateActivity{
		ImageKey: strPtr("activities/new.jpg"),
	}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got := repo.activities[seeded.ID]
	if got.ImageKey == nil || *got.ImageKey != "activities/new.jpg" {
		t.Errorf("stored image key = %v, want activities/new.jpg", got.ImageKey)
	}
}

func TestUpdatePartialFields(t *testing.T) {
	uc, repo, _ := newTestUseCase()
	seeded := seedActivity(repo, nil)

	updated, err := uc.Update(context.Background(), seeded.ID, dto.UpdateActivity{
		Title: strPtr("evening hike"),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if updated.Title != "evening hike" {
		t.Errorf("title = %q, want evening hike", updated.Title)
	}
	if updated.DurationMinutes != seeded.DurationMinutes {
		t.Errorf("duration = %d, want untouched %d", updated.DurationMinutes, seeded.DurationMinutes)
	}
	if !updated.ActivityDate.Equal(seeded.ActivityDate) {
		t.Errorf("date = %v, want untouched %v", updated.ActivityDate, seeded.ActivityDate)
	}
}

func TestUpdateNotFound(t *testing.T) {
	uc, _, _ := newTestUseCase()

	_, err := uc.Update(context.Background(), uuid.New(), dto.UpdateActivity{Title: strPtr("x")})
	if !errors.Is(err, errs.ErrRecordNotFound) {
		t.Errorf("err = %v, want ErrRecordNotFound", err)
	}
}

func TestDeleteRemovesRecordThenBlob(t *testing.T) {
	uc, repo, blobs := newTestUseCase()
	seeded := seedActivity(repo, strPtr("activities/old.jpg"))

	if err := uc.Delete(context.Background(), seeded.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, ok := repo.activities[seeded.ID]; ok {
		t.Error("record still present after delete")
	}
	if len(blobs.deletes) != 1 || blobs.deletes[0].key != "activities/old.jpg" {
		t.Fatalf("blob deletes = %+v, want one delete of activities/old.jpg", blobs.deletes)
	}
	if !blobs.deletes[0].afterCommitted {
		t.Error("blob deleted before the record delete committed")
	}
}

func TestDeleteWithoutImage(t *testing.T) {
	uc, repo, blobs := newTestUseCase()
	seeded := seedActivity(repo, nil)

	if err := uc.Delete(context.Background(), seeded.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(blobs.deletes) != 0 {
		t.Errorf("blob deletes = %+v, want none", blobs.deletes)
	}
}

func TestAutocomplete(t *testing.T) {
	uc, repo, _ := newTestUseCase()
	repo.people = []string{"Alice", "Bob"}
	repo.tags = []string{"hike", "run"}

	suggestions, err := uc.Autocomplete(context.Background())
	if err != nil {
		t.Fatalf("Autocomplete: %v", err)
	}

	if len(suggestions.People) != 2 || suggestions.People[0] != "Alice" {
		t.Errorf("people = %v, want [Alice Bob]", suggestions.People)
	}
	if len(suggestions.Tags) != 2 || suggestions.Tags[1] != "run" {
		t.Errorf("tags = %v, want [hike run]", suggestions.Tags)
	}
}

func TestAutocompleteEmptyTables(t *testing.T) {
	uc, _, _ := newTestUseCase()

	suggestions, err := uc.Autocomplete(context.Background())
	if err != nil {
		t.Fatalf("Autocomplete: %v", err)
	}

	if suggestions.People == nil || suggestions.Tags == nil {
		t.Error("people and tags must marshal as [], not null")
	}
}

func TestCreateDefaultsSlices(t *testing.T) {
	uc, _, _ := newTestUseCase()

	created, err := uc.Create(context.Background(), dto.CreateActivity{
		Title:           "walk",
		DurationMinutes: 30,
		ActivityDate:    time.Now(),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if created.People == nil || created.Tags == nil {
		t.Error("people and tags must marshal as [], not null")
	}
	if created.ID == uuid.Nil {
		t.Error("id not assigned")
	}
}
