package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/littleroamers/roamers/internal/dto"
	"github.com/littleroamers/roamers/internal/entity"
)

type nopLogger struct{}

func (nopLogger) Debug(message interface{}, args ...interface{}) {}
func (nopLogger) Info(message string, args ...interface{})       {}
func (nopLogger) Warn(message string, args ...interface{})       {}
func (nopLogger) Error(message interface{}, args ...interface{}) {}
func (nopLogger) Fatal(message interface{}, args ...interface{}) {}

type fakeUploads struct{}

func (fakeUploads) UploadImage(context.Context, []byte, string, string) (*entity.UploadResult, error) {
	return &entity.UploadResult{}, nil
}
func (fakeUploads) FetchImage(context.Context, string) ([]byte, string, error) {
	return nil, "", nil
}
func (fakeUploads) DeleteImage(context.Context, string) bool { return true }

type fakeActivities struct{}

func (fakeActivities) List(context.Context) ([]entity.Activity, error) {
	return []entity.Activity{}, nil
}

func (fakeActivities) GetByID(_ context.Context, id uuid.UUID) (*entity.Activity, error) {
	return &entity.Activity{ID: id}, nil
}

func (fakeActivities) Create(context.Context, dto.CreateActivity) (*entity.Activity, error) {
	return &entity.Activity{ID: uuid.New()}, nil
}

func (fakeActivities) Update(_ context.Context, id uuid.UUID, _ dto.UpdateActivity) (*entity.Activity, error) {
	return &entity.Activity{ID: id}, nil
}

func (fakeActivities) Delete(context.Context, uuid.UUID) error { return nil }

func (fakeActivities) Autocomplete(context.Context) (*entity.Autocomplete, error) {
	return &entity.Autocomplete{People: []string{"Alice"}, Tags: []string{"hike"}}, nil
}

type fakeWalks struct{}

func (fakeWalks) List(context.Context) ([]entity.Walk, error) { return []entity.Walk{}, nil }

func (fakeWalks) GetByID(_ context.Context, id uuid.UUID) (*entity.Walk, error) {
	return &entity.Walk{ID: id}, nil
}

func (fakeWalks) Create(context.Context, dto.CreateWalk) (*entity.Walk, error) {
	return &entity.Walk{ID: uuid.New()}, nil
}

func (fakeWalks) Update(_ context.Context, id uuid.UUID, _ dto.UpdateWalk) (*entity.Walk, error) {
	return &entity.Walk{ID: id}, nil
}

func (fakeWalks) Delete(context.Context, uuid.UUID) error { return nil }

type fakeStats struct{}

func (fakeStats) Stats(context.Context) (*entity.ActivityStats, error) {
	return &entity.ActivityStats{}, nil
}

func newTestApp() *fiber.App {
	app := fiber.New()
	NewRoutes(app.Group("/v1"), fakeUploads{}, fakeActivities{}, fakeWalks{}, fakeStats{}, nopLogger{})

	return app
}

func TestPartialUpdatesUsePatch(t *testing.T) {
	app := newTestApp()
	id := uuid.New().String()

	for _, path := range []string{"/v1/activities/" + id, "/v1/walks/" + id} {
		req := httptest.NewRequest(http.MethodPatch, path, strings.NewReader("{}"))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("PATCH %s: %v", path, err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Errorf("PATCH %s = %d, want 200", path, resp.StatusCode)
		}

		req = httptest.NewRequest(http.MethodPut, path, strings.NewReader("{}"))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

		resp, err = app.Test(req)
		if err != nil {
			t.Fatalf("PUT %s: %v", path, err)
		}
		if resp.StatusCode != http.StatusMethodNotAllowed {
			t.Errorf("PUT %s = %d, want 405", path, resp.StatusCode)
		}
	}
}

// /autocomplete and /stats must resolve to their own handlers, not be
// captured by the /:id param route.
func TestActivityStaticRoutesBeforeParam(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/v1/activities/autocomplete", nil))
	if err != nil {
		t.Fatalf("GET autocomplete: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET autocomplete = %d, want 200", resp.StatusCode)
	}

	var suggestions entity.Autocomplete
	if err := json.NewDecoder(resp.Body).Decode(&suggestions); err != nil {
		t.Fatalf("decode autocomplete body: %v", err)
	}
	if len(suggestions.People) != 1 || suggestions.People[0] != "Alice" {
		t.Errorf("people = %v, want [Alice]", suggestions.People)
	}
	if len(suggestions.Tags) != 1 || suggestions.Tags[0] != "hike" {
		t.Errorf("tags = %v, want [hike]", suggestions.Tags)
	}

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/v1/activities/stats", nil))
	if err != nil {
		t.Fatalf("GET stats: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("GET stats = %d, want 200", resp.StatusCode)
	}
}
