package upload

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/littleroamers/roamers/internal/infrastructure/processor"
	"github.com/littleroamers/roamers/pkg/types/errs"
)

type nopLogger struct{}

func (nopLogger) Debug(message interface{}, args ...interface{}) {}
func (nopLogger) Info(message string, args ...interface{})       {}
func (nopLogger) Warn(message string, args ...interface{})       {}
func (nopLogger) Error(message interface{}, args ...interface{}) {}
func (nopLogger) Fatal(message interface{}, args ...interface{}) {}

type storedBlob struct {
	data        []byte
	contentType string
}

// fakeBlobRepo keeps blobs in a map and hands out keys the way the
// real gateway does.
type fakeBlobRepo struct {
	blobs      map[string]storedBlob
	deleteOK   bool
	deletedKey string
}

func newFakeBlobRepo() *fakeBlobRepo {
	return &fakeBlobRepo{blobs: map[string]storedBlob{}, deleteOK: true}
}

func (f *fakeBlobRepo) Store(_ context.Context, data []byte, contentType, _ string) (string, error) {
	key := fmt.Sprintf("activities/%s.jpg", uuid.New())

	buf := make([]byte, len(data))
	copy(buf, data)
	f.blobs[key] = storedBlob{data: buf, contentType: contentType}

	return key, nil
}

func (f *fakeBlobRepo) Fetch(_ context.Context, key string) ([]byte, string, error) {
	blob, ok := f.blobs[key]
	if !ok {
		return nil, "", errs.ErrNotFound
	}

	return blob.data, blob.contentType, nil
}

func (f *fakeBlobRepo) Delete(_ context.Context, key string) bool {
	f.deletedKey = key
	delete(f.blobs, key)

	return f.deleteOK
}

func (f *fakeBlobRepo) Exists(_ context.Context, key string) bool {
	_, ok := f.blobs[key]
	return ok
}

func createTestJPEG(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 120, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		t.Fatalf("encode jpeg: %v", err)
	}

	return buf.Bytes()
}

func TestUploadImageRoundTrip(t *testing.T) {
	blobs := newFakeBlobRepo()
	uc := New(blobs, processor.New(), 10, nopLogger{})

	data := createTestJPEG(t, 100, 80)

	result, err := uc.UploadImage(context.Background(), data, "image/jpeg", "photo.jpg")
	if err != nil {
		t.Fatalf("UploadImage: %v", err)
	}

	keyPattern := regexp.MustCompile(`^[^/]+/[0-9a-f-]{36}\.jpg$`)
	if !keyPattern.MatchString(result.ImageKey) {
		t.Errorf("key %q does not match %s", result.ImageKey, keyPattern)
	}

	if result.Metadata.Width != 100 || result.Metadata.Height != 80 {
		t.Errorf("metadata dimensions = %dx%d, want 100x80", result.Metadata.Width, result.Metadata.Height)
	}
	if result.Metadata.ContentType != "image/jpeg" {
		t.Errorf("metadata content type = %q, want image/jpeg", result.Metadata.ContentType)
	}
	if result.Metadata.Size != len(blobs.blobs[result.ImageKey].data) {
		t.Errorf("metadata size = %d, stored %d bytes", result.Metadata.Size, len(blobs.blobs[result.ImageKey].data))
	}

	// what was stored comes back byte for byte
	fetched, contentType, err := uc.FetchImage(context.Background(), result.ImageKey)
	if err != nil {
		t.Fatalf("FetchImage: %v", err)
	}
	if contentType != "image/jpeg" {
		t.Errorf("fetched content type = %q, want image/jpeg", contentType)
	}
	if !bytes.Equal(fetched, blobs.blobs[result.ImageKey].data) {
		t.Error("fetched bytes differ from stored bytes")
	}
}

func TestUploadImageNotAnImage(t *testing.T) {
	uc := New(newFakeBlobRepo(), processor.New(), 10, nopLogger{})

	_, err := uc.UploadImage(context.Background(), []byte("definitely not an image"), "image/jpeg", "x.jpg")
	if !errors.Is(err, errs.ErrNotAnImage) {
		t.Errorf("err = %v, want ErrNotAnImage", err)
	}
}

func TestUploadImageTooLarge(t *testing.T) {
	uc := New(newFakeBlobRepo(), processor.New(), 1, nopLogger{})

	// the size gate runs before decoding, so trailing padding is fine
	data := createTestJPEG(t, 10, 10)
	data = append(data, make([]byte, 1024*1024)...)

	_, err := uc.UploadImage(context.Background(), data, "image/jpeg", "big.jpg")
	if !errors.Is(err, errs.ErrTooLarge) {
		t.Errorf("err = %v, want ErrTooLarge", err)
	}
}

func TestFetchImageNotFound(t *testing.T) {
	uc := New(newFakeBlobRepo(), processor.New(), 10, nopLogger{})

	_, _, err := uc.FetchImage(context.Background(), "activities/missing.jpg")
	if !errors.Is(err, errs.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestDeleteImagePassthrough(t *testing.T) {
	blobs := newFakeBlobRepo()
	uc := New(blobs, processor.New(), 10, nopLogger{})

	if !uc.DeleteImage(context.Background(), "activities/a.jpg") {
		t.Error("DeleteImage = false, want true")
	}
	if blobs.deletedKey != "activities/a.jpg" {
		t.Errorf("deleted key = %q, want activities/a.jpg", blobs.deletedKey)
	}

	blobs.deleteOK = false
	if uc.DeleteImage(context.Background(), "activities/b.jpg") {
		t.Error("DeleteImage = true, want false")
	}
}
