package persistent

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
	"github.com/littleroamers/roamers/pkg/logger"
	"github.com/littleroamers/roamers/pkg/s3client"
	"github.com/littleroamers/roamers/pkg/types/errs"
)

const _defaultExtension = "jpg"

var extByContentType = map[string]string{
	"image/jpeg": "jpg",
	"image/jpg":  "jpg",
	"image/png":  "png",
	"image/webp": "webp",
	"image/gif":  "gif",
}

var allowedExtensions = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
	"webp": true,
	"gif":  true,
}

// DeleteFailureHook is called whenever a blob deletion fails, on top of
// the log line, so blob leakage stays observable over time.
type DeleteFailureHook func(key string, err error)

type BlobRepo struct {
	*s3client.S3Client
	bucket string
	prefix string

	logger          logger.Interface
	onDeleteFailure DeleteFailureHook
}

func NewBlobRepo(s3c *s3client.S3Client, bucket, prefix string, l logger.Interface, hook DeleteFailureHook) *BlobRepo {
	return &BlobRepo{
		S3Client:        s3c,
		bucket:          bucket,
		prefix:          prefix,
		logger:          l,
		onDeleteFailure: hook,
	}
}

// Store uploads optimized image bytes under a fresh key of the form
// <prefix>/<uuid>.<ext> and returns that key. The store is never asked
// to retry; the caller owns retry policy.
func (r *BlobRepo) Store(ctx context.Context, data []byte, contentType, originalFilename string) (string, error) {
	key := r.buildKey(contentType, originalFilename)

	_, err := r.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(r.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return "", fmt.Errorf("BlobRepo - Store - r.Client.PutObject: %w: %w", errs.ErrUploadFailed, err)
	}

	return key, nil
}

// Fetch downloads a blob and its recorded content type.
func (r *BlobRepo) Fetch(ctx context.Context, key string) ([]byte, string, error) {
	result, err := r.Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, "", fmt.Errorf("BlobRepo - Fetch: %w", errs.ErrNotFound)
		}
		return nil, "", fmt.Errorf("BlobRepo - Fetch - r.Client.GetObject: %w: %w", errs.ErrFetchFailed, err)
	}
	defer result.Body.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(result.Body); err != nil {
		return nil, "", fmt.Errorf("BlobRepo - Fetch - buf.ReadFrom: %w: %w", errs.ErrFetchFailed, err)
	}

	contentType := "image/jpeg"
	if result.ContentType != nil {
		contentType = *result.ContentType
	}

	return buf.Bytes(), contentType, nil
}

// Delete removes a blob by key. It never fails the caller: a dangling
// blob is less harmful than blocking the operation that triggered the
// cleanup. Failures are logged and reported through the hook.
func (r *BlobRepo) Delete(ctx context.Context, key string) bool {
	if key == "" {
		r.logger.Warn("BlobRepo - Delete - attempted to delete blob with empty key")

		return false
	}

	_, err := r.Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		r.logger.Warn("BlobRepo - Delete - failed to delete key=%s, error=%v", key, err)

		if r.onDeleteFailure != nil {
			r.onDeleteFailure(key, err)
		}

		return false
	}

	return true
}

// Exists reports whether a blob is present. Best-effort: any error,
// including auth and network failures, reads as absent.
func (r *BlobRepo) Exists(ctx context.Context, key string) bool {
	if key == "" {
		return false
	}

	_, err := r.Client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	})

	return err == nil
}

func (r *BlobRepo) buildKey(contentType, originalFilename string) string {
	ext, ok := extByContentType[strings.ToLower(contentType)]
	if !ok {
		ext = extFromFilename(originalFilename)
	}

	return fmt.Sprintf("%s/%s.%s", r.prefix, uuid.New(), ext)
}

func extFromFilename(filename string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if allowedExtensions[ext] {
		return ext
	}

	return _defaultExtension
}
