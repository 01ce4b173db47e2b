package entity

// RawUpload is an uploaded image as received from the route layer,
// before any validation or processing. Discarded after the pipeline runs.
type RawUpload struct {
	Data        []byte
	ContentType string
	Filename    string
}

// OptimizedImage is the pipeline output: resized, re-encoded,
// metadata-stripped bytes ready for the blob store.
type OptimizedImage struct {
	Data        []byte
	ContentType string
	Width       int
	Height      int
	Size        int
}

// ImageMetadata describes a stored image for API responses.
type ImageMetadata struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Size        int    `json:"size"`
	ContentType string `json:"content_type"`
}

// UploadResult is what the upload entry point returns to the caller;
// ImageKey is what the owning record persists as image_key.
type UploadResult struct {
	ImageKey string        `json:"image_key"`
	Metadata ImageMetadata `json:"metadata"`
}
