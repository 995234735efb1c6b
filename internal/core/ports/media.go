package ports

import (
	"context"

	"github.com/catatlas/cat-registry/internal/core/domain"
)

// MediaUpload is a raw uploaded file handed to the pipeline.
type MediaUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// MediaResult is what the pipeline derives from a stored upload: the object
// key it was stored under and the location read from the photo's EXIF data.
type MediaResult struct {
	Filename string
	Location domain.Point
}

// MediaPipeline stores an uploaded image and derives its metadata.
type MediaPipeline interface {
	Ingest(ctx context.Context, upload MediaUpload) (*MediaResult, error)
}
