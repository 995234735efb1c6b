package media

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rwcarlsen/goexif/exif"

	"github.com/catatlas/cat-registry/internal/core/domain"
	"github.com/catatlas/cat-registry/internal/core/ports"
)

// Storage is the subset of the object store the pipeline needs.
type Storage interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Remove(ctx context.Context, key string) error
}

// Pipeline implements ports.MediaPipeline: it validates the upload, derives
// the photo's location from its EXIF GPS tags, stores the original plus a
// square thumbnail, and hands back the stored object key. When the photo
// carries no GPS data the configured fallback point is used, mirroring the
// behaviour clients already depend on.
type Pipeline struct {
	store    Storage
	fallback domain.Point
	log      zerolog.Logger
}

func NewPipeline(store Storage, fallback domain.Point, log zerolog.Logger) *Pipeline {
	return &Pipeline{store: store, fallback: fallback, log: log}
}

// Ingest processes one uploaded image.
func (p *Pipeline) Ingest(ctx context.Context, upload ports.MediaUpload) (*ports.MediaResult, error) {
	if len(upload.Data) == 0 {
		return nil, domain.ErrMediaRequired
	}
	if !strings.HasPrefix(upload.ContentType, "image/") {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedMedia, upload.ContentType)
	}

	// Thumbnailing doubles as a decode check: data that is not a real image
	// fails here before anything is stored.
	thumb, err := makeThumbnail(upload.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnsupportedMedia, err)
	}

	location, hasGPS := p.extractLocation(upload.Data)

	key := uuid.New().String() + strings.ToLower(path.Ext(upload.Filename))
	if err := p.store.Put(ctx, key, upload.Data, upload.ContentType); err != nil {
		return nil, fmt.Errorf("store upload: %w", err)
	}
	if err := p.store.Put(ctx, thumbnailKey(key), thumb, "image/jpeg"); err != nil {
		// Do not leave a half-ingested upload behind.
		if removeErr := p.store.Remove(ctx, key); removeErr != nil {
			p.log.Warn().Err(removeErr).Str("key", key).Msg("orphaned upload after failed thumbnail store")
		}
		return nil, fmt.Errorf("store thumbnail: %w", err)
	}

	p.log.Info().Str("key", key).Bool("gps", hasGPS).Msg("media ingested")
	return &ports.MediaResult{Filename: key, Location: location}, nil
}

// extractLocation reads the GPS position from the image's EXIF block,
// falling back to the configured default point.
func (p *Pipeline) extractLocation(data []byte) (domain.Point, bool) {
	x, err := exif.Decode(bytes.NewReader(data))
	if err != nil {
		p.log.Debug().Err(err).Msg("no exif data, using fallback location")
		return p.fallback, false
	}

	lat, lng, err := x.LatLong()
	if err != nil {
		p.log.Debug().Err(err).Msg("no gps tags, using fallback location")
		return p.fallback, false
	}

	point := domain.Point{Lat: lat, Lng: lng}
	if !point.Valid() {
		return p.fallback, false
	}
	return point, true
}

// thumbnailKey derives the thumbnail object key from the original's key.
func thumbnailKey(key string) string {
	ext := path.Ext(key)
	return strings.TrimSuffix(key, ext) + "_thumb.jpg"
}
