package media

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/catatlas/cat-registry/internal/core/domain"
	"github.com/catatlas/cat-registry/internal/core/ports"
)

var helsinki = domain.Point{Lat: 60.1699, Lng: 24.9384}

type stubStorage struct {
	objects  map[string][]byte
	types    map[string]string
	putErrOn string // key substring that makes Put fail
	removed  []string
}

func newStubStorage() *stubStorage {
	return &stubStorage{objects: make(map[string][]byte), types: make(map[string]string)}
}

func (s *stubStorage) Put(_ context.Context, key string, data []byte, contentType string) error {
	if s.putErrOn != "" && strings.Contains(key, s.putErrOn) {
		return errors.New("store unavailable")
	}
	s.objects[key] = data
	s.types[key] = contentType
	return nil
}

func (s *stubStorage) Remove(_ context.Context, key string) error {
	s.removed = append(s.removed, key)
	delete(s.objects, key)
	return nil
}

func encodeJPEG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 320, 240))
	for y := 0; y < 240; y++ {
		for x := 0; x < 320; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatalf("encode jpeg: %v", err)
	}
	return buf.Bytes()
}

func encodePNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestPipeline_Ingest(t *testing.T) {
	store := newStubStorage()
	p := NewPipeline(store, helsinki, zerolog.Nop())

	result, err := p.Ingest(context.Background(), ports.MediaUpload{
		Filename:    "Mittens.JPG",
		ContentType: "image/jpeg",
		Data:        encodeJPEG(t),
	})
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}

	if !strings.HasSuffix(result.Filename, ".jpg") {
		t.Errorf("stored key %q should carry the lowercased extension", result.Filename)
	}
	if result.Filename == "Mittens.JPG" {
		t.Error("stored key must not be the client-supplied filename")
	}

	// Plain JPEGs carry no GPS tags; the fallback point applies.
	if result.Location != helsinki {
		t.Errorf("location = %+v, want fallback %+v", result.Location, helsinki)
	}

	if _, ok := store.objects[result.Filename]; !ok {
		t.Error("original not stored")
	}
	thumbKey := strings.TrimSuffix(result.Filename, ".jpg") + "_thumb.jpg"
	thumb, ok := store.objects[thumbKey]
	if !ok {
		t.Fatal("thumbnail not stored")
	}
	if store.types[thumbKey] != "image/jpeg" {
		t.Errorf("thumbnail content type = %q", store.types[thumbKey])
	}

	img, _, err := image.Decode(bytes.NewReader(thumb))
	if err != nil {
		t.Fatalf("thumbnail does not decode: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 160 || b.Dy() != 160 {
		t.Errorf("thumbnail %dx%d, want 160x160", b.Dx(), b.Dy())
	}
}

func TestPipeline_IngestPNG(t *testing.T) {
	store := newStubStorage()
	p := NewPipeline(store, helsinki, zerolog.Nop())

	result, err := p.Ingest(context.Background(), ports.MediaUpload{
		Filename:    "pixel.png",
		ContentType: "image/png",
		Data:        encodePNG(t),
	})
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	if !strings.HasSuffix(result.Filename, ".png") {
		t.Errorf("key = %q", result.Filename)
	}
}

func TestPipeline_IngestEmptyUpload(t *testing.T) {
	p := NewPipeline(newStubStorage(), helsinki, zerolog.Nop())

	_, err := p.Ingest(context.Background(), ports.MediaUpload{Filename: "x.jpg", ContentType: "image/jpeg"})
	if !errors.Is(err, domain.ErrMediaRequired) {
		t.Fatalf("expected ErrMediaRequired, got %v", err)
	}
}

func TestPipeline_IngestRejectsNonImages(t *testing.T) {
	store := newStubStorage()
	p := NewPipeline(store, helsinki, zerolog.Nop())
	ctx := context.Background()

	_, err := p.Ingest(ctx, ports.MediaUpload{
		Filename:    "notes.txt",
		ContentType: "text/plain",
		Data:        []byte("just text"),
	})
	if !errors.Is(err, domain.ErrUnsupportedMedia) {
		t.Fatalf("expected ErrUnsupportedMedia, got %v", err)
	}

	// A lying content type does not get past the decode check either.
	_, err = p.Ingest(ctx, ports.MediaUpload{
		Filename:    "fake.jpg",
		ContentType: "image/jpeg",
		Data:        []byte("definitely not a jpeg"),
	})
	if !errors.Is(err, domain.ErrUnsupportedMedia) {
		t.Fatalf("expected ErrUnsupportedMedia for undecodable data, got %v", err)
	}
	if len(store.objects) != 0 {
		t.Error("rejected upload must not be stored")
	}
}

func TestPipeline_IngestCleansUpOnThumbnailFailure(t *testing.T) {
	store := newStubStorage()
	store.putErrOn = "_thumb"
	p := NewPipeline(store, helsinki, zerolog.Nop())

	_, err := p.Ingest(context.Background(), ports.MediaUpload{
		Filename:    "mittens.jpg",
		ContentType: "image/jpeg",
		Data:        encodeJPEG(t),
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if len(store.removed) != 1 {
		t.Fatalf("expected the original to be removed, removed = %v", store.removed)
	}
	if len(store.objects) != 0 {
		t.Errorf("objects left behind: %v", store.objects)
	}
}

func TestThumbnailKey(t *testing.T) {
	if got := thumbnailKey("abc.png"); got != "abc_thumb.jpg" {
		t.Errorf("thumbnailKey = %q", got)
	}
	if got := thumbnailKey("noext"); got != "noext_thumb.jpg" {
		t.Errorf("thumbnailKey = %q", got)
	}
}
