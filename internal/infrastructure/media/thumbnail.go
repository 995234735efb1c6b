package media

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	// Decoders for the upload formats accepted by the pipeline.
	_ "image/gif"
	_ "image/png"

	"golang.org/x/image/draw"
)

const thumbnailSize = 160

// makeThumbnail decodes the uploaded image and scales it into a square
// JPEG thumbnail.
func makeThumbnail(data []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	dst := image.NewRGBA(image.Rect(0, 0, thumbnailSize, thumbnailSize))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: 80}); err != nil {
		return nil, fmt.Errorf("encode thumbnail: %w", err)
	}
	return buf.Bytes(), nil
}
