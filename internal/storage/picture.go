package storage

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const (
	maxPictureWidth = 1280
	webpQuality     = 85
)

// NormalizePicture decodes an uploaded jpeg/png/webp picture, downscales
// it to at most maxPictureWidth and re-encodes it as webp.
func NormalizePicture(r io.Reader) ([]byte, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode picture: %w", err)
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if w > maxPictureWidth {
		scaled := maxPictureWidth * h / w
		dst := image.NewRGBA(image.Rect(0, 0, maxPictureWidth, scaled))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
		src = dst
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, src, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}

	return buf.Bytes(), nil
}
