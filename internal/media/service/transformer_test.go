package service

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/shammazp/restaurant-backend/internal/errors"
)

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 120, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding test image: %v", err)
	}
	return buf.Bytes()
}

func TestTransform_WideSourceIsCoverCroppedToTarget(t *testing.T) {
	tr := NewTransformer(600, 600, 90)

	out, err := tr.Transform(encodePNG(t, 1200, 400))
	assert.NoError(t, err)

	decoded, format, err := image.Decode(bytes.NewReader(out))
	assert.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 600, decoded.Bounds().Dx())
	assert.Equal(t, 600, decoded.Bounds().Dy())
}

func TestTransform_TallSourceIsCoverCroppedToTarget(t *testing.T) {
	tr := NewTransformer(600, 600, 90)

	out, err := tr.Transform(encodePNG(t, 300, 900))
	assert.NoError(t, err)

	decoded, _, err := image.Decode(bytes.NewReader(out))
	assert.NoError(t, err)
	assert.Equal(t, 600, decoded.Bounds().Dx())
	assert.Equal(t, 600, decoded.Bounds().Dy())
}

func TestTransform_JPEGInputAccepted(t *testing.T) {
	tr := NewTransformer(600, 600, 90)

	img := image.NewRGBA(image.Rect(0, 0, 700, 700))
	var buf bytes.Buffer
	assert.NoError(t, jpeg.Encode(&buf, img, &jpeg.Options{Quality: 80}))

	out, err := tr.Transform(buf.Bytes())
	assert.NoError(t, err)

	decoded, format, err := image.Decode(bytes.NewReader(out))
	assert.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 600, decoded.Bounds().Dx())
	assert.Equal(t, 600, decoded.Bounds().Dy())
}

func TestTransform_UndecodableInputRejected(t *testing.T) {
	tr := NewTransformer(600, 600, 90)

	_, err := tr.Transform([]byte("definitely not an image"))
	assert.Error(t, err)

	_, ok := apperrors.IsUnsupportedFormatError(err)
	assert.True(t, ok, "expected UnsupportedFormatError, got %T", err)
}

func TestTransform_ContentType(t *testing.T) {
	tr := NewTransformer(600, 600, 90)
	assert.Equal(t, "image/jpeg", tr.ContentType())
}
