package service

import (
	"bytes"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"

	apperrors "github.com/shammazp/restaurant-backend/internal/errors"
)

// Transformer resizes uploads to a fixed preset with a cover/center-crop fit:
// the output always matches the target dimensions exactly, cropping instead
// of letterboxing, and is always re-encoded as JPEG at fixed quality.
type Transformer struct {
	width   int
	height  int
	quality int
}

func NewTransformer(width, height, quality int) *Transformer {
	return &Transformer{width: width, height: height, quality: quality}
}

// Transform is a pure function of its input bytes. Undecodable input fails
// with UnsupportedFormat before any resize work happens.
func (t *Transformer) Transform(raw []byte) ([]byte, error) {
	src, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, apperrors.NewUnsupportedFormatError(err)
	}

	dst := imaging.Fill(src, t.width, t.height, imaging.Center, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, dst, imaging.JPEG, imaging.JPEGQuality(t.quality)); err != nil {
		return nil, apperrors.NewInternalError("encoding resized image", err)
	}

	return buf.Bytes(), nil
}

// ContentType reports the media type every transformed image carries.
func (t *Transformer) ContentType() string {
	return "image/jpeg"
}
