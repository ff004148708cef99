package images

import (
	"bytes"
	"fmt"
	"os"

	"github.com/disintegration/imaging"
)

const embedJPEGQuality = 85

// EncodeForEmbedding returns the JPEG bytes to inline into a document. With a
// positive maxSize, larger images are scaled down to fit a maxSize square.
func EncodeForEmbedding(path string, maxSize int) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if maxSize <= 0 {
		return content, nil
	}

	img, err := imaging.Decode(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("image decode failed: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() <= maxSize && bounds.Dy() <= maxSize {
		return content, nil
	}

	scaled := imaging.Fit(img, maxSize, maxSize, imaging.Lanczos)

	var buf bytes.Buffer
	err = imaging.Encode(&buf, scaled, imaging.JPEG, imaging.JPEGQuality(embedJPEGQuality))
	if err != nil {
		return nil, fmt.Errorf("encoding scaled image failed: %w", err)
	}

	return buf.Bytes(), nil
}
