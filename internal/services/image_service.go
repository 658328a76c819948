package services

import (
	"bytes"
	"fmt"
	"io"

	"github.com/disintegration/imaging"
	"github.com/sjperalta/frequencia-api/internal/storage"
)

// Thumbnail bounds for signed sheet scans
const (
	thumbnailWidth  = 320
	thumbnailHeight = 452
)

// ImageService builds previews of uploaded scans
type ImageService struct {
	store storage.ObjectStorage
}

func NewImageService(store storage.ObjectStorage) *ImageService {
	return &ImageService{store: store}
}

// Thumbnail decodes the image stored at key and writes a JPEG preview next
// to it. It returns the thumbnail key.
func (s *ImageService) Thumbnail(key string) (string, error) {
	f, err := s.store.Open(key)
	if err != nil {
		return "", fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	data, err := MakeThumbnail(f)
	if err != nil {
		return "", err
	}

	thumbKey := storage.ThumbnailKey(key)
	if err := s.store.Write(thumbKey, data); err != nil {
		return "", err
	}
	return thumbKey, nil
}

// MakeThumbnail fits the image into an A4-shaped box and encodes it as JPEG
func MakeThumbnail(r io.Reader) ([]byte, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	thumb := imaging.Fit(img, thumbnailWidth, thumbnailHeight, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, imaging.JPEG, imaging.JPEGQuality(85)); err != nil {
		return nil, fmt.Errorf("failed to encode thumbnail: %w", err)
	}
	return buf.Bytes(), nil
}
