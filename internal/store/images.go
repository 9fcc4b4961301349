package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

func (s Store) imagesDir() string {
	return filepath.Join(filepath.Clean(s.Dir), "images")
}

// SaveImage writes generated image bytes under <dir>/images with a
// timestamped filename and returns the absolute path. The extension is
// derived from the MIME type (default png).
func (s Store) SaveImage(data []byte, mimeType string) (string, error) {
	if len(data) == 0 {
		return "", errors.New("empty image data")
	}
	if err := os.MkdirAll(s.imagesDir(), 0o755); err != nil {
		return "", err
	}

	ext := "png"
	if i := strings.LastIndex(mimeType, "/"); i >= 0 && i+1 < len(mimeType) {
		ext = mimeType[i+1:]
	}
	name := fmt.Sprintf("galleria-%s.%s", time.Now().UTC().Format("20060102-150405"), ext)

	path := filepath.Join(s.imagesDir(), name)
	// Timestamps are second-resolution; add a numeric suffix on collision.
	for i := 2; ; i++ {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			break
		}
		path = filepath.Join(s.imagesDir(), fmt.Sprintf("galleria-%s-%d.%s", time.Now().UTC().Format("20060102-150405"), i, ext))
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path, nil
	}
	return abs, nil
}
