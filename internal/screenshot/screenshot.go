// Package screenshot prepares an optional wearable-data screenshot for
// inclusion in a model request.
package screenshot

import (
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

var (
	// ErrNotFound is returned when the image file does not exist.
	ErrNotFound = errors.New("image file not found")
	// ErrInvalidImage is returned when the file is not a decodable raster image.
	ErrInvalidImage = errors.New("invalid or unreadable image")
)

// Info describes the raster image without decoding its pixels.
type Info struct {
	Format   string `json:"format"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	FileSize int64  `json:"file_size"`
}

// Prepared is a screenshot ready for transmission to the model.
type Prepared struct {
	Base64  string
	Info    Info
	DataURL string
}

// Validate reports whether path points at a decodable raster image.
// It never returns an error.
func Validate(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	_, _, err = image.DecodeConfig(f)
	return err == nil
}

// Encode reads the file at path and returns it base64 encoded.
func Encode(path string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to encode image %s: %w", path, err)
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// Stat returns metadata about the image at path.
func Stat(path string) (Info, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return Info{}, fmt.Errorf("failed to stat image %s: %w", path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return Info{}, fmt.Errorf("failed to open image %s: %w", path, err)
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return Info{}, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	return Info{
		Format:   format,
		Width:    cfg.Width,
		Height:   cfg.Height,
		FileSize: fi.Size(),
	}, nil
}

// Prepare validates, inspects, and encodes the screenshot in one step.
func Prepare(path string) (*Prepared, error) {
	if !Validate(path) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidImage, path)
	}

	info, err := Stat(path)
	if err != nil {
		return nil, err
	}

	encoded, err := Encode(path)
	if err != nil {
		return nil, err
	}

	return &Prepared{
		Base64:  encoded,
		Info:    info,
		DataURL: fmt.Sprintf("data:image/%s;base64,%s", info.Format, encoded),
	}, nil
}

// FormatFileSize renders a byte count in human-readable form.
func FormatFileSize(size int64) string {
	if size == 0 {
		return "0 B"
	}
	units := []string{"B", "KB", "MB", "GB"}
	value := float64(size)
	i := 0
	for value >= 1024 && i < len(units)-1 {
		value /= 1024
		i++
	}
	return fmt.Sprintf("%.1f %s", value, units[i])
}
