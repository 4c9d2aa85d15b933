// Package export writes rendered icons to disk as PNG and ICO files and
// reads them back.
package export

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"

	ico "github.com/sergeymakinen/go-ico"
)

const (
	PNGName = "favicon.png"
	ICOName = "favicon.ico"
)

// WritePNG encodes img as an RGBA PNG and writes it to path, replacing any
// existing file.
func WritePNG(path string, img image.Image) error {
	var buf bytes.Buffer
	if err := encodeRGBA(&buf, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return writeFile(path, buf.Bytes())
}

// WriteICO encodes img as a single-entry ICO and writes it to path,
// replacing any existing file.
func WriteICO(path string, img image.Image) error {
	var buf bytes.Buffer
	if err := ico.Encode(&buf, img); err != nil {
		return fmt.Errorf("failed to encode ICO: %w", err)
	}
	return writeFile(path, buf.Bytes())
}

func ReadPNG(path string) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode PNG %s: %w", path, err)
	}
	return img, nil
}

// ReadICO decodes the largest image stored in the ICO at path.
func ReadICO(path string) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	img, err := ico.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode ICO %s: %w", path, err)
	}
	return img, nil
}

// ReadICOConfig returns the nominal size of the ICO at path without
// decoding pixel data.
func ReadICOConfig(path string) (image.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return image.Config{}, err
	}
	cfg, err := ico.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return image.Config{}, fmt.Errorf("failed to decode ICO config %s: %w", path, err)
	}
	return cfg, nil
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
