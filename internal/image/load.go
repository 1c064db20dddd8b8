package imagepkg

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/disintegration/imaging"
)

// LoadImage reads and decodes an image file, keeping its alpha channel.
func LoadImage(path string) (*image.NRGBA, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	img, err := imaging.Decode(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return imaging.Clone(img), nil
}

// SavePNG writes img as a PNG with maximum compression.
func SavePNG(img image.Image, path string) error {
	if err := imaging.Save(img, path, imaging.PNGCompressionLevel(png.BestCompression)); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
