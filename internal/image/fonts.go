package imagepkg

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// BasicFontName identifies the bitmap face used when nothing else loads.
const BasicFontName = "basicfont.Face7x13"

// LoadFace returns a face for the first candidate font file that can be
// read and parsed, at the given pixel size. Unreadable candidates are
// skipped. When none load, the embedded builtin TTF is used, and failing
// that a fixed bitmap face. The second return value names the source.
func LoadFace(candidates []string, size float64, builtin []byte, logger *zap.Logger) (font.Face, string) {
	if logger == nil {
		logger = zap.NewNop()
	}
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Debug("font candidate unavailable", zap.String("path", path), zap.Error(err))
			continue
		}
		face, err := parseFace(data, size, isCollection(path))
		if err != nil {
			logger.Debug("font candidate rejected", zap.String("path", path), zap.Error(err))
			continue
		}
		return face, path
	}
	if len(builtin) > 0 {
		face, err := parseFace(builtin, size, false)
		if err == nil {
			return face, "builtin"
		}
		logger.Warn("builtin font failed to parse", zap.Error(err))
	}
	return basicfont.Face7x13, BasicFontName
}

func isCollection(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".ttc" || ext == ".otc"
}

func parseFace(data []byte, size float64, collection bool) (font.Face, error) {
	var f *opentype.Font
	var err error
	if collection {
		c, cerr := opentype.ParseCollection(data)
		if cerr != nil {
			return nil, fmt.Errorf("parse collection: %w", cerr)
		}
		if c.NumFonts() == 0 {
			return nil, fmt.Errorf("empty font collection")
		}
		f, err = c.Font(0)
	} else {
		f, err = opentype.Parse(data)
	}
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face: %w", err)
	}
	return face, nil
}
