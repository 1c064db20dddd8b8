package batch

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	imagepkg "github.com/youruser/storeshots/internal/image"
	"github.com/youruser/storeshots/internal/shots"
	"github.com/youruser/storeshots/internal/util"
)

// Runner renders a shot table, one screenshot at a time.
type Runner struct {
	composer *imagepkg.Composer
	rawDir   string
	outDir   string
	logger   *zap.Logger
}

// NewRunner returns a runner reading captures from rawDir and writing to outDir.
func NewRunner(composer *imagepkg.Composer, rawDir, outDir string, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{composer: composer, rawDir: rawDir, outDir: outDir, logger: logger}
}

// Run renders every spec in order. The first failure stops the run.
// It returns the paths written.
func (r *Runner) Run(specs []shots.Spec) ([]string, error) {
	if err := util.EnsureDir(r.outDir); err != nil {
		return nil, fmt.Errorf("creating output dir %s: %w", r.outDir, err)
	}
	l := r.composer.Layout()
	r.logger.Info("creating stylized App Store screenshots",
		zap.Int("width", l.Width),
		zap.Int("height", l.Height),
		zap.String("out_dir", r.outDir),
		zap.Int("count", len(specs)))

	written := make([]string, 0, len(specs))
	for _, s := range specs {
		path, err := r.Render(s)
		if err != nil {
			return written, err
		}
		written = append(written, path)
	}
	r.logger.Info("all screenshots created", zap.Int("count", len(written)))
	return written, nil
}

// Render composes and writes a single screenshot.
func (r *Runner) Render(s shots.Spec) (string, error) {
	r.logger.Info("creating screenshot", zap.String("output", s.Output), zap.String("source", s.Source))

	src, err := imagepkg.LoadImage(filepath.Join(r.rawDir, s.Source))
	if err != nil {
		return "", fmt.Errorf("loading %s: %w", s.Source, err)
	}
	out := r.composer.Compose(src, s.Headline, s.Subtitle)

	path := filepath.Join(r.outDir, s.Output)
	if err := imagepkg.SavePNG(out, path); err != nil {
		return "", err
	}
	b := out.Bounds()
	r.logger.Info("saved screenshot",
		zap.String("path", path),
		zap.Int("width", b.Dx()),
		zap.Int("height", b.Dy()))
	return path, nil
}
