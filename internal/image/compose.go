package imagepkg

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Composer renders store screenshots for a fixed Layout. Fonts and the
// optional badge are resolved once; Compose itself keeps no state between calls.
type Composer struct {
	layout       Layout
	headlineFace font.Face
	subtitleFace font.Face
	badge        *image.NRGBA
	logger       *zap.Logger
}

// NewComposer resolves fonts and renders the badge, if any.
func NewComposer(layout Layout, logger *zap.Logger) (*Composer, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Composer{layout: layout, logger: logger}

	var src string
	c.headlineFace, src = LoadFace(layout.Headline.Fonts, layout.Headline.Size, gobold.TTF, logger)
	logger.Debug("headline font", zap.String("source", src), zap.Float64("size", layout.Headline.Size))
	c.subtitleFace, src = LoadFace(layout.Subtitle.Fonts, layout.Subtitle.Size, goregular.TTF, logger)
	logger.Debug("subtitle font", zap.String("source", src), zap.Float64("size", layout.Subtitle.Size))

	if layout.Badge != nil {
		b, err := RenderBadge(*layout.Badge)
		if err != nil {
			return nil, err
		}
		c.badge = b
	}
	return c, nil
}

// Layout returns the layout the composer was built with.
func (c *Composer) Layout() Layout {
	return c.layout
}

// Placement returns where a foreground of the given source size lands on the
// canvas. The foreground is centred horizontally and, in the area below the
// text, vertically with a small downward nudge. It never overflows the canvas
// bottom and never starts above the text area.
func (c *Composer) Placement(srcW, srcH int) image.Rectangle {
	l := c.layout
	availW, availH := l.Available()
	w, h := FitSize(srcW, srcH, availW, availH)

	textArea := l.TextAreaHeight()
	x := floorDiv(l.Width-w, 2)
	y := textArea + floorDiv(l.ScreenshotArea()-h, 2) + l.DropOffset
	if y+h > l.Height {
		y = l.Height - h
	}
	if y < textArea {
		y = textArea
	}
	return image.Rect(x, y, x+w, y+h)
}

// Background renders the gradient with the glow on top.
func (c *Composer) Background() *image.NRGBA {
	l := c.layout
	bg := Gradient(l.Width, l.Height, l.TopColor, l.BottomColor, l.GradientExponent)
	return ApplyGlow(bg, l.Glow)
}

// Compose builds one finished screenshot from src and the two text lines.
// The result is fully opaque.
func (c *Composer) Compose(src image.Image, headline, subtitle string) *image.RGBA {
	l := c.layout
	canvas := c.Background()

	sb := src.Bounds()
	place := c.Placement(sb.Dx(), sb.Dy())
	fg := imaging.Resize(src, place.Dx(), place.Dy(), imaging.Lanczos)
	fg = RoundCorners(fg, l.CornerRadius)
	asset, pad := DropShadow(fg, l.Shadow)
	canvas = imaging.Overlay(canvas, asset, place.Min.Sub(image.Pt(pad, pad)), 1.0)

	DrawTextLine(canvas, c.headlineFace, headline, l.HeadlineTop(), l.Headline)
	DrawTextLine(canvas, c.subtitleFace, subtitle, l.SubtitleTop(), l.Subtitle)

	if c.badge != nil {
		canvas = imaging.Overlay(canvas, c.badge, BadgePosition(l.Width, *l.Badge), 1.0)
	}
	return Flatten(canvas)
}

// Flatten drops the alpha channel by compositing img over opaque black.
func Flatten(img image.Image) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Over)
	return out
}
