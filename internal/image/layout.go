package imagepkg

import "image/color"

// GlowOptions describes the soft highlight drawn near the top of the canvas.
type GlowOptions struct {
	CenterY   int
	MaxRadius int
	Step      int
	MaxAlpha  uint8
}

// ShadowOptions describes a drop shadow rendered behind the foreground.
type ShadowOptions struct {
	OffsetX int
	OffsetY int
	Blur    int
	Color   color.NRGBA
}

// TextStyle is one line of marketing text.
type TextStyle struct {
	Size         float64
	Fonts        []string
	Color        color.NRGBA
	ShadowColor  color.NRGBA
	ShadowOffset int
}

// BadgeOptions places a QR code linking to the store listing.
type BadgeOptions struct {
	Content string
	Size    int
	Margin  int
}

// Layout holds everything the composer needs to render one screenshot.
// It is built once from configuration and never mutated.
type Layout struct {
	Width  int
	Height int

	TopColor         color.NRGBA
	BottomColor      color.NRGBA
	GradientExponent float64
	Glow             GlowOptions

	TextAreaRatio float64
	PaddingX      int
	BottomMargin  int
	DropOffset    int
	CornerRadius  int
	Shadow        ShadowOptions

	HeadlineTopRatio float64
	SubtitleGap      int
	Headline         TextStyle
	Subtitle         TextStyle

	// Badge is nil when no QR badge should be drawn.
	Badge *BadgeOptions
}

// TextAreaHeight is the height of the band reserved for headline and subtitle.
func (l Layout) TextAreaHeight() int {
	return int(float64(l.Height) * l.TextAreaRatio)
}

// ScreenshotArea returns the height of the region below the text area.
func (l Layout) ScreenshotArea() int {
	return l.Height - l.TextAreaHeight()
}

// Available returns the box the foreground must fit into.
func (l Layout) Available() (w, h int) {
	return l.Width - 2*l.PaddingX, l.ScreenshotArea() - l.BottomMargin
}

// HeadlineTop is the y coordinate of the top of the headline.
func (l Layout) HeadlineTop() int {
	return int(float64(l.Height) * l.HeadlineTopRatio)
}

// SubtitleTop is the y coordinate of the top of the subtitle.
func (l Layout) SubtitleTop() int {
	return l.HeadlineTop() + l.SubtitleGap
}
