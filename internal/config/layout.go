package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	imagepkg "github.com/youruser/storeshots/internal/image"
)

// ParseHexColor parses "#RRGGBB" or "#RGB" (the leading # is optional)
// into an opaque colour.
func ParseHexColor(s string) (color.NRGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

func withAlpha(s string, alpha int) (color.NRGBA, error) {
	c, err := ParseHexColor(s)
	if err != nil {
		return c, err
	}
	if alpha < 0 || alpha > 255 {
		return c, fmt.Errorf("alpha %d out of range 0-255", alpha)
	}
	c.A = uint8(alpha)
	return c, nil
}

// Validate reports the first configuration problem found.
func (c *Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("canvas size must be positive, got %dx%d", c.Canvas.Width, c.Canvas.Height)
	}
	if c.Gradient.Exponent <= 0 {
		return fmt.Errorf("gradient exponent must be positive, got %v", c.Gradient.Exponent)
	}
	if c.Layout.TextAreaRatio < 0 || c.Layout.TextAreaRatio >= 1 {
		return fmt.Errorf("text_area_ratio must be in [0,1), got %v", c.Layout.TextAreaRatio)
	}
	if c.Glow.MaxAlpha < 0 || c.Glow.MaxAlpha > 255 {
		return fmt.Errorf("glow max_alpha %d out of range 0-255", c.Glow.MaxAlpha)
	}
	if c.Shadow.Blur < 0 {
		return fmt.Errorf("shadow blur must not be negative, got %d", c.Shadow.Blur)
	}
	if c.Text.Headline.Size <= 0 || c.Text.Subtitle.Size <= 0 {
		return fmt.Errorf("text sizes must be positive")
	}
	if c.Badge.Enabled {
		if c.Badge.Content == "" {
			return fmt.Errorf("badge is enabled but has no content")
		}
		if c.Badge.Size <= 0 {
			return fmt.Errorf("badge size must be positive, got %d", c.Badge.Size)
		}
	}
	if c.Paths.OutDir == "" {
		return fmt.Errorf("paths.out_dir is empty")
	}
	l, err := c.ImageLayout()
	if err != nil {
		return err
	}
	if w, h := l.Available(); w <= 0 || h <= 0 {
		return fmt.Errorf("screenshot area leaves no room for the capture: %dx%d after padding_x %d and bottom_margin %d",
			w, h, c.Layout.PaddingX, c.Layout.BottomMargin)
	}
	return nil
}

// ImageLayout converts the configuration into the composer's layout.
func (c *Config) ImageLayout() (imagepkg.Layout, error) {
	top, err := ParseHexColor(c.Colors.Top)
	if err != nil {
		return imagepkg.Layout{}, fmt.Errorf("colors.top: %w", err)
	}
	bottom, err := ParseHexColor(c.Colors.Bottom)
	if err != nil {
		return imagepkg.Layout{}, fmt.Errorf("colors.bottom: %w", err)
	}
	shadow, err := withAlpha(c.Shadow.Color, c.Shadow.Alpha)
	if err != nil {
		return imagepkg.Layout{}, fmt.Errorf("shadow: %w", err)
	}
	headline, err := c.Text.Headline.textStyle()
	if err != nil {
		return imagepkg.Layout{}, fmt.Errorf("text.headline: %w", err)
	}
	subtitle, err := c.Text.Subtitle.textStyle()
	if err != nil {
		return imagepkg.Layout{}, fmt.Errorf("text.subtitle: %w", err)
	}

	l := imagepkg.Layout{
		Width:            c.Canvas.Width,
		Height:           c.Canvas.Height,
		TopColor:         top,
		BottomColor:      bottom,
		GradientExponent: c.Gradient.Exponent,
		Glow: imagepkg.GlowOptions{
			CenterY:   c.Glow.CenterY,
			MaxRadius: c.Glow.MaxRadius,
			Step:      c.Glow.Step,
			MaxAlpha:  uint8(c.Glow.MaxAlpha),
		},
		TextAreaRatio: c.Layout.TextAreaRatio,
		PaddingX:      c.Layout.PaddingX,
		BottomMargin:  c.Layout.BottomMargin,
		DropOffset:    c.Layout.DropOffset,
		CornerRadius:  c.Layout.CornerRadius,
		Shadow: imagepkg.ShadowOptions{
			OffsetX: c.Shadow.OffsetX,
			OffsetY: c.Shadow.OffsetY,
			Blur:    c.Shadow.Blur,
			Color:   shadow,
		},
		HeadlineTopRatio: c.Text.HeadlineTopRatio,
		SubtitleGap:      c.Text.SubtitleGap,
		Headline:         headline,
		Subtitle:         subtitle,
	}
	if c.Badge.Enabled {
		l.Badge = &imagepkg.BadgeOptions{
			Content: c.Badge.Content,
			Size:    c.Badge.Size,
			Margin:  c.Badge.Margin,
		}
	}
	return l, nil
}

func (s LineStyle) textStyle() (imagepkg.TextStyle, error) {
	fill, err := withAlpha(s.Color, s.Alpha)
	if err != nil {
		return imagepkg.TextStyle{}, err
	}
	shadow, err := withAlpha(s.ShadowColor, s.ShadowAlpha)
	if err != nil {
		return imagepkg.TextStyle{}, fmt.Errorf("shadow: %w", err)
	}
	return imagepkg.TextStyle{
		Size:         s.Size,
		Fonts:        s.Fonts,
		Color:        fill,
		ShadowColor:  shadow,
		ShadowOffset: s.ShadowOffset,
	}, nil
}
