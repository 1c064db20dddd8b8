package imagepkg

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

var (
	deepBlue = color.NRGBA{R: 0x00, G: 0x66, B: 0xcc, A: 0xff}
	aqua     = color.NRGBA{R: 0x00, G: 0xcc, B: 0xcc, A: 0xff}
)

// smallLayout is a scaled-down version of the store layout so tests stay fast.
func smallLayout() Layout {
	return Layout{
		Width:            200,
		Height:           400,
		TopColor:         deepBlue,
		BottomColor:      aqua,
		GradientExponent: 0.85,
		Glow:             GlowOptions{CenterY: 20, MaxRadius: 80, Step: 2, MaxAlpha: 15},
		TextAreaRatio:    0.28,
		PaddingX:         16,
		BottomMargin:     10,
		DropOffset:       4,
		CornerRadius:     8,
		Shadow:           ShadowOptions{OffsetY: 3, Blur: 4, Color: color.NRGBA{A: 120}},
		HeadlineTopRatio: 0.08,
		SubtitleGap:      24,
		Headline: TextStyle{
			Size:         18,
			Color:        color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
			ShadowColor:  color.NRGBA{A: 50},
			ShadowOffset: 2,
		},
		Subtitle: TextStyle{
			Size:         10,
			Color:        color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 210},
			ShadowColor:  color.NRGBA{A: 40},
			ShadowOffset: 1,
		},
	}
}

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	return imaging.New(w, h, c)
}
