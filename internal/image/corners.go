package imagepkg

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// RoundedMask returns an anti-aliased alpha mask of a w×h rounded
// rectangle. Inside is 0xff, the cut corners are 0. radius is clamped to
// half the shorter side.
func RoundedMask(w, h, radius int) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	if w <= 0 || h <= 0 {
		return mask
	}
	if radius > w/2 {
		radius = w / 2
	}
	if radius > h/2 {
		radius = h / 2
	}

	dc := gg.NewContext(w, h)
	dc.SetRGBA(0, 0, 0, 1)
	if radius > 0 {
		dc.DrawRoundedRectangle(0, 0, float64(w), float64(h), float64(radius))
	} else {
		dc.DrawRectangle(0, 0, float64(w), float64(h))
	}
	dc.Fill()

	shape := dc.Image().(*image.RGBA)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			mask.Pix[y*mask.Stride+x] = shape.Pix[y*shape.Stride+x*4+3]
		}
	}
	return mask
}

// RoundCorners returns a copy of img whose alpha is multiplied by a rounded
// rectangle mask.
func RoundCorners(img image.Image, radius int) *image.NRGBA {
	out := imaging.Clone(img)
	b := out.Bounds()
	mask := RoundedMask(b.Dx(), b.Dy(), radius)
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			m := mask.Pix[y*mask.Stride+x]
			if m == 0xff {
				continue
			}
			i := y*out.Stride + x*4 + 3
			out.Pix[i] = uint8(uint16(out.Pix[i]) * uint16(m) / 0xff)
		}
	}
	return out
}
