package imagepkg

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// GlowLayer renders concentric white ellipses (horizontal radius r, vertical
// radius r/2) for r = MaxRadius, MaxRadius-Step, ..., Step. Smaller ellipses
// are drawn last and replace larger ones, so every pixel carries the alpha of
// the smallest ellipse containing it. The returned layer is positioned at the
// returned point in canvas coordinates.
func GlowLayer(centerX int, opt GlowOptions) (*image.NRGBA, image.Point) {
	if opt.MaxRadius <= 0 || opt.Step <= 0 {
		return image.NewNRGBA(image.Rect(0, 0, 0, 0)), image.Point{}
	}
	half := opt.MaxRadius / 2
	w, h := 2*opt.MaxRadius+1, 2*half+1
	layer := image.NewNRGBA(image.Rect(0, 0, w, h))

	for y := 0; y < h; y++ {
		dy := float64(y - half)
		for x := 0; x < w; x++ {
			dx := float64(x - opt.MaxRadius)
			// (dx/r)^2 + (dy/(r/2))^2 <= 1  <=>  sqrt(dx^2 + 4dy^2) <= r
			d := math.Sqrt(dx*dx + 4*dy*dy)
			r := int(math.Ceil(d/float64(opt.Step))) * opt.Step
			if r < opt.Step {
				r = opt.Step
			}
			if r > opt.MaxRadius {
				continue
			}
			a := int(float64(opt.MaxAlpha) * (1 - float64(r)/float64(opt.MaxRadius)))
			if a <= 0 {
				continue
			}
			i := layer.PixOffset(x, y)
			layer.Pix[i] = 0xff
			layer.Pix[i+1] = 0xff
			layer.Pix[i+2] = 0xff
			layer.Pix[i+3] = uint8(a)
		}
	}
	return layer, image.Pt(centerX-opt.MaxRadius, opt.CenterY-half)
}

// ApplyGlow alpha-blends the glow over bg, centred horizontally.
func ApplyGlow(bg *image.NRGBA, opt GlowOptions) *image.NRGBA {
	layer, pos := GlowLayer(bg.Bounds().Dx()/2, opt)
	if layer.Bounds().Empty() {
		return bg
	}
	return imaging.Overlay(bg, layer, pos, 1.0)
}
