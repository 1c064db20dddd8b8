package imagepkg

import (
	"image"

	"github.com/disintegration/imaging"
)

// ShadowPad is the transparent margin DropShadow adds on every side.
func ShadowPad(opt ShadowOptions) int {
	return opt.Blur*2 + abs(opt.OffsetX) + abs(opt.OffsetY)
}

// DropShadow renders img on a padded transparent canvas with a blurred,
// offset silhouette of its alpha channel behind it. The sharp image sits at
// (pad, pad) of the result.
func DropShadow(img *image.NRGBA, opt ShadowOptions) (*image.NRGBA, int) {
	pad := ShadowPad(opt)
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	shadow := image.NewNRGBA(image.Rect(0, 0, w+pad*2, h+pad*2))

	ox, oy := pad+opt.OffsetX, pad+opt.OffsetY
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			a := img.Pix[y*img.Stride+x*4+3]
			if a == 0 {
				continue
			}
			i := shadow.PixOffset(ox+x, oy+y)
			shadow.Pix[i] = opt.Color.R
			shadow.Pix[i+1] = opt.Color.G
			shadow.Pix[i+2] = opt.Color.B
			shadow.Pix[i+3] = uint8(uint16(a) * uint16(opt.Color.A) / 0xff)
		}
	}
	if opt.Blur > 0 {
		shadow = imaging.Blur(shadow, float64(opt.Blur))
	}
	return imaging.Overlay(shadow, img, image.Pt(pad, pad), 1.0), pad
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
