package imagepkg

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
)

// Gradient creates a vertical gradient from top to bottom. Each row is a
// single colour; the interpolation ratio is (y/height)^exponent, so an
// exponent below 1 moves away from the top colour quickly and then eases in.
func Gradient(width, height int, top, bottom color.NRGBA, exponent float64) *image.NRGBA {
	img := imaging.New(width, height, top)
	if width <= 0 || height <= 0 {
		return img
	}
	row := make([]uint8, width*4)
	for y := 0; y < height; y++ {
		c := gradientColor(y, height, top, bottom, exponent)
		for i := 0; i < len(row); i += 4 {
			row[i] = c.R
			row[i+1] = c.G
			row[i+2] = c.B
			row[i+3] = 0xff
		}
		copy(img.Pix[y*img.Stride:], row)
	}
	return img
}

func gradientColor(y, height int, top, bottom color.NRGBA, exponent float64) color.NRGBA {
	ratio := math.Pow(float64(y)/float64(height), exponent)
	return color.NRGBA{
		R: lerpChannel(top.R, bottom.R, ratio),
		G: lerpChannel(top.G, bottom.G, ratio),
		B: lerpChannel(top.B, bottom.B, ratio),
		A: 0xff,
	}
}

// lerpChannel truncates toward zero like an integer cast.
func lerpChannel(a, b uint8, t float64) uint8 {
	return uint8(int(float64(a) + (float64(b)-float64(a))*t))
}
