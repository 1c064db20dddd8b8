package imagepkg

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// MeasureText returns the ink width of s and the horizontal offset of the
// ink from the pen origin.
func MeasureText(face font.Face, s string) (width, offset int) {
	bounds, _ := font.BoundString(face, s)
	return (bounds.Max.X - bounds.Min.X).Ceil(), bounds.Min.X.Floor()
}

// CenteredX returns the left edge of s centred on a canvas of canvasWidth,
// along with its measured width.
func CenteredX(face font.Face, s string, canvasWidth int) (x, width int) {
	width, _ = MeasureText(face, s)
	return floorDiv(canvasWidth-width, 2), width
}

// DrawCentered draws s horizontally centred with its ascender line at top.
func DrawCentered(dst draw.Image, face font.Face, s string, top int, fill color.Color) {
	x, _ := CenteredX(face, s, dst.Bounds().Dx())
	_, offset := MeasureText(face, s)
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(fill),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(x - offset), Y: fixed.I(top) + face.Metrics().Ascent},
	}
	d.DrawString(s)
}

// DrawTextLine draws s with its soft shadow first and the solid copy on top.
func DrawTextLine(dst draw.Image, face font.Face, s string, top int, style TextStyle) {
	if s == "" {
		return
	}
	DrawCentered(dst, face, s, top+style.ShadowOffset, style.ShadowColor)
	DrawCentered(dst, face, s, top, style.Color)
}
