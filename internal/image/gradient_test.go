package imagepkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGradient_TopRowIsTopColor(t *testing.T) {
	img := Gradient(12, 2796, deepBlue, aqua, 0.85)
	require.Equal(t, 12, img.Bounds().Dx())
	require.Equal(t, 2796, img.Bounds().Dy())

	for x := 0; x < 12; x++ {
		assert.Equal(t, deepBlue, img.NRGBAAt(x, 0))
	}
}

func TestGradient_Monotonic(t *testing.T) {
	h := 2796
	img := Gradient(3, h, deepBlue, aqua, 0.85)

	prev := img.NRGBAAt(0, 0)
	for y := 1; y < h; y++ {
		c := img.NRGBAAt(0, y)
		if c.G < prev.G {
			t.Fatalf("green reversed at row %d: %d < %d", y, c.G, prev.G)
		}
		assert.Equal(t, deepBlue.R, c.R)
		assert.Equal(t, deepBlue.B, c.B)
		prev = c
	}
	last := img.NRGBAAt(0, h-1)
	assert.InDelta(t, float64(aqua.G), float64(last.G), 1)
}

func TestGradient_DescendingChannel(t *testing.T) {
	top := aqua
	bottom := deepBlue
	img := Gradient(1, 300, top, bottom, 0.85)

	prev := img.NRGBAAt(0, 0).G
	for y := 1; y < 300; y++ {
		g := img.NRGBAAt(0, y).G
		require.LessOrEqual(t, g, prev, "row %d", y)
		prev = g
	}
}

func TestGradient_RowsAreUniform(t *testing.T) {
	img := Gradient(50, 40, deepBlue, aqua, 0.85)
	for y := 0; y < 40; y++ {
		first := img.NRGBAAt(0, y)
		for x := 1; x < 50; x++ {
			require.Equal(t, first, img.NRGBAAt(x, y))
		}
	}
}

func TestGlowLayer(t *testing.T) {
	opt := GlowOptions{CenterY: 100, MaxRadius: 600, Step: 2, MaxAlpha: 15}
	layer, pos := GlowLayer(645, opt)

	assert.Equal(t, 45, pos.X)
	assert.Equal(t, -200, pos.Y)
	assert.Equal(t, 1201, layer.Bounds().Dx())
	assert.Equal(t, 601, layer.Bounds().Dy())

	// centre: smallest ellipse r=2 -> int(15*(1-2/600)) = 14
	assert.Equal(t, uint8(14), layer.NRGBAAt(600, 300).A)
	// on the outermost ellipse the alpha has faded to zero
	assert.Equal(t, uint8(0), layer.NRGBAAt(0, 300).A)
	// corners of the bounding box are outside every ellipse
	assert.Equal(t, uint8(0), layer.NRGBAAt(0, 0).A)

	// alpha never increases moving away from the centre
	prev := layer.NRGBAAt(600, 300).A
	for x := 601; x < 1201; x++ {
		a := layer.NRGBAAt(x, 300).A
		require.LessOrEqual(t, a, prev)
		prev = a
	}
}

func TestApplyGlow_BrightensTopCentre(t *testing.T) {
	l := smallLayout()
	bg := Gradient(l.Width, l.Height, l.TopColor, l.BottomColor, l.GradientExponent)
	out := ApplyGlow(bg, l.Glow)

	centre := out.NRGBAAt(l.Width/2, l.Glow.CenterY)
	before := bg.NRGBAAt(l.Width/2, l.Glow.CenterY)
	assert.Greater(t, centre.R, before.R)
	assert.Equal(t, uint8(0xff), centre.A)

	assert.Equal(t, bg.NRGBAAt(0, l.Height-1), out.NRGBAAt(0, l.Height-1))
}
