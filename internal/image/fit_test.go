package imagepkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFitSize(t *testing.T) {
	tests := []struct {
		name           string
		srcW, srcH     int
		availW, availH int
		wantW, wantH   int
	}{
		{"tall phone capture", 1242, 2688, 1090, 1954, 902, 1954},
		{"wide image", 2000, 500, 1090, 1954, 1090, 272},
		{"exact fit", 1090, 1954, 1090, 1954, 1090, 1954},
		{"upscale small", 100, 200, 1090, 1954, 977, 1954},
		{"square", 500, 500, 300, 600, 300, 300},
		{"degenerate sliver", 10000, 1, 100, 100, 100, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := FitSize(tt.srcW, tt.srcH, tt.availW, tt.availH)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
		})
	}
}

func TestFitSize_AspectFitProperty(t *testing.T) {
	sizes := [][2]int{{1242, 2688}, {1170, 2532}, {2048, 2732}, {640, 1136}, {3000, 1000}, {7, 13}}
	boxes := [][2]int{{1090, 1954}, {300, 300}, {1, 50}, {999, 17}}
	for _, s := range sizes {
		for _, b := range boxes {
			w, h := FitSize(s[0], s[1], b[0], b[1])
			if w > b[0] || h > b[1] {
				t.Fatalf("%v in %v: got %dx%d, exceeds box", s, b, w, h)
			}
			if w != b[0] && h != b[1] {
				t.Fatalf("%v in %v: got %dx%d, neither side matches", s, b, w, h)
			}
		}
	}
}

func TestFitSize_Invalid(t *testing.T) {
	w, h := FitSize(0, 10, 10, 10)
	assert.Zero(t, w)
	assert.Zero(t, h)
}

func TestFloorDiv(t *testing.T) {
	assert.Equal(t, 2, floorDiv(5, 2))
	assert.Equal(t, -3, floorDiv(-5, 2))
	assert.Equal(t, -80, floorDiv(-160, 2))
	assert.Equal(t, 0, floorDiv(0, 7))
}
