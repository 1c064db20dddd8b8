package imagepkg

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	qrcode "github.com/skip2/go-qrcode"
)

// RenderBadge returns a square QR code of opt.Size pixels encoding the
// store link, on a white rounded tile.
func RenderBadge(opt BadgeOptions) (*image.NRGBA, error) {
	if opt.Content == "" {
		return nil, fmt.Errorf("badge content is empty")
	}
	if opt.Size <= 0 {
		return nil, fmt.Errorf("badge size must be positive, got %d", opt.Size)
	}
	q, err := qrcode.New(opt.Content, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	q.BackgroundColor = color.White
	q.ForegroundColor = color.Black
	img := q.Image(opt.Size)
	// qrcode rounds to whole modules, so the image may be off by a few px
	if b := img.Bounds(); b.Dx() != opt.Size || b.Dy() != opt.Size {
		img = imaging.Resize(img, opt.Size, opt.Size, imaging.NearestNeighbor)
	}
	return RoundCorners(img, opt.Size/12), nil
}

// BadgePosition is the top-left corner of the badge: top-right of the canvas,
// Margin pixels in from both edges.
func BadgePosition(canvasWidth int, opt BadgeOptions) image.Point {
	return image.Pt(canvasWidth-opt.Size-opt.Margin, opt.Margin)
}
