package reportfig

import (
	"fmt"
	"image"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/boombuler/barcode/qr"
	"github.com/ruudk/golang-pdf417"
)

const (
	pdf417Columns  = 4
	pdf417Security = 2
)

// encode renders the barcode as a raster sized for the given cell pixel
// box. QR codes scale to the shorter side to stay square; code128 fills
// the box; PDF417 keeps its native module raster and is stretched by the
// drawing layer.
func (s *BarcodeSpec) encode(wpx, hpx int) (image.Image, error) {
	if s.Content == "" {
		return nil, fmt.Errorf("%w: empty content", ErrBarcodeKind)
	}
	switch s.Kind {
	case "qr":
		code, err := qr.Encode(s.Content, qr.M, qr.Auto)
		if err != nil {
			return nil, fmt.Errorf("reportfig: encoding qr: %w", err)
		}
		side := wpx
		if hpx < side {
			side = hpx
		}
		scaled, err := barcode.Scale(code, side, side)
		if err != nil {
			return nil, fmt.Errorf("reportfig: scaling qr: %w", err)
		}
		return scaled, nil
	case "code128":
		code, err := code128.Encode(s.Content)
		if err != nil {
			return nil, fmt.Errorf("reportfig: encoding code128: %w", err)
		}
		scaled, err := barcode.Scale(code, wpx, hpx)
		if err != nil {
			return nil, fmt.Errorf("reportfig: scaling code128: %w", err)
		}
		return scaled, nil
	case "pdf417":
		return pdf417.Encode(s.Content, pdf417Columns, pdf417Security), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrBarcodeKind, s.Kind)
	}
}
