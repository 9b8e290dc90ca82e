// Package imagefit computes how a raster image is cropped, resized and
// centered to occupy a rectangular viewport at a requested zoom factor.
//
// The package implements the arithmetic only: it produces a fitted pixel
// buffer plus optional explicit view limits, and leaves drawing to the
// caller's backend. A scale above 1 zooms in (the source is cropped, and
// optionally expanded to fill the viewport); a scale of 1 or below fits the
// whole image and shrinks it in place, surrounded by blank margin.
package imagefit

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Sentinel errors returned by the fitting and loading operations.
var (
	ErrScale       = errors.New("imagefit: scale must be positive")
	ErrViewport    = errors.New("imagefit: viewport size must be positive")
	ErrFormat      = errors.New("imagefit: unsupported image format")
	ErrOrientation = errors.New("imagefit: invalid exif orientation value")
)

// Viewport is the target rectangle measured in device pixels, typically a
// physical size in inches multiplied by the output resolution in DPI.
type Viewport struct {
	Width  float64
	Height float64
}

// Limits are explicit axis view limits for a viewport that should show the
// fitted image centered with margin around it. Each pair is ordered from the
// axis start to the axis end; Y is reversed so that pixel row zero sits at
// the top of the viewport.
type Limits struct {
	X [2]float64
	Y [2]float64
}

// Result is the outcome of a fit: the resampled pixel buffer, the scale it
// was computed for and, for the fit/zoom-out path only, the view limits that
// center it. Limits is nil on the zoom-in path, where the crop itself
// already centers the content.
type Result struct {
	Image  *image.NRGBA
	Scale  float64
	Limits *Limits
}

// Extents calculates the symmetric view limits needed to see an image of the
// given pixel length centered at the desired scale. An image spanning
// [0, size] drawn inside limits (lower, upper) appears scaled by scale and
// centered:
//
//	|......____________......|
//	lower  0           size  upper
//
// The returned range satisfies upper-lower = size/scale; at scale 1 the
// limits are exactly (0, size). The caller must guarantee scale > 0.
func Extents(size, scale float64) (lower, upper float64) {
	l := (1 - scale) * size * (1 / scale) / 2
	return -l, size + l
}

// Fit crops and resizes src so it occupies the viewport at the requested
// scale. With scale > 1 the source is cropped to a centered window 1/scale
// of its size; expand widens the window to the viewport's aspect ratio and
// stretches the crop to fill the viewport exactly. With scale <= 1 the whole
// image is fitted to the viewport preserving its aspect ratio, shrunk by
// scale, and returned together with the view limits that center it.
//
// The source is normalized to NRGBA before any arithmetic. Fit never touches
// the original pixels.
func Fit(vp Viewport, src image.Image, scale float64, expand bool) (Result, error) {
	if scale <= 0 {
		return Result{}, fmt.Errorf("%w: %g", ErrScale, scale)
	}
	if vp.Width <= 0 || vp.Height <= 0 {
		return Result{}, fmt.Errorf("%w: %gx%g", ErrViewport, vp.Width, vp.Height)
	}

	img := imaging.Clone(src)
	wpx := float64(img.Bounds().Dx())
	hpx := float64(img.Bounds().Dy())
	width, height := vp.Width, vp.Height

	aspectIm := wpx / hpx
	aspectAx := width / height
	adjx := (wpx / scale) / 2
	adjy := (hpx / scale) / 2

	if scale > 1 {
		if expand && aspectIm < aspectAx {
			adjx = (width / height) * adjy
		}
		if expand && aspectIm > aspectAx {
			adjy = (height / width) * adjx
		}

		win := image.Rect(
			int(wpx/2-adjx),
			int(hpx/2-adjy),
			int(wpx/2+adjx),
			int(hpx/2+adjy),
		)
		if win.In(img.Bounds()) {
			img = imaging.Crop(img, win)
		} else {
			// A window wider than the source keeps its full size: the
			// available pixels sit centered on a transparent canvas
			// instead of being stretched edge to edge.
			crop := imaging.Crop(img, win)
			img = imaging.PasteCenter(imaging.New(win.Dx(), win.Dy(), color.Transparent), crop)
		}

		if expand {
			img = imaging.Resize(img, int(width), int(height), imaging.CatmullRom)
			return Result{Image: img, Scale: scale}, nil
		}

		// The aspect fit deliberately uses the pre-crop pixel size here,
		// matching the reference arithmetic.
		if width >= height {
			width = float64(int(wpx * (height / hpx)))
		} else {
			height = float64(int(hpx * (width / wpx)))
		}
		img = imaging.Resize(img, int(width), int(height), imaging.CatmullRom)
		return Result{Image: img, Scale: scale}, nil
	}

	if width >= height {
		width = float64(int(wpx * (height / hpx)))
	} else {
		height = float64(int(hpx * (width / wpx)))
	}
	// Resize treats a zero dimension as an aspect-preserving wildcard, so
	// an extreme shrink clamps to a single pixel instead.
	rw := int(width * scale)
	rh := int(height * scale)
	if rw < 1 {
		rw = 1
	}
	if rh < 1 {
		rh = 1
	}
	img = imaging.Resize(img, rw, rh, imaging.Lanczos)

	xl, xu := Extents(float64(img.Bounds().Dx()), scale)
	yl, yu := Extents(float64(img.Bounds().Dy()), scale)
	return Result{
		Image: img,
		Scale: scale,
		Limits: &Limits{
			X: [2]float64{xl, xu},
			Y: [2]float64{yu, yl},
		},
	}, nil
}

// Placement maps the fitted image onto a viewport rectangle expressed in
// document units. The image is fitted to the rectangle preserving its pixel
// aspect ratio and centered; on the fit/zoom-out path the view limits imply
// an additional shrink by the fit's scale, which is applied here so the
// image sits centered with blank margin around it.
func (r Result) Placement(x, y, w, h float64) (px, py, pw, ph float64) {
	iw := float64(r.Image.Bounds().Dx())
	ih := float64(r.Image.Bounds().Dy())

	pw, ph = w, w*ih/iw
	if ph > h {
		ph = h
		pw = h * iw / ih
	}
	if r.Limits != nil {
		pw *= r.Scale
		ph *= r.Scale
	}
	px = x + (w-pw)/2
	py = y + (h-ph)/2
	return px, py, pw, ph
}
