package imagefit

import (
	"errors"
	"image"
	"image/color"
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// testImage returns a w x h NRGBA image filled with white.
func testImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{255, 255, 255, 255})
		}
	}
	return img
}

func TestExtents(t *testing.T) {
	cases := []struct {
		name         string
		size, scale  float64
		lower, upper float64
	}{
		{"half scale", 100, 0.5, -50, 150},
		{"identity", 100, 1, 0, 100},
		{"zoom", 20, 1.5, 10.0 / 3, 20 - 10.0/3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lower, upper := Extents(tc.size, tc.scale)
			if !almostEqual(lower, tc.lower) || !almostEqual(upper, tc.upper) {
				t.Fatalf("Extents(%g, %g) = (%g, %g), want (%g, %g)",
					tc.size, tc.scale, lower, upper, tc.lower, tc.upper)
			}
		})
	}
}

func TestExtentsRangeInvariant(t *testing.T) {
	// upper - lower must equal size/scale for any positive inputs.
	sizes := []float64{1, 20, 100, 3000}
	scales := []float64{0.1, 0.5, 1, 1.5, 2, 10}
	for _, size := range sizes {
		for _, scale := range scales {
			lower, upper := Extents(size, scale)
			if got := upper - lower; !almostEqual(got, size/scale) {
				t.Errorf("Extents(%g, %g): range = %g, want %g", size, scale, got, size/scale)
			}
		}
	}
}

func TestFitRejectsBadScale(t *testing.T) {
	vp := Viewport{Width: 300, Height: 300}
	img := testImage(10, 10)
	for _, scale := range []float64{0, -1} {
		if _, err := Fit(vp, img, scale, false); !errors.Is(err, ErrScale) {
			t.Errorf("scale %g: expected ErrScale, got %v", scale, err)
		}
	}
}

func TestFitRejectsBadViewport(t *testing.T) {
	img := testImage(10, 10)
	if _, err := Fit(Viewport{Width: 0, Height: 300}, img, 1, false); !errors.Is(err, ErrViewport) {
		t.Fatalf("expected ErrViewport, got %v", err)
	}
}

func TestFitIdentityScaleMatchingAspect(t *testing.T) {
	// An image fitted at scale 1 into a viewport of its own aspect ratio
	// keeps that aspect ratio exactly.
	vp := Viewport{Width: 600, Height: 300}
	img := testImage(1200, 600)

	res, err := Fit(vp, img, 1, false)
	if err != nil {
		t.Fatalf("Fit failed: %v", err)
	}
	b := res.Image.Bounds()
	if b.Dx() != 2*b.Dy() {
		t.Errorf("aspect ratio distorted: %dx%d", b.Dx(), b.Dy())
	}
	if res.Limits == nil {
		t.Error("expected explicit view limits on the fit path")
	}
}

func TestFitPathSetsCenteredLimits(t *testing.T) {
	vp := Viewport{Width: 300, Height: 300}
	img := testImage(400, 400)

	res, err := Fit(vp, img, 0.5, false)
	if err != nil {
		t.Fatalf("Fit failed: %v", err)
	}
	// Fit by height (300), then shrink by 0.5.
	b := res.Image.Bounds()
	if b.Dx() != 150 || b.Dy() != 150 {
		t.Fatalf("expected 150x150 result, got %dx%d", b.Dx(), b.Dy())
	}

	wantLower, wantUpper := Extents(150, 0.5)
	if !almostEqual(res.Limits.X[0], wantLower) || !almostEqual(res.Limits.X[1], wantUpper) {
		t.Errorf("x limits = %v, want (%g, %g)", res.Limits.X, wantLower, wantUpper)
	}
	// Y limits are reversed: pixel row zero at the top.
	if !almostEqual(res.Limits.Y[0], wantUpper) || !almostEqual(res.Limits.Y[1], wantLower) {
		t.Errorf("y limits = %v, want (%g, %g)", res.Limits.Y, wantUpper, wantLower)
	}
}

func TestFitZoomExpandFillsViewport(t *testing.T) {
	vp := Viewport{Width: 300, Height: 200}
	img := testImage(800, 600)

	res, err := Fit(vp, img, 2, true)
	if err != nil {
		t.Fatalf("Fit failed: %v", err)
	}
	b := res.Image.Bounds()
	if b.Dx() != 300 || b.Dy() != 200 {
		t.Fatalf("expand result %dx%d, want viewport size 300x200", b.Dx(), b.Dy())
	}
	if res.Limits != nil {
		t.Error("zoom path must not set view limits")
	}
}

func TestFitZoomCropsBeforeResize(t *testing.T) {
	vp := Viewport{Width: 400, Height: 400}
	img := testImage(800, 600)

	res, err := Fit(vp, img, 2, false)
	if err != nil {
		t.Fatalf("Fit failed: %v", err)
	}
	// The centered crop window is 400x300; the aspect fit then uses the
	// pre-crop size: width = 800*(400/600) = 533 at viewport height 400.
	b := res.Image.Bounds()
	if b.Dx() != 533 || b.Dy() != 400 {
		t.Fatalf("zoom result %dx%d, want 533x400", b.Dx(), b.Dy())
	}
	if res.Limits != nil {
		t.Error("non-expand zoom must leave view limits unset")
	}
}

func TestFitExpandPadsWindowPastBounds(t *testing.T) {
	// A wide viewport at scale 2 widens the 10x10 source's crop window to
	// 50x5, far past the source bounds. The spare window area must come
	// out transparent with the source pixels centered, not stretched
	// edge to edge.
	vp := Viewport{Width: 100, Height: 10}
	img := testImage(10, 10)

	res, err := Fit(vp, img, 2, true)
	if err != nil {
		t.Fatalf("Fit failed: %v", err)
	}
	b := res.Image.Bounds()
	if b.Dx() != 100 || b.Dy() != 10 {
		t.Fatalf("expand result %dx%d, want viewport size 100x10", b.Dx(), b.Dy())
	}
	if _, _, _, a := res.Image.At(0, 5).RGBA(); a != 0 {
		t.Errorf("left edge alpha = %d, want transparent padding", a)
	}
	if _, _, _, a := res.Image.At(50, 5).RGBA(); a == 0 {
		t.Error("center pixel is transparent, source content lost")
	}
}

func TestFitExtremeShrinkStaysNonZero(t *testing.T) {
	// 50x50 into 100x100 at scale 0.005 asks for a 0.5px result, which
	// truncates to zero and would flip Resize into aspect-preserving
	// mode. The fit clamps to a single pixel instead.
	vp := Viewport{Width: 100, Height: 100}
	img := testImage(50, 50)

	res, err := Fit(vp, img, 0.005, false)
	if err != nil {
		t.Fatalf("Fit failed: %v", err)
	}
	b := res.Image.Bounds()
	if b.Dx() != 1 || b.Dy() != 1 {
		t.Fatalf("shrink result %dx%d, want 1x1", b.Dx(), b.Dy())
	}
	if res.Limits == nil {
		t.Fatal("fit path must set view limits")
	}
}

func TestFitNeverCropsAtOrBelowIdentity(t *testing.T) {
	// scale <= 1 always fits the whole image: the output aspect ratio
	// matches the source, which a crop would have broken.
	vp := Viewport{Width: 250, Height: 300}
	img := testImage(500, 1000)

	for _, scale := range []float64{1, 0.75, 0.25} {
		res, err := Fit(vp, img, scale, false)
		if err != nil {
			t.Fatalf("Fit(scale=%g) failed: %v", scale, err)
		}
		b := res.Image.Bounds()
		if got := float64(b.Dy()) / float64(b.Dx()); math.Abs(got-2) > 0.05 {
			t.Errorf("scale %g: aspect %g, want 2", scale, got)
		}
	}
}

func TestPlacementCentersAndShrinks(t *testing.T) {
	vp := Viewport{Width: 300, Height: 300}
	img := testImage(400, 400)

	res, err := Fit(vp, img, 0.5, false)
	if err != nil {
		t.Fatalf("Fit failed: %v", err)
	}
	px, py, pw, ph := res.Placement(1, 2, 4, 4)
	if !almostEqual(pw, 2) || !almostEqual(ph, 2) {
		t.Fatalf("placement size %gx%g, want 2x2", pw, ph)
	}
	if !almostEqual(px, 2) || !almostEqual(py, 3) {
		t.Fatalf("placement origin (%g, %g), want (2, 3)", px, py)
	}
}

func TestPlacementExpandFills(t *testing.T) {
	vp := Viewport{Width: 300, Height: 200}
	img := testImage(900, 300)

	res, err := Fit(vp, img, 3, true)
	if err != nil {
		t.Fatalf("Fit failed: %v", err)
	}
	px, py, pw, ph := res.Placement(0, 0, 6, 4)
	if !almostEqual(pw, 6) || !almostEqual(ph, 4) || !almostEqual(px, 0) || !almostEqual(py, 0) {
		t.Fatalf("expand placement = (%g, %g, %g, %g), want (0, 0, 6, 4)", px, py, pw, ph)
	}
}
