package reportfig

import (
	"bytes"
	"fmt"
	"image/png"
	"io"
	"math"

	"github.com/jung-kurt/gofpdf"

	"github.com/lvillar/reportfig/grid"
	"github.com/lvillar/reportfig/imagefit"
)

const baseFont = "Helvetica"

type renderer struct {
	t   *Template
	l   *Layout
	pdf *gofpdf.Fpdf
}

func newRenderer(t *Template, l *Layout) *renderer {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "in",
		Size:           gofpdf.SizeType{Wd: t.pageW, Ht: t.pageH},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)
	return &renderer{t: t, l: l, pdf: pdf}
}

func (r *renderer) run(w io.Writer, blank bool) error {
	r.pdf.AddPage()
	if r.t.letterhead != "" {
		r.drawLetterhead()
	}
	if blank {
		r.drawLabels()
	} else {
		if r.t.sourceNote {
			r.drawSourceNote()
		}
		if err := r.populate(); err != nil {
			return err
		}
	}
	r.drawBorders()
	if !blank && r.t.draft {
		r.drawWatermark()
	}
	if r.pdf.Err() {
		return r.pdf.Error()
	}
	return r.pdf.Output(w)
}

// rectIn converts a page-normalized rectangle to inches.
func (r *renderer) rectIn(rc grid.Rect) (x, y, w, h float64) {
	return rc.X * r.t.pageW, rc.Y * r.t.pageH, rc.W * r.t.pageW, rc.H * r.t.pageH
}

func (r *renderer) drawBorders() {
	r.pdf.SetDrawColor(0, 0, 0)
	r.pdf.SetLineWidth(0.01)
	x, y, w, h := r.rectIn(r.l.Frame)
	r.pdf.Rect(x, y, w, h, "D")
	for _, c := range r.l.Cells {
		x, y, w, h := r.rectIn(c.Rect)
		r.pdf.Rect(x, y, w, h, "D")
	}
}

func (r *renderer) drawLabels() {
	const size = 12.0
	r.pdf.SetFont(baseFont, "", size)
	r.pdf.SetTextColor(0, 0, 0)
	for _, c := range r.l.Cells {
		x, y, w, h := r.rectIn(c.Rect)
		label := `"` + c.Label + `"`
		tw := r.pdf.GetStringWidth(label)
		r.pdf.Text(x+(w-tw)/2, y+h/2+size/72/3, label)
	}
}

func (r *renderer) drawSourceNote() {
	const size = 5.0
	x := float64(r.t.margins.Left) / float64(r.t.base)
	y := r.t.pageH - math.Abs(float64(r.t.margins.Bottom)-1.5)/float64(r.t.base)
	r.pdf.SetFont(baseFont, "", size)
	r.pdf.SetTextColor(0, 0, 0)
	r.pdf.Text(x, y+size/72/3, "Source:   "+r.t.SourcePath())
}

func (r *renderer) populate() error {
	for i, c := range r.l.Cells {
		for _, ts := range c.Cell.Text {
			r.drawText(c.Rect, ts)
		}
		if c.Cell.Image != nil {
			if err := r.drawImage(i, c); err != nil {
				return err
			}
		}
		if c.Cell.Barcode != nil {
			if err := r.drawBarcode(i, c); err != nil {
				return err
			}
		}
	}
	return nil
}

// drawText anchors a string inside a cell. Coordinates in the spec are
// normalized to the cell, x rightward and y upward from the bottom-left
// corner.
func (r *renderer) drawText(rc grid.Rect, ts TextSpec) {
	size := ts.Size
	if size == 0 {
		size = 10
	}
	r.pdf.SetFont(baseFont, ts.Style, size)
	if ts.Color != nil {
		r.pdf.SetTextColor(ts.Color.R, ts.Color.G, ts.Color.B)
	} else {
		r.pdf.SetTextColor(0, 0, 0)
	}

	x, y, w, h := r.rectIn(rc)
	px := x + ts.X*w
	py := y + (1-ts.Y)*h

	tw := r.pdf.GetStringWidth(ts.S)
	switch ts.Align {
	case "C":
		px -= tw / 2
	case "R":
		px -= tw
	}
	em := size / 72
	switch ts.VAlign {
	case "T":
		py += em
	case "M":
		py += em / 3
	}
	r.pdf.Text(px, py, ts.S)
}

func (r *renderer) drawImage(idx int, c PlacedCell) error {
	spec := c.Cell.Image
	src, err := imagefit.Load(spec.Path)
	if err != nil {
		return err
	}

	x, y, w, h := r.rectIn(c.Rect)
	vp := imagefit.Viewport{
		Width:  w * float64(r.t.dpi),
		Height: h * float64(r.t.dpi),
	}
	res, err := imagefit.Fit(vp, src, spec.scaleOrDefault(), spec.Expand)
	if err != nil {
		return err
	}
	px, py, pw, ph := res.Placement(x, y, w, h)

	var buf bytes.Buffer
	if err := png.Encode(&buf, res.Image); err != nil {
		return fmt.Errorf("reportfig: encoding %s: %w", spec.Path, err)
	}
	name := fmt.Sprintf("img_%s_%d", c.Label, idx)
	opt := gofpdf.ImageOptions{ImageType: "PNG"}
	r.pdf.RegisterImageOptionsReader(name, opt, &buf)
	r.pdf.ImageOptions(name, px, py, pw, ph, false, opt, 0, "")
	return nil
}

func (r *renderer) drawBarcode(idx int, c PlacedCell) error {
	spec := c.Cell.Barcode
	x, y, w, h := r.rectIn(c.Rect)
	img, err := spec.encode(int(w*float64(r.t.dpi)), int(h*float64(r.t.dpi)))
	if err != nil {
		return err
	}

	// Center at the code's natural aspect so modules stay square.
	iw := float64(img.Bounds().Dx())
	ih := float64(img.Bounds().Dy())
	pw, ph := w, w*ih/iw
	if ph > h {
		pw, ph = h*iw/ih, h
	}
	px := x + (w-pw)/2
	py := y + (h-ph)/2

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("reportfig: encoding %s barcode: %w", spec.Kind, err)
	}
	name := fmt.Sprintf("bc_%s_%d", c.Label, idx)
	opt := gofpdf.ImageOptions{ImageType: "PNG"}
	r.pdf.RegisterImageOptionsReader(name, opt, &buf)
	r.pdf.ImageOptions(name, px, py, pw, ph, false, opt, 0, "")
	return nil
}
