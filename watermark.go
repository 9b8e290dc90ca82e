package reportfig

// Watermark defines the text stamped over a page when drafting is enabled.
// Zero-valued fields fall back to the draft defaults: "DRAFT", 24pt bold,
// red, fully opaque, horizontal.
type Watermark struct {
	Text     string   `json:"text,omitempty"`
	FontSize float64  `json:"fontSize,omitempty"`
	Color    RGBColor `json:"color,omitempty"`
	Opacity  float64  `json:"opacity,omitempty"`
	Angle    float64  `json:"angle,omitempty"`
}

func (w Watermark) withDefaults() Watermark {
	if w.Text == "" {
		w.Text = "DRAFT"
	}
	if w.FontSize == 0 {
		w.FontSize = 24
	}
	if w.Color == (RGBColor{}) {
		w.Color = RGBColor{R: 255}
	}
	if w.Opacity == 0 {
		w.Opacity = 1
	}
	return w
}

// drawWatermark stamps the watermark half an inch in from the left edge,
// on the top margin line. It is drawn last so it sits over the content.
func (r *renderer) drawWatermark() {
	wm := r.t.watermark.withDefaults()
	pdf := r.pdf

	pdf.SetFont(baseFont, "B", wm.FontSize)
	pdf.SetTextColor(wm.Color.R, wm.Color.G, wm.Color.B)
	if wm.Opacity < 1 {
		pdf.SetAlpha(wm.Opacity, "Normal")
		defer pdf.SetAlpha(1, "Normal")
	}

	x := 0.5
	y := float64(r.t.margins.Top)/float64(r.t.base) + wm.FontSize/72/3
	if wm.Angle != 0 {
		pdf.TransformBegin()
		pdf.TransformRotate(wm.Angle, x, y)
		defer pdf.TransformEnd()
	}
	pdf.Text(x, y, wm.Text)
}
