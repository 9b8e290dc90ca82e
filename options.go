package reportfig

import "github.com/lvillar/reportfig/grid"

// Option is a functional option for configuring a new Template via New.
type Option func(*Template)

// WithPageSize sets the page size in inches. The default is US Letter in
// portrait, 8.5 by 11 inches.
func WithPageSize(width, height float64) Option {
	return func(t *Template) {
		t.pageW = width
		t.pageH = height
	}
}

// WithBase sets the number of grid units per inch used for the page grid,
// margins and title block spans. The default of 10 makes one grid unit a
// tenth of an inch.
func WithBase(base int) Option {
	return func(t *Template) {
		t.base = base
	}
}

// WithDPI sets the output resolution used to size image viewports, in dots
// per inch. The default is 300.
func WithDPI(dpi int) Option {
	return func(t *Template) {
		t.dpi = dpi
	}
}

// WithMargins sets the page margins in grid units. The default is four
// units on every side.
func WithMargins(m grid.Margins) Option {
	return func(t *Template) {
		t.margins = m
	}
}

// WithTitleBlockRows sets the three row heights of the title block in grid
// units, top to bottom. The default is 8, 5, 3.
func WithTitleBlockRows(a, b, c int) Option {
	return func(t *Template) {
		t.tbRows = [3]int{a, b, c}
	}
}

// WithTitleBlockCols sets the three column widths of the title block in
// grid units, left to right. The default is 16, 16, 8.
func WithTitleBlockCols(a, b, c int) Option {
	return func(t *Template) {
		t.tbCols = [3]int{a, b, c}
	}
}

// WithContent sets the title block elements. Without content the template
// renders the five default cells empty.
func WithContent(cells ...Cell) Option {
	return func(t *Template) {
		t.content = cells
	}
}

// WithDraft toggles the draft watermark. Drafting is on by default.
func WithDraft(draft bool) Option {
	return func(t *Template) {
		t.draft = draft
	}
}

// WithWatermark overrides the draft watermark appearance. Zero-valued
// fields keep their defaults.
func WithWatermark(w Watermark) Option {
	return func(t *Template) {
		t.watermark = w
	}
}

// WithLetterhead underlays page 1 of an existing PDF beneath the template,
// typically a company letterhead or a preprinted form.
func WithLetterhead(path string) Option {
	return func(t *Template) {
		t.letterhead = path
	}
}

// WithSourceNote toggles the "Source:" footnote naming the generating
// script. The footnote is on by default.
func WithSourceNote(show bool) Option {
	return func(t *Template) {
		t.sourceNote = show
	}
}
