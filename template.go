// Package reportfig lays out report-style figure pages: a bordered frame, a
// grid-based title block populated with text, images and barcodes, a source
// footnote, and a draft watermark, rendered to PDF.
//
// The page is covered by a uniform grid of abstract units (a tenth of an
// inch by default). Margins and title block spans are expressed in those
// units, so a layout tuned for one page size carries over to another. The
// title block sits in the bottom-right corner inside the margins and is
// subdivided into cells addressed by row/column spans; five default cells
// (title band, sub-band, two bottom cells and a logo cell) apply when an
// element does not carry its own span.
//
// Example:
//
//	tpl, err := reportfig.New("analysis/figure_03.go",
//	    reportfig.WithContent(
//	        reportfig.Cell{Name: "title", Text: reportfig.TextList{
//	            {S: "Pump Station Overview", X: 0.5, Y: 0.5, Align: "C", Style: "B"},
//	        }},
//	        reportfig.Cell{Image: &reportfig.ImageSpec{Path: "img/site.png", Scale: 2, Expand: true}},
//	    ),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	var buf bytes.Buffer
//	if err := tpl.Render(&buf); err != nil {
//	    log.Fatal(err)
//	}
package reportfig

import (
	"io"
	"os"
	"path/filepath"

	"github.com/lvillar/reportfig/grid"
)

const (
	defaultPageWidth  = 8.5
	defaultPageHeight = 11.0
	defaultBase       = 10
	defaultDPI        = 300
)

// Template describes one report page. Construct it with New, then call
// Render or Blank; a Template carries configuration only and may be
// rendered any number of times.
type Template struct {
	script     string
	pageW      float64
	pageH      float64
	base       int
	dpi        int
	margins    grid.Margins
	tbRows     [3]int
	tbCols     [3]int
	content    []Cell
	draft      bool
	watermark  Watermark
	letterhead string
	sourceNote bool
}

// New creates a template for the named generating script. The script name
// is required: it appears in the page footnote so a printed figure can be
// traced back to the code that produced it.
func New(script string, opts ...Option) (*Template, error) {
	if script == "" {
		return nil, ErrNoScript
	}
	t := &Template{
		script:     script,
		pageW:      defaultPageWidth,
		pageH:      defaultPageHeight,
		base:       defaultBase,
		dpi:        defaultDPI,
		margins:    grid.DefaultMargins(),
		tbRows:     [3]int{8, 5, 3},
		tbCols:     [3]int{16, 16, 8},
		draft:      true,
		sourceNote: true,
	}
	for _, opt := range opts {
		opt(t)
	}
	if err := t.margins.Validate(); err != nil {
		return nil, newError("New", err)
	}
	return t, nil
}

// SourcePath returns the path shown in the source footnote: the script name
// joined onto the current working directory.
func (t *Template) SourcePath() string {
	wd, err := os.Getwd()
	if err != nil {
		return t.script
	}
	return filepath.Join(wd, t.script)
}

// Layout holds the fully resolved geometry of one page: the page grid, the
// frame rectangle, the title block sub-grid and the rectangle of every
// cell. It is computed in one pass, page grid first, then the title block
// region, then the cells, and is read-only afterwards.
type Layout struct {
	Grid  grid.Grid
	Frame grid.Rect
	Block grid.SubGrid
	Cells []PlacedCell
}

// Layout resolves the template's geometry without rendering anything.
func (t *Template) Layout() (*Layout, error) {
	g, err := grid.New(t.pageW, t.pageH, t.base)
	if err != nil {
		return nil, newError("Layout", err)
	}

	rows := t.tbRows[0] + t.tbRows[1] + t.tbRows[2]
	cols := t.tbCols[0] + t.tbCols[1] + t.tbCols[2]
	block, err := g.TitleBlock(t.margins, rows, cols)
	if err != nil {
		return nil, newError("Layout", err)
	}

	content := t.content
	if len(content) == 0 {
		content = make([]Cell, 5)
	}
	cells, err := resolveSpans(content, grid.DefaultSpans(t.tbRows, t.tbCols), block)
	if err != nil {
		return nil, newError("Layout", err)
	}

	return &Layout{
		Grid:  g,
		Frame: g.Frame(t.margins),
		Block: block,
		Cells: cells,
	}, nil
}

// Render draws the complete page to w: letterhead underlay, source
// footnote, cell contents, frame and cell borders, and the draft watermark
// on top when drafting is enabled.
func (t *Template) Render(w io.Writer) error {
	l, err := t.Layout()
	if err != nil {
		return err
	}
	if err := newRenderer(t, l).run(w, false); err != nil {
		return newError("Render", err)
	}
	return nil
}

// Blank draws the frame and the empty title block cells, each labelled with
// its quoted name, and omits the watermark and all content. Useful for
// previewing a layout before filling it in.
func (t *Template) Blank(w io.Writer) error {
	l, err := t.Layout()
	if err != nil {
		return err
	}
	if err := newRenderer(t, l).run(w, true); err != nil {
		return newError("Blank", err)
	}
	return nil
}
