// Package grid implements the layout arithmetic behind report page templates:
// a uniform page grid expressed in abstract units, margins, and the mapping
// from title-block row/column spans to normalized page rectangles.
//
// The package is pure geometry. It knows nothing about PDF output; callers
// convert the normalized rectangles it produces into whatever coordinate
// system their drawing backend uses. Rectangles are normalized to the page
// with the origin at the top-left corner, matching the top-down convention
// of the PDF backend.
package grid

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for layout construction failures.
var (
	ErrPageSize = errors.New("grid: page size and unit base must be positive")
	ErrMargins  = errors.New("grid: margins must contain four non-negative integers")
	ErrSpan     = errors.New("grid: span out of range")
	ErrFit      = errors.New("grid: title block does not fit inside the page grid")
)

// Rect is a rectangle in normalized page coordinates. X and Y locate the
// top-left corner; all four values are fractions of the page size.
type Rect struct {
	X, Y, W, H float64
}

// Margins holds the page margins in grid units.
type Margins struct {
	Left   int
	Right  int
	Top    int
	Bottom int
}

// DefaultMargins returns the standard four-unit margin on every side.
func DefaultMargins() Margins {
	return Margins{Left: 4, Right: 4, Top: 4, Bottom: 4}
}

// Validate reports ErrMargins if any margin is negative.
func (m Margins) Validate() error {
	if m.Left < 0 || m.Right < 0 || m.Top < 0 || m.Bottom < 0 {
		return ErrMargins
	}
	return nil
}

// ParseMargins converts a left, right, top, bottom tuple into Margins.
// The tuple must contain exactly four integer literals; a float literal
// such as 0.0 is rejected even when its value is integral.
func ParseMargins(vals []json.Number) (Margins, error) {
	if len(vals) != 4 {
		return Margins{}, fmt.Errorf("%w: got %d values", ErrMargins, len(vals))
	}
	var out [4]int
	for i, v := range vals {
		n, err := v.Int64()
		if err != nil {
			return Margins{}, fmt.Errorf("%w: %q is not an integer", ErrMargins, v.String())
		}
		if n < 0 {
			return Margins{}, fmt.Errorf("%w: %d is negative", ErrMargins, n)
		}
		out[i] = int(n)
	}
	return Margins{Left: out[0], Right: out[1], Top: out[2], Bottom: out[3]}, nil
}

// UnmarshalJSON accepts the JSON array form [left, right, top, bottom].
func (m *Margins) UnmarshalJSON(b []byte) error {
	var vals []json.Number
	if err := json.Unmarshal(b, &vals); err != nil {
		return fmt.Errorf("%w: %v", ErrMargins, err)
	}
	parsed, err := ParseMargins(vals)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Span addresses a rectangular run of title-block cells: rows R0 (inclusive)
// through R1 (exclusive) and columns C0 through C1, in grid units.
type Span struct {
	R0, R1, C0, C1 int
}

// UnmarshalJSON accepts the JSON array form [r0, r1, c0, c1].
func (s *Span) UnmarshalJSON(b []byte) error {
	var vals []json.Number
	if err := json.Unmarshal(b, &vals); err != nil {
		return fmt.Errorf("%w: %v", ErrSpan, err)
	}
	if len(vals) != 4 {
		return fmt.Errorf("%w: span must contain four values, got %d", ErrSpan, len(vals))
	}
	var out [4]int
	for i, v := range vals {
		n, err := v.Int64()
		if err != nil {
			return fmt.Errorf("%w: %q is not an integer", ErrSpan, v.String())
		}
		out[i] = int(n)
	}
	*s = Span{R0: out[0], R1: out[1], C0: out[2], C1: out[3]}
	return nil
}

// Bound selects a grid line counted back from the far edge of an axis.
// Edge resolves to the grid boundary itself and Inset(n) to total-n.
// This replaces the original template's "a zero offset means the edge"
// slicing convention with an explicit sentinel, so a zero margin cannot be
// confused with line index zero.
type Bound struct {
	inset int
	edge  bool
}

// Edge returns the bound that resolves to the grid boundary.
func Edge() Bound {
	return Bound{edge: true}
}

// Inset returns the bound n grid lines in from the far edge.
// Inset(0) is equivalent to Edge.
func Inset(n int) Bound {
	if n == 0 {
		return Edge()
	}
	return Bound{inset: n}
}

// Line resolves the bound against an axis with total lines.
func (b Bound) Line(total int) int {
	if b.edge {
		return total
	}
	return total - b.inset
}

// Grid is a uniform cell grid covering the whole page with no internal
// spacing. Row 0 is the top row.
type Grid struct {
	Rows int
	Cols int
}

// New builds the page grid for a page of the given physical size in inches
// at base grid units per inch. Rows and columns are truncated toward zero,
// so a 8.5x11in page at base 10 yields a 110x85 grid.
func New(widthIn, heightIn float64, base int) (Grid, error) {
	if widthIn <= 0 || heightIn <= 0 || base <= 0 {
		return Grid{}, ErrPageSize
	}
	return Grid{
		Rows: int(math.Floor(heightIn * float64(base))),
		Cols: int(math.Floor(widthIn * float64(base))),
	}, nil
}

// Frame returns the page rectangle inset by the margins, the border drawn
// around the usable area of the report page.
func (g Grid) Frame(m Margins) Rect {
	left := float64(m.Left) / float64(g.Cols)
	right := float64(m.Right) / float64(g.Cols)
	top := float64(m.Top) / float64(g.Rows)
	bottom := float64(m.Bottom) / float64(g.Rows)
	return Rect{
		X: left,
		Y: top,
		W: 1 - (left + right),
		H: 1 - (top + bottom),
	}
}

// SubGrid is a rectangular slice of the page grid subdivided into its own
// rows and columns, the coordinate space title-block spans are expressed in.
type SubGrid struct {
	Rows   int
	Cols   int
	Region Rect
}

// TitleBlock selects the sub-rectangle anchored at the bottom-right page
// corner, inset by the right and bottom margins, spanning rows x cols grid
// units, and subdivides it one unit per cell. Row and column ends resolve
// through Bound so that a zero margin lands on the page edge itself.
func (g Grid) TitleBlock(m Margins, rows, cols int) (SubGrid, error) {
	if err := m.Validate(); err != nil {
		return SubGrid{}, err
	}
	if rows <= 0 || cols <= 0 {
		return SubGrid{}, fmt.Errorf("%w: %dx%d units", ErrFit, rows, cols)
	}

	rowEnd := Inset(m.Bottom).Line(g.Rows)
	rowStart := Inset(m.Bottom + rows).Line(g.Rows)
	colEnd := Inset(m.Right).Line(g.Cols)
	colStart := Inset(m.Right + cols).Line(g.Cols)

	if rowStart < 0 || colStart < 0 {
		return SubGrid{}, fmt.Errorf("%w: %dx%d units inside %dx%d grid",
			ErrFit, rows, cols, g.Rows, g.Cols)
	}

	region := Rect{
		X: float64(colStart) / float64(g.Cols),
		Y: float64(rowStart) / float64(g.Rows),
		W: float64(colEnd-colStart) / float64(g.Cols),
		H: float64(rowEnd-rowStart) / float64(g.Rows),
	}
	return SubGrid{Rows: rows, Cols: cols, Region: region}, nil
}

// SpanRect maps a span to its normalized rectangle on the page.
func (s SubGrid) SpanRect(sp Span) (Rect, error) {
	if sp.R0 < 0 || sp.C0 < 0 || sp.R1 > s.Rows || sp.C1 > s.Cols ||
		sp.R0 >= sp.R1 || sp.C0 >= sp.C1 {
		return Rect{}, fmt.Errorf("%w: [%d:%d, %d:%d] in %dx%d block",
			ErrSpan, sp.R0, sp.R1, sp.C0, sp.C1, s.Rows, s.Cols)
	}
	return Rect{
		X: s.Region.X + float64(sp.C0)/float64(s.Cols)*s.Region.W,
		Y: s.Region.Y + float64(sp.R0)/float64(s.Rows)*s.Region.H,
		W: float64(sp.C1-sp.C0) / float64(s.Cols) * s.Region.W,
		H: float64(sp.R1-sp.R0) / float64(s.Rows) * s.Region.H,
	}, nil
}

// DefaultSpans returns the five standard title-block cells built from three
// row heights and three column widths: a full-width title band, a sub-band
// beneath it, two cells along the bottom edge, and a full-height cell on the
// right for a logo or seal.
func DefaultSpans(rows, cols [3]int) [5]Span {
	rSum := rows[0] + rows[1] + rows[2]
	cSum := cols[0] + cols[1] + cols[2]
	return [5]Span{
		{R0: 0, R1: rows[0], C0: 0, C1: cSum},
		{R0: rows[0], R1: rows[0] + rows[1], C0: 0, C1: cols[0] + cols[1]},
		{R0: rows[0] + rows[1], R1: rSum, C0: 0, C1: cols[0]},
		{R0: rows[0] + rows[1], R1: rSum, C0: cols[0], C1: cols[0] + cols[1]},
		{R0: rows[0], R1: rSum, C0: cols[0] + cols[1], C1: cSum},
	}
}
