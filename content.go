package reportfig

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/lvillar/reportfig/grid"
)

// RGBColor represents an RGB color value.
type RGBColor struct {
	R, G, B int
}

// Cell is one title block element. A cell without a span takes the
// positional default for its index; a cell without a name is labelled
// b_{index}. Text, image and barcode payloads may be combined freely, and
// cells are allowed to overlap.
type Cell struct {
	Name    string       `json:"name,omitempty"`
	Span    *grid.Span   `json:"span,omitempty"`
	Text    TextList     `json:"text,omitempty"`
	Image   *ImageSpec   `json:"image,omitempty"`
	Barcode *BarcodeSpec `json:"barcode,omitempty"`
}

// TextSpec is one text draw call anchored in the cell's own normalized
// coordinate space, x rightward and y upward from the bottom-left corner.
type TextSpec struct {
	S      string    `json:"s"`
	X      float64   `json:"x"`
	Y      float64   `json:"y"`
	Size   float64   `json:"size,omitempty"`   // points; default 10
	Style  string    `json:"style,omitempty"`  // "", "B", "I" or "BI"
	Align  string    `json:"align,omitempty"`  // "L", "C" or "R"; default "L"
	VAlign string    `json:"valign,omitempty"` // "T", "M" or "B"; default baseline
	Color  *RGBColor `json:"color,omitempty"`
}

// TextList holds the text entries of a cell. Its JSON form is either a
// single entry object or a list of entry objects; anything else is a
// content error.
type TextList []TextSpec

// UnmarshalJSON accepts a single object or a list of objects.
func (l *TextList) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 {
		return ErrContent
	}
	switch trimmed[0] {
	case '[':
		var specs []TextSpec
		if err := json.Unmarshal(trimmed, &specs); err != nil {
			return fmt.Errorf("%w: %v", ErrContent, err)
		}
		*l = specs
		return nil
	case '{':
		var spec TextSpec
		if err := json.Unmarshal(trimmed, &spec); err != nil {
			return fmt.Errorf("%w: %v", ErrContent, err)
		}
		*l = TextList{spec}
		return nil
	}
	return fmt.Errorf("%w: got %s", ErrContent, trimmed)
}

// ImageSpec places an image into a cell through the image fitter.
type ImageSpec struct {
	Path   string  `json:"path"`
	Scale  float64 `json:"scale,omitempty"` // default 1
	Expand bool    `json:"expand,omitempty"`
}

// scaleOrDefault returns the requested scale, defaulting to 1.
func (s *ImageSpec) scaleOrDefault() float64 {
	if s.Scale == 0 {
		return 1
	}
	return s.Scale
}

// BarcodeSpec renders a machine-readable code into a cell. Kind selects the
// symbology: "qr", "code128" or "pdf417".
type BarcodeSpec struct {
	Kind    string `json:"kind"`
	Content string `json:"content"`
}

// PlacedCell is a cell with its resolved label and page rectangle.
type PlacedCell struct {
	Cell  Cell
	Label string
	Rect  grid.Rect
}

// resolveSpans assigns each cell its span and label. An explicit span is
// used verbatim regardless of position; otherwise the positional default
// applies, and an element beyond the defaults without its own span is an
// error.
func resolveSpans(cells []Cell, defaults [5]grid.Span, block grid.SubGrid) ([]PlacedCell, error) {
	placed := make([]PlacedCell, 0, len(cells))
	for i, c := range cells {
		span := c.Span
		if span == nil {
			if i >= len(defaults) {
				return nil, fmt.Errorf("%w: element %d of %d defaults",
					ErrNoDefaultSpan, i, len(defaults))
			}
			s := defaults[i]
			span = &s
		}

		label := c.Name
		if label == "" {
			label = fmt.Sprintf("b_%d", i)
		}

		rect, err := block.SpanRect(*span)
		if err != nil {
			return nil, err
		}
		placed = append(placed, PlacedCell{Cell: c, Label: label, Rect: rect})
	}
	return placed, nil
}
