package reportfig

import (
	"encoding/json"
	"fmt"

	"github.com/lvillar/reportfig/grid"
)

// Document is the serialized form of a template: the JSON counterpart of
// the Option surface, so page layouts can live in files next to the
// figures they describe.
//
// Example JSON:
//
//	{
//	  "script": "analysis/figure_03.go",
//	  "margins": [4, 4, 4, 4],
//	  "draft": false,
//	  "titleblock": [
//	    {"name": "title", "text": {"s": "Overview", "x": 0.5, "y": 0.5, "align": "C"}},
//	    {"image": {"path": "img/site.png", "scale": 2, "expand": true}}
//	  ]
//	}
type Document struct {
	Script     string        `json:"script"`
	Width      float64       `json:"width,omitempty"`
	Height     float64       `json:"height,omitempty"`
	Base       int           `json:"base,omitempty"`
	DPI        int           `json:"dpi,omitempty"`
	Margins    *grid.Margins `json:"margins,omitempty"`
	Rows       []int         `json:"titleblockRows,omitempty"`
	Cols       []int         `json:"titleblockCols,omitempty"`
	Draft      *bool         `json:"draft,omitempty"`
	Watermark  *Watermark    `json:"watermark,omitempty"`
	Letterhead string        `json:"letterhead,omitempty"`
	SourceNote *bool         `json:"sourceNote,omitempty"`
	TitleBlock []Cell        `json:"titleblock,omitempty"`
}

// Parse reads a JSON document and builds the template it describes.
func Parse(data []byte) (*Template, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("reportfig: parsing document: %w", err)
	}
	return doc.Template()
}

// Template converts the document into a Template, applying the same
// defaults as New for omitted fields.
func (d *Document) Template() (*Template, error) {
	var opts []Option
	if d.Width > 0 && d.Height > 0 {
		opts = append(opts, WithPageSize(d.Width, d.Height))
	}
	if d.Base > 0 {
		opts = append(opts, WithBase(d.Base))
	}
	if d.DPI > 0 {
		opts = append(opts, WithDPI(d.DPI))
	}
	if d.Margins != nil {
		opts = append(opts, WithMargins(*d.Margins))
	}
	if d.Rows != nil {
		if len(d.Rows) != 3 {
			return nil, fmt.Errorf("reportfig: titleblockRows must list three heights, have %d", len(d.Rows))
		}
		opts = append(opts, WithTitleBlockRows(d.Rows[0], d.Rows[1], d.Rows[2]))
	}
	if d.Cols != nil {
		if len(d.Cols) != 3 {
			return nil, fmt.Errorf("reportfig: titleblockCols must list three widths, have %d", len(d.Cols))
		}
		opts = append(opts, WithTitleBlockCols(d.Cols[0], d.Cols[1], d.Cols[2]))
	}
	if d.Draft != nil {
		opts = append(opts, WithDraft(*d.Draft))
	}
	if d.Watermark != nil {
		opts = append(opts, WithWatermark(*d.Watermark))
	}
	if d.Letterhead != "" {
		opts = append(opts, WithLetterhead(d.Letterhead))
	}
	if d.SourceNote != nil {
		opts = append(opts, WithSourceNote(*d.SourceNote))
	}
	if len(d.TitleBlock) > 0 {
		opts = append(opts, WithContent(d.TitleBlock...))
	}
	return New(d.Script, opts...)
}
