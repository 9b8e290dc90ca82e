package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/lvillar/reportfig"
)

// Config holds site-wide defaults loaded from a TOML file. Values set here
// apply to every document that does not set the field itself, so a team can
// keep its letterhead and drafting policy in one place.
//
// Example:
//
//	draft = false
//	dpi = 150
//	letterhead = "/srv/assets/letterhead.pdf"
//
//	[watermark]
//	text = "PRELIMINARY"
//	opacity = 0.35
type Config struct {
	Draft      *bool                `toml:"draft"`
	DPI        int                  `toml:"dpi"`
	Base       int                  `toml:"base"`
	Letterhead string               `toml:"letterhead"`
	SourceNote *bool                `toml:"sourceNote"`
	Watermark  *reportfig.Watermark `toml:"watermark"`
}

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cli: reading config: %w", err)
	}
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("cli: parsing config %s: %w", path, err)
	}
	return &cfg, nil
}

// apply copies config defaults into doc for every field the document leaves
// unset. Document values always win.
func (c *Config) apply(doc *reportfig.Document) {
	if doc.Draft == nil && c.Draft != nil {
		doc.Draft = c.Draft
	}
	if doc.DPI == 0 && c.DPI > 0 {
		doc.DPI = c.DPI
	}
	if doc.Base == 0 && c.Base > 0 {
		doc.Base = c.Base
	}
	if doc.Letterhead == "" && c.Letterhead != "" {
		doc.Letterhead = c.Letterhead
	}
	if doc.SourceNote == nil && c.SourceNote != nil {
		doc.SourceNote = c.SourceNote
	}
	if doc.Watermark == nil && c.Watermark != nil {
		doc.Watermark = c.Watermark
	}
}
