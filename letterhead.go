package reportfig

import (
	"github.com/jung-kurt/gofpdf/contrib/gofpdi"
)

// drawLetterhead underlays page 1 of the configured PDF across the full
// page. It runs before anything else, so the frame, title block and
// watermark all land on top of it.
func (r *renderer) drawLetterhead() {
	imp := gofpdi.NewImporter()
	tpl := imp.ImportPage(r.pdf, r.t.letterhead, 1, "/MediaBox")
	imp.UseImportedTemplate(r.pdf, tpl, 0, 0, r.t.pageW, r.t.pageH)
}
