package render

import (
	"fmt"
	"os"

	"github.com/jung-kurt/gofpdf"
	"github.com/jung-kurt/gofpdf/contrib/gofpdi"
)

// applyLetterhead imports the first page of the named PDF and draws it
// beneath every page of the generated document. Must run before the first
// AddPage so the underlay appears on page one.
func applyLetterhead(pdf *gofpdf.Fpdf, path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("%w: %s", ErrLetterheadNotFound, path)
	}

	tpl := gofpdi.ImportPage(pdf, path, 1, "/MediaBox")
	if pdf.Err() {
		return fmt.Errorf("render: importing letterhead %s: %w", path, pdf.Error())
	}

	pageW, _ := pdf.GetPageSize()
	pdf.SetHeaderFunc(func() {
		gofpdi.UseImportedTemplate(pdf, tpl, 0, 0, pageW, 0)
	})
	return nil
}
