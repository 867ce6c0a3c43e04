package render

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"
)

// fontVariants maps gofpdf style flags to the file name suffixes a font
// family is discovered by. Regular and Bold are required because the style
// registry uses both weights; the italic variants are registered when present.
var fontVariants = []struct {
	style    string
	suffix   string
	required bool
}{
	{"", "-Regular.ttf", true},
	{"B", "-Bold.ttf", true},
	{"I", "-Italic.ttf", false},
	{"BI", "-BoldItalic.ttf", false},
}

// registerFamily discovers the family's TrueType files in dir by the fixed
// "<Family>-<Variant>.ttf" naming scheme and registers them as UTF-8 fonts.
// A missing required variant is reported via ErrFontNotFound.
func registerFamily(pdf *gofpdf.Fpdf, dir, family string) error {
	for _, v := range fontVariants {
		path := filepath.Join(dir, family+v.suffix)
		if _, err := os.Stat(path); err != nil {
			if v.required {
				return fmt.Errorf("%w: %s", ErrFontNotFound, path)
			}
			continue
		}
		pdf.AddUTF8Font(family, v.style, path)
	}
	if pdf.Err() {
		return fmt.Errorf("render: registering font family %s: %w", family, pdf.Error())
	}
	return nil
}
