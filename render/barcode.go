package render

import (
	"fmt"

	"github.com/boombuler/barcode/qr"
	"github.com/jung-kurt/gofpdf"
	"github.com/jung-kurt/gofpdf/contrib/barcode"
)

// Corner mark dimensions in millimeters.
const (
	qrMarkSize    = 18.0
	barMarkWidth  = 40.0
	barMarkHeight = 10.0
)

// drawBarcode draws the machine-readable corner mark in the bottom-right
// corner of the current page.
func drawBarcode(pdf *gofpdf.Fpdf, format BarcodeFormat, content string, margin float64) error {
	pageW, pageH := pdf.GetPageSize()

	switch format {
	case BarcodeQR:
		key := barcode.RegisterQR(pdf, content, qr.H, qr.Unicode)
		barcode.Barcode(pdf, key, pageW-margin-qrMarkSize, pageH-margin-qrMarkSize,
			qrMarkSize, qrMarkSize, false)
	case BarcodePDF417:
		key := barcode.RegisterPdf417(pdf, content, 4, 2)
		barcode.Barcode(pdf, key, pageW-margin-barMarkWidth, pageH-margin-barMarkHeight,
			barMarkWidth, barMarkHeight, false)
	case BarcodeCode128:
		key := barcode.RegisterCode128(pdf, content)
		barcode.Barcode(pdf, key, pageW-margin-barMarkWidth, pageH-margin-barMarkHeight,
			barMarkWidth, barMarkHeight, false)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBarcode, format)
	}

	if pdf.Err() {
		return fmt.Errorf("render: drawing barcode: %w", pdf.Error())
	}
	return nil
}
