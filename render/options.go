package render

// Page size names accepted by WithPageSize.
const (
	PageSizeA4     = "A4"
	PageSizeLetter = "Letter"
	PageSizeLegal  = "Legal"
)

// Measurement units accepted by WithUnit.
const (
	UnitMillimeter = "mm"
	UnitCentimeter = "cm"
	UnitPoint      = "pt"
	UnitInch       = "in"
)

// BarcodeFormat selects the symbology of the optional corner mark.
type BarcodeFormat string

// Supported barcode formats.
const (
	BarcodeQR      BarcodeFormat = "qr"
	BarcodePDF417  BarcodeFormat = "pdf417"
	BarcodeCode128 BarcodeFormat = "code128"
)

// Option is a functional option for configuring a Renderer.
type Option func(*config)

type config struct {
	pageSize   string
	unit       string
	margin     float64
	fontDir    string
	fontFamily string
	barcode    BarcodeFormat
	letterhead string
}

func defaultConfig() config {
	return config{
		pageSize:   PageSizeA4,
		unit:       UnitMillimeter,
		margin:     10,
		fontFamily: "Helvetica",
	}
}

// WithPageSize sets the page size by name. Defaults to A4.
func WithPageSize(size string) Option {
	return func(c *config) {
		c.pageSize = size
	}
}

// WithUnit sets the measurement unit for page geometry. Defaults to
// millimeters.
func WithUnit(unit string) Option {
	return func(c *config) {
		c.unit = unit
	}
}

// WithMargin sets the uniform page margin in millimeters. Defaults to 10.
func WithMargin(margin float64) Option {
	return func(c *config) {
		c.margin = margin
	}
}

// WithFontDir sets the directory holding the document's TrueType font files.
// When unset the renderer falls back to the built-in core fonts and
// WithFontFamily must name one of them.
func WithFontDir(dir string) Option {
	return func(c *config) {
		c.fontDir = dir
	}
}

// WithFontFamily sets the font family name. With a font directory configured
// the family selects the files discovered there (see RegisterFamily); without
// one it names a built-in core font. Defaults to Helvetica.
func WithFontFamily(family string) Option {
	return func(c *config) {
		c.fontFamily = family
	}
}

// WithBarcode enables the corner mark in the given format. The mark encodes
// Document.Barcode and is skipped when that field is empty.
func WithBarcode(format BarcodeFormat) Option {
	return func(c *config) {
		c.barcode = format
	}
}

// WithLetterhead draws the first page of the named PDF beneath every page of
// the generated document.
func WithLetterhead(path string) Option {
	return func(c *config) {
		c.letterhead = path
	}
}
