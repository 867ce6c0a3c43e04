package render

import "errors"

// Sentinel errors for render-time failures. All of them are fatal to the run;
// the renderer never retries and never produces partial output.
var (
	ErrFontNotFound       = errors.New("render: font file not found")
	ErrLetterheadNotFound = errors.New("render: letterhead file not found")
	ErrUnknownBarcode     = errors.New("render: unknown barcode format")
)
