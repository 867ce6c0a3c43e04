// Package render paginates an assembled block sequence into a PDF file.
//
// It is the pipeline's only component with side effects: it loads the font
// resource, walks the block tree, breaks pages, and writes the output file.
// Assembly errors cannot reach this package; every failure here (missing
// font, unreadable letterhead, write failure) is fatal to the run.
package render

import (
	"fmt"
	"io"
	"os"

	"github.com/jung-kurt/gofpdf"

	"github.com/lvillar/invoicepdf/block"
	"github.com/lvillar/invoicepdf/style"
)

// lineUnit is the height of one spacer line in millimeters.
const lineUnit = 5.0

// minRowHeight is the minimum table row height in millimeters.
const minRowHeight = 5.0

// Document is one renderable document: its metadata plus the assembled block
// sequence, with the registry's concrete style values already embedded.
type Document struct {
	Title   string
	Barcode string // corner mark content; empty skips the mark
	Blocks  []block.Block
}

// OutputName returns the deterministic output file name for an invoice
// number. Re-running with the same number silently replaces the prior file.
func OutputName(number string) string {
	return fmt.Sprintf("invoice_%s.pdf", number)
}

// Renderer turns assembled documents into PDF bytes. A Renderer is stateless
// between calls and may be reused.
type Renderer struct {
	cfg config
}

// New builds a Renderer from the given options.
func New(opts ...Option) *Renderer {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Renderer{cfg: cfg}
}

// RenderFile renders doc and writes it to the named file, replacing any
// existing file.
func (r *Renderer) RenderFile(path string, doc Document) error {
	f, err := os.Create(path) // #nosec G304 -- output path is caller-provided
	if err != nil {
		return fmt.Errorf("render: creating %s: %w", path, err)
	}
	if err := r.Render(f, doc); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("render: writing %s: %w", path, err)
	}
	return nil
}

// Render writes doc as a PDF to w.
func (r *Renderer) Render(w io.Writer, doc Document) error {
	pdf := gofpdf.New("P", r.cfg.unit, r.cfg.pageSize, "")
	pdf.SetMargins(r.cfg.margin, r.cfg.margin, r.cfg.margin)
	pdf.SetAutoPageBreak(true, r.cfg.margin)
	if doc.Title != "" {
		pdf.SetTitle(doc.Title, true)
	}

	st := &state{pdf: pdf, family: r.cfg.fontFamily, tr: func(s string) string { return s }}
	if r.cfg.fontDir != "" {
		if err := registerFamily(pdf, r.cfg.fontDir, r.cfg.fontFamily); err != nil {
			return err
		}
	} else {
		// Core fonts are cp1252 encoded; translate so the bullet marker
		// and similar runes survive.
		st.tr = pdf.UnicodeTranslatorFromDescriptor("")
	}

	if r.cfg.letterhead != "" {
		if err := applyLetterhead(pdf, r.cfg.letterhead); err != nil {
			return err
		}
	}

	pdf.AddPage()

	if doc.Barcode != "" && r.cfg.barcode != "" {
		if err := drawBarcode(pdf, r.cfg.barcode, doc.Barcode, r.cfg.margin); err != nil {
			return err
		}
	}

	for _, b := range doc.Blocks {
		st.renderBlock(b)
	}

	if pdf.Err() {
		return fmt.Errorf("render: %w", pdf.Error())
	}
	return pdf.Output(w)
}

// state carries the per-document rendering context through the block walk.
type state struct {
	pdf    *gofpdf.Fpdf
	family string
	tr     func(string) string
}

func (st *state) setStyle(s style.Style) {
	fontStyle := ""
	if s.Bold {
		fontStyle = "B"
	}
	st.pdf.SetFont(st.family, fontStyle, s.Size)
	st.pdf.SetTextColor(s.Color.R, s.Color.G, s.Color.B)
}

// contentWidth returns the usable width between the page margins.
func (st *state) contentWidth() (left, width float64) {
	pageW, _ := st.pdf.GetPageSize()
	lm, _, rm, _ := st.pdf.GetMargins()
	return lm, pageW - lm - rm
}

func (st *state) renderBlock(b block.Block) {
	switch v := b.(type) {
	case block.Text:
		lm, w := st.contentWidth()
		y := st.pdf.GetY()
		h := st.drawText(v, lm, y, w)
		st.pdf.SetXY(lm, y+h)
	case block.Stack:
		for _, child := range v.Children {
			st.renderBlock(child)
		}
	case block.Bullet:
		st.renderBullet(v)
	case block.Spacer:
		st.pdf.Ln(v.Lines * lineUnit)
	case *block.Table:
		st.renderTable(v)
	}
}

// renderBullet draws one indented bulleted line.
func (st *state) renderBullet(b block.Bullet) {
	lm, w := st.contentWidth()
	y := st.pdf.GetY()
	txt := b.Content
	txt.Content = b.Marker + " " + txt.Content
	h := st.drawText(txt, lm+5, y, w-5)
	st.pdf.SetXY(lm, y+h)
}

// measureText returns the height the text run needs at the given width,
// padding included.
func (st *state) measureText(t block.Text, w float64) float64 {
	st.setStyle(t.Style)
	innerW := w - t.Padding.Left - t.Padding.Right
	if innerW < 1 {
		innerW = 1
	}
	lines := 1
	if content := st.tr(t.Content); content != "" {
		lines = len(st.pdf.SplitLines([]byte(content), innerW))
	}
	lineH := t.Style.Size * 0.5
	return float64(lines)*lineH + t.Padding.Top + t.Padding.Bottom
}

// drawText renders the text run at (x, y) within width w and returns the
// height consumed, padding included.
func (st *state) drawText(t block.Text, x, y, w float64) float64 {
	st.setStyle(t.Style)
	innerW := w - t.Padding.Left - t.Padding.Right
	if innerW < 1 {
		innerW = 1
	}
	align := string(t.Align)
	if align == "" {
		align = "L"
	}
	lineH := t.Style.Size * 0.5
	st.pdf.SetXY(x+t.Padding.Left, y+t.Padding.Top)
	st.pdf.MultiCell(innerW, lineH, st.tr(t.Content), "", align, false)
	return st.measureText(t, w)
}

// measureContent returns the height a cell content block needs at width w.
func (st *state) measureContent(b block.Block, w float64) float64 {
	switch v := b.(type) {
	case block.Text:
		return st.measureText(v, w)
	case block.Stack:
		var h float64
		for _, child := range v.Children {
			h += st.measureContent(child, w)
		}
		return h
	default:
		return 0
	}
}

// drawContent renders a cell content block at (x, y) within width w.
func (st *state) drawContent(b block.Block, x, y, w float64) {
	switch v := b.(type) {
	case block.Text:
		st.drawText(v, x, y, w)
	case block.Stack:
		for _, child := range v.Children {
			h := st.measureContent(child, w)
			st.drawContent(child, x, y, w)
			y += h
		}
	}
}

// renderTable draws a grid table: column widths distributed proportionally to
// the declared weights, row heights from the tallest cell, manual page breaks
// between rows.
func (st *state) renderTable(t *block.Table) {
	widths := st.columnWidths(t.Weights)
	startX, _ := st.contentWidth()

	_, pageH := st.pdf.GetPageSize()
	_, _, _, bMargin := st.pdf.GetMargins()

	for _, row := range t.Rows {
		rowH := st.rowHeight(row, widths)

		if st.pdf.GetY()+rowH > pageH-bMargin {
			st.pdf.AddPage()
		}

		y := st.pdf.GetY()
		x := startX
		for i, cell := range row.Cells {
			w := widths[i]
			if !t.Frameless {
				st.pdf.Rect(x, y, w, rowH, "D")
			}
			inner := cell.Content
			st.drawContent(inner, x+cell.Padding.Left, y+cell.Padding.Top,
				w-cell.Padding.Left-cell.Padding.Right)
			x += w
		}
		st.pdf.SetXY(startX, y+rowH)
	}
}

// columnWidths distributes the content width proportionally to the weights.
func (st *state) columnWidths(weights []int) []float64 {
	_, total := st.contentWidth()
	sum := 0
	for _, w := range weights {
		sum += w
	}
	if sum == 0 {
		return make([]float64, len(weights))
	}
	widths := make([]float64, len(weights))
	for i, w := range weights {
		widths[i] = total * float64(w) / float64(sum)
	}
	return widths
}

// rowHeight computes the height of a row from its tallest cell.
func (st *state) rowHeight(row block.Row, widths []float64) float64 {
	maxH := minRowHeight
	for i, cell := range row.Cells {
		if i >= len(widths) {
			break
		}
		w := widths[i] - cell.Padding.Left - cell.Padding.Right
		h := st.measureContent(cell.Content, w) + cell.Padding.Top + cell.Padding.Bottom
		if h > maxH {
			maxH = h
		}
	}
	return maxH
}
