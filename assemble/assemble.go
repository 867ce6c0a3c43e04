// Package assemble maps one invoice record into the ordered block sequence
// the rendering backend paginates: header panel, date panel, bill-to/bill-from
// panel, items table, transactions table and the notes list.
//
// Assembly performs no I/O and reads the invoice and style registry without
// mutating them. Every optional textual field renders as a literal dash when
// absent, never blank and never omitted; items, transactions and notes keep
// their stored order.
package assemble

import (
	"fmt"

	"github.com/lvillar/invoicepdf/block"
	"github.com/lvillar/invoicepdf/invoice"
	"github.com/lvillar/invoicepdf/style"
)

// Fixed literals of the generated document.
const (
	headerTitle  = "INVOICE"
	numberFormat = "No. %s"

	labelIssueDate = "Issue Date: %s"
	labelDueDate   = "Due Date: %s"
	labelPaidDate  = "Paid Date: %s"

	labelBillTo   = "Bill To:"
	labelBillFrom = "Bill From:"

	titleItems        = "Items"
	titleTransactions = "Transactions"
	titleNotes        = "Notes"

	// currencyPrefix precedes every monetary value, followed by the raw
	// integer amount with no separators or decimal scaling.
	currencyPrefix = "Rp. "

	itemBullet = "- "
	noteBullet = "•"

	// placeholder substitutes every absent optional field.
	placeholder = "-"
)

// Invoice assembles the full block sequence for inv. The returned error can
// only originate from the table grid's row arity contract, which a valid
// invoice record never triggers.
func Invoice(inv *invoice.Invoice, styles style.Registry) ([]block.Block, error) {
	header, err := headerPanel(inv, styles)
	if err != nil {
		return nil, err
	}
	bill, err := billPanel(inv, styles)
	if err != nil {
		return nil, err
	}
	items, err := itemsTable(inv, styles)
	if err != nil {
		return nil, err
	}
	trx, err := transactionsTable(inv, styles)
	if err != nil {
		return nil, err
	}

	return []block.Block{
		header,
		block.Spacer{Lines: 1.5},
		datePanel(inv, styles),
		block.Spacer{Lines: 1.5},
		bill,
		block.Spacer{Lines: 3},
		sectionTitle(titleItems, styles),
		items,
		block.Spacer{Lines: 3},
		sectionTitle(titleTransactions, styles),
		trx,
		block.Spacer{Lines: 3},
		notesBlock(inv, styles),
	}, nil
}

// orDash substitutes the placeholder dash for an absent optional field.
func orDash(s *string) string {
	if s == nil {
		return placeholder
	}
	return *s
}

func sectionTitle(title string, styles style.Registry) block.Text {
	return block.NewText(title, styles.SectionTitle).Padded(block.TRBL(2, 0, 2, 0))
}

// headerPanel builds the two-column frameless header table: the banner and
// invoice number stacked on the left, the status text right-aligned on the
// right. Status styling is the component's sole branch: paid styling for an
// exact "PAID" status, unpaid styling otherwise.
func headerPanel(inv *invoice.Invoice, styles style.Registry) (*block.Table, error) {
	number := block.NewStack(
		block.NewText(headerTitle, styles.HeaderTitle),
		block.NewText(fmt.Sprintf(numberFormat, inv.Number), styles.InvoiceNumber),
	)
	status := block.NewText(string(inv.Status), styles.ForStatus(inv.Status)).Aligned(block.AlignRight)

	t := block.NewTable(1, 1).SetFrameless()
	if err := t.AppendRow(
		block.NewCell(number),
		block.Cell{Content: status, Align: block.AlignRight},
	); err != nil {
		return nil, err
	}
	return t, nil
}

// datePanel stacks the three date lines. A missing paid date renders as the
// placeholder dash.
func datePanel(inv *invoice.Invoice, styles style.Registry) block.Stack {
	return block.NewStack(
		block.NewText(fmt.Sprintf(labelIssueDate, inv.IssueDate), styles.Body),
		block.NewText(fmt.Sprintf(labelDueDate, inv.DueDate), styles.Body),
		block.NewText(fmt.Sprintf(labelPaidDate, orDash(inv.PaidDate)), styles.Body),
	)
}

// partyCell builds one bill-to/bill-from cell: a bold label followed by the
// party's name, address, phone and email, dashes substituting absent fields.
// Both panel cells share this layout.
func partyCell(label string, u invoice.InvUser, styles style.Registry) block.Stack {
	return block.NewStack(
		block.NewText(label, styles.Emphasis).Padded(block.TRBL(1, 0, 1, 0)),
		block.NewText(u.Name, styles.Body),
		block.NewText(orDash(u.Address), styles.Body).Padded(block.TRBL(1, 5, 2, 0)),
		block.NewText(orDash(u.Phone), styles.Body).Padded(block.TRBL(1, 0, 1, 0)),
		block.NewText(orDash(u.Email), styles.Body),
	)
}

func billPanel(inv *invoice.Invoice, styles style.Registry) (*block.Table, error) {
	t := block.NewTable(1, 1).SetFrameless()
	if err := t.AppendRow(
		block.NewCell(partyCell(labelBillTo, inv.BillTo, styles)),
		block.NewCell(partyCell(labelBillFrom, inv.BillFrom, styles)),
	); err != nil {
		return nil, err
	}
	return t, nil
}

// cellPad is the standard padding of a table body or header cell; the first
// column gets extra right padding to keep wrapped text off its neighbor.
var (
	cellPad       = block.TRBL(2, 0, 2, 0)
	firstColPad   = block.TRBL(2, 5, 2, 0)
	bulletLinePad = block.TRBL(1, 0, 1, 0)
)

func textCell(content string, s style.Style, a block.Align, p block.Padding) block.Cell {
	return block.Cell{
		Content: block.NewText(content, s).Aligned(a),
		Align:   a,
		Padding: p,
	}
}

// itemsTable builds the four-column items table: one header row, one row per
// stored item in order, then exactly the three summary rows Sub-total, Tax
// and Total reading the invoice's derived fields directly.
func itemsTable(inv *invoice.Invoice, styles style.Registry) (*block.Table, error) {
	t := block.NewTable(3, 1, 1, 1).SetFrameless()

	if err := t.AppendRow(
		textCell("Description", styles.TableHeader, block.AlignLeft, cellPad),
		textCell("Quantity", styles.TableHeader, block.AlignCenter, cellPad),
		textCell("Price", styles.TableHeader, block.AlignRight, cellPad),
		textCell("Amount", styles.TableHeader, block.AlignRight, cellPad),
	); err != nil {
		return nil, err
	}

	for _, item := range inv.Items {
		if err := t.AppendRow(
			textCell(itemBullet+item.Description, styles.Body, block.AlignLeft, firstColPad),
			textCell(fmt.Sprintf("%d", item.Quantity), styles.Body, block.AlignCenter, cellPad),
			textCell(money(item.Price), styles.Body, block.AlignRight, cellPad),
			textCell(money(item.Amount), styles.Body, block.AlignRight, cellPad),
		); err != nil {
			return nil, err
		}
	}

	summary := []struct {
		label                string
		amount               uint64
		labelStyle, valStyle style.Style
	}{
		{"Sub-total", inv.Subtotal, styles.Body.Bolded(), styles.Body},
		{"Tax", inv.Tax, styles.Body.Bolded(), styles.Body},
		{"Total", inv.Total, styles.EmphasisTotal, styles.EmphasisTotal},
	}
	for _, row := range summary {
		if err := t.AppendRow(
			textCell("", styles.Body, block.AlignLeft, firstColPad),
			textCell("", styles.Body, block.AlignCenter, cellPad),
			textCell(row.label, row.labelStyle, block.AlignRight, cellPad),
			textCell(money(int64(row.amount)), row.valStyle, block.AlignRight, cellPad),
		); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// transactionsTable builds the three-column payment history table: one header
// row, one row per stored transaction in order, then the single Balance row.
//
// The Balance row renders the fixed literal zero regardless of the stored
// balance field. Candidate defect inherited from the original report layout;
// kept as-is so regenerated documents stay byte-comparable.
func transactionsTable(inv *invoice.Invoice, styles style.Registry) (*block.Table, error) {
	t := block.NewTable(2, 2, 1).SetFrameless()

	if err := t.AppendRow(
		textCell("Date Transaction", styles.TableHeader, block.AlignLeft, cellPad),
		textCell("ID Transaction", styles.TableHeader, block.AlignLeft, cellPad),
		textCell("Amount", styles.TableHeader, block.AlignRight, cellPad),
	); err != nil {
		return nil, err
	}

	for _, trx := range inv.Transactions.Items {
		if err := t.AppendRow(
			textCell(trx.Date, styles.Body, block.AlignLeft, firstColPad),
			textCell(trx.ID, styles.Body, block.AlignLeft, cellPad),
			textCell(money(int64(trx.Amount)), styles.Body, block.AlignRight, cellPad),
		); err != nil {
			return nil, err
		}
	}

	if err := t.AppendRow(
		textCell("", styles.Body, block.AlignLeft, firstColPad),
		textCell("Balance", styles.EmphasisTotal, block.AlignRight, cellPad),
		textCell(currencyPrefix+"0", styles.EmphasisTotal, block.AlignRight, cellPad),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// notesBlock stacks the notes section title and one bulleted line per stored
// note. A nil notes collection yields the title with no bullets; the section
// is never omitted.
func notesBlock(inv *invoice.Invoice, styles style.Registry) block.Stack {
	children := []block.Block{sectionTitle(titleNotes, styles)}
	for _, note := range inv.Notes {
		children = append(children, block.Bullet{
			Marker:  noteBullet,
			Content: block.NewText(note, styles.Body).Padded(bulletLinePad),
		})
	}
	return block.Stack{Children: children}
}

// money renders a currency amount: the fixed prefix and the raw integer, no
// separators, no decimal scaling.
func money(v int64) string {
	return fmt.Sprintf("%s%d", currencyPrefix, v)
}
