package assemble

import (
	"errors"
	"testing"

	"github.com/lvillar/invoicepdf/block"
	"github.com/lvillar/invoicepdf/invoice"
	"github.com/lvillar/invoicepdf/style"
)

func strptr(s string) *string { return &s }

// scenarioA is the minimal paid invoice: one item, no transactions, no notes,
// every optional field absent.
func scenarioA() *invoice.Invoice {
	return &invoice.Invoice{
		Number:    "INV-1",
		Status:    "PAID",
		IssueDate: "2023-01-01",
		DueDate:   "2023-02-01",
		Subtotal:  1000,
		Tax:       0,
		Total:     1000,
		Items: []invoice.InvItem{
			{Description: "Widget", Quantity: 2, Price: 500, Amount: 1000},
		},
		Transactions: invoice.Trx{Balance: 1000},
		BillTo:       invoice.InvUser{Name: "Alice"},
		BillFrom:     invoice.InvUser{Name: "Bob"},
	}
}

func mustAssemble(t *testing.T, inv *invoice.Invoice) []block.Block {
	t.Helper()
	blocks, err := Invoice(inv, style.Default())
	if err != nil {
		t.Fatalf("Invoice failed: %v", err)
	}
	return blocks
}

// Block positions in the assembled sequence.
const (
	posHeader = 0
	posDates  = 2
	posBill   = 4
	posItems  = 7
	posTrx    = 10
	posNotes  = 12
)

func tableAt(t *testing.T, blocks []block.Block, pos int) *block.Table {
	t.Helper()
	tbl, ok := blocks[pos].(*block.Table)
	if !ok {
		t.Fatalf("block %d is %T, want *block.Table", pos, blocks[pos])
	}
	return tbl
}

func stackAt(t *testing.T, blocks []block.Block, pos int) block.Stack {
	t.Helper()
	s, ok := blocks[pos].(block.Stack)
	if !ok {
		t.Fatalf("block %d is %T, want block.Stack", pos, blocks[pos])
	}
	return s
}

func cellText(t *testing.T, c block.Cell) block.Text {
	t.Helper()
	txt, ok := c.Content.(block.Text)
	if !ok {
		t.Fatalf("cell content is %T, want block.Text", c.Content)
	}
	return txt
}

func TestScenarioA(t *testing.T) {
	blocks := mustAssemble(t, scenarioA())

	if len(blocks) != 13 {
		t.Fatalf("got %d top-level blocks, want 13", len(blocks))
	}

	// Header: number stack on the left, paid-styled status on the right.
	header := tableAt(t, blocks, posHeader)
	if !header.Frameless {
		t.Error("header table should be frameless")
	}
	left, ok := header.Rows[0].Cells[0].Content.(block.Stack)
	if !ok {
		t.Fatalf("header left cell is %T, want block.Stack", header.Rows[0].Cells[0].Content)
	}
	if got := left.Children[1].(block.Text).Content; got != "No. INV-1" {
		t.Errorf("invoice number line = %q, want %q", got, "No. INV-1")
	}
	status := cellText(t, header.Rows[0].Cells[1])
	if status.Content != "PAID" {
		t.Errorf("status text = %q, want PAID", status.Content)
	}
	if status.Style != style.Default().StatusPaid {
		t.Errorf("status style = %+v, want paid styling", status.Style)
	}
	if status.Align != block.AlignRight {
		t.Errorf("status align = %q, want right", status.Align)
	}

	// Items: 1 header + 1 item + 3 summary rows.
	items := tableAt(t, blocks, posItems)
	if got := len(items.Rows); got != 5 {
		t.Fatalf("items table has %d rows, want 5", got)
	}

	// Transactions: 1 header + 0 items + 1 balance row reading "Rp. 0".
	trx := tableAt(t, blocks, posTrx)
	if got := len(trx.Rows); got != 2 {
		t.Fatalf("transactions table has %d rows, want 2", got)
	}
	balance := cellText(t, trx.Rows[1].Cells[2])
	if balance.Content != "Rp. 0" {
		t.Errorf("balance amount = %q, want %q", balance.Content, "Rp. 0")
	}

	// Notes: section title only, no bullets.
	notes := stackAt(t, blocks, posNotes)
	if got := len(notes.Children); got != 1 {
		t.Fatalf("notes stack has %d children, want 1 (title only)", got)
	}
	if got := notes.Children[0].(block.Text).Content; got != "Notes" {
		t.Errorf("notes title = %q, want Notes", got)
	}
}

func TestRowCountLaws(t *testing.T) {
	for _, tc := range []struct {
		name  string
		items int
		trx   int
	}{
		{"empty", 0, 0},
		{"single", 1, 1},
		{"several", 7, 3},
	} {
		t.Run(tc.name, func(t *testing.T) {
			inv := scenarioA()
			inv.Items = nil
			for i := 0; i < tc.items; i++ {
				inv.Items = append(inv.Items, invoice.InvItem{Description: "x"})
			}
			for i := 0; i < tc.trx; i++ {
				inv.Transactions.Items = append(inv.Transactions.Items, invoice.TrxItem{ID: "t"})
			}

			blocks := mustAssemble(t, inv)
			if got, want := len(tableAt(t, blocks, posItems).Rows), 1+tc.items+3; got != want {
				t.Errorf("items rows = %d, want %d", got, want)
			}
			if got, want := len(tableAt(t, blocks, posTrx).Rows), 1+tc.trx+1; got != want {
				t.Errorf("transaction rows = %d, want %d", got, want)
			}
		})
	}
}

func TestItemsRenderInStoredOrder(t *testing.T) {
	inv := scenarioA()
	inv.Items = []invoice.InvItem{
		{Description: "Alpha", Quantity: 1, Price: 10, Amount: 10},
		{Description: "Beta", Quantity: 0, Price: 0, Amount: 0},
		{Description: "Gamma", Quantity: 3, Price: 5, Amount: 15},
	}

	check := func(items *block.Table, want []string) {
		t.Helper()
		for i, desc := range want {
			got := cellText(t, items.Rows[1+i].Cells[0]).Content
			if got != "- "+desc {
				t.Errorf("row %d description = %q, want %q", i, got, "- "+desc)
			}
		}
	}

	check(tableAt(t, mustAssemble(t, inv), posItems), []string{"Alpha", "Beta", "Gamma"})

	// Reordering the stored sequence reorders the output identically.
	inv.Items[0], inv.Items[2] = inv.Items[2], inv.Items[0]
	check(tableAt(t, mustAssemble(t, inv), posItems), []string{"Gamma", "Beta", "Alpha"})
}

func TestZeroQuantityItemStillRenders(t *testing.T) {
	inv := scenarioA()
	inv.Items = []invoice.InvItem{{Description: "Freebie", Quantity: 0, Price: 0, Amount: 0}}

	items := tableAt(t, mustAssemble(t, inv), posItems)
	row := items.Rows[1]
	if got := cellText(t, row.Cells[1]).Content; got != "0" {
		t.Errorf("quantity = %q, want 0", got)
	}
	if got := cellText(t, row.Cells[2]).Content; got != "Rp. 0" {
		t.Errorf("price = %q, want Rp. 0", got)
	}
}

func TestOptionalFieldsRenderDash(t *testing.T) {
	inv := scenarioA()
	inv.BillTo = invoice.InvUser{Name: "Alice", Phone: strptr("555-0100")}

	blocks := mustAssemble(t, inv)

	// Paid date absent: dash, never blank or omitted.
	dates := stackAt(t, blocks, posDates)
	if got := dates.Children[2].(block.Text).Content; got != "Paid Date: -" {
		t.Errorf("paid date line = %q, want %q", got, "Paid Date: -")
	}

	bill := tableAt(t, blocks, posBill)
	to := bill.Rows[0].Cells[0].Content.(block.Stack)
	lines := make([]string, 0, len(to.Children))
	for _, child := range to.Children {
		lines = append(lines, child.(block.Text).Content)
	}
	want := []string{"Bill To:", "Alice", "-", "555-0100", "-"}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("bill-to line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestStatusStylingExactMatch(t *testing.T) {
	styles := style.Default()
	for _, tc := range []struct {
		status invoice.Status
		want   style.Style
	}{
		{"PAID", styles.StatusPaid},
		{"UNPAID", styles.StatusUnpaid},
		{"Paid", styles.StatusUnpaid},
		{"paid", styles.StatusUnpaid},
		{"", styles.StatusUnpaid},
	} {
		inv := scenarioA()
		inv.Status = tc.status

		header := tableAt(t, mustAssemble(t, inv), posHeader)
		got := cellText(t, header.Rows[0].Cells[1]).Style
		if got != tc.want {
			t.Errorf("status %q: style = %+v, want %+v", tc.status, got, tc.want)
		}
	}
}

func TestBalanceRowIgnoresStoredBalance(t *testing.T) {
	inv := scenarioA()
	inv.Transactions = invoice.Trx{
		Balance: 12345,
		Items: []invoice.TrxItem{
			{ID: "TRX-9", Date: "2023-01-15", Amount: 400},
		},
	}

	trx := tableAt(t, mustAssemble(t, inv), posTrx)

	// The stored transaction keeps its real amount...
	if got := cellText(t, trx.Rows[1].Cells[2]).Content; got != "Rp. 400" {
		t.Errorf("transaction amount = %q, want Rp. 400", got)
	}
	// ...but the balance row always prints the literal zero.
	if got := cellText(t, trx.Rows[2].Cells[2]).Content; got != "Rp. 0" {
		t.Errorf("balance amount = %q, want Rp. 0", got)
	}
	if got := cellText(t, trx.Rows[2].Cells[1]).Content; got != "Balance" {
		t.Errorf("balance label = %q, want Balance", got)
	}
}

func TestCurrencyUsesRawIntegers(t *testing.T) {
	inv := scenarioA()
	inv.Items = []invoice.InvItem{
		{Description: "Big", Quantity: 1, Price: 1234567, Amount: 1234567},
		{Description: "Credit", Quantity: 1, Price: -500, Amount: -500},
	}

	items := tableAt(t, mustAssemble(t, inv), posItems)
	if got := cellText(t, items.Rows[1].Cells[2]).Content; got != "Rp. 1234567" {
		t.Errorf("price = %q, want no separators or scaling", got)
	}
	if got := cellText(t, items.Rows[2].Cells[3]).Content; got != "Rp. -500" {
		t.Errorf("amount = %q, want signed raw integer", got)
	}
}

func TestSummaryRowsReadInvoiceFields(t *testing.T) {
	inv := scenarioA()
	// Deliberately inconsistent with the item list: the assembler must not
	// recompute.
	inv.Subtotal = 11
	inv.Tax = 22
	inv.Total = 33

	items := tableAt(t, mustAssemble(t, inv), posItems)
	n := len(items.Rows)
	for i, want := range []struct{ label, amount string }{
		{"Sub-total", "Rp. 11"},
		{"Tax", "Rp. 22"},
		{"Total", "Rp. 33"},
	} {
		row := items.Rows[n-3+i]
		if got := cellText(t, row.Cells[2]).Content; got != want.label {
			t.Errorf("summary label = %q, want %q", got, want.label)
		}
		if got := cellText(t, row.Cells[3]).Content; got != want.amount {
			t.Errorf("summary amount = %q, want %q", got, want.amount)
		}
	}
}

func TestNotesKeepStoredOrder(t *testing.T) {
	inv := scenarioA()
	inv.Notes = []string{"first", "second", "third"}

	notes := stackAt(t, mustAssemble(t, inv), posNotes)
	if got := len(notes.Children); got != 4 {
		t.Fatalf("notes stack has %d children, want title + 3 bullets", got)
	}
	for i, want := range []string{"first", "second", "third"} {
		b, ok := notes.Children[1+i].(block.Bullet)
		if !ok {
			t.Fatalf("notes child %d is %T, want block.Bullet", 1+i, notes.Children[1+i])
		}
		if b.Content.Content != want {
			t.Errorf("note %d = %q, want %q", i, b.Content.Content, want)
		}
		if b.Marker != "•" {
			t.Errorf("note %d marker = %q, want bullet", i, b.Marker)
		}
	}
}

func TestTransactionsKeepStoredOrder(t *testing.T) {
	inv := scenarioA()
	inv.Transactions.Items = []invoice.TrxItem{
		{ID: "B", Date: "2023-02-01", Amount: 2},
		{ID: "A", Date: "2023-01-01", Amount: 1},
	}

	trx := tableAt(t, mustAssemble(t, inv), posTrx)
	if got := cellText(t, trx.Rows[1].Cells[1]).Content; got != "B" {
		t.Errorf("first transaction id = %q, want B", got)
	}
	if got := cellText(t, trx.Rows[2].Cells[1]).Content; got != "A" {
		t.Errorf("second transaction id = %q, want A", got)
	}
}

func TestAllTablesFrameless(t *testing.T) {
	blocks := mustAssemble(t, scenarioA())
	for _, pos := range []int{posHeader, posBill, posItems, posTrx} {
		if !tableAt(t, blocks, pos).Frameless {
			t.Errorf("table at block %d is not frameless", pos)
		}
	}
}

func TestAssemblyNeverReturnsArityError(t *testing.T) {
	// The fixed schema cannot trigger the grid's arity contract; exercise a
	// spread of shapes to make sure.
	for _, inv := range []*invoice.Invoice{
		{},
		scenarioA(),
	} {
		if _, err := Invoice(inv, style.Default()); err != nil {
			var arity *block.RowArityError
			if errors.As(err, &arity) {
				t.Fatalf("arity violation from valid record: %v", err)
			}
			t.Fatalf("unexpected error: %v", err)
		}
	}
}
