// Package invoice defines the persisted invoice record and its loader.
//
// The record is a single JSON object describing one bill: its parties, line
// items, payment transactions, status and derived totals. It is loaded once
// per run and is read-only from then on; nothing in this module recomputes
// totals or validates business rules such as amount == quantity * price.
package invoice

// Status is the payment status of an invoice. The wire format is a plain
// string, so unknown values survive a load/save round trip unchanged; only
// the exact value "PAID" is ever treated as paid.
type Status string

// Known status values.
const (
	StatusPaid   Status = "PAID"
	StatusUnpaid Status = "UNPAID"
)

// Paid reports whether the status is exactly StatusPaid. The comparison is
// case-sensitive: "Paid", "paid" and "" all count as unpaid.
func (s Status) Paid() bool {
	return s == StatusPaid
}

// InvUser is one party on the invoice, either the recipient or the issuer.
// Name is required; the remaining fields are optional and render as a
// placeholder dash when absent.
type InvUser struct {
	Name    string  `json:"name"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
}

// InvItem is a single billed line item. Amount is trusted as supplied and is
// never derived from Quantity and Price here.
type InvItem struct {
	Description string `json:"description"`
	Quantity    uint8  `json:"quantity"`
	Price       int64  `json:"price"`
	Amount      int64  `json:"amount"`
}

// TrxItem is one recorded payment transaction.
type TrxItem struct {
	ID     string `json:"id"`
	Date   string `json:"date"`
	Amount uint64 `json:"amount"`
}

// Trx is the payment history attached to an invoice: a remaining balance and
// the ordered list of transactions.
type Trx struct {
	Balance uint64    `json:"balance"`
	Items   []TrxItem `json:"items"`
}

// Invoice is the root record. Field order and JSON names follow the persisted
// schema; Items, Transactions.Items and Notes keep their stored order.
type Invoice struct {
	Number       string    `json:"number"`
	Status       Status    `json:"status"`
	IssueDate    string    `json:"issuedate"`
	DueDate      string    `json:"duedate"`
	PaidDate     *string   `json:"paiddate"`
	Subtotal     uint64    `json:"subtotal"`
	Tax          uint64    `json:"tax"`
	Total        uint64    `json:"total"`
	Items        []InvItem `json:"items"`
	Transactions Trx       `json:"transactions"`
	BillTo       InvUser   `json:"invto"`
	BillFrom     InvUser   `json:"invfrom"`
	Notes        []string  `json:"notes"`
}
