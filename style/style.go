// Package style defines the fixed visual styles shared by every block of the
// assembled document. Styles are selected by semantic role and never redefined
// inline by layout code.
package style

import "github.com/lvillar/invoicepdf/invoice"

// RGB is an RGB color value. The zero value is black, the default text color.
type RGB struct {
	R, G, B int
}

// Style is one visual text style: font size in points, weight and color.
// Styles are plain comparable values.
type Style struct {
	Size  float64
	Bold  bool
	Color RGB
}

// Bolded returns a copy of the style with bold weight.
func (s Style) Bolded() Style {
	s.Bold = true
	return s
}

// Registry maps each semantic role to its concrete style. The role set is
// closed at compile time; construction is total and the registry is immutable
// by convention after Default returns it.
type Registry struct {
	HeaderTitle   Style // the big "INVOICE" banner
	InvoiceNumber Style // "No. <number>" under the banner
	StatusUnpaid  Style
	StatusPaid    Style
	TableHeader   Style
	Body          Style
	Emphasis      Style // bold labels such as "Bill To:"
	EmphasisTotal Style // the Total and Balance summary rows
	SectionTitle  Style // "Items", "Transactions", "Notes"
}

// Default returns the fixed palette used for every generated invoice.
func Default() Registry {
	return Registry{
		HeaderTitle:   Style{Size: 40, Bold: true},
		InvoiceNumber: Style{Size: 11},
		StatusUnpaid:  Style{Size: 20, Bold: true, Color: RGB{R: 190, G: 48, B: 48}},
		StatusPaid:    Style{Size: 20, Bold: true, Color: RGB{R: 62, G: 142, B: 126}},
		TableHeader:   Style{Size: 11, Bold: true, Color: RGB{R: 146, G: 154, B: 171}},
		Body:          Style{Size: 9},
		Emphasis:      Style{Size: 11, Bold: true},
		EmphasisTotal: Style{Size: 11, Bold: true, Color: RGB{R: 82, G: 97, B: 107}},
		SectionTitle:  Style{Size: 20, Bold: true},
	}
}

// ForStatus returns the status style for st: StatusPaid styling for an exact
// "PAID" status, StatusUnpaid styling for anything else.
func (r Registry) ForStatus(st invoice.Status) Style {
	if st.Paid() {
		return r.StatusPaid
	}
	return r.StatusUnpaid
}
