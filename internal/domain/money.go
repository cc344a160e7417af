package domain

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Rupiah is an amount of Indonesian Rupiah. Prices in the catalog carry no
// fractional part.
type Rupiah int64

// String formats the amount the way it is printed on the site, e.g. "Rp 1.299.000".
func (r Rupiah) String() string {
	p := message.NewPrinter(language.Indonesian)
	return "Rp " + p.Sprintf("%d", int64(r))
}
