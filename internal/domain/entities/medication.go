package entities

import "time"

// MedicationRecord is one catalog entry, keyed by the code embedded in the
// medication's QR or barcode label.
type MedicationRecord struct {
	Code            string       `json:"code"`
	Name            string       `json:"name"`
	Description     string       `json:"description"`
	Dosage          string       `json:"dosage"`
	SideEffects     []string     `json:"side_effects"`
	ManufactureDate time.Time    `json:"manufacture_date"`
	ExpiryDate      time.Time    `json:"expiry_date"`
	Prices          []PriceQuote `json:"prices,omitempty"`
}

// PriceQuote is one pharmacy's observed price for a medication. Quotes carry
// no identity of their own, and the same pharmacy may appear more than once.
type PriceQuote struct {
	Pharmacy    string    `json:"pharmacy"`
	Price       float64   `json:"price"`
	Location    string    `json:"location,omitempty"`
	LastUpdated time.Time `json:"last_updated"`
}

// PriceComparison is the result of comparing a medication's price quotes.
type PriceComparison struct {
	// Sorted holds the quotes ascending by price, ties in input order.
	Sorted []PriceQuote

	Cheapest      PriceQuote
	MostExpensive PriceQuote

	// Savings is what a buyer saves picking the cheapest quote over the most
	// expensive one. Never negative.
	Savings float64

	// Best is the quote to badge as the best price. Nil when only a single
	// quote was compared.
	Best *PriceQuote
}
