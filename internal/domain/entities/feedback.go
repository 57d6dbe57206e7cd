package entities

import "time"

// FeedbackEntry is a user-submitted rating for a medication, optionally
// carrying a price report. DrugID is not validated against the catalog;
// entries may reference codes that no longer resolve.
//
// The JSON field names match the persisted feedback blob and must not change
// without migrating stored data.
type FeedbackEntry struct {
	ID        string         `json:"id"`
	DrugID    string         `json:"drugId"`
	Rating    int            `json:"rating"`
	Comment   string         `json:"comment,omitempty"`
	PriceInfo *FeedbackPrice `json:"priceInfo,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

// FeedbackPrice is the inline price report attached to a feedback entry. It
// mirrors PriceQuote minus the LastUpdated stamp; the entry's own Timestamp
// covers recency.
type FeedbackPrice struct {
	Pharmacy string  `json:"pharmacy"`
	Price    float64 `json:"price"`
	Location string  `json:"location,omitempty"`
}
