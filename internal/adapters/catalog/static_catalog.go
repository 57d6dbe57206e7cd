package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/mediscan/mediscan/internal/domain/entities"
	"github.com/mediscan/mediscan/internal/domain/repositories"
	apperrors "github.com/mediscan/mediscan/pkg/errors"
)

// StaticCatalog implements MedicationRepository over a fixed in-memory
// mapping seeded at construction. Records are never mutated after that, so
// lookups are safe from any goroutine.
type StaticCatalog struct {
	records map[string]*entities.MedicationRecord
	order   []string
}

// NewStaticCatalog creates a catalog seeded with the demo medication records.
func NewStaticCatalog() repositories.MedicationRepository {
	c := &StaticCatalog{records: make(map[string]*entities.MedicationRecord)}
	for _, rec := range seedRecords() {
		c.records[rec.Code] = rec
		c.order = append(c.order, rec.Code)
	}
	return c
}

// Lookup resolves a decoded code with a case-sensitive exact match.
func (c *StaticCatalog) Lookup(ctx context.Context, code string) (*entities.MedicationRecord, error) {
	rec, ok := c.records[code]
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("no information found for code: %s", code))
	}
	return rec, nil
}

// List returns every record in catalog order.
func (c *StaticCatalog) List(ctx context.Context) ([]*entities.MedicationRecord, error) {
	out := make([]*entities.MedicationRecord, 0, len(c.order))
	for _, code := range c.order {
		out = append(out, c.records[code])
	}
	return out, nil
}

func mustDate(value string) time.Time {
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		panic(fmt.Sprintf("bad seed date %q: %v", value, err))
	}
	return t
}
