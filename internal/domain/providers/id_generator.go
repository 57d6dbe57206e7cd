package providers

// IDGenerator produces unique identifiers for newly created feedback entries.
// It is an interface so tests can substitute a deterministic generator.
type IDGenerator interface {
	NewID() string
}
