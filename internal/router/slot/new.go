package slot

import (
	"crm-intent-router/internal/router/rules"
)

// Extractor pulls typed slot values out of an utterance.
// It holds only read-only tables and is safe for concurrent use.
type Extractor struct {
	slots rules.Slots
}

// New creates an Extractor over the given slot tables.
func New(slots rules.Slots) *Extractor {
	return &Extractor{
		slots: slots,
	}
}
