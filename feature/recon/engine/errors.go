package engine

import (
	"fmt"

	"ledger-recon/feature/recon/models"
)

// InvalidRecordError reports an input record that violates an engine
// invariant. The whole run aborts before the first iteration: partial input
// cannot be trusted, so no partial audit trail is produced.
type InvalidRecordError struct {
	// Side is the record set the offending record belongs to.
	Side models.Side

	// Index is the record's position in its input sequence.
	Index int

	// ID is the record's identifier, possibly empty.
	ID string

	// Reason describes the violated invariant.
	Reason string
}

func (e *InvalidRecordError) Error() string {
	return fmt.Sprintf("invalid %s record at index %d (id %q): %s", e.Side, e.Index, e.ID, e.Reason)
}

// ConfigurationError reports an unknown or out-of-range engine option.
// It is returned at construction time, before any run starts.
type ConfigurationError struct {
	// Option is the offending configuration option.
	Option string

	// Reason describes why the value was rejected.
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration option %q: %s", e.Option, e.Reason)
}
