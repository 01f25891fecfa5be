package transform

import (
	"context"
	"time"
)

// JournalReader is the storage collaborator the transformer pulls sidecar
// data from, all of it keyed by journal id. Implementations may batch or
// parallelize lookups across journals; resolution order has no effect on the
// output. Lookup failures must be returned, not defaulted: silently blanking
// financial metadata is worse than failing the call.
type JournalReader interface {
	// MetaFields returns the stored values for the given keys. Keys without
	// a value are simply absent from the map.
	MetaFields(ctx context.Context, journalID int64, keys []string) (map[string]string, error)

	// MetaDateFields is MetaFields for timestamp-valued keys.
	MetaDateFields(ctx context.Context, journalID int64, keys []string) (map[string]time.Time, error)

	// NoteText returns the journal's free-text note, or nil when it has none.
	NoteText(ctx context.Context, journalID int64) (*string, error)

	// Tags returns the journal's tags in stable order.
	Tags(ctx context.Context, journalID int64) ([]string, error)
}
