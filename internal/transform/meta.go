package transform

import (
	"context"
	"fmt"
	"time"
)

// MetaResolver resolves the fixed metadata catalogs for one journal through
// the storage collaborator. The catalogs are injected so callers can narrow
// them; the package-level MetaFieldKeys/MetaDateKeys are the production set.
type MetaResolver struct {
	repo      JournalReader
	fieldKeys []string
	dateKeys  []string
}

func NewMetaResolver(repo JournalReader, fieldKeys, dateKeys []string) *MetaResolver {
	return &MetaResolver{
		repo:      repo,
		fieldKeys: fieldKeys,
		dateKeys:  dateKeys,
	}
}

// Resolve fetches the journal's metadata in two lookups. Lookup errors are
// returned as-is; no defaults are substituted.
func (r *MetaResolver) Resolve(ctx context.Context, journalID int64) (*MetaValues, error) {
	lookup := make([]string, len(r.fieldKeys))
	for i, key := range r.fieldKeys {
		lookup[i] = metaLookupKey(key)
	}

	fields, err := r.repo.MetaFields(ctx, journalID, lookup)
	if err != nil {
		return nil, fmt.Errorf("meta fields for journal %d: %w", journalID, err)
	}

	dates, err := r.repo.MetaDateFields(ctx, journalID, r.dateKeys)
	if err != nil {
		return nil, fmt.Errorf("meta date fields for journal %d: %w", journalID, err)
	}

	return &MetaValues{fields: fields, dates: dates}, nil
}

// MetaValues wraps the fetched mappings behind accessors that default every
// missing key to nil, so presence checks don't leak into record assembly.
type MetaValues struct {
	fields map[string]string
	dates  map[string]time.Time
}

// Field returns the value of a string metadata field, or nil.
func (v *MetaValues) Field(key string) *string {
	value, ok := v.fields[metaLookupKey(key)]
	if !ok {
		return nil
	}
	return &value
}

// Date returns a date metadata field rendered as RFC 3339, or nil.
func (v *MetaValues) Date(key string) *string {
	t, ok := v.dates[key]
	if !ok {
		return nil
	}
	rendered := t.Format(time.RFC3339)
	return &rendered
}
