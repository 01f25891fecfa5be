package transform

import (
	"context"
	"errors"
	"testing"
	"time"
)

// mockJournalReader is an in-memory stand-in for the storage collaborator.
type mockJournalReader struct {
	fields map[int64]map[string]string
	dates  map[int64]map[string]time.Time
	notes  map[int64]string
	tags   map[int64][]string
	err    error
}

func (m *mockJournalReader) MetaFields(_ context.Context, journalID int64, keys []string) (map[string]string, error) {
	if m.err != nil {
		return nil, m.err
	}
	values := make(map[string]string)
	for _, key := range keys {
		if v, ok := m.fields[journalID][key]; ok {
			values[key] = v
		}
	}
	return values, nil
}

func (m *mockJournalReader) MetaDateFields(_ context.Context, journalID int64, keys []string) (map[string]time.Time, error) {
	if m.err != nil {
		return nil, m.err
	}
	values := make(map[string]time.Time)
	for _, key := range keys {
		if v, ok := m.dates[journalID][key]; ok {
			values[key] = v
		}
	}
	return values, nil
}

func (m *mockJournalReader) NoteText(_ context.Context, journalID int64) (*string, error) {
	if m.err != nil {
		return nil, m.err
	}
	if note, ok := m.notes[journalID]; ok {
		return &note, nil
	}
	return nil, nil
}

func (m *mockJournalReader) Tags(_ context.Context, journalID int64) ([]string, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.tags[journalID], nil
}

func TestMetaResolverDefaultsMissingKeysToNil(t *testing.T) {
	repo := &mockJournalReader{
		fields: map[int64]map[string]string{
			10: {"external_id": "abc-123"},
		},
	}
	resolver := NewMetaResolver(repo, MetaFieldKeys, MetaDateKeys)

	values, err := resolver.Resolve(context.Background(), 10)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if got := values.Field("external_id"); got == nil || *got != "abc-123" {
		t.Errorf("external_id = %v, want abc-123", got)
	}
	for _, key := range MetaFieldKeys {
		if key == "external_id" {
			continue
		}
		if got := values.Field(key); got != nil {
			t.Errorf("field %q = %q, want nil", key, *got)
		}
	}
	for _, key := range MetaDateKeys {
		if got := values.Date(key); got != nil {
			t.Errorf("date %q = %q, want nil", key, *got)
		}
	}
}

// The sepa_db field has always been stored under "sepa_ddb"; the resolver
// must keep reading the historical key.
func TestMetaResolverSepaDBLookupKey(t *testing.T) {
	repo := &mockJournalReader{
		fields: map[int64]map[string]string{
			10: {
				"sepa_ddb": "direct-debit-ref",
				"sepa_db":  "never-read",
			},
		},
	}
	resolver := NewMetaResolver(repo, MetaFieldKeys, MetaDateKeys)

	values, err := resolver.Resolve(context.Background(), 10)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	got := values.Field("sepa_db")
	if got == nil || *got != "direct-debit-ref" {
		t.Errorf("sepa_db = %v, want the value stored under sepa_ddb", got)
	}
}

func TestMetaResolverFormatsDatesRFC3339(t *testing.T) {
	book := time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)
	repo := &mockJournalReader{
		dates: map[int64]map[string]time.Time{
			10: {"book_date": book},
		},
	}
	resolver := NewMetaResolver(repo, MetaFieldKeys, MetaDateKeys)

	values, err := resolver.Resolve(context.Background(), 10)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	got := values.Date("book_date")
	if got == nil || *got != "2024-03-15T09:30:00Z" {
		t.Errorf("book_date = %v, want 2024-03-15T09:30:00Z", got)
	}
}

func TestMetaResolverPropagatesLookupErrors(t *testing.T) {
	lookupErr := errors.New("connection reset")
	resolver := NewMetaResolver(&mockJournalReader{err: lookupErr}, MetaFieldKeys, MetaDateKeys)

	_, err := resolver.Resolve(context.Background(), 10)
	if !errors.Is(err, lookupErr) {
		t.Fatalf("error = %v, want wrapped lookup error", err)
	}
}

func TestMetaCatalogSizes(t *testing.T) {
	if len(MetaFieldKeys) != 14 {
		t.Errorf("MetaFieldKeys has %d keys, want 14", len(MetaFieldKeys))
	}
	if len(MetaDateKeys) != 6 {
		t.Errorf("MetaDateKeys has %d keys, want 6", len(MetaDateKeys))
	}
}
