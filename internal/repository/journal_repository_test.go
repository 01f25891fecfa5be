package repository

import (
	"strings"
	"testing"
	"time"
)

func TestConvertMetaDates(t *testing.T) {
	raw := map[string]string{
		"book_date":    "2024-03-15T09:30:00Z",
		"due_date":     "2024-06-01 08:00:00",
		"invoice_date": "2024-06-02",
	}

	values, err := convertMetaDates(raw)
	if err != nil {
		t.Fatalf("convertMetaDates failed: %v", err)
	}

	want := map[string]time.Time{
		"book_date":    time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC),
		"due_date":     time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC),
		"invoice_date": time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC),
	}
	for name, wantTime := range want {
		if got, ok := values[name]; !ok || !got.Equal(wantTime) {
			t.Errorf("%s = %v, want %v", name, got, wantTime)
		}
	}
}

// A stored date that cannot be parsed fails the lookup. Dropping it would be
// indistinguishable from the date never having been set.
func TestConvertMetaDatesRejectsUnparseableValue(t *testing.T) {
	_, err := convertMetaDates(map[string]string{
		"book_date":    "2024-03-15T09:30:00Z",
		"payment_date": "next tuesday",
	})
	if err == nil {
		t.Fatal("expected an error for an unparseable date")
	}
	if !strings.Contains(err.Error(), "payment_date") {
		t.Errorf("error = %q, want the offending key named", err)
	}
}

func TestDecodeMetaValue(t *testing.T) {
	if got := decodeMetaValue(`"EREF-2026-000417"`); got != "EREF-2026-000417" {
		t.Errorf("JSON-encoded value = %q, want the unwrapped string", got)
	}
	if got := decodeMetaValue("legacy-plain-value"); got != "legacy-plain-value" {
		t.Errorf("bare value = %q, want it passed through", got)
	}
}
