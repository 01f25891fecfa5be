package transform

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"finledger/internal/models"
)

func strPtr(s string) *string { return &s }

func eur() *models.TransactionCurrency {
	return &models.TransactionCurrency{ID: 1, Code: "EUR", Symbol: "€", DecimalPlaces: 2}
}

func usd() *models.TransactionCurrency {
	return &models.TransactionCurrency{ID: 2, Code: "USD", Symbol: "$", DecimalPlaces: 2}
}

func groceriesGroup() *models.TransactionGroup {
	date := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
	created := time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC)
	return &models.TransactionGroup{
		ID:     1,
		UserID: 7,
		Title:  strPtr("Groceries"),
		Journals: []*models.TransactionJournal{
			{
				ID:          10,
				GroupID:     1,
				UserID:      7,
				Type:        models.TypeWithdrawal,
				Date:        date,
				Order:       0,
				Description: "Weekly shop",
				CreatedAt:   created,
				UpdatedAt:   created,
				Transactions: []*models.Transaction{
					{
						ID:          100,
						AccountID:   5,
						AccountName: "Checking",
						AccountIBAN: strPtr("NL00BANK0123456789"),
						AccountType: "asset",
						Amount:      "-12.50",
						Currency:    eur(),
					},
					{
						ID:          101,
						AccountID:   6,
						AccountName: "Store",
						AccountType: "expense",
						Amount:      "12.50",
						Currency:    eur(),
					},
				},
			},
		},
	}
}

func TestTransformGroupRoundTrip(t *testing.T) {
	repo := &mockJournalReader{
		notes: map[int64]string{10: "paid in cash"},
		tags:  map[int64][]string{10: {"food", "weekly"}},
	}
	transformer := NewGroupTransformer(repo, zap.NewNop())

	resp, err := transformer.TransformGroup(context.Background(), groceriesGroup())
	if err != nil {
		t.Fatalf("TransformGroup failed: %v", err)
	}

	if resp.ID != 1 {
		t.Errorf("ID = %d, want 1", resp.ID)
	}
	if resp.User != 7 {
		t.Errorf("User = %d, want 7", resp.User)
	}
	if resp.GroupTitle == nil || *resp.GroupTitle != "Groceries" {
		t.Errorf("GroupTitle = %v, want Groceries", resp.GroupTitle)
	}
	if resp.CreatedAt != "2024-05-02T12:00:00Z" {
		t.Errorf("CreatedAt = %q, want the first journal's timestamp", resp.CreatedAt)
	}
	if len(resp.Links) != 1 || resp.Links[0].Rel != "self" || resp.Links[0].URI != "/transactions/1" {
		t.Errorf("Links = %+v, want a single self link", resp.Links)
	}
	if len(resp.Transactions) != 1 {
		t.Fatalf("got %d transactions, want 1", len(resp.Transactions))
	}

	rec := resp.Transactions[0]
	if rec.TransactionJournalID != 10 {
		t.Errorf("TransactionJournalID = %d, want 10", rec.TransactionJournalID)
	}
	if rec.Type != "withdrawal" {
		t.Errorf("Type = %q, want withdrawal (lower-cased)", rec.Type)
	}
	if rec.Amount != "12.50" {
		t.Errorf("Amount = %q, want 12.50", rec.Amount)
	}
	if rec.SourceName != "Checking" || rec.DestinationName != "Store" {
		t.Errorf("source/destination = %q/%q, want Checking/Store", rec.SourceName, rec.DestinationName)
	}
	if rec.SourceIBAN == nil || *rec.SourceIBAN != "NL00BANK0123456789" {
		t.Errorf("SourceIBAN = %v, want the checking IBAN", rec.SourceIBAN)
	}
	if rec.DestinationIBAN != nil {
		t.Errorf("DestinationIBAN = %q, want nil", *rec.DestinationIBAN)
	}
	if rec.CurrencyCode == nil || *rec.CurrencyCode != "EUR" {
		t.Errorf("CurrencyCode = %v, want EUR", rec.CurrencyCode)
	}
	if rec.ForeignCurrencyID != nil || rec.ForeignAmount != nil {
		t.Error("foreign currency/amount should be nil when the leg has none")
	}
	if rec.Notes == nil || *rec.Notes != "paid in cash" {
		t.Errorf("Notes = %v, want paid in cash", rec.Notes)
	}
	if len(rec.Tags) != 2 {
		t.Errorf("Tags = %v, want two tags", rec.Tags)
	}

	// Associations absent: {id,name} pairs are present-with-null.
	if rec.BudgetID != nil || rec.BudgetName != nil {
		t.Error("budget should be nil/nil when the journal has none")
	}
	if rec.CategoryID != nil || rec.CategoryName != nil {
		t.Error("category should be nil/nil when the journal has none")
	}
	if rec.BillID != nil || rec.BillName != nil {
		t.Error("bill should be nil/nil when the journal has none")
	}
	if rec.SepaDB != nil || rec.InterestDate != nil {
		t.Error("metadata fields with no stored value should be nil")
	}
}

// Every catalog field must appear in the serialized record, null or not.
func TestRecordSerializesAllMetadataKeys(t *testing.T) {
	transformer := NewGroupTransformer(&mockJournalReader{}, zap.NewNop())

	resp, err := transformer.TransformGroup(context.Background(), groceriesGroup())
	if err != nil {
		t.Fatalf("TransformGroup failed: %v", err)
	}

	raw, err := json.Marshal(resp.Transactions[0])
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var record map[string]json.RawMessage
	if err := json.Unmarshal(raw, &record); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	keys := append([]string{}, MetaFieldKeys...)
	keys = append(keys, MetaDateKeys...)
	keys = append(keys, "budget_id", "budget_name", "category_id", "category_name",
		"bill_id", "bill_name", "foreign_amount", "foreign_currency_id", "notes")
	for _, key := range keys {
		value, ok := record[key]
		if !ok {
			t.Errorf("key %q missing from serialized record", key)
			continue
		}
		if string(value) != "null" {
			t.Errorf("key %q = %s, want null", key, value)
		}
	}
	if string(record["tags"]) != "[]" {
		t.Errorf("tags = %s, want []", record["tags"])
	}
}

func TestTransformGroupDepositSign(t *testing.T) {
	group := groceriesGroup()
	group.Journals[0].Type = models.TypeDeposit

	transformer := NewGroupTransformer(&mockJournalReader{}, zap.NewNop())
	resp, err := transformer.TransformGroup(context.Background(), group)
	if err != nil {
		t.Fatalf("TransformGroup failed: %v", err)
	}

	if got := resp.Transactions[0].Amount; got != "-12.50" {
		t.Errorf("deposit amount = %q, want -12.50", got)
	}
	if got := resp.Transactions[0].Type; got != "deposit" {
		t.Errorf("type = %q, want deposit", got)
	}
}

func TestTransformGroupForeignAmountFollowsPrimarySign(t *testing.T) {
	group := groceriesGroup()
	group.Journals[0].Type = models.TypeTransfer
	source := group.Journals[0].Transactions[0]
	source.ForeignAmount = strPtr("13.75")
	source.ForeignCurrency = usd()

	transformer := NewGroupTransformer(&mockJournalReader{}, zap.NewNop())
	resp, err := transformer.TransformGroup(context.Background(), group)
	if err != nil {
		t.Fatalf("TransformGroup failed: %v", err)
	}

	rec := resp.Transactions[0]
	if rec.Amount != "-12.50" {
		t.Errorf("Amount = %q, want -12.50", rec.Amount)
	}
	if rec.ForeignAmount == nil || *rec.ForeignAmount != "-13.75" {
		t.Errorf("ForeignAmount = %v, want -13.75 (same sign as primary)", rec.ForeignAmount)
	}
	if rec.ForeignCurrencyCode == nil || *rec.ForeignCurrencyCode != "USD" {
		t.Errorf("ForeignCurrencyCode = %v, want USD", rec.ForeignCurrencyCode)
	}
}

func TestTransformGroupCorrupt(t *testing.T) {
	group := groceriesGroup()
	// Both legs positive: no source side exists.
	group.Journals[0].Transactions[0].Amount = "12.50"

	transformer := NewGroupTransformer(&mockJournalReader{}, zap.NewNop())
	_, err := transformer.TransformGroup(context.Background(), group)
	if err == nil {
		t.Fatal("expected an error for a corrupt group")
	}

	var groupErr *GroupError
	if !errors.As(err, &groupErr) {
		t.Fatalf("error type = %T, want *GroupError", err)
	}
	if groupErr.GroupID != 1 {
		t.Errorf("GroupID = %d, want 1", groupErr.GroupID)
	}
	if groupErr.Error() != "transaction group #1 is broken" {
		t.Errorf("message = %q, want the sanitized group notice", groupErr.Error())
	}

	var invErr *InvariantError
	if !errors.As(err, &invErr) {
		t.Error("GroupError should wrap the underlying InvariantError")
	}
}

func TestTransformGroupEmpty(t *testing.T) {
	transformer := NewGroupTransformer(&mockJournalReader{}, zap.NewNop())
	_, err := transformer.TransformGroup(context.Background(), &models.TransactionGroup{ID: 3})

	var groupErr *GroupError
	if !errors.As(err, &groupErr) {
		t.Fatalf("error = %v, want *GroupError", err)
	}
	if groupErr.GroupID != 3 {
		t.Errorf("GroupID = %d, want 3", groupErr.GroupID)
	}
}

func TestTransformGroupCollaboratorFailurePropagates(t *testing.T) {
	lookupErr := errors.New("timeout")
	transformer := NewGroupTransformer(&mockJournalReader{err: lookupErr}, zap.NewNop())

	_, err := transformer.TransformGroup(context.Background(), groceriesGroup())
	if !errors.Is(err, lookupErr) {
		t.Fatalf("error = %v, want the collaborator error unchanged", err)
	}
	var groupErr *GroupError
	if errors.As(err, &groupErr) {
		t.Error("collaborator failures must not be disguised as corrupt groups")
	}
}

func TestTransformGroupIdempotent(t *testing.T) {
	repo := &mockJournalReader{
		fields: map[int64]map[string]string{10: {"external_id": "x-1", "sepa_ddb": "ref"}},
		dates: map[int64]map[string]time.Time{
			10: {"due_date": time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
		},
		notes: map[int64]string{10: "note"},
		tags:  map[int64][]string{10: {"a"}},
	}
	transformer := NewGroupTransformer(repo, zap.NewNop())

	first, err := transformer.TransformGroup(context.Background(), groceriesGroup())
	if err != nil {
		t.Fatalf("first transform failed: %v", err)
	}
	second, err := transformer.TransformGroup(context.Background(), groceriesGroup())
	if err != nil {
		t.Fatalf("second transform failed: %v", err)
	}

	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	if !bytes.Equal(a, b) {
		t.Error("two transforms of unchanged data should be byte-identical")
	}
}

func TestTransformRows(t *testing.T) {
	date := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
	created := time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC)
	rows := []*models.FlatRow{
		{
			GroupID:         1,
			GroupTitle:      strPtr("Groceries"),
			JournalID:       10,
			UserID:          7,
			Type:            models.TypeWithdrawal,
			Date:            date,
			Order:           0,
			Description:     "Weekly shop",
			CreatedAt:       created,
			UpdatedAt:       created,
			Amount:          "-12.50",
			SourceID:        5,
			SourceName:      "Checking",
			SourceType:      "asset",
			DestinationID:   6,
			DestinationName: "Store",
			DestinationType: "expense",
			Currency:        eur(),
			BudgetID:        int64Ptr(3),
			BudgetName:      strPtr("Food"),
		},
	}

	repo := &mockJournalReader{notes: map[int64]string{10: "paid in cash"}}
	transformer := NewGroupTransformer(repo, zap.NewNop())

	resp, err := transformer.TransformRows(context.Background(), 1, rows)
	if err != nil {
		t.Fatalf("TransformRows failed: %v", err)
	}

	rec := resp.Transactions[0]
	if rec.Amount != "12.50" {
		t.Errorf("row amount = %q, want the positive form", rec.Amount)
	}
	if rec.BudgetID == nil || *rec.BudgetID != 3 || rec.BudgetName == nil || *rec.BudgetName != "Food" {
		t.Errorf("budget = %v/%v, want 3/Food", rec.BudgetID, rec.BudgetName)
	}
	if rec.Notes == nil || *rec.Notes != "paid in cash" {
		t.Errorf("Notes = %v, want paid in cash", rec.Notes)
	}

	// Both paths produce the same schema: the serialized key sets match.
	entityResp, err := transformer.TransformGroup(context.Background(), groceriesGroup())
	if err != nil {
		t.Fatalf("TransformGroup failed: %v", err)
	}
	if got, want := jsonKeys(t, rec), jsonKeys(t, entityResp.Transactions[0]); !equalKeySets(got, want) {
		t.Errorf("row-path keys differ from entity-path keys:\n%v\n%v", got, want)
	}
}

func int64Ptr(v int64) *int64 { return &v }

func jsonKeys(t *testing.T, v interface{}) map[string]bool {
	t.Helper()
	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	keys := make(map[string]bool, len(m))
	for k := range m {
		keys[k] = true
	}
	return keys
}

func equalKeySets(a, b map[string]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if !b[k] {
			return false
		}
	}
	return true
}
