package transform

import (
	"context"
	"strings"
	"time"

	"finledger/internal/dto"
	"finledger/internal/models"
)

// AccountInfo is the per-side account projection of a flattened record.
type AccountInfo struct {
	ID   int64
	Name string
	IBAN *string
	Type string
}

// journalSource supplies the per-journal fields that differ between the two
// input shapes. The assembled-entity path derives them through the resolvers;
// the flat-row path reads them straight off the pre-joined row. Everything
// downstream of this interface is shared, so the two paths cannot drift
// field-wise.
type journalSource interface {
	JournalID() int64
	UserID() int64
	TypeName() string
	Date() time.Time
	Order() int
	Description() string
	Reconciled() bool
	Amount() string
	ForeignAmount() *string
	Currency() CurrencyInfo
	ForeignCurrency() CurrencyInfo
	SourceAccount() AccountInfo
	DestinationAccount() AccountInfo
	Budget() NamedLink
	Category() NamedLink
	Bill() NamedLink
}

// entitySource adapts an assembled journal. Constructing it resolves both
// legs up front, so an unresolvable journal fails before any sidecar lookup
// is issued.
type entitySource struct {
	journal     *models.TransactionJournal
	source      *models.Transaction
	destination *models.Transaction
}

func newEntitySource(journal *models.TransactionJournal) (*entitySource, error) {
	source, err := SourceLeg(journal)
	if err != nil {
		return nil, err
	}
	destination, err := DestinationLeg(journal)
	if err != nil {
		return nil, err
	}
	return &entitySource{journal: journal, source: source, destination: destination}, nil
}

func (s *entitySource) JournalID() int64    { return s.journal.ID }
func (s *entitySource) UserID() int64       { return s.journal.UserID }
func (s *entitySource) TypeName() string    { return strings.ToLower(string(s.journal.Type)) }
func (s *entitySource) Date() time.Time     { return s.journal.Date }
func (s *entitySource) Order() int          { return s.journal.Order }
func (s *entitySource) Description() string { return s.journal.Description }
func (s *entitySource) Reconciled() bool    { return s.source.Reconciled }

func (s *entitySource) Amount() string {
	return NormalizeAmount(s.journal.Type, s.source.Amount)
}

func (s *entitySource) ForeignAmount() *string {
	return NormalizeForeignAmount(s.journal.Type, s.source.ForeignAmount)
}

func (s *entitySource) Currency() CurrencyInfo        { return ResolveCurrency(s.source.Currency) }
func (s *entitySource) ForeignCurrency() CurrencyInfo { return ResolveCurrency(s.source.ForeignCurrency) }

func (s *entitySource) SourceAccount() AccountInfo {
	return accountInfo(s.source)
}

func (s *entitySource) DestinationAccount() AccountInfo {
	return accountInfo(s.destination)
}

func (s *entitySource) Budget() NamedLink   { return FirstLink(s.journal.Budgets) }
func (s *entitySource) Category() NamedLink { return FirstLink(s.journal.Categories) }
func (s *entitySource) Bill() NamedLink     { return FirstLink(s.journal.Bills) }

func accountInfo(leg *models.Transaction) AccountInfo {
	return AccountInfo{
		ID:   leg.AccountID,
		Name: leg.AccountName,
		IBAN: leg.AccountIBAN,
		Type: leg.AccountType,
	}
}

// rowSource adapts a pre-joined flat row. Direction is precomputed upstream
// (the source join picks the negative leg), so amounts are always emitted in
// their positive form here.
type rowSource struct {
	row *models.FlatRow
}

func (s rowSource) JournalID() int64    { return s.row.JournalID }
func (s rowSource) UserID() int64       { return s.row.UserID }
func (s rowSource) TypeName() string    { return strings.ToLower(string(s.row.Type)) }
func (s rowSource) Date() time.Time     { return s.row.Date }
func (s rowSource) Order() int          { return s.row.Order }
func (s rowSource) Description() string { return s.row.Description }
func (s rowSource) Reconciled() bool    { return s.row.Reconciled }

func (s rowSource) Amount() string {
	return PositiveAmount(s.row.Amount)
}

func (s rowSource) ForeignAmount() *string {
	if s.row.ForeignAmount == nil {
		return nil
	}
	positive := PositiveAmount(*s.row.ForeignAmount)
	return &positive
}

func (s rowSource) Currency() CurrencyInfo        { return ResolveCurrency(s.row.Currency) }
func (s rowSource) ForeignCurrency() CurrencyInfo { return ResolveCurrency(s.row.ForeignCurrency) }

func (s rowSource) SourceAccount() AccountInfo {
	return AccountInfo{
		ID:   s.row.SourceID,
		Name: s.row.SourceName,
		IBAN: s.row.SourceIBAN,
		Type: s.row.SourceType,
	}
}

func (s rowSource) DestinationAccount() AccountInfo {
	return AccountInfo{
		ID:   s.row.DestinationID,
		Name: s.row.DestinationName,
		IBAN: s.row.DestinationIBAN,
		Type: s.row.DestinationType,
	}
}

func (s rowSource) Budget() NamedLink   { return namedLink(s.row.BudgetID, s.row.BudgetName) }
func (s rowSource) Category() NamedLink { return namedLink(s.row.CategoryID, s.row.CategoryName) }
func (s rowSource) Bill() NamedLink     { return namedLink(s.row.BillID, s.row.BillName) }

// buildRecord assembles the single wide record for one journal: the source's
// own fields plus metadata, notes and tags fetched from the collaborator.
func (t *GroupTransformer) buildRecord(ctx context.Context, src journalSource) (*dto.TransactionRecord, error) {
	journalID := src.JournalID()

	meta, err := t.meta.Resolve(ctx, journalID)
	if err != nil {
		return nil, err
	}

	notes, err := t.repo.NoteText(ctx, journalID)
	if err != nil {
		return nil, err
	}

	tags, err := t.repo.Tags(ctx, journalID)
	if err != nil {
		return nil, err
	}
	if tags == nil {
		tags = []string{}
	}

	currency := src.Currency()
	foreign := src.ForeignCurrency()
	source := src.SourceAccount()
	destination := src.DestinationAccount()
	budget := src.Budget()
	category := src.Category()
	bill := src.Bill()

	return &dto.TransactionRecord{
		User:                 src.UserID(),
		TransactionJournalID: journalID,
		Type:                 src.TypeName(),
		Date:                 src.Date().Format(time.RFC3339),
		Order:                src.Order(),

		CurrencyID:            currency.ID,
		CurrencyCode:          currency.Code,
		CurrencySymbol:        currency.Symbol,
		CurrencyDecimalPlaces: currency.DecimalPlaces,

		ForeignCurrencyID:            foreign.ID,
		ForeignCurrencyCode:          foreign.Code,
		ForeignCurrencySymbol:        foreign.Symbol,
		ForeignCurrencyDecimalPlaces: foreign.DecimalPlaces,

		Amount:        src.Amount(),
		ForeignAmount: src.ForeignAmount(),

		Description: src.Description(),

		SourceID:   source.ID,
		SourceName: source.Name,
		SourceIBAN: source.IBAN,
		SourceType: source.Type,

		DestinationID:   destination.ID,
		DestinationName: destination.Name,
		DestinationIBAN: destination.IBAN,
		DestinationType: destination.Type,

		BudgetID:     budget.ID,
		BudgetName:   budget.Name,
		CategoryID:   category.ID,
		CategoryName: category.Name,
		BillID:       bill.ID,
		BillName:     bill.Name,

		Reconciled: src.Reconciled(),
		Notes:      notes,
		Tags:       tags,

		InternalReference: meta.Field("internal_reference"),
		SepaCC:            meta.Field("sepa_cc"),
		SepaCtOp:          meta.Field("sepa_ct_op"),
		SepaCtID:          meta.Field("sepa_ct_id"),
		SepaDB:            meta.Field("sepa_db"),
		SepaCountry:       meta.Field("sepa_country"),
		SepaEP:            meta.Field("sepa_ep"),
		SepaCI:            meta.Field("sepa_ci"),
		SepaBatchID:       meta.Field("sepa_batch_id"),
		BunqPaymentID:     meta.Field("bunq_payment_id"),
		ImportHash:        meta.Field("import_hash"),
		ImportHashV2:      meta.Field("import_hash_v2"),
		ExternalID:        meta.Field("external_id"),
		OriginalSource:    meta.Field("original_source"),

		InterestDate: meta.Date("interest_date"),
		BookDate:     meta.Date("book_date"),
		ProcessDate:  meta.Date("process_date"),
		DueDate:      meta.Date("due_date"),
		PaymentDate:  meta.Date("payment_date"),
		InvoiceDate:  meta.Date("invoice_date"),
	}, nil
}
