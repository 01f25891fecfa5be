package dto

// TransactionRecord is one flattened journal: journal attributes, normalized
// amounts, account and currency projections, associations, notes, tags and
// every metadata field. Optional fields serialize as explicit nulls, never
// disappear from the payload.
type TransactionRecord struct {
	User                 int64  `json:"user"`
	TransactionJournalID int64  `json:"transaction_journal_id"`
	Type                 string `json:"type"`
	Date                 string `json:"date"`
	Order                int    `json:"order"`

	CurrencyID            *int64  `json:"currency_id"`
	CurrencyCode          *string `json:"currency_code"`
	CurrencySymbol        *string `json:"currency_symbol"`
	CurrencyDecimalPlaces *int    `json:"currency_decimal_places"`

	ForeignCurrencyID            *int64  `json:"foreign_currency_id"`
	ForeignCurrencyCode          *string `json:"foreign_currency_code"`
	ForeignCurrencySymbol        *string `json:"foreign_currency_symbol"`
	ForeignCurrencyDecimalPlaces *int    `json:"foreign_currency_decimal_places"`

	Amount        string  `json:"amount"`
	ForeignAmount *string `json:"foreign_amount"`

	Description string `json:"description"`

	SourceID   int64   `json:"source_id"`
	SourceName string  `json:"source_name"`
	SourceIBAN *string `json:"source_iban"`
	SourceType string  `json:"source_type"`

	DestinationID   int64   `json:"destination_id"`
	DestinationName string  `json:"destination_name"`
	DestinationIBAN *string `json:"destination_iban"`
	DestinationType string  `json:"destination_type"`

	BudgetID     *int64  `json:"budget_id"`
	BudgetName   *string `json:"budget_name"`
	CategoryID   *int64  `json:"category_id"`
	CategoryName *string `json:"category_name"`
	BillID       *int64  `json:"bill_id"`
	BillName     *string `json:"bill_name"`

	Reconciled bool     `json:"reconciled"`
	Notes      *string  `json:"notes"`
	Tags       []string `json:"tags"`

	InternalReference *string `json:"internal_reference"`
	SepaCC            *string `json:"sepa_cc"`
	SepaCtOp          *string `json:"sepa_ct_op"`
	SepaCtID          *string `json:"sepa_ct_id"`
	SepaDB            *string `json:"sepa_db"`
	SepaCountry       *string `json:"sepa_country"`
	SepaEP            *string `json:"sepa_ep"`
	SepaCI            *string `json:"sepa_ci"`
	SepaBatchID       *string `json:"sepa_batch_id"`
	BunqPaymentID     *string `json:"bunq_payment_id"`
	ImportHash        *string `json:"import_hash"`
	ImportHashV2      *string `json:"import_hash_v2"`
	ExternalID        *string `json:"external_id"`
	OriginalSource    *string `json:"original_source"`

	InterestDate *string `json:"interest_date"`
	BookDate     *string `json:"book_date"`
	ProcessDate  *string `json:"process_date"`
	DueDate      *string `json:"due_date"`
	PaymentDate  *string `json:"payment_date"`
	InvoiceDate  *string `json:"invoice_date"`
}

type TransactionGroupResponse struct {
	ID           int64                `json:"id"`
	CreatedAt    string               `json:"created_at"`
	UpdatedAt    string               `json:"updated_at"`
	User         int64                `json:"user"`
	GroupTitle   *string              `json:"group_title"`
	Transactions []*TransactionRecord `json:"transactions"`
	Links        []Link               `json:"links"`
}

type Link struct {
	Rel string `json:"rel"`
	URI string `json:"uri"`
}
