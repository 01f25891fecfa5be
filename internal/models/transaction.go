package models

import "time"

type TransactionType string

const (
	TypeWithdrawal     TransactionType = "Withdrawal"
	TypeDeposit        TransactionType = "Deposit"
	TypeTransfer       TransactionType = "Transfer"
	TypeOpeningBalance TransactionType = "Opening balance"
	TypeReconciliation TransactionType = "Reconciliation"
)

// TransactionGroup is an ordered set of journals presented to API clients as
// one transaction (e.g. a split). Read-only from this service's perspective.
type TransactionGroup struct {
	ID        int64
	UserID    int64
	Title     *string
	CreatedAt time.Time
	UpdatedAt time.Time
	Journals  []*TransactionJournal
}

// TransactionJournal is one balanced financial event. Its legs are assumed to
// sum to zero; in the common case exactly two exist, one negative and one
// positive.
type TransactionJournal struct {
	ID          int64
	GroupID     int64
	UserID      int64
	Type        TransactionType
	Date        time.Time
	Order       int
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Transactions []*Transaction

	Budgets    []ObjectLink
	Categories []ObjectLink
	Bills      []ObjectLink
}

// Transaction is a single signed leg of a journal, tied to one account.
// Amounts are kept as the stored decimal strings.
type Transaction struct {
	ID            int64
	JournalID     int64
	AccountID     int64
	AccountName   string
	AccountIBAN   *string
	AccountType   string
	Amount        string
	ForeignAmount *string
	Reconciled    bool

	Currency        *TransactionCurrency
	ForeignCurrency *TransactionCurrency
}

type TransactionCurrency struct {
	ID            int64
	Code          string
	Symbol        string
	DecimalPlaces int
}

// ObjectLink is the {id, name} projection of a budget, category or bill
// attached to a journal.
type ObjectLink struct {
	ID   int64
	Name string
}

// FlatRow is one pre-joined journal row from the bulk listing query: legs,
// accounts, currency and association columns already resolved by SQL, with
// the source side taken from the negative leg and the destination from the
// positive one.
type FlatRow struct {
	GroupID    int64
	GroupTitle *string

	JournalID   int64
	UserID      int64
	Type        TransactionType
	Date        time.Time
	Order       int
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Amount        string
	ForeignAmount *string
	Reconciled    bool

	SourceID        int64
	SourceName      string
	SourceIBAN      *string
	SourceType      string
	DestinationID   int64
	DestinationName string
	DestinationIBAN *string
	DestinationType string

	Currency        *TransactionCurrency
	ForeignCurrency *TransactionCurrency

	BudgetID     *int64
	BudgetName   *string
	CategoryID   *int64
	CategoryName *string
	BillID       *int64
	BillName     *string
}
