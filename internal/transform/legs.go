package transform

import (
	"strings"

	"github.com/shopspring/decimal"

	"finledger/internal/models"
)

// firstMatching returns the first leg satisfying pred. Selection is
// deliberately first-match rather than uniqueness-checked: a journal with
// more than two legs surfaces only the first leg of each sign, and the rest
// are not represented in the flattened record.
func firstMatching(legs []*models.Transaction, pred func(*models.Transaction) bool) (*models.Transaction, bool) {
	for _, leg := range legs {
		if pred(leg) {
			return leg, true
		}
	}
	return nil, false
}

// amountSign classifies a stored decimal string as negative, zero or
// positive. Unparseable amounts count as zero and therefore match neither
// side.
func amountSign(amount string) int {
	d, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return 0
	}
	return d.Sign()
}

// SourceLeg finds the journal's source side: the first leg with a negative
// amount.
func SourceLeg(journal *models.TransactionJournal) (*models.Transaction, error) {
	leg, ok := firstMatching(journal.Transactions, func(t *models.Transaction) bool {
		return amountSign(t.Amount) < 0
	})
	if !ok {
		return nil, &InvariantError{JournalID: journal.ID, Missing: "source"}
	}
	return leg, nil
}

// DestinationLeg finds the journal's destination side: the first leg with a
// positive amount.
func DestinationLeg(journal *models.TransactionJournal) (*models.Transaction, error) {
	leg, ok := firstMatching(journal.Transactions, func(t *models.Transaction) bool {
		return amountSign(t.Amount) > 0
	})
	if !ok {
		return nil, &InvariantError{JournalID: journal.ID, Missing: "destination"}
	}
	return leg, nil
}
