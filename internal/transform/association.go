package transform

import "finledger/internal/models"

// NamedLink is the {id, name} projection of a budget, category or bill.
// Both fields are nil together when the journal has none.
type NamedLink struct {
	ID   *int64
	Name *string
}

// FirstLink projects the first element of an ordered association collection.
// Journals carry at most one budget, category and bill in practice; if more
// are linked, only the first is surfaced.
func FirstLink(links []models.ObjectLink) NamedLink {
	if len(links) == 0 {
		return NamedLink{}
	}
	id := links[0].ID
	name := links[0].Name
	return NamedLink{ID: &id, Name: &name}
}

// namedLink builds a NamedLink from pre-resolved row columns.
func namedLink(id *int64, name *string) NamedLink {
	if id == nil {
		return NamedLink{}
	}
	return NamedLink{ID: id, Name: name}
}
