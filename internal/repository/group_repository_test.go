package repository

import (
	"strings"
	"testing"
)

// A journal with several linked budgets/categories/bills must still produce
// one listing row; each association is picked first-by-id inside its own
// lateral subquery, never through a bare join that multiplies rows.
func TestListFlatRowsQueryPicksFirstLinkPerJournal(t *testing.T) {
	sql, _, err := listFlatRowsQuery(7, 50, 0)
	if err != nil {
		t.Fatalf("listFlatRowsQuery failed: %v", err)
	}

	if got := strings.Count(sql, "LEFT JOIN LATERAL"); got != 3 {
		t.Errorf("got %d lateral association joins, want 3:\n%s", got, sql)
	}
	if got := strings.Count(sql, "ORDER BY x.id LIMIT 1"); got != 3 {
		t.Errorf("each association subquery must pick the first link by id, got %d of 3:\n%s", got, sql)
	}
	for _, linkTable := range []string{"budget_transaction_journal", "category_transaction_journal", "bill_transaction_journal"} {
		if !strings.Contains(sql, linkTable) {
			t.Errorf("missing %s join", linkTable)
		}
		if strings.Contains(sql, "LEFT JOIN "+linkTable) {
			t.Errorf("%s must not be joined bare; it multiplies rows for multi-link journals", linkTable)
		}
	}
}

// Limit/offset page over group ids, not journal rows, so a multi-journal
// split group never straddles a page boundary.
func TestListFlatRowsQueryPaginatesGroups(t *testing.T) {
	sql, args, err := listFlatRowsQuery(7, 5, 10)
	if err != nil {
		t.Fatalf("listFlatRowsQuery failed: %v", err)
	}

	if !strings.Contains(sql, "SELECT id FROM transaction_groups WHERE user_id = $1 ORDER BY id LIMIT 5 OFFSET 10") {
		t.Errorf("pagination must apply to group ids in a subquery:\n%s", sql)
	}
	if !strings.Contains(sql, ") page ON page.id = g.id") {
		t.Errorf("group rows must join against the paged id set:\n%s", sql)
	}
	if !strings.HasSuffix(sql, `ORDER BY g.id, j."order", j.id`) {
		t.Errorf("journal rows must not be limited after ordering:\n%s", sql)
	}
	if len(args) != 1 || args[0] != int64(7) {
		t.Errorf("args = %v, want just the user id", args)
	}
}
