package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"finledger/internal/models"
)

// GroupRepository hydrates transaction groups for the transformer: the
// assembled entity shape for single-group reads and the pre-joined flat shape
// for bulk listing.
type GroupRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewGroupRepository(db *pgxpool.Pool, logger *zap.Logger) *GroupRepository {
	return &GroupRepository{
		db:     db,
		logger: logger,
	}
}

// GetByID returns a fully assembled group: journals ordered by (order, id),
// each with its legs and association links.
func (r *GroupRepository) GetByID(ctx context.Context, id int64) (*models.TransactionGroup, error) {
	query := squirrel.Select("id", "user_id", "title", "created_at", "updated_at").
		From("transaction_groups").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var group models.TransactionGroup
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&group.ID, &group.UserID, &group.Title, &group.CreatedAt, &group.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	group.Journals, err = r.journalsForGroup(ctx, group.ID)
	if err != nil {
		return nil, fmt.Errorf("journals for group %d: %w", group.ID, err)
	}

	return &group, nil
}

func (r *GroupRepository) journalsForGroup(ctx context.Context, groupID int64) ([]*models.TransactionJournal, error) {
	query := squirrel.Select(
		"id", "transaction_group_id", "user_id", "transaction_type", "date",
		`"order"`, "description", "created_at", "updated_at",
	).
		From("transaction_journals").
		Where(squirrel.Eq{"transaction_group_id": groupID}).
		OrderBy(`"order"`, "id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var journals []*models.TransactionJournal
	for rows.Next() {
		var journal models.TransactionJournal
		if err := rows.Scan(
			&journal.ID, &journal.GroupID, &journal.UserID, &journal.Type, &journal.Date,
			&journal.Order, &journal.Description, &journal.CreatedAt, &journal.UpdatedAt,
		); err != nil {
			return nil, err
		}
		journals = append(journals, &journal)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, journal := range journals {
		if journal.Transactions, err = r.legsForJournal(ctx, journal.ID); err != nil {
			return nil, fmt.Errorf("legs for journal %d: %w", journal.ID, err)
		}
		if journal.Budgets, err = r.linksForJournal(ctx, journal.ID, "budgets", "budget_transaction_journal", "budget_id"); err != nil {
			return nil, fmt.Errorf("budgets for journal %d: %w", journal.ID, err)
		}
		if journal.Categories, err = r.linksForJournal(ctx, journal.ID, "categories", "category_transaction_journal", "category_id"); err != nil {
			return nil, fmt.Errorf("categories for journal %d: %w", journal.ID, err)
		}
		if journal.Bills, err = r.linksForJournal(ctx, journal.ID, "bills", "bill_transaction_journal", "bill_id"); err != nil {
			return nil, fmt.Errorf("bills for journal %d: %w", journal.ID, err)
		}
	}

	return journals, nil
}

func (r *GroupRepository) legsForJournal(ctx context.Context, journalID int64) ([]*models.Transaction, error) {
	query := squirrel.Select(
		"t.id", "t.transaction_journal_id", "t.account_id", "a.name", "a.iban", "a.account_type",
		"t.amount", "t.foreign_amount", "t.reconciled",
		"c.id", "c.code", "c.symbol", "c.decimal_places",
		"fc.id", "fc.code", "fc.symbol", "fc.decimal_places",
	).
		From("transactions t").
		Join("accounts a ON a.id = t.account_id").
		LeftJoin("transaction_currencies c ON c.id = t.transaction_currency_id").
		LeftJoin("transaction_currencies fc ON fc.id = t.foreign_currency_id").
		Where(squirrel.Eq{"t.transaction_journal_id": journalID}).
		OrderBy("t.id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var legs []*models.Transaction
	for rows.Next() {
		var leg models.Transaction
		var currency, foreign nullableCurrency
		if err := rows.Scan(
			&leg.ID, &leg.JournalID, &leg.AccountID, &leg.AccountName, &leg.AccountIBAN, &leg.AccountType,
			&leg.Amount, &leg.ForeignAmount, &leg.Reconciled,
			&currency.id, &currency.code, &currency.symbol, &currency.decimalPlaces,
			&foreign.id, &foreign.code, &foreign.symbol, &foreign.decimalPlaces,
		); err != nil {
			return nil, err
		}
		leg.Currency = currency.toModel()
		leg.ForeignCurrency = foreign.toModel()
		legs = append(legs, &leg)
	}

	return legs, rows.Err()
}

func (r *GroupRepository) linksForJournal(ctx context.Context, journalID int64, table, linkTable, fk string) ([]models.ObjectLink, error) {
	query := squirrel.Select("x.id", "x.name").
		From(table + " x").
		Join(fmt.Sprintf("%s l ON l.%s = x.id", linkTable, fk)).
		Where(squirrel.Eq{"l.transaction_journal_id": journalID}).
		OrderBy("x.id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var links []models.ObjectLink
	for rows.Next() {
		var link models.ObjectLink
		if err := rows.Scan(&link.ID, &link.Name); err != nil {
			return nil, err
		}
		links = append(links, link)
	}

	return links, rows.Err()
}

// firstLinkLateral selects the first-linked association for a journal, the
// same first-by-id pick linksForJournal feeds into the entity path. A bare
// join here would multiply rows for journals with several links.
func firstLinkLateral(table, linkTable, fk, alias string) string {
	return fmt.Sprintf(
		"LEFT JOIN LATERAL (SELECT x.id, x.name FROM %s x JOIN %s l ON l.%s = x.id WHERE l.transaction_journal_id = j.id ORDER BY x.id LIMIT 1) %s ON TRUE",
		table, linkTable, fk, alias,
	)
}

// listFlatRowsQuery builds the bulk listing query. Pagination applies to
// group ids, not journal rows, so a split group's journals always land on
// the same page.
func listFlatRowsQuery(userID int64, limit, offset uint64) (string, []interface{}, error) {
	page := squirrel.Select("id").
		From("transaction_groups").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("id").
		Limit(limit).
		Offset(offset)

	return squirrel.Select(
		"g.id", "g.title",
		"j.id", "j.user_id", "j.transaction_type", "j.date", `j."order"`,
		"j.description", "j.created_at", "j.updated_at",
		"src.amount", "src.foreign_amount", "src.reconciled",
		"sa.id", "sa.name", "sa.iban", "sa.account_type",
		"da.id", "da.name", "da.iban", "da.account_type",
		"c.id", "c.code", "c.symbol", "c.decimal_places",
		"fc.id", "fc.code", "fc.symbol", "fc.decimal_places",
		"b.id", "b.name", "cat.id", "cat.name", "bill.id", "bill.name",
	).
		From("transaction_groups g").
		JoinClause(page.Prefix("JOIN (").Suffix(") page ON page.id = g.id")).
		Join("transaction_journals j ON j.transaction_group_id = g.id").
		Join("transactions src ON src.transaction_journal_id = j.id AND src.amount::numeric < 0").
		Join("transactions dst ON dst.transaction_journal_id = j.id AND dst.amount::numeric > 0").
		Join("accounts sa ON sa.id = src.account_id").
		Join("accounts da ON da.id = dst.account_id").
		LeftJoin("transaction_currencies c ON c.id = src.transaction_currency_id").
		LeftJoin("transaction_currencies fc ON fc.id = src.foreign_currency_id").
		JoinClause(firstLinkLateral("budgets", "budget_transaction_journal", "budget_id", "b")).
		JoinClause(firstLinkLateral("categories", "category_transaction_journal", "category_id", "cat")).
		JoinClause(firstLinkLateral("bills", "bill_transaction_journal", "bill_id", "bill")).
		OrderBy("g.id", `j."order"`, "j.id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

// ListFlatRows is the bulk path: one pre-joined row per journal, the source
// side taken from the negative leg and the destination from the positive
// one. Rows come back grouped by transaction group, journals in order.
func (r *GroupRepository) ListFlatRows(ctx context.Context, userID int64, limit, offset uint64) ([]*models.FlatRow, error) {
	sql, args, err := listFlatRowsQuery(userID, limit, offset)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.FlatRow
	for rows.Next() {
		var row models.FlatRow
		var currency, foreign nullableCurrency
		if err := rows.Scan(
			&row.GroupID, &row.GroupTitle,
			&row.JournalID, &row.UserID, &row.Type, &row.Date, &row.Order,
			&row.Description, &row.CreatedAt, &row.UpdatedAt,
			&row.Amount, &row.ForeignAmount, &row.Reconciled,
			&row.SourceID, &row.SourceName, &row.SourceIBAN, &row.SourceType,
			&row.DestinationID, &row.DestinationName, &row.DestinationIBAN, &row.DestinationType,
			&currency.id, &currency.code, &currency.symbol, &currency.decimalPlaces,
			&foreign.id, &foreign.code, &foreign.symbol, &foreign.decimalPlaces,
			&row.BudgetID, &row.BudgetName, &row.CategoryID, &row.CategoryName, &row.BillID, &row.BillName,
		); err != nil {
			return nil, err
		}
		row.Currency = currency.toModel()
		row.ForeignCurrency = foreign.toModel()
		result = append(result, &row)
	}

	return result, rows.Err()
}

// nullableCurrency collects LEFT JOINed currency columns before deciding
// whether a currency is attached at all.
type nullableCurrency struct {
	id            *int64
	code          *string
	symbol        *string
	decimalPlaces *int
}

func (c nullableCurrency) toModel() *models.TransactionCurrency {
	if c.id == nil {
		return nil
	}
	return &models.TransactionCurrency{
		ID:            *c.id,
		Code:          *c.code,
		Symbol:        *c.symbol,
		DecimalPlaces: *c.decimalPlaces,
	}
}
