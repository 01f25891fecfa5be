package main

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"finledger/internal/models"
	"finledger/pkg/auth"
	"finledger/pkg/config"
	"finledger/pkg/logger"
	"finledger/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Seeds a demo ledger: schema, one user, currencies, accounts and a few
// transaction groups covering the shapes the API serves (withdrawal with
// metadata and tags, deposit, multi-currency transfer, split group).
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	// Connect to database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	appLogger.Info("Starting database seeding...")

	if err := createSchema(ctx, db); err != nil {
		appLogger.Fatal("Failed to create schema", zap.Error(err))
	}

	seeder := &seeder{db: db, logger: appLogger, now: time.Now()}
	if err := seeder.run(ctx); err != nil {
		appLogger.Fatal("Failed to seed demo data", zap.Error(err))
	}

	appLogger.Info("Database seeding completed successfully!")
}

func createSchema(ctx context.Context, db *pgxpool.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			username VARCHAR(255) NOT NULL,
			email VARCHAR(255) NOT NULL UNIQUE,
			password VARCHAR(255) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS transaction_currencies (
			id BIGSERIAL PRIMARY KEY,
			code VARCHAR(12) NOT NULL UNIQUE,
			symbol VARCHAR(12) NOT NULL,
			decimal_places INT NOT NULL DEFAULT 2
		)`,
		`CREATE TABLE IF NOT EXISTS accounts (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users(id),
			name VARCHAR(255) NOT NULL,
			iban VARCHAR(64),
			account_type VARCHAR(64) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS transaction_groups (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users(id),
			title VARCHAR(255),
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS transaction_journals (
			id BIGSERIAL PRIMARY KEY,
			transaction_group_id BIGINT NOT NULL REFERENCES transaction_groups(id),
			user_id BIGINT NOT NULL REFERENCES users(id),
			transaction_type VARCHAR(64) NOT NULL,
			date TIMESTAMPTZ NOT NULL,
			"order" INT NOT NULL DEFAULT 0,
			description VARCHAR(1024) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS transactions (
			id BIGSERIAL PRIMARY KEY,
			transaction_journal_id BIGINT NOT NULL REFERENCES transaction_journals(id),
			account_id BIGINT NOT NULL REFERENCES accounts(id),
			transaction_currency_id BIGINT REFERENCES transaction_currencies(id),
			foreign_currency_id BIGINT REFERENCES transaction_currencies(id),
			amount VARCHAR(64) NOT NULL,
			foreign_amount VARCHAR(64),
			reconciled BOOLEAN NOT NULL DEFAULT FALSE
		)`,
		`CREATE TABLE IF NOT EXISTS budgets (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users(id),
			name VARCHAR(255) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS categories (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users(id),
			name VARCHAR(255) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS bills (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users(id),
			name VARCHAR(255) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS budget_transaction_journal (
			budget_id BIGINT NOT NULL REFERENCES budgets(id),
			transaction_journal_id BIGINT NOT NULL REFERENCES transaction_journals(id),
			PRIMARY KEY (budget_id, transaction_journal_id)
		)`,
		`CREATE TABLE IF NOT EXISTS category_transaction_journal (
			category_id BIGINT NOT NULL REFERENCES categories(id),
			transaction_journal_id BIGINT NOT NULL REFERENCES transaction_journals(id),
			PRIMARY KEY (category_id, transaction_journal_id)
		)`,
		`CREATE TABLE IF NOT EXISTS bill_transaction_journal (
			bill_id BIGINT NOT NULL REFERENCES bills(id),
			transaction_journal_id BIGINT NOT NULL REFERENCES transaction_journals(id),
			PRIMARY KEY (bill_id, transaction_journal_id)
		)`,
		`CREATE TABLE IF NOT EXISTS journal_meta (
			id BIGSERIAL PRIMARY KEY,
			transaction_journal_id BIGINT NOT NULL REFERENCES transaction_journals(id),
			name VARCHAR(255) NOT NULL,
			data TEXT NOT NULL,
			UNIQUE (transaction_journal_id, name)
		)`,
		`CREATE TABLE IF NOT EXISTS notes (
			id BIGSERIAL PRIMARY KEY,
			noteable_id BIGINT NOT NULL,
			noteable_type VARCHAR(255) NOT NULL,
			text TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS tags (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users(id),
			tag VARCHAR(255) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS tag_transaction_journal (
			tag_id BIGINT NOT NULL REFERENCES tags(id),
			transaction_journal_id BIGINT NOT NULL REFERENCES transaction_journals(id),
			PRIMARY KEY (tag_id, transaction_journal_id)
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}

	return nil
}

type seeder struct {
	db     *pgxpool.Pool
	logger *zap.Logger
	now    time.Time
}

func (s *seeder) run(ctx context.Context) error {
	// Re-running the seeder against a populated database is a no-op.
	var count int
	if err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE email = $1`, "demo@finledger.local").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		s.logger.Info("Demo user already exists, skipping seed")
		return nil
	}

	hashedPassword, err := auth.HashPassword("demo-password")
	if err != nil {
		return err
	}

	userID, err := s.insertReturningID(ctx, squirrel.Insert("users").
		Columns("username", "email", "password", "created_at", "updated_at").
		Values("demo", "demo@finledger.local", hashedPassword, s.now, s.now))
	if err != nil {
		return err
	}
	s.logger.Info("Created demo user", zap.Int64("user_id", userID))

	eurID, err := s.insertReturningID(ctx, squirrel.Insert("transaction_currencies").
		Columns("code", "symbol", "decimal_places").
		Values("EUR", "€", 2))
	if err != nil {
		return err
	}
	usdID, err := s.insertReturningID(ctx, squirrel.Insert("transaction_currencies").
		Columns("code", "symbol", "decimal_places").
		Values("USD", "$", 2))
	if err != nil {
		return err
	}

	checkingID, err := s.insertAccount(ctx, userID, "Checking account", "NL18RABO0326747238", "Asset account")
	if err != nil {
		return err
	}
	savingsID, err := s.insertAccount(ctx, userID, "Savings account", "NL52ABNA0517164300", "Asset account")
	if err != nil {
		return err
	}
	grocerID, err := s.insertAccount(ctx, userID, "Albert Heijn", "", "Expense account")
	if err != nil {
		return err
	}
	landlordID, err := s.insertAccount(ctx, userID, "Landlord", "", "Expense account")
	if err != nil {
		return err
	}
	employerID, err := s.insertAccount(ctx, userID, "Employer Ltd", "", "Revenue account")
	if err != nil {
		return err
	}

	groceriesBudget, err := s.insertReturningID(ctx, squirrel.Insert("budgets").
		Columns("user_id", "name").Values(userID, "Groceries"))
	if err != nil {
		return err
	}
	dailyCategory, err := s.insertReturningID(ctx, squirrel.Insert("categories").
		Columns("user_id", "name").Values(userID, "Daily expenses"))
	if err != nil {
		return err
	}
	rentBill, err := s.insertReturningID(ctx, squirrel.Insert("bills").
		Columns("user_id", "name").Values(userID, "Rent"))
	if err != nil {
		return err
	}

	// Group 1: a grocery withdrawal with metadata, a note and tags.
	groupID, journalID, err := s.insertJournal(ctx, userID, "Weekly groceries", models.TypeWithdrawal, s.now.AddDate(0, 0, -3), "Weekly groceries")
	if err != nil {
		return err
	}
	if err := s.insertLegs(ctx, journalID, checkingID, grocerID, "-52.75", "52.75", eurID, nil, nil); err != nil {
		return err
	}
	if err := s.link(ctx, "budget_transaction_journal", "budget_id", groceriesBudget, journalID); err != nil {
		return err
	}
	if err := s.link(ctx, "category_transaction_journal", "category_id", dailyCategory, journalID); err != nil {
		return err
	}
	if err := s.insertMeta(ctx, journalID, map[string]string{
		"sepa_ct_id":         "EREF-2026-000417",
		"sepa_ddb":           "NL98ZZZ999999990000",
		"internal_reference": "weekly-run",
		"external_id":        "bank-74113",
	}); err != nil {
		return err
	}
	if err := s.insertMetaDate(ctx, journalID, "book_date", s.now.AddDate(0, 0, -2)); err != nil {
		return err
	}
	if err := s.insertNote(ctx, journalID, "Includes the birthday cake."); err != nil {
		return err
	}
	if err := s.insertTags(ctx, userID, journalID, "groceries", "weekly"); err != nil {
		return err
	}
	s.logger.Info("Created withdrawal group", zap.Int64("group_id", groupID))

	// Group 2: salary deposit.
	groupID, journalID, err = s.insertJournal(ctx, userID, "Salary", models.TypeDeposit, s.now.AddDate(0, 0, -14), "Salary August")
	if err != nil {
		return err
	}
	if err := s.insertLegs(ctx, journalID, employerID, checkingID, "-2800.00", "2800.00", eurID, nil, nil); err != nil {
		return err
	}
	s.logger.Info("Created deposit group", zap.Int64("group_id", groupID))

	// Group 3: transfer to savings with a foreign amount.
	foreignAmount := "540.00"
	groupID, journalID, err = s.insertJournal(ctx, userID, "To savings", models.TypeTransfer, s.now.AddDate(0, 0, -7), "Monthly savings transfer")
	if err != nil {
		return err
	}
	if err := s.insertLegs(ctx, journalID, checkingID, savingsID, "-500.00", "500.00", eurID, &usdID, &foreignAmount); err != nil {
		return err
	}
	s.logger.Info("Created transfer group", zap.Int64("group_id", groupID))

	// Group 4: a split withdrawal, two journals in one group.
	groupID, err = s.insertReturningID(ctx, squirrel.Insert("transaction_groups").
		Columns("user_id", "title", "created_at", "updated_at").
		Values(userID, "Rent and utilities", s.now, s.now))
	if err != nil {
		return err
	}
	for i, part := range []struct {
		description string
		amount      string
	}{
		{"Rent September", "1200.00"},
		{"Utilities September", "140.50"},
	} {
		journalID, err = s.insertReturningID(ctx, squirrel.Insert("transaction_journals").
			Columns("transaction_group_id", "user_id", "transaction_type", "date", `"order"`, "description", "created_at", "updated_at").
			Values(groupID, userID, models.TypeWithdrawal, s.now.AddDate(0, 0, -1), i, part.description, s.now, s.now))
		if err != nil {
			return err
		}
		if err := s.insertLegs(ctx, journalID, checkingID, landlordID, "-"+part.amount, part.amount, eurID, nil, nil); err != nil {
			return err
		}
		if err := s.link(ctx, "bill_transaction_journal", "bill_id", rentBill, journalID); err != nil {
			return err
		}
	}
	s.logger.Info("Created split group", zap.Int64("group_id", groupID))

	return nil
}

func (s *seeder) insertReturningID(ctx context.Context, builder squirrel.InsertBuilder) (int64, error) {
	sql, args, err := builder.Suffix("RETURNING id").PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return 0, err
	}
	var id int64
	err = s.db.QueryRow(ctx, sql, args...).Scan(&id)
	return id, err
}

func (s *seeder) insertAccount(ctx context.Context, userID int64, name, iban, accountType string) (int64, error) {
	var ibanValue interface{}
	if iban != "" {
		ibanValue = iban
	}
	return s.insertReturningID(ctx, squirrel.Insert("accounts").
		Columns("user_id", "name", "iban", "account_type").
		Values(userID, name, ibanValue, accountType))
}

// insertJournal creates a single-journal group and returns both ids.
func (s *seeder) insertJournal(ctx context.Context, userID int64, title string, txType models.TransactionType, date time.Time, description string) (int64, int64, error) {
	groupID, err := s.insertReturningID(ctx, squirrel.Insert("transaction_groups").
		Columns("user_id", "title", "created_at", "updated_at").
		Values(userID, title, s.now, s.now))
	if err != nil {
		return 0, 0, err
	}

	journalID, err := s.insertReturningID(ctx, squirrel.Insert("transaction_journals").
		Columns("transaction_group_id", "user_id", "transaction_type", "date", `"order"`, "description", "created_at", "updated_at").
		Values(groupID, userID, txType, date, 0, description, s.now, s.now))
	if err != nil {
		return 0, 0, err
	}

	return groupID, journalID, nil
}

func (s *seeder) insertLegs(ctx context.Context, journalID, sourceAccountID, destAccountID int64, sourceAmount, destAmount string, currencyID int64, foreignCurrencyID *int64, foreignAmount *string) error {
	var negForeign *string
	if foreignAmount != nil {
		neg := "-" + *foreignAmount
		negForeign = &neg
	}

	legs := []struct {
		accountID     int64
		amount        string
		foreignAmount *string
	}{
		{sourceAccountID, sourceAmount, negForeign},
		{destAccountID, destAmount, foreignAmount},
	}
	for _, leg := range legs {
		_, err := s.insertReturningID(ctx, squirrel.Insert("transactions").
			Columns("transaction_journal_id", "account_id", "transaction_currency_id", "foreign_currency_id", "amount", "foreign_amount", "reconciled").
			Values(journalID, leg.accountID, currencyID, foreignCurrencyID, leg.amount, leg.foreignAmount, false))
		if err != nil {
			return err
		}
	}

	return nil
}

func (s *seeder) link(ctx context.Context, table, fk string, id, journalID int64) error {
	sql, args, err := squirrel.Insert(table).
		Columns(fk, "transaction_journal_id").
		Values(id, journalID).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}
	_, err = s.db.Exec(ctx, sql, args...)
	return err
}

// Meta values are stored JSON-encoded, matching how the read side decodes
// them.
func (s *seeder) insertMeta(ctx context.Context, journalID int64, values map[string]string) error {
	for name, value := range values {
		encoded, err := json.Marshal(value)
		if err != nil {
			return err
		}
		if _, err := s.insertReturningID(ctx, squirrel.Insert("journal_meta").
			Columns("transaction_journal_id", "name", "data").
			Values(journalID, name, string(encoded))); err != nil {
			return err
		}
	}
	return nil
}

func (s *seeder) insertMetaDate(ctx context.Context, journalID int64, name string, date time.Time) error {
	return s.insertMeta(ctx, journalID, map[string]string{
		name: date.Format(time.RFC3339),
	})
}

func (s *seeder) insertNote(ctx context.Context, journalID int64, text string) error {
	_, err := s.insertReturningID(ctx, squirrel.Insert("notes").
		Columns("noteable_id", "noteable_type", "text").
		Values(journalID, "TransactionJournal", text))
	return err
}

func (s *seeder) insertTags(ctx context.Context, userID, journalID int64, tags ...string) error {
	for _, tag := range tags {
		tagID, err := s.insertReturningID(ctx, squirrel.Insert("tags").
			Columns("user_id", "tag").Values(userID, tag))
		if err != nil {
			return err
		}
		if err := s.link(ctx, "tag_transaction_journal", "tag_id", tagID, journalID); err != nil {
			return err
		}
	}
	return nil
}
