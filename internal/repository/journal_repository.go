package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// JournalRepository serves the per-journal sidecar lookups the transformer
// depends on: metadata key/value pairs, note text and tags. Values in
// journal_meta are JSON-encoded.
type JournalRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewJournalRepository(db *pgxpool.Pool, logger *zap.Logger) *JournalRepository {
	return &JournalRepository{
		db:     db,
		logger: logger,
	}
}

func (r *JournalRepository) MetaFields(ctx context.Context, journalID int64, keys []string) (map[string]string, error) {
	query := squirrel.Select("name", "data").
		From("journal_meta").
		Where(squirrel.Eq{"transaction_journal_id": journalID, "name": keys}).
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

	values := make(map[string]string, len(keys))
	for rows.Next() {
		var name, data string
		if err := rows.Scan(&name, &data); err != nil {
			return nil, err
		}
		values[name] = decodeMetaValue(data)
	}

	return values, rows.Err()
}

func (r *JournalRepository) MetaDateFields(ctx context.Context, journalID int64, keys []string) (map[string]time.Time, error) {
	raw, err := r.MetaFields(ctx, journalID, keys)
	if err != nil {
		return nil, err
	}

	values, err := convertMetaDates(raw)
	if err != nil {
		return nil, fmt.Errorf("journal %d: %w", journalID, err)
	}

	return values, nil
}

func (r *JournalRepository) NoteText(ctx context.Context, journalID int64) (*string, error) {
	query := squirrel.Select("text").
		From("notes").
		Where(squirrel.Eq{"noteable_id": journalID, "noteable_type": "TransactionJournal"}).
		Limit(1).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var text string
	err = r.db.QueryRow(ctx, sql, args...).Scan(&text)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &text, nil
}

func (r *JournalRepository) Tags(ctx context.Context, journalID int64) ([]string, error) {
	query := squirrel.Select("tags.tag").
		From("tags").
		Join("tag_transaction_journal ttj ON ttj.tag_id = tags.id").
		Where(squirrel.Eq{"ttj.transaction_journal_id": journalID}).
		OrderBy("tags.tag").
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

	var tags []string
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}

	return tags, rows.Err()
}

// decodeMetaValue unwraps a JSON-encoded meta value; rows written before
// encoding was introduced hold the bare string.
func decodeMetaValue(data string) string {
	var value string
	if err := json.Unmarshal([]byte(data), &value); err != nil {
		return data
	}
	return value
}

// convertMetaDates parses raw date metadata. An unparseable value fails the
// whole lookup; quietly dropping a stored financial date would look identical
// to the date never having been set.
func convertMetaDates(raw map[string]string) (map[string]time.Time, error) {
	values := make(map[string]time.Time, len(raw))
	for name, value := range raw {
		t, err := parseMetaDate(value)
		if err != nil {
			return nil, fmt.Errorf("meta date %q holds unparseable value %q: %w", name, value, err)
		}
		values[name] = t
	}
	return values, nil
}

func parseMetaDate(value string) (time.Time, error) {
	layouts := []string{
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02",
	}
	var lastErr error
	for _, layout := range layouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
