package transform

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"finledger/internal/dto"
	"finledger/internal/models"
)

// GroupTransformer flattens transaction groups into the client-facing record
// set. It holds no state across calls; one transformer can serve concurrent
// requests.
type GroupTransformer struct {
	repo   JournalReader
	meta   *MetaResolver
	logger *zap.Logger
}

func NewGroupTransformer(repo JournalReader, logger *zap.Logger) *GroupTransformer {
	return &GroupTransformer{
		repo:   repo,
		meta:   NewMetaResolver(repo, MetaFieldKeys, MetaDateKeys),
		logger: logger,
	}
}

// TransformGroup flattens an assembled group of journal entities. Either
// every journal normalizes or the whole call fails; a partial envelope is
// never returned. Group-level timestamps and owner mirror the first journal.
func (t *GroupTransformer) TransformGroup(ctx context.Context, group *models.TransactionGroup) (*dto.TransactionGroupResponse, error) {
	if len(group.Journals) == 0 {
		return nil, t.corrupt(group.ID, 0, errors.New("group has no journals"))
	}

	records := make([]*dto.TransactionRecord, 0, len(group.Journals))
	for _, journal := range group.Journals {
		src, err := newEntitySource(journal)
		if err != nil {
			return nil, t.corrupt(group.ID, journal.ID, err)
		}

		record, err := t.buildRecord(ctx, src)
		if err != nil {
			// Collaborator failure, not broken data: surface it unchanged.
			return nil, err
		}
		records = append(records, record)
	}

	first := group.Journals[0]
	return t.envelope(group.ID, group.Title, first.UserID, first.CreatedAt, first.UpdatedAt, records), nil
}

// TransformRows flattens the legacy shape: pre-joined rows from the bulk
// listing query. Leg polarity is resolved by the query itself, so the only
// failure mode left is a collaborator lookup error.
func (t *GroupTransformer) TransformRows(ctx context.Context, groupID int64, rows []*models.FlatRow) (*dto.TransactionGroupResponse, error) {
	if len(rows) == 0 {
		return nil, t.corrupt(groupID, 0, errors.New("group has no rows"))
	}

	records := make([]*dto.TransactionRecord, 0, len(rows))
	for _, row := range rows {
		record, err := t.buildRecord(ctx, rowSource{row: row})
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	first := rows[0]
	return t.envelope(groupID, first.GroupTitle, first.UserID, first.CreatedAt, first.UpdatedAt, records), nil
}

func (t *GroupTransformer) envelope(id int64, title *string, userID int64, createdAt, updatedAt time.Time, records []*dto.TransactionRecord) *dto.TransactionGroupResponse {
	return &dto.TransactionGroupResponse{
		ID:           id,
		CreatedAt:    createdAt.Format(time.RFC3339),
		UpdatedAt:    updatedAt.Format(time.RFC3339),
		User:         userID,
		GroupTitle:   title,
		Transactions: records,
		Links: []dto.Link{
			{Rel: "self", URI: fmt.Sprintf("/transactions/%d", id)},
		},
	}
}

// corrupt logs the full failure for operators and hands the caller a
// sanitized error naming only the group.
func (t *GroupTransformer) corrupt(groupID, journalID int64, err error) error {
	t.logger.Error("Transaction group failed to normalize",
		zap.Int64("group_id", groupID),
		zap.Int64("journal_id", journalID),
		zap.Error(err),
	)
	return &GroupError{GroupID: groupID, Err: err}
}
