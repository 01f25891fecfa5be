package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"finledger/internal/dto"
	"finledger/internal/models"
	"finledger/internal/repository"
	"finledger/internal/transform"
)

var ErrGroupNotFound = errors.New("transaction group not found")

// TransactionService serves the read side of transaction groups: fetch from
// the repository, flatten through the transformer.
type TransactionService struct {
	groupRepo   *repository.GroupRepository
	transformer *transform.GroupTransformer
	logger      *zap.Logger
}

func NewTransactionService(
	groupRepo *repository.GroupRepository,
	journalRepo *repository.JournalRepository,
	logger *zap.Logger,
) *TransactionService {
	return &TransactionService{
		groupRepo:   groupRepo,
		transformer: transform.NewGroupTransformer(journalRepo, logger),
		logger:      logger,
	}
}

// Show returns one flattened group. Groups owned by other users report as
// not found.
func (s *TransactionService) Show(ctx context.Context, userID, groupID int64) (*dto.TransactionGroupResponse, error) {
	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrGroupNotFound
		}
		return nil, err
	}
	if group.UserID != userID {
		return nil, ErrGroupNotFound
	}

	return s.transformer.TransformGroup(ctx, group)
}

// List returns the user's groups via the bulk flat-row path, one envelope
// per group, ordered as the query returned them.
func (s *TransactionService) List(ctx context.Context, userID int64, limit, offset uint64) ([]*dto.TransactionGroupResponse, error) {
	rows, err := s.groupRepo.ListFlatRows(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}

	groups := make([]*dto.TransactionGroupResponse, 0)
	var batch []*models.FlatRow

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		resp, err := s.transformer.TransformRows(ctx, batch[0].GroupID, batch)
		if err != nil {
			return err
		}
		groups = append(groups, resp)
		batch = batch[:0:0]
		return nil
	}

	for _, row := range rows {
		if len(batch) > 0 && batch[len(batch)-1].GroupID != row.GroupID {
			if err := flush(); err != nil {
				return nil, err
			}
		}
		batch = append(batch, row)
	}
	if err := flush(); err != nil {
		return nil, err
	}

	return groups, nil
}
