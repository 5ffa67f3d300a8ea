package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/staffscore/internal/common"
	"github.com/dmitrijs2005/staffscore/internal/server/models"
	"github.com/dmitrijs2005/staffscore/internal/server/repositories/repomanager"
)

// RecentScoresLimit caps the history returned by RecentScores.
const RecentScoresLimit = 6

type ScoreService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	now         func() time.Time
}

func NewScoreService(db *sql.DB, m repomanager.RepositoryManager) *ScoreService {
	return &ScoreService{db: db, repomanager: m, now: time.Now}
}

// AddScore records score for staffID stamped with the current server time.
// An unknown staff member yields common.ErrorNotFound.
func (s *ScoreService) AddScore(ctx context.Context, staffID int64, score int) (*models.Score, error) {
	if staffID <= 0 {
		return nil, common.InvalidField("staff_id")
	}

	if _, err := s.repomanager.Staff(s.db).GetByID(ctx, staffID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, fmt.Errorf("staff %d: %w", staffID, err)
		}
		return nil, fmt.Errorf("error loading staff: %w", err)
	}

	res, err := s.repomanager.Scores(s.db).Create(ctx, staffID, score, s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("error creating score: %w", err)
	}
	return res, nil
}

// RecentScores returns at most RecentScoresLimit scores, newest first.
// A staff member without scores gets an empty, non-nil slice.
func (s *ScoreService) RecentScores(ctx context.Context, staffID int64) ([]models.Score, error) {
	if staffID <= 0 {
		return nil, common.InvalidField("staff_id")
	}

	res, err := s.repomanager.Scores(s.db).Recent(ctx, staffID, RecentScoresLimit)
	if err != nil {
		return nil, fmt.Errorf("error loading scores: %w", err)
	}
	if res == nil {
		res = []models.Score{}
	}
	return res, nil
}
