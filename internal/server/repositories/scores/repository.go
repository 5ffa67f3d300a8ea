// Package scores stores append-only staff performance scores.
package scores

import (
	"context"
	"time"

	"github.com/dmitrijs2005/staffscore/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, staffID int64, score int, date time.Time) (*models.Score, error)
	// Recent returns up to limit scores for staffID, newest first.
	Recent(ctx context.Context, staffID int64, limit int) ([]models.Score, error)
}
