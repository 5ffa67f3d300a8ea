package scores

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/staffscore/internal/dbx"
	"github.com/dmitrijs2005/staffscore/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, staffID int64, score int, date time.Time) (*models.Score, error) {
	query :=
		`INSERT INTO scores (date, staff_id, score)
		 VALUES ($1, $2, $3)
		 RETURNING id
		 `

	m := &models.Score{Date: date, StaffID: staffID, Score: score}
	if err := r.db.QueryRowContext(ctx, query, date, staffID, score).Scan(&m.ID); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return m, nil
}

func (r *PostgresRepository) Recent(ctx context.Context, staffID int64, limit int) ([]models.Score, error) {
	// id breaks ties between scores inserted within the same instant
	query :=
		`SELECT id, date, staff_id, score FROM scores
		 WHERE staff_id = $1
		 ORDER BY date DESC, id DESC
		 LIMIT $2
		 `

	rows, err := r.db.QueryContext(ctx, query, staffID, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	res := make([]models.Score, 0, limit)
	for rows.Next() {
		var s models.Score
		if err := rows.Scan(&s.ID, &s.Date, &s.StaffID, &s.Score); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		res = append(res, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return res, nil
}
