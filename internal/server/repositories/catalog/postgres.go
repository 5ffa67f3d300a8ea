package catalog

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/staffscore/internal/dbx"
	"github.com/dmitrijs2005/staffscore/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) LearningResources(ctx context.Context) ([]models.LearningResource, error) {
	query := `SELECT id, title, description, url FROM learning_resources ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	res := []models.LearningResource{}
	for rows.Next() {
		var m models.LearningResource
		if err := rows.Scan(&m.ID, &m.Title, &m.Description, &m.URL); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		res = append(res, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return res, nil
}

func (r *PostgresRepository) Questions(ctx context.Context) ([]models.Question, error) {
	query := `SELECT id, question, answer, info, followup, fanswer FROM questions ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	res := []models.Question{}
	for rows.Next() {
		var m models.Question
		if err := rows.Scan(&m.ID, &m.Question, &m.Answer, &m.Info, &m.Followup, &m.FollowupAnswer); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		res = append(res, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return res, nil
}
