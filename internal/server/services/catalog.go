package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/staffscore/internal/server/models"
	"github.com/dmitrijs2005/staffscore/internal/server/repositories/repomanager"
)

type CatalogService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewCatalogService(db *sql.DB, m repomanager.RepositoryManager) *CatalogService {
	return &CatalogService{db: db, repomanager: m}
}

func (s *CatalogService) LearningResources(ctx context.Context) ([]models.LearningResource, error) {
	res, err := s.repomanager.Catalog(s.db).LearningResources(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing learning resources: %w", err)
	}
	return res, nil
}

func (s *CatalogService) Questions(ctx context.Context) ([]models.Question, error) {
	res, err := s.repomanager.Catalog(s.db).Questions(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing questions: %w", err)
	}
	return res, nil
}
