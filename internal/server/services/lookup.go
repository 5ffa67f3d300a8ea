package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/staffscore/internal/common"
	"github.com/dmitrijs2005/staffscore/internal/server/repositories/repomanager"
)

// LookupService answers the cascading country, company, branch and store
// questions used by the signup form.
type LookupService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewLookupService(db *sql.DB, m repomanager.RepositoryManager) *LookupService {
	return &LookupService{db: db, repomanager: m}
}

func (s *LookupService) Countries(ctx context.Context) ([]string, error) {
	res, err := s.repomanager.Stores(s.db).Countries(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing countries: %w", err)
	}
	return res, nil
}

func (s *LookupService) Companies(ctx context.Context, country string) ([]string, error) {
	if country == "" {
		return nil, common.MissingField("country")
	}
	res, err := s.repomanager.Stores(s.db).Companies(ctx, country)
	if err != nil {
		return nil, fmt.Errorf("error listing companies: %w", err)
	}
	return res, nil
}

func (s *LookupService) Branches(ctx context.Context, country, company string) ([]string, error) {
	if country == "" {
		return nil, common.MissingField("country")
	}
	if company == "" {
		return nil, common.MissingField("company")
	}
	res, err := s.repomanager.Stores(s.db).Branches(ctx, country, company)
	if err != nil {
		return nil, fmt.Errorf("error listing branches: %w", err)
	}
	return res, nil
}

// StoreID resolves company to a franchise and then finds the store by
// franchise, country and branch. Either miss yields common.ErrorNotFound.
func (s *LookupService) StoreID(ctx context.Context, country, company, branch string) (int64, error) {
	for _, f := range []struct{ name, value string }{
		{"country", country}, {"company", company}, {"branch", branch},
	} {
		if f.value == "" {
			return 0, common.MissingField(f.name)
		}
	}

	repo := s.repomanager.Stores(s.db)

	franchiseID, err := repo.FranchiseIDByName(ctx, company)
	if err != nil {
		return 0, fmt.Errorf("company %q: %w", company, err)
	}

	id, err := repo.FindStoreID(ctx, franchiseID, country, branch)
	if err != nil {
		return 0, fmt.Errorf("store %q/%q: %w", country, branch, err)
	}
	return id, nil
}
