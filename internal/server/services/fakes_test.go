package services

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/staffscore/internal/common"
	"github.com/dmitrijs2005/staffscore/internal/dbx"
	"github.com/dmitrijs2005/staffscore/internal/server/models"
	"github.com/dmitrijs2005/staffscore/internal/server/repositories/catalog"
	"github.com/dmitrijs2005/staffscore/internal/server/repositories/scores"
	"github.com/dmitrijs2005/staffscore/internal/server/repositories/staff"
	"github.com/dmitrijs2005/staffscore/internal/server/repositories/stores"
)

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

// fakeStaffRepo keeps staff in memory keyed by email.
type fakeStaffRepo struct {
	byEmail map[string]*models.Staff
	nextID  int64

	existsErr error
	createErr error
	getErr    error
}

func newFakeStaffRepo() *fakeStaffRepo {
	return &fakeStaffRepo{byEmail: map[string]*models.Staff{}, nextID: 1}
}

func (f *fakeStaffRepo) Create(ctx context.Context, m *models.Staff) (*models.Staff, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if _, ok := f.byEmail[m.Email]; ok {
		return nil, common.ErrDuplicateEmail
	}
	m.ID = f.nextID
	f.nextID++
	cp := *m
	f.byEmail[m.Email] = &cp
	return m, nil
}

func (f *fakeStaffRepo) GetByEmail(ctx context.Context, email string) (*models.Staff, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	m, ok := f.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *m
	return &cp, nil
}

func (f *fakeStaffRepo) GetByID(ctx context.Context, id int64) (*models.Staff, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, m := range f.byEmail {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeStaffRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	if f.existsErr != nil {
		return false, f.existsErr
	}
	_, ok := f.byEmail[email]
	return ok, nil
}

type fakeStoresRepo struct {
	countries  []string
	companies  map[string][]string
	branches   map[[2]string][]string
	franchises map[string]int64
	stores     map[string]int64 // see storeKey
	err    error
}

func storeKey(franchiseID int64, country, branch string) string {
	return fmt.Sprintf("%d|%s|%s", franchiseID, country, branch)
}

func (f *fakeStoresRepo) Countries(ctx context.Context) ([]string, error) {
	return f.countries, f.err
}

func (f *fakeStoresRepo) Companies(ctx context.Context, country string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.companies[country], nil
}

func (f *fakeStoresRepo) Branches(ctx context.Context, country, company string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.branches[[2]string{country, company}], nil
}

func (f *fakeStoresRepo) FranchiseIDByName(ctx context.Context, name string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	id, ok := f.franchises[name]
	if !ok {
		return 0, common.ErrorNotFound
	}
	return id, nil
}

func (f *fakeStoresRepo) FindStoreID(ctx context.Context, franchiseID int64, country, branch string) (int64, error) {
	id, ok := f.stores[storeKey(franchiseID, country, branch)]
	if !ok {
		return 0, common.ErrorNotFound
	}
	return id, nil
}

type fakeScoresRepo struct {
	created []models.Score
	recent  []models.Score

	createErr error
	recentErr error

	lastLimit int
}

func (f *fakeScoresRepo) Create(ctx context.Context, staffID int64, score int, date time.Time) (*models.Score, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	s := models.Score{ID: int64(len(f.created) + 1), StaffID: staffID, Score: score, Date: date}
	f.created = append(f.created, s)
	return &s, nil
}

func (f *fakeScoresRepo) Recent(ctx context.Context, staffID int64, limit int) ([]models.Score, error) {
	f.lastLimit = limit
	return f.recent, f.recentErr
}

type fakeCatalogRepo struct {
	resources []models.LearningResource
	questions []models.Question
	err       error
}

func (f *fakeCatalogRepo) LearningResources(ctx context.Context) ([]models.LearningResource, error) {
	return f.resources, f.err
}

func (f *fakeCatalogRepo) Questions(ctx context.Context) ([]models.Question, error) {
	return f.questions, f.err
}

type fakeRepoManager struct {
	staff   *fakeStaffRepo
	stores  *fakeStoresRepo
	scores  *fakeScoresRepo
	catalog *fakeCatalogRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Staff(db dbx.DBTX) staff.Repository          { return m.staff }
func (m *fakeRepoManager) Stores(db dbx.DBTX) stores.Repository        { return m.stores }
func (m *fakeRepoManager) Scores(db dbx.DBTX) scores.Repository        { return m.scores }
func (m *fakeRepoManager) Catalog(db dbx.DBTX) catalog.Repository      { return m.catalog }
