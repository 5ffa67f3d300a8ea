package rest

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/staffscore/internal/common"
	"github.com/dmitrijs2005/staffscore/internal/logging"
	"github.com/dmitrijs2005/staffscore/internal/server/auth"
	"github.com/dmitrijs2005/staffscore/internal/server/metrics"
	"github.com/dmitrijs2005/staffscore/internal/server/models"
	"github.com/dmitrijs2005/staffscore/internal/server/services"
)

type fakeStaff struct {
	signupIn  services.SignupInput
	signupErr error

	tokens map[string]int64 // access token -> staff id
}

func (f *fakeStaff) Signup(ctx context.Context, in services.SignupInput) (int64, error) {
	f.signupIn = in
	if f.signupErr != nil {
		return 0, f.signupErr
	}
	return 1, nil
}

func (f *fakeStaff) Login(ctx context.Context, email, password string) (*auth.TokenPair, error) {
	if email == "jane@x.com" && password == "secret123" {
		return &auth.TokenPair{AccessToken: "access-1", RefreshToken: "refresh-1"}, nil
	}
	if email == "boom@x.com" {
		return nil, errors.New("connection reset")
	}
	return nil, common.ErrInvalidCredentials
}

func (f *fakeStaff) Refresh(ctx context.Context, refreshToken string) (string, error) {
	switch refreshToken {
	case "refresh-1":
		return "access-2", nil
	case "expired":
		return "", common.ErrTokenExpired
	default:
		return "", common.ErrInvalidToken
	}
}

func (f *fakeStaff) Authenticate(ctx context.Context, accessToken string) (int64, error) {
	if id, ok := f.tokens[accessToken]; ok {
		return id, nil
	}
	if accessToken == "expired" {
		return 0, common.ErrTokenExpired
	}
	return 0, common.ErrInvalidToken
}

func (f *fakeStaff) Profile(ctx context.Context, staffID int64) (*models.Staff, error) {
	if staffID != 1 {
		return nil, common.ErrorNotFound
	}
	return &models.Staff{
		ID:       1,
		FullName: "Jane Doe",
		Email:    "jane@x.com",
		Birthday: time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC),
		StoreID:  1,
	}, nil
}

type fakeLookup struct{}

func (fakeLookup) Countries(ctx context.Context) ([]string, error) {
	return []string{"Latvia"}, nil
}

func (fakeLookup) Companies(ctx context.Context, country string) ([]string, error) {
	if country == "" {
		return nil, common.MissingField("country")
	}
	return []string{"Acme"}, nil
}

func (fakeLookup) Branches(ctx context.Context, country, company string) ([]string, error) {
	if country == "" {
		return nil, common.MissingField("country")
	}
	if company == "" {
		return nil, common.MissingField("company")
	}
	return []string{"Riga Centre"}, nil
}

func (fakeLookup) StoreID(ctx context.Context, country, company, branch string) (int64, error) {
	if country == "Latvia" && company == "Acme" && branch == "Riga Centre" {
		return 10, nil
	}
	return 0, common.ErrorNotFound
}

type fakeScores struct {
	added  []models.Score
	recent []models.Score
}

func (f *fakeScores) AddScore(ctx context.Context, staffID int64, score int) (*models.Score, error) {
	if staffID == 99 {
		return nil, common.ErrorNotFound
	}
	s := models.Score{ID: int64(len(f.added) + 1), StaffID: staffID, Score: score, Date: time.Now()}
	f.added = append(f.added, s)
	return &s, nil
}

func (f *fakeScores) RecentScores(ctx context.Context, staffID int64) ([]models.Score, error) {
	return f.recent, nil
}

type fakeCatalog struct {
	err error
}

func (f fakeCatalog) LearningResources(ctx context.Context) ([]models.LearningResource, error) {
	if f.err != nil {
		return nil, f.err
	}
	d := "Basics"
	return []models.LearningResource{
		{ID: 1, Title: "Upselling", Description: &d, URL: "https://example.com/a"},
		{ID: 2, Title: "Greeting", URL: "https://example.com/b"},
	}, nil
}

func (f fakeCatalog) Questions(ctx context.Context) ([]models.Question, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []models.Question{{ID: 1, Question: "Smile?", Answer: true, Info: "Always", Followup: "Why?", FollowupAnswer: false}}, nil
}

type fakePinger struct{ err error }

func (p fakePinger) PingContext(context.Context) error { return p.err }

type testEnv struct {
	handler *Handler
	router  http.Handler
	staff   *fakeStaff
	scores  *fakeScores
	metrics *metrics.Metrics
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	st := &fakeStaff{tokens: map[string]int64{"access-1": 1, "orphan": 2}}
	sc := &fakeScores{}
	m := metrics.New()
	h := NewHandler(st, fakeLookup{}, sc, fakeCatalog{}, fakePinger{}, m, logging.NewNopLogger())
	return &testEnv{handler: h, router: h.Router(5 * time.Second), staff: st, scores: sc, metrics: m}
}

func (e *testEnv) do(t *testing.T, method, path, body string, header ...string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}
