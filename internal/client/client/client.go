package client

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client is the API surface the CLI talks to.
type Client interface {
	Signup(ctx context.Context, req SignupRequest) (int64, error)
	Login(ctx context.Context, email, password string) error
	Refresh(ctx context.Context) error
	Logout()
	LoggedIn() bool
	Me(ctx context.Context) (*Profile, error)

	Countries(ctx context.Context) ([]string, error)
	Companies(ctx context.Context, country string) ([]string, error)
	Branches(ctx context.Context, country, company string) ([]string, error)
	StoreID(ctx context.Context, country, company, branch string) (int64, error)

	AddScore(ctx context.Context, staffID int64, score int) (int64, error)
	Scores(ctx context.Context, staffID int64) ([]Score, error)

	LearningResources(ctx context.Context) ([]LearningResource, error)
	Questions(ctx context.Context) ([]Question, error)
}

type SignupRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Birthday string `json:"birthday"`
	StoreID  int64  `json:"store_id"`
}

type Profile struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Birthday string `json:"birthday"`
	StoreID  int64  `json:"store_id"`
}

type Score struct {
	Score int       `json:"score"`
	Date  time.Time `json:"date"`
}

type LearningResource struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	URL         string  `json:"url"`
}

type Question struct {
	Question       string `json:"question"`
	Answer         bool   `json:"answer"`
	Info           string `json:"info"`
	Followup       string `json:"followup"`
	FollowupAnswer bool   `json:"fanswer"`
}

type tokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// HTTPClient implements Client over the JSON API.
type HTTPClient struct {
	rc *resty.Client

	mu           sync.RWMutex
	accessToken  string
	refreshToken string
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient returns a client for the API rooted at baseURL.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	rc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "staffscore-cli/1.0")
	return &HTTPClient{rc: rc}
}

// do sends one request. A non-nil result receives the decoded 2xx body.
func (c *HTTPClient) do(ctx context.Context, method, path string, body, result any, prep func(*resty.Request)) error {
	var apiErr APIError
	req := c.rc.R().SetContext(ctx).SetError(&apiErr)
	if body != nil {
		req.SetBody(body)
	}
	if result != nil {
		req.SetResult(result)
	}
	if prep != nil {
		prep(req)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if resp.IsError() {
		apiErr.Status = resp.StatusCode()
		return &apiErr
	}
	return nil
}

// authorized runs a bearer request, refreshing the access token once if the
// server reports it expired.
func (c *HTTPClient) authorized(ctx context.Context, method, path string, result any) error {
	send := func() error {
		token := c.access()
		if token == "" {
			return ErrNotLoggedIn
		}
		return c.do(ctx, method, path, nil, result, func(r *resty.Request) {
			r.SetAuthToken(token)
		})
	}

	err := send()
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.expired() {
		if rerr := c.Refresh(ctx); rerr != nil {
			return rerr
		}
		return send()
	}
	return err
}

func (c *HTTPClient) access() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.accessToken
}

func (c *HTTPClient) Signup(ctx context.Context, in SignupRequest) (int64, error) {
	var out struct {
		StaffID int64 `json:"staff_id"`
	}
	if err := c.do(ctx, resty.MethodPost, "/signup", in, &out, nil); err != nil {
		return 0, err
	}
	return out.StaffID, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) error {
	var out tokenPair
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, resty.MethodPost, "/login", body, &out, nil); err != nil {
		return err
	}

	c.mu.Lock()
	c.accessToken, c.refreshToken = out.AccessToken, out.RefreshToken
	c.mu.Unlock()
	return nil
}

func (c *HTTPClient) Refresh(ctx context.Context) error {
	c.mu.RLock()
	rt := c.refreshToken
	c.mu.RUnlock()
	if rt == "" {
		return ErrNotLoggedIn
	}

	var out tokenPair
	body := map[string]string{"refresh_token": rt}
	if err := c.do(ctx, resty.MethodPost, "/refresh", body, &out, nil); err != nil {
		return err
	}

	c.mu.Lock()
	c.accessToken = out.AccessToken
	c.mu.Unlock()
	return nil
}

func (c *HTTPClient) Logout() {
	c.mu.Lock()
	c.accessToken, c.refreshToken = "", ""
	c.mu.Unlock()
}

func (c *HTTPClient) LoggedIn() bool {
	return c.access() != ""
}

func (c *HTTPClient) Me(ctx context.Context) (*Profile, error) {
	var p Profile
	if err := c.authorized(ctx, resty.MethodGet, "/api/me", &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) Countries(ctx context.Context) ([]string, error) {
	var out []string
	err := c.do(ctx, resty.MethodGet, "/api/countries", nil, &out, nil)
	return out, err
}

func (c *HTTPClient) Companies(ctx context.Context, country string) ([]string, error) {
	var out []string
	err := c.do(ctx, resty.MethodGet, "/api/companies", nil, &out, func(r *resty.Request) {
		r.SetQueryParam("country", country)
	})
	return out, err
}

func (c *HTTPClient) Branches(ctx context.Context, country, company string) ([]string, error) {
	var out []string
	err := c.do(ctx, resty.MethodGet, "/api/branches", nil, &out, func(r *resty.Request) {
		r.SetQueryParams(map[string]string{"country": country, "company": company})
	})
	return out, err
}

func (c *HTTPClient) StoreID(ctx context.Context, country, company, branch string) (int64, error) {
	var out struct {
		StoreID int64 `json:"store_id"`
	}
	body := map[string]string{"country": country, "company": company, "branch": branch}
	if err := c.do(ctx, resty.MethodPost, "/get-store-id", body, &out, nil); err != nil {
		return 0, err
	}
	return out.StoreID, nil
}

func (c *HTTPClient) AddScore(ctx context.Context, staffID int64, score int) (int64, error) {
	var out struct {
		ScoreID int64 `json:"score_id"`
	}
	body := map[string]any{"staff_id": staffID, "score": score}
	if err := c.do(ctx, resty.MethodPost, "/add-score", body, &out, nil); err != nil {
		return 0, err
	}
	return out.ScoreID, nil
}

func (c *HTTPClient) Scores(ctx context.Context, staffID int64) ([]Score, error) {
	var out []Score
	body := map[string]any{"staff_id": staffID}
	err := c.do(ctx, resty.MethodPost, "/api/get-scores", body, &out, nil)
	return out, err
}

func (c *HTTPClient) LearningResources(ctx context.Context) ([]LearningResource, error) {
	var out []LearningResource
	err := c.do(ctx, resty.MethodGet, "/api/learning-resources", nil, &out, nil)
	return out, err
}

func (c *HTTPClient) Questions(ctx context.Context) ([]Question, error) {
	var out []Question
	err := c.do(ctx, resty.MethodGet, "/api/questions", nil, &out, nil)
	return out, err
}
