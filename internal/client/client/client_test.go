package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrijs2005/staffscore/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reply(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func newTestClient(t *testing.T, h http.HandlerFunc) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewHTTPClient(srv.URL, 2*time.Second)
}

func TestSignup_SendsBodyAndReturnsID(t *testing.T) {
	var got SignupRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/signup", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		reply(w, http.StatusCreated, map[string]any{"message": "Staff member created successfully", "staff_id": 17})
	})

	id, err := c.Signup(context.Background(), SignupRequest{
		FullName: "Ann Lee", Email: "ann@x.com", Password: "pw", Birthday: "05/03/1990", StoreID: 2,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 17, id)
	assert.Equal(t, "ann@x.com", got.Email)
	assert.EqualValues(t, 2, got.StoreID)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusConflict, map[string]string{"message": "email already registered"})
	})

	_, err := c.Signup(context.Background(), SignupRequest{Email: "ann@x.com"})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrDuplicateEmail)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "email already registered", apiErr.Message)
}

func TestLogin_StoresTokensAndMeUsesBearer(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/login":
			reply(w, http.StatusOK, map[string]string{"access_token": "acc", "refresh_token": "ref"})
		case "/api/me":
			assert.Equal(t, "Bearer acc", r.Header.Get("Authorization"))
			reply(w, http.StatusOK, Profile{ID: 5, FullName: "Ann Lee", Email: "ann@x.com", Birthday: "05/03/1990", StoreID: 2})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})

	assert.False(t, c.LoggedIn())
	require.NoError(t, c.Login(context.Background(), "ann@x.com", "pw"))
	assert.True(t, c.LoggedIn())

	p, err := c.Me(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 5, p.ID)
	assert.Equal(t, "Ann Lee", p.FullName)

	c.Logout()
	assert.False(t, c.LoggedIn())
	_, err = c.Me(context.Background())
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusUnauthorized, map[string]string{"message": "invalid credentials"})
	})

	err := c.Login(context.Background(), "ann@x.com", "nope")
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.False(t, c.LoggedIn())
}

func TestMe_RefreshesExpiredAccessTokenOnce(t *testing.T) {
	var refreshes atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/login":
			reply(w, http.StatusOK, map[string]string{"access_token": "old", "refresh_token": "ref"})
		case "/refresh":
			refreshes.Add(1)
			var body map[string]string
			_ = json.NewDecoder(r.Body).Decode(&body)
			assert.Equal(t, "ref", body["refresh_token"])
			reply(w, http.StatusOK, map[string]string{"access_token": "new"})
		case "/api/me":
			if r.Header.Get("Authorization") != "Bearer new" {
				reply(w, http.StatusUnauthorized, map[string]string{"message": "token expired"})
				return
			}
			reply(w, http.StatusOK, Profile{ID: 5})
		}
	})

	require.NoError(t, c.Login(context.Background(), "ann@x.com", "pw"))
	p, err := c.Me(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 5, p.ID)
	assert.EqualValues(t, 1, refreshes.Load())
}

func TestMe_InvalidTokenIsNotRetried(t *testing.T) {
	var refreshes atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/login":
			reply(w, http.StatusOK, map[string]string{"access_token": "acc", "refresh_token": "ref"})
		case "/refresh":
			refreshes.Add(1)
		case "/api/me":
			reply(w, http.StatusUnauthorized, map[string]string{"message": "invalid token"})
		}
	})

	require.NoError(t, c.Login(context.Background(), "ann@x.com", "pw"))
	_, err := c.Me(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Zero(t, refreshes.Load())
}

func TestRefresh_WithoutLogin(t *testing.T) {
	c := NewHTTPClient("http://127.0.0.1:1", time.Second)
	assert.ErrorIs(t, c.Refresh(context.Background()), ErrNotLoggedIn)
}

func TestLookups(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		switch r.URL.Path {
		case "/api/countries":
			reply(w, http.StatusOK, []string{"Latvia", "Spain"})
		case "/api/companies":
			assert.Equal(t, "Spain", q.Get("country"))
			reply(w, http.StatusOK, []string{"Acme"})
		case "/api/branches":
			assert.Equal(t, "Spain", q.Get("country"))
			assert.Equal(t, "Acme", q.Get("company"))
			reply(w, http.StatusOK, []string{"Centro", "Norte"})
		case "/get-store-id":
			var body map[string]string
			_ = json.NewDecoder(r.Body).Decode(&body)
			if body["branch"] == "Nowhere" {
				reply(w, http.StatusNotFound, map[string]string{"message": "store not found"})
				return
			}
			reply(w, http.StatusOK, map[string]int64{"store_id": 9})
		}
	})
	ctx := context.Background()

	countries, err := c.Countries(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Latvia", "Spain"}, countries)

	companies, err := c.Companies(ctx, "Spain")
	require.NoError(t, err)
	assert.Equal(t, []string{"Acme"}, companies)

	branches, err := c.Branches(ctx, "Spain", "Acme")
	require.NoError(t, err)
	assert.Equal(t, []string{"Centro", "Norte"}, branches)

	id, err := c.StoreID(ctx, "Spain", "Acme", "Centro")
	require.NoError(t, err)
	assert.EqualValues(t, 9, id)

	_, err = c.StoreID(ctx, "Spain", "Acme", "Nowhere")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.EqualError(t, err, "store not found (404)")
}

func TestScores(t *testing.T) {
	when := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		switch r.URL.Path {
		case "/add-score":
			assert.EqualValues(t, 3, body["staff_id"])
			assert.EqualValues(t, 8, body["score"])
			reply(w, http.StatusCreated, map[string]any{"message": "Score added successfully", "score_id": 41})
		case "/api/get-scores":
			reply(w, http.StatusOK, []Score{{Score: 8, Date: when}})
		}
	})
	ctx := context.Background()

	id, err := c.AddScore(ctx, 3, 8)
	require.NoError(t, err)
	assert.EqualValues(t, 41, id)

	list, err := c.Scores(ctx, 3)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 8, list[0].Score)
	assert.True(t, when.Equal(list[0].Date))
}

func TestCatalog(t *testing.T) {
	desc := "Basics"
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/learning-resources":
			reply(w, http.StatusOK, []LearningResource{{Title: "Intro", Description: &desc, URL: "https://x"}})
		case "/api/questions":
			reply(w, http.StatusOK, []Question{{Question: "Q?", Answer: true, FollowupAnswer: true}})
		}
	})
	ctx := context.Background()

	res, err := c.LearningResources(ctx)
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "Basics", *res[0].Description)

	qs, err := c.Questions(ctx)
	require.NoError(t, err)
	require.Len(t, qs, 1)
	assert.True(t, qs[0].FollowupAnswer)
}

func TestUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewHTTPClient(url, time.Second)
	_, err := c.Countries(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestAPIError_Unwrap(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, common.ErrDuplicateEmail},
	}
	for _, tt := range tests {
		err := &APIError{Status: tt.status}
		assert.ErrorIs(t, err, tt.want)
	}

	err := &APIError{Status: http.StatusInternalServerError, Message: "internal error"}
	assert.Nil(t, err.Unwrap())
	assert.Equal(t, "internal error (500)", err.Error())
	assert.Equal(t, "server returned 502", (&APIError{Status: 502}).Error())
}
