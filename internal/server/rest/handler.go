// Package rest is the HTTP/JSON transport of the staffscore server, built on
// chi. Handlers stay thin: decode and validate the body, call a service,
// map the result or error to a status code.
package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/dmitrijs2005/staffscore/internal/logging"
	"github.com/dmitrijs2005/staffscore/internal/server/auth"
	"github.com/dmitrijs2005/staffscore/internal/server/metrics"
	"github.com/dmitrijs2005/staffscore/internal/server/models"
	"github.com/dmitrijs2005/staffscore/internal/server/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type StaffService interface {
	Signup(ctx context.Context, in services.SignupInput) (int64, error)
	Login(ctx context.Context, email, password string) (*auth.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	Authenticate(ctx context.Context, accessToken string) (int64, error)
	Profile(ctx context.Context, staffID int64) (*models.Staff, error)
}

type LookupService interface {
	Countries(ctx context.Context) ([]string, error)
	Companies(ctx context.Context, country string) ([]string, error)
	Branches(ctx context.Context, country, company string) ([]string, error)
	StoreID(ctx context.Context, country, company, branch string) (int64, error)
}

type ScoreService interface {
	AddScore(ctx context.Context, staffID int64, score int) (*models.Score, error)
	RecentScores(ctx context.Context, staffID int64) ([]models.Score, error)
}

type CatalogService interface {
	LearningResources(ctx context.Context) ([]models.LearningResource, error)
	Questions(ctx context.Context) ([]models.Question, error)
}

// Pinger reports database liveness for /healthz.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Handler holds the services behind the HTTP routes.
type Handler struct {
	staff   StaffService
	lookup  LookupService
	scores  ScoreService
	catalog CatalogService
	db      Pinger
	metrics *metrics.Metrics
	logger  logging.Logger
	limiter *RateLimiter
}

func NewHandler(st StaffService, lk LookupService, sc ScoreService, ct CatalogService,
	db Pinger, m *metrics.Metrics, l logging.Logger) *Handler {
	return &Handler{
		staff:   st,
		lookup:  lk,
		scores:  sc,
		catalog: ct,
		db:      db,
		metrics: m,
		logger:  l.With("module", "rest"),
	}
}

// WithAuthRateLimit throttles signup, login and refresh per client IP.
// A non-positive rate leaves them unthrottled.
func (h *Handler) WithAuthRateLimit(perSecond, burst int) *Handler {
	if perSecond > 0 {
		h.limiter = NewRateLimiter(perSecond, max(burst, 1), h.logger)
	}
	return h
}

func (h *Handler) throttle(next http.Handler) http.Handler {
	if h.limiter == nil {
		return next
	}
	return h.limiter.Handler(next)
}

// Router wires the middleware stack and every route.
func (h *Handler) Router(requestTimeout time.Duration) http.Handler {
	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(h.metrics.InstrumentHandler)
	r.Use(AccessLog(h.logger))
	r.Use(Recoverer(h.logger))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeMessage(w, http.StatusNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeMessage(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Get("/healthz", h.health)
	r.Handle("/metrics", h.metrics.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(requestTimeout))
		r.Use(RequestBodyLimit(1 << 20))

		r.Group(func(r chi.Router) {
			r.Use(h.throttle)
			r.Post("/signup", h.signup)
			r.Post("/login", h.login)
			r.Post("/refresh", h.refresh)
		})
		r.Post("/get-store-id", h.storeID)
		r.Post("/add-score", h.addScore)

		r.Route("/api", func(r chi.Router) {
			r.Get("/countries", h.countries)
			r.Get("/companies", h.companies)
			r.Get("/branches", h.branches)
			r.Post("/get-scores", h.recentScores)
			r.Get("/learning-resources", h.learningResources)
			r.Get("/questions", h.questions)

			r.Group(func(r chi.Router) {
				r.Use(h.RequireAuth)
				r.Get("/me", h.me)
			})
		})
	})

	return r
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		h.logger.Warn(r.Context(), "health check failed", "err", err)
		writeMessage(w, http.StatusServiceUnavailable, "database unavailable")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
