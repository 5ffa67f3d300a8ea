package rest

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/staffscore/internal/common"
	"github.com/dmitrijs2005/staffscore/internal/server/metrics"
	"github.com/dmitrijs2005/staffscore/internal/server/services"
)

type signupRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Birthday string `json:"birthday"`
	StoreID  int64  `json:"store_id"`
}

type signupResponse struct {
	Message string `json:"message"`
	StaffID int64  `json:"staff_id"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type refreshResponse struct {
	AccessToken string `json:"access_token"`
}

type profileResponse struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Birthday string `json:"birthday"`
	StoreID  int64  `json:"store_id"`
}

// authResult classifies an auth outcome for the attempts counter.
func authResult(err error) string {
	var fe *common.FieldError
	switch {
	case err == nil:
		return metrics.ResultSuccess
	case errors.As(err, &fe),
		errors.Is(err, common.ErrDuplicateEmail),
		errors.Is(err, common.ErrInvalidCredentials),
		errors.Is(err, common.ErrTokenExpired),
		errors.Is(err, common.ErrInvalidToken):
		return metrics.ResultFailure
	default:
		return metrics.ResultError
	}
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := decodeValid(r, signupSchema, &req); err != nil {
		h.metrics.AuthAttempt("signup", metrics.ResultFailure)
		h.decodeError(w, r, err)
		return
	}

	id, err := h.staff.Signup(r.Context(), services.SignupInput{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
		Birthday: req.Birthday,
		StoreID:  req.StoreID,
	})
	h.metrics.AuthAttempt("signup", authResult(err))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.logger.Info(r.Context(), "staff signed up", "staff_id", id)
	writeJSON(w, http.StatusCreated, signupResponse{Message: "Staff member created successfully", StaffID: id})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeValid(r, loginSchema, &req); err != nil {
		h.metrics.AuthAttempt("login", metrics.ResultFailure)
		h.decodeError(w, r, err)
		return
	}

	pair, err := h.staff.Login(r.Context(), req.Email, req.Password)
	h.metrics.AuthAttempt("login", authResult(err))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken})
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := decodeValid(r, refreshSchema, &req); err != nil {
		h.metrics.AuthAttempt("refresh", metrics.ResultFailure)
		h.decodeError(w, r, err)
		return
	}

	access, err := h.staff.Refresh(r.Context(), req.RefreshToken)
	h.metrics.AuthAttempt("refresh", authResult(err))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, refreshResponse{AccessToken: access})
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	id, ok := StaffIDFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "missing token")
		return
	}

	p, err := h.staff.Profile(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, profileResponse{
		ID:       p.ID,
		FullName: p.FullName,
		Email:    p.Email,
		Birthday: p.Birthday.Format("02/01/2006"),
		StoreID:  p.StoreID,
	})
}
