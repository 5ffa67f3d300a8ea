package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/staffscore/internal/common"
)

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, messageResponse{Message: msg})
}

// errorStatus maps service errors to a status code and a client-safe message.
func errorStatus(err error) (int, string) {
	var fe *common.FieldError
	switch {
	case errors.As(err, &fe):
		return http.StatusBadRequest, fe.Error()
	case errors.Is(err, common.ErrDuplicateEmail):
		return http.StatusConflict, common.ErrDuplicateEmail.Error()
	case errors.Is(err, common.ErrInvalidCredentials):
		return http.StatusUnauthorized, common.ErrInvalidCredentials.Error()
	case errors.Is(err, common.ErrTokenExpired):
		return http.StatusUnauthorized, common.ErrTokenExpired.Error()
	case errors.Is(err, common.ErrInvalidToken):
		return http.StatusUnauthorized, common.ErrInvalidToken.Error()
	case errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound, common.ErrorNotFound.Error()
	default:
		return http.StatusInternalServerError, common.ErrorInternal.Error()
	}
}

// writeError logs 5xx causes and writes the mapped status. Details of
// internal errors never reach the client.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := errorStatus(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error(r.Context(), "request failed", "path", r.URL.Path, "err", err)
	}
	writeMessage(w, status, msg)
}
