package rest

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/staffscore/internal/common"
)

type storeIDRequest struct {
	Country string `json:"country"`
	Company string `json:"company"`
	Branch  string `json:"branch"`
}

type storeIDResponse struct {
	StoreID int64 `json:"store_id"`
}

func (h *Handler) countries(w http.ResponseWriter, r *http.Request) {
	res, err := h.lookup.Countries(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) companies(w http.ResponseWriter, r *http.Request) {
	res, err := h.lookup.Companies(r.Context(), r.URL.Query().Get("country"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) branches(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	res, err := h.lookup.Branches(r.Context(), q.Get("country"), q.Get("company"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) storeID(w http.ResponseWriter, r *http.Request) {
	var req storeIDRequest
	if err := decodeValid(r, storeIDSchema, &req); err != nil {
		h.decodeError(w, r, err)
		return
	}

	id, err := h.lookup.StoreID(r.Context(), req.Country, req.Company, req.Branch)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeMessage(w, http.StatusNotFound, "store not found")
			return
		}
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, storeIDResponse{StoreID: id})
}
