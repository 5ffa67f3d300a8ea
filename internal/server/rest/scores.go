package rest

import (
	"net/http"
	"time"
)

type addScoreRequest struct {
	StaffID int64 `json:"staff_id"`
	Score   int   `json:"score"`
}

type addScoreResponse struct {
	Message string `json:"message"`
	ScoreID int64  `json:"score_id"`
}

type getScoresRequest struct {
	StaffID int64 `json:"staff_id"`
}

type scoreResponse struct {
	Score int       `json:"score"`
	Date  time.Time `json:"date"`
}

func (h *Handler) addScore(w http.ResponseWriter, r *http.Request) {
	var req addScoreRequest
	if err := decodeValid(r, addScoreSchema, &req); err != nil {
		h.decodeError(w, r, err)
		return
	}

	s, err := h.scores.AddScore(r.Context(), req.StaffID, req.Score)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, addScoreResponse{Message: "Score added successfully", ScoreID: s.ID})
}

func (h *Handler) recentScores(w http.ResponseWriter, r *http.Request) {
	var req getScoresRequest
	if err := decodeValid(r, getScoresSchema, &req); err != nil {
		h.decodeError(w, r, err)
		return
	}

	list, err := h.scores.RecentScores(r.Context(), req.StaffID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	res := make([]scoreResponse, 0, len(list))
	for _, s := range list {
		res = append(res, scoreResponse{Score: s.Score, Date: s.Date.UTC()})
	}
	writeJSON(w, http.StatusOK, res)
}
