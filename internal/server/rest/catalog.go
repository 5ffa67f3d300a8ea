package rest

import "net/http"

type learningResourceResponse struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	URL         string  `json:"url"`
}

type questionResponse struct {
	Question       string `json:"question"`
	Answer         bool   `json:"answer"`
	Info           string `json:"info"`
	Followup       string `json:"followup"`
	FollowupAnswer bool   `json:"fanswer"`
}

func (h *Handler) learningResources(w http.ResponseWriter, r *http.Request) {
	list, err := h.catalog.LearningResources(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	res := make([]learningResourceResponse, 0, len(list))
	for _, m := range list {
		res = append(res, learningResourceResponse{Title: m.Title, Description: m.Description, URL: m.URL})
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) questions(w http.ResponseWriter, r *http.Request) {
	list, err := h.catalog.Questions(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	res := make([]questionResponse, 0, len(list))
	for _, m := range list {
		res = append(res, questionResponse{
			Question:       m.Question,
			Answer:         m.Answer,
			Info:           m.Info,
			Followup:       m.Followup,
			FollowupAnswer: m.FollowupAnswer,
		})
	}
	writeJSON(w, http.StatusOK, res)
}
