package handlers

import (
	"net/http"

	"github.com/aria-lang/motifscan-go/pkg/motifscan"
)

// LogOddsRequest carries a count matrix to convert.
type LogOddsRequest struct {
	Counts      [][]float64 `json:"counts"`
	Background  []float64   `json:"background,omitempty"`
	Pseudocount float64     `json:"pseudocount,omitempty"`
}

// LogOddsResponse holds the scoring matrix rows and its score range.
type LogOddsResponse struct {
	Width    int         `json:"width"`
	Scores   [][]float64 `json:"scores"`
	MaxScore float64     `json:"max_score"`
	MinScore float64     `json:"min_score"`
}

// LogOddsHandler converts counts to log-odds scores.
func LogOddsHandler(w http.ResponseWriter, r *http.Request) {
	var req LogOddsRequest
	if !decode(w, r, &req) {
		return
	}

	counts, err := motifscan.NewCountMatrix(req.Counts)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	bg, err := backgroundFor(req.Background, false, nil)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	m, err := motifscan.LogOdds(counts, bg, req.Pseudocount)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	writeJSON(w, http.StatusOK, LogOddsResponse{
		Width:    m.Width(),
		Scores:   m.Rows(),
		MaxScore: m.MaxScore(),
		MinScore: m.MinScore(),
	})
}
