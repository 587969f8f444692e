// Package handlers provides HTTP handlers for the motifscan API.
package handlers

import (
	"net/http"

	"github.com/aria-lang/motifscan-go/pkg/motifscan"
)

// SequenceRequest represents a request with a sequence.
type SequenceRequest struct {
	Sequence string `json:"sequence"`
}

// ValidateResponse represents validation result.
type ValidateResponse struct {
	Valid     bool   `json:"valid"`
	Length    int    `json:"length"`
	Ambiguous int    `json:"ambiguous"`
	Message   string `json:"message,omitempty"`
}

// ValidateHandler handles sequence validation requests.
func ValidateHandler(w http.ResponseWriter, r *http.Request) {
	var req SequenceRequest
	if !decode(w, r, &req) {
		return
	}

	seq, err := motifscan.NewSequence(req.Sequence)
	if err != nil {
		writeJSON(w, http.StatusOK, ValidateResponse{
			Valid:   false,
			Length:  len(req.Sequence),
			Message: err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, ValidateResponse{
		Valid:     true,
		Length:    seq.Len(),
		Ambiguous: seq.CountAmbiguous(),
	})
}

// SequenceStatsHandler handles sequence composition requests.
func SequenceStatsHandler(w http.ResponseWriter, r *http.Request) {
	var req SequenceRequest
	if !decode(w, r, &req) {
		return
	}

	seq, err := motifscan.NewSequence(req.Sequence)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, motifscan.SequenceStats(seq))
}

// ReverseComplementResponse represents the response for reverse complement.
type ReverseComplementResponse struct {
	ReverseComplement string `json:"reverse_complement"`
}

// ReverseComplementHandler handles reverse complement requests.
func ReverseComplementHandler(w http.ResponseWriter, r *http.Request) {
	var req SequenceRequest
	if !decode(w, r, &req) {
		return
	}

	seq, err := motifscan.NewSequence(req.Sequence)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, ReverseComplementResponse{
		ReverseComplement: seq.ReverseComplement().Bases,
	})
}
