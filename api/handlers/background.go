package handlers

import (
	"net/http"

	"github.com/aria-lang/motifscan-go/pkg/motifscan"
)

// BackgroundRequest asks for a background estimated from a sequence.
type BackgroundRequest struct {
	Sequence    string  `json:"sequence"`
	Pseudocount float64 `json:"pseudocount"`
}

// BackgroundResponse lists probabilities in A, C, G, T order.
type BackgroundResponse struct {
	Probabilities []float64 `json:"probabilities"`
	Alphabet      string    `json:"alphabet"`
}

// BackgroundHandler estimates base probabilities from a sequence.
func BackgroundHandler(w http.ResponseWriter, r *http.Request) {
	var req BackgroundRequest
	if !decode(w, r, &req) {
		return
	}

	seq, err := motifscan.NewSequence(req.Sequence)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	ps := req.Pseudocount
	if ps == 0 {
		ps = motifscan.DefaultBackgroundPseudocount
	}
	bg, err := motifscan.BackgroundFromSequence(seq, ps)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, BackgroundResponse{
		Probabilities: motifscan.BackgroundProbabilities(bg),
		Alphabet:      motifscan.Alphabet,
	})
}

// backgroundFor picks the request background: explicit probabilities,
// estimated from the sequence, or flat.
func backgroundFor(probs []float64, fromSequence bool, seq *motifscan.Sequence) (motifscan.Background, error) {
	switch {
	case len(probs) > 0:
		return motifscan.EmpiricalBackground(probs)
	case fromSequence:
		return motifscan.BackgroundFromSequence(seq, motifscan.DefaultBackgroundPseudocount)
	default:
		return motifscan.FlatBackground(), nil
	}
}
