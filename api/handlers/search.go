package handlers

import (
	"fmt"
	"net/http"

	"github.com/aria-lang/motifscan-go/pkg/motifscan"
)

// SearchOptions overrides the default search configuration. Unset fields
// keep their defaults.
type SearchOptions struct {
	BothStrands  *bool     `json:"both_strands,omitempty"`
	Lookahead    *int      `json:"lookahead,omitempty"`
	Ambiguity    string    `json:"ambiguity,omitempty"`
	Pseudocount  float64   `json:"pseudocount,omitempty"`
	ChunkSize    int       `json:"chunk_size,omitempty"`
	Background   []float64 `json:"background,omitempty"`
	FromSequence bool      `json:"background_from_sequence,omitempty"`
}

// SearchRequest scans one sequence with a set of motifs.
type SearchRequest struct {
	Sequence string            `json:"sequence"`
	ID       string            `json:"id,omitempty"`
	Motifs   []motifscan.Motif `json:"motifs"`
	Options  SearchOptions     `json:"options"`
}

// MotifResult holds the hits of one motif.
type MotifResult struct {
	Name      string            `json:"name"`
	Threshold float64           `json:"threshold"`
	Hits      motifscan.HitList `json:"hits"`
}

// SearchResponse lists results in motif order plus a summary.
type SearchResponse struct {
	ID      string                 `json:"id,omitempty"`
	Length  int                    `json:"length"`
	Results []MotifResult          `json:"results"`
	Summary *motifscan.SearchStats `json:"summary"`
}

// Per-request limits. A lookahead table holds 4^q float64 scores per
// motif and strand, so MaxTableBytes bounds the memory one search compiles.
const (
	MaxMotifs     = 500
	MaxTableBytes = 128 << 20
)

// checkLimits rejects requests whose compiled plans would exceed the limits.
func checkLimits(motifs []motifscan.Motif, cfg motifscan.Config) error {
	if len(motifs) > MaxMotifs {
		return fmt.Errorf("too many motifs: %d, limit %d", len(motifs), MaxMotifs)
	}
	strands := 1
	if cfg.ScanBothStrands {
		strands = 2
	}
	total := 0
	for _, m := range motifs {
		q := cfg.Lookahead
		if len(m.Counts) > 0 && len(m.Counts[0]) < q {
			q = len(m.Counts[0])
		}
		if q < 0 || q > motifscan.MaxLookahead {
			// the search reports the configuration error
			continue
		}
		total += strands * 8 << (2 * q)
		if total > MaxTableBytes {
			return fmt.Errorf("lookahead tables would need more than %d bytes, lower lookahead or send fewer motifs", MaxTableBytes)
		}
	}
	return nil
}

func (o SearchOptions) config() (motifscan.Config, error) {
	cfg := motifscan.DefaultConfig()
	if o.BothStrands != nil {
		cfg.ScanBothStrands = *o.BothStrands
	}
	if o.Lookahead != nil {
		cfg.Lookahead = *o.Lookahead
	}
	if o.Ambiguity != "" {
		policy, err := motifscan.ParseAmbiguity(o.Ambiguity)
		if err != nil {
			return cfg, err
		}
		cfg.Ambiguity = policy
	}
	cfg.Pseudocount = o.Pseudocount
	cfg.ChunkSize = o.ChunkSize
	return cfg, nil
}

// SearchHandler handles motif search requests.
func SearchHandler(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if !decode(w, r, &req) {
		return
	}

	seq, err := motifscan.NewSequenceWithID(req.Sequence, req.ID)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	cfg, err := req.Options.config()
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := checkLimits(req.Motifs, cfg); err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, err)
		return
	}
	bg, err := backgroundFor(req.Options.Background, req.Options.FromSequence, seq)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	set := &motifscan.MotifSet{Motifs: req.Motifs}
	s, err := motifscan.NewSearchFromSet(set, bg, cfg)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	lists, err := s.SearchContext(r.Context(), seq)
	if err != nil {
		if r.Context().Err() != nil {
			writeError(w, http.StatusServiceUnavailable, err)
			return
		}
		writeError(w, http.StatusBadRequest, err)
		return
	}
	summary, err := motifscan.Summarize(set, lists)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	resp := SearchResponse{
		ID:      seq.ID,
		Length:  seq.Len(),
		Results: make([]MotifResult, len(lists)),
		Summary: summary,
	}
	for i, l := range lists {
		resp.Results[i] = MotifResult{
			Name:      set.Motifs[i].Name,
			Threshold: set.Motifs[i].Threshold,
			Hits:      l,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}
