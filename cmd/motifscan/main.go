// Command motifscan scans DNA sequences for motif matches.
//
// Usage:
//
//	motifscan [command] [options]
//
// Commands:
//
//	search      Scan sequences with a motif set
//	logodds     Print the log-odds matrix of a PFM file
//	motifs      Build a JSON motif set from PFM files
//	background  Estimate background probabilities from sequences
//	info        Show sequence composition
//	version     Show version information
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/aria-lang/motifscan-go/pkg/motifscan"
)

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stdout)
		os.Exit(1)
	}

	var err error
	args := os.Args[2:]
	switch command := os.Args[1]; command {
	case "search":
		err = searchCmd(args, os.Stdout, os.Stderr)
	case "logodds":
		err = logOddsCmd(args, os.Stdout, os.Stderr)
	case "motifs":
		err = motifsCmd(args, os.Stdout, os.Stderr)
	case "background":
		err = backgroundCmd(args, os.Stdout, os.Stderr)
	case "info":
		err = infoCmd(args, os.Stdout, os.Stderr)
	case "version":
		fmt.Println(motifscan.Info())
	case "help", "-h", "--help":
		printUsage(os.Stdout)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage(os.Stderr)
		os.Exit(1)
	}

	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `motifscan - Motif Scanning Tool

Usage:
  motifscan <command> [options]

Commands:
  search      Scan sequences with a motif set
  logodds     Print the log-odds matrix of a PFM file
  motifs      Build a JSON motif set from PFM files
  background  Estimate background probabilities from sequences
  info        Show sequence composition
  version     Show version information
  help        Show this help message

Use "motifscan <command> -h" for more information about a command.`)
}

// loadSequences reads -fasta or wraps -seq.
func loadSequences(file, seq string) ([]*motifscan.Sequence, error) {
	if file == "" && seq == "" {
		return nil, errors.New("either -fasta or -seq is required")
	}
	if file != "" {
		sequences, err := motifscan.ReadFASTA(file)
		if err != nil {
			return nil, fmt.Errorf("reading file: %w", err)
		}
		return sequences, nil
	}
	s, err := motifscan.NewSequenceWithID(seq, "seq")
	if err != nil {
		return nil, fmt.Errorf("creating sequence: %w", err)
	}
	return []*motifscan.Sequence{s}, nil
}

type sequenceResult struct {
	ID      string                 `json:"id"`
	Length  int                    `json:"length"`
	Results []motifResult          `json:"results"`
	Summary *motifscan.SearchStats `json:"summary"`
}

type motifResult struct {
	Name string            `json:"name"`
	Hits motifscan.HitList `json:"hits"`
}

func searchCmd(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("search", flag.ContinueOnError)
	fs.SetOutput(stderr)
	motifs := fs.String("motifs", "", "JSON motif set")
	file := fs.String("fasta", "", "FASTA file to scan (.gz allowed)")
	seq := fs.String("seq", "", "Sequence string to scan")
	both := fs.Bool("both", true, "Scan the reverse complement strand too")
	lookahead := fs.Int("lookahead", 7, "Lookahead table width (0-10)")
	ambiguity := fs.String("ambiguity", "skip", "Ambiguous bases: skip, minscore or strict")
	pseudocount := fs.Float64("pseudocount", 0, "Log-odds pseudocount (0 = default)")
	workers := fs.Int("workers", 0, "Worker goroutines (0 = all CPUs)")
	chunk := fs.Int("chunk", 0, "Window starts per job (0 = whole strand)")
	bgMode := fs.String("bg", "flat", "Background: flat or seq")
	asJSON := fs.Bool("json", false, "Write JSON instead of TSV")
	region := fs.String("region", "", "Scan only bases start:end (0-based, end exclusive or empty)")
	verbose := fs.Bool("v", false, "Print a summary per sequence to stderr")
	bins := fs.Int("bins", 5, "Score histogram bins in the -v summary")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *motifs == "" {
		fs.Usage()
		return errors.New("-motifs is required")
	}
	set, err := motifscan.LoadMotifs(*motifs)
	if err != nil {
		return err
	}
	sequences, err := loadSequences(*file, *seq)
	if err != nil {
		return err
	}
	start, end, err := parseRegion(*region)
	if err != nil {
		return err
	}

	policy, err := motifscan.ParseAmbiguity(*ambiguity)
	if err != nil {
		return err
	}
	cfg := motifscan.DefaultConfig()
	cfg.ScanBothStrands = *both
	cfg.Lookahead = *lookahead
	cfg.Ambiguity = policy
	cfg.Pseudocount = *pseudocount
	cfg.Workers = *workers
	cfg.ChunkSize = *chunk

	var shared *motifscan.Search
	if *bgMode == "flat" {
		if shared, err = motifscan.NewSearchFromSet(set, motifscan.FlatBackground(), cfg); err != nil {
			return err
		}
	} else if *bgMode != "seq" {
		return fmt.Errorf("unknown background %q, want flat or seq", *bgMode)
	}

	var out []sequenceResult
	if !*asJSON {
		fmt.Fprintln(stdout, "seq_id\tmotif\tposition\tstrand\tscore")
	}
	for _, s := range sequences {
		if *region != "" {
			stop := end
			if stop < 0 {
				stop = s.Len()
			}
			sub, err := s.Subsequence(start, stop)
			if err != nil {
				return fmt.Errorf("sequence %s: region %s: %w", s.ID, *region, err)
			}
			s = sub
		}
		search := shared
		if search == nil {
			bg, err := motifscan.BackgroundFromSequence(s, motifscan.DefaultBackgroundPseudocount)
			if err != nil {
				return fmt.Errorf("sequence %s: %w", s.ID, err)
			}
			if search, err = motifscan.NewSearchFromSet(set, bg, cfg); err != nil {
				return err
			}
		}

		lists, err := search.Search(s)
		if err != nil {
			return fmt.Errorf("sequence %s: %w", s.ID, err)
		}
		for i := range lists {
			lists[i] = shift(lists[i], start)
		}
		summary, err := motifscan.Summarize(set, lists)
		if err != nil {
			return err
		}
		if *verbose {
			fmt.Fprintf(stderr, "%s: %d bp, %d hits, %d/%d motifs matched\n",
				s.ID, s.Len(), summary.TotalHits, summary.MotifsWithHits, set.Len())
			if err := writeMotifSummary(stderr, summary, lists, *bins); err != nil {
				return err
			}
		}

		if *asJSON {
			res := sequenceResult{ID: s.ID, Length: s.Len(), Summary: summary}
			for i, l := range lists {
				res.Results = append(res.Results, motifResult{Name: set.Motifs[i].Name, Hits: l})
			}
			out = append(out, res)
			continue
		}
		for i, l := range lists {
			for _, h := range l {
				fmt.Fprintf(stdout, "%s\t%s\t%d\t%s\t%.6f\n",
					s.ID, set.Motifs[i].Name, h.Position.Offset, h.Position.Strand, h.Score)
			}
		}
	}

	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}
	return nil
}

// parseRegion reads "start:end". An empty end is returned as -1.
func parseRegion(s string) (int, int, error) {
	if s == "" {
		return 0, -1, nil
	}
	from, to, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("invalid region %q, want start:end", s)
	}
	start, err := strconv.Atoi(from)
	if err != nil || start < 0 {
		return 0, 0, fmt.Errorf("invalid region start %q", from)
	}
	if to == "" {
		return start, -1, nil
	}
	end, err := strconv.Atoi(to)
	if err != nil || end < start {
		return 0, 0, fmt.Errorf("invalid region end %q", to)
	}
	return start, end, nil
}

// shift moves hit offsets from region to full-sequence coordinates.
func shift(l motifscan.HitList, by int) motifscan.HitList {
	if by == 0 {
		return l
	}
	out := make(motifscan.HitList, len(l))
	for i, h := range l {
		h.Position.Offset += by
		out[i] = h
	}
	return out
}

func writeMotifSummary(w io.Writer, summary *motifscan.SearchStats, lists []motifscan.HitList, bins int) error {
	for i, ms := range summary.Motifs {
		fmt.Fprintf(w, "  %s\n", ms)
		if ms.Hits == 0 || bins <= 0 {
			continue
		}
		h, err := motifscan.Histogram(lists[i], ms.Threshold, bins)
		if err != nil {
			return err
		}
		counts := make([]string, len(h.Bins))
		for j, c := range h.Bins {
			counts[j] = strconv.Itoa(c)
		}
		fmt.Fprintf(w, "    scores from %.4f by %.4f: %s (mode bin %d)\n",
			h.Min, h.BinSize, strings.Join(counts, " "), h.Mode())
	}
	return nil
}

func logOddsCmd(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("logodds", flag.ContinueOnError)
	fs.SetOutput(stderr)
	pfm := fs.String("pfm", "", "PFM count matrix file")
	pseudocount := fs.Float64("pseudocount", 1, "Pseudocount")
	bgFlag := fs.String("bg", "", "Background probabilities as A,C,G,T (default flat)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *pfm == "" {
		fs.Usage()
		return errors.New("-pfm is required")
	}
	counts, err := motifscan.LoadPFM(*pfm)
	if err != nil {
		return err
	}
	bg := motifscan.FlatBackground()
	if *bgFlag != "" {
		if bg, err = parseBackground(*bgFlag); err != nil {
			return err
		}
	}
	m, err := motifscan.LogOdds(counts, bg, *pseudocount)
	if err != nil {
		return err
	}

	for r, row := range m.Rows() {
		fields := make([]string, len(row))
		for c, v := range row {
			fields[c] = fmt.Sprintf("%.4f", v)
		}
		fmt.Fprintf(stdout, "%c\t%s\n", motifscan.Alphabet[r], strings.Join(fields, "\t"))
	}
	fmt.Fprintf(stdout, "# width %d, score range [%.4f, %.4f]\n", m.Width(), m.MinScore(), m.MaxScore())
	return nil
}

func motifsCmd(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("motifs", flag.ContinueOnError)
	fs.SetOutput(stderr)
	pfms := fs.String("pfm", "", "Comma-separated PFM files")
	names := fs.String("names", "", "Comma-separated motif names (default: file names)")
	threshold := fs.Float64("threshold", 0, "Score threshold for every motif")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *pfms == "" {
		fs.Usage()
		return errors.New("-pfm is required")
	}
	files := strings.Split(*pfms, ",")
	var labels []string
	if *names != "" {
		if labels = strings.Split(*names, ","); len(labels) != len(files) {
			return fmt.Errorf("got %d names for %d PFM files", len(labels), len(files))
		}
	}

	set := &motifscan.MotifSet{Motifs: make([]motifscan.Motif, len(files))}
	for i, file := range files {
		counts, err := motifscan.LoadPFM(file)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		name := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
		if labels != nil {
			name = labels[i]
		}
		set.Motifs[i] = motifscan.Motif{Name: name, Threshold: *threshold, Counts: counts.Rows()}
	}
	return motifscan.WriteMotifs(stdout, set)
}

func parseBackground(s string) (motifscan.Background, error) {
	parts := strings.Split(s, ",")
	probs := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid probability %q", p)
		}
		probs[i] = v
	}
	return motifscan.EmpiricalBackground(probs)
}

func backgroundCmd(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("background", flag.ContinueOnError)
	fs.SetOutput(stderr)
	file := fs.String("fasta", "", "FASTA file to analyze")
	seq := fs.String("seq", "", "Sequence string to analyze")
	pseudocount := fs.Float64("pseudocount", motifscan.DefaultBackgroundPseudocount, "Pseudocount per base")
	if err := fs.Parse(args); err != nil {
		return err
	}

	sequences, err := loadSequences(*file, *seq)
	if err != nil {
		fs.Usage()
		return err
	}

	for _, s := range sequences {
		bg, err := motifscan.BackgroundFromSequence(s, *pseudocount)
		if err != nil {
			return fmt.Errorf("sequence %s: %w", s.ID, err)
		}
		probs := motifscan.BackgroundProbabilities(bg)
		fmt.Fprintf(stdout, "%s\tA=%.6f\tC=%.6f\tG=%.6f\tT=%.6f\n", s.ID, probs[0], probs[1], probs[2], probs[3])
	}
	return nil
}

func infoCmd(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("info", flag.ContinueOnError)
	fs.SetOutput(stderr)
	file := fs.String("fasta", "", "FASTA file to analyze")
	seq := fs.String("seq", "", "Sequence string to analyze")
	if err := fs.Parse(args); err != nil {
		return err
	}

	sequences, err := loadSequences(*file, *seq)
	if err != nil {
		fs.Usage()
		return err
	}

	for i, s := range sequences {
		st := motifscan.SequenceStats(s)
		fmt.Fprintf(stdout, "Sequence %d:\n", i+1)
		if s.ID != "" {
			fmt.Fprintf(stdout, "  ID: %s\n", s.ID)
		}
		fmt.Fprintf(stdout, "  Length: %d bp\n", st.Length)
		fmt.Fprintf(stdout, "  GC Content: %.2f%%\n", st.GCContent*100)
		fmt.Fprintf(stdout, "  Base Counts: A=%d, C=%d, G=%d, T=%d, ambiguous=%d\n",
			st.ACount, st.CCount, st.GCount, st.TCount, st.AmbiguousCount)
		fmt.Fprintln(stdout)
	}
	return nil
}
