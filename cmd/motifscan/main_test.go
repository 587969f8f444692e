package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aria-lang/motifscan-go/pkg/motifscan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const apFAB46 = "AAAAAGACAATGAAAAGCTTAGTCATGGCGCGCCAAAAAGAGTATTG" +
	"ACTTCGCATCTTTTTGTACCTATAATAGATTCATTGCTA"

const motifSet = `{"motifs": [
  {
    "name": "acuR",
    "threshold": 0.6836163375410198,
    "counts": [
      [0, 0, 0, 0, 25, 21, 17.5, 34.5],
      [0, 0, 50, 2, 7.5, 0, 0, 0],
      [50, 0, 0, 0, 0, 11.5, 0, 2],
      [0, 50, 0, 48, 17.5, 17.5, 32.5, 13.5]
    ]
  },
  {
    "name": "434_cI",
    "threshold": 1.2748406244294834,
    "counts": [
      [621, 80, 186, 0, 0, 0, 0],
      [0, 76, 68, 30, 0, 0, 0],
      [0, 375, 0, 0, 0, 659, 0],
      [38, 128, 405, 629, 659, 0, 659]
    ]
  }
]}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSearchCmdTSV(t *testing.T) {
	motifs := writeFile(t, "set.json", motifSet)
	fasta := writeFile(t, "in.fa", ">apFAB46 promoter\n"+apFAB46[:40]+"\n"+apFAB46[40:]+"\n")

	var stdout, stderr bytes.Buffer
	err := searchCmd([]string{"-motifs", motifs, "-fasta", fasta, "-v", "-workers", "2"}, &stdout, &stderr)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "seq_id\tmotif\tposition\tstrand\tscore", lines[0])

	var got []string
	for _, line := range lines[1:] {
		fields := strings.Split(line, "\t")
		require.Len(t, fields, 5)
		got = append(got, fields[1]+" "+fields[3]+fields[2])
	}
	assert.Equal(t, []string{
		"acuR +54", "acuR -69", "acuR -34", "acuR -0",
		"434_cI +57", "434_cI -6",
	}, got)
	assert.Contains(t, stderr.String(), "apFAB46: 86 bp, 6 hits, 2/2 motifs matched")
	assert.Contains(t, stderr.String(), "  acuR: 4 hits (+1/-3), best 7.1259 at -0")
	assert.Contains(t, stderr.String(), "    scores from 0.6836 by ")
}

func TestSearchCmdRegion(t *testing.T) {
	motifs := writeFile(t, "set.json", motifSet)

	var stdout, stderr bytes.Buffer
	err := searchCmd([]string{"-motifs", motifs, "-seq", apFAB46, "-region", "30:86"}, &stdout, &stderr)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	var got []string
	for _, line := range lines[1:] {
		fields := strings.Split(line, "\t")
		got = append(got, fields[1]+" "+fields[3]+fields[2])
	}
	// offsets stay in whole-sequence coordinates
	assert.Equal(t, []string{"acuR +54", "acuR -69", "acuR -34", "434_cI +57"}, got)

	stdout.Reset()
	require.NoError(t, searchCmd([]string{"-motifs", motifs, "-seq", apFAB46, "-region", "30:"}, &stdout, &stderr))
	assert.Equal(t, strings.Join(lines, "\n"), strings.TrimSpace(stdout.String()))

	for _, region := range []string{"30", "x:40", "40:30", "0:200"} {
		err := searchCmd([]string{"-motifs", motifs, "-seq", apFAB46, "-region", region}, &stdout, &stderr)
		assert.Error(t, err, region)
	}
}

func TestSearchCmdJSONForwardOnly(t *testing.T) {
	motifs := writeFile(t, "set.json", motifSet)

	var stdout, stderr bytes.Buffer
	err := searchCmd([]string{"-motifs", motifs, "-seq", apFAB46, "-both=false", "-json", "-chunk", "16"}, &stdout, &stderr)
	require.NoError(t, err)

	var out []sequenceResult
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &out))
	require.Len(t, out, 1)
	require.Len(t, out[0].Results, 2)
	assert.Equal(t, 86, out[0].Length)
	require.Len(t, out[0].Results[0].Hits, 1)
	assert.Equal(t, 54, out[0].Results[0].Hits[0].Position.Offset)
	assert.Equal(t, 2, out[0].Summary.TotalHits)
}

func TestSearchCmdSequenceBackground(t *testing.T) {
	motifs := writeFile(t, "set.json", motifSet)

	var stdout, stderr bytes.Buffer
	err := searchCmd([]string{"-motifs", motifs, "-seq", apFAB46, "-bg", "seq"}, &stdout, &stderr)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout.String(), "seq_id\t"))
}

func TestSearchCmdErrors(t *testing.T) {
	motifs := writeFile(t, "set.json", motifSet)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no motifs", []string{"-seq", "ACGT"}, "-motifs is required"},
		{"no input", []string{"-motifs", motifs}, "either -fasta or -seq"},
		{"bad base", []string{"-motifs", motifs, "-seq", "ACGZ"}, "invalid base 'Z'"},
		{"bad policy", []string{"-motifs", motifs, "-seq", "ACGT", "-ambiguity", "maybe"}, "unknown policy"},
		{"bad lookahead", []string{"-motifs", motifs, "-seq", "ACGT", "-lookahead", "12"}, "lookahead"},
		{"bad background", []string{"-motifs", motifs, "-seq", "ACGT", "-bg", "gc"}, "unknown background"},
		{"strict", []string{"-motifs", motifs, "-seq", "ACGTNNACGT", "-ambiguity", "strict"}, "ambiguous base 'N' at position 4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			err := searchCmd(tt.args, &stdout, &stderr)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLogOddsCmd(t *testing.T) {
	pfm := writeFile(t, "m.pfm", "A [ 10 0 ]\nC [ 0 10 ]\nG [ 0 0 ]\nT [ 0 0 ]\n")

	var stdout, stderr bytes.Buffer
	require.NoError(t, logOddsCmd([]string{"-pfm", pfm}, &stdout, &stderr))

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "A\t"))
	assert.True(t, strings.HasPrefix(lines[3], "T\t"))
	assert.Contains(t, lines[4], "# width 2")

	err := logOddsCmd([]string{"-pfm", pfm, "-bg", "0.5,0.5,0,0"}, &stdout, &stderr)
	require.Error(t, err)

	stdout.Reset()
	require.NoError(t, logOddsCmd([]string{"-pfm", pfm, "-bg", "0.3, 0.2, 0.2, 0.3"}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "# width 2")
}

func TestMotifsCmd(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.pfm")
	second := filepath.Join(dir, "second.pfm")
	require.NoError(t, os.WriteFile(first, []byte("10 0\n0 10\n0 0\n0 0\n"), 0o644))
	require.NoError(t, os.WriteFile(second, []byte("A: 1 2 3\nC: 0 0 0\nG: 4 4 4\nT: 0 1 0\n"), 0o644))

	var stdout, stderr bytes.Buffer
	require.NoError(t, motifsCmd([]string{"-pfm", first + "," + second, "-threshold", "1.5"}, &stdout, &stderr))

	var set motifscan.MotifSet
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &set))
	require.Len(t, set.Motifs, 2)
	assert.Equal(t, "first", set.Motifs[0].Name)
	assert.Equal(t, "second", set.Motifs[1].Name)
	assert.Equal(t, 1.5, set.Motifs[1].Threshold)
	assert.Equal(t, [][]float64{{1, 2, 3}, {0, 0, 0}, {4, 4, 4}, {0, 1, 0}}, set.Motifs[1].Counts)

	// the output is a motif set search can load
	path := writeFile(t, "set.json", stdout.String())
	stdout.Reset()
	require.NoError(t, searchCmd([]string{"-motifs", path, "-seq", "ACGTACAC"}, &stdout, &stderr))

	stdout.Reset()
	require.NoError(t, motifsCmd([]string{"-pfm", first, "-names", "ac"}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), `"name": "ac"`)

	err := motifsCmd([]string{"-pfm", first + "," + second, "-names", "one"}, &stdout, &stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "got 1 names for 2 PFM files")

	err = motifsCmd(nil, &stdout, &stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "-pfm is required")
}

func TestBackgroundCmd(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.NoError(t, backgroundCmd([]string{"-seq", "AAAC", "-pseudocount", "1"}, &stdout, &stderr))
	assert.Equal(t, "seq\tA=0.500000\tC=0.250000\tG=0.125000\tT=0.125000\n", stdout.String())
}

func TestInfoCmd(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.NoError(t, infoCmd([]string{"-seq", "GGCAN"}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "Length: 5 bp")
	assert.Contains(t, stdout.String(), "GC Content: 75.00%")
	assert.Contains(t, stdout.String(), "ambiguous=1")
}
