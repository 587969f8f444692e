package motifio

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aria-lang/motifscan-go/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const setJSON = `{
  "motifs": [
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
      "threshold": 1.5,
      "counts": [[1, 0], [0, 1], [0, 0], [0, 0]]
    }
  ]
}`

func TestReadJSON(t *testing.T) {
	set, err := ReadJSON(strings.NewReader(setJSON))
	require.NoError(t, err)

	assert.Equal(t, 2, set.Len())
	assert.Equal(t, []string{"acuR", "motif_2"}, set.Names())
	assert.Equal(t, []float64{0.6836163375410198, 1.5}, set.Thresholds())

	mats, err := set.Matrices()
	require.NoError(t, err)
	require.Len(t, mats, 2)
	assert.Equal(t, 8, mats[0].Width())
	assert.Equal(t, 2, mats[1].Width())
}

func TestReadJSONErrors(t *testing.T) {
	_, err := ReadJSON(strings.NewReader(`{"motifs": [`))
	require.Error(t, err)

	_, err = ReadJSON(strings.NewReader(`{"matrices": []}`))
	require.Error(t, err)

	set, err := ReadJSON(strings.NewReader(`{"motifs": [{"name": "bad", "counts": [[1, 2], [1], [1, 2], [1, 2]]}]}`))
	require.NoError(t, err)
	_, err = set.Matrices()
	require.Error(t, err)
	assert.True(t, validation.IsConfiguration(err))
	assert.Contains(t, err.Error(), `"bad"`)
}

func TestWriteJSONRoundTrip(t *testing.T) {
	set, err := ReadJSON(strings.NewReader(setJSON))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, set.WriteJSON(&buf))
	back, err := ReadJSON(&buf)
	require.NoError(t, err)
	assert.Equal(t, set, back)
}

func TestLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "motifs.json")
	require.NoError(t, os.WriteFile(path, []byte(setJSON), 0o644))

	set, err := LoadJSON(path)
	require.NoError(t, err)
	assert.Equal(t, 2, set.Len())

	_, err = LoadJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestReadPFM(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "plain rows",
			input: "0 0 50\n0 50 0\n50 0 0\n1 2 3\n",
		},
		{
			name:  "labelled with comments",
			input: "# acuR fragment\n\nA: 0 0 50\nC: 0 50 0\n\nG: 50 0 0\nT: 1 2 3\n",
		},
		{
			name:  "jaspar brackets",
			input: "A  [ 0 0 50 ]\nC  [ 0 50 0 ]\nG  [ 50 0 0 ]\nT  [ 1 2 3 ]\n",
		},
		{
			name:  "labels out of order",
			input: "t 1 2 3\nG 50 0 0\nC 0 50 0\nA 0 0 50\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ReadPFM(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, [][]float64{
				{0, 0, 50},
				{0, 50, 0},
				{50, 0, 0},
				{1, 2, 3},
			}, m.Rows())
		})
	}
}

func TestReadPFMErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"three rows", "1 2\n3 4\n5 6\n"},
		{"five rows", "1\n2\n3\n4\n5\n"},
		{"bad number", "1 x\n1 2\n1 2\n1 2\n"},
		{"duplicate label", "A 1\nA 2\nG 3\nT 4\n"},
		{"ragged", "1 2\n1\n1 2\n1 2\n"},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadPFM(strings.NewReader(tt.input))
			require.Error(t, err)
		})
	}
}

func TestLoadPFM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.pfm")
	require.NoError(t, os.WriteFile(path, []byte("1 2\n3 4\n5 6\n7 8\n"), 0o644))

	m, err := LoadPFM(path)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Width())
}
