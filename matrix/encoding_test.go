package matrix_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/littletsp/matrix"
	"github.com/stretchr/testify/require"
)

// sample4 is the classic 4-city symmetric instance.
func sample4(t *testing.T) *matrix.Costs {
	t.Helper()
	m, err := matrix.FromInts([][]int{
		{-1, 10, 15, 20},
		{10, -1, 35, 25},
		{15, 35, -1, 30},
		{20, 25, 30, -1},
	})
	require.NoError(t, err)

	return m
}

func TestReadText(t *testing.T) {
	in := `# four cities
- 10 15 20
10 -1 35 25

15 35 - 30
20 25 30 -
`
	m, err := matrix.ReadText(strings.NewReader(in))
	require.NoError(t, err)
	require.True(t, m.Equal(sample4(t)))
}

func TestReadTextErrors(t *testing.T) {
	_, err := matrix.ReadText(strings.NewReader(""))
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.ReadText(strings.NewReader("- 1 2\n1 -\n"))
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.ReadText(strings.NewReader("- 1\nfoo -\n"))
	require.ErrorIs(t, err, matrix.ErrSyntax)
	require.Contains(t, err.Error(), "line 2")
}

// TestEncodeDecodeFormats writes the sample in every format and reads it back.
func TestEncodeDecodeFormats(t *testing.T) {
	want := sample4(t)
	require.NoError(t, want.Set(2, 3, matrix.Blocked()))

	for _, f := range []matrix.Format{matrix.FormatText, matrix.FormatJSON, matrix.FormatYAML, matrix.FormatTOML} {
		t.Run(string(f), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, matrix.Encode(&buf, want, f))
			got, err := matrix.Decode(&buf, f)
			require.NoError(t, err)
			require.True(t, want.Equal(got), "round trip mismatch:\n%s", got)
		})
	}
}

func TestDecodeDocuments(t *testing.T) {
	yamlDoc := `
costs:
  - [~, 1, 2]
  - [1, "-", ~]
  - [2, 3, ~]
`
	m, err := matrix.Decode(strings.NewReader(yamlDoc), matrix.FormatYAML)
	require.NoError(t, err)
	c, _ := m.At(0, 2)
	require.Equal(t, matrix.Weight(2), c)
	c, _ = m.At(1, 2)
	require.True(t, c.IsBlocked())

	tomlDoc := `costs = [[-1, 1, 2], [1, -1, "-"], [2, 3, -1]]`
	m, err = matrix.Decode(strings.NewReader(tomlDoc), matrix.FormatTOML)
	require.NoError(t, err)
	c, _ = m.At(1, 2)
	require.True(t, c.IsBlocked())

	jsonDoc := `{"costs": [[null, 4, 1], [4, null, 2], [1, 2, null]]}`
	m, err = matrix.Decode(strings.NewReader(jsonDoc), matrix.FormatJSON)
	require.NoError(t, err)
	require.Equal(t, 3, m.Size())
}

func TestFormatSelection(t *testing.T) {
	require.Equal(t, matrix.FormatJSON, matrix.FormatFromPath("a/b.JSON"))
	require.Equal(t, matrix.FormatYAML, matrix.FormatFromPath("m.yml"))
	require.Equal(t, matrix.FormatTOML, matrix.FormatFromPath("m.toml"))
	require.Equal(t, matrix.FormatText, matrix.FormatFromPath("m.txt"))

	f, err := matrix.ParseFormat("YAML")
	require.NoError(t, err)
	require.Equal(t, matrix.FormatYAML, f)
	_, err = matrix.ParseFormat("xml")
	require.ErrorIs(t, err, matrix.ErrUnknownFormat)
}
