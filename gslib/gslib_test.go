package gslib_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/minelab/gslib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleGeoEAS = `Drillhole composites
3
East
North
Au
100.5 200.25 1.2
101 201 0.8
102.5 199.75 2.4
`

// TestReadGeoEAS parses the canonical layout end to end.
func TestReadGeoEAS(t *testing.T) {
	table, err := gslib.ReadGeoEAS(strings.NewReader(sampleGeoEAS))
	require.NoError(t, err)

	assert.Equal(t, "Drillhole composites", table.Title)
	assert.Equal(t, []string{"East", "North", "Au"}, table.Names)
	require.Len(t, table.Rows, 3)
	assert.Equal(t, []float64{100.5, 200.25, 1.2}, table.Rows[0])

	au, err := table.Column("Au")
	require.NoError(t, err)
	assert.Equal(t, []float64{1.2, 0.8, 2.4}, au)

	_, err = table.Column("Ag")
	assert.ErrorIs(t, err, gslib.ErrUnknownColumn)
}

// TestReadGeoEAS_Errors covers the header and row sentinels.
func TestReadGeoEAS_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{name: "empty input", input: "", want: gslib.ErrEmptyInput},
		{name: "missing count", input: "title only\n", want: gslib.ErrBadHeader},
		{name: "bad count", input: "t\nzero\n", want: gslib.ErrBadHeader},
		{name: "truncated names", input: "t\n3\nEast\n", want: gslib.ErrBadHeader},
		{name: "short row", input: "t\n2\nA\nB\n1.0\n", want: gslib.ErrColumnCount},
		{name: "non-numeric", input: "t\n1\nA\nNaN?\n", want: gslib.ErrBadValue},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gslib.ReadGeoEAS(strings.NewReader(tc.input))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestGeoEAS_RoundTrip: write-then-read reproduces the table.
func TestGeoEAS_RoundTrip(t *testing.T) {
	original := &gslib.Table{
		Title: "blast monitoring",
		Names: []string{"distance", "ppv"},
		Rows: [][]float64{
			{50, 38.2},
			{120, 9.6},
		},
	}

	var buf strings.Builder
	require.NoError(t, gslib.WriteGeoEAS(&buf, original))

	parsed, err := gslib.ReadGeoEAS(strings.NewReader(buf.String()))
	require.NoError(t, err)
	assert.Equal(t, original, parsed)

	assert.ErrorIs(t, gslib.WriteGeoEAS(&buf, nil), gslib.ErrNilTable)
}

// TestReadCSV parses a headered numeric CSV and rejects bad rows.
func TestReadCSV(t *testing.T) {
	table, err := gslib.ReadCSV(strings.NewReader("east,north,au\n100,200,1.5\n101,201,0.5\n"))
	require.NoError(t, err)
	assert.Empty(t, table.Title)
	assert.Equal(t, []string{"east", "north", "au"}, table.Names)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []float64{101, 201, 0.5}, table.Rows[1])

	_, err = gslib.ReadCSV(strings.NewReader(""))
	assert.ErrorIs(t, err, gslib.ErrEmptyInput)

	_, err = gslib.ReadCSV(strings.NewReader("a,b\n1,2,3\n"))
	assert.ErrorIs(t, err, gslib.ErrColumnCount)

	_, err = gslib.ReadCSV(strings.NewReader("a,b\n1,x\n"))
	assert.ErrorIs(t, err, gslib.ErrBadValue)
}

// TestCSV_RoundTrip: write-then-read reproduces the table (CSV drops
// the title by design).
func TestCSV_RoundTrip(t *testing.T) {
	original := &gslib.Table{
		Names: []string{"depth", "grade"},
		Rows:  [][]float64{{1, 0.25}, {2, 1.75}},
	}

	var buf strings.Builder
	require.NoError(t, gslib.WriteCSV(&buf, original))

	parsed, err := gslib.ReadCSV(strings.NewReader(buf.String()))
	require.NoError(t, err)
	assert.Equal(t, original, parsed)
}
