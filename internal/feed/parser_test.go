package feed

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildLine lays tokens out at their configured byte offsets, padding with
// spaces, so fixtures cannot drift from the column table.
func buildLine(tokens map[string]string) string {
	buf := []byte(strings.Repeat(" ", LineWidth))
	for _, col := range Columns {
		if tok, ok := tokens[col.Field]; ok {
			copy(buf[col.Start:col.End], tok)
		}
	}
	return string(buf)
}

func TestColumnsInvariants(t *testing.T) {
	t.Parallel()

	require.Len(t, Columns, 19)

	seen := make(map[string]bool)
	prevEnd := 0
	for _, col := range Columns {
		assert.False(t, seen[col.Field], "duplicate field %s", col.Field)
		seen[col.Field] = true

		assert.Less(t, col.Start, col.End, "field %s has an empty range", col.Field)
		assert.GreaterOrEqual(t, col.Start, prevEnd, "field %s overlaps the previous column", col.Field)
		prevEnd = col.End
	}
	assert.Equal(t, LineWidth, prevEnd)

	for _, field := range []string{
		"YY", "MM", "DD", "hh", "mm",
		"WDIR", "WSPD", "GST",
		"WVHT", "DPD", "APD", "MWD",
		"PRES", "ATMP", "WTMP", "DEWP", "VIS", "PTDY", "TIDE",
	} {
		assert.True(t, seen[field], "vocabulary field %s missing from column table", field)
	}
}

func TestScannerDropsOnlyHeaderLine(t *testing.T) {
	t.Parallel()

	header := "#YY  MM DD hh mm WDIR WSPD GST  WVHT   DPD   APD MWD   PRES   ATMP  WTMP  DEWP  VIS PTDY  TIDE"
	units := buildLine(map[string]string{"YY": "#yr", "WDIR": "degT", "WSPD": "m/s"})
	values := buildLine(map[string]string{"YY": "2024", "WDIR": "180", "WSPD": "5.1"})

	sc := NewScanner(strings.NewReader(header + "\n" + units + "\n" + values + "\n"))

	var rows []Row
	for sc.Scan() {
		rows = append(rows, sc.Row())
	}
	require.NoError(t, sc.Err())

	// The units-description line starts with "#yr", not "#YY", so it survives
	// and becomes the first row.
	require.Len(t, rows, 2)
	assert.Equal(t, "#yr", rows[0]["YY"])
	assert.Equal(t, "degT", rows[0]["WDIR"])
	assert.Equal(t, "180", rows[1]["WDIR"])
}

func TestScannerTrimsTokens(t *testing.T) {
	t.Parallel()

	line := buildLine(map[string]string{"YY": "2024", "WSPD": "5.1", "GST": "MM"})
	sc := NewScanner(strings.NewReader(line))

	require.True(t, sc.Scan())
	row := sc.Row()

	assert.Equal(t, "5.1", row["WSPD"])
	assert.Equal(t, "MM", row["GST"])
	assert.Equal(t, "", row["TIDE"])
}

func TestScannerShortLine(t *testing.T) {
	t.Parallel()

	// Line ends mid-way through the DD column; later columns must come back
	// empty without a bounds error.
	sc := NewScanner(strings.NewReader("2024 03 1"))

	require.True(t, sc.Scan())
	row := sc.Row()

	assert.Equal(t, "2024", row["YY"])
	assert.Equal(t, "03", row["MM"])
	assert.Equal(t, "1", row["DD"])
	assert.Equal(t, "", row["hh"])
	assert.Equal(t, "", row["TIDE"])

	// Every vocabulary field is present even on a short line.
	assert.Len(t, row, len(Columns))
}

func TestSlicingIsDeterministic(t *testing.T) {
	t.Parallel()

	line := buildLine(map[string]string{
		"YY": "2024", "MM": "03", "DD": "14", "hh": "12", "mm": "30",
		"WDIR": "180", "WSPD": "5.1", "GST": "MM", "WVHT": "1.2",
	})

	first := sliceLine(line)
	second := sliceLine(line)
	assert.Equal(t, first, second)
}

func TestReadReportRoles(t *testing.T) {
	t.Parallel()

	header := "#YY  MM DD hh mm WDIR WSPD GST"
	units := buildLine(map[string]string{"WSPD": "m/s"})
	latest := buildLine(map[string]string{"WSPD": "5.1"})
	older := buildLine(map[string]string{"WSPD": "4.2"})

	rep, err := ReadReport(strings.NewReader(strings.Join([]string{header, units, latest, older}, "\n")))
	require.NoError(t, err)

	assert.Equal(t, "m/s", rep.Units["WSPD"])
	assert.Equal(t, "5.1", rep.Latest["WSPD"])
}

func TestReadReportTruncated(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"header only", "#YY  MM DD hh mm\n"},
		{"single surviving row", "#YY  MM DD hh mm\n" + buildLine(map[string]string{"WSPD": "m/s"})},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rep, err := ReadReport(strings.NewReader(tt.input))
			assert.Nil(t, rep)
			assert.ErrorIs(t, err, ErrTruncatedReport)
		})
	}
}
