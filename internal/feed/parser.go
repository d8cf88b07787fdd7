package feed

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// headerMarker prefixes the single column-header line that the feed carries.
// Only that line is filtered; the units-description line right below it is
// parsed like any data line, which is what gives the first surviving row its
// units-row role.
const headerMarker = "#YY"

// Row maps each field of the column vocabulary to its raw, trimmed token.
// Every field is present; a line shorter than a column's range yields the
// trimmed partial (possibly empty) token.
type Row map[string]string

// Scanner yields one Row per input line, in order, dropping the headerMarker
// line. It is forward-only and cannot be restarted. The scanner does no
// semantic validation; it is purely positional slicing.
type Scanner struct {
	sc  *bufio.Scanner
	row Row
}

func NewScanner(r io.Reader) *Scanner {
	return &Scanner{sc: bufio.NewScanner(r)}
}

// Scan advances to the next non-header line, returning false at end of input
// or on a read error.
func (s *Scanner) Scan() bool {
	for s.sc.Scan() {
		line := s.sc.Text()
		if strings.HasPrefix(line, headerMarker) {
			continue
		}
		s.row = sliceLine(line)
		return true
	}
	s.row = nil
	return false
}

// Row returns the row produced by the last successful Scan.
func (s *Scanner) Row() Row {
	return s.row
}

func (s *Scanner) Err() error {
	return s.sc.Err()
}

func sliceLine(line string) Row {
	row := make(Row, len(Columns))
	for _, col := range Columns {
		row[col.Field] = sliceColumn(line, col)
	}
	return row
}

func sliceColumn(line string, col ColumnSpec) string {
	start, end := col.Start, col.End
	if start > len(line) {
		start = len(line)
	}
	if end > len(line) {
		end = len(line)
	}
	return strings.TrimSpace(line[start:end])
}

// ErrTruncatedReport is returned when the feed does not contain both
// conventional rows.
var ErrTruncatedReport = errors.New("feed: report has fewer than two rows")

// Report names the feed's two-row convention: the first surviving row carries
// unit abbreviations, the second carries the latest measurement values. Any
// rows after the second are older observations and are not part of a report.
type Report struct {
	Units  Row
	Latest Row
}

// ReadReport scans just far enough to fill both roles.
func ReadReport(r io.Reader) (*Report, error) {
	sc := NewScanner(r)

	var rep Report
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, ErrTruncatedReport
	}
	rep.Units = sc.Row()

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, ErrTruncatedReport
	}
	rep.Latest = sc.Row()

	return &rep, nil
}
