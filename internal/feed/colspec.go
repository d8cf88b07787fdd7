package feed

// ColumnSpec maps one field of the realtime2 feed to its half-open byte
// range within a line. Ranges never overlap and together cover the full
// 19-field vocabulary.
type ColumnSpec struct {
	Field string
	Start int
	End   int
}

// Columns is the fixed-width layout of the NDBC realtime2 text product, in
// source column order. Offsets are bytes, not runes; the feed is ASCII.
var Columns = []ColumnSpec{
	{"YY", 0, 4},
	{"MM", 5, 7},
	{"DD", 8, 10},
	{"hh", 11, 13},
	{"mm", 14, 16},
	{"WDIR", 17, 21},
	{"WSPD", 22, 26},
	{"GST", 27, 31},
	{"WVHT", 32, 38},
	{"DPD", 39, 44},
	{"APD", 45, 48},
	{"MWD", 49, 52},
	{"PRES", 53, 60},
	{"ATMP", 61, 66},
	{"WTMP", 67, 72},
	{"DEWP", 73, 78},
	{"VIS", 79, 82},
	{"PTDY", 83, 88},
	{"TIDE", 89, 93},
}

// LineWidth is the byte offset just past the last column.
const LineWidth = 93
