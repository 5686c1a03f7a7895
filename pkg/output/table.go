package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Column represents a single table column with its header and current width.
//
// Fields:
//   - Header: The display text for this column's header
//   - Width: The current display width for this column in character cells
type Column struct {
	Header string
	Width  int
}

// Table provides a table formatter with dynamic, Unicode-aware column widths.
//
// Fields:
//   - columns: List of columns with their headers and widths
//   - separator: String placed between columns
type Table struct {
	columns   []Column
	separator string
}

// NewTable creates a new table formatter with the given headers.
//
// Returns:
//   - *Table: A table whose widths start at the header widths
func NewTable(headers ...string) *Table {
	t := &Table{separator: "  "}
	for _, h := range headers {
		t.AddColumn(h)
	}
	return t
}

// AddColumn adds a column and returns the table.
func (t *Table) AddColumn(header string) *Table {
	t.columns = append(t.columns, Column{Header: header, Width: DisplayWidth(header)})
	return t
}

// UpdateWidths widens columns so that values fit and returns the table.
//
// Parameters:
//   - values: One row of data; values beyond the column count are ignored
func (t *Table) UpdateWidths(values ...string) *Table {
	for i, val := range values {
		if i >= len(t.columns) {
			break
		}
		if w := DisplayWidth(val); w > t.columns[i].Width {
			t.columns[i].Width = w
		}
	}
	return t
}

// HeaderRow returns the padded header row.
func (t *Table) HeaderRow() string {
	parts := make([]string, len(t.columns))
	for i, col := range t.columns {
		parts[i] = ToWidth(col.Header, col.Width)
	}
	return strings.TrimRight(strings.Join(parts, t.separator), " ")
}

// SeparatorRow returns a row of dashes matching the column widths.
func (t *Table) SeparatorRow() string {
	parts := make([]string, len(t.columns))
	for i, col := range t.columns {
		parts[i] = strings.Repeat("-", col.Width)
	}
	return strings.Join(parts, t.separator)
}

// FormatRow pads values to the column widths.
//
// Missing values are treated as empty strings. Trailing padding is trimmed.
func (t *Table) FormatRow(values ...string) string {
	parts := make([]string, len(t.columns))
	for i, col := range t.columns {
		val := ""
		if i < len(values) {
			val = values[i]
		}
		parts[i] = ToWidth(val, col.Width)
	}
	return strings.TrimRight(strings.Join(parts, t.separator), " ")
}

// Fprint writes the header and separator rows.
func (t *Table) Fprint(w io.Writer) {
	_, _ = fmt.Fprintln(w, t.HeaderRow())
	_, _ = fmt.Fprintln(w, t.SeparatorRow())
}

// DisplayWidth returns the number of terminal cells val occupies.
func DisplayWidth(val string) int {
	return runewidth.StringWidth(val)
}

// ToWidth pads val with spaces to width cells; wider values are returned as is.
func ToWidth(val string, width int) string {
	current := DisplayWidth(val)
	if width <= 0 || current >= width {
		return val
	}
	return val + strings.Repeat(" ", width-current)
}
