package report

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Alignment selects which edge of a column cells are padded against.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Column describes one table column: its header text and cell alignment.
type Column struct {
	Header string
	Align  Alignment
}

// Table renders rows under fixed columns. Column widths are the maximum of
// the header length and every cell length in that column; rows render in
// the order they were added.
type Table struct {
	columns []Column
	rows    [][]string
}

// NewTable creates a table with the given columns.
func NewTable(columns ...Column) *Table {
	return &Table{columns: columns}
}

// AddRow appends a row. The cell count must match the column count.
func (t *Table) AddRow(cells ...string) error {
	if len(cells) != len(t.columns) {
		return fmt.Errorf("row has %d cells, table has %d columns", len(cells), len(t.columns))
	}
	t.rows = append(t.rows, cells)
	return nil
}

// ColumnWidths returns the computed width of each column.
func (t *Table) ColumnWidths() []int {
	widths := make([]int, len(t.columns))
	for i, col := range t.columns {
		widths[i] = utf8.RuneCountInString(col.Header)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if n := utf8.RuneCountInString(cell); n > widths[i] {
				widths[i] = n
			}
		}
	}
	return widths
}

// Render returns the table as text: a header line, a dash rule, and one
// line per row, columns separated by two spaces.
func (t *Table) Render() string {
	widths := t.ColumnWidths()

	var sb strings.Builder
	headers := make([]string, len(t.columns))
	for i, col := range t.columns {
		headers[i] = pad(col.Header, widths[i], col.Align)
	}
	headerLine := strings.TrimRight(strings.Join(headers, "  "), " ")
	sb.WriteString(headerLine)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("-", utf8.RuneCountInString(headerLine)))
	sb.WriteString("\n")

	for _, row := range t.rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = pad(cell, widths[i], t.columns[i].Align)
		}
		sb.WriteString(strings.TrimRight(strings.Join(cells, "  "), " "))
		sb.WriteString("\n")
	}
	return sb.String()
}

func pad(s string, width int, align Alignment) string {
	gap := width - utf8.RuneCountInString(s)
	if gap <= 0 {
		return s
	}
	if align == AlignRight {
		return strings.Repeat(" ", gap) + s
	}
	return s + strings.Repeat(" ", gap)
}
