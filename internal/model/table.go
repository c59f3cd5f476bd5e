// Package model defines the tabular input abstraction and the record types
// produced by the KPI engine.
package model

import "strings"

// Table is an in-memory column-named table. Rows hold raw cell values as
// strings; all typing happens downstream. Column order is preserved for
// display but lookups go through the index, so input column order is
// irrelevant.
type Table struct {
	Columns []string
	Rows    [][]string

	index map[string]int
}

// NewTable builds a Table from a header row and data rows. Header cells are
// trimmed before indexing; duplicate columns keep the first occurrence.
func NewTable(columns []string, rows [][]string) *Table {
	t := &Table{
		Columns: columns,
		Rows:    rows,
		index:   make(map[string]int, len(columns)),
	}
	for i, col := range columns {
		name := strings.TrimSpace(col)
		if _, ok := t.index[name]; !ok {
			t.index[name] = i
		}
	}
	return t
}

// HasColumn reports whether the table has a column with the given name.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Cell returns the value of the named column in the given row, trimmed.
// Missing columns and short rows yield "".
func (t *Table) Cell(row []string, name string) string {
	idx, ok := t.index[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}
