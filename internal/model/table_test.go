package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableCell(t *testing.T) {
	tbl := NewTable(
		[]string{"phone_number", " order_id ", "total_spent"},
		[][]string{
			{"97455512345", "A-1", " 100.50 "},
			{"97455500000", "A-2"},
		},
	)

	assert.True(t, tbl.HasColumn("phone_number"))
	assert.True(t, tbl.HasColumn("order_id"), "header cells are trimmed before indexing")
	assert.False(t, tbl.HasColumn("missing"))

	assert.Equal(t, "A-1", tbl.Cell(tbl.Rows[0], "order_id"))
	assert.Equal(t, "100.50", tbl.Cell(tbl.Rows[0], "total_spent"), "cell values are trimmed")
	assert.Equal(t, "", tbl.Cell(tbl.Rows[1], "total_spent"), "short rows yield empty cells")
	assert.Equal(t, "", tbl.Cell(tbl.Rows[0], "missing"))
	assert.Equal(t, 2, tbl.Len())
}

func TestTableDuplicateColumnsKeepFirst(t *testing.T) {
	tbl := NewTable(
		[]string{"phone_number", "phone_number"},
		[][]string{{"first", "second"}},
	)
	assert.Equal(t, "first", tbl.Cell(tbl.Rows[0], "phone_number"))
}
