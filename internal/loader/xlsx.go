package loader

import (
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/campaign-kpi/internal/model"
)

// LoadXLSX reads the first sheet of an XLSX workbook into a Table.
func LoadXLSX(path string) (*model.Table, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "xlsx: open file")
	}
	if len(f.Sheets) == 0 {
		return nil, eris.New("xlsx: workbook has no sheets")
	}

	sheet := f.Sheets[0]
	if len(sheet.Rows) == 0 {
		return nil, eris.New("xlsx: sheet has no header row")
	}

	rows := make([][]string, 0, len(sheet.Rows)-1)
	var header []string
	for i, row := range sheet.Rows {
		cells := rowToStrings(row)
		if i == 0 {
			header = cells
			continue
		}
		rows = append(rows, cells)
	}

	return model.NewTable(header, rows), nil
}

func rowToStrings(row *xlsx.Row) []string {
	cells := make([]string, len(row.Cells))
	for j, cell := range row.Cells {
		cells[j] = cell.String()
	}
	return cells
}
