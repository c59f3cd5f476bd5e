package loader

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/rotisserie/eris"

	"github.com/sells-group/campaign-kpi/internal/model"
)

// LoadCSV reads a CSV file into a Table. Rows may have variable field
// counts; short rows read as empty cells downstream.
func LoadCSV(path string) (*model.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrap(err, "csv: open file")
	}
	defer f.Close()

	table, err := ReadCSV(f)
	if err != nil {
		return nil, eris.Wrapf(err, "csv: %s", path)
	}
	return table, nil
}

// ReadCSV parses CSV content from a reader into a Table.
func ReadCSV(r io.Reader) (*model.Table, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1 // allow variable fields

	records, err := reader.ReadAll()
	if err != nil {
		return nil, eris.Wrap(err, "csv: read rows")
	}
	if len(records) == 0 {
		return nil, eris.New("csv: file has no header row")
	}

	return model.NewTable(records[0], records[1:]), nil
}
