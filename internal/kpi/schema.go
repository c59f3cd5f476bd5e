package kpi

import (
	"fmt"
	"strings"

	"github.com/sells-group/campaign-kpi/internal/model"
)

// SchemaError reports required columns absent from an input table. It halts
// the run before any row processing.
type SchemaError struct {
	Table   string
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s table missing columns: %s", e.Table, strings.Join(e.Missing, ", "))
}

// validateSchema checks that every required column is present, collecting
// all missing names into a single error.
func validateSchema(t *model.Table, table string, required []string) error {
	var missing []string
	for _, col := range required {
		if !t.HasColumn(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return &SchemaError{Table: table, Missing: missing}
	}
	return nil
}

// ValidateInputs checks both input tables, buyers first. The first failing
// table aborts validation; its error names every missing column at once.
func ValidateInputs(buyers, reach *model.Table) error {
	if err := validateSchema(buyers, "buyers", model.RequiredBuyerColumns); err != nil {
		return err
	}
	return validateSchema(reach, "reach", model.RequiredReachColumns)
}
