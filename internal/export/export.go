// Package export writes the three result tables of a KPI run as CSV files.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jszwec/csvutil"
	"github.com/rotisserie/eris"

	"github.com/sells-group/campaign-kpi/internal/kpi"
	"github.com/sells-group/campaign-kpi/internal/model"
)

// timestampLayout is how created_at values render in exports.
const timestampLayout = "2006-01-02 15:04:05"

// convertedRow is the CSV shape of one converted buyer record. The
// phone_number column carries the normalized identity, as the matched table
// is keyed on it.
type convertedRow struct {
	Phone      string   `csv:"phone_number"`
	OrderID    string   `csv:"order_id"`
	CreatedAt  string   `csv:"created_at"`
	ItemName   string   `csv:"item_name"`
	Quantity   *float64 `csv:"quantity"`
	TotalSpent *float64 `csv:"total_spent"`
}

// dailyRow is the CSV shape of one day of the trend table.
type dailyRow struct {
	Day     string  `csv:"day"`
	Orders  int     `csv:"orders"`
	Buyers  int     `csv:"buyers"`
	Revenue float64 `csv:"revenue"`
}

// Paths returns the three export file names for a campaign under dir.
func Paths(dir, campaign string) (kpis, converted, daily string) {
	kpis = filepath.Join(dir, fmt.Sprintf("%s_kpis.csv", campaign))
	converted = filepath.Join(dir, fmt.Sprintf("%s_converted_customers.csv", campaign))
	daily = filepath.Join(dir, fmt.Sprintf("%s_daily_conversions.csv", campaign))
	return kpis, converted, daily
}

// WriteReport writes the KPI summary, converted customers, and daily trend
// CSVs for a campaign and returns the written paths.
func WriteReport(dir, campaign string, report *model.Report) ([]string, error) {
	kpisPath, convertedPath, dailyPath := Paths(dir, campaign)

	if err := WriteKPIs(kpisPath, kpi.FormatSummary(report.Summary)); err != nil {
		return nil, err
	}
	if err := WriteConverted(convertedPath, report.Converted); err != nil {
		return nil, err
	}
	if err := WriteDaily(dailyPath, report.Daily); err != nil {
		return nil, err
	}
	return []string{kpisPath, convertedPath, dailyPath}, nil
}

// WriteKPIs writes the metric/value summary table.
func WriteKPIs(path string, metrics []kpi.Metric) error {
	return writeCSV(path, metrics)
}

// WriteConverted writes the matched buyer records, preserving the sort
// order produced by the engine.
func WriteConverted(path string, records []model.ConvertedRecord) error {
	rows := make([]convertedRow, len(records))
	for i, r := range records {
		row := convertedRow{
			Phone:      r.Identity,
			OrderID:    r.OrderID,
			ItemName:   r.ItemName,
			Quantity:   r.Quantity,
			TotalSpent: r.TotalSpent,
		}
		if r.CreatedAt != nil {
			row.CreatedAt = r.CreatedAt.Format(timestampLayout)
		}
		rows[i] = row
	}
	return writeCSV(path, rows)
}

// WriteDaily writes the per-day trend table.
func WriteDaily(path string, daily []model.DailyAggregate) error {
	rows := make([]dailyRow, len(daily))
	for i, d := range daily {
		rows[i] = dailyRow{
			Day:     d.Day.Format("2006-01-02"),
			Orders:  d.Orders,
			Buyers:  d.Buyers,
			Revenue: d.Revenue,
		}
	}
	return writeCSV(path, rows)
}

func writeCSV[T any](path string, rows []T) error {
	data, err := csvutil.Marshal(rows)
	if err != nil {
		return eris.Wrapf(err, "export: marshal %s", filepath.Base(path))
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return eris.Wrapf(err, "export: write %s", filepath.Base(path))
	}
	return nil
}
