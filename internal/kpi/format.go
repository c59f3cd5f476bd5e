package kpi

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/sells-group/campaign-kpi/internal/model"
)

// Metric is one formatted KPI line: display name and display value.
type Metric struct {
	Name  string `json:"metric" csv:"metric"`
	Value string `json:"value" csv:"value"`
}

// printer renders numbers with English thousands separators.
var printer = message.NewPrinter(language.English)

// FormatSummary renders the nine KPIs as display strings in their fixed
// order. Counts get thousands separators, currency two decimals, the
// conversion rate two decimals and the repeat rate one.
func FormatSummary(s model.Summary) []Metric {
	return []Metric{
		{"Reached (unique)", formatCount(s.ReachUnique)},
		{"Matched buyers (unique)", formatCount(s.ConvertedUnique)},
		{"Conversion rate %", printer.Sprintf("%.2f", s.ConversionRate)},
		{"Total revenue", formatAmount(s.TotalRevenue)},
		{"Total orders", formatCount(s.TotalOrders)},
		{"Total units", formatUnits(s.TotalUnits)},
		{"AOV (revenue/order)", formatAmount(s.AOV)},
		{"Repeat buyers (count)", formatCount(s.RepeatBuyers)},
		{"Repeat buyer rate %", printer.Sprintf("%.1f", s.RepeatRate)},
	}
}

func formatCount(n int) string {
	return printer.Sprintf("%d", n)
}

func formatAmount(v float64) string {
	return printer.Sprintf("%.2f", v)
}

// formatUnits drops the decimals when the sum is whole, which it is whenever
// quantities are integers.
func formatUnits(v float64) string {
	if v == math.Trunc(v) {
		return printer.Sprintf("%d", int64(v))
	}
	return printer.Sprintf("%.2f", v)
}
