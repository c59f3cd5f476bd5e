package kpi

import (
	"sort"

	"go.uber.org/zap"

	"github.com/sells-group/campaign-kpi/internal/model"
)

// Compute runs the full reconciliation pipeline: schema validation, buyer
// parsing, filtering, reach matching, and aggregation. It is a pure function
// of its inputs; identical tables and params always yield an identical
// report. The only error condition is a missing required column.
func Compute(buyers, reach *model.Table, p model.Params) (*model.Report, error) {
	if err := ValidateInputs(buyers, reach); err != nil {
		return nil, err
	}

	records := parseBuyers(buyers)
	filtered := FilterBuyers(records, p)

	reachSet := ReachIdentities(reach)
	converted := MatchConversions(filtered, reachSet)
	sortConverted(converted)

	summary, daily := Aggregate(converted, len(reachSet))

	zap.L().Debug("kpi: computed report",
		zap.Int("buyers", len(records)),
		zap.Int("filtered", len(filtered)),
		zap.Int("reach_unique", summary.ReachUnique),
		zap.Int("converted", len(converted)),
		zap.Int("converted_unique", summary.ConvertedUnique),
	)

	return &model.Report{
		Summary:   summary,
		Converted: converted,
		Daily:     daily,
	}, nil
}

// parseBuyers types each raw buyer row and derives its identity key.
func parseBuyers(t *model.Table) []model.BuyerRecord {
	out := make([]model.BuyerRecord, 0, t.Len())
	for _, row := range t.Rows {
		phone := t.Cell(row, model.ColPhoneNumber)
		out = append(out, model.BuyerRecord{
			Phone:      phone,
			OrderID:    t.Cell(row, model.ColOrderID),
			CreatedAt:  parseTimestamp(t.Cell(row, model.ColCreatedAt)),
			ItemName:   t.Cell(row, model.ColItemName),
			Quantity:   parseNumber(t.Cell(row, model.ColQuantity)),
			TotalSpent: parseNumber(t.Cell(row, model.ColTotalSpent)),
			Identity:   NormalizePhone(phone),
		})
	}
	return out
}

// sortConverted orders records by created_at then identity for presentation
// and export. Records without a parsed date sort last.
func sortConverted(records []model.ConvertedRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		switch {
		case a.CreatedAt == nil && b.CreatedAt == nil:
			return a.Identity < b.Identity
		case a.CreatedAt == nil:
			return false
		case b.CreatedAt == nil:
			return true
		case a.CreatedAt.Equal(*b.CreatedAt):
			return a.Identity < b.Identity
		default:
			return a.CreatedAt.Before(*b.CreatedAt)
		}
	})
}
