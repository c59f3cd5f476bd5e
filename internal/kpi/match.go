package kpi

import (
	"github.com/sells-group/campaign-kpi/internal/model"
)

// ReachIdentities derives the set of distinct normalized identities from a
// reach table. The reach table is never filtered; its distinct count is the
// denominator of the conversion rate.
func ReachIdentities(reach *model.Table) map[string]struct{} {
	set := make(map[string]struct{}, reach.Len())
	for _, row := range reach.Rows {
		set[NormalizePhone(reach.Cell(row, model.ColPhoneNumber))] = struct{}{}
	}
	return set
}

// MatchConversions inner-joins filtered buyer records against the distinct
// reach identity set. The reach side is pre-deduplicated, so each buyer row
// appears at most once in the result.
func MatchConversions(buyers []model.BuyerRecord, reach map[string]struct{}) []model.ConvertedRecord {
	out := make([]model.ConvertedRecord, 0, len(buyers))
	for _, b := range buyers {
		if _, ok := reach[b.Identity]; ok {
			out = append(out, model.ConvertedRecord{BuyerRecord: b})
		}
	}
	return out
}
