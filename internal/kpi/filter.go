package kpi

import (
	"strings"

	"github.com/sells-group/campaign-kpi/internal/model"
)

// FilterBuyers applies the optional item and date-window filters. Filters
// compose conjunctively and each is independently optional.
//
// Item filter: case-insensitive substring match on item_name; rows with an
// empty item_name never match. Date filters: inclusive bounds on created_at;
// rows whose created_at failed to parse are dropped whenever a bound is
// given, since a nil date can satisfy neither comparison.
func FilterBuyers(buyers []model.BuyerRecord, p model.Params) []model.BuyerRecord {
	item := strings.ToLower(strings.TrimSpace(p.ItemFilter))

	out := make([]model.BuyerRecord, 0, len(buyers))
	for _, b := range buyers {
		if item != "" {
			if b.ItemName == "" || !strings.Contains(strings.ToLower(b.ItemName), item) {
				continue
			}
		}
		if p.Start != nil {
			if b.CreatedAt == nil || b.CreatedAt.Before(*p.Start) {
				continue
			}
		}
		if p.End != nil {
			if b.CreatedAt == nil || b.CreatedAt.After(*p.End) {
				continue
			}
		}
		out = append(out, b)
	}
	return out
}
