package kpi

import (
	"sort"
	"time"

	"github.com/sells-group/campaign-kpi/internal/model"
)

// Aggregate computes the scalar KPI summary and the per-day breakdown from
// the converted subset. reachUnique is the distinct identity count of the
// unfiltered reach table. Every ratio resolves to 0 on a zero denominator;
// nil numeric fields contribute zero to sums.
func Aggregate(converted []model.ConvertedRecord, reachUnique int) (model.Summary, []model.DailyAggregate) {
	identities := make(map[string]struct{})
	orders := make(map[string]struct{})
	ordersByIdentity := make(map[string]map[string]struct{})

	var revenue, units float64
	for _, c := range converted {
		identities[c.Identity] = struct{}{}
		orders[c.OrderID] = struct{}{}

		byID, ok := ordersByIdentity[c.Identity]
		if !ok {
			byID = make(map[string]struct{})
			ordersByIdentity[c.Identity] = byID
		}
		byID[c.OrderID] = struct{}{}

		if c.TotalSpent != nil {
			revenue += *c.TotalSpent
		}
		if c.Quantity != nil {
			units += *c.Quantity
		}
	}

	repeat := 0
	for _, byID := range ordersByIdentity {
		if len(byID) > 1 {
			repeat++
		}
	}

	s := model.Summary{
		ReachUnique:     reachUnique,
		ConvertedUnique: len(identities),
		TotalRevenue:    revenue,
		TotalOrders:     len(orders),
		TotalUnits:      units,
		RepeatBuyers:    repeat,
	}
	if reachUnique > 0 {
		s.ConversionRate = float64(s.ConvertedUnique) / float64(reachUnique) * 100
	}
	if s.TotalOrders > 0 {
		s.AOV = revenue / float64(s.TotalOrders)
	}
	if s.ConvertedUnique > 0 {
		s.RepeatRate = float64(repeat) / float64(s.ConvertedUnique) * 100
	}

	return s, aggregateDaily(converted)
}

type dailyAccum struct {
	orders     map[string]struct{}
	identities map[string]struct{}
	revenue    float64
}

// aggregateDaily groups converted records by the calendar date of
// created_at. Records with an unparseable created_at carry no date and are
// excluded from the breakdown. Buyers-per-day counts distinct normalized
// identities. Days come back in ascending order.
func aggregateDaily(converted []model.ConvertedRecord) []model.DailyAggregate {
	byDay := make(map[time.Time]*dailyAccum)
	for _, c := range converted {
		if c.CreatedAt == nil {
			continue
		}
		y, m, d := c.CreatedAt.Date()
		day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

		acc, ok := byDay[day]
		if !ok {
			acc = &dailyAccum{
				orders:     make(map[string]struct{}),
				identities: make(map[string]struct{}),
			}
			byDay[day] = acc
		}
		acc.orders[c.OrderID] = struct{}{}
		acc.identities[c.Identity] = struct{}{}
		if c.TotalSpent != nil {
			acc.revenue += *c.TotalSpent
		}
	}

	out := make([]model.DailyAggregate, 0, len(byDay))
	for day, acc := range byDay {
		out = append(out, model.DailyAggregate{
			Day:     day,
			Orders:  len(acc.orders),
			Buyers:  len(acc.identities),
			Revenue: acc.revenue,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day.Before(out[j].Day) })
	return out
}
