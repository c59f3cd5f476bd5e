package model

import "time"

// Buyers table required columns.
const (
	ColPhoneNumber = "phone_number"
	ColOrderID     = "order_id"
	ColCreatedAt   = "created_at"
	ColItemName    = "item_name"
	ColQuantity    = "quantity"
	ColTotalSpent  = "total_spent"
)

// RequiredBuyerColumns lists the columns a buyers table must carry.
var RequiredBuyerColumns = []string{
	ColPhoneNumber,
	ColOrderID,
	ColCreatedAt,
	ColItemName,
	ColQuantity,
	ColTotalSpent,
}

// RequiredReachColumns lists the columns a reach table must carry.
var RequiredReachColumns = []string{ColPhoneNumber}

// BuyerRecord is one order line from the buyers table. CreatedAt is nil when
// the raw timestamp did not parse; Quantity and TotalSpent are nil when the
// raw value was missing or non-numeric. Nil numerics contribute zero to
// every sum.
type BuyerRecord struct {
	Phone      string     `json:"phone_number"`
	OrderID    string     `json:"order_id"`
	CreatedAt  *time.Time `json:"created_at"`
	ItemName   string     `json:"item_name"`
	Quantity   *float64   `json:"quantity"`
	TotalSpent *float64   `json:"total_spent"`

	// Identity is the normalized phone key the record joins on.
	Identity string `json:"identity"`
}

// ConvertedRecord is a buyer record whose identity appears in the reach set.
type ConvertedRecord struct {
	BuyerRecord
}

// DailyAggregate is the per-calendar-day rollup of converted records.
type DailyAggregate struct {
	Day     time.Time `json:"day"`
	Orders  int       `json:"orders"`
	Buyers  int       `json:"buyers"`
	Revenue float64   `json:"revenue"`
}

// Params holds the optional filters of a KPI run. Start and End are
// inclusive bounds on created_at; ItemFilter is a case-insensitive substring
// match on item_name. Zero values mean "no filter".
type Params struct {
	ItemFilter string     `json:"item_filter,omitempty"`
	Start      *time.Time `json:"start,omitempty"`
	End        *time.Time `json:"end,omitempty"`
}

// Summary holds the scalar KPIs of a run, unformatted. Metric display order
// and formatting live in the kpi package.
type Summary struct {
	ReachUnique     int     `json:"reach_unique"`
	ConvertedUnique int     `json:"converted_unique"`
	ConversionRate  float64 `json:"conversion_rate"`
	TotalRevenue    float64 `json:"total_revenue"`
	TotalOrders     int     `json:"total_orders"`
	TotalUnits      float64 `json:"total_units"`
	AOV             float64 `json:"aov"`
	RepeatBuyers    int     `json:"repeat_buyers"`
	RepeatRate      float64 `json:"repeat_rate"`
}

// Report is the full result of one KPI computation.
type Report struct {
	Summary   Summary           `json:"summary"`
	Converted []ConvertedRecord `json:"converted"`
	Daily     []DailyAggregate  `json:"daily"`
}
