package kpi

import (
	"time"

	"github.com/sells-group/campaign-kpi/internal/model"
)

func timePtr(s string) *time.Time {
	t, err := time.Parse("2006-01-02 15:04:05", s)
	if err != nil {
		t, err = time.Parse("2006-01-02", s)
		if err != nil {
			panic(err)
		}
	}
	return &t
}

func floatPtr(v float64) *float64 {
	return &v
}

func buyer(phone, orderID, createdAt, item string, qty, spent *float64) model.BuyerRecord {
	var ts *time.Time
	if createdAt != "" {
		ts = timePtr(createdAt)
	}
	return model.BuyerRecord{
		Phone:      phone,
		OrderID:    orderID,
		CreatedAt:  ts,
		ItemName:   item,
		Quantity:   qty,
		TotalSpent: spent,
		Identity:   NormalizePhone(phone),
	}
}

func buyersTable(rows ...[]string) *model.Table {
	return model.NewTable(model.RequiredBuyerColumns, rows)
}

func reachTable(phones ...string) *model.Table {
	rows := make([][]string, len(phones))
	for i, p := range phones {
		rows[i] = []string{p}
	}
	return model.NewTable([]string{model.ColPhoneNumber}, rows)
}
