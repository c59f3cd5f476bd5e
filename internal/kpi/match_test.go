package kpi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/campaign-kpi/internal/model"
)

func TestReachIdentitiesDistinct(t *testing.T) {
	reach := reachTable(
		"97412345678",
		// both normalize to the identity above
		"12345678",
		"+974 1234 5678",
		"97487654321",
	)

	set := ReachIdentities(reach)
	assert.Len(t, set, 2)
	assert.Contains(t, set, "97412345678")
	assert.Contains(t, set, "97487654321")
}

func TestMatchConversionsInnerJoin(t *testing.T) {
	reach := ReachIdentities(reachTable("97412345678", "12345678", "97487654321"))

	in := []model.BuyerRecord{
		buyer("12345678", "1", "2024-01-01", "A", nil, nil), // matches via prefixing
		buyer("99999999", "2", "2024-01-01", "A", nil, nil), // no reach identity
		buyer("87654321", "3", "2024-01-01", "A", nil, nil), // matches
	}

	out := MatchConversions(in, reach)
	require.Len(t, out, 2)
	assert.Equal(t, "1", out[0].OrderID)
	assert.Equal(t, "97412345678", out[0].Identity)
	assert.Equal(t, "3", out[1].OrderID)
}

func TestMatchConversionsNoFanOut(t *testing.T) {
	// Duplicate reach entries for one identity must not duplicate buyer rows.
	reach := ReachIdentities(reachTable("97412345678", "97412345678", "12345678"))
	in := []model.BuyerRecord{buyer("12345678", "1", "2024-01-01", "A", nil, nil)}
	assert.Len(t, MatchConversions(in, reach), 1)
}

func TestMatchConversionsKeepsBuyerFields(t *testing.T) {
	reach := ReachIdentities(reachTable("97412345678"))
	in := []model.BuyerRecord{
		buyer("12345678", "ord-9", "2024-03-02 10:30:00", "Serum", floatPtr(2), floatPtr(150.5)),
	}

	out := MatchConversions(in, reach)
	require.Len(t, out, 1)
	c := out[0]
	assert.Equal(t, "12345678", c.Phone)
	assert.Equal(t, "ord-9", c.OrderID)
	assert.Equal(t, "Serum", c.ItemName)
	require.NotNil(t, c.Quantity)
	assert.InDelta(t, 2, *c.Quantity, 1e-9)
	require.NotNil(t, c.TotalSpent)
	assert.InDelta(t, 150.5, *c.TotalSpent, 1e-9)
	assert.Equal(t, "97412345678", c.Identity)
}
