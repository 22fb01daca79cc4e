package planner_test

import (
	"testing"
	"time"

	"github.com/muhammadheryan/restock/constant"
	"github.com/muhammadheryan/restock/model"
	"github.com/muhammadheryan/restock/planner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRank(t *testing.T) {
	in := []model.ReorderSuggestion{
		{ItemID: 1, DaysUntilEmpty: 12},
		{ItemID: 2, DaysUntilEmpty: 0.5},
		{ItemID: 3, DaysUntilEmpty: 0},
		{ItemID: 4, DaysUntilEmpty: 12},
		{ItemID: 5, DaysUntilEmpty: 0},
	}
	planner.Rank(in)

	ids := make([]uint64, len(in))
	for i, s := range in {
		ids[i] = s.ItemID
	}
	assert.Equal(t, []uint64{3, 5, 2, 1, 4}, ids)
}

func TestDeliveryRisks(t *testing.T) {
	today := time.Date(2024, time.May, 10, 15, 0, 0, 0, time.UTC)
	orders := []model.PurchaseOrder{
		{ID: 1, SupplierName: "Brewco", ExpectedDate: today.AddDate(0, 0, -1), Status: constant.PurchaseOrderStatusPending, ItemCount: 3},
		{ID: 2, SupplierName: "Brewco", ExpectedDate: today.Add(-10 * time.Hour), Status: constant.PurchaseOrderStatusPending, ItemCount: 1},
		{ID: 3, SupplierName: "Vinoteca", ExpectedDate: today.AddDate(0, 0, -4), Status: constant.PurchaseOrderStatusReceived, ItemCount: 2},
		{ID: 4, SupplierName: "Vinoteca", ExpectedDate: today.AddDate(0, 0, 2), Status: constant.PurchaseOrderStatusPending, ItemCount: 2},
		{ID: 5, SupplierName: "Spirits Ltd", ExpectedDate: today.AddDate(0, 0, -5), Status: constant.PurchaseOrderStatusPending, ItemCount: 7},
	}

	notices := planner.DeliveryRisks(orders, today)
	require.Len(t, notices, 2)

	assert.Equal(t, uint64(1), notices[0].OrderID)
	assert.Equal(t, "Brewco", notices[0].SupplierName)
	assert.Equal(t, 3, notices[0].ItemCount)
	assert.Equal(t, 1, notices[0].DaysOverdue)

	assert.Equal(t, uint64(5), notices[1].OrderID)
	assert.Equal(t, 5, notices[1].DaysOverdue)

	assert.Empty(t, planner.DeliveryRisks(nil, today))
}
