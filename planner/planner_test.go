package planner_test

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/muhammadheryan/restock/constant"
	"github.com/muhammadheryan/restock/model"
	"github.com/muhammadheryan/restock/planner"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2024-05-08 is a Wednesday.
var today = time.Date(2024, time.May, 8, 20, 0, 0, 0, time.UTC)

func dailyUsage(itemID uint64, days int, qty int64) []model.StockEvent {
	events := make([]model.StockEvent, 0, days)
	for i := 0; i < days; i++ {
		events = append(events, model.StockEvent{
			ItemID:    itemID,
			Quantity:  qty,
			Kind:      constant.StockEventSubtract,
			Timestamp: today.AddDate(0, 0, -i).Add(-time.Hour),
		})
	}
	return events
}

func fixture() planner.Input {
	var events []model.StockEvent
	events = append(events, dailyUsage(1, 30, 2)...)
	events = append(events, dailyUsage(2, 30, 2)...)
	events = append(events, dailyUsage(3, 30, 2)...)
	events = append(events, model.StockEvent{ItemID: 1, Quantity: 48, Kind: constant.StockEventAdd, Timestamp: today})

	return planner.Input{
		Items: []model.Item{
			{ID: 1, Name: "Lager keg", CurrentStock: 100, LowStockThreshold: 10, OrderSize: 6},
			{ID: 2, Name: "House red", CurrentStock: 5, LowStockThreshold: 4, OrderSize: 6},
			{ID: 3, Name: "Tonic", CurrentStock: 5, LowStockThreshold: 4, OrderSize: 6},
			{ID: 4, Name: "Absinthe", CurrentStock: 1, LowStockThreshold: 2, OrderSize: 1},
			{ID: 5, Name: "Bitters", CurrentStock: 9, LowStockThreshold: 2, OrderSize: 1},
		},
		Suppliers: []model.SupplierLink{
			// Wednesday -> Saturday is 3 days.
			{ItemID: 1, SupplierName: "Brewco", UnitCost: decimal.NewFromInt(80), LeadTimeDays: 1, DeliveryDays: []time.Weekday{time.Saturday}},
			// Wednesday -> Friday is 2 days.
			{ItemID: 2, SupplierName: "Vinoteca", UnitCost: decimal.RequireFromString("7.5"), LeadTimeDays: 5, DeliveryDays: []time.Weekday{time.Friday}},
			{ItemID: 3, SupplierName: "Vinoteca", UnitCost: decimal.NewFromInt(1), LeadTimeDays: 5, DeliveryDays: []time.Weekday{time.Friday}},
		},
		Pending: []model.PendingOrder{
			{ItemID: 3, QuantityPending: 12},
			{ItemID: 3, QuantityPending: 12},
		},
		Events: events,
		Orders: []model.PurchaseOrder{
			{ID: 77, SupplierName: "Vinoteca", ExpectedDate: today.AddDate(0, 0, -1), Status: constant.PurchaseOrderStatusPending, ItemCount: 2},
		},
		AnalysisDays: 30,
		Model:        constant.ModelSMA,
		Today:        today,
	}
}

func TestRun(t *testing.T) {
	res, err := planner.Run(fixture())
	require.NoError(t, err)

	byID := make(map[uint64]model.ReorderSuggestion)
	for _, s := range res.Suggestions {
		byID[s.ItemID] = s
		assert.Equal(t, constant.ModelSMA, s.Model)
	}
	require.Len(t, res.Suggestions, 4)
	assert.NotContains(t, byID, uint64(5))

	keg := byID[1]
	assert.Equal(t, constant.PriorityHealthy, keg.Priority)
	assert.InDelta(t, 2, keg.BurnRate, 1e-9)
	assert.InDelta(t, 50, keg.DaysUntilEmpty, 1e-9)
	assert.Equal(t, 3, keg.DaysToNextDelivery)
	assert.Zero(t, keg.SuggestedOrderQty)

	wine := byID[2]
	assert.Equal(t, constant.PriorityCritical, wine.Priority)
	assert.Equal(t, int64(18), wine.SuggestedOrderQty)
	assert.Equal(t, "135", wine.EstimatedCost.String())

	tonic := byID[3]
	assert.Equal(t, constant.PriorityHealthy, tonic.Priority)
	assert.Equal(t, int64(24), tonic.PendingQty)
	assert.Contains(t, tonic.Reason, "Pending order")

	absinthe := byID[4]
	assert.Equal(t, constant.PriorityHigh, absinthe.Priority)
	assert.Equal(t, "Below manual threshold", absinthe.Reason)
	assert.Equal(t, constant.UnknownSupplier, absinthe.SupplierName)

	assert.Equal(t, uint64(4), res.Suggestions[0].ItemID)
	for i := 1; i < len(res.Suggestions); i++ {
		assert.LessOrEqual(t, res.Suggestions[i-1].DaysUntilEmpty, res.Suggestions[i].DaysUntilEmpty)
	}

	require.Len(t, res.Notifications, 1)
	assert.Equal(t, uint64(77), res.Notifications[0].OrderID)

	assert.Equal(t, 1, res.Summary.Critical)
	assert.Equal(t, 1, res.Summary.High)
	assert.Equal(t, 2, res.Summary.Healthy)
	assert.Equal(t, "135", res.Summary.TotalEstimatedCost.String())
	assert.Equal(t, 30, res.Summary.AnalysisDays)
}

func TestRun_Idempotent(t *testing.T) {
	for _, kind := range []constant.ForecastModel{constant.ModelSMA, constant.ModelWMA, constant.ModelLinear, constant.ModelHolt} {
		in := fixture()
		in.Model = kind
		first, err := planner.Run(in)
		require.NoError(t, err)
		second, err := planner.Run(in)
		require.NoError(t, err)
		assert.Equal(t, first, second, kind)
	}

	in := fixture()
	in.Model = constant.ModelNeural
	in.Rand = rand.New(rand.NewPCG(1, 2))
	first, err := planner.Run(in)
	require.NoError(t, err)
	in.Rand = rand.New(rand.NewPCG(1, 2))
	second, err := planner.Run(in)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRun_EmptyInput(t *testing.T) {
	res, err := planner.Run(planner.Input{Today: today})
	require.NoError(t, err)
	assert.Empty(t, res.Suggestions)
	assert.Empty(t, res.Notifications)
	assert.Equal(t, constant.ModelSMA, res.Summary.Model)
	assert.Equal(t, constant.DefaultAnalysisDays, res.Summary.AnalysisDays)
}

func TestRun_UnknownModel(t *testing.T) {
	in := fixture()
	in.Model = "ARIMA"
	_, err := planner.Run(in)
	assert.Error(t, err)
}

func TestRun_OrderSizing(t *testing.T) {
	for _, kind := range constant.ForecastModels {
		in := fixture()
		in.Model = kind
		in.Rand = rand.New(rand.NewPCG(3, 4))
		res, err := planner.Run(in)
		require.NoError(t, err)

		sizes := make(map[uint64]int64)
		for _, it := range in.Items {
			sizes[it.ID] = it.OrderSize
		}
		for _, s := range res.Suggestions {
			assert.GreaterOrEqual(t, s.SuggestedOrderQty, int64(0))
			assert.Zero(t, s.SuggestedOrderQty%sizes[s.ItemID], "%s item %d", kind, s.ItemID)
			assert.Equal(t, s.Priority == constant.PriorityHealthy, s.SuggestedOrderQty == 0)
		}
	}
}

func TestRun_NeuralHighVolumeItem(t *testing.T) {
	in := planner.Input{
		Items: []model.Item{
			{ID: 1, Name: "Draft lager", CurrentStock: 50, LowStockThreshold: 10, OrderSize: 1},
		},
		Events:       dailyUsage(1, 30, 100),
		AnalysisDays: 30,
		Model:        constant.ModelNeural,
		Today:        today,
		Rand:         rand.New(rand.NewPCG(3, 4)),
	}

	res, err := planner.Run(in)
	require.NoError(t, err)
	require.Len(t, res.Suggestions, 1)

	s := res.Suggestions[0]
	assert.InDelta(t, 100, s.BurnRate, 1e-9)
	assert.Equal(t, constant.PriorityCritical, s.Priority)
	assert.Greater(t, s.SuggestedOrderQty, int64(0))
}
