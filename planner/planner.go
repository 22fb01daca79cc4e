// Package planner turns catalog state and usage history into ranked reorder
// suggestions and delivery risk notices. Every call is a pure function of its
// input.
package planner

import (
	"math/rand/v2"
	"time"

	"github.com/muhammadheryan/restock/constant"
	"github.com/muhammadheryan/restock/forecast"
	"github.com/muhammadheryan/restock/model"
	"github.com/shopspring/decimal"
)

type Input struct {
	Items     []model.Item
	Suppliers []model.SupplierLink
	Pending   []model.PendingOrder
	Events    []model.StockEvent
	Orders    []model.PurchaseOrder

	AnalysisDays int
	Model        constant.ForecastModel
	Today        time.Time
	// Rand seeds the NEURAL model. Nil means randomly seeded.
	Rand *rand.Rand
}

func Run(in Input) (*model.ReorderResponse, error) {
	kind := in.Model
	if kind == "" {
		kind = constant.ModelSMA
	}
	days := in.AnalysisDays
	if days <= 0 {
		days = constant.DefaultAnalysisDays
	}

	estimator, err := forecast.New(kind, in.Rand)
	if err != nil {
		return nil, err
	}

	suppliers := make(map[uint64]*model.SupplierLink, len(in.Suppliers))
	for i := range in.Suppliers {
		link := &in.Suppliers[i]
		if _, seen := suppliers[link.ItemID]; !seen {
			suppliers[link.ItemID] = link
		}
	}
	pending := make(map[uint64]int64, len(in.Pending))
	for _, p := range in.Pending {
		pending[p.ItemID] += p.QuantityPending
	}
	events := forecast.GroupByItem(in.Events)

	suggestions := make([]model.ReorderSuggestion, 0, len(in.Items))
	for _, item := range in.Items {
		history := forecast.BuildUsageHistory(item.ID, events[item.ID], days, in.Today)
		link := suppliers[item.ID]

		unitCost := decimal.Zero
		if link != nil {
			unitCost = link.UnitCost
		}

		s, ok := Decide(DecisionInput{
			Item:       item,
			BurnRate:   estimator.Estimate(forecast.Series(history)),
			PendingQty: pending[item.ID],
			Schedule:   ResolveSchedule(link, in.Today.Weekday()),
			UnitCost:   unitCost,
		})
		if !ok {
			continue
		}
		s.Model = kind
		suggestions = append(suggestions, s)
	}

	Rank(suggestions)

	return &model.ReorderResponse{
		Suggestions:   suggestions,
		Notifications: DeliveryRisks(in.Orders, in.Today),
		Summary:       summarize(suggestions, kind, days, in.Today),
	}, nil
}

func summarize(suggestions []model.ReorderSuggestion, kind constant.ForecastModel, days int, now time.Time) model.ReorderSummary {
	sum := model.ReorderSummary{
		TotalEstimatedCost: decimal.Zero,
		Model:              kind,
		AnalysisDays:       days,
		GeneratedAt:        now,
	}
	for _, s := range suggestions {
		switch s.Priority {
		case constant.PriorityCritical:
			sum.Critical++
		case constant.PriorityHigh:
			sum.High++
		case constant.PriorityHealthy:
			sum.Healthy++
		}
		sum.TotalEstimatedCost = sum.TotalEstimatedCost.Add(s.EstimatedCost)
	}
	return sum
}
