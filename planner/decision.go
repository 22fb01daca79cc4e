package planner

import (
	"fmt"
	"math"

	"github.com/muhammadheryan/restock/constant"
	"github.com/muhammadheryan/restock/model"
	"github.com/shopspring/decimal"
)

type DecisionInput struct {
	Item       model.Item
	BurnRate   float64
	PendingQty int64
	Schedule   Schedule
	// UnitCost is zero when the item has no supplier link.
	UnitCost decimal.Decimal
}

// Decide classifies one item. The second return value is false when the item
// produces no suggestion at all (no usage and above its manual threshold).
func Decide(in DecisionInput) (model.ReorderSuggestion, bool) {
	orderSize := in.Item.OrderSize
	if orderSize < 1 {
		orderSize = 1
	}

	s := model.ReorderSuggestion{
		ItemID:             in.Item.ID,
		ItemName:           in.Item.Name,
		CurrentStock:       in.Item.CurrentStock,
		PendingQty:         in.PendingQty,
		BurnRate:           in.BurnRate,
		SupplierName:       in.Schedule.SupplierName,
		LeadTimeDays:       in.Schedule.LeadTimeDays,
		DaysToNextDelivery: in.Schedule.DaysToNextDelivery,
		EstimatedCost:      decimal.Zero,
	}

	if in.BurnRate <= 0 {
		if in.Item.CurrentStock > in.Item.LowStockThreshold {
			return model.ReorderSuggestion{}, false
		}
		s.BurnRate = 0
		s.SuggestedOrderQty = orderSize
		s.EstimatedCost = in.UnitCost.Mul(decimal.NewFromInt(orderSize))
		s.Priority = constant.PriorityHigh
		s.Reason = "Below manual threshold"
		return s, true
	}

	physicalDaysLeft := float64(in.Item.CurrentStock) / in.BurnRate
	arrival := in.Schedule.DaysUntilArrival()
	targetDays := arrival + constant.SafetyBufferDays
	s.DaysUntilEmpty = physicalDaysLeft

	if physicalDaysLeft > float64(targetDays) {
		s.Priority = constant.PriorityHealthy
		s.Reason = fmt.Sprintf("Stock lasts %.1f days, next delivery from %s arrives in %d days", physicalDaysLeft, in.Schedule.SupplierName, arrival)
		return s, true
	}

	neededStock := in.BurnRate * float64(targetDays)
	netStock := float64(in.Item.CurrentStock + in.PendingQty)
	deficit := neededStock - netStock

	if deficit <= 0 {
		s.Priority = constant.PriorityHealthy
		if in.PendingQty > 0 {
			s.Reason = fmt.Sprintf("Pending order of %d units expected to arrive in time", in.PendingQty)
		} else {
			s.Reason = fmt.Sprintf("Stock covers exactly %d days until the next delivery from %s", targetDays, in.Schedule.SupplierName)
		}
		return s, true
	}

	qty := int64(math.Ceil(deficit/float64(orderSize))) * orderSize
	s.SuggestedOrderQty = qty
	s.EstimatedCost = in.UnitCost.Mul(decimal.NewFromInt(qty))
	if physicalDaysLeft < float64(in.Schedule.LeadTimeDays) {
		s.Priority = constant.PriorityCritical
		s.Reason = fmt.Sprintf("Runs out in %.1f days, before %s can deliver (lead time %d days)", physicalDaysLeft, in.Schedule.SupplierName, in.Schedule.LeadTimeDays)
	} else {
		s.Priority = constant.PriorityHigh
		s.Reason = fmt.Sprintf("Runs out in %.1f days, order now for delivery from %s in %d days", physicalDaysLeft, in.Schedule.SupplierName, arrival)
	}
	return s, true
}
