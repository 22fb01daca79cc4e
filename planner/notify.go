package planner

import (
	"time"

	"github.com/muhammadheryan/restock/constant"
	"github.com/muhammadheryan/restock/model"
)

// DeliveryRisks emits one notice per pending order whose expected delivery
// date is before today's calendar date.
func DeliveryRisks(orders []model.PurchaseOrder, today time.Time) []model.DeliveryRiskNotice {
	loc := today.Location()
	todayDate := dateOf(today, loc)

	notices := make([]model.DeliveryRiskNotice, 0)
	for _, o := range orders {
		if o.Status != constant.PurchaseOrderStatusPending {
			continue
		}
		expected := dateOf(o.ExpectedDate, loc)
		if !expected.Before(todayDate) {
			continue
		}
		notices = append(notices, model.DeliveryRiskNotice{
			OrderID:      o.ID,
			SupplierName: o.SupplierName,
			ExpectedDate: o.ExpectedDate,
			ItemCount:    o.ItemCount,
			DaysOverdue:  daysBetween(expected, todayDate),
		})
	}
	return notices
}

func dateOf(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

func daysBetween(from, to time.Time) int {
	// Noon avoids DST days of 23 or 25 hours.
	a := time.Date(from.Year(), from.Month(), from.Day(), 12, 0, 0, 0, time.UTC)
	b := time.Date(to.Year(), to.Month(), to.Day(), 12, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}
