package planner

import (
	"sort"
	"time"

	"github.com/muhammadheryan/restock/constant"
	"github.com/muhammadheryan/restock/model"
)

// Schedule is the delivery outlook of an item's preferred supplier.
type Schedule struct {
	SupplierName       string
	DaysToNextDelivery int
	LeadTimeDays       int
}

// DaysUntilArrival is the wait until an order placed today is on the shelf.
func (s Schedule) DaysUntilArrival() int {
	return s.DaysToNextDelivery + s.LeadTimeDays
}

// ResolveSchedule finds the next configured delivery weekday strictly after
// today, wrapping into next week. Without a supplier or without delivery days
// a weekly cycle with a one day lead time is assumed.
func ResolveSchedule(link *model.SupplierLink, today time.Weekday) Schedule {
	if link == nil {
		return Schedule{
			SupplierName:       constant.UnknownSupplier,
			DaysToNextDelivery: constant.DefaultDaysToNextDelivery,
			LeadTimeDays:       constant.DefaultLeadTimeDays,
		}
	}

	days := validWeekdays(link.DeliveryDays)
	if len(days) == 0 {
		return Schedule{
			SupplierName:       link.SupplierName,
			DaysToNextDelivery: constant.DefaultDaysToNextDelivery,
			LeadTimeDays:       constant.DefaultLeadTimeDays,
		}
	}

	next := 7 - int(today) + int(days[0])
	for _, d := range days {
		if d > today {
			next = int(d - today)
			break
		}
	}

	return Schedule{
		SupplierName:       link.SupplierName,
		DaysToNextDelivery: next,
		LeadTimeDays:       link.LeadTimeDays,
	}
}

func validWeekdays(in []time.Weekday) []time.Weekday {
	out := make([]time.Weekday, 0, len(in))
	for _, d := range in {
		if d >= time.Sunday && d <= time.Saturday {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
