package planner_test

import (
	"testing"
	"time"

	"github.com/muhammadheryan/restock/constant"
	"github.com/muhammadheryan/restock/model"
	"github.com/muhammadheryan/restock/planner"
	"github.com/stretchr/testify/assert"
)

func TestResolveSchedule(t *testing.T) {
	weekdays := func(d ...time.Weekday) []time.Weekday { return d }

	tests := []struct {
		name  string
		link  *model.SupplierLink
		today time.Weekday
		want  planner.Schedule
	}{
		{
			name:  "no supplier uses weekly default",
			link:  nil,
			today: time.Monday,
			want:  planner.Schedule{SupplierName: constant.UnknownSupplier, DaysToNextDelivery: 7, LeadTimeDays: 1},
		},
		{
			name:  "supplier without delivery days uses weekly default",
			link:  &model.SupplierLink{SupplierName: "Brewco", LeadTimeDays: 4},
			today: time.Monday,
			want:  planner.Schedule{SupplierName: "Brewco", DaysToNextDelivery: 7, LeadTimeDays: 1},
		},
		{
			name:  "next day later this week",
			link:  &model.SupplierLink{SupplierName: "Brewco", LeadTimeDays: 2, DeliveryDays: weekdays(time.Friday, time.Tuesday)},
			today: time.Monday,
			want:  planner.Schedule{SupplierName: "Brewco", DaysToNextDelivery: 1, LeadTimeDays: 2},
		},
		{
			name:  "same weekday is not eligible",
			link:  &model.SupplierLink{SupplierName: "Brewco", LeadTimeDays: 0, DeliveryDays: weekdays(time.Wednesday, time.Friday)},
			today: time.Wednesday,
			want:  planner.Schedule{SupplierName: "Brewco", DaysToNextDelivery: 2, LeadTimeDays: 0},
		},
		{
			name:  "wraps into next week",
			link:  &model.SupplierLink{SupplierName: "Brewco", LeadTimeDays: 1, DeliveryDays: weekdays(time.Tuesday, time.Monday)},
			today: time.Friday,
			want:  planner.Schedule{SupplierName: "Brewco", DaysToNextDelivery: 3, LeadTimeDays: 1},
		},
		{
			name:  "only delivery day is today",
			link:  &model.SupplierLink{SupplierName: "Brewco", LeadTimeDays: 1, DeliveryDays: weekdays(time.Thursday)},
			today: time.Thursday,
			want:  planner.Schedule{SupplierName: "Brewco", DaysToNextDelivery: 7, LeadTimeDays: 1},
		},
		{
			name:  "invalid weekdays are ignored",
			link:  &model.SupplierLink{SupplierName: "Brewco", LeadTimeDays: 1, DeliveryDays: weekdays(9, time.Saturday)},
			today: time.Sunday,
			want:  planner.Schedule{SupplierName: "Brewco", DaysToNextDelivery: 6, LeadTimeDays: 1},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, planner.ResolveSchedule(tt.link, tt.today))
		})
	}
}
