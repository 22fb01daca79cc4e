package forecast

import (
	"time"

	"github.com/muhammadheryan/restock/constant"
	"github.com/muhammadheryan/restock/model"
)

// BuildUsageHistory aggregates the SUBTRACT events of one item into exactly
// days samples covering [today-days+1, today], oldest first. Days without
// events are present with zero usage. Events are bucketed by calendar date in
// today's location.
func BuildUsageHistory(itemID uint64, events []model.StockEvent, days int, today time.Time) []model.DailyUsageSample {
	if days <= 0 {
		return []model.DailyUsageSample{}
	}

	loc := today.Location()
	end := startOfDay(today, loc)
	start := end.AddDate(0, 0, -(days - 1))

	samples := make([]model.DailyUsageSample, days)
	index := make(map[time.Time]int, days)
	for i := 0; i < days; i++ {
		d := start.AddDate(0, 0, i)
		samples[i] = model.DailyUsageSample{ItemID: itemID, Date: d}
		index[d] = i
	}

	for _, ev := range events {
		if ev.ItemID != itemID || ev.Kind != constant.StockEventSubtract {
			continue
		}
		i, ok := index[startOfDay(ev.Timestamp, loc)]
		if !ok {
			continue
		}
		samples[i].QuantityUsed += float64(ev.Quantity)
	}

	return samples
}

// Series extracts the usage values of samples in order.
func Series(samples []model.DailyUsageSample) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = s.QuantityUsed
	}
	return out
}

// GroupByItem splits events per item, preserving input order.
func GroupByItem(events []model.StockEvent) map[uint64][]model.StockEvent {
	grouped := make(map[uint64][]model.StockEvent)
	for _, ev := range events {
		grouped[ev.ItemID] = append(grouped[ev.ItemID], ev)
	}
	return grouped
}

// WindowStart returns the first instant of the analysis window ending today.
func WindowStart(today time.Time, days int) time.Time {
	if days < 1 {
		days = 1
	}
	return startOfDay(today, today.Location()).AddDate(0, 0, -(days - 1))
}

func startOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
