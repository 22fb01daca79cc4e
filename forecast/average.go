package forecast

import "github.com/muhammadheryan/restock/constant"

// SMA is the plain mean of the window.
type SMA struct{}

func (SMA) Name() constant.ForecastModel { return constant.ModelSMA }

func (SMA) Estimate(series []float64) float64 {
	if len(series) == 0 {
		return 0
	}
	var sum float64
	for _, v := range series {
		sum += v
	}
	return floor0(sum / float64(len(series)))
}

// WMA weights day i (oldest = 0) by i+1.
type WMA struct{}

func (WMA) Name() constant.ForecastModel { return constant.ModelWMA }

func (WMA) Estimate(series []float64) float64 {
	if len(series) == 0 {
		return 0
	}
	var num, den float64
	for i, v := range series {
		w := float64(i + 1)
		num += v * w
		den += w
	}
	return floor0(num / den)
}
