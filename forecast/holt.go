package forecast

import "github.com/muhammadheryan/restock/constant"

const (
	holtAlpha = 0.5
	holtBeta  = 0.3
)

// Holt is double exponential smoothing with a linear trend.
type Holt struct {
	Alpha float64
	Beta  float64
}

func NewHolt() Holt {
	return Holt{Alpha: holtAlpha, Beta: holtBeta}
}

func (Holt) Name() constant.ForecastModel { return constant.ModelHolt }

func (h Holt) Estimate(series []float64) float64 {
	switch len(series) {
	case 0:
		return 0
	case 1:
		return floor0(series[0])
	}

	level := series[0]
	trend := series[1] - series[0]
	for _, v := range series[1:] {
		prev := level
		level = h.Alpha*v + (1-h.Alpha)*(level+trend)
		trend = h.Beta*(level-prev) + (1-h.Beta)*trend
	}
	return floor0(level + trend)
}
