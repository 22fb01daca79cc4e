package forecast

import (
	"math"

	"github.com/muhammadheryan/restock/constant"
)

// Linear fits quantity against day index by least squares and reads the line
// one step past the window.
type Linear struct{}

func (Linear) Name() constant.ForecastModel { return constant.ModelLinear }

func (Linear) Estimate(series []float64) float64 {
	n := len(series)
	if n == 0 {
		return 0
	}
	slope, intercept := linearRegression(series)
	return floor0(slope*float64(n) + intercept)
}

// linearRegression returns slope and intercept of y = slope*x + intercept with
// x = 0..len(ys)-1.
func linearRegression(ys []float64) (slope, intercept float64) {
	n := float64(len(ys))
	var sumX, sumY, sumXY, sumX2 float64
	for i, y := range ys {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumX2 += x * x
	}

	denom := n*sumX2 - sumX*sumX
	if math.Abs(denom) < 1e-10 {
		return 0, sumY / n
	}

	slope = (n*sumXY - sumX*sumY) / denom
	intercept = (sumY - slope*sumX) / n
	return slope, intercept
}
