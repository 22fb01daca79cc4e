package forecast

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/muhammadheryan/restock/constant"
)

const (
	adalineWindow       = 5
	adalineLearningRate = 0.0001
	adalineEpochs       = 500
	adalineMinPairs     = 5
)

// Adaline is a single linear neuron trained by gradient descent on sliding
// windows of five days predicting the sixth. Weights start random, so results
// are only reproducible with a seeded rng.
type Adaline struct {
	rng          *rand.Rand
	Window       int
	LearningRate float64
	Epochs       int
}

func NewAdaline(rng *rand.Rand) *Adaline {
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1))
	}
	return &Adaline{
		rng:          rng,
		Window:       adalineWindow,
		LearningRate: adalineLearningRate,
		Epochs:       adalineEpochs,
	}
}

func (*Adaline) Name() constant.ForecastModel { return constant.ModelNeural }

func (a *Adaline) Estimate(series []float64) float64 {
	pairs := len(series) - a.Window
	if pairs < adalineMinPairs {
		return SMA{}.Estimate(series)
	}

	weights := make([]float64, a.Window)
	for i := range weights {
		weights[i] = a.rng.Float64() * 0.01
	}
	var bias float64

	for epoch := 0; epoch < a.Epochs; epoch++ {
		for p := 0; p < pairs; p++ {
			x := series[p : p+a.Window]
			target := series[p+a.Window]
			err := target - activate(weights, bias, x)
			for i := range weights {
				weights[i] += a.LearningRate * err * x[i]
			}
			bias += a.LearningRate * err
		}
		if !finite(bias, weights...) {
			// High daily volumes overflow the fixed learning rate.
			return SMA{}.Estimate(series)
		}
	}

	prediction := activate(weights, bias, series[len(series)-a.Window:])
	if !finite(prediction) {
		return SMA{}.Estimate(series)
	}
	return floor0(prediction)
}

func finite(v float64, more ...float64) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	for _, m := range more {
		if math.IsNaN(m) || math.IsInf(m, 0) {
			return false
		}
	}
	return true
}

func activate(weights []float64, bias float64, x []float64) float64 {
	out := bias
	for i, w := range weights {
		out += w * x[i]
	}
	return out
}
