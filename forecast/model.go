package forecast

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/muhammadheryan/restock/constant"
)

// BurnRateModel turns a dense daily usage series into a predicted daily
// consumption rate. Implementations never return a negative rate.
type BurnRateModel interface {
	Estimate(series []float64) float64
	Name() constant.ForecastModel
}

// New returns the estimator for kind. rng only feeds the NEURAL model and
// may be nil, in which case a randomly seeded source is used.
func New(kind constant.ForecastModel, rng *rand.Rand) (BurnRateModel, error) {
	switch kind {
	case constant.ModelSMA, "":
		return SMA{}, nil
	case constant.ModelWMA:
		return WMA{}, nil
	case constant.ModelLinear:
		return Linear{}, nil
	case constant.ModelHolt:
		return NewHolt(), nil
	case constant.ModelNeural:
		return NewAdaline(rng), nil
	}
	return nil, fmt.Errorf("unknown forecast model %q", kind)
}

func floor0(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, v)
}
