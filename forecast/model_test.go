package forecast_test

import (
	"fmt"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/muhammadheryan/restock/constant"
	"github.com/muhammadheryan/restock/forecast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func constantSeries(n int, v float64) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = v
	}
	return s
}

func linearSeries(n int, a, b float64) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = a*float64(i) + b
	}
	return s
}

// weeklyNoise repeats a fixed +-30% weekly pattern around base.
func weeklyNoise(n int, base float64) []float64 {
	pattern := []float64{0, 0.2, -0.1, 0.3, -0.2, 0.1, -0.3}
	s := make([]float64, n)
	for i := range s {
		s[i] = base * (1 + pattern[i%len(pattern)])
	}
	return s
}

func seeded() *rand.Rand {
	return rand.New(rand.NewPCG(42, 7))
}

func TestNew(t *testing.T) {
	for _, kind := range constant.ForecastModels {
		m, err := forecast.New(kind, seeded())
		require.NoError(t, err)
		assert.Equal(t, kind, m.Name())
	}

	m, err := forecast.New("", nil)
	require.NoError(t, err)
	assert.Equal(t, constant.ModelSMA, m.Name())

	_, err = forecast.New("ARIMA", nil)
	assert.Error(t, err)
}

func TestSMA(t *testing.T) {
	tests := []struct {
		name   string
		series []float64
		want   float64
	}{
		{name: "empty", series: nil, want: 0},
		{name: "all zero", series: constantSeries(30, 0), want: 0},
		{name: "flat", series: constantSeries(30, 2), want: 2},
		{name: "mixed", series: []float64{1, 2, 3, 6}, want: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, forecast.SMA{}.Estimate(tt.series), 1e-9)
		})
	}
}

func TestWMA(t *testing.T) {
	assert.InDelta(t, 0, forecast.WMA{}.Estimate(nil), 1e-9)
	// (1*1 + 2*2 + 3*3) / 6
	assert.InDelta(t, 14.0/6.0, forecast.WMA{}.Estimate([]float64{1, 2, 3}), 1e-9)
	assert.InDelta(t, 4, forecast.WMA{}.Estimate(constantSeries(10, 4)), 1e-9)

	increasing := linearSeries(30, 0.5, 1)
	assert.Greater(t, forecast.WMA{}.Estimate(increasing), forecast.SMA{}.Estimate(increasing))
}

func TestLinear(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		n    int
	}{
		{name: "rising", a: 0.5, b: 3, n: 30},
		{name: "flat", a: 0, b: 4, n: 60},
		{name: "gently falling", a: -0.05, b: 10, n: 90},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := forecast.Linear{}.Estimate(linearSeries(tt.n, tt.a, tt.b))
			assert.InDelta(t, tt.a*float64(tt.n)+tt.b, got, 1e-6)
		})
	}

	// The fitted line crosses zero before day N.
	assert.Equal(t, 0.0, forecast.Linear{}.Estimate(linearSeries(10, -2, 15)))
	assert.Equal(t, 0.0, forecast.Linear{}.Estimate(nil))
	assert.InDelta(t, 7, forecast.Linear{}.Estimate([]float64{7}), 1e-9)
}

func TestHolt(t *testing.T) {
	h := forecast.NewHolt()
	assert.InDelta(t, 2, h.Estimate(constantSeries(30, 2)), 1e-9)
	// y = x is tracked exactly, so the forecast is the next value.
	assert.InDelta(t, 30, h.Estimate(linearSeries(30, 1, 0)), 1e-6)
	assert.InDelta(t, 3, h.Estimate([]float64{3}), 1e-9)
	assert.Equal(t, 0.0, h.Estimate(nil))
	assert.Equal(t, 0.0, h.Estimate([]float64{20, 10, 0, 0}))
}

func TestAdaline(t *testing.T) {
	t.Run("flat series converges to the level", func(t *testing.T) {
		got := forecast.NewAdaline(seeded()).Estimate(constantSeries(30, 2))
		assert.InDelta(t, 2, got, 0.05)
	})

	t.Run("short series falls back to SMA", func(t *testing.T) {
		series := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}
		got := forecast.NewAdaline(seeded()).Estimate(series)
		assert.InDelta(t, forecast.SMA{}.Estimate(series), got, 1e-9)
	})

	t.Run("same seed is reproducible", func(t *testing.T) {
		series := []float64{3, 0, 5, 2, 2, 8, 1, 0, 4, 6, 3, 2, 7, 1, 0, 5}
		a := forecast.NewAdaline(seeded()).Estimate(series)
		b := forecast.NewAdaline(seeded()).Estimate(series)
		assert.Equal(t, a, b)
	})

	t.Run("high volume stays close to SMA", func(t *testing.T) {
		series := constantSeries(30, 100)
		got := forecast.NewAdaline(seeded()).Estimate(series)
		assert.Greater(t, got, 0.0)
		assert.InDelta(t, forecast.SMA{}.Estimate(series), got, 1e-9)
	})

	for _, base := range []float64{5, 50, 150} {
		base := base
		t.Run(fmt.Sprintf("noisy series around %.0f per day", base), func(t *testing.T) {
			series := weeklyNoise(30, base)
			got := forecast.NewAdaline(seeded()).Estimate(series)
			require.False(t, math.IsNaN(got) || math.IsInf(got, 0))
			assert.GreaterOrEqual(t, got, 0.0)
			assert.InEpsilon(t, forecast.SMA{}.Estimate(series), got, 0.2)
		})
	}
}

func TestModelsAreNonNegative(t *testing.T) {
	noisy := []float64{0, 9, 0, 0, 14, 1, 0, 0, 0, 22, 3, 0, 0, 0, 0, 0, 1, 0, 0, 0}
	falling := linearSeries(30, -1, 30)
	inputs := map[string][]float64{
		"zero":    constantSeries(30, 0),
		"flat":    constantSeries(30, 5),
		"noisy":   noisy,
		"falling": falling,
	}

	for _, kind := range constant.ForecastModels {
		m, err := forecast.New(kind, seeded())
		require.NoError(t, err)
		for name, series := range inputs {
			assert.GreaterOrEqual(t, m.Estimate(series), 0.0, "%s on %s", kind, name)
		}
	}
}
