package constant

import "strings"

// SafetyBufferDays is the extra coverage added beyond the next delivery.
const SafetyBufferDays = 2

const (
	DefaultAnalysisDays       = 30
	DefaultDaysToNextDelivery = 7
	DefaultLeadTimeDays       = 1
	UnknownSupplier           = "Unknown"
)

type StockEventKind string

const (
	StockEventAdd      StockEventKind = "ADD"
	StockEventSubtract StockEventKind = "SUBTRACT"
)

type Priority string

const (
	PriorityHealthy  Priority = "HEALTHY"
	PriorityHigh     Priority = "HIGH"
	PriorityCritical Priority = "CRITICAL"
)

// ForecastModel selects the burn rate estimator.
type ForecastModel string

const (
	ModelSMA    ForecastModel = "SMA"
	ModelWMA    ForecastModel = "WMA"
	ModelLinear ForecastModel = "LINEAR"
	ModelHolt   ForecastModel = "HOLT"
	ModelNeural ForecastModel = "NEURAL"
)

var ForecastModels = []ForecastModel{ModelSMA, ModelWMA, ModelLinear, ModelHolt, ModelNeural}

// ParseForecastModel is case-insensitive and maps the empty string to SMA.
func ParseForecastModel(s string) (ForecastModel, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return ModelSMA, true
	}
	for _, m := range ForecastModels {
		if string(m) == s {
			return m, true
		}
	}
	return "", false
}
