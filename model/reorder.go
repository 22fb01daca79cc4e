package model

import (
	"time"

	"github.com/muhammadheryan/restock/constant"
	"github.com/shopspring/decimal"
)

type ReorderRequest struct {
	AnalysisDays int    `json:"analysis_days" validate:"omitempty,min=1,max=365"`
	Model        string `json:"model" validate:"omitempty,forecast_model"`
}

type ReorderSuggestion struct {
	ItemID             uint64                 `json:"item_id"`
	ItemName           string                 `json:"item_name"`
	CurrentStock       int64                  `json:"current_stock"`
	PendingQty         int64                  `json:"pending_qty"`
	BurnRate           float64                `json:"burn_rate"`
	DaysUntilEmpty     float64                `json:"days_until_empty"`
	SupplierName       string                 `json:"supplier_name"`
	LeadTimeDays       int                    `json:"lead_time_days"`
	DaysToNextDelivery int                    `json:"days_to_next_delivery"`
	SuggestedOrderQty  int64                  `json:"suggested_order_qty"`
	EstimatedCost      decimal.Decimal        `json:"estimated_cost" swaggertype:"string"`
	Priority           constant.Priority      `json:"priority"`
	Reason             string                 `json:"reason"`
	Model              constant.ForecastModel `json:"model"`
}

type DeliveryRiskNotice struct {
	OrderID      uint64    `json:"order_id"`
	SupplierName string    `json:"supplier_name"`
	ExpectedDate time.Time `json:"expected_date"`
	ItemCount    int       `json:"item_count"`
	DaysOverdue  int       `json:"days_overdue"`
}

type ReorderSummary struct {
	Critical           int                    `json:"critical"`
	High               int                    `json:"high"`
	Healthy            int                    `json:"healthy"`
	TotalEstimatedCost decimal.Decimal        `json:"total_estimated_cost" swaggertype:"string"`
	Model              constant.ForecastModel `json:"model"`
	AnalysisDays       int                    `json:"analysis_days"`
	GeneratedAt        time.Time              `json:"generated_at"`
}

type ReorderResponse struct {
	Suggestions   []ReorderSuggestion  `json:"suggestions"`
	Notifications []DeliveryRiskNotice `json:"notifications"`
	Summary       ReorderSummary       `json:"summary"`
}

// DeliveryRiskMessage is the payload published for every overdue order.
type DeliveryRiskMessage struct {
	TenantID uint64             `json:"tenant_id"`
	Notice   DeliveryRiskNotice `json:"notice"`
}
