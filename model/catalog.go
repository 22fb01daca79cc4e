package model

import (
	"time"

	"github.com/muhammadheryan/restock/constant"
	"github.com/shopspring/decimal"
)

type Item struct {
	ID                uint64 `db:"id" json:"id"`
	Name              string `db:"name" json:"name"`
	CurrentStock      int64  `db:"current_stock" json:"current_stock"`
	LowStockThreshold int64  `db:"low_stock_threshold" json:"low_stock_threshold"`
	OrderSize         int64  `db:"order_size" json:"order_size"`
}

// SupplierLink is the preferred vendor of an item.
type SupplierLink struct {
	ItemID       uint64          `json:"item_id"`
	SupplierName string          `json:"supplier_name"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	LeadTimeDays int             `json:"lead_time_days"`
	DeliveryDays []time.Weekday  `json:"delivery_days"`
}

// SupplierLinkRow is the storage shape of SupplierLink; delivery days are a
// comma separated weekday list ("1,3,5").
type SupplierLinkRow struct {
	ItemID       uint64          `db:"item_id"`
	SupplierName string          `db:"supplier_name"`
	UnitCost     decimal.Decimal `db:"unit_cost"`
	LeadTimeDays int             `db:"lead_time_days"`
	DeliveryDays string          `db:"delivery_days"`
}

// PendingOrder is stock already ordered for an item but not yet received.
type PendingOrder struct {
	ItemID          uint64 `db:"item_id" json:"item_id"`
	QuantityPending int64  `db:"quantity_pending" json:"quantity_pending"`
}

// PurchaseOrder is an open purchase order header used for delivery risk checks.
type PurchaseOrder struct {
	ID           uint64                       `db:"id" json:"id"`
	SupplierName string                       `db:"supplier_name" json:"supplier_name"`
	ExpectedDate time.Time                    `db:"expected_delivery_date" json:"expected_date"`
	Status       constant.PurchaseOrderStatus `db:"status" json:"status"`
	ItemCount    int                          `db:"item_count" json:"item_count"`
}
