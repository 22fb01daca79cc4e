package model

import (
	"time"

	"github.com/muhammadheryan/restock/constant"
)

// StockEvent is one recorded addition or removal. Quantity is the magnitude,
// direction comes from Kind.
type StockEvent struct {
	ItemID    uint64                  `json:"item_id"`
	Quantity  int64                   `json:"quantity"`
	Kind      constant.StockEventKind `json:"kind"`
	Timestamp time.Time               `json:"timestamp"`
}

// DailyUsageSample is the subtracted volume of one item on one calendar day.
type DailyUsageSample struct {
	ItemID       uint64    `json:"item_id"`
	Date         time.Time `json:"date"`
	QuantityUsed float64   `json:"quantity_used"`
}

// ActivityLogRow is the raw storage shape of a stock event.
type ActivityLogRow struct {
	ID        uint64    `db:"id"`
	Action    string    `db:"action"`
	Details   string    `db:"details"`
	CreatedAt time.Time `db:"created_at"`
}

// StockMovementMessage is broadcast by the inventory writer whenever stock changes.
type StockMovementMessage struct {
	TenantID  uint64    `json:"tenant_id"`
	ItemID    uint64    `json:"item_id"`
	Kind      string    `json:"kind"`
	Quantity  int64     `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}
