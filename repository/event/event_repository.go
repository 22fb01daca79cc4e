package event

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/restock/constant"
	"github.com/muhammadheryan/restock/model"
	"github.com/muhammadheryan/restock/utils/logger"
	"go.uber.org/zap"
)

const (
	ActionStockAdd      = "stock_add"
	ActionStockSubtract = "stock_subtract"
)

type EventRepository interface {
	ListStockEventsTx(ctx context.Context, tx *sqlx.Tx, tenantID uint64, since time.Time) ([]model.StockEvent, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewEventRepository(conn *sqlx.DB) EventRepository {
	return &SQL{conn: conn}
}

const listStockEventsQuery = `SELECT id, action, details, created_at
FROM activity_log
WHERE tenant_id = ? AND action IN (?, ?) AND created_at >= ?
ORDER BY created_at`

// ListStockEventsTx reads stock movements since the given instant. Rows whose
// details cannot be parsed are skipped with a warning.
func (r *SQL) ListStockEventsTx(ctx context.Context, tx *sqlx.Tx, tenantID uint64, since time.Time) ([]model.StockEvent, error) {
	rows, err := tx.QueryxContext(ctx, listStockEventsQuery, tenantID, ActionStockAdd, ActionStockSubtract, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]model.StockEvent, 0)
	for rows.Next() {
		var row model.ActivityLogRow
		if err := rows.StructScan(&row); err != nil {
			return nil, err
		}
		ev, err := ParseStockEvent(row)
		if err != nil {
			logger.Warn("[ListStockEventsTx] skip malformed event", zap.Uint64("id", row.ID), zap.String("error", err.Error()))
			continue
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

type stockDetails struct {
	ItemID   json.Number `json:"itemId"`
	Quantity json.Number `json:"quantity"`
}

// ParseStockEvent converts an activity log row into a typed StockEvent. The
// details blob may carry numbers or numeric strings.
func ParseStockEvent(row model.ActivityLogRow) (model.StockEvent, error) {
	var kind constant.StockEventKind
	switch row.Action {
	case ActionStockAdd:
		kind = constant.StockEventAdd
	case ActionStockSubtract:
		kind = constant.StockEventSubtract
	default:
		return model.StockEvent{}, fmt.Errorf("unexpected action %q", row.Action)
	}

	var d stockDetails
	if err := json.Unmarshal([]byte(row.Details), &d); err != nil {
		return model.StockEvent{}, fmt.Errorf("decode details: %w", err)
	}

	itemID, err := strconv.ParseUint(d.ItemID.String(), 10, 64)
	if err != nil || itemID == 0 {
		return model.StockEvent{}, fmt.Errorf("invalid itemId %q", d.ItemID)
	}

	qty, err := d.Quantity.Float64()
	if err != nil || qty < 0 || qty != math.Trunc(qty) {
		return model.StockEvent{}, fmt.Errorf("invalid quantity %q", d.Quantity)
	}

	return model.StockEvent{
		ItemID:    itemID,
		Quantity:  int64(qty),
		Kind:      kind,
		Timestamp: row.CreatedAt,
	}, nil
}
