package purchaseorder

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/restock/constant"
	"github.com/muhammadheryan/restock/model"
)

type SQL struct {
	conn *sqlx.DB
}

type PurchaseOrderRepository interface {
	ListPendingQuantitiesTx(ctx context.Context, tx *sqlx.Tx, tenantID uint64) ([]model.PendingOrder, error)
	ListOverdueTx(ctx context.Context, tx *sqlx.Tx, tenantID uint64, before time.Time) ([]model.PurchaseOrder, error)
}

func NewPurchaseOrderRepository(conn *sqlx.DB) PurchaseOrderRepository {
	return &SQL{conn: conn}
}

const (
	listPendingQuantitiesQuery = `SELECT poi.item_id, SUM(poi.quantity - poi.received_quantity) AS quantity_pending
FROM purchase_order po
JOIN purchase_order_item poi ON poi.purchase_order_id = po.id
WHERE po.tenant_id = ? AND po.status = ?
GROUP BY poi.item_id
HAVING quantity_pending > 0`

	listOverdueQuery = `SELECT po.id, COALESCE(s.name, '') AS supplier_name, po.expected_delivery_date, po.status,
	COUNT(poi.id) AS item_count
FROM purchase_order po
LEFT JOIN supplier s ON s.id = po.supplier_id
LEFT JOIN purchase_order_item poi ON poi.purchase_order_id = po.id
WHERE po.tenant_id = ? AND po.status = ? AND po.expected_delivery_date < ?
GROUP BY po.id, s.name, po.expected_delivery_date, po.status
ORDER BY po.expected_delivery_date`
)

// ListPendingQuantitiesTx sums the outstanding quantity of pending orders per item.
func (r *SQL) ListPendingQuantitiesTx(ctx context.Context, tx *sqlx.Tx, tenantID uint64) ([]model.PendingOrder, error) {
	res := make([]model.PendingOrder, 0)
	if err := tx.SelectContext(ctx, &res, listPendingQuantitiesQuery, tenantID, constant.PurchaseOrderStatusPending); err != nil {
		return nil, err
	}
	return res, nil
}

// ListOverdueTx returns pending orders expected before the given instant.
func (r *SQL) ListOverdueTx(ctx context.Context, tx *sqlx.Tx, tenantID uint64, before time.Time) ([]model.PurchaseOrder, error) {
	res := make([]model.PurchaseOrder, 0)
	if err := tx.SelectContext(ctx, &res, listOverdueQuery, tenantID, constant.PurchaseOrderStatusPending, before); err != nil {
		return nil, err
	}
	return res, nil
}
