package item

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/restock/model"
)

type SQL struct {
	conn *sqlx.DB
}

type ItemRepository interface {
	ListItemsTx(ctx context.Context, tx *sqlx.Tx, tenantID uint64) ([]model.Item, error)
	ListPreferredSuppliersTx(ctx context.Context, tx *sqlx.Tx, tenantID uint64) ([]model.SupplierLink, error)
}

func NewItemRepository(conn *sqlx.DB) ItemRepository {
	return &SQL{conn: conn}
}

const (
	listItemsQuery = `SELECT i.id, i.name, i.low_stock_threshold, GREATEST(i.order_size, 1) AS order_size,
	COALESCE(SUM(ls.quantity), 0) AS current_stock
FROM item i
LEFT JOIN location_stock ls ON ls.item_id = i.id
WHERE i.tenant_id = ? AND i.deleted_at IS NULL
GROUP BY i.id, i.name, i.low_stock_threshold, i.order_size
ORDER BY i.id`

	listPreferredSuppliersQuery = `SELECT isup.item_id, s.name AS supplier_name, isup.unit_cost, isup.lead_time_days,
	COALESCE(s.delivery_days, '') AS delivery_days
FROM item_supplier isup
JOIN supplier s ON s.id = isup.supplier_id
JOIN item i ON i.id = isup.item_id
WHERE i.tenant_id = ? AND isup.is_preferred = 1
ORDER BY isup.item_id, isup.id`
)

// ListItemsTx returns the catalog with stock summed across locations.
func (r *SQL) ListItemsTx(ctx context.Context, tx *sqlx.Tx, tenantID uint64) ([]model.Item, error) {
	items := make([]model.Item, 0)
	if err := tx.SelectContext(ctx, &items, listItemsQuery, tenantID); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *SQL) ListPreferredSuppliersTx(ctx context.Context, tx *sqlx.Tx, tenantID uint64) ([]model.SupplierLink, error) {
	rows, err := tx.QueryxContext(ctx, listPreferredSuppliersQuery, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	links := make([]model.SupplierLink, 0)
	for rows.Next() {
		var row model.SupplierLinkRow
		if err := rows.StructScan(&row); err != nil {
			return nil, err
		}
		links = append(links, model.SupplierLink{
			ItemID:       row.ItemID,
			SupplierName: row.SupplierName,
			UnitCost:     row.UnitCost,
			LeadTimeDays: row.LeadTimeDays,
			DeliveryDays: ParseDeliveryDays(row.DeliveryDays),
		})
	}
	return links, rows.Err()
}

// ParseDeliveryDays reads a comma separated weekday list such as "1,3,5".
// Entries that are not a weekday index 0-6 are dropped.
func ParseDeliveryDays(s string) []time.Weekday {
	days := make([]time.Weekday, 0, 7)
	seen := make(map[int]bool, 7)
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 0 || n > 6 || seen[n] {
			continue
		}
		seen[n] = true
		days = append(days, time.Weekday(n))
	}
	return days
}
