package constant

// PurchaseOrderStatus mirrors the status column of purchase_order.
type PurchaseOrderStatus int

const (
	PurchaseOrderStatusPending  PurchaseOrderStatus = 1
	PurchaseOrderStatusReceived PurchaseOrderStatus = 2
	PurchaseOrderStatusCanceled PurchaseOrderStatus = 3
)

func (s PurchaseOrderStatus) String() string {
	switch s {
	case PurchaseOrderStatusPending:
		return "pending"
	case PurchaseOrderStatusReceived:
		return "received"
	case PurchaseOrderStatusCanceled:
		return "canceled"
	}
	return "unknown"
}
