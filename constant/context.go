package constant

type contextKey string

const (
	TenantIDKey  contextKey = "tenant_id"
	RequestIDKey contextKey = "request_id"
)
