package context

import (
	"context"

	"github.com/muhammadheryan/restock/constant"
)

func GetTenantID(ctx context.Context) (uint64, bool) {
	v := ctx.Value(constant.TenantIDKey)
	if v == nil {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok
}

func GetRequestID(ctx context.Context) string {
	v, _ := ctx.Value(constant.RequestIDKey).(string)
	return v
}
