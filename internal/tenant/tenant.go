// Package tenant carries the request's tenant through a context.
package tenant

import "context"

type ctxKey struct{}

// Header is the request header that names the tenant.
const Header = "tenant"

func WithTenant(ctx context.Context, tenant string) context.Context {
	return context.WithValue(ctx, ctxKey{}, tenant)
}

// FromContext returns the tenant, or "" when the request has none.
func FromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	t, _ := ctx.Value(ctxKey{}).(string)
	return t
}
