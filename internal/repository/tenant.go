package repository

import (
	"github.com/snnyvrz/shelfshare/apps/authors-api/internal/tenant"
	"gorm.io/gorm"
)

// TenantFilter restricts books to the tenant carried by the query context.
// Queries without a tenant are not restricted.
type TenantFilter struct{}

func (TenantFilter) Name() string { return "tenant" }

func (TenantFilter) Type() string { return "Book" }

func (TenantFilter) Scope(tx *gorm.DB) *gorm.DB {
	t := tenant.FromContext(tx.Statement.Context)
	if t == "" {
		return tx
	}
	return tx.Where("tenant = ?", t)
}
