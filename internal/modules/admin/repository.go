package admin

import "context"

// Repository defines the cross-table aggregate queries backing the admin views.
type Repository interface {
	CarbonReport(ctx context.Context) (*CarbonReport, error)
	ListCustomers(ctx context.Context) ([]*CustomerOverview, error)
}
