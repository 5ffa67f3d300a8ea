// Package stores provides the cascading lookups over franchises and their
// stores: country, then company, then branch, then store id.
package stores

import "context"

type Repository interface {
	Countries(ctx context.Context) ([]string, error)
	Companies(ctx context.Context, country string) ([]string, error)
	Branches(ctx context.Context, country, company string) ([]string, error)
	// FranchiseIDByName returns common.ErrorNotFound for an unknown name.
	FranchiseIDByName(ctx context.Context, name string) (int64, error)
	// FindStoreID returns common.ErrorNotFound when no store matches.
	FindStoreID(ctx context.Context, franchiseID int64, country, branch string) (int64, error)
}
