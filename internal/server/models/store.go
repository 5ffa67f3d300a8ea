// Package models defines server-side records persisted in the database.
package models

// Franchise is a named brand owning one or more stores.
type Franchise struct {
	ID   int64
	Name string
}

// Store is a branch of a franchise in a given country. The triple
// (FranchiseID, Country, Branch) identifies a store for lookups.
type Store struct {
	ID          int64
	Country     string
	Branch      string
	FranchiseID int64
}
