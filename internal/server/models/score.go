package models

import "time"

// Score is an append-only performance record. Date is assigned by the
// server at insertion time.
type Score struct {
	ID      int64
	Date    time.Time
	StaffID int64
	Score   int
}
