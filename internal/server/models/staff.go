package models

import "time"

// Staff is an employee of a store. PasswordHash is a bcrypt hash; the
// plaintext password is never stored.
type Staff struct {
	ID           int64
	FullName     string
	Email        string
	Birthday     time.Time
	StoreID      int64
	PasswordHash string
}
