package models

// WaitlistEntry represents a single waitlist signup. Entries are
// append-only: never updated, never deleted, duplicates allowed.
type WaitlistEntry struct {
	ID    int64  `json:"id" db:"id"`
	Email string `json:"email" db:"email"`
}
