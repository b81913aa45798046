package models

// NewsPost represents a news post published by an admin.
type NewsPost struct {
	ID      int64  `json:"id" db:"id"`
	Title   string `json:"title" db:"title"`
	Content string `json:"content" db:"content"`
	// Date is set once at creation time and never changed by edits.
	Date string `json:"date" db:"date"`
}
