package models

// FaqEntry represents a question/answer pair shown on the FAQ page.
type FaqEntry struct {
	ID       int64  `json:"id" db:"id"`
	Question string `json:"question" db:"question"`
	Answer   string `json:"answer" db:"answer"`
}
