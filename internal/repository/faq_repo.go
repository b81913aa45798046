package repository

import (
	"github.com/community-cms/internal/database"
	"github.com/community-cms/internal/models"
)

// faqRepo is the concrete implementation of FaqRepository
type faqRepo struct {
	crudRepo[models.FaqEntry]
}

// NewFaqRepo creates a new FAQ repository. Entries list in insertion order
// (id ascending), unlike news and resources which list newest-first.
func NewFaqRepo(db *database.DB) FaqRepository {
	return &faqRepo{crudRepo[models.FaqEntry]{
		db: db,
		schema: tableSchema[models.FaqEntry]{
			table:     "faq",
			columns:   []string{"question", "answer"},
			updatable: []string{"question", "answer"},
			orderBy:   "id ASC",
			scan: func(s rowScanner) (*models.FaqEntry, error) {
				var entry models.FaqEntry
				if err := s.Scan(&entry.ID, &entry.Question, &entry.Answer); err != nil {
					return nil, err
				}
				return &entry, nil
			},
			insertArgs: func(entry *models.FaqEntry) []any {
				return []any{entry.Question, entry.Answer}
			},
			updateArgs: func(entry *models.FaqEntry) []any {
				return []any{entry.Question, entry.Answer}
			},
			setID: func(entry *models.FaqEntry, id int64) { entry.ID = id },
		},
	}}
}
