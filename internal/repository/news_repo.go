package repository

import (
	"github.com/community-cms/internal/database"
	"github.com/community-cms/internal/models"
)

// newsRepo is the concrete implementation of NewsRepository
type newsRepo struct {
	crudRepo[models.NewsPost]
}

// NewNewsRepo creates a new news repository. The date column is excluded
// from updates: it records creation time and edits never touch it.
func NewNewsRepo(db *database.DB) NewsRepository {
	return &newsRepo{crudRepo[models.NewsPost]{
		db: db,
		schema: tableSchema[models.NewsPost]{
			table:     "news",
			columns:   []string{"title", "content", "date"},
			updatable: []string{"title", "content"},
			orderBy:   "id DESC",
			scan: func(s rowScanner) (*models.NewsPost, error) {
				var post models.NewsPost
				if err := s.Scan(&post.ID, &post.Title, &post.Content, &post.Date); err != nil {
					return nil, err
				}
				return &post, nil
			},
			insertArgs: func(post *models.NewsPost) []any {
				return []any{post.Title, post.Content, post.Date}
			},
			updateArgs: func(post *models.NewsPost) []any {
				return []any{post.Title, post.Content}
			},
			setID: func(post *models.NewsPost, id int64) { post.ID = id },
		},
	}}
}
