package repository

import (
	"database/sql"

	"github.com/community-cms/internal/database"
	"github.com/community-cms/internal/models"
)

// resourceRepo is the concrete implementation of ResourceRepository
type resourceRepo struct {
	crudRepo[models.Resource]
}

// NewResourceRepo creates a new resource repository. The description,
// category and updated_at columns are nullable: rows written before the
// later schema revisions carry NULLs there.
func NewResourceRepo(db *database.DB) ResourceRepository {
	return &resourceRepo{crudRepo[models.Resource]{
		db: db,
		schema: tableSchema[models.Resource]{
			table:     "resources",
			columns:   []string{"title", "resource_type", "url", "description", "category", "updated_at"},
			updatable: []string{"title", "resource_type", "url", "description", "category", "updated_at"},
			orderBy:   "id DESC",
			scan: func(s rowScanner) (*models.Resource, error) {
				var res models.Resource
				var description, category, updatedAt sql.NullString
				err := s.Scan(&res.ID, &res.Title, &res.ResourceType, &res.URL,
					&description, &category, &updatedAt)
				if err != nil {
					return nil, err
				}
				if description.Valid {
					res.Description = &description.String
				}
				if category.Valid {
					res.Category = &category.String
				}
				if updatedAt.Valid {
					res.UpdatedAt = &updatedAt.String
				}
				return &res, nil
			},
			insertArgs: func(res *models.Resource) []any {
				return []any{res.Title, res.ResourceType, res.URL, res.Description, res.Category, res.UpdatedAt}
			},
			updateArgs: func(res *models.Resource) []any {
				return []any{res.Title, res.ResourceType, res.URL, res.Description, res.Category, res.UpdatedAt}
			},
			setID: func(res *models.Resource, id int64) { res.ID = id },
		},
	}}
}
