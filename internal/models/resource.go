package models

// Resource represents a community resource listing (document, link, video).
// Description, Category and UpdatedAt are nullable: Category and UpdatedAt
// were added by later schema revisions, so rows created before those
// migrations carry NULLs.
type Resource struct {
	ID           int64   `json:"id" db:"id"`
	Title        string  `json:"title" db:"title"`
	ResourceType string  `json:"resource_type" db:"resource_type"`
	URL          string  `json:"url" db:"url"`
	Description  *string `json:"description,omitempty" db:"description"`
	Category     *string `json:"category,omitempty" db:"category"`
	// UpdatedAt is refreshed on every create and update.
	UpdatedAt *string `json:"updated_at,omitempty" db:"updated_at"`
}
