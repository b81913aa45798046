package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/community-cms/internal/database"
)

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// tableSchema describes how one entity kind maps onto its table. The crud
// core builds every statement from it, so per-entity repositories only
// supply column lists and scan/args functions.
type tableSchema[T any] struct {
	table     string
	columns   []string // non-id columns, in select/insert order
	updatable []string // subset touched by UPDATE
	orderBy   string   // e.g. "id DESC"

	scan       func(rowScanner) (*T, error) // scans id followed by columns
	insertArgs func(*T) []any               // values for columns
	updateArgs func(*T) []any               // values for updatable
	setID      func(*T, int64)
}

// crudRepo implements list/get/create/update/delete once for every entity
// kind. Embedding repositories expose it through their typed interfaces.
type crudRepo[T any] struct {
	db     *database.DB
	schema tableSchema[T]
}

// List returns all rows ordered by the schema's orderBy clause.
func (r *crudRepo[T]) List(ctx context.Context) ([]*T, error) {
	query := fmt.Sprintf("SELECT id, %s FROM %s ORDER BY %s",
		strings.Join(r.schema.columns, ", "), r.schema.table, r.schema.orderBy)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*T
	for rows.Next() {
		item, err := r.schema.scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// GetByID retrieves a single row, returning (nil, nil) when no row exists.
func (r *crudRepo[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	query := fmt.Sprintf("SELECT id, %s FROM %s WHERE id = $1",
		strings.Join(r.schema.columns, ", "), r.schema.table)

	item, err := r.schema.scan(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

// Create inserts a new row and assigns the generated id back to the entity.
func (r *crudRepo[T]) Create(ctx context.Context, entity *T) error {
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING id",
		r.schema.table,
		strings.Join(r.schema.columns, ", "),
		placeholders(len(r.schema.columns)),
	)

	var id int64
	if err := r.db.QueryRowContext(ctx, query, r.schema.insertArgs(entity)...).Scan(&id); err != nil {
		return err
	}
	r.schema.setID(entity, id)
	return nil
}

// Update rewrites the updatable columns of one row. The bool reports
// whether a row with that id existed.
func (r *crudRepo[T]) Update(ctx context.Context, id int64, entity *T) (bool, error) {
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d",
		r.schema.table,
		assignments(r.schema.updatable),
		len(r.schema.updatable)+1,
	)

	args := append(r.schema.updateArgs(entity), id)
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// Delete removes one row. The bool reports whether a row existed; deleting
// a missing id is not an error.
func (r *crudRepo[T]) Delete(ctx context.Context, id int64) (bool, error) {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", r.schema.table)

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// placeholders returns "$1, $2, ..., $n".
func placeholders(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("$%d", i+1)
	}
	return strings.Join(parts, ", ")
}

// assignments returns "col1 = $1, col2 = $2, ..." for an UPDATE SET clause.
func assignments(columns []string) string {
	parts := make([]string, len(columns))
	for i, col := range columns {
		parts[i] = fmt.Sprintf("%s = $%d", col, i+1)
	}
	return strings.Join(parts, ", ")
}
