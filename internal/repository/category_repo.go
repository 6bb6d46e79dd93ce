package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"restaurant_menu/internal/models"

	"github.com/google/uuid"
)

type CategorySQLite struct {
	db *sql.DB
}

func NewCategorySQLite(db *sql.DB) *CategorySQLite {
	return &CategorySQLite{db: db}
}

var _ Categories = (*CategorySQLite)(nil)

const (
	insertCategorySQL     = `INSERT INTO categories (id, name, description, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`
	selectCategoriesSQL   = `SELECT id, name, description, created_at, updated_at FROM categories ORDER BY name ASC`
	selectCategoryByIDSQL = `SELECT id, name, description, created_at, updated_at FROM categories WHERE id = ?`
	updateCategorySQL     = `UPDATE categories SET name = ?, description = ?, updated_at = ? WHERE id = ?`
	deleteCategorySQL     = `DELETE FROM categories WHERE id = ?`
)

func (r *CategorySQLite) Create(ctx context.Context, name, description string) (*models.Category, error) {
	now := time.Now().UTC()
	c := &models.Category{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	_, err := r.db.ExecContext(ctx, insertCategorySQL,
		c.ID, c.Name, c.Description,
		now.Format(sqliteTimeLayout), now.Format(sqliteTimeLayout),
	)
	if err != nil {
		return nil, fmt.Errorf("insert category %q: %w", name, err)
	}
	return c, nil
}

func (r *CategorySQLite) List(ctx context.Context) ([]models.Category, error) {
	rows, err := r.db.QueryContext(ctx, selectCategoriesSQL)
	if err != nil {
		return nil, fmt.Errorf("select categories: %w", err)
	}
	defer rows.Close()

	out := make([]models.Category, 0, 16)
	for rows.Next() {
		var c models.Category
		var desc sql.NullString
		if err := rows.Scan(&c.ID, &c.Name, &desc, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		c.Description = desc.String
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches a category by id. Returns (nil, nil) if not found.
func (r *CategorySQLite) GetByID(ctx context.Context, id string) (*models.Category, error) {
	var c models.Category
	var desc sql.NullString
	err := r.db.QueryRowContext(ctx, selectCategoryByIDSQL, id).Scan(
		&c.ID, &c.Name, &desc, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select category %q: %w", id, err)
	}
	c.Description = desc.String
	return &c, nil
}

func (r *CategorySQLite) Update(ctx context.Context, c *models.Category) error {
	c.UpdatedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, updateCategorySQL,
		c.Name, c.Description, c.UpdatedAt.Format(sqliteTimeLayout), c.ID,
	)
	if err != nil {
		return fmt.Errorf("update category %q: %w", c.ID, err)
	}
	return nil
}

// Delete removes the category and reports whether a row was deleted.
func (r *CategorySQLite) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, deleteCategorySQL, id)
	if err != nil {
		return false, fmt.Errorf("delete category %q: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected for category %q: %w", id, err)
	}
	return n > 0, nil
}
