package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"restaurant_menu/internal/models"

	"github.com/google/uuid"
)

type MenuSQLite struct {
	db *sql.DB
}

func NewMenuSQLite(db *sql.DB) *MenuSQLite { return &MenuSQLite{db: db} }

var _ Menus = (*MenuSQLite)(nil)

const (
	insertMenuSQL = `INSERT INTO menus (id, category_id, name, description, image, time_minutes, slot, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	updateMenuSQL = `UPDATE menus SET category_id = ?, name = ?, description = ?, image = ?, time_minutes = ?, slot = ?, updated_at = ? WHERE id = ?`
	deleteMenuSQL = `DELETE FROM menus WHERE id = ?`

	countMenusByCategorySQL = `SELECT COUNT(*) FROM menus WHERE category_id = ?`

	// Every read joins the category so list/detail payloads carry it embedded.
	selectMenusSQL = `SELECT m.id, m.category_id, m.name, m.description, m.image, m.time_minutes, m.slot, m.created_at, m.updated_at,
       c.id, c.name, c.description, c.created_at, c.updated_at
FROM menus m
LEFT JOIN categories c ON c.id = m.category_id`
)

// Create inserts a new menu item. If ID is empty it is assigned here.
func (r *MenuSQLite) Create(ctx context.Context, m *models.Menu) (*models.Menu, error) {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	m.CreatedAt = now
	m.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, insertMenuSQL,
		m.ID, m.CategoryID, m.Name, m.Description, m.Image, m.TimeMinutes, m.Slot,
		now.Format(sqliteTimeLayout), now.Format(sqliteTimeLayout),
	)
	if err != nil {
		return nil, fmt.Errorf("insert menu %q: %w", m.Name, err)
	}
	return m, nil
}

// List returns menus, optionally filtered by a case-insensitive name keyword,
// ordered by name.
func (r *MenuSQLite) List(ctx context.Context, keyword string) ([]models.Menu, error) {
	var (
		conds []string
		args  []any
	)
	if keyword = strings.TrimSpace(keyword); keyword != "" {
		conds = append(conds, "m.name LIKE ? COLLATE NOCASE")
		args = append(args, "%"+keyword+"%")
	}

	q := selectMenusSQL
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY m.name ASC"

	return r.queryMenus(ctx, q, args...)
}

// GetByID fetches a menu by id. Returns (nil, nil) if not found.
func (r *MenuSQLite) GetByID(ctx context.Context, id string) (*models.Menu, error) {
	out, err := r.queryMenus(ctx, selectMenusSQL+" WHERE m.id = ?", id)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return &out[0], nil
}

func (r *MenuSQLite) ListByCategory(ctx context.Context, categoryID string) ([]models.Menu, error) {
	return r.queryMenus(ctx, selectMenusSQL+" WHERE m.category_id = ? ORDER BY m.name ASC", categoryID)
}

func (r *MenuSQLite) CountByCategory(ctx context.Context, categoryID string) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, countMenusByCategorySQL, categoryID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count menus for category %q: %w", categoryID, err)
	}
	return n, nil
}

// Update writes back the full record.
func (r *MenuSQLite) Update(ctx context.Context, m *models.Menu) error {
	m.UpdatedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, updateMenuSQL,
		m.CategoryID, m.Name, m.Description, m.Image, m.TimeMinutes, m.Slot,
		m.UpdatedAt.Format(sqliteTimeLayout), m.ID,
	)
	if err != nil {
		return fmt.Errorf("update menu %q: %w", m.ID, err)
	}
	return nil
}

// Delete removes the menu and reports whether a row was deleted.
func (r *MenuSQLite) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, deleteMenuSQL, id)
	if err != nil {
		return false, fmt.Errorf("delete menu %q: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected for menu %q: %w", id, err)
	}
	return n > 0, nil
}

func (r *MenuSQLite) queryMenus(ctx context.Context, query string, args ...any) ([]models.Menu, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select menus: %w", err)
	}
	defer rows.Close()

	out := make([]models.Menu, 0, 32)
	for rows.Next() {
		var (
			m       models.Menu
			catID   sql.NullString
			catName sql.NullString
			catDesc sql.NullString
			catCr   sql.NullTime
			catUp   sql.NullTime
		)
		if err := rows.Scan(
			&m.ID, &m.CategoryID, &m.Name, &m.Description, &m.Image, &m.TimeMinutes, &m.Slot,
			&m.CreatedAt, &m.UpdatedAt,
			&catID, &catName, &catDesc, &catCr, &catUp,
		); err != nil {
			return nil, err
		}
		if catID.Valid {
			m.Category = &models.Category{
				ID:          catID.String,
				Name:        catName.String,
				Description: catDesc.String,
				CreatedAt:   catCr.Time,
				UpdatedAt:   catUp.Time,
			}
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
