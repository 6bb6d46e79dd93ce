package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"restaurant_menu/internal/models"

	"github.com/google/uuid"
)

type AdminSQLite struct {
	db *sql.DB
}

func NewAdminSQLite(db *sql.DB) *AdminSQLite {
	return &AdminSQLite{db: db}
}

// Ensure implementation of Admins interface at compile time.
var _ Admins = (*AdminSQLite)(nil)

// SQLite TIMESTAMP format shared by all repositories.
const sqliteTimeLayout = "2006-01-02 15:04:05"

const (
	insertAdminSQL        = `INSERT INTO admins (id, username, email, password_hash, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`
	selectAdminByEmailSQL = `SELECT id, username, email, password_hash, created_at, updated_at FROM admins WHERE email = ?`
	selectAdminByIDSQL    = `SELECT id, username, email, password_hash, created_at, updated_at FROM admins WHERE id = ?`
	updateAdminSQL        = `UPDATE admins SET username = ?, email = ?, password_hash = ?, updated_at = ? WHERE id = ?`
)

// isUniqueViolation reports whether err is the sqlite UNIQUE constraint failure.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// Create inserts a new admin. The id is assigned here and is immutable.
// A duplicate email yields ErrDuplicateEmail.
func (r *AdminSQLite) Create(ctx context.Context, username, email, passwordHash string) (*models.Admin, error) {
	now := time.Now().UTC()
	a := &models.Admin{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	_, err := r.db.ExecContext(ctx, insertAdminSQL,
		a.ID, a.Username, a.Email, a.PasswordHash,
		now.Format(sqliteTimeLayout), now.Format(sqliteTimeLayout),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("insert admin %q: %w", email, err)
	}
	return a, nil
}

// GetByEmail fetches an admin by email. Returns (nil, nil) if not found.
func (r *AdminSQLite) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	return r.getOne(ctx, selectAdminByEmailSQL, email)
}

// GetByID fetches an admin by id. Returns (nil, nil) if not found.
func (r *AdminSQLite) GetByID(ctx context.Context, id string) (*models.Admin, error) {
	return r.getOne(ctx, selectAdminByIDSQL, id)
}

func (r *AdminSQLite) getOne(ctx context.Context, query, arg string) (*models.Admin, error) {
	var a models.Admin
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&a.ID, &a.Username, &a.Email, &a.PasswordHash, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select admin %q: %w", arg, err)
	}
	return &a, nil
}

// Update writes back the full record (read-modify-write, no partial field
// mutation). An email collision with another admin yields ErrDuplicateEmail.
func (r *AdminSQLite) Update(ctx context.Context, a *models.Admin) error {
	a.UpdatedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, updateAdminSQL,
		a.Username, a.Email, a.PasswordHash,
		a.UpdatedAt.Format(sqliteTimeLayout), a.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("update admin %q: %w", a.ID, err)
	}
	return nil
}
