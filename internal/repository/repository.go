package repository

import (
	"context"
	"database/sql"
	"errors"

	"restaurant_menu/internal/models"
)

// ErrDuplicateEmail is returned by the admin repository when the UNIQUE
// constraint on admins.email rejects a write. Uniqueness is arbitrated by
// the store, never re-checked in the service layer.
var ErrDuplicateEmail = errors.New("email already registered")

type Admins interface {
	Create(ctx context.Context, username, email, passwordHash string) (*models.Admin, error)
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
	GetByID(ctx context.Context, id string) (*models.Admin, error)
	Update(ctx context.Context, a *models.Admin) error
}

type Categories interface {
	Create(ctx context.Context, name, description string) (*models.Category, error)
	List(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, id string) (*models.Category, error)
	Update(ctx context.Context, c *models.Category) error
	Delete(ctx context.Context, id string) (bool, error)
}

type Menus interface {
	Create(ctx context.Context, m *models.Menu) (*models.Menu, error)
	List(ctx context.Context, keyword string) ([]models.Menu, error)
	GetByID(ctx context.Context, id string) (*models.Menu, error)
	ListByCategory(ctx context.Context, categoryID string) ([]models.Menu, error)
	CountByCategory(ctx context.Context, categoryID string) (int, error)
	Update(ctx context.Context, m *models.Menu) error
	Delete(ctx context.Context, id string) (bool, error)
}

type Repository struct {
	Admins     Admins
	Categories Categories
	Menus      Menus
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Admins:     NewAdminSQLite(db),
		Categories: NewCategorySQLite(db),
		Menus:      NewMenuSQLite(db),
	}
}
