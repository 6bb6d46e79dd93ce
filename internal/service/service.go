package service

import (
	"context"
	"io"

	"restaurant_menu/internal/models"
	"restaurant_menu/internal/repository"
)

// Admins orchestrates registration, login and profile management for the
// single flat admin role. Login and Register also return a bearer token.
type Admins interface {
	Register(ctx context.Context, username, email, password string) (*models.Admin, string, error)
	Login(ctx context.Context, email, password string) (*models.Admin, string, error)
	GetProfile(ctx context.Context, id string) (*models.Admin, error)
	UpdateProfile(ctx context.Context, id string, upd ProfileUpdate) (*models.Admin, string, error)
	ParseToken(accessToken string) (string, error)
}

type Categories interface {
	Create(ctx context.Context, name, description string) (*models.Category, error)
	List(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, id string) (*models.Category, error)
	Update(ctx context.Context, id string, upd CategoryUpdate) (*models.Category, error)
	Delete(ctx context.Context, id string) error
}

type Menus interface {
	Create(ctx context.Context, p MenuParams) (*models.Menu, error)
	List(ctx context.Context, keyword string) ([]models.Menu, error)
	GetByID(ctx context.Context, id string) (*models.Menu, error)
	ListByCategory(ctx context.Context, categoryID string) ([]models.Menu, error)
	Update(ctx context.Context, id string, p MenuParams) (*models.Menu, error)
	Delete(ctx context.Context, id string) error
}

// Uploads stores admin-submitted images and returns their public path.
type Uploads interface {
	SaveImage(filename string, size int64, src io.Reader) (string, error)
}

// Feed exposes the in-process menu/category change stream consumed by the
// WebSocket handler.
type Feed interface {
	Subscribe() (<-chan ChangeEvent, func())
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Admins
	Categories
	Menus
	Uploads
	Feed Feed
}

// NewService wires the repository layer into concrete services. The token
// manager carries the signing secret and TTL loaded at startup; uploadDir is
// where image uploads land on disk.
func NewService(repos *repository.Repository, tokens *TokenManager, uploadDir string) *Service {
	feed := newChangeFeed()
	return &Service{
		Admins:     NewAdminService(repos.Admins, tokens),
		Categories: NewCategoryService(repos.Categories, repos.Menus, feed),
		Menus:      NewMenuService(repos.Menus, repos.Categories, feed),
		Uploads:    NewUploadService(uploadDir),
		Feed:       feed,
	}
}
