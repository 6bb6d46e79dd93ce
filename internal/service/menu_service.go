package service

import (
	"context"
	"errors"
	"strings"

	"restaurant_menu/internal/models"
	"restaurant_menu/internal/repository"
)

// Domain errors for menu flows.
var (
	ErrMenuNotFound = errors.New("menu not found")
	ErrMenuInvalid  = errors.New("menu requires a name, description and existing category")
)

// MenuParams carries the mutable fields of a menu item. Updates replace all
// of them except Image, which keeps its current value when empty.
type MenuParams struct {
	CategoryID  string
	Name        string
	Description string
	Image       string
	TimeMinutes int
	Slot        int
}

type MenuService struct {
	menuRepo     repository.Menus
	categoryRepo repository.Categories
	feed         *changeFeed
}

func NewMenuService(menus repository.Menus, categories repository.Categories, feed *changeFeed) *MenuService {
	return &MenuService{menuRepo: menus, categoryRepo: categories, feed: feed}
}

func (s *MenuService) validate(ctx context.Context, p MenuParams) error {
	if strings.TrimSpace(p.Name) == "" || strings.TrimSpace(p.Description) == "" || p.CategoryID == "" {
		return ErrMenuInvalid
	}
	cat, err := s.categoryRepo.GetByID(ctx, p.CategoryID)
	if err != nil {
		return err
	}
	if cat == nil {
		return ErrCategoryNotFound
	}
	return nil
}

func (s *MenuService) Create(ctx context.Context, p MenuParams) (*models.Menu, error) {
	if err := s.validate(ctx, p); err != nil {
		return nil, err
	}
	image := p.Image
	if image == "" {
		image = models.DefaultMenuImage
	}

	m, err := s.menuRepo.Create(ctx, &models.Menu{
		CategoryID:  p.CategoryID,
		Name:        p.Name,
		Description: p.Description,
		Image:       image,
		TimeMinutes: p.TimeMinutes,
		Slot:        p.Slot,
	})
	if err != nil {
		return nil, err
	}
	s.feed.publish(ChangeEvent{Kind: ChangeCreated, Entity: EntityMenu, ID: m.ID, Data: m})
	return m, nil
}

func (s *MenuService) List(ctx context.Context, keyword string) ([]models.Menu, error) {
	return s.menuRepo.List(ctx, keyword)
}

func (s *MenuService) GetByID(ctx context.Context, id string) (*models.Menu, error) {
	m, err := s.menuRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrMenuNotFound
	}
	return m, nil
}

// ListByCategory lists menus for an existing category; a missing category is
// an error, an empty category is an empty list.
func (s *MenuService) ListByCategory(ctx context.Context, categoryID string) ([]models.Menu, error) {
	cat, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, ErrCategoryNotFound
	}
	return s.menuRepo.ListByCategory(ctx, categoryID)
}

// Update replaces the menu's mutable fields; an empty Image keeps the stored one.
func (s *MenuService) Update(ctx context.Context, id string, p MenuParams) (*models.Menu, error) {
	m, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.validate(ctx, p); err != nil {
		return nil, err
	}

	m.CategoryID = p.CategoryID
	m.Name = p.Name
	m.Description = p.Description
	m.TimeMinutes = p.TimeMinutes
	m.Slot = p.Slot
	if p.Image != "" {
		m.Image = p.Image
	}

	if err := s.menuRepo.Update(ctx, m); err != nil {
		return nil, err
	}
	s.feed.publish(ChangeEvent{Kind: ChangeUpdated, Entity: EntityMenu, ID: m.ID, Data: m})
	return m, nil
}

func (s *MenuService) Delete(ctx context.Context, id string) error {
	deleted, err := s.menuRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrMenuNotFound
	}
	s.feed.publish(ChangeEvent{Kind: ChangeDeleted, Entity: EntityMenu, ID: id})
	return nil
}
