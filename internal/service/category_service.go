package service

import (
	"context"
	"errors"
	"strings"

	"restaurant_menu/internal/models"
	"restaurant_menu/internal/repository"
)

// Domain errors for category flows.
var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryInUse    = errors.New("category still has menu items")
	ErrCategoryName     = errors.New("category name is required")
)

// CategoryUpdate carries optional category fields; empty means unchanged.
type CategoryUpdate struct {
	Name        string
	Description string
}

type CategoryService struct {
	categoryRepo repository.Categories
	menuRepo     repository.Menus
	feed         *changeFeed
}

func NewCategoryService(categories repository.Categories, menus repository.Menus, feed *changeFeed) *CategoryService {
	return &CategoryService{categoryRepo: categories, menuRepo: menus, feed: feed}
}

func (s *CategoryService) Create(ctx context.Context, name, description string) (*models.Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrCategoryName
	}
	c, err := s.categoryRepo.Create(ctx, strings.TrimSpace(name), description)
	if err != nil {
		return nil, err
	}
	s.feed.publish(ChangeEvent{Kind: ChangeCreated, Entity: EntityCategory, ID: c.ID, Data: c})
	return c, nil
}

func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	return s.categoryRepo.List(ctx)
}

func (s *CategoryService) GetByID(ctx context.Context, id string) (*models.Category, error) {
	c, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCategoryNotFound
	}
	return c, nil
}

// Update overwrites only the provided fields (read-modify-write).
func (s *CategoryService) Update(ctx context.Context, id string, upd CategoryUpdate) (*models.Category, error) {
	c, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(upd.Name) != "" {
		c.Name = strings.TrimSpace(upd.Name)
	}
	if upd.Description != "" {
		c.Description = upd.Description
	}

	if err := s.categoryRepo.Update(ctx, c); err != nil {
		return nil, err
	}
	s.feed.publish(ChangeEvent{Kind: ChangeUpdated, Entity: EntityCategory, ID: c.ID, Data: c})
	return c, nil
}

// Delete refuses to remove a category that still has menu items, so menus
// never point at a missing category.
func (s *CategoryService) Delete(ctx context.Context, id string) error {
	n, err := s.menuRepo.CountByCategory(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrCategoryInUse
	}

	deleted, err := s.categoryRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrCategoryNotFound
	}
	s.feed.publish(ChangeEvent{Kind: ChangeDeleted, Entity: EntityCategory, ID: id})
	return nil
}
