package service

import (
	"context"
	"errors"
	"testing"

	"restaurant_menu/internal/models"
)

// mockMenuRepo is a lightweight in-test mock for repository.Menus.
type mockMenuRepo struct {
	CreateFn          func(m *models.Menu) (*models.Menu, error)
	ListFn            func(keyword string) ([]models.Menu, error)
	GetByIDFn         func(id string) (*models.Menu, error)
	ListByCategoryFn  func(categoryID string) ([]models.Menu, error)
	CountByCategoryFn func(categoryID string) (int, error)
	UpdateFn          func(m *models.Menu) error
	DeleteFn          func(id string) (bool, error)

	updateCalls []models.Menu
}

func (m *mockMenuRepo) Create(_ context.Context, mm *models.Menu) (*models.Menu, error) {
	return m.CreateFn(mm)
}
func (m *mockMenuRepo) List(_ context.Context, keyword string) ([]models.Menu, error) {
	return m.ListFn(keyword)
}
func (m *mockMenuRepo) GetByID(_ context.Context, id string) (*models.Menu, error) {
	return m.GetByIDFn(id)
}
func (m *mockMenuRepo) ListByCategory(_ context.Context, categoryID string) ([]models.Menu, error) {
	return m.ListByCategoryFn(categoryID)
}
func (m *mockMenuRepo) CountByCategory(_ context.Context, categoryID string) (int, error) {
	return m.CountByCategoryFn(categoryID)
}
func (m *mockMenuRepo) Update(_ context.Context, mm *models.Menu) error {
	m.updateCalls = append(m.updateCalls, *mm)
	return m.UpdateFn(mm)
}
func (m *mockMenuRepo) Delete(_ context.Context, id string) (bool, error) {
	return m.DeleteFn(id)
}

// mockCategoryRepo is a lightweight in-test mock for repository.Categories.
type mockCategoryRepo struct {
	CreateFn  func(name, description string) (*models.Category, error)
	ListFn    func() ([]models.Category, error)
	GetByIDFn func(id string) (*models.Category, error)
	UpdateFn  func(c *models.Category) error
	DeleteFn  func(id string) (bool, error)
}

func (m *mockCategoryRepo) Create(_ context.Context, name, description string) (*models.Category, error) {
	return m.CreateFn(name, description)
}
func (m *mockCategoryRepo) List(_ context.Context) ([]models.Category, error) { return m.ListFn() }
func (m *mockCategoryRepo) GetByID(_ context.Context, id string) (*models.Category, error) {
	return m.GetByIDFn(id)
}
func (m *mockCategoryRepo) Update(_ context.Context, c *models.Category) error { return m.UpdateFn(c) }
func (m *mockCategoryRepo) Delete(_ context.Context, id string) (bool, error) {
	return m.DeleteFn(id)
}

func knownCategory(id string) *mockCategoryRepo {
	return &mockCategoryRepo{
		GetByIDFn: func(got string) (*models.Category, error) {
			if got == id {
				return &models.Category{ID: id, Name: "Breakfast"}, nil
			}
			return nil, nil
		},
	}
}

func TestMenuService_Create_DefaultsImage(t *testing.T) {
	menus := &mockMenuRepo{
		CreateFn: func(m *models.Menu) (*models.Menu, error) {
			m.ID = "menu-1"
			return m, nil
		},
	}
	svc := NewMenuService(menus, knownCategory("cat-1"), newChangeFeed())

	m, err := svc.Create(context.Background(), MenuParams{
		CategoryID:  "cat-1",
		Name:        "Omelette",
		Description: "Three eggs",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if m.Image != models.DefaultMenuImage {
		t.Fatalf("expected default image, got %q", m.Image)
	}
}

func TestMenuService_Create_UnknownCategory(t *testing.T) {
	menus := &mockMenuRepo{
		CreateFn: func(m *models.Menu) (*models.Menu, error) {
			t.Fatal("Create should not reach the repo for an unknown category")
			return nil, nil
		},
	}
	svc := NewMenuService(menus, knownCategory("cat-1"), newChangeFeed())

	_, err := svc.Create(context.Background(), MenuParams{
		CategoryID:  "nope",
		Name:        "Omelette",
		Description: "Three eggs",
	})
	if !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got: %v", err)
	}
}

func TestMenuService_Create_MissingFields(t *testing.T) {
	svc := NewMenuService(&mockMenuRepo{}, knownCategory("cat-1"), newChangeFeed())

	_, err := svc.Create(context.Background(), MenuParams{CategoryID: "cat-1", Name: "  "})
	if !errors.Is(err, ErrMenuInvalid) {
		t.Fatalf("expected ErrMenuInvalid, got: %v", err)
	}
}

func TestMenuService_Update_EmptyImageKeepsStored(t *testing.T) {
	menus := &mockMenuRepo{
		GetByIDFn: func(id string) (*models.Menu, error) {
			return &models.Menu{
				ID: id, CategoryID: "cat-1", Name: "Omelette",
				Description: "Three eggs", Image: "/uploads/old.png",
			}, nil
		},
		UpdateFn: func(m *models.Menu) error { return nil },
	}
	svc := NewMenuService(menus, knownCategory("cat-1"), newChangeFeed())

	m, err := svc.Update(context.Background(), "menu-1", MenuParams{
		CategoryID:  "cat-1",
		Name:        "Big Omelette",
		Description: "Four eggs",
		Slot:        3,
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if m.Image != "/uploads/old.png" {
		t.Fatalf("empty image must keep the stored one, got %q", m.Image)
	}
	if m.Name != "Big Omelette" || m.Slot != 3 {
		t.Fatalf("mutable fields not replaced: %+v", m)
	}
	if len(menus.updateCalls) != 1 {
		t.Fatalf("expected 1 Update call, got %d", len(menus.updateCalls))
	}
}

func TestMenuService_Update_NotFound(t *testing.T) {
	menus := &mockMenuRepo{
		GetByIDFn: func(id string) (*models.Menu, error) { return nil, nil },
	}
	svc := NewMenuService(menus, knownCategory("cat-1"), newChangeFeed())

	_, err := svc.Update(context.Background(), "gone", MenuParams{
		CategoryID: "cat-1", Name: "X", Description: "Y",
	})
	if !errors.Is(err, ErrMenuNotFound) {
		t.Fatalf("expected ErrMenuNotFound, got: %v", err)
	}
}

func TestMenuService_Delete_PublishesEvent(t *testing.T) {
	menus := &mockMenuRepo{
		DeleteFn: func(id string) (bool, error) { return true, nil },
	}
	feed := newChangeFeed()
	svc := NewMenuService(menus, knownCategory("cat-1"), feed)

	events, cancel := feed.Subscribe()
	defer cancel()

	if err := svc.Delete(context.Background(), "menu-1"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	select {
	case ev := <-events:
		if ev.Kind != ChangeDeleted || ev.Entity != EntityMenu || ev.ID != "menu-1" {
			t.Fatalf("unexpected event: %+v", ev)
		}
	default:
		t.Fatalf("expected a change event on the feed")
	}
}

func TestMenuService_Delete_NotFound(t *testing.T) {
	menus := &mockMenuRepo{
		DeleteFn: func(id string) (bool, error) { return false, nil },
	}
	svc := NewMenuService(menus, knownCategory("cat-1"), newChangeFeed())

	if err := svc.Delete(context.Background(), "gone"); !errors.Is(err, ErrMenuNotFound) {
		t.Fatalf("expected ErrMenuNotFound, got: %v", err)
	}
}

func TestMenuService_ListByCategory_UnknownCategory(t *testing.T) {
	svc := NewMenuService(&mockMenuRepo{}, knownCategory("cat-1"), newChangeFeed())

	_, err := svc.ListByCategory(context.Background(), "nope")
	if !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got: %v", err)
	}
}

// --- Category service ---

func TestCategoryService_Delete_BlockedWhileInUse(t *testing.T) {
	categories := &mockCategoryRepo{
		DeleteFn: func(id string) (bool, error) {
			t.Fatal("Delete should not reach the repo while menus reference the category")
			return false, nil
		},
	}
	menus := &mockMenuRepo{
		CountByCategoryFn: func(categoryID string) (int, error) { return 2, nil },
	}
	svc := NewCategoryService(categories, menus, newChangeFeed())

	if err := svc.Delete(context.Background(), "cat-1"); !errors.Is(err, ErrCategoryInUse) {
		t.Fatalf("expected ErrCategoryInUse, got: %v", err)
	}
}

func TestCategoryService_Create_RequiresName(t *testing.T) {
	svc := NewCategoryService(&mockCategoryRepo{}, &mockMenuRepo{}, newChangeFeed())

	if _, err := svc.Create(context.Background(), "   ", "desc"); !errors.Is(err, ErrCategoryName) {
		t.Fatalf("expected ErrCategoryName, got: %v", err)
	}
}

func TestCategoryService_Update_Partial(t *testing.T) {
	categories := &mockCategoryRepo{
		GetByIDFn: func(id string) (*models.Category, error) {
			return &models.Category{ID: id, Name: "Breakfast", Description: "morning"}, nil
		},
		UpdateFn: func(c *models.Category) error { return nil },
	}
	svc := NewCategoryService(categories, &mockMenuRepo{}, newChangeFeed())

	c, err := svc.Update(context.Background(), "cat-1", CategoryUpdate{Description: "all day"})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if c.Name != "Breakfast" {
		t.Errorf("name must be unchanged, got %q", c.Name)
	}
	if c.Description != "all day" {
		t.Errorf("expected updated description, got %q", c.Description)
	}
}
