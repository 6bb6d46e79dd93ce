package handlers

import (
	"context"
	"io"
	"net/http"

	"restaurant_menu/internal/models"
	"restaurant_menu/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAdmins struct {
	registerAdmin *models.Admin
	registerToken string
	registerErr   error

	loginAdmin *models.Admin
	loginToken string
	loginErr   error

	profileAdmin *models.Admin
	profileErr   error

	updateAdmin *models.Admin
	updateToken string
	updateErr   error

	parseID  string
	parseErr error

	lastRegisterEmail string
	lastLoginEmail    string
	lastProfileID     string
	lastUpdate        service.ProfileUpdate
	lastParseToken    string
	profileCalls      int
}

func (m *mockAdmins) Register(_ context.Context, username, email, password string) (*models.Admin, string, error) {
	m.lastRegisterEmail = email
	return m.registerAdmin, m.registerToken, m.registerErr
}
func (m *mockAdmins) Login(_ context.Context, email, password string) (*models.Admin, string, error) {
	m.lastLoginEmail = email
	return m.loginAdmin, m.loginToken, m.loginErr
}
func (m *mockAdmins) GetProfile(_ context.Context, id string) (*models.Admin, error) {
	m.lastProfileID = id
	m.profileCalls++
	return m.profileAdmin, m.profileErr
}
func (m *mockAdmins) UpdateProfile(_ context.Context, id string, upd service.ProfileUpdate) (*models.Admin, string, error) {
	m.lastUpdate = upd
	return m.updateAdmin, m.updateToken, m.updateErr
}
func (m *mockAdmins) ParseToken(token string) (string, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockCategories struct {
	createCat *models.Category
	createErr error
	listResp  []models.Category
	listErr   error
	getCat    *models.Category
	getErr    error
	updateCat *models.Category
	updateErr error
	deleteErr error

	lastDeleteID string
}

func (m *mockCategories) Create(_ context.Context, name, description string) (*models.Category, error) {
	return m.createCat, m.createErr
}
func (m *mockCategories) List(_ context.Context) ([]models.Category, error) {
	return m.listResp, m.listErr
}
func (m *mockCategories) GetByID(_ context.Context, id string) (*models.Category, error) {
	return m.getCat, m.getErr
}
func (m *mockCategories) Update(_ context.Context, id string, upd service.CategoryUpdate) (*models.Category, error) {
	return m.updateCat, m.updateErr
}
func (m *mockCategories) Delete(_ context.Context, id string) error {
	m.lastDeleteID = id
	return m.deleteErr
}

type mockMenus struct {
	createMenu *models.Menu
	createErr  error
	listResp   []models.Menu
	listErr    error
	getMenu    *models.Menu
	getErr     error
	byCatResp  []models.Menu
	byCatErr   error
	updateMenu *models.Menu
	updateErr  error
	deleteErr  error

	lastKeyword  string
	lastCategory string
	lastParams   service.MenuParams
}

func (m *mockMenus) Create(_ context.Context, p service.MenuParams) (*models.Menu, error) {
	m.lastParams = p
	return m.createMenu, m.createErr
}
func (m *mockMenus) List(_ context.Context, keyword string) ([]models.Menu, error) {
	m.lastKeyword = keyword
	return m.listResp, m.listErr
}
func (m *mockMenus) GetByID(_ context.Context, id string) (*models.Menu, error) {
	return m.getMenu, m.getErr
}
func (m *mockMenus) ListByCategory(_ context.Context, categoryID string) ([]models.Menu, error) {
	m.lastCategory = categoryID
	return m.byCatResp, m.byCatErr
}
func (m *mockMenus) Update(_ context.Context, id string, p service.MenuParams) (*models.Menu, error) {
	m.lastParams = p
	return m.updateMenu, m.updateErr
}
func (m *mockMenus) Delete(_ context.Context, id string) error {
	return m.deleteErr
}

type mockUploads struct {
	path string
	err  error

	lastFilename string
	lastSize     int64
}

func (m *mockUploads) SaveImage(filename string, size int64, src io.Reader) (string, error) {
	m.lastFilename = filename
	m.lastSize = size
	if src != nil {
		_, _ = io.Copy(io.Discard, src)
	}
	return m.path, m.err
}

// mockFeed hands out a caller-controlled channel so tests can push events.
type mockFeed struct {
	ch chan service.ChangeEvent
}

func newMockFeed() *mockFeed {
	return &mockFeed{ch: make(chan service.ChangeEvent, 8)}
}

func (m *mockFeed) Subscribe() (<-chan service.ChangeEvent, func()) {
	return m.ch, func() {}
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil, "")
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

// authedService returns a Service whose guard accepts "Bearer good" for the
// given admin.
func authedService(admin *models.Admin) (*service.Service, *mockAdmins) {
	auth := &mockAdmins{parseID: admin.ID, profileAdmin: admin}
	return &service.Service{Admins: auth}, auth
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
