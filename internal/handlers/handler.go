package handlers

import (
	"net/http"

	"restaurant_menu/internal/logger"
	"restaurant_menu/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services   *service.Service
	log        *logger.Logger
	uploadsDir string
}

// NewHandler constructs a new HTTP handler with dependencies. uploadsDir is
// the on-disk directory served statically under /uploads.
func NewHandler(services *service.Service, log *logger.Logger, uploadsDir string) *Handler {
	return &Handler{services: services, log: log, uploadsDir: uploadsDir}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Probe endpoints
	router.GET("/", h.root)
	router.GET("/health", h.health)

	// Uploaded images
	if h.uploadsDir != "" {
		router.Static("/uploads", h.uploadsDir)
	}

	h.registerAdminRoutes(router)
	h.registerCategoryRoutes(router)
	h.registerMenuRoutes(router)
	h.registerUploadRoutes(router)

	// Menu change feed (HTTP upgrade on the same port)
	router.GET("/ws", h.wsFeed)

	return router
}

func (h *Handler) registerAdminRoutes(r *gin.Engine) {
	admin := r.Group("/api/admin")
	{
		admin.POST("/register", h.register)
		admin.POST("/login", h.login)

		profile := admin.Group("/profile", h.adminIdentity)
		{
			profile.GET("", h.getProfile)
			profile.PUT("", h.updateProfile)
		}
	}
}

func (h *Handler) registerCategoryRoutes(r *gin.Engine) {
	categories := r.Group("/api/categories")
	{
		categories.GET("", h.listCategories)
		categories.GET("/:id", h.getCategory)

		categories.POST("", h.adminIdentity, h.createCategory)
		categories.PUT("/:id", h.adminIdentity, h.updateCategory)
		categories.DELETE("/:id", h.adminIdentity, h.deleteCategory)
	}
}

func (h *Handler) registerMenuRoutes(r *gin.Engine) {
	menus := r.Group("/api/menus")
	{
		menus.GET("", h.listMenus)
		menus.GET("/:id", h.getMenu)
		menus.GET("/category/:categoryId", h.listMenusByCategory)

		menus.POST("", h.adminIdentity, h.createMenu)
		menus.PUT("/:id", h.adminIdentity, h.updateMenu)
		menus.DELETE("/:id", h.adminIdentity, h.deleteMenu)
	}
}

func (h *Handler) registerUploadRoutes(r *gin.Engine) {
	r.POST("/api/upload", h.adminIdentity, h.uploadImage)
}

// @Summary      API probe
// @Tags         system
// @Produce      plain
// @Success      200  {string}  string
// @Router       / [get]
func (h *Handler) root(c *gin.Context) {
	c.String(http.StatusOK, "API is running...")
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
