package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/top5deutschland/top5_backend/controllers"
	"github.com/top5deutschland/top5_backend/middleware"
	"github.com/top5deutschland/top5_backend/repositories"
	"github.com/top5deutschland/top5_backend/websocket"
)

// RegisterCategoryRoutes sets up all category-related routes
func RegisterCategoryRoutes(e *echo.Echo, repo *repositories.CatalogRepository, hub *websocket.Hub) {
	categoryController := controllers.NewCategoryController(repo, hub)

	// Public routes (no auth required)
	e.GET("/api/categories", categoryController.GetCategories)

	// Admin protected routes
	adminCategories := e.Group("/api/admin/categories")
	adminCategories.Use(middleware.AdminJWTMiddleware())

	adminCategories.POST("", categoryController.CreateCategory)
	adminCategories.DELETE("/:id", categoryController.DeleteCategory)
	adminCategories.POST("/:id/subcategories", categoryController.CreateSubCategory)
	adminCategories.DELETE("/:id/subcategories/:subId", categoryController.DeleteSubCategory)
}
