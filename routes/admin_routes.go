package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/top5deutschland/top5_backend/controllers"
	"github.com/top5deutschland/top5_backend/middleware"
	"github.com/top5deutschland/top5_backend/repositories"
	"github.com/top5deutschland/top5_backend/websocket"
)

// RegisterAdminRoutes sets up the password-gated management surface.
func RegisterAdminRoutes(e *echo.Echo, repo *repositories.CatalogRepository, hub *websocket.Hub) {
	adminController := controllers.NewAdminController(repo, hub)
	reviewController := controllers.NewReviewController(repo, hub)

	// Login is the only unauthenticated admin route
	e.POST("/api/admin/login", adminController.Login)

	admin := e.Group("/api/admin")
	admin.Use(middleware.AdminJWTMiddleware())

	admin.POST("/logout", adminController.Logout)

	admin.GET("/providers", adminController.GetAllProviders)
	admin.POST("/providers", adminController.CreateProvider)
	admin.GET("/providers/:id/edit", adminController.GetProviderForEdit)
	admin.PUT("/providers/:id", adminController.UpdateProvider)
	admin.PUT("/providers/:id/approve", adminController.ApproveProvider)
	admin.DELETE("/providers/:id", adminController.DeleteProvider)

	admin.POST("/providers/:id/images", adminController.UploadProviderImage)
	admin.DELETE("/providers/:id/images/gallery/:index", adminController.DeleteGalleryImage)

	admin.DELETE("/providers/:id/reviews/:reviewId", reviewController.DeleteReview)
}
