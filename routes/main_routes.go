package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/top5deutschland/top5_backend/controllers"
	"github.com/top5deutschland/top5_backend/repositories"
	"github.com/top5deutschland/top5_backend/services"
	"github.com/top5deutschland/top5_backend/websocket"
)

// SetupRoutes configures all API routes by calling individual route
// registration functions.
func SetupRoutes(e *echo.Echo, repo *repositories.CatalogRepository, hub *websocket.Hub, tips *services.TipService) {
	RegisterPublicRoutes(e, repo, hub, tips)
	RegisterCategoryRoutes(e, repo, hub)
	RegisterAdminRoutes(e, repo, hub)

	e.GET("/api/ws", func(c echo.Context) error {
		return websocket.HandleWebSocket(c, hub)
	})
}

// RegisterPublicRoutes sets up the unauthenticated catalog surface.
func RegisterPublicRoutes(e *echo.Echo, repo *repositories.CatalogRepository, hub *websocket.Hub, tips *services.TipService) {
	providerController := controllers.NewProviderController(repo)
	reviewController := controllers.NewReviewController(repo, hub)
	favoriteController := controllers.NewFavoriteController(repo)
	registrationController := controllers.NewRegistrationController(repo, hub)
	tipController := controllers.NewTipController(tips)

	api := e.Group("/api")

	api.GET("/providers", providerController.GetProviders)
	api.GET("/providers/:id", providerController.GetProvider)
	api.GET("/providers/:id/qr", providerController.GetProviderQR)
	api.POST("/providers/:id/reviews", reviewController.SubmitReview)

	api.GET("/favorites", favoriteController.GetFavorites)
	api.POST("/favorites/:id", favoriteController.ToggleFavorite)

	api.POST("/register", registrationController.Register)
	api.GET("/tips", tipController.GetLocalTip)
}
