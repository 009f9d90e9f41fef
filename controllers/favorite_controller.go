// controllers/favorite_controller.go
package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/top5deutschland/top5_backend/models"
	"github.com/top5deutschland/top5_backend/repositories"
)

type FavoriteController struct {
	Repo *repositories.CatalogRepository
}

func NewFavoriteController(repo *repositories.CatalogRepository) *FavoriteController {
	return &FavoriteController{Repo: repo}
}

// ToggleFavorite flips an id's membership in the shared favorite set
// and reports the resulting state. The set lives independently of the
// listings, so ids left behind by a deleted provider can still be
// toggled off.
func (fc *FavoriteController) ToggleFavorite(c echo.Context) error {
	id := c.Param("id")

	isFavorite, err := fc.Repo.ToggleFavorite(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to update favorites",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Favorites updated",
		Data:    map[string]interface{}{"id": id, "isFavorite": isFavorite},
	})
}

// GetFavorites returns the favorited providers, approved or not.
func (fc *FavoriteController) GetFavorites(c echo.Context) error {
	favorites := models.FavoriteProviders(fc.Repo.Providers(), fc.Repo.Favorites())

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Favorites retrieved successfully",
		Data:    favorites,
	})
}
