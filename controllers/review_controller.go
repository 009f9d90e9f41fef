// controllers/review_controller.go
package controllers

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/top5deutschland/top5_backend/models"
	"github.com/top5deutschland/top5_backend/repositories"
	"github.com/top5deutschland/top5_backend/websocket"
)

type ReviewController struct {
	Repo *repositories.CatalogRepository
	Hub  *websocket.Hub
}

func NewReviewController(repo *repositories.CatalogRepository, hub *websocket.Hub) *ReviewController {
	return &ReviewController{Repo: repo, Hub: hub}
}

// reviewDate formats today's date in the reviewer's locale convention.
func reviewDate(lang string) string {
	now := time.Now()
	if lang == "en" {
		return now.Format("1/2/2006")
	}
	return now.Format("02.01.2006")
}

// SubmitReview adds a review to a provider. The review is prepended so
// the newest feedback shows first, and the provider's rating aggregate
// is recomputed server-side.
func (rc *ReviewController) SubmitReview(c echo.Context) error {
	var req models.ReviewRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Review requires a name, a comment and a rating from 1 to 5",
		})
	}

	review := models.Review{
		ID:       uuid.New().String(),
		UserName: req.UserName,
		Rating:   req.Rating,
		Comment:  req.Comment,
		Date:     reviewDate(req.Lang),
		Image:    req.Image,
	}

	providerID := c.Param("id")
	updated, err := rc.Repo.UpdateProvider(c.Request().Context(), providerID, func(p models.Provider) models.Provider {
		return models.AddReview(p, review)
	})
	if err != nil {
		if err == repositories.ErrProviderNotFound {
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: "Provider not found",
			})
		}
		logrus.WithError(err).Error("failed to persist review")
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to save review",
		})
	}

	rc.Hub.NotifyReviewAdded(providerID, review)

	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Review submitted successfully",
		Data:    updated,
	})
}

// DeleteReview removes a single review from a provider and recomputes
// the aggregate. Admin only.
func (rc *ReviewController) DeleteReview(c echo.Context) error {
	providerID := c.Param("id")
	reviewID := c.Param("reviewId")

	updated, err := rc.Repo.UpdateProvider(c.Request().Context(), providerID, func(p models.Provider) models.Provider {
		return models.RemoveReview(p, reviewID)
	})
	if err != nil {
		if err == repositories.ErrProviderNotFound {
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: "Provider not found",
			})
		}
		logrus.WithError(err).Error("failed to delete review")
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to delete review",
		})
	}

	rc.Hub.NotifyProviderUpdated(updated)

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Review deleted successfully",
		Data:    updated,
	})
}
