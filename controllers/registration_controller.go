// controllers/registration_controller.go
package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/top5deutschland/top5_backend/models"
	"github.com/top5deutschland/top5_backend/repositories"
	"github.com/top5deutschland/top5_backend/utils"
	"github.com/top5deutschland/top5_backend/websocket"
)

// placeholderImage is shown on new registrations until the admin
// uploads real photos.
const placeholderImage = "https://images.unsplash.com/photo-1517248135467-4c7edcad34c4?auto=format&fit=crop&q=80&w=800"

// defaultCoordinates is the Bamberg city center, used until the admin
// pins the real location.
var defaultCoordinates = models.Coordinates{Lat: 49.89, Lng: 10.89}

type RegistrationController struct {
	Repo *repositories.CatalogRepository
	Hub  *websocket.Hub
}

func NewRegistrationController(repo *repositories.CatalogRepository, hub *websocket.Hub) *RegistrationController {
	return &RegistrationController{Repo: repo, Hub: hub}
}

// registrationHours is the single-line default for new registrations,
// which carry no hour fields of their own. The admin editor replaces it
// with the per-day form on the first save.
const registrationHours = "09:00 - 18:00"

// Register accepts a public business registration. The listing enters
// the collection unapproved at the head; it stays invisible to the
// public until an admin approves it.
func (rc *RegistrationController) Register(c echo.Context) error {
	var req models.RegistrationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Name, category, address, phone and a valid tier are required; the description is limited to 300 characters",
		})
	}

	id := utils.Slugify(req.Name)
	if _, err := rc.Repo.FindProvider(id); err == nil {
		return c.JSON(http.StatusConflict, models.Response{
			Status:  http.StatusConflict,
			Message: "A business with this name is already registered",
		})
	}

	provider := models.Provider{
		ID:          id,
		Name:        req.Name,
		Category:    req.Category,
		City:        DefaultCity,
		Address:     req.Address,
		Phone:       req.Phone,
		Description: req.Description,
		Website:     req.Website,
		SocialMedia: models.SocialMedia{
			Instagram: req.Instagram,
			Facebook:  req.Facebook,
		},
		Coordinates:    defaultCoordinates,
		Image:          placeholderImage,
		Reviews:        []models.Review{},
		Tier:           req.Tier,
		OpeningHours:   registrationHours,
		IsApproved:     false,
		ApprovalStatus: models.ApprovalPending,
		PaymentStatus:  models.PaymentPending,
	}

	if err := rc.Repo.PrependProvider(c.Request().Context(), provider); err != nil {
		logrus.WithError(err).Error("failed to store registration")
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to submit registration",
		})
	}

	go utils.NotifyAdminOfRegistration(provider)
	rc.Hub.NotifyProviderCreated(provider)

	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Registration submitted successfully. Your listing will appear after review.",
		Data:    provider,
	})
}
