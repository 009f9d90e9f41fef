// controllers/admin_controller.go
package controllers

import (
	"crypto/subtle"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/top5deutschland/top5_backend/middleware"
	"github.com/top5deutschland/top5_backend/models"
	"github.com/top5deutschland/top5_backend/repositories"
	"github.com/top5deutschland/top5_backend/utils"
	"github.com/top5deutschland/top5_backend/websocket"
)

type AdminController struct {
	Repo *repositories.CatalogRepository
	Hub  *websocket.Hub
}

func NewAdminController(repo *repositories.CatalogRepository, hub *websocket.Hub) *AdminController {
	return &AdminController{Repo: repo, Hub: hub}
}

// Login checks the shared admin password and issues a session token.
// The comparison is constant-time; failed attempts leave no lockout
// state, so a later correct attempt always succeeds.
func (ac *AdminController) Login(c echo.Context) error {
	var req models.AdminLoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Password is required",
		})
	}

	expected := os.Getenv("ADMIN_PASSWORD")
	if expected == "" {
		logrus.Error("ADMIN_PASSWORD environment variable is not set")
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Admin login is not configured",
		})
	}

	if len(req.Password) != len(expected) ||
		subtle.ConstantTimeCompare([]byte(req.Password), []byte(expected)) != 1 {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Invalid password",
		})
	}

	token, err := middleware.GenerateAdminToken()
	if err != nil {
		logrus.WithError(err).Error("failed to sign admin token")
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to create session",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Login successful",
		Data:    models.AdminLoginData{Token: token},
	})
}

// Logout revokes the presented token for its remaining lifetime.
func (ac *AdminController) Logout(c echo.Context) error {
	user, ok := c.Get("user").(*jwt.Token)
	if ok {
		expiry := time.Now().Add(middleware.AdminTokenTTL)
		if claims, ok := user.Claims.(*middleware.AdminClaims); ok && claims.ExpiresAt > 0 {
			expiry = time.Unix(claims.ExpiresAt, 0)
		}
		middleware.RevokeToken(c.Request().Context(), user.Raw, expiry)
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Logged out successfully",
	})
}

// GetAllProviders returns every listing, approved or not, in collection
// order for the admin dashboard.
func (ac *AdminController) GetAllProviders(c echo.Context) error {
	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Providers retrieved successfully",
		Data:    ac.Repo.Providers(),
	})
}

// hoursSet reports whether any per-day field was filled in.
func hoursSet(h models.WeeklyHours) bool {
	return h.Monday != "" || h.Tuesday != "" || h.Wednesday != "" ||
		h.Thursday != "" || h.Friday != "" || h.Saturday != "" || h.Sunday != ""
}

// applyHours serializes the structured editor fields into the provider's
// openingHours string. When no per-day field was touched the submitted
// free-text value passes through unchanged, which is the escape hatch
// for listings whose hours do not fit the weekly template.
func applyHours(p models.Provider, h models.WeeklyHours) models.Provider {
	if hoursSet(h) {
		p.OpeningHours = utils.FormatWeeklyHours(h)
	}
	return p
}

// applyCreateTemplate fills the empty-provider defaults for fields the
// editor left blank: first category, Bamberg, tier premium, paid,
// valid for a year, standard business hours.
func (ac *AdminController) applyCreateTemplate(p models.Provider) models.Provider {
	if p.Category == "" {
		if categories := ac.Repo.Categories(); len(categories) > 0 {
			p.Category = categories[0].ID
		}
	}
	if p.City == "" {
		p.City = DefaultCity
	}
	if p.Tier == "" {
		p.Tier = models.TierPremium
	}
	if p.ApprovalStatus == "" {
		if p.IsApproved {
			p.ApprovalStatus = models.ApprovalActive
		} else {
			p.ApprovalStatus = models.ApprovalPending
		}
	}
	if p.PaymentStatus == "" {
		p.PaymentStatus = models.PaymentPaid
	}
	if p.ValidUntil == "" {
		p.ValidUntil = time.Now().AddDate(1, 0, 0).Format("2006-01-02")
	}
	if p.Coordinates == (models.Coordinates{}) {
		p.Coordinates = defaultCoordinates
	}
	if p.Image == "" {
		p.Image = placeholderImage
	}
	if p.OpeningHours == "" {
		weekday := "09:00 - 18:00"
		p.OpeningHours = utils.FormatWeeklyHours(models.WeeklyHours{
			Monday:    weekday,
			Tuesday:   weekday,
			Wednesday: weekday,
			Thursday:  weekday,
			Friday:    weekday,
			Saturday:  "10:00 - 16:00",
			Sunday:    utils.ClosedMarker,
		})
	}
	if p.Reviews == nil {
		p.Reviews = []models.Review{}
	}
	return p
}

// CreateProvider inserts a new listing at the head of the collection.
// Rating and reviewCount are stored as submitted: the admin editor is
// the manual-override path for imported aggregate values.
func (ac *AdminController) CreateProvider(c echo.Context) error {
	var req models.ProviderSaveRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	provider := applyHours(req.Provider, req.Hours)
	if provider.Name == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Provider name is required",
		})
	}
	if provider.ID == "" {
		provider.ID = utils.Slugify(provider.Name)
	}
	if _, err := ac.Repo.FindProvider(provider.ID); err == nil {
		return c.JSON(http.StatusConflict, models.Response{
			Status:  http.StatusConflict,
			Message: "Provider with this id already exists",
		})
	}
	provider = ac.applyCreateTemplate(provider)

	if err := ac.Repo.PrependProvider(c.Request().Context(), provider); err != nil {
		logrus.WithError(err).Error("failed to create provider")
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to create provider",
		})
	}

	ac.Hub.NotifyProviderCreated(provider)

	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Provider created successfully",
		Data:    provider,
	})
}

// GetProviderForEdit returns the listing with its openingHours parsed
// into per-day fields for the structured editor.
func (ac *AdminController) GetProviderForEdit(c echo.Context) error {
	provider, err := ac.Repo.FindProvider(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, models.Response{
			Status:  http.StatusNotFound,
			Message: "Provider not found",
		})
	}

	view := models.ProviderEditView{
		Provider: provider,
		Hours:    utils.ParseWeeklyHours(provider.OpeningHours),
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Provider retrieved successfully",
		Data:    view,
	})
}

// UpdateProvider replaces the listing wholesale with the editor payload.
func (ac *AdminController) UpdateProvider(c echo.Context) error {
	var req models.ProviderSaveRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	provider := applyHours(req.Provider, req.Hours)
	provider.ID = c.Param("id")
	if provider.Reviews == nil {
		provider.Reviews = []models.Review{}
	}

	if err := ac.Repo.ReplaceProvider(c.Request().Context(), provider); err != nil {
		if err == repositories.ErrProviderNotFound {
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: "Provider not found",
			})
		}
		logrus.WithError(err).Error("failed to update provider")
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to update provider",
		})
	}

	ac.Hub.NotifyProviderUpdated(provider)

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Provider updated successfully",
		Data:    provider,
	})
}

// ApproveProvider flips a pending registration live.
func (ac *AdminController) ApproveProvider(c echo.Context) error {
	updated, err := ac.Repo.UpdateProvider(c.Request().Context(), c.Param("id"), func(p models.Provider) models.Provider {
		p.IsApproved = true
		p.ApprovalStatus = models.ApprovalActive
		return p
	})
	if err != nil {
		if err == repositories.ErrProviderNotFound {
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: "Provider not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to approve provider",
		})
	}

	ac.Hub.NotifyProviderUpdated(updated)

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Provider approved successfully",
		Data:    updated,
	})
}

// DeleteProvider removes a listing permanently. A single DELETE call is
// the confirmation; there is no soft-delete or undo.
func (ac *AdminController) DeleteProvider(c echo.Context) error {
	id := c.Param("id")
	if err := ac.Repo.DeleteProvider(c.Request().Context(), id); err != nil {
		if err == repositories.ErrProviderNotFound {
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: "Provider not found",
			})
		}
		logrus.WithError(err).Error("failed to delete provider")
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to delete provider",
		})
	}

	ac.Hub.NotifyProviderDeleted(id)

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Provider deleted successfully",
	})
}

// UploadProviderImage stores an uploaded image and attaches its URL to
// the listing. The target form field selects the slot: "logo", "main"
// (the hero image) or "gallery" (appended).
func (ac *AdminController) UploadProviderImage(c echo.Context) error {
	id := c.Param("id")
	if _, err := ac.Repo.FindProvider(id); err != nil {
		return c.JSON(http.StatusNotFound, models.Response{
			Status:  http.StatusNotFound,
			Message: "Provider not found",
		})
	}

	target := c.FormValue("target")
	if target == "" {
		target = "main"
	}
	if target != "logo" && target != "main" && target != "gallery" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid target. Must be one of: logo, main, gallery",
		})
	}

	file, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Image file is required",
		})
	}
	if file.Size > utils.MaxFileSize {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "File too large. Maximum size is 10MB",
		})
	}

	src, err := file.Open()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to read uploaded file",
		})
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to read uploaded file",
		})
	}

	subDir := "providers"
	if target == "gallery" {
		subDir = "gallery"
	}
	filename := id + "-" + uuid.New().String() + "-" + file.Filename
	url, err := utils.UploadFileToPath(data, filename, file.Header.Get("Content-Type"), subDir)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	if _, err := utils.GenerateImageThumbnail(data, filename); err != nil {
		logrus.WithError(err).Warn("thumbnail generation failed")
	}

	updated, err := ac.Repo.UpdateProvider(c.Request().Context(), id, func(p models.Provider) models.Provider {
		switch target {
		case "logo":
			p.Logo = url
		case "main":
			p.Image = url
		case "gallery":
			p.Gallery = append(p.Gallery, url)
		}
		return p
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to attach image",
		})
	}

	ac.Hub.NotifyProviderUpdated(updated)

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Image uploaded successfully",
		Data:    map[string]interface{}{"url": url, "provider": updated},
	})
}

// DeleteGalleryImage removes one gallery entry by position.
func (ac *AdminController) DeleteGalleryImage(c echo.Context) error {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid gallery index",
		})
	}

	var outOfRange bool
	updated, err := ac.Repo.UpdateProvider(c.Request().Context(), c.Param("id"), func(p models.Provider) models.Provider {
		if index >= len(p.Gallery) {
			outOfRange = true
			return p
		}
		p.Gallery = append(p.Gallery[:index], p.Gallery[index+1:]...)
		return p
	})
	if err != nil {
		if err == repositories.ErrProviderNotFound {
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: "Provider not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to delete gallery image",
		})
	}
	if outOfRange {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Gallery index out of range",
		})
	}

	ac.Hub.NotifyProviderUpdated(updated)

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Gallery image deleted successfully",
		Data:    updated,
	})
}
