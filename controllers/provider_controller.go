// controllers/provider_controller.go
package controllers

import (
	"bytes"
	"image/png"
	"net/http"
	"os"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"
	"github.com/labstack/echo/v4"

	"github.com/top5deutschland/top5_backend/models"
	"github.com/top5deutschland/top5_backend/repositories"
)

// DefaultCity is assumed when a listing request names no city.
const DefaultCity = "Bamberg"

type ProviderController struct {
	Repo *repositories.CatalogRepository
}

func NewProviderController(repo *repositories.CatalogRepository) *ProviderController {
	return &ProviderController{Repo: repo}
}

// GetProviders returns the approved listings for a city, optionally
// narrowed by category and subcategory. The subcategory parameter only
// applies when a category is selected.
func (pc *ProviderController) GetProviders(c echo.Context) error {
	city := c.QueryParam("city")
	if city == "" {
		city = DefaultCity
	}
	category := c.QueryParam("category")
	subCategory := c.QueryParam("sub")
	if subCategory == "" {
		subCategory = models.SubCategoryAll
	}

	visible := models.VisibleProviders(pc.Repo.Providers(), city, category, subCategory)

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Providers retrieved successfully",
		Data:    visible,
	})
}

// GetProvider returns a single listing by id, approved or not.
func (pc *ProviderController) GetProvider(c echo.Context) error {
	provider, err := pc.Repo.FindProvider(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, models.Response{
			Status:  http.StatusNotFound,
			Message: "Provider not found",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Provider retrieved successfully",
		Data:    provider,
	})
}

// GetProviderQR renders a PNG QR code of the provider's share target,
// for share buttons and print material. Maps link wins over website;
// listings with neither fall back to their public detail page.
func (pc *ProviderController) GetProviderQR(c echo.Context) error {
	provider, err := pc.Repo.FindProvider(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, models.Response{
			Status:  http.StatusNotFound,
			Message: "Provider not found",
		})
	}

	shareURL := provider.MapsURL
	if shareURL == "" {
		shareURL = provider.Website
	}
	if shareURL == "" {
		base := os.Getenv("PUBLIC_BASE_URL")
		if base == "" {
			scheme := c.Scheme()
			if scheme == "" {
				scheme = "https"
			}
			base = scheme + "://" + c.Request().Host
		}
		shareURL = base + "/provider/" + provider.ID
	}

	qrCode, err := qr.Encode(shareURL, qr.M, qr.Auto)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to generate QR code",
		})
	}

	qrCode, err = barcode.Scale(qrCode, 200, 200)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to scale QR code",
		})
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, qrCode); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to encode QR code",
		})
	}

	return c.Blob(http.StatusOK, "image/png", buf.Bytes())
}
