// controllers/category_controller.go
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

type CategoryController struct {
	Repo *repositories.CatalogRepository
	Hub  *websocket.Hub
}

func NewCategoryController(repo *repositories.CatalogRepository, hub *websocket.Hub) *CategoryController {
	return &CategoryController{Repo: repo, Hub: hub}
}

// GetCategories returns the full taxonomy in collection order.
func (cc *CategoryController) GetCategories(c echo.Context) error {
	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Categories retrieved successfully",
		Data:    cc.Repo.Categories(),
	})
}

// CreateCategory adds a new top-level category. The id is slugged
// server-side; icons must come from the closed icon set and default to
// Briefcase when omitted.
func (cc *CategoryController) CreateCategory(c echo.Context) error {
	var req models.CategoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Category id and German label are required",
		})
	}

	iconName := req.IconName
	if iconName == "" {
		iconName = models.DefaultIconName
	} else if !models.IsValidIconName(iconName) {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Unknown icon name",
		})
	}

	labelEn := req.LabelEn
	if labelEn == "" {
		labelEn = req.LabelDe
	}

	category := models.CategoryInfo{
		ID:            utils.Slugify(req.ID),
		Label:         models.LocalizedLabel{De: req.LabelDe, En: labelEn},
		IconName:      iconName,
		SubCategories: []models.SubCategory{},
	}

	if err := cc.Repo.AddCategory(c.Request().Context(), category); err != nil {
		return c.JSON(http.StatusConflict, models.Response{
			Status:  http.StatusConflict,
			Message: "Category with this id already exists",
		})
	}

	cc.Hub.NotifyCategoryChanged(cc.Repo.Categories())

	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Category created successfully",
		Data:    category,
	})
}

// DeleteCategory removes a category. Providers referencing it keep
// their stale category id and simply stop matching category filters.
func (cc *CategoryController) DeleteCategory(c echo.Context) error {
	if err := cc.Repo.DeleteCategory(c.Request().Context(), c.Param("id")); err != nil {
		if err == repositories.ErrCategoryNotFound {
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: "Category not found",
			})
		}
		logrus.WithError(err).Error("failed to delete category")
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to delete category",
		})
	}

	cc.Hub.NotifyCategoryChanged(cc.Repo.Categories())

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Category deleted successfully",
	})
}

// CreateSubCategory appends a subcategory to an existing category; the
// id is derived from the German label.
func (cc *CategoryController) CreateSubCategory(c echo.Context) error {
	var req models.SubCategoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "German label is required",
		})
	}

	labelEn := req.LabelEn
	if labelEn == "" {
		labelEn = req.LabelDe
	}

	sub := models.SubCategory{
		ID:    utils.Slugify(req.LabelDe),
		Label: models.LocalizedLabel{De: req.LabelDe, En: labelEn},
	}

	categoryID := c.Param("id")
	if err := cc.Repo.AddSubCategory(c.Request().Context(), categoryID, sub); err != nil {
		if err == repositories.ErrCategoryNotFound {
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: "Category not found",
			})
		}
		return c.JSON(http.StatusConflict, models.Response{
			Status:  http.StatusConflict,
			Message: "Subcategory already exists",
		})
	}

	cc.Hub.NotifyCategoryChanged(cc.Repo.Categories())

	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Subcategory created successfully",
		Data:    sub,
	})
}

// DeleteSubCategory removes a subcategory from its parent only;
// providers referencing its id are untouched.
func (cc *CategoryController) DeleteSubCategory(c echo.Context) error {
	err := cc.Repo.DeleteSubCategory(c.Request().Context(), c.Param("id"), c.Param("subId"))
	if err != nil {
		if err == repositories.ErrCategoryNotFound {
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: "Category not found",
			})
		}
		return c.JSON(http.StatusNotFound, models.Response{
			Status:  http.StatusNotFound,
			Message: "Subcategory not found",
		})
	}

	cc.Hub.NotifyCategoryChanged(cc.Repo.Categories())

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Subcategory deleted successfully",
	})
}
