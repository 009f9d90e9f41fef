// controllers/tip_controller.go
package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/top5deutschland/top5_backend/models"
	"github.com/top5deutschland/top5_backend/services"
)

type TipController struct {
	Tips *services.TipService
}

func NewTipController(tips *services.TipService) *TipController {
	return &TipController{Tips: tips}
}

// GetLocalTip returns a short AI-generated insider tip for the city.
// When the Gemini integration is unconfigured or fails, the tip is an
// empty string and the status stays 200; the frontend hides the widget.
func (tc *TipController) GetLocalTip(c echo.Context) error {
	city := c.QueryParam("city")
	if city == "" {
		city = DefaultCity
	}
	lang := c.QueryParam("lang")

	tip := ""
	if tc.Tips != nil {
		tip = tc.Tips.GetLocalTip(c.Request().Context(), city, lang)
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Tip retrieved",
		Data:    map[string]string{"tip": tip, "city": city},
	})
}
