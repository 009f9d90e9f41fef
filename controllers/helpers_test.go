package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/top5deutschland/top5_backend/repositories"
	"github.com/top5deutschland/top5_backend/websocket"
)

type testValidator struct {
	validator *validator.Validate
}

func (tv *testValidator) Validate(i interface{}) error {
	return tv.validator.Struct(i)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	return e
}

func newTestRepo(t *testing.T) *repositories.CatalogRepository {
	t.Helper()
	repo := repositories.NewCatalogRepository(repositories.NewMemoryStore())
	require.NoError(t, repo.Init(context.Background()))
	return repo
}

func newTestHub() *websocket.Hub {
	hub := websocket.NewHub()
	go hub.Run()
	return hub
}

// jsonRequest builds an echo context carrying a JSON body.
func jsonRequest(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func getRequest(e *echo.Echo, target string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}
