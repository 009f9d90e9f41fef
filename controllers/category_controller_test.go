package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/top5deutschland/top5_backend/models"
)

func TestCreateCategorySlugsIDAndDefaultsIcon(t *testing.T) {
	e := newTestEcho()
	repo := newTestRepo(t)
	cc := NewCategoryController(repo, newTestHub())

	c, rec := jsonRequest(e, http.MethodPost, "/api/admin/categories",
		`{"id":"Vegan Food","labelDe":"Veganes Essen"}`)
	require.NoError(t, cc.CreateCategory(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	cat := models.FindCategory(repo.Categories(), "vegan-food")
	require.NotNil(t, cat)
	assert.Equal(t, models.DefaultIconName, cat.IconName)
	// Missing English label falls back to the German one
	assert.Equal(t, "Veganes Essen", cat.Label.En)
	assert.NotNil(t, cat.SubCategories)
}

func TestCreateCategoryRejectsUnknownIcon(t *testing.T) {
	e := newTestEcho()
	cc := NewCategoryController(newTestRepo(t), newTestHub())

	c, rec := jsonRequest(e, http.MethodPost, "/api/admin/categories",
		`{"id":"night","labelDe":"Nachtleben","iconName":"Disco"}`)
	require.NoError(t, cc.CreateCategory(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateCategoryDuplicateID(t *testing.T) {
	e := newTestEcho()
	cc := NewCategoryController(newTestRepo(t), newTestHub())

	c, rec := jsonRequest(e, http.MethodPost, "/api/admin/categories",
		`{"id":"gastronomy","labelDe":"Gastro"}`)
	require.NoError(t, cc.CreateCategory(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCreateSubCategoryDerivesIDFromGermanLabel(t *testing.T) {
	e := newTestEcho()
	repo := newTestRepo(t)
	cc := NewCategoryController(repo, newTestHub())

	c, rec := jsonRequest(e, http.MethodPost, "/api/admin/categories/gastronomy/subcategories",
		`{"labelDe":"Vegane Küche","labelEn":"Vegan Cuisine"}`)
	c.SetParamNames("id")
	c.SetParamValues("gastronomy")
	require.NoError(t, cc.CreateSubCategory(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Data models.SubCategory `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "vegane-küche", resp.Data.ID)

	cat := models.FindCategory(repo.Categories(), "gastronomy")
	require.NotNil(t, cat)
	assert.True(t, cat.HasSubCategory("vegane-küche"))
}

func TestCreateSubCategoryUnknownParent(t *testing.T) {
	e := newTestEcho()
	cc := NewCategoryController(newTestRepo(t), newTestHub())

	c, rec := jsonRequest(e, http.MethodPost, "/api/admin/categories/ghost/subcategories",
		`{"labelDe":"Egal"}`)
	c.SetParamNames("id")
	c.SetParamValues("ghost")
	require.NoError(t, cc.CreateSubCategory(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteCategoryLeavesProvidersUntouched(t *testing.T) {
	e := newTestEcho()
	repo := newTestRepo(t)
	cc := NewCategoryController(repo, newTestHub())

	c, rec := jsonRequest(e, http.MethodDelete, "/api/admin/categories/auto", ``)
	c.SetParamNames("id")
	c.SetParamValues("auto")
	require.NoError(t, cc.DeleteCategory(c))
	require.Equal(t, http.StatusOK, rec.Code)

	// The seed provider still references the deleted category.
	p, err := repo.FindProvider("carskin-folientechnik-bamberg")
	require.NoError(t, err)
	assert.Equal(t, "auto", p.Category)
}

func TestDeleteSubCategory(t *testing.T) {
	e := newTestEcho()
	repo := newTestRepo(t)
	cc := NewCategoryController(repo, newTestHub())

	c, rec := jsonRequest(e, http.MethodDelete, "/api/admin/categories/gastronomy/subcategories/doener", ``)
	c.SetParamNames("id", "subId")
	c.SetParamValues("gastronomy", "doener")
	require.NoError(t, cc.DeleteSubCategory(c))
	require.Equal(t, http.StatusOK, rec.Code)

	cat := models.FindCategory(repo.Categories(), "gastronomy")
	require.NotNil(t, cat)
	assert.False(t, cat.HasSubCategory("doener"))
}
