package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"motomarket-api/repositories"
	"motomarket-api/services"
	"motomarket-api/utils"
)

// maxCompareModels caps the comparison feature
const maxCompareModels = 4

type BikeController struct {
	catalog *services.CatalogService
}

func NewBikeController(catalog *services.CatalogService) *BikeController {
	return &BikeController{catalog: catalog}
}

// ListBikes handles GET /bikes: filter, sort and paginate the catalog.
// Malformed filter values are silently ignored rather than rejected.
func (bc *BikeController) ListBikes(c *gin.Context) {
	criteria := repositories.ParseListCriteria(c.Request.URL.Query())

	page, err := bc.catalog.ListBikes(criteria)
	if err != nil {
		utils.SendServerError(c, "Failed to fetch bikes")
		return
	}

	utils.SendSuccess(c, http.StatusOK, page, "")
}

// ListModels handles GET /models: the flag/search listing with offset
// pagination and merged average ratings.
func (bc *BikeController) ListModels(c *gin.Context) {
	criteria := repositories.ParseCatalogCriteria(c.Request.URL.Query())

	page, err := bc.catalog.ListCatalog(criteria)
	if err != nil {
		utils.SendServerError(c, "Failed to fetch models")
		return
	}

	utils.SendSuccess(c, http.StatusOK, page, "")
}

// GetModel handles GET /models/:slug with an optional cityId for prices.
func (bc *BikeController) GetModel(c *gin.Context) {
	slug := c.Param("slug")
	cityID := c.Query("cityId")

	detail, similar, err := bc.catalog.GetModelDetail(slug, cityID)
	if err != nil {
		utils.SendServerError(c, "Failed to fetch model details")
		return
	}
	if detail == nil {
		utils.SendNotFound(c, "Model not found")
		return
	}

	utils.SendSuccess(c, http.StatusOK, gin.H{
		"model":         detail,
		"similarModels": similar,
	}, "")
}

// CompareModels handles GET /bikes/compare?models=slug-a,slug-b (2 to 4
// slugs, comma separated).
func (bc *BikeController) CompareModels(c *gin.Context) {
	raw := c.Query("models")
	if raw == "" {
		utils.SendValidationError(c, "models parameter is required")
		return
	}

	var slugs []string
	for _, slug := range strings.Split(raw, ",") {
		if slug = strings.TrimSpace(slug); slug != "" {
			slugs = append(slugs, slug)
		}
	}

	if len(slugs) < 2 {
		utils.SendValidationError(c, "At least 2 models are required for comparison")
		return
	}
	if len(slugs) > maxCompareModels {
		utils.SendValidationError(c, "At most 4 models can be compared")
		return
	}

	details, err := bc.catalog.CompareModels(slugs)
	if err != nil {
		utils.SendServerError(c, "Failed to fetch comparison")
		return
	}

	utils.SendSuccess(c, http.StatusOK, gin.H{"models": details}, "")
}
