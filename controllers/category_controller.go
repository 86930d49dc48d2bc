package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"motomarket-api/repositories"
	"motomarket-api/utils"
)

type CategoryController struct {
	repo repositories.CatalogRepository
}

func NewCategoryController(repo repositories.CatalogRepository) *CategoryController {
	return &CategoryController{repo: repo}
}

// ListCategories handles GET /categories?limit=&offset= with model counts.
func (cc *CategoryController) ListCategories(c *gin.Context) {
	limit, offset := parseOffsetParams(c, 50)

	categories, total, err := cc.repo.ListCategories(limit, offset)
	if err != nil {
		utils.SendServerError(c, "Failed to fetch categories")
		return
	}

	utils.SendSuccess(c, http.StatusOK, gin.H{
		"categories": categories,
		"pagination": utils.NewOffsetPagination(total, offset, limit, len(categories)),
	}, "")
}

// parseOffsetParams reads limit/offset with a hard cap of 100, treating
// malformed values as unset.
func parseOffsetParams(c *gin.Context, defaultLimit int) (int, int) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit < 1 {
		limit = defaultLimit
	}
	if limit > repositories.MaxCatalogLimit {
		limit = repositories.MaxCatalogLimit
	}

	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	return limit, offset
}
