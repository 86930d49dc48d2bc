package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"motomarket-api/repositories"
	"motomarket-api/utils"
)

type BrandController struct {
	repo repositories.CatalogRepository
}

func NewBrandController(repo repositories.CatalogRepository) *BrandController {
	return &BrandController{repo: repo}
}

// ListBrands handles GET /brands?limit=&offset= with per-brand model counts.
func (bc *BrandController) ListBrands(c *gin.Context) {
	limit, offset := parseOffsetParams(c, 50)

	brands, total, err := bc.repo.ListBrands(limit, offset)
	if err != nil {
		utils.SendServerError(c, "Failed to fetch brands")
		return
	}

	utils.SendSuccess(c, http.StatusOK, gin.H{
		"brands":     brands,
		"pagination": utils.NewOffsetPagination(total, offset, limit, len(brands)),
	}, "")
}
