package repositories

import (
	"motomarket-api/models"
)

// RatingSummary aggregates approved reviews for one model. Average is nil
// when the model has no approved reviews.
type RatingSummary struct {
	Average *float64 `json:"average"`
	Count   int64    `json:"count"`
}

// BrandWithCount is a brand listing row with its model count.
type BrandWithCount struct {
	models.Brand
	ModelCount int64 `json:"count"`
}

// CategoryWithCount is a category listing row with its model count.
type CategoryWithCount struct {
	models.Category
	ModelCount int64 `json:"count"`
}

// CatalogRepository is the storage port for the read-only catalog slice.
// Every backend implements the same logical result set for the same
// criteria; the predicate set in predicate.go defines those semantics.
type CatalogRepository interface {
	// ListModels returns one page of models matching the criteria, fully
	// loaded (brand, category, images, variants with prices, specs), plus
	// the total match count ignoring pagination.
	ListModels(criteria ListCriteria) ([]models.Model, int64, error)

	// GetModelBySlug returns the model with its relations and approved
	// reviews, or (nil, nil) when the slug does not resolve. A non-empty
	// cityID narrows variant prices to that city.
	GetModelBySlug(slug, cityID string) (*models.Model, error)

	// SimilarModels returns up to limit models sharing the category,
	// excluding the model itself.
	SimilarModels(categoryID *string, excludeID string, limit int) ([]models.Model, error)

	// RatingForModel aggregates approved reviews for one model.
	RatingForModel(modelID string) (RatingSummary, error)

	// RatingsByModelIDs aggregates approved reviews grouped by model id.
	// Models without approved reviews are absent from the result map.
	RatingsByModelIDs(modelIDs []string) (map[string]RatingSummary, error)

	// ListBrands returns brands ordered by name with model counts.
	ListBrands(limit, offset int) ([]BrandWithCount, int64, error)

	// ListCategories returns categories ordered by name with model counts.
	ListCategories(limit, offset int) ([]CategoryWithCount, int64, error)
}
