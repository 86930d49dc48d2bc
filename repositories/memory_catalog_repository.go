package repositories

import (
	"sort"
	"strings"
	"sync"

	"motomarket-api/models"
)

// MemoryCatalogRepository is the flat, denormalized backend of the catalog
// port. Rows carry their brand/category/price data inline, so filtering
// needs no joins. It backs handler tests and development seeding, replacing
// the hosted-service path the site used to duplicate endpoint logic for.
type MemoryCatalogRepository struct {
	mu         sync.RWMutex
	brands     []models.Brand
	categories []models.Category
	models     []models.Model
	reviews    []models.Review
}

func NewMemoryCatalogRepository() *MemoryCatalogRepository {
	return &MemoryCatalogRepository{}
}

// AddBrand stores a brand row.
func (r *MemoryCatalogRepository) AddBrand(brand models.Brand) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.brands = append(r.brands, brand)
}

// AddCategory stores a category row.
func (r *MemoryCatalogRepository) AddCategory(category models.Category) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.categories = append(r.categories, category)
}

// AddModel stores a model row. The model must arrive denormalized: brand,
// category, images, variants and specs populated inline.
func (r *MemoryCatalogRepository) AddModel(model models.Model) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.models = append(r.models, model)
}

// AddReview stores a review row.
func (r *MemoryCatalogRepository) AddReview(review models.Review) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reviews = append(r.reviews, review)
}

func (r *MemoryCatalogRepository) ListModels(criteria ListCriteria) ([]models.Model, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	set := BuildPredicates(criteria)

	var matched []models.Model
	for i := range r.models {
		if set.Matches(&r.models[i]) {
			matched = append(matched, r.models[i])
		}
	}

	sortModels(matched, criteria.SortBy, criteria.SortOrder)

	total := int64(len(matched))

	skip := criteria.Skip()
	if skip >= len(matched) {
		return []models.Model{}, total, nil
	}
	matched = matched[skip:]
	if criteria.Limit > 0 && len(matched) > criteria.Limit {
		matched = matched[:criteria.Limit]
	}

	return matched, total, nil
}

func sortModels(list []models.Model, key SortKey, order SortOrder) {
	desc := order == OrderDesc

	sort.SliceStable(list, func(i, j int) bool {
		a, b := &list[i], &list[j]

		switch key {
		case SortName:
			if desc {
				return a.Name > b.Name
			}
			return a.Name < b.Name
		case SortLatest:
			return a.CreatedAt.After(b.CreatedAt)
		case SortPopularity:
			return a.PopularityScore > b.PopularityScore
		default: // SortPrice; models with no price sort last
			pa, pb := a.MinPrice(), b.MinPrice()
			if pa == nil {
				return false
			}
			if pb == nil {
				return true
			}
			if desc {
				return *pa > *pb
			}
			return *pa < *pb
		}
	})
}

func (r *MemoryCatalogRepository) GetModelBySlug(slug, cityID string) (*models.Model, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.models {
		if r.models[i].Slug != slug {
			continue
		}

		model := r.models[i]

		if cityID != "" {
			model.Variants = filterPricesByCity(model.Variants, cityID)
		}

		// Attach up to five approved reviews, newest first
		var approved []models.Review
		for _, review := range r.reviews {
			if review.ModelID == model.ID && review.IsApproved {
				approved = append(approved, review)
			}
		}
		sort.SliceStable(approved, func(i, j int) bool {
			return approved[i].CreatedAt.After(approved[j].CreatedAt)
		})
		if len(approved) > 5 {
			approved = approved[:5]
		}
		model.Reviews = approved

		return &model, nil
	}

	return nil, nil
}

func filterPricesByCity(variants []models.Variant, cityID string) []models.Variant {
	filtered := make([]models.Variant, len(variants))
	copy(filtered, variants)
	for i := range filtered {
		var prices []models.Price
		for _, price := range filtered[i].Prices {
			if price.CityID != nil && *price.CityID == cityID {
				prices = append(prices, price)
			}
		}
		filtered[i].Prices = prices
	}
	return filtered
}

func (r *MemoryCatalogRepository) SimilarModels(categoryID *string, excludeID string, limit int) ([]models.Model, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if categoryID == nil {
		return []models.Model{}, nil
	}

	var similar []models.Model
	for i := range r.models {
		m := &r.models[i]
		if m.ID == excludeID || m.CategoryID == nil || *m.CategoryID != *categoryID {
			continue
		}
		similar = append(similar, *m)
		if len(similar) == limit {
			break
		}
	}

	return similar, nil
}

func (r *MemoryCatalogRepository) RatingForModel(modelID string) (RatingSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.aggregateRating(modelID), nil
}

func (r *MemoryCatalogRepository) aggregateRating(modelID string) RatingSummary {
	var sum, count int64
	for _, review := range r.reviews {
		if review.ModelID == modelID && review.IsApproved {
			sum += int64(review.Rating)
			count++
		}
	}

	if count == 0 {
		return RatingSummary{Average: nil, Count: 0}
	}

	avg := float64(sum) / float64(count)
	return RatingSummary{Average: &avg, Count: count}
}

func (r *MemoryCatalogRepository) RatingsByModelIDs(modelIDs []string) (map[string]RatingSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]RatingSummary)
	for _, id := range modelIDs {
		summary := r.aggregateRating(id)
		if summary.Count > 0 {
			result[id] = summary
		}
	}

	return result, nil
}

func (r *MemoryCatalogRepository) ListBrands(limit, offset int) ([]BrandWithCount, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	brands := make([]models.Brand, len(r.brands))
	copy(brands, r.brands)
	sort.SliceStable(brands, func(i, j int) bool {
		return strings.ToLower(brands[i].Name) < strings.ToLower(brands[j].Name)
	})

	total := int64(len(brands))
	brands = slicePage(brands, offset, limit)

	results := make([]BrandWithCount, 0, len(brands))
	for _, brand := range brands {
		var count int64
		for i := range r.models {
			if r.models[i].BrandID == brand.ID {
				count++
			}
		}
		results = append(results, BrandWithCount{Brand: brand, ModelCount: count})
	}

	return results, total, nil
}

func (r *MemoryCatalogRepository) ListCategories(limit, offset int) ([]CategoryWithCount, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	categories := make([]models.Category, len(r.categories))
	copy(categories, r.categories)
	sort.SliceStable(categories, func(i, j int) bool {
		return strings.ToLower(categories[i].Name) < strings.ToLower(categories[j].Name)
	})

	total := int64(len(categories))
	categories = slicePage(categories, offset, limit)

	results := make([]CategoryWithCount, 0, len(categories))
	for _, category := range categories {
		var count int64
		for i := range r.models {
			if r.models[i].CategoryID != nil && *r.models[i].CategoryID == category.ID {
				count++
			}
		}
		results = append(results, CategoryWithCount{Category: category, ModelCount: count})
	}

	return results, total, nil
}

func slicePage[T any](list []T, offset, limit int) []T {
	if offset >= len(list) {
		return []T{}
	}
	list = list[offset:]
	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}
	return list
}
