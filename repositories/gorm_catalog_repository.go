package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"motomarket-api/models"
)

// GormCatalogRepository is the relational backend of the catalog port.
type GormCatalogRepository struct {
	db *gorm.DB
}

func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

func (r *GormCatalogRepository) ListModels(criteria ListCriteria) ([]models.Model, int64, error) {
	set := BuildPredicates(criteria)

	base := r.applyPredicates(r.db.Model(&models.Model{}), set)

	// Total count ignores pagination
	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var results []models.Model
	query := r.applyPredicates(r.db.Model(&models.Model{}), set).
		Preload("Brand").
		Preload("Category").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Preload("Variants.Prices", func(db *gorm.DB) *gorm.DB {
			return db.Order("ex_showroom ASC")
		}).
		Preload("Variants").
		Preload("Specifications").
		Order(orderSQL(criteria.SortBy, criteria.SortOrder)).
		Offset(criteria.Skip()).
		Limit(criteria.Limit)

	if err := query.Find(&results).Error; err != nil {
		return nil, 0, err
	}

	return results, total, nil
}

func (r *GormCatalogRepository) applyPredicates(tx *gorm.DB, set PredicateSet) *gorm.DB {
	if set.NeedsBrandJoin() {
		tx = tx.Joins("JOIN brands ON brands.id = models.brand_id")
	}

	for _, p := range set.And {
		cond, args := predicateSQL(p)
		tx = tx.Where(cond, args...)
	}

	if len(set.Or) > 0 {
		conds := make([]string, 0, len(set.Or))
		var args []interface{}
		for _, p := range set.Or {
			cond, condArgs := predicateSQL(p)
			conds = append(conds, cond)
			args = append(args, condArgs...)
		}
		tx = tx.Where("("+strings.Join(conds, " OR ")+")", args...)
	}

	return tx
}

func (r *GormCatalogRepository) GetModelBySlug(slug, cityID string) (*models.Model, error) {
	var model models.Model

	query := r.db.
		Preload("Brand").
		Preload("Category").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Preload("Variants").
		Preload("Specifications").
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_approved = ?", true).Order("created_at DESC").Limit(5)
		}).
		Preload("Reviews.User")

	if cityID != "" {
		query = query.Preload("Variants.Prices", func(db *gorm.DB) *gorm.DB {
			return db.Where("city_id = ?", cityID).Order("ex_showroom ASC")
		})
	} else {
		query = query.Preload("Variants.Prices", func(db *gorm.DB) *gorm.DB {
			return db.Order("ex_showroom ASC")
		})
	}

	if err := query.Where("slug = ?", slug).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &model, nil
}

func (r *GormCatalogRepository) SimilarModels(categoryID *string, excludeID string, limit int) ([]models.Model, error) {
	if categoryID == nil {
		return []models.Model{}, nil
	}

	var results []models.Model
	err := r.db.
		Preload("Brand").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Preload("Variants.Prices", func(db *gorm.DB) *gorm.DB {
			return db.Order("ex_showroom ASC")
		}).
		Preload("Variants").
		Where("category_id = ? AND id != ?", *categoryID, excludeID).
		Limit(limit).
		Find(&results).Error

	return results, err
}

type ratingRow struct {
	ModelID string
	Average float64
	Count   int64
}

func (r *GormCatalogRepository) RatingForModel(modelID string) (RatingSummary, error) {
	var row ratingRow
	err := r.db.Model(&models.Review{}).
		Select("model_id, AVG(rating) as average, COUNT(*) as count").
		Where("model_id = ? AND is_approved = ?", modelID, true).
		Group("model_id").
		Scan(&row).Error
	if err != nil {
		return RatingSummary{}, err
	}

	if row.Count == 0 {
		return RatingSummary{Average: nil, Count: 0}, nil
	}

	avg := row.Average
	return RatingSummary{Average: &avg, Count: row.Count}, nil
}

func (r *GormCatalogRepository) RatingsByModelIDs(modelIDs []string) (map[string]RatingSummary, error) {
	result := make(map[string]RatingSummary)
	if len(modelIDs) == 0 {
		return result, nil
	}

	var rows []ratingRow
	err := r.db.Model(&models.Review{}).
		Select("model_id, AVG(rating) as average, COUNT(*) as count").
		Where("model_id IN ? AND is_approved = ?", modelIDs, true).
		Group("model_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		avg := row.Average
		result[row.ModelID] = RatingSummary{Average: &avg, Count: row.Count}
	}

	return result, nil
}

func (r *GormCatalogRepository) ListBrands(limit, offset int) ([]BrandWithCount, int64, error) {
	var total int64
	if err := r.db.Model(&models.Brand{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var brands []models.Brand
	if err := r.db.Order("name ASC").Offset(offset).Limit(limit).Find(&brands).Error; err != nil {
		return nil, 0, err
	}

	results := make([]BrandWithCount, 0, len(brands))
	for _, brand := range brands {
		var count int64
		if err := r.db.Model(&models.Model{}).Where("brand_id = ?", brand.ID).Count(&count).Error; err != nil {
			return nil, 0, err
		}
		results = append(results, BrandWithCount{Brand: brand, ModelCount: count})
	}

	return results, total, nil
}

func (r *GormCatalogRepository) ListCategories(limit, offset int) ([]CategoryWithCount, int64, error) {
	var total int64
	if err := r.db.Model(&models.Category{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var categories []models.Category
	if err := r.db.Order("name ASC").Offset(offset).Limit(limit).Find(&categories).Error; err != nil {
		return nil, 0, err
	}

	results := make([]CategoryWithCount, 0, len(categories))
	for _, category := range categories {
		var count int64
		if err := r.db.Model(&models.Model{}).Where("category_id = ?", category.ID).Count(&count).Error; err != nil {
			return nil, 0, err
		}
		results = append(results, CategoryWithCount{Category: category, ModelCount: count})
	}

	return results, total, nil
}
