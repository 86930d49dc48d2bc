package services

import (
	"strings"

	"motomarket-api/models"
	"motomarket-api/repositories"
	"motomarket-api/utils"
)

// CatalogService sits between the catalog controllers and the storage port:
// it runs the parsed criteria through the port and flattens the relational
// results into the denormalized shapes the client renders.
type CatalogService struct {
	repo repositories.CatalogRepository
}

func NewCatalogService(repo repositories.CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

type BrandRef struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Slug string  `json:"slug"`
	Logo *string `json:"logo"`
}

type CategoryRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// ModelSummary is the denormalized list-item shape: one representative
// image, one representative price, flat specs map keyed by lower-cased
// spec names.
type ModelSummary struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Slug     string            `json:"slug"`
	Brand    BrandRef          `json:"brand"`
	Category *CategoryRef      `json:"category"`
	Image    *string           `json:"image"`
	Price    *float64          `json:"price"`
	Specs    map[string]string `json:"specs"`
}

// CatalogItem is a ModelSummary extended with the catalog listing's flags
// and merged average rating.
type CatalogItem struct {
	ModelSummary
	Description string   `json:"description"`
	IsElectric  bool     `json:"is_electric"`
	IsUpcoming  bool     `json:"is_upcoming"`
	IsFeatured  bool     `json:"is_featured"`
	AvgRating   *float64 `json:"avgRating"`
}

// SimilarModel is the reduced shape rendered under a model detail page.
type SimilarModel struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Slug      string   `json:"slug"`
	BrandName string   `json:"brandName"`
	Image     *string  `json:"image"`
	Price     *float64 `json:"price"`
}

// ModelDetail is the full model with its rating aggregate merged on.
type ModelDetail struct {
	models.Model
	Rating repositories.RatingSummary `json:"rating"`
}

type BikeListPage struct {
	Models     []ModelSummary   `json:"models"`
	Pagination utils.Pagination `json:"pagination"`
}

type CatalogPage struct {
	Models     []CatalogItem          `json:"models"`
	Pagination utils.OffsetPagination `json:"pagination"`
}

// ListBikes serves the primary filter/sort/paginate listing.
func (s *CatalogService) ListBikes(criteria repositories.ListCriteria) (*BikeListPage, error) {
	results, total, err := s.repo.ListModels(criteria)
	if err != nil {
		return nil, err
	}

	summaries := make([]ModelSummary, 0, len(results))
	for i := range results {
		summaries = append(summaries, ShapeModelSummary(&results[i]))
	}

	return &BikeListPage{
		Models:     summaries,
		Pagination: utils.NewPagination(total, criteria.Page, criteria.Limit),
	}, nil
}

// ListCatalog serves the secondary listing with flags and average ratings
// merged by model id. A missing rating degrades to nil, never an error.
func (s *CatalogService) ListCatalog(criteria repositories.ListCriteria) (*CatalogPage, error) {
	results, total, err := s.repo.ListModels(criteria)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(results))
	for i := range results {
		ids = append(ids, results[i].ID)
	}

	ratings, err := s.repo.RatingsByModelIDs(ids)
	if err != nil {
		ratings = map[string]repositories.RatingSummary{}
	}

	items := make([]CatalogItem, 0, len(results))
	for i := range results {
		m := &results[i]
		item := CatalogItem{
			ModelSummary: ShapeModelSummary(m),
			Description:  m.Description,
			IsElectric:   m.IsElectric,
			IsUpcoming:   m.IsUpcoming,
			IsFeatured:   m.IsFeatured,
		}
		if summary, ok := ratings[m.ID]; ok {
			item.AvgRating = summary.Average
		}
		items = append(items, item)
	}

	return &CatalogPage{
		Models:     items,
		Pagination: utils.NewOffsetPagination(total, criteria.Offset, criteria.Limit, len(items)),
	}, nil
}

// GetModelDetail resolves a slug to the full model, its rating aggregate
// and up to four similar models. Returns (nil, nil, nil) when the slug does
// not resolve.
func (s *CatalogService) GetModelDetail(slug, cityID string) (*ModelDetail, []SimilarModel, error) {
	model, err := s.repo.GetModelBySlug(slug, cityID)
	if err != nil {
		return nil, nil, err
	}
	if model == nil {
		return nil, nil, nil
	}

	rating, err := s.repo.RatingForModel(model.ID)
	if err != nil {
		// Rating lookup failures degrade to an empty aggregate
		rating = repositories.RatingSummary{}
	}

	similar, err := s.repo.SimilarModels(model.CategoryID, model.ID, 4)
	if err != nil {
		return nil, nil, err
	}

	similarShapes := make([]SimilarModel, 0, len(similar))
	for i := range similar {
		m := &similar[i]
		similarShapes = append(similarShapes, SimilarModel{
			ID:        m.ID,
			Name:      m.Name,
			Slug:      m.Slug,
			BrandName: m.Brand.Name,
			Image:     m.FirstImageURL(),
			Price:     m.MinPrice(),
		})
	}

	return &ModelDetail{Model: *model, Rating: rating}, similarShapes, nil
}

// CompareModels resolves up to four slugs into full detail shapes for the
// comparison page. Unknown slugs are skipped.
func (s *CatalogService) CompareModels(slugs []string) ([]ModelDetail, error) {
	details := make([]ModelDetail, 0, len(slugs))

	for _, slug := range slugs {
		model, err := s.repo.GetModelBySlug(slug, "")
		if err != nil {
			return nil, err
		}
		if model == nil {
			continue
		}

		rating, err := s.repo.RatingForModel(model.ID)
		if err != nil {
			rating = repositories.RatingSummary{}
		}

		details = append(details, ModelDetail{Model: *model, Rating: rating})
	}

	return details, nil
}

// ShapeModelSummary flattens one result row: first image by sort order or
// null, first variant's lowest price or null, spec names lower-cased into
// a flat map.
func ShapeModelSummary(m *models.Model) ModelSummary {
	summary := ModelSummary{
		ID:   m.ID,
		Name: m.Name,
		Slug: m.Slug,
		Brand: BrandRef{
			ID:   m.Brand.ID,
			Name: m.Brand.Name,
			Slug: m.Brand.Slug,
			Logo: m.Brand.LogoURL,
		},
		Image: m.FirstImageURL(),
		Price: m.MinPrice(),
		Specs: make(map[string]string, len(m.Specifications)),
	}

	if m.Category != nil {
		summary.Category = &CategoryRef{
			ID:   m.Category.ID,
			Name: m.Category.Name,
			Slug: m.Category.Slug,
		}
	}

	for _, spec := range m.Specifications {
		summary.Specs[strings.ToLower(spec.Name)] = spec.Value
	}

	return summary
}
