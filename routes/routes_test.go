package routes

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"motomarket-api/models"
	"motomarket-api/repositories"
	"motomarket-api/services"
)

func newCatalogServer(repo *repositories.MemoryCatalogRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterCatalogRoutes(r, repo, services.NewCatalogService(repo))
	return r
}

// seedTwoBrands stores 15 Hondas priced 100000 upward and 10 Yamahas priced
// 90000 upward, each with one priced variant.
func seedTwoBrands(repo *repositories.MemoryCatalogRepository) {
	honda := models.Brand{ID: "b-honda", Name: "Honda", Slug: "honda"}
	yamaha := models.Brand{ID: "b-yamaha", Name: "Yamaha", Slug: "yamaha"}
	repo.AddBrand(honda)
	repo.AddBrand(yamaha)

	cruiser := models.Category{ID: "c-cruiser", Name: "Cruiser", Slug: "cruiser"}
	repo.AddCategory(cruiser)

	addModel := func(i int, brand models.Brand, base float64) {
		id := fmt.Sprintf("%s-%02d", brand.Slug, i)
		categoryID := cruiser.ID
		repo.AddModel(models.Model{
			ID:         id,
			Name:       fmt.Sprintf("%s Bike %02d", brand.Name, i),
			Slug:       id,
			BrandID:    brand.ID,
			CategoryID: &categoryID,
			Brand:      brand,
			Category:   &cruiser,
			Variants: []models.Variant{
				{
					ID:      id + "-v1",
					ModelID: id,
					Name:    "Standard",
					Prices: []models.Price{
						{ID: id + "-p1", VariantID: id + "-v1", ExShowroom: base + float64(i)*1000},
					},
				},
			},
		})
	}

	for i := 0; i < 15; i++ {
		addModel(i, honda, 100000)
	}
	for i := 0; i < 10; i++ {
		addModel(i, yamaha, 90000)
	}
}

func doGet(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v\n%s", err, w.Body.String())
	}
	return body
}

func TestListBikesFilterAndPaginate(t *testing.T) {
	repo := repositories.NewMemoryCatalogRepository()
	seedTwoBrands(repo)
	r := newCatalogServer(repo)

	w := doGet(t, r, "/api/v1/bikes?brand=honda&sortBy=price&sortOrder=asc")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	if body["success"] != true {
		t.Fatalf("expected success envelope, got %v", body)
	}

	data := body["data"].(map[string]interface{})
	pagination := data["pagination"].(map[string]interface{})
	if pagination["total"].(float64) != 15 {
		t.Fatalf("expected 15 matching Hondas, got %v", pagination["total"])
	}
	if pagination["totalPages"].(float64) != 2 {
		t.Fatalf("expected 2 pages of 12, got %v", pagination["totalPages"])
	}
	if pagination["hasNextPage"] != true || pagination["hasPrevPage"] != false {
		t.Fatalf("page 1 flags wrong: %v", pagination)
	}

	items := data["models"].([]interface{})
	if len(items) != 12 {
		t.Fatalf("expected 12 items on page 1, got %d", len(items))
	}

	var prev float64
	for i, raw := range items {
		item := raw.(map[string]interface{})
		brand := item["brand"].(map[string]interface{})
		if brand["slug"] != "honda" {
			t.Fatalf("non-Honda row in filtered listing: %v", item)
		}
		price := item["price"].(float64)
		if i > 0 && price < prev {
			t.Fatalf("prices not ascending: %v after %v", price, prev)
		}
		prev = price
	}
}

func TestListBikesSecondPage(t *testing.T) {
	repo := repositories.NewMemoryCatalogRepository()
	seedTwoBrands(repo)
	r := newCatalogServer(repo)

	w := doGet(t, r, "/api/v1/bikes?brand=honda&page=2")
	body := decodeBody(t, w)

	data := body["data"].(map[string]interface{})
	items := data["models"].([]interface{})
	if len(items) != 3 {
		t.Fatalf("expected 3 leftover items on page 2, got %d", len(items))
	}

	pagination := data["pagination"].(map[string]interface{})
	if pagination["hasNextPage"] != false || pagination["hasPrevPage"] != true {
		t.Fatalf("page 2 flags wrong: %v", pagination)
	}
}

func TestGetModelNotFound(t *testing.T) {
	repo := repositories.NewMemoryCatalogRepository()
	seedTwoBrands(repo)
	r := newCatalogServer(repo)

	w := doGet(t, r, "/api/v1/models/unknown-slug-xyz")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	body := decodeBody(t, w)
	if body["success"] != false {
		t.Fatalf("error envelope must carry success=false: %v", body)
	}
	if body["error"] != "Model not found" {
		t.Fatalf("unexpected error message: %v", body["error"])
	}
	if _, ok := body["data"]; ok {
		t.Fatalf("error envelope must not carry data: %v", body)
	}
}

func TestGetModelDetailZeroReviews(t *testing.T) {
	repo := repositories.NewMemoryCatalogRepository()
	seedTwoBrands(repo)
	r := newCatalogServer(repo)

	w := doGet(t, r, "/api/v1/models/honda-00")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	data := body["data"].(map[string]interface{})
	model := data["model"].(map[string]interface{})

	rating := model["rating"].(map[string]interface{})
	if rating["average"] != nil {
		t.Fatalf("zero approved reviews must yield null average, got %v", rating["average"])
	}
	if rating["count"].(float64) != 0 {
		t.Fatalf("expected count 0, got %v", rating["count"])
	}

	similar := data["similarModels"].([]interface{})
	if len(similar) != 4 {
		t.Fatalf("expected 4 similar models, got %d", len(similar))
	}
	for _, raw := range similar {
		if raw.(map[string]interface{})["slug"] == "honda-00" {
			t.Fatalf("similar models must exclude the model itself")
		}
	}
}

func TestCompareModelsValidation(t *testing.T) {
	repo := repositories.NewMemoryCatalogRepository()
	seedTwoBrands(repo)
	r := newCatalogServer(repo)

	cases := []struct {
		path  string
		error string
	}{
		{"/api/v1/bikes/compare", "models parameter is required"},
		{"/api/v1/bikes/compare?models=honda-00", "At least 2 models are required for comparison"},
		{"/api/v1/bikes/compare?models=honda-00,honda-01,honda-02,honda-03,honda-04", "At most 4 models can be compared"},
	}

	for _, tc := range cases {
		w := doGet(t, r, tc.path)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", tc.path, w.Code)
		}
		body := decodeBody(t, w)
		if body["error"] != tc.error {
			t.Fatalf("%s: expected %q, got %v", tc.path, tc.error, body["error"])
		}
	}
}

func TestCompareModelsSuccess(t *testing.T) {
	repo := repositories.NewMemoryCatalogRepository()
	seedTwoBrands(repo)
	r := newCatalogServer(repo)

	w := doGet(t, r, "/api/v1/bikes/compare?models=honda-00,yamaha-00")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	data := body["data"].(map[string]interface{})
	items := data["models"].([]interface{})
	if len(items) != 2 {
		t.Fatalf("expected 2 comparison entries, got %d", len(items))
	}
}

func TestListBrandsWithCounts(t *testing.T) {
	repo := repositories.NewMemoryCatalogRepository()
	seedTwoBrands(repo)
	r := newCatalogServer(repo)

	w := doGet(t, r, "/api/v1/brands")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	body := decodeBody(t, w)
	data := body["data"].(map[string]interface{})
	brands := data["brands"].([]interface{})
	if len(brands) != 2 {
		t.Fatalf("expected 2 brands, got %d", len(brands))
	}

	first := brands[0].(map[string]interface{})
	second := brands[1].(map[string]interface{})
	if first["name"] != "Honda" || second["name"] != "Yamaha" {
		t.Fatalf("brands not ordered by name: %v, %v", first["name"], second["name"])
	}
	if first["count"].(float64) != 15 || second["count"].(float64) != 10 {
		t.Fatalf("model counts wrong: Honda=%v Yamaha=%v", first["count"], second["count"])
	}
}

func TestListCategoriesWithCounts(t *testing.T) {
	repo := repositories.NewMemoryCatalogRepository()
	seedTwoBrands(repo)
	r := newCatalogServer(repo)

	w := doGet(t, r, "/api/v1/categories")
	body := decodeBody(t, w)

	data := body["data"].(map[string]interface{})
	categories := data["categories"].([]interface{})
	if len(categories) != 1 {
		t.Fatalf("expected 1 category, got %d", len(categories))
	}
	if categories[0].(map[string]interface{})["count"].(float64) != 25 {
		t.Fatalf("category count should cover all models: %v", categories[0])
	}
}

func TestListModelsSearchAndFlags(t *testing.T) {
	repo := repositories.NewMemoryCatalogRepository()
	seedTwoBrands(repo)
	r := newCatalogServer(repo)

	w := doGet(t, r, "/api/v1/models?search=yamaha")
	body := decodeBody(t, w)

	data := body["data"].(map[string]interface{})
	pagination := data["pagination"].(map[string]interface{})
	if pagination["totalCount"].(float64) != 10 {
		t.Fatalf("brand-name search should match all 10 Yamahas, got %v", pagination["totalCount"])
	}
	if pagination["hasMore"] != false {
		t.Fatalf("10 results under the default limit, hasMore must be false")
	}
}

func TestPingEndpoint(t *testing.T) {
	r := newCatalogServer(repositories.NewMemoryCatalogRepository())

	w := doGet(t, r, "/ping")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
