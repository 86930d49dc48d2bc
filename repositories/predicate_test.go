package repositories

import (
	"strings"
	"testing"

	"motomarket-api/models"
)

func testModel(name, brandName, brandSlug string, prices ...float64) models.Model {
	m := models.Model{
		ID:      "model-" + strings.ToLower(name),
		Name:    name,
		Slug:    strings.ToLower(brandSlug + "-" + name),
		BrandID: "brand-" + brandSlug,
		Brand: models.Brand{
			ID:   "brand-" + brandSlug,
			Name: brandName,
			Slug: brandSlug,
		},
	}

	if len(prices) > 0 {
		variant := models.Variant{ID: m.ID + "-std", ModelID: m.ID, Name: "Standard"}
		for i, p := range prices {
			variant.Prices = append(variant.Prices, models.Price{
				ID:         variant.ID + "-p" + string(rune('0'+i)),
				VariantID:  variant.ID,
				ExShowroom: p,
			})
		}
		m.Variants = []models.Variant{variant}
	}

	return m
}

func TestBuildPredicatesOmitsUnsetBounds(t *testing.T) {
	set := BuildPredicates(ListCriteria{})
	if len(set.And) != 0 || len(set.Or) != 0 {
		t.Fatalf("empty criteria should build an empty set, got %+v", set)
	}

	min := 100000.0
	set = BuildPredicates(ListCriteria{MinPrice: &min})
	if len(set.And) != 1 {
		t.Fatalf("expected exactly one predicate for a single bound, got %d", len(set.And))
	}
	p := set.And[0]
	if p.Field != FieldPrice || p.Op != OpGte {
		t.Fatalf("expected price gte predicate, got %+v", p)
	}
}

func TestBuildPredicatesCombinesWithAnd(t *testing.T) {
	set := BuildPredicates(ListCriteria{BrandSlug: "honda", CategorySlug: "cruiser"})
	if len(set.And) != 2 {
		t.Fatalf("expected two ANDed predicates, got %d", len(set.And))
	}

	honda := testModel("CB350", "Honda", "honda", 199000)
	cruiser := "cat-cruiser"
	honda.Category = &models.Category{ID: cruiser, Name: "Cruiser", Slug: "cruiser"}
	honda.CategoryID = &cruiser

	if !set.Matches(&honda) {
		t.Fatalf("model matching both filters must match the set")
	}

	// Wrong category: both filters must hold, not just one
	sport := "cat-sport"
	honda.Category = &models.Category{ID: sport, Name: "Sport", Slug: "sport"}
	honda.CategoryID = &sport
	if set.Matches(&honda) {
		t.Fatalf("brand and category filters must be ANDed")
	}
}

func TestBuildPredicatesSearchOrGroup(t *testing.T) {
	set := BuildPredicates(ListCriteria{Search: "classic"})
	if len(set.Or) != 3 {
		t.Fatalf("expected search to expand into 3 OR predicates, got %d", len(set.Or))
	}

	byName := testModel("Classic 350", "Royal Enfield", "royal-enfield", 193000)
	if !set.Matches(&byName) {
		t.Fatalf("search should match on model name, case-insensitive")
	}

	byBrand := testModel("Meteor", "Classic Motors", "classic-motors", 150000)
	if !set.Matches(&byBrand) {
		t.Fatalf("search should match on brand name")
	}

	noMatch := testModel("MT-15", "Yamaha", "yamaha", 168000)
	if set.Matches(&noMatch) {
		t.Fatalf("search should not match unrelated models")
	}
}

func TestPricePredicateMatchesAnyVariantPrice(t *testing.T) {
	min := 150000.0
	set := BuildPredicates(ListCriteria{MinPrice: &min})

	cheap := testModel("Activa", "Honda", "honda", 76000)
	if set.Matches(&cheap) {
		t.Fatalf("no price above the floor should mean no match")
	}

	mixed := testModel("CB350", "Honda", "honda", 140000, 160000)
	if !set.Matches(&mixed) {
		t.Fatalf("any variant price satisfying the bound should match")
	}

	unpriced := testModel("Concept", "Honda", "honda")
	if set.Matches(&unpriced) {
		t.Fatalf("a model with no prices cannot satisfy a price bound")
	}
}

func TestNumericPredicateExcludesMissingValues(t *testing.T) {
	min := 150.0
	set := BuildPredicates(ListCriteria{MinEngineCapacity: &min})

	m := testModel("iQube", "TVS", "tvs", 117000)
	if set.Matches(&m) {
		t.Fatalf("model without engine capacity should not match a capacity bound")
	}

	capacity := 155.0
	m.EngineCapacity = &capacity
	if !set.Matches(&m) {
		t.Fatalf("155cc should satisfy minEngineCapacity=150")
	}
}

func TestPredicateSQLFragments(t *testing.T) {
	cond, args := predicateSQL(Predicate{FieldBrandSlug, OpEquals, "honda"})
	if cond != "brands.slug = ?" || len(args) != 1 || args[0] != "honda" {
		t.Fatalf("unexpected brand slug SQL: %q %v", cond, args)
	}

	cond, args = predicateSQL(Predicate{FieldPrice, OpGte, 100000.0})
	if !strings.Contains(cond, "EXISTS") || !strings.Contains(cond, "prices.ex_showroom >= ?") {
		t.Fatalf("price gte should translate to an EXISTS subquery: %q", cond)
	}
	if len(args) != 1 {
		t.Fatalf("expected one arg, got %v", args)
	}

	cond, args = predicateSQL(Predicate{FieldName, OpContains, "Classic"})
	if cond != "LOWER(models.name) LIKE ?" || args[0] != "%classic%" {
		t.Fatalf("contains should lower-case into a LIKE pattern: %q %v", cond, args)
	}
}

func TestOrderSQL(t *testing.T) {
	if got := orderSQL(SortName, OrderDesc); got != "models.name DESC" {
		t.Fatalf("unexpected name ordering: %q", got)
	}
	if got := orderSQL(SortLatest, OrderAsc); got != "models.created_at DESC" {
		t.Fatalf("latest ignores requested direction: %q", got)
	}
	if got := orderSQL(SortPrice, OrderAsc); !strings.Contains(got, "MIN(prices.ex_showroom)") {
		t.Fatalf("price ordering should sort by minimum variant price: %q", got)
	}
}
