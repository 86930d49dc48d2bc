package repositories

import (
	"net/url"
	"testing"
)

func TestParseListCriteriaDefaults(t *testing.T) {
	c := ParseListCriteria(url.Values{})

	if c.Page != 1 {
		t.Fatalf("expected default page 1, got %d", c.Page)
	}
	if c.Limit != DefaultPageSize {
		t.Fatalf("expected default limit %d, got %d", DefaultPageSize, c.Limit)
	}
	if c.SortBy != SortPrice {
		t.Fatalf("expected default sort price, got %s", c.SortBy)
	}
	if c.SortOrder != OrderAsc {
		t.Fatalf("expected default order asc, got %s", c.SortOrder)
	}
	if c.MinPrice != nil || c.MaxPrice != nil || c.MinMileage != nil {
		t.Fatalf("expected unset numeric bounds by default")
	}
}

func TestParseListCriteriaMalformedNumericsIgnored(t *testing.T) {
	values := url.Values{}
	values.Set("minPrice", "abc")
	values.Set("maxPrice", "12x")
	values.Set("page", "bogus")
	values.Set("limit", "-3")

	c := ParseListCriteria(values)

	if c.MinPrice != nil {
		t.Fatalf("malformed minPrice should be unset, got %v", *c.MinPrice)
	}
	if c.MaxPrice != nil {
		t.Fatalf("malformed maxPrice should be unset, got %v", *c.MaxPrice)
	}
	if c.Page != 1 {
		t.Fatalf("malformed page should default to 1, got %d", c.Page)
	}
	if c.Limit != DefaultPageSize {
		t.Fatalf("malformed limit should default to %d, got %d", DefaultPageSize, c.Limit)
	}
}

func TestParseListCriteriaLimitClamped(t *testing.T) {
	values := url.Values{}
	values.Set("limit", "500")

	c := ParseListCriteria(values)
	if c.Limit != MaxPageSize {
		t.Fatalf("expected limit clamped to %d, got %d", MaxPageSize, c.Limit)
	}
}

func TestParseListCriteriaUnknownSortFallsBack(t *testing.T) {
	values := url.Values{}
	values.Set("sortBy", "horsepower")
	values.Set("sortOrder", "sideways")

	c := ParseListCriteria(values)
	if c.SortBy != SortPrice {
		t.Fatalf("unknown sort key should fall back to price, got %s", c.SortBy)
	}
	if c.SortOrder != OrderAsc {
		t.Fatalf("unknown sort order should fall back to asc, got %s", c.SortOrder)
	}
}

func TestParseCatalogCriteriaFlagPresence(t *testing.T) {
	c := ParseCatalogCriteria(url.Values{})
	if c.IsElectric != nil || c.IsUpcoming != nil || c.IsFeatured != nil {
		t.Fatalf("absent flags must stay unset, absence is not false")
	}

	values := url.Values{}
	values.Set("isElectric", "false")
	values.Set("isFeatured", "true")

	c = ParseCatalogCriteria(values)
	if c.IsElectric == nil || *c.IsElectric {
		t.Fatalf("isElectric=false should parse to explicit false")
	}
	if c.IsFeatured == nil || !*c.IsFeatured {
		t.Fatalf("isFeatured=true should parse to explicit true")
	}
	if c.IsUpcoming != nil {
		t.Fatalf("absent isUpcoming should stay unset")
	}
}

func TestCriteriaRoundTrip(t *testing.T) {
	minPrice := 50000.0
	maxEngine := 400.0

	original := ListCriteria{
		BrandSlug:         "honda",
		CategorySlug:      "cruiser",
		Search:            "classic",
		MinPrice:          &minPrice,
		MaxEngineCapacity: &maxEngine,
		SortBy:            SortName,
		SortOrder:         OrderDesc,
		Page:              3,
		Limit:             24,
	}

	parsed := ParseListCriteria(original.Values())

	if parsed.BrandSlug != original.BrandSlug || parsed.CategorySlug != original.CategorySlug {
		t.Fatalf("brand/category did not round-trip: %+v", parsed)
	}
	if parsed.Search != original.Search {
		t.Fatalf("search did not round-trip: %q", parsed.Search)
	}
	if parsed.MinPrice == nil || *parsed.MinPrice != minPrice {
		t.Fatalf("minPrice did not round-trip: %v", parsed.MinPrice)
	}
	if parsed.MaxPrice != nil {
		t.Fatalf("unset maxPrice should stay unset after round-trip")
	}
	if parsed.MaxEngineCapacity == nil || *parsed.MaxEngineCapacity != maxEngine {
		t.Fatalf("maxEngineCapacity did not round-trip: %v", parsed.MaxEngineCapacity)
	}
	if parsed.SortBy != SortName || parsed.SortOrder != OrderDesc {
		t.Fatalf("sort did not round-trip: %s %s", parsed.SortBy, parsed.SortOrder)
	}
	if parsed.Page != 3 || parsed.Limit != 24 {
		t.Fatalf("pagination did not round-trip: page=%d limit=%d", parsed.Page, parsed.Limit)
	}
}

func TestSkip(t *testing.T) {
	c := ListCriteria{Page: 3, Limit: 12}
	if c.Skip() != 24 {
		t.Fatalf("expected skip (page-1)*limit = 24, got %d", c.Skip())
	}

	c = ListCriteria{Offset: 40, Limit: 20}
	if c.Skip() != 40 {
		t.Fatalf("expected raw offset 40, got %d", c.Skip())
	}
}
