package repositories

import (
	"net/url"
	"strconv"
)

type SortKey string

const (
	SortPrice      SortKey = "price"
	SortName       SortKey = "name"
	SortLatest     SortKey = "latest"
	SortPopularity SortKey = "popularity"
)

type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

const (
	DefaultPageSize = 12
	MaxPageSize     = 50

	DefaultCatalogLimit = 20
	MaxCatalogLimit     = 100
)

// ListCriteria is the request-scoped filter value object for catalog
// listings. Nil pointer fields mean "not set": an absent bound never
// excludes rows.
type ListCriteria struct {
	BrandSlug    string
	CategorySlug string
	BrandID      string
	CategoryID   string

	MinPrice          *float64
	MaxPrice          *float64
	MinEngineCapacity *float64
	MaxEngineCapacity *float64
	MinMileage        *float64

	IsElectric *bool
	IsUpcoming *bool
	IsFeatured *bool

	Search string

	SortBy    SortKey
	SortOrder SortOrder

	// Page-based pagination (bikes listing). Page starts at 1.
	Page  int
	Limit int

	// Raw offset pagination (models/brands/categories listings). Used when
	// Page is zero.
	Offset int
}

// Skip returns the number of rows to skip before the current page.
func (c ListCriteria) Skip() int {
	if c.Page > 0 {
		return (c.Page - 1) * c.Limit
	}
	return c.Offset
}

// ParseListCriteria reads the bikes listing query parameters. Malformed
// numeric values are silently treated as unset, boolean flags only apply
// when the parameter is present, and limit is always clamped.
func ParseListCriteria(values url.Values) ListCriteria {
	c := ListCriteria{
		BrandSlug:    values.Get("brand"),
		CategorySlug: values.Get("category"),
		Search:       values.Get("search"),

		MinPrice:          parseFloatParam(values, "minPrice"),
		MaxPrice:          parseFloatParam(values, "maxPrice"),
		MinEngineCapacity: parseFloatParam(values, "minEngineCapacity"),
		MaxEngineCapacity: parseFloatParam(values, "maxEngineCapacity"),
		MinMileage:        parseFloatParam(values, "minMileage"),

		SortBy:    parseSortKey(values.Get("sortBy")),
		SortOrder: parseSortOrder(values.Get("sortOrder")),

		Page:  parsePage(values.Get("page")),
		Limit: clampLimit(parseIntDefault(values.Get("limit"), DefaultPageSize), MaxPageSize),
	}

	return c
}

// ParseCatalogCriteria reads the secondary models listing parameters:
// id-based brand/category filters, presence-gated flags, free-text search
// and offset pagination.
func ParseCatalogCriteria(values url.Values) ListCriteria {
	c := ListCriteria{
		BrandID:    values.Get("brandId"),
		CategoryID: values.Get("categoryId"),
		Search:     values.Get("search"),

		IsElectric: parseBoolParam(values, "isElectric"),
		IsUpcoming: parseBoolParam(values, "isUpcoming"),
		IsFeatured: parseBoolParam(values, "isFeatured"),

		SortBy:    parseCatalogSortKey(values.Get("sortBy")),
		SortOrder: parseSortOrder(values.Get("sortOrder")),

		Limit:  clampLimit(parseIntDefault(values.Get("limit"), DefaultCatalogLimit), MaxCatalogLimit),
		Offset: parseOffset(values.Get("offset")),
	}

	return c
}

// Values encodes the criteria back into bikes listing query parameters.
// Parsing the result yields an equivalent criteria object.
func (c ListCriteria) Values() url.Values {
	values := url.Values{}

	if c.BrandSlug != "" {
		values.Set("brand", c.BrandSlug)
	}
	if c.CategorySlug != "" {
		values.Set("category", c.CategorySlug)
	}
	if c.Search != "" {
		values.Set("search", c.Search)
	}

	setFloatParam(values, "minPrice", c.MinPrice)
	setFloatParam(values, "maxPrice", c.MaxPrice)
	setFloatParam(values, "minEngineCapacity", c.MinEngineCapacity)
	setFloatParam(values, "maxEngineCapacity", c.MaxEngineCapacity)
	setFloatParam(values, "minMileage", c.MinMileage)

	values.Set("sortBy", string(c.SortBy))
	values.Set("sortOrder", string(c.SortOrder))
	values.Set("page", strconv.Itoa(c.Page))
	values.Set("limit", strconv.Itoa(c.Limit))

	return values
}

func parseFloatParam(values url.Values, key string) *float64 {
	raw := values.Get(key)
	if raw == "" {
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		// Malformed numeric input is treated as unset
		return nil
	}
	return &f
}

func setFloatParam(values url.Values, key string, v *float64) {
	if v != nil {
		values.Set(key, strconv.FormatFloat(*v, 'f', -1, 64))
	}
}

// parseBoolParam returns nil when the parameter is absent: absence is not
// the same as false.
func parseBoolParam(values url.Values, key string) *bool {
	if !values.Has(key) {
		return nil
	}
	b := values.Get(key) == "true"
	return &b
}

func parseSortKey(raw string) SortKey {
	switch SortKey(raw) {
	case SortPrice, SortName, SortLatest, SortPopularity:
		return SortKey(raw)
	default:
		return SortPrice
	}
}

func parseCatalogSortKey(raw string) SortKey {
	switch SortKey(raw) {
	case SortPrice, SortName, SortLatest, SortPopularity:
		return SortKey(raw)
	default:
		return SortPopularity
	}
}

func parseSortOrder(raw string) SortOrder {
	if raw == string(OrderDesc) {
		return OrderDesc
	}
	return OrderAsc
}

func parsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func parseOffset(raw string) int {
	offset, err := strconv.Atoi(raw)
	if err != nil || offset < 0 {
		return 0
	}
	return offset
}

func parseIntDefault(raw string, def int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return def
	}
	return n
}

func clampLimit(limit, max int) int {
	if limit > max {
		return max
	}
	return limit
}
