package repositories

import (
	"fmt"
	"strings"

	"motomarket-api/models"
)

// Operator is a predicate comparison operator.
type Operator string

const (
	OpEquals   Operator = "eq"
	OpGte      Operator = "gte"
	OpLte      Operator = "lte"
	OpContains Operator = "contains" // case-insensitive substring
)

// Predicate field names. These address the logical catalog schema, not a
// particular backend's physical layout.
const (
	FieldBrandSlug      = "brand.slug"
	FieldBrandName      = "brand.name"
	FieldBrandID        = "brand_id"
	FieldCategorySlug   = "category.slug"
	FieldCategoryID     = "category_id"
	FieldPrice          = "price"
	FieldEngineCapacity = "engine_capacity"
	FieldMileage        = "mileage"
	FieldIsElectric     = "is_electric"
	FieldIsUpcoming     = "is_upcoming"
	FieldIsFeatured     = "is_featured"
	FieldName           = "name"
	FieldDescription    = "description"
)

// Predicate is a single filter condition applied at the storage layer.
type Predicate struct {
	Field string
	Op    Operator
	Value interface{}
}

// PredicateSet combines predicates: every And entry must hold, and when the
// Or group is non-empty at least one of its entries must hold too.
type PredicateSet struct {
	And []Predicate
	Or  []Predicate
}

// BuildPredicates translates filter criteria into a backend-agnostic
// predicate set. Unset bounds produce no predicate at all.
func BuildPredicates(c ListCriteria) PredicateSet {
	var set PredicateSet

	if c.BrandSlug != "" {
		set.And = append(set.And, Predicate{FieldBrandSlug, OpEquals, c.BrandSlug})
	}
	if c.CategorySlug != "" {
		set.And = append(set.And, Predicate{FieldCategorySlug, OpEquals, c.CategorySlug})
	}
	if c.BrandID != "" {
		set.And = append(set.And, Predicate{FieldBrandID, OpEquals, c.BrandID})
	}
	if c.CategoryID != "" {
		set.And = append(set.And, Predicate{FieldCategoryID, OpEquals, c.CategoryID})
	}

	if c.MinPrice != nil {
		set.And = append(set.And, Predicate{FieldPrice, OpGte, *c.MinPrice})
	}
	if c.MaxPrice != nil {
		set.And = append(set.And, Predicate{FieldPrice, OpLte, *c.MaxPrice})
	}
	if c.MinEngineCapacity != nil {
		set.And = append(set.And, Predicate{FieldEngineCapacity, OpGte, *c.MinEngineCapacity})
	}
	if c.MaxEngineCapacity != nil {
		set.And = append(set.And, Predicate{FieldEngineCapacity, OpLte, *c.MaxEngineCapacity})
	}
	if c.MinMileage != nil {
		set.And = append(set.And, Predicate{FieldMileage, OpGte, *c.MinMileage})
	}

	if c.IsElectric != nil {
		set.And = append(set.And, Predicate{FieldIsElectric, OpEquals, *c.IsElectric})
	}
	if c.IsUpcoming != nil {
		set.And = append(set.And, Predicate{FieldIsUpcoming, OpEquals, *c.IsUpcoming})
	}
	if c.IsFeatured != nil {
		set.And = append(set.And, Predicate{FieldIsFeatured, OpEquals, *c.IsFeatured})
	}

	if c.Search != "" {
		set.Or = append(set.Or,
			Predicate{FieldName, OpContains, c.Search},
			Predicate{FieldDescription, OpContains, c.Search},
			Predicate{FieldBrandName, OpContains, c.Search},
		)
	}

	return set
}

// Matches evaluates the whole set against a fully loaded model. This is the
// reference semantics every backend has to agree with.
func (s PredicateSet) Matches(m *models.Model) bool {
	for _, p := range s.And {
		if !matchPredicate(m, p) {
			return false
		}
	}

	if len(s.Or) > 0 {
		any := false
		for _, p := range s.Or {
			if matchPredicate(m, p) {
				any = true
				break
			}
		}
		if !any {
			return false
		}
	}

	return true
}

// NeedsBrandJoin reports whether any predicate addresses brand columns.
func (s PredicateSet) NeedsBrandJoin() bool {
	for _, p := range s.And {
		if p.Field == FieldBrandSlug || p.Field == FieldBrandName {
			return true
		}
	}
	for _, p := range s.Or {
		if p.Field == FieldBrandSlug || p.Field == FieldBrandName {
			return true
		}
	}
	return false
}

func matchPredicate(m *models.Model, p Predicate) bool {
	switch p.Field {
	case FieldBrandSlug:
		return m.Brand.Slug == p.Value.(string)
	case FieldBrandName:
		return containsFold(m.Brand.Name, p.Value.(string))
	case FieldBrandID:
		return m.BrandID == p.Value.(string)
	case FieldCategorySlug:
		return m.Category != nil && m.Category.Slug == p.Value.(string)
	case FieldCategoryID:
		return m.CategoryID != nil && *m.CategoryID == p.Value.(string)
	case FieldPrice:
		return matchAnyPrice(m, p.Op, p.Value.(float64))
	case FieldEngineCapacity:
		return matchNumeric(m.EngineCapacity, p.Op, p.Value.(float64))
	case FieldMileage:
		return matchNumeric(m.Mileage, p.Op, p.Value.(float64))
	case FieldIsElectric:
		return m.IsElectric == p.Value.(bool)
	case FieldIsUpcoming:
		return m.IsUpcoming == p.Value.(bool)
	case FieldIsFeatured:
		return m.IsFeatured == p.Value.(bool)
	case FieldName:
		return containsFold(m.Name, p.Value.(string))
	case FieldDescription:
		return containsFold(m.Description, p.Value.(string))
	}
	return false
}

// matchAnyPrice holds when some variant price satisfies the bound. Each
// bound is an independent predicate, so min and max may be satisfied by
// different prices of the same model.
func matchAnyPrice(m *models.Model, op Operator, bound float64) bool {
	for i := range m.Variants {
		for j := range m.Variants[i].Prices {
			price := m.Variants[i].Prices[j].ExShowroom
			if op == OpGte && price >= bound {
				return true
			}
			if op == OpLte && price <= bound {
				return true
			}
		}
	}
	return false
}

// matchNumeric excludes rows with no value for the attribute.
func matchNumeric(v *float64, op Operator, bound float64) bool {
	if v == nil {
		return false
	}
	if op == OpGte {
		return *v >= bound
	}
	return *v <= bound
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// predicateSQL translates a predicate into a MySQL condition over the
// relational schema. Brand columns assume the brands join is in place.
func predicateSQL(p Predicate) (string, []interface{}) {
	switch p.Field {
	case FieldBrandSlug:
		return "brands.slug = ?", []interface{}{p.Value}
	case FieldBrandName:
		return "LOWER(brands.name) LIKE ?", []interface{}{likePattern(p.Value.(string))}
	case FieldBrandID:
		return "models.brand_id = ?", []interface{}{p.Value}
	case FieldCategorySlug:
		return "models.category_id IN (SELECT id FROM categories WHERE slug = ?)", []interface{}{p.Value}
	case FieldCategoryID:
		return "models.category_id = ?", []interface{}{p.Value}
	case FieldPrice:
		cmp := ">="
		if p.Op == OpLte {
			cmp = "<="
		}
		sub := fmt.Sprintf("EXISTS (SELECT 1 FROM variants JOIN prices ON prices.variant_id = variants.id WHERE variants.model_id = models.id AND prices.ex_showroom %s ?)", cmp)
		return sub, []interface{}{p.Value}
	case FieldEngineCapacity:
		if p.Op == OpLte {
			return "models.engine_capacity <= ?", []interface{}{p.Value}
		}
		return "models.engine_capacity >= ?", []interface{}{p.Value}
	case FieldMileage:
		return "models.mileage >= ?", []interface{}{p.Value}
	case FieldIsElectric:
		return "models.is_electric = ?", []interface{}{p.Value}
	case FieldIsUpcoming:
		return "models.is_upcoming = ?", []interface{}{p.Value}
	case FieldIsFeatured:
		return "models.is_featured = ?", []interface{}{p.Value}
	case FieldName:
		return "LOWER(models.name) LIKE ?", []interface{}{likePattern(p.Value.(string))}
	case FieldDescription:
		return "LOWER(models.description) LIKE ?", []interface{}{likePattern(p.Value.(string))}
	}
	return "1 = 0", nil
}

func likePattern(s string) string {
	return "%" + strings.ToLower(s) + "%"
}

// orderSQL maps a sort key to a concrete ordering clause. Price sorts by
// the model's minimum variant price; latest and popularity ignore the
// requested direction.
func orderSQL(key SortKey, order SortOrder) string {
	dir := "ASC"
	if order == OrderDesc {
		dir = "DESC"
	}

	switch key {
	case SortName:
		return "models.name " + dir
	case SortLatest:
		return "models.created_at DESC"
	case SortPopularity:
		return "models.popularity_score DESC"
	default: // SortPrice
		return "(SELECT MIN(prices.ex_showroom) FROM variants JOIN prices ON prices.variant_id = variants.id WHERE variants.model_id = models.id) " + dir
	}
}
