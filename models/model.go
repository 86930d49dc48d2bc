package models

import (
	"time"
)

// Model is a motorcycle product listing. Slugs are persisted, never derived
// from the display name at read time.
type Model struct {
	ID              string     `json:"id" gorm:"primaryKey;size:191"`
	Name            string     `json:"name" gorm:"not null;size:255"`
	Slug            string     `json:"slug" gorm:"uniqueIndex;not null;size:255"`
	Description     string     `json:"description" gorm:"type:text"`
	BrandID         string     `json:"brand_id" gorm:"not null;size:191;index"`
	CategoryID      *string    `json:"category_id" gorm:"size:191;index"`
	LaunchDate      *time.Time `json:"launch_date"`
	IsElectric      bool       `json:"is_electric" gorm:"default:false"`
	IsUpcoming      bool       `json:"is_upcoming" gorm:"default:false"`
	IsFeatured      bool       `json:"is_featured" gorm:"default:false"`
	EngineCapacity  *float64   `json:"engine_capacity"` // cc
	Mileage         *float64   `json:"mileage"`         // km per litre
	PopularityScore float64    `json:"popularity_score" gorm:"default:0;index"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`

	Brand          Brand           `json:"brand" gorm:"foreignKey:BrandID"`
	Category       *Category       `json:"category" gorm:"foreignKey:CategoryID"`
	Images         []ModelImage    `json:"images" gorm:"foreignKey:ModelID"`
	Variants       []Variant       `json:"variants" gorm:"foreignKey:ModelID"`
	Specifications []Specification `json:"specifications" gorm:"foreignKey:ModelID"`
	Reviews        []Review        `json:"reviews,omitempty" gorm:"foreignKey:ModelID"`
}

type ModelImage struct {
	ID        string    `json:"id" gorm:"primaryKey;size:191"`
	ModelID   string    `json:"model_id" gorm:"not null;size:191;index"`
	URL       string    `json:"url" gorm:"not null;size:500"`
	AltText   string    `json:"alt_text" gorm:"size:255"`
	SortOrder int       `json:"sort_order" gorm:"default:0"`
	CreatedAt time.Time `json:"created_at"`
}

// Variant is a purchasable configuration of a model.
type Variant struct {
	ID        string          `json:"id" gorm:"primaryKey;size:191"`
	ModelID   string          `json:"model_id" gorm:"not null;size:191;index"`
	Name      string          `json:"name" gorm:"not null;size:255"`
	Colors    StringSliceType `json:"colors" gorm:"type:json"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`

	Prices []Price `json:"prices" gorm:"foreignKey:VariantID"`
}

type Price struct {
	ID         string    `json:"id" gorm:"primaryKey;size:191"`
	VariantID  string    `json:"variant_id" gorm:"not null;size:191;index"`
	CityID     *string   `json:"city_id" gorm:"size:191;index"`
	ExShowroom float64   `json:"ex_showroom" gorm:"not null"`
	OnRoad     *float64  `json:"on_road"`
	CreatedAt  time.Time `json:"created_at"`
}

// Specification is a display name/value pair, e.g. "Engine" -> "349 cc".
// Numeric filterable attributes live as columns on Model.
type Specification struct {
	ID      string `json:"id" gorm:"primaryKey;size:191"`
	ModelID string `json:"model_id" gorm:"not null;size:191;index"`
	Name    string `json:"name" gorm:"not null;size:100"`
	Value   string `json:"value" gorm:"not null;size:255"`
}

// MinPrice returns the lowest ex-showroom price across all variants, or nil
// when the model has no priced variant yet.
func (m *Model) MinPrice() *float64 {
	var min *float64
	for i := range m.Variants {
		for j := range m.Variants[i].Prices {
			p := m.Variants[i].Prices[j].ExShowroom
			if min == nil || p < *min {
				v := p
				min = &v
			}
		}
	}
	return min
}

// FirstImageURL returns the URL of the first image by sort order, or nil.
func (m *Model) FirstImageURL() *string {
	if len(m.Images) == 0 {
		return nil
	}
	first := &m.Images[0]
	for i := range m.Images {
		if m.Images[i].SortOrder < first.SortOrder {
			first = &m.Images[i]
		}
	}
	return &first.URL
}
