package database

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"motomarket-api/models"
	"motomarket-api/utils"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Warn),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Brand{},
		&models.Category{},
		&models.Model{},
		&models.ModelImage{},
		&models.Variant{},
		&models.Price{},
		&models.Specification{},
		&models.Review{},
		&models.User{},
		&models.EMICalculation{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := addCustomIndexes(db); err != nil {
		return fmt.Errorf("failed to add custom indexes: %w", err)
	}

	return nil
}

func addCustomIndexes(db *gorm.DB) error {
	// Composite indexes for the hot listing paths

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_models_brand_category ON models(brand_id, category_id)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for models brand/category: %v\n", err)
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_prices_variant_showroom ON prices(variant_id, ex_showroom)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for prices: %v\n", err)
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_reviews_model_approved ON reviews(model_id, is_approved)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for reviews: %v\n", err)
	}

	return nil
}

// SeedData populates the catalog with development data. Skips when brands
// already exist.
func SeedData(db *gorm.DB) error {
	var brandCount int64
	db.Model(&models.Brand{}).Count(&brandCount)

	if brandCount > 0 {
		fmt.Println("Database already has data, skipping seed")
		return nil
	}

	brands := map[string]*models.Brand{}
	for _, spec := range []struct{ name, country string }{
		{"Honda", "Japan"},
		{"Yamaha", "Japan"},
		{"Royal Enfield", "India"},
		{"Bajaj", "India"},
		{"TVS", "India"},
	} {
		brand := &models.Brand{
			ID:      uuid.New().String(),
			Name:    spec.name,
			Slug:    utils.Slugify(spec.name),
			Country: spec.country,
		}
		if err := db.Create(brand).Error; err != nil {
			return err
		}
		brands[spec.name] = brand
	}

	categories := map[string]*models.Category{}
	for _, name := range []string{"Sport", "Cruiser", "Commuter", "Scooter", "Electric"} {
		category := &models.Category{
			ID:   uuid.New().String(),
			Name: name,
			Slug: utils.Slugify(name),
		}
		if err := db.Create(category).Error; err != nil {
			return err
		}
		categories[name] = category
	}

	seedModels := []struct {
		name     string
		brand    string
		category string
		engine   float64
		mileage  float64
		price    float64
		electric bool
	}{
		{"CB350", "Honda", "Cruiser", 348.36, 38, 199000, false},
		{"Activa 6G", "Honda", "Scooter", 109.51, 50, 76000, false},
		{"MT-15", "Yamaha", "Sport", 155, 48, 168000, false},
		{"Classic 350", "Royal Enfield", "Cruiser", 349, 37, 193000, false},
		{"Pulsar NS200", "Bajaj", "Sport", 199.5, 36, 141000, false},
		{"iQube", "TVS", "Electric", 0, 0, 117000, true},
	}

	for _, spec := range seedModels {
		launch := time.Now().AddDate(0, -6, 0)
		model := models.Model{
			ID:          uuid.New().String(),
			Name:        spec.name,
			Slug:        utils.Slugify(spec.brand + " " + spec.name),
			Description: fmt.Sprintf("The %s %s.", spec.brand, spec.name),
			BrandID:     brands[spec.brand].ID,
			CategoryID:  &categories[spec.category].ID,
			LaunchDate:  &launch,
			IsElectric:  spec.electric,
		}
		if spec.engine > 0 {
			model.EngineCapacity = &spec.engine
		}
		if spec.mileage > 0 {
			model.Mileage = &spec.mileage
		}

		if err := db.Create(&model).Error; err != nil {
			return err
		}

		variant := models.Variant{
			ID:      uuid.New().String(),
			ModelID: model.ID,
			Name:    "Standard",
			Colors:  models.StringSliceType{"Black", "Red"},
		}
		if err := db.Create(&variant).Error; err != nil {
			return err
		}

		price := models.Price{
			ID:         uuid.New().String(),
			VariantID:  variant.ID,
			ExShowroom: spec.price,
		}
		if err := db.Create(&price).Error; err != nil {
			return err
		}

		image := models.ModelImage{
			ID:      uuid.New().String(),
			ModelID: model.ID,
			URL:     fmt.Sprintf("https://picsum.photos/seed/%s/600/400", model.Slug),
		}
		if err := db.Create(&image).Error; err != nil {
			return err
		}

		specs := []models.Specification{
			{ID: uuid.New().String(), ModelID: model.ID, Name: "Engine", Value: fmt.Sprintf("%.2f cc", spec.engine)},
			{ID: uuid.New().String(), ModelID: model.ID, Name: "Mileage", Value: fmt.Sprintf("%.0f kmpl", spec.mileage)},
		}
		for _, s := range specs {
			if err := db.Create(&s).Error; err != nil {
				return err
			}
		}
	}

	fmt.Println("Database seeded with development catalog data")
	return nil
}
