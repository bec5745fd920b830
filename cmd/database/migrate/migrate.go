package migration

import (
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"nutrivision-backend/entities"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.User{}); err != nil {
		logrus.WithError(err).Error("error migrating users table")
		return err
	}
	if err := db.AutoMigrate(&entities.FoodImage{}); err != nil {
		logrus.WithError(err).Error("error migrating food_images table")
		return err
	}
	if err := db.AutoMigrate(&entities.NutritionalAnalysis{}); err != nil {
		logrus.WithError(err).Error("error migrating nutritional_analyses table")
		return err
	}
	if err := db.AutoMigrate(&entities.Allergen{}); err != nil {
		logrus.WithError(err).Error("error migrating allergens table")
		return err
	}
	if err := db.AutoMigrate(&entities.AnalysisAllergen{}); err != nil {
		logrus.WithError(err).Error("error migrating analysis_allergens table")
		return err
	}
	if err := db.AutoMigrate(&entities.UserAllergen{}); err != nil {
		logrus.WithError(err).Error("error migrating user_allergens table")
		return err
	}

	logrus.Info("database migration complete")
	return nil
}

// commonAllergens is the EU top-14 list the catalog ships with.
var commonAllergens = []entities.Allergen{
	{Name: "Peanuts", Category: "Legumes", IsCommon: true},
	{Name: "Tree Nuts", Category: "Nuts", IsCommon: true},
	{Name: "Milk", Category: "Dairy", IsCommon: true},
	{Name: "Eggs", Category: "Animal Products", IsCommon: true},
	{Name: "Fish", Category: "Seafood", IsCommon: true},
	{Name: "Crustaceans", Category: "Seafood", IsCommon: true},
	{Name: "Molluscs", Category: "Seafood", IsCommon: true},
	{Name: "Soybeans", Category: "Legumes", IsCommon: true},
	{Name: "Cereals Containing Gluten", Category: "Grains", IsCommon: true},
	{Name: "Sesame", Category: "Seeds", IsCommon: true},
	{Name: "Mustard", Category: "Seeds", IsCommon: true},
	{Name: "Celery", Category: "Vegetables", IsCommon: true},
	{Name: "Lupin", Category: "Legumes", IsCommon: true},
	{Name: "Sulphites", Category: "Additives", IsCommon: true},
}

// SeedCommonAllergens is idempotent: rows are matched on the unique name.
func SeedCommonAllergens(db *gorm.DB) error {
	for _, allergen := range commonAllergens {
		row := allergen
		if err := db.Where("name = ?", row.Name).FirstOrCreate(&row).Error; err != nil {
			logrus.WithError(err).WithField("allergen", row.Name).
				Error("error seeding allergen catalog")
			return err
		}
	}

	logrus.WithField("count", len(commonAllergens)).Info("allergen catalog seeded")
	return nil
}
