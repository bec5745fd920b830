package main

import (
	"github.com/sirupsen/logrus"

	"nutrivision-backend/cmd/config"
	migration "nutrivision-backend/cmd/database/migrate"
	"nutrivision-backend/internal/utils"
)

func main() {
	utils.LoadConfig()
	if level, err := logrus.ParseLevel(utils.GetConfig("LOG_LEVEL")); err == nil {
		logrus.SetLevel(level)
	}

	db, err := config.ConnectDB()
	if err != nil {
		logrus.WithError(err).Fatal("database connection failed")
	}

	if err := migration.Migrate(db); err != nil {
		logrus.WithError(err).Fatal("database migration failed")
	}

	if utils.GetConfig("SEED_ALLERGENS") == "true" {
		if err := migration.SeedCommonAllergens(db); err != nil {
			logrus.WithError(err).Fatal("allergen catalog seeding failed")
		}
	}

	logrus.Info("schema is up to date")
}
