package repositories

import (
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"paircode/internal/models"
)

// Open connects to Postgres when a DSN is given, falling back to a local
// SQLite file when the server is unreachable, and migrates the room schema.
func Open(postgresDSN, sqlitePath string, logger *zap.Logger) (*gorm.DB, error) {
	if postgresDSN != "" {
		db, err := gorm.Open(postgres.Open(postgresDSN), &gorm.Config{})
		if err == nil {
			logger.Info("connected to postgres")
			return db, db.AutoMigrate(&models.Room{})
		}
		logger.Warn("postgres unavailable, falling back to sqlite", zap.Error(err))
	}

	db, err := gorm.Open(sqlite.Open(sqlitePath), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	logger.Info("using sqlite database", zap.String("path", sqlitePath))
	return db, db.AutoMigrate(&models.Room{})
}
