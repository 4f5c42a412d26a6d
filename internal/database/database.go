package database

import (
	"log"
	"os"
	"time"

	"batalla/backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the database connection and runs migrations.
func Connect(dsn string) *gorm.DB {
	// Configure GORM logger
	customLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags), // io writer
		logger.Config{
			SlowThreshold:             200 * time.Millisecond, // Slow SQL threshold
			LogLevel:                  logger.Warn,            // Log level
			IgnoreRecordNotFoundError: true,                   // Ignore ErrRecordNotFound error for logger
			Colorful:                  true,                   // Enable color
		},
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: customLogger,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection established.")

	if err := Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// One friendship row per unordered user pair. The service checks both
	// orderings before inserting, but only this index makes the invariant
	// hold under concurrent requests.
	err = db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_friendships_pair
		ON friendships (LEAST(requester_id, addressee_id), GREATEST(requester_id, addressee_id))`).Error
	if err != nil {
		log.Fatalf("Failed to create friendship pair index: %v", err)
	}

	log.Println("Database migrated successfully.")
	return db
}

// Migrate runs the schema migrations for every model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.Friendship{}, &models.GameInvitation{})
}
