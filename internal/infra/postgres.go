package infra

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"trekzaa/internal/models/db_models"
)

func InitPostgresql() *gorm.DB {
	dsn := os.Getenv("POSTGRES_URL")
	if dsn == "" {
		log.Fatal("POSTGRES_URL is required")
	}

	// TranslateError makes uniqueness violations surface as
	// gorm.ErrDuplicatedKey, which registration relies on.
	connectionPool, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	if err := connectionPool.AutoMigrate(
		&db_models.User{},
		&db_models.TravelPreference{},
		&db_models.Guide{},
		&db_models.Trip{},
		&db_models.Booking{},
		&db_models.PackingList{},
		&db_models.PackingItem{},
		&db_models.BlogPost{},
		&db_models.Comment{},
	); err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}

	return connectionPool
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("PostgreSQL database connection closed successfully")
	}
}

func StartTransaction(db *gorm.DB) *gorm.DB {
	tx := db.Begin()
	if tx.Error != nil {
		log.Printf("Error starting transaction: %v", tx.Error)
	}
	return tx
}

// ReleaseTransaction rolls back when err is set and commits otherwise. The
// returned error is err itself, or the commit error when the commit fails.
func ReleaseTransaction(tx *gorm.DB, err error) error {
	if err != nil {
		if rollbackErr := tx.Rollback().Error; rollbackErr != nil {
			log.Printf("Error rollback transaction: %v", rollbackErr)
		}
		return err
	}
	if commitErr := tx.Commit().Error; commitErr != nil {
		log.Printf("Error committing transaction: %v", commitErr)
		return commitErr
	}
	return nil
}
