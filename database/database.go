package database

import (
	"fmt"
	"log"

	"edumate/config"
	"edumate/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Service wraps the database connection with an explicit lifecycle: connect
// once at startup, share the handle across handlers, close on shutdown.
type Service struct {
	Db *gorm.DB
}

// Connect establishes a connection to PostgreSQL and runs migrations
func Connect(cfg *config.Config) (*Service, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
	)

	// TranslateError turns driver duplicate-key errors into
	// gorm.ErrDuplicatedKey, which the handlers map to 409.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	// Set up connection pooling
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return &Service{Db: db}, nil
}

// Migrate performs database migrations
func Migrate(db *gorm.DB) error {
	log.Println("Running Migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Course{},
		&models.Enrollment{},
		&models.Lecture{},
		&models.Assignment{},
		&models.Quiz{},
		&models.Question{},
	)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Println("Migrations completed successfully.")
	return nil
}

// Close releases the underlying connection pool
func (s *Service) Close() error {
	sqlDB, err := s.Db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
