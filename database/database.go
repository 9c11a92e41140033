package database

import (
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"swimtrack/config"
	"swimtrack/models"

	"github.com/google/uuid"
)

// Connect opens the configured backend and prepares the schema. The driver
// is chosen once at process start; everything above this package talks to
// the same *gorm.DB regardless of backend.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch cfg.DBDriver {
	case "sqlite":
		dialector = sqlite.Open(cfg.DBDSN)
	case "postgres":
		dialector = postgres.Open(cfg.DBDSN)
	case "mysql":
		dialector = mysql.Open(cfg.DBDSN)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", cfg.DBDriver, err)
	}

	// Set up connection pooling
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get database instance: %w", err)
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	if err := runMigrations(db); err != nil {
		return nil, err
	}
	if err := seedAdmin(db, cfg); err != nil {
		return nil, err
	}

	return db, nil
}

// runMigrations performs database migrations
func runMigrations(db *gorm.DB) error {
	log.Println("Running Migrations...")

	err := db.AutoMigrate(
		&models.Admin{},
		&models.Coach{},
		&models.Student{},
		&models.Enrollment{},
		&models.PendingAttendance{},
		&models.AttendanceRecord{},
		&models.CoachEarned{},
		&models.CompletedSalaryDetail{},
		&models.AuditLog{},
	)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Println("Migrations completed successfully.")
	return nil
}

// seedAdmin inserts the admin singleton on first boot. Existing rows are
// left untouched so a changed ADMIN_PASSWORD env var does not silently
// rotate credentials.
func seedAdmin(db *gorm.DB, cfg *config.Config) error {
	var count int64
	if err := db.Model(&models.Admin{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), cfg.SaltRound)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := models.Admin{
		ID:           uuid.NewString(),
		Account:      cfg.AdminAccount,
		PasswordHash: string(hash),
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	log.Printf("Seeded admin account %q", cfg.AdminAccount)
	return nil
}
