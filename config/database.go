package config

import (
	"fmt"
	"log"
	"os"

	"blogapi/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func InitDB() *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", "postgres"),
		getEnv("DB_NAME", "blogapi"),
	)

	// TranslateError turns driver-level constraint violations into
	// gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated, which the
	// services map to the API error taxonomy.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	return db
}

// Migrate creates the schema plus the constraints AutoMigrate cannot
// express: case-insensitive uniqueness for usernames and category names,
// and the RESTRICT reference from post_categories to categories. Uniqueness
// and reference integrity must live in the store itself; an application
// pre-check alone leaves a check-then-insert race open.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.User{}, &models.Category{}, &models.Post{}); err != nil {
		return err
	}

	statements := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_users_username_lower ON users (LOWER(username))`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_categories_name_lower ON categories (LOWER(name))`,
		`ALTER TABLE post_categories DROP CONSTRAINT IF EXISTS fk_post_categories_category`,
		`ALTER TABLE post_categories ADD CONSTRAINT fk_post_categories_category
			FOREIGN KEY (category_id) REFERENCES categories (id) ON DELETE RESTRICT`,
	}
	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}

	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
