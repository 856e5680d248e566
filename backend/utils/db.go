package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"companion/backend/config"
	"companion/backend/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB opens the embedded store and brings the schema up to date.
// WAL keeps readers unblocked during commits; the busy timeout bounds how long
// a writer waits on the single-writer lock before failing.
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	if dir := filepath.Dir(cfg.DBPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on", cfg.DBPath)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	if err := migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Course{},
		&models.UserSetting{},
		&models.PageCompletion{},
	); err != nil {
		return err
	}

	// Composite indexes for the completion log's two read paths.
	stmts := []string{
		`CREATE INDEX IF NOT EXISTS idx_page_completions_user_course ON page_completions(user_id, course_id);`,
		`CREATE INDEX IF NOT EXISTS idx_page_completions_user_type ON page_completions(user_id, page_type);`,
	}
	for _, s := range stmts {
		if err := db.Exec(s).Error; err != nil {
			return fmt.Errorf("index exec failed: %w (sql=%s)", err, s)
		}
	}

	return nil
}
