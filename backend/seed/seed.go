// Package seed inserts demo data for a fresh installation. Running it twice
// is safe: users are only created when the table is empty and the sample
// course is skipped when its id already exists.
package seed

import (
	"errors"
	"fmt"
	"log"
	"os"

	"companion/backend/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var demoUsers = []string{"Nick", "Alex", "Sam"}

func Run(db *gorm.DB, logger *log.Logger, coursePath string) error {
	raw, err := os.ReadFile(coursePath)
	if err != nil {
		return fmt.Errorf("read sample course: %w", err)
	}
	doc, err := models.ParseCourseDocument(raw)
	if err != nil {
		return fmt.Errorf("parse sample course: %w", err)
	}

	var userCount int64
	if err := db.Model(&models.User{}).Count(&userCount).Error; err != nil {
		return err
	}
	if userCount == 0 {
		for _, name := range demoUsers {
			if err := db.Create(&models.User{Name: name}).Error; err != nil {
				return err
			}
		}
		logger.Printf("seeded users: %v", demoUsers)
	} else {
		logger.Println("users already exist; skipping user seed")
	}

	var existing models.Course
	err = db.Select("id").First(&existing, "id = ?", doc.ID).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		course := models.Course{
			ID:          doc.ID,
			Title:       doc.Title,
			Description: doc.Description,
			Data:        datatypes.JSON(raw),
		}
		if err := db.Create(&course).Error; err != nil {
			return err
		}
		logger.Printf("seeded course: %s", doc.ID)
	case err != nil:
		return err
	default:
		logger.Printf("course %s already exists; skipping course seed", doc.ID)
	}

	// Every user starts with the sample course active.
	var users []models.User
	if err := db.Find(&users).Error; err != nil {
		return err
	}
	for _, u := range users {
		setting := models.UserSetting{UserID: u.ID, ActiveCourseID: &doc.ID}
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"active_course_id"}),
		}).Create(&setting).Error
		if err != nil {
			return err
		}
	}
	logger.Println("set active course for all users")

	return nil
}
