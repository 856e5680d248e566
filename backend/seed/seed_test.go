package seed

import (
	"log"
	"os"
	"path/filepath"
	"testing"

	"companion/backend/config"
	"companion/backend/models"
	"companion/backend/utils"

	"github.com/stretchr/testify/assert"
)

func TestRunIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	db, err := utils.InitDB(&config.Config{DBPath: filepath.Join(dir, "seed.db")})
	assert.NoError(t, err)

	logger := log.New(os.Stderr, "", 0)
	coursePath := filepath.Join("..", "..", "seed", "sample-course.json")

	assert.NoError(t, Run(db, logger, coursePath))
	assert.NoError(t, Run(db, logger, coursePath))

	var users int64
	db.Model(&models.User{}).Count(&users)
	assert.Equal(t, int64(3), users)

	var courses int64
	db.Model(&models.Course{}).Count(&courses)
	assert.Equal(t, int64(1), courses)

	var settings []models.UserSetting
	db.Find(&settings)
	assert.Len(t, settings, 3)
	for _, s := range settings {
		assert.NotNil(t, s.ActiveCourseID)
		assert.Equal(t, "guitar-1", *s.ActiveCourseID)
	}
}

func TestRunMissingCourseFile(t *testing.T) {
	dir := t.TempDir()
	db, err := utils.InitDB(&config.Config{DBPath: filepath.Join(dir, "seed.db")})
	assert.NoError(t, err)

	err = Run(db, log.New(os.Stderr, "", 0), filepath.Join(dir, "nope.json"))
	assert.Error(t, err)
}
