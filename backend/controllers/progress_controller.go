package controllers

import (
	"encoding/json"
	"errors"
	"strconv"

	"companion/backend/config"
	"companion/backend/models"
	"companion/backend/progress"
	"companion/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ProgressController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewProgressController(db *gorm.DB, cfg *config.Config) *ProgressController {
	return &ProgressController{DB: db, Cfg: cfg}
}

// GetCourseProgress godoc
// @Summary Get course progress
// @Description Returns the user's derived completion summary for one course
// @Tags progress
// @Accept json
// @Produce json
// @Success 200 {object} progress.CourseProgress
// @Failure 404 {object} map[string]interface{}
// @Router /users/{userId}/courses/{courseId}/progress [get]
//
// The summary is re-derived from the full event log on every call; see the
// progress package for the derivation rules.
func (pc *ProgressController) GetCourseProgress(c *fiber.Ctx) error {
	userID, err := strconv.Atoi(c.Params("userId"))
	if err != nil {
		return utils.BadRequest(c, "Invalid user ID")
	}

	var course models.Course
	if err := pc.DB.First(&course, "id = ?", c.Params("courseId")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Course not found")
		}
		return utils.Internal(c, "Could not query database")
	}

	var doc models.CourseDocument
	if err := json.Unmarshal(course.Data, &doc); err != nil {
		return utils.Internal(c, "Could not parse course data")
	}

	var completions []models.PageCompletion
	err = pc.DB.
		Where("user_id = ? AND course_id = ?", userID, course.ID).
		Find(&completions).Error
	if err != nil {
		return utils.Internal(c, "Could not query database")
	}

	return c.JSON(progress.Derive(doc, completions))
}
