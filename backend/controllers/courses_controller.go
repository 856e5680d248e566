package controllers

import (
	"bytes"
	"encoding/json"
	"errors"

	"companion/backend/config"
	"companion/backend/models"
	"companion/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CoursesController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewCoursesController(db *gorm.DB, cfg *config.Config) *CoursesController {
	return &CoursesController{DB: db, Cfg: cfg}
}

func (cc *CoursesController) ListCourses(c *fiber.Ctx) error {
	courses := []models.Course{}
	err := cc.DB.
		Select("id", "title", "description", "created_at").
		Order("created_at DESC").
		Find(&courses).Error
	if err != nil {
		return utils.Internal(c, "Could not query database")
	}
	return c.JSON(courses)
}

// CreateCourse accepts a full course document, either as the request body
// itself or nested under a courseJson field (object or JSON-encoded string).
// The document is stored verbatim; only id, title, and the modules shape are
// checked.
func (cc *CoursesController) CreateCourse(c *fiber.Ctx) error {
	var envelope struct {
		CourseJSON json.RawMessage `json:"courseJson"`
	}
	if err := json.Unmarshal(c.Body(), &envelope); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	doc := bytes.TrimSpace(c.Body())
	if len(envelope.CourseJSON) > 0 && string(envelope.CourseJSON) != "null" {
		doc = bytes.TrimSpace(envelope.CourseJSON)
		if len(doc) > 0 && doc[0] == '"' {
			var inner string
			if err := json.Unmarshal(doc, &inner); err != nil {
				return utils.BadRequest(c, "Missing course JSON")
			}
			doc = bytes.TrimSpace([]byte(inner))
		}
	}
	if len(doc) == 0 || doc[0] != '{' {
		return utils.BadRequest(c, "Missing course JSON")
	}

	parsed, err := models.ParseCourseDocument(doc)
	if err != nil {
		return utils.BadRequest(c, "Invalid course structure")
	}

	course := models.Course{
		ID:          parsed.ID,
		Title:       parsed.Title,
		Description: parsed.Description,
		Data:        datatypes.JSON(doc),
	}
	if err := cc.DB.Create(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.Conflict(c, "Course already exists")
		}
		return utils.Internal(c, "Could not create course")
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"courseId": course.ID,
	})
}

func (cc *CoursesController) GetCourse(c *fiber.Ctx) error {
	var course models.Course
	if err := cc.DB.First(&course, "id = ?", c.Params("courseId")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Course not found")
		}
		return utils.Internal(c, "Could not query database")
	}
	return c.Type("json").Send(course.Data)
}
