package controllers

import (
	"errors"
	"strconv"
	"strings"

	"companion/backend/config"
	"companion/backend/models"
	"companion/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UsersController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewUsersController(db *gorm.DB, cfg *config.Config) *UsersController {
	return &UsersController{DB: db, Cfg: cfg}
}

func (uc *UsersController) ListUsers(c *fiber.Ctx) error {
	users := []models.User{}
	if err := uc.DB.Order("name ASC").Find(&users).Error; err != nil {
		return utils.Internal(c, "Could not query database")
	}
	return c.JSON(users)
}

func (uc *UsersController) CreateUser(c *fiber.Ctx) error {
	var input struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return utils.BadRequest(c, "Missing name")
	}

	user := models.User{Name: name}
	if err := uc.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.Conflict(c, "User already exists")
		}
		return utils.Internal(c, "Could not create user")
	}

	return c.JSON(user)
}

// GetActiveCourse returns the user's active course document, or JSON null when
// no course is set or the setting points at a course that no longer exists.
func (uc *UsersController) GetActiveCourse(c *fiber.Ctx) error {
	userID, err := strconv.Atoi(c.Params("userId"))
	if err != nil {
		return utils.BadRequest(c, "Invalid user ID")
	}

	var setting models.UserSetting
	if err := uc.DB.First(&setting, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(nil)
		}
		return utils.Internal(c, "Could not query database")
	}
	if setting.ActiveCourseID == nil {
		return c.JSON(nil)
	}

	var course models.Course
	if err := uc.DB.First(&course, "id = ?", *setting.ActiveCourseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(nil)
		}
		return utils.Internal(c, "Could not query database")
	}

	return c.Type("json").Send(course.Data)
}

func (uc *UsersController) SetActiveCourse(c *fiber.Ctx) error {
	userID, err := strconv.Atoi(c.Params("userId"))
	if err != nil {
		return utils.BadRequest(c, "Invalid user ID")
	}

	var input struct {
		CourseID string `json:"courseId"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	courseID := strings.TrimSpace(input.CourseID)
	if courseID == "" {
		return utils.BadRequest(c, "Missing courseId")
	}

	var course models.Course
	if err := uc.DB.Select("id").First(&course, "id = ?", courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Course not found")
		}
		return utils.Internal(c, "Could not query database")
	}

	setting := models.UserSetting{UserID: uint(userID), ActiveCourseID: &courseID}
	err = uc.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"active_course_id"}),
	}).Create(&setting).Error
	if err != nil {
		return utils.Internal(c, "Could not save setting")
	}

	return c.JSON(fiber.Map{"success": true})
}
