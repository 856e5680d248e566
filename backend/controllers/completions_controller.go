package controllers

import (
	"encoding/json"
	"strconv"
	"time"

	"companion/backend/config"
	"companion/backend/models"
	"companion/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CompletionsController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewCompletionsController(db *gorm.DB, cfg *config.Config) *CompletionsController {
	return &CompletionsController{DB: db, Cfg: cfg}
}

// RecordCompletion is the single write entry point for all five page types.
// The payload is stored opaquely; its shape is never checked against pageType.
func (cc *CompletionsController) RecordCompletion(c *fiber.Ctx) error {
	var input struct {
		UserID      uint            `json:"userId"`
		CourseID    string          `json:"courseId"`
		ModuleIndex *int            `json:"moduleIndex"`
		PageIndex   *int            `json:"pageIndex"`
		PageType    string          `json:"pageType"`
		Data        json.RawMessage `json:"data"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if input.UserID == 0 || input.CourseID == "" {
		return utils.BadRequest(c, "Missing userId or courseId")
	}
	if input.ModuleIndex == nil || input.PageIndex == nil {
		return utils.BadRequest(c, "Missing moduleIndex or pageIndex")
	}
	if input.PageType == "" {
		return utils.BadRequest(c, "Missing pageType")
	}
	if !models.ValidPageType(input.PageType) {
		return utils.BadRequest(c, "Invalid pageType: "+input.PageType)
	}

	completion := models.PageCompletion{
		UserID:      input.UserID,
		CourseID:    input.CourseID,
		ModuleIndex: *input.ModuleIndex,
		PageIndex:   *input.PageIndex,
		PageType:    input.PageType,
	}
	if len(input.Data) > 0 && string(input.Data) != "null" {
		completion.Data = datatypes.JSON(input.Data)
	}

	if err := cc.DB.Create(&completion).Error; err != nil {
		return utils.Internal(c, "Could not save completion")
	}

	return c.JSON(fiber.Map{"id": completion.ID})
}

func (cc *CompletionsController) ListCompletions(c *fiber.Ctx) error {
	userID, err := strconv.Atoi(c.Params("userId"))
	if err != nil {
		return utils.BadRequest(c, "Invalid user ID")
	}

	completions := []models.PageCompletion{}
	err = cc.DB.
		Where("user_id = ? AND course_id = ?", userID, c.Params("courseId")).
		Order("completed_at DESC, id DESC").
		Find(&completions).Error
	if err != nil {
		return utils.Internal(c, "Could not query database")
	}

	return c.JSON(completions)
}

// completionRow is one page_completions row joined with its course title.
type completionRow struct {
	ID          uint
	CourseID    string
	CourseTitle string
	ModuleIndex int
	PageIndex   int
	Data        datatypes.JSON
	CompletedAt time.Time
}

func (cc *CompletionsController) completionsByType(userID int, pageType string) ([]completionRow, error) {
	rows := []completionRow{}
	err := cc.DB.
		Table("page_completions").
		Select("page_completions.id, page_completions.course_id, courses.title AS course_title, page_completions.module_index, page_completions.page_index, page_completions.data, page_completions.completed_at").
		Joins("JOIN courses ON courses.id = page_completions.course_id").
		Where("page_completions.user_id = ? AND page_completions.page_type = ?", userID, pageType).
		Order("page_completions.completed_at DESC, page_completions.id DESC").
		Scan(&rows).Error
	return rows, err
}

func (cc *CompletionsController) GetJournal(c *fiber.Ctx) error {
	userID, err := strconv.Atoi(c.Params("userId"))
	if err != nil {
		return utils.BadRequest(c, "Invalid user ID")
	}

	rows, err := cc.completionsByType(userID, models.PageTypeJournal)
	if err != nil {
		return utils.Internal(c, "Could not query database")
	}

	entries := make([]models.JournalEntry, 0, len(rows))
	for _, r := range rows {
		var payload struct {
			Content string `json:"content"`
		}
		if len(r.Data) > 0 {
			_ = json.Unmarshal(r.Data, &payload)
		}
		entries = append(entries, models.JournalEntry{
			ID:          r.ID,
			CourseID:    r.CourseID,
			CourseTitle: r.CourseTitle,
			ModuleIndex: r.ModuleIndex,
			PageIndex:   r.PageIndex,
			Content:     payload.Content,
			CompletedAt: r.CompletedAt,
		})
	}

	return c.JSON(entries)
}

func (cc *CompletionsController) GetQuizHistory(c *fiber.Ctx) error {
	userID, err := strconv.Atoi(c.Params("userId"))
	if err != nil {
		return utils.BadRequest(c, "Invalid user ID")
	}

	rows, err := cc.completionsByType(userID, models.PageTypeQuiz)
	if err != nil {
		return utils.Internal(c, "Could not query database")
	}

	attempts := make([]models.QuizAttempt, 0, len(rows))
	for _, r := range rows {
		var payload struct {
			SelectedIndex *int  `json:"selectedIndex"`
			IsCorrect     *bool `json:"isCorrect"`
		}
		if len(r.Data) > 0 {
			_ = json.Unmarshal(r.Data, &payload)
		}
		attempts = append(attempts, models.QuizAttempt{
			ID:            r.ID,
			CourseID:      r.CourseID,
			CourseTitle:   r.CourseTitle,
			ModuleIndex:   r.ModuleIndex,
			PageIndex:     r.PageIndex,
			SelectedIndex: payload.SelectedIndex,
			IsCorrect:     payload.IsCorrect,
			CompletedAt:   r.CompletedAt,
		})
	}

	return c.JSON(attempts)
}
