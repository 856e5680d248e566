package models

import (
	"time"

	"gorm.io/datatypes"
)

type User struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

// Course stores the full course document verbatim; title and description are
// extracted at ingestion for listing without re-parsing the blob.
type Course struct {
	ID          string         `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"not null" json:"title"`
	Description string         `json:"description"`
	Data        datatypes.JSON `gorm:"not null" json:"-"`
	CreatedAt   time.Time      `json:"created_at"`
}

// UserSetting maps a user to at most one active course, last write wins.
type UserSetting struct {
	UserID         uint    `gorm:"primaryKey" json:"user_id"`
	ActiveCourseID *string `json:"active_course_id"`
	User           User    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ActiveCourse   *Course `gorm:"foreignKey:ActiveCourseID;constraint:OnDelete:SET NULL" json:"-"`
}

// PageCompletion is an append-only fact that a user engaged with a page.
// Rows are never updated or deleted; repeat attempts produce new rows.
type PageCompletion struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	UserID      uint           `gorm:"not null" json:"user_id"`
	CourseID    string         `gorm:"not null" json:"course_id"`
	ModuleIndex int            `gorm:"not null" json:"module_index"`
	PageIndex   int            `gorm:"not null" json:"page_index"`
	PageType    string         `gorm:"not null" json:"page_type"`
	Data        datatypes.JSON `json:"data"`
	CompletedAt time.Time      `gorm:"autoCreateTime" json:"completed_at"`
	User        User           `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Course      Course         `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// JournalEntry is a journal completion joined with its course title.
type JournalEntry struct {
	ID          uint      `json:"id"`
	CourseID    string    `json:"courseId"`
	CourseTitle string    `json:"courseTitle"`
	ModuleIndex int       `json:"moduleIndex"`
	PageIndex   int       `json:"pageIndex"`
	Content     string    `json:"content"`
	CompletedAt time.Time `json:"completedAt"`
}

// QuizAttempt is a quiz completion joined with its course title. SelectedIndex
// and IsCorrect are nil when the recorded payload carried neither.
type QuizAttempt struct {
	ID            uint      `json:"id"`
	CourseID      string    `json:"courseId"`
	CourseTitle   string    `json:"courseTitle"`
	ModuleIndex   int       `json:"moduleIndex"`
	PageIndex     int       `json:"pageIndex"`
	SelectedIndex *int      `json:"selectedIndex"`
	IsCorrect     *bool     `json:"isCorrect"`
	CompletedAt   time.Time `json:"completedAt"`
}
