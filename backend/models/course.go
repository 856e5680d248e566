package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
)

// Recognized page type tags. Anything else is rejected at the API boundary.
const (
	PageTypeInfo     = "info"
	PageTypeVideo    = "video"
	PageTypeQuiz     = "quiz"
	PageTypeJournal  = "journal"
	PageTypeCheckbox = "checkbox"
)

func ValidPageType(t string) bool {
	switch t {
	case PageTypeInfo, PageTypeVideo, PageTypeQuiz, PageTypeJournal, PageTypeCheckbox:
		return true
	}
	return false
}

var ErrInvalidCourse = errors.New("invalid course structure")

// CourseDocument is the typed view of a stored course blob. Fields beyond
// these are accepted and kept in the verbatim blob but are invisible here.
type CourseDocument struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Modules     []CourseModule `json:"modules"`
}

type CourseModule struct {
	Title string       `json:"title,omitempty"`
	Pages []CoursePage `json:"pages"`
}

// CoursePage carries the union of per-type fields; which ones are meaningful
// depends on Type.
type CoursePage struct {
	Type         string   `json:"type"`
	Title        string   `json:"title,omitempty"`
	Content      string   `json:"content,omitempty"`
	URL          string   `json:"url,omitempty"`
	Question     string   `json:"question,omitempty"`
	Options      []string `json:"options,omitempty"`
	CorrectIndex int      `json:"correctIndex,omitempty"`
	Prompt       string   `json:"prompt,omitempty"`
	Placeholder  string   `json:"placeholder,omitempty"`
}

// ParseCourseDocument validates the shape of a course document: id and title
// must be non-empty strings and modules must be a JSON array. It returns
// ErrInvalidCourse (or the decode error) when the document fails those checks.
func ParseCourseDocument(data []byte) (*CourseDocument, error) {
	var probe struct {
		ID      string          `json:"id"`
		Title   string          `json:"title"`
		Modules json.RawMessage `json:"modules"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, ErrInvalidCourse
	}
	if strings.TrimSpace(probe.ID) == "" || strings.TrimSpace(probe.Title) == "" {
		return nil, ErrInvalidCourse
	}
	modules := bytes.TrimSpace(probe.Modules)
	if len(modules) == 0 || modules[0] != '[' {
		return nil, ErrInvalidCourse
	}

	var doc CourseDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, ErrInvalidCourse
	}
	doc.ID = strings.TrimSpace(doc.ID)
	doc.Title = strings.TrimSpace(doc.Title)
	return &doc, nil
}
