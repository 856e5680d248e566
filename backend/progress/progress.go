// Package progress folds a user's completion log into a per-module summary
// for one course. Derivation is a pure function of the course document and
// the event history; it is recomputed on every read rather than maintained
// incrementally, which keeps the write path a plain append.
package progress

import (
	"fmt"

	"companion/backend/models"
)

type ModuleProgress struct {
	ModuleIndex    int    `json:"moduleIndex"`
	Title          string `json:"title"`
	TotalPages     int    `json:"totalPages"`
	CompletedPages int    `json:"completedPages"`
	IsComplete     bool   `json:"isComplete"`
}

type CourseProgress struct {
	CourseID        string           `json:"courseId"`
	Modules         []ModuleProgress `json:"modules"`
	NextModuleIndex int              `json:"nextModuleIndex"`
	TotalPages      int              `json:"totalPages"`
	CompletedPages  int              `json:"completedPages"`
}

type coordinate struct {
	module int
	page   int
}

// Derive computes the completion summary for one (user, course) pair.
//
// A page counts as completed when at least one event exists for its
// (moduleIndex, pageIndex) coordinate; event payloads and quiz correctness are
// deliberately ignored. Coordinates that point outside the current course
// structure are skipped without error, so the aggregate counts only pages the
// course actually has. A module is complete when it has at least one page and
// all of them are completed. NextModuleIndex is the first incomplete module,
// or the last module when everything is done (0 for an empty course).
func Derive(course models.CourseDocument, completions []models.PageCompletion) CourseProgress {
	completed := make(map[coordinate]struct{}, len(completions))
	for _, c := range completions {
		completed[coordinate{module: c.ModuleIndex, page: c.PageIndex}] = struct{}{}
	}

	summary := CourseProgress{
		CourseID: course.ID,
		Modules:  make([]ModuleProgress, 0, len(course.Modules)),
	}

	for mi, m := range course.Modules {
		title := m.Title
		if title == "" {
			title = fmt.Sprintf("Module %d", mi+1)
		}

		total := len(m.Pages)
		done := 0
		for pi := range m.Pages {
			if _, ok := completed[coordinate{module: mi, page: pi}]; ok {
				done++
			}
		}

		summary.TotalPages += total
		summary.CompletedPages += done
		summary.Modules = append(summary.Modules, ModuleProgress{
			ModuleIndex:    mi,
			Title:          title,
			TotalPages:     total,
			CompletedPages: done,
			IsComplete:     total > 0 && done == total,
		})
	}

	summary.NextModuleIndex = nextModuleIndex(summary.Modules)
	return summary
}

func nextModuleIndex(modules []ModuleProgress) int {
	for _, m := range modules {
		if !m.IsComplete {
			return m.ModuleIndex
		}
	}
	if len(modules) == 0 {
		return 0
	}
	return len(modules) - 1
}
