package domain

import (
	"fmt"
	"strings"

	"hindidrill/internal/platform/id"
)

// LessonID identifies a lesson. The backend may send it as a number or a
// string; it is compared as text.
type LessonID = id.Opaque

type Lesson struct {
	ID          LessonID `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
}

func (l Lesson) Validate() error {
	if strings.TrimSpace(string(l.ID)) == "" {
		return fmt.Errorf("lesson id is required")
	}
	if strings.TrimSpace(l.Name) == "" {
		return fmt.Errorf("lesson %s: name is required", l.ID)
	}
	return nil
}

// Dedupe keeps the first lesson seen for each name, in input order.
func Dedupe(lessons []Lesson) []Lesson {
	seen := make(map[string]struct{}, len(lessons))
	out := make([]Lesson, 0, len(lessons))
	for _, lesson := range lessons {
		if _, ok := seen[lesson.Name]; ok {
			continue
		}
		seen[lesson.Name] = struct{}{}
		out = append(out, lesson)
	}
	return out
}

// Find returns the lesson with the given id.
func Find(lessons []Lesson, lessonID LessonID) (Lesson, bool) {
	for _, lesson := range lessons {
		if lesson.ID == lessonID {
			return lesson, true
		}
	}
	return Lesson{}, false
}
