package dto

type LessonOutput struct {
	ID          string
	Name        string
	Description string
}
