package dto

type OpenInput struct {
	Name string
}

type RecordVerifiedInput struct {
	Name     string
	LessonID string
	Word     string
}

type LessonProgressOutput struct {
	LessonID  string   `yaml:"lesson_id"`
	Verified  []string `yaml:"verified"`
	UpdatedAt string   `yaml:"updated_at"`
}

type ProfileOutput struct {
	Name                   string                 `yaml:"name"`
	PronunciationPlayCount int                    `yaml:"pronunciation_play_count"`
	VerifiedCount          int                    `yaml:"verified_count"`
	Lessons                []LessonProgressOutput `yaml:"lessons"`
	CreatedAt              string                 `yaml:"created_at"`
	UpdatedAt              string                 `yaml:"updated_at"`
}

type ExportFormat string

const (
	ExportYAML     ExportFormat = "yaml"
	ExportMarkdown ExportFormat = "markdown"
)

type ExportInput struct {
	Name   string
	Format ExportFormat
}
