package model

import "time"

// 以下为列表接口的投影行，计数字段始终存在，缺省为 0

type ClassSummary struct {
	ID             uint      `gorm:"column:id" json:"id"`
	ClassNumber    int       `gorm:"column:class_number" json:"class_number"`
	Name           string    `gorm:"column:name" json:"name"`
	Description    string    `gorm:"column:description" json:"description"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"created_at"`
	SubjectsCount  int64     `gorm:"column:subjects_count" json:"subjects_count"`
	TotalQuestions int64     `gorm:"column:total_questions" json:"total_questions"`
}

type SubjectListing struct {
	ID             uint   `gorm:"column:id" json:"id"`
	Name           string `gorm:"column:name" json:"name"`
	Slug           string `gorm:"column:slug" json:"slug"`
	ChaptersCount  int    `gorm:"column:chapters_count" json:"chapters_count"`
	QuestionsCount int    `gorm:"column:questions_count" json:"questions_count"`
}

type ChapterListing struct {
	ID             uint   `gorm:"column:id" json:"id"`
	ChapterNumber  int    `gorm:"column:chapter_number" json:"chapter_number"`
	Name           string `gorm:"column:name" json:"name"`
	Description    string `gorm:"column:description" json:"description"`
	QuestionsCount int    `gorm:"column:questions_count" json:"questions_count"`
}

type QuestionListing struct {
	ID              uint            `gorm:"column:id" json:"id"`
	QuestionNumber  int             `gorm:"column:question_number" json:"question_number"`
	QuestionText    string          `gorm:"column:question_text" json:"question_text"`
	AnswerText      string          `gorm:"column:answer_text" json:"answer_text"`
	DifficultyLevel DifficultyLevel `gorm:"column:difficulty_level" json:"difficulty_level"`
	ChapterName     string          `gorm:"column:chapter_name" json:"chapter_name"`
}

// CountMismatch 冗余计数与实际子记录数不一致的记录
type CountMismatch struct {
	Scope    string `json:"scope"`
	RowID    uint   `json:"row_id"`
	Field    string `json:"field"`
	Stored   int64  `json:"stored"`
	Actual   int64  `json:"actual"`
	Location string `json:"location"`
}
