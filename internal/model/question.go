package model

type DifficultyLevel string

const (
	DifficultyEasy   DifficultyLevel = "easy"
	DifficultyMedium DifficultyLevel = "medium"
	DifficultyHard   DifficultyLevel = "hard"
)

// Question 题目及参考答案，question_number 在章节内唯一
type Question struct {
	ID              uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	ChapterID       uint            `gorm:"not null;uniqueIndex:idx_question_number" json:"chapter_id"`
	QuestionNumber  int             `gorm:"not null;uniqueIndex:idx_question_number" json:"question_number"`
	QuestionText    string          `gorm:"type:text;not null" json:"question_text"`
	AnswerText      string          `gorm:"type:text;not null" json:"answer_text"`
	DifficultyLevel DifficultyLevel `gorm:"size:20;default:'medium'" json:"difficulty_level"`
}

func (Question) TableName() string {
	return "questions"
}
