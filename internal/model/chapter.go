package model

// Chapter 章节，chapter_number 在所属 ClassSubject 内唯一
type Chapter struct {
	ID             uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	ClassSubjectID uint   `gorm:"not null;uniqueIndex:idx_chapter_number" json:"class_subject_id"`
	ChapterNumber  int    `gorm:"not null;uniqueIndex:idx_chapter_number" json:"chapter_number"`
	Name           string `gorm:"size:255;not null" json:"name"`
	Description    string `gorm:"type:text" json:"description"`
	QuestionsCount int    `gorm:"not null;default:0" json:"questions_count"`

	Questions []Question `gorm:"foreignKey:ChapterID" json:"-"`
}

func (Chapter) TableName() string {
	return "chapters"
}
