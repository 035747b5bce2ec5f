package model

// ClassSubject 年级-学科关联，携带由内容导入流程维护的冗余计数
type ClassSubject struct {
	ID             uint `gorm:"primaryKey;autoIncrement" json:"id"`
	ClassID        uint `gorm:"not null;uniqueIndex:idx_class_subject" json:"class_id"`
	SubjectID      uint `gorm:"not null;uniqueIndex:idx_class_subject" json:"subject_id"`
	ChaptersCount  int  `gorm:"not null;default:0" json:"chapters_count"`
	QuestionsCount int  `gorm:"not null;default:0" json:"questions_count"`

	Chapters []Chapter `gorm:"foreignKey:ClassSubjectID" json:"-"`
}

func (ClassSubject) TableName() string {
	return "class_subjects"
}
