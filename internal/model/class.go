package model

// Class 年级（层级根节点），class_number 为自然键
type Class struct {
	BaseModel
	ClassNumber int    `gorm:"uniqueIndex;not null" json:"class_number"`
	Name        string `gorm:"size:255;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`

	ClassSubjects []ClassSubject `gorm:"foreignKey:ClassID" json:"-"`
}

func (Class) TableName() string {
	return "classes"
}
