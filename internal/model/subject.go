package model

// Subject 学科，可被多个年级共享
type Subject struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"size:255;not null" json:"name"`
	Slug string `gorm:"size:100;uniqueIndex;not null" json:"slug"`
}

func (Subject) TableName() string {
	return "subjects"
}
