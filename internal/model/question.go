package model

// swagger:model Question
type Question struct {
	BaseModel
	Text          string `gorm:"type:text;not null" json:"text"`
	Type          string `gorm:"size:100;index" json:"type"`
	Difficulty    string `gorm:"size:50;index" json:"difficulty"`
	Tags          string `gorm:"size:255" json:"tags"`
	QuestionSetID *uint  `gorm:"index" json:"questionSetId,omitempty"`
}

func (Question) TableName() string {
	return "questions"
}
