package model

type QuestionSetStatus string

const (
	QuestionSetDraft     QuestionSetStatus = "DRAFT"
	QuestionSetPublished QuestionSetStatus = "PUBLISHED"
)

// QuestionSet 生成的题集，删除时级联删除题目及其答案
// swagger:model QuestionSet
type QuestionSet struct {
	BaseModel
	Name        string            `gorm:"size:255;not null" json:"name"`
	Type        string            `gorm:"size:100" json:"type"`
	Difficulty  string            `gorm:"size:50" json:"difficulty"`
	Tags        string            `gorm:"size:255" json:"tags"`
	Status      QuestionSetStatus `gorm:"size:20;not null;default:'DRAFT'" json:"status"`
	CreatedByID uint              `gorm:"index" json:"createdById"`
	CreatedBy   *User             `gorm:"foreignKey:CreatedByID;constraint:OnDelete:CASCADE" json:"-"`
	Questions   []Question        `gorm:"foreignKey:QuestionSetID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
}

func (QuestionSet) TableName() string {
	return "question_sets"
}
