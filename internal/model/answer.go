package model

import (
	"strings"
	"time"
)

type AnswerType string

const (
	AnswerTypeText  AnswerType = "TEXT"
	AnswerTypeAudio AnswerType = "AUDIO"
	AnswerTypeVideo AnswerType = "VIDEO"
)

// Normalize 去除空白并转为大写，客户端可提交 "audio" 等小写形式
func (t AnswerType) Normalize() AnswerType {
	return AnswerType(strings.ToUpper(strings.TrimSpace(string(t))))
}

// Valid 判断是否为 TEXT/AUDIO/VIDEO 之一
func (t AnswerType) Valid() bool {
	switch t {
	case AnswerTypeText, AnswerTypeAudio, AnswerTypeVideo:
		return true
	}
	return false
}

// IsMedia 是否为音视频答案
func (t AnswerType) IsMedia() bool {
	return t == AnswerTypeAudio || t == AnswerTypeVideo
}

// Evaluation AI评估结果，nil 表示评估输出中缺失或无法读取，不会默认为 0
type Evaluation struct {
	Score        *int    `json:"score"`
	Correctness  *int    `json:"correctness"`
	Completeness *int    `json:"completeness"`
	Clarity      *int    `json:"clarity"`
	Feedback     *string `gorm:"type:text" json:"feedback"`
}

// HasScores 是否有任一分数字段
func (e Evaluation) HasScores() bool {
	return e.Score != nil || e.Correctness != nil || e.Completeness != nil || e.Clarity != nil
}

// Answer 用户对题目的当前答案，每个 (用户, 题目) 至多一条，重复提交会覆盖
// swagger:model Answer
type Answer struct {
	BaseModel
	UserID        uint       `gorm:"not null;uniqueIndex:idx_user_question" json:"userId"`
	User          *User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	QuestionID    uint       `gorm:"not null;uniqueIndex:idx_user_question" json:"questionId"`
	Question      *Question  `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"question,omitempty"`
	Text          string     `gorm:"type:text" json:"text"`
	FileURL       string     `gorm:"size:512" json:"fileUrl"`
	AnswerType    AnswerType `gorm:"size:10;not null;default:'TEXT'" json:"answerType"`
	SubmittedAt   time.Time  `gorm:"index" json:"submittedAt"`
	MediaDuration *float64   `json:"mediaDuration,omitempty"`
	Evaluation    `gorm:"embedded"`
}

func (Answer) TableName() string {
	return "answers"
}
