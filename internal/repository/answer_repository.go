package repository

import (
	"errors"
	"interview_prep_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AnswerRepository struct {
	DB *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) *AnswerRepository {
	return &AnswerRepository{DB: db}
}

// FindByUserAndQuestion 查询用户对某题的答案，未提交时返回 nil
func (r *AnswerRepository) FindByUserAndQuestion(userID, questionID uint) (*model.Answer, error) {
	var answer model.Answer
	err := r.DB.Preload("Question").
		Where("user_id = ? AND question_id = ?", userID, questionID).
		First(&answer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &answer, nil
}

// Save 新增或整行覆盖答案（包括为空的评估字段），不写入关联数据
func (r *AnswerRepository) Save(answer *model.Answer) error {
	if answer.ID == 0 {
		return r.DB.Omit(clause.Associations).Create(answer).Error
	}
	return r.DB.Omit(clause.Associations).Save(answer).Error
}

// FindScoredByUser 按提交时间倒序查询用户所有已评分答案，并预加载题目
func (r *AnswerRepository) FindScoredByUser(userID uint) ([]model.Answer, error) {
	var answers []model.Answer
	err := r.DB.Preload("Question").
		Where("user_id = ? AND score IS NOT NULL", userID).
		Order("submitted_at DESC").
		Find(&answers).Error
	return answers, err
}
