package repository

import (
	"errors"
	"interview_prep_backend/internal/model"
	"interview_prep_backend/internal/util"

	"gorm.io/gorm"
)

type QuestionSetRepository struct {
	DB *gorm.DB
}

func NewQuestionSetRepository(db *gorm.DB) *QuestionSetRepository {
	return &QuestionSetRepository{DB: db}
}

// Create 在同一事务中保存题集及其题目
func (r *QuestionSetRepository) Create(set *model.QuestionSet) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		questions := set.Questions
		set.Questions = nil
		if err := tx.Create(set).Error; err != nil {
			return err
		}
		for i := range questions {
			questions[i].QuestionSetID = &set.ID
		}
		if len(questions) > 0 {
			if err := tx.Create(&questions).Error; err != nil {
				return err
			}
		}
		set.Questions = questions
		return nil
	})
}

func (r *QuestionSetRepository) FindByID(id uint) (*model.QuestionSet, error) {
	var set model.QuestionSet
	err := r.DB.First(&set, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrQuestionSetNotFound
	}
	if err != nil {
		return nil, err
	}
	return &set, nil
}
