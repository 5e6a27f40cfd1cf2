package repository

import (
	"errors"
	"interview_prep_backend/internal/model"
	"interview_prep_backend/internal/util"
	"strings"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

type QuestionFilter struct {
	Type       string
	Difficulty string
	Page       int // 从 0 开始
	Size       int
}

func (r *QuestionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	err := r.DB.First(&question, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrQuestionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &question, nil
}

// List 按类型、难度（忽略大小写的包含匹配）分页查询题目
func (r *QuestionRepository) List(filter QuestionFilter) ([]model.Question, int64, error) {
	query := r.DB.Model(&model.Question{})
	if t := strings.TrimSpace(filter.Type); t != "" {
		query = query.Where("LOWER(type) LIKE ?", "%"+strings.ToLower(t)+"%")
	}
	if d := strings.TrimSpace(filter.Difficulty); d != "" {
		query = query.Where("LOWER(difficulty) LIKE ?", "%"+strings.ToLower(d)+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var questions []model.Question
	err := query.Order("id ASC").
		Offset(filter.Page * filter.Size).
		Limit(filter.Size).
		Find(&questions).Error
	return questions, total, err
}

func (r *QuestionRepository) FindBySet(setID uint) ([]model.Question, error) {
	var questions []model.Question
	err := r.DB.Where("question_set_id = ?", setID).Order("id ASC").Find(&questions).Error
	return questions, err
}
