package service

import (
	"context"
	"fmt"
	"interview_prep_backend/internal/model"
	"interview_prep_backend/internal/repository"
	"interview_prep_backend/internal/util"
	"interview_prep_backend/pkg/logger"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// QuestionGenerator 让大模型生成带编号的题目列表
type QuestionGenerator interface {
	GenerateQuestions(ctx context.Context, req GenerateQuestionsRequest) (string, error)
}

type GenerateQuestionsRequest struct {
	Type       string
	Difficulty string
	Quantity   int
}

type QuestionSetRequest struct {
	Name       string `json:"name" validate:"required"`
	Type       string `json:"type" validate:"required"`
	Difficulty string `json:"difficulty" validate:"required"`
	Tags       string `json:"tags"`
	Quantity   int    `json:"quantity" validate:"required,min=1,max=50"`
}

type QuestionLister interface {
	FindByID(id uint) (*model.Question, error)
	List(filter repository.QuestionFilter) ([]model.Question, int64, error)
	FindBySet(setID uint) ([]model.Question, error)
}

type QuestionSetStore interface {
	Create(set *model.QuestionSet) error
	FindByID(id uint) (*model.QuestionSet, error)
}

type QuestionService struct {
	Questions QuestionLister
	Sets      QuestionSetStore
	Generator QuestionGenerator
}

func NewQuestionService(questions QuestionLister, sets QuestionSetStore, generator QuestionGenerator) *QuestionService {
	return &QuestionService{Questions: questions, Sets: sets, Generator: generator}
}

var numberedLine = regexp.MustCompile(`^\d+\.\s`)
var numberPrefix = regexp.MustCompile(`^\d+\.\s*`)

// ParseGeneratedQuestions 仅保留 "N. 题目" 格式的行并去掉编号，其余内容丢弃
func ParseGeneratedQuestions(raw string) []string {
	var questions []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimRight(line, "\r")
		if !numberedLine.MatchString(line) {
			continue
		}
		if q := strings.TrimSpace(numberPrefix.ReplaceAllString(line, "")); q != "" {
			questions = append(questions, q)
		}
	}
	return questions
}

// GenerateQuestionSet 生成题目并保存为 userID 名下的草稿题集
func (s *QuestionService) GenerateQuestionSet(ctx context.Context, userID uint, req QuestionSetRequest) (*model.QuestionSet, error) {
	raw, err := s.Generator.GenerateQuestions(ctx, GenerateQuestionsRequest{
		Type:       req.Type,
		Difficulty: req.Difficulty,
		Quantity:   req.Quantity,
	})
	if err != nil {
		return nil, err
	}

	texts := ParseGeneratedQuestions(raw)
	if len(texts) == 0 {
		logger.Log.Warn("Generator output had no numbered questions", zap.String("raw", truncate(raw, 500)))
		return nil, util.ErrNoQuestionsGenerated
	}
	if len(texts) > req.Quantity {
		texts = texts[:req.Quantity]
	}

	set := &model.QuestionSet{
		Name:        req.Name,
		Type:        req.Type,
		Difficulty:  req.Difficulty,
		Tags:        req.Tags,
		Status:      model.QuestionSetDraft,
		CreatedByID: userID,
	}
	for _, text := range texts {
		set.Questions = append(set.Questions, model.Question{
			Text:       text,
			Type:       req.Type,
			Difficulty: req.Difficulty,
			Tags:       req.Tags,
		})
	}

	if err := s.Sets.Create(set); err != nil {
		return nil, fmt.Errorf("save question set: %w", err)
	}
	return set, nil
}

// QuestionPage 分页结果，Page/Size 为实际使用的（已修正的）分页参数
type QuestionPage struct {
	Questions []model.Question
	Total     int64
	Page      int
	Size      int
}

// ListQuestions 分页查询题目，page 小于 0 时按 0 处理，size 限制在 [1, MaxPageSize]
func (s *QuestionService) ListQuestions(page, size int, questionType, difficulty string) (*QuestionPage, error) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = util.DefaultPageSize
	}
	if size > util.MaxPageSize {
		size = util.MaxPageSize
	}

	questions, total, err := s.Questions.List(repository.QuestionFilter{
		Type:       questionType,
		Difficulty: difficulty,
		Page:       page,
		Size:       size,
	})
	if err != nil {
		return nil, err
	}
	return &QuestionPage{Questions: questions, Total: total, Page: page, Size: size}, nil
}

func (s *QuestionService) ListQuestionsBySet(setID uint) ([]model.Question, error) {
	if _, err := s.Sets.FindByID(setID); err != nil {
		return nil, err
	}
	return s.Questions.FindBySet(setID)
}
