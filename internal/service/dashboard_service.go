package service

import (
	"context"
	"interview_prep_backend/internal/model"
	"interview_prep_backend/pkg/logger"
	"sort"
	"time"

	"go.uber.org/zap"
)

const (
	weakScoreThreshold = 2
	maxWeakPoints      = 5
)

// WeakPoint 最近作答且得分不高于阈值的题目
type WeakPoint struct {
	QuestionID   uint      `json:"questionId"`
	QuestionText string    `json:"questionText"`
	Score        int       `json:"score"`
	SubmittedAt  time.Time `json:"submittedAt"`
}

type DashboardSummary struct {
	AverageScore           float64     `json:"averageScore"`
	QuestionsAnsweredCount int         `json:"questionsAnsweredCount"`
	LowScoreQuestions      []WeakPoint `json:"lowScoreQuestions"`
}

// Summarize 汇总已评分答案（需预加载 Question），无分数的答案跳过
func Summarize(answers []model.Answer) DashboardSummary {
	summary := DashboardSummary{LowScoreQuestions: []WeakPoint{}}

	var (
		sum  int
		weak []model.Answer
	)
	for _, a := range answers {
		if a.Score == nil {
			continue
		}
		sum += *a.Score
		summary.QuestionsAnsweredCount++
		if *a.Score <= weakScoreThreshold {
			weak = append(weak, a)
		}
	}
	if summary.QuestionsAnsweredCount == 0 {
		return summary
	}
	summary.AverageScore = float64(sum) / float64(summary.QuestionsAnsweredCount)

	sort.SliceStable(weak, func(i, j int) bool {
		return weak[i].SubmittedAt.After(weak[j].SubmittedAt)
	})
	if len(weak) > maxWeakPoints {
		weak = weak[:maxWeakPoints]
	}

	for _, a := range weak {
		wp := WeakPoint{
			QuestionID:  a.QuestionID,
			Score:       *a.Score,
			SubmittedAt: a.SubmittedAt,
		}
		if a.Question != nil {
			wp.QuestionText = a.Question.Text
		}
		summary.LowScoreQuestions = append(summary.LowScoreQuestions, wp)
	}
	return summary
}

type ScoredAnswerStore interface {
	FindScoredByUser(userID uint) ([]model.Answer, error)
}

// SummaryCache 按用户缓存统计结果，未命中时返回 (nil, nil)
type SummaryCache interface {
	Get(ctx context.Context, userID uint) (*DashboardSummary, error)
	Set(ctx context.Context, userID uint, summary DashboardSummary) error
	Invalidate(ctx context.Context, userID uint) error
}

type DashboardService struct {
	Answers ScoredAnswerStore
	Cache   SummaryCache
}

func NewDashboardService(answers ScoredAnswerStore, cache SummaryCache) *DashboardService {
	return &DashboardService{Answers: answers, Cache: cache}
}

func (s *DashboardService) GetDashboard(ctx context.Context, userID uint) (*DashboardSummary, error) {
	if s.Cache != nil {
		cached, err := s.Cache.Get(ctx, userID)
		if err != nil {
			logger.Log.Warn("Dashboard cache read failed", zap.Uint("userID", userID), zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	answers, err := s.Answers.FindScoredByUser(userID)
	if err != nil {
		return nil, err
	}
	summary := Summarize(answers)

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, userID, summary); err != nil {
			logger.Log.Warn("Dashboard cache write failed", zap.Uint("userID", userID), zap.Error(err))
		}
	}
	return &summary, nil
}
