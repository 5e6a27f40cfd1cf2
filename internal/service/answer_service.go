package service

import (
	"context"
	"encoding/base64"
	"errors"
	"interview_prep_backend/internal/model"
	"interview_prep_backend/internal/util"
	"interview_prep_backend/pkg/logger"
	"interview_prep_backend/pkg/monitoring"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

type AnswerStore interface {
	FindByUserAndQuestion(userID, questionID uint) (*model.Answer, error)
	Save(answer *model.Answer) error
	FindScoredByUser(userID uint) ([]model.Answer, error)
}

type QuestionFinder interface {
	FindByID(id uint) (*model.Question, error)
}

type UserFinder interface {
	FindByID(id uint) (*model.User, error)
}

// Evaluator 评估答案，返回大模型的原始文本
type Evaluator interface {
	Evaluate(ctx context.Context, questionText, answerText string) (string, error)
}

// MediaStore 保存答题音视频，Store 返回对象 key 与访问 URL
type MediaStore interface {
	Store(ctx context.Context, data []byte, filename, contentType string) (key, url string, err error)
	Remove(ctx context.Context, key string) error
}

// MediaProber 读取上传音视频的元数据
type MediaProber func(data []byte, ext string) (*util.MediaInfo, error)

type AnswerRequest struct {
	QuestionID uint             `json:"questionId" validate:"required"`
	AnswerType model.AnswerType `json:"answerType" validate:"required,oneof=TEXT AUDIO VIDEO"`
	AnswerText string           `json:"answerText"`
	FileBase64 string           `json:"fileBase64"`
	FileType   string           `json:"fileType"`
	Filename   string           `json:"filename"`
}

type AnswerService struct {
	Answers   AnswerStore
	Questions QuestionFinder
	Users     UserFinder
	Evaluator Evaluator
	Media     MediaStore
	Probe     MediaProber
	Cache     SummaryCache

	now func() time.Time
}

func NewAnswerService(answers AnswerStore, questions QuestionFinder, users UserFinder, evaluator Evaluator, media MediaStore) *AnswerService {
	return &AnswerService{
		Answers:   answers,
		Questions: questions,
		Users:     users,
		Evaluator: evaluator,
		Media:     media,
		now:       time.Now,
	}
}

// submission 用户提交的答案内容
type submission struct {
	Text          string
	FileURL       string
	MediaKey      string
	AnswerType    model.AnswerType
	MediaDuration *float64
}

// applySubmission 将提交内容写入已有答案（不存在时新建），并清空之前的评估结果
func applySubmission(existing *model.Answer, userID, questionID uint, sub submission, now time.Time) (*model.Answer, bool) {
	answer := existing
	isUpdate := existing != nil
	if !isUpdate {
		answer = &model.Answer{UserID: userID, QuestionID: questionID}
	}

	answer.Text = sub.Text
	answer.FileURL = sub.FileURL
	answer.AnswerType = sub.AnswerType
	answer.MediaDuration = sub.MediaDuration
	answer.SubmittedAt = now
	answer.Evaluation = model.Evaluation{}
	return answer, isUpdate
}

// SubmitAnswer 创建或覆盖用户对某题的答案并进行评估
// 评估失败不影响提交，答案以占位反馈保存
func (s *AnswerService) SubmitAnswer(ctx context.Context, userID uint, req AnswerRequest) (*model.Answer, bool, error) {
	req.AnswerType = req.AnswerType.Normalize()
	if !req.AnswerType.Valid() {
		return nil, false, util.ErrInvalidAnswerType
	}

	question, err := s.Questions.FindByID(req.QuestionID)
	if err != nil {
		return nil, false, err
	}
	if _, err := s.Users.FindByID(userID); err != nil {
		return nil, false, err
	}

	existing, err := s.Answers.FindByUserAndQuestion(userID, question.ID)
	if err != nil {
		return nil, false, err
	}

	sub := submission{Text: req.AnswerText, AnswerType: req.AnswerType}
	if req.AnswerType.IsMedia() {
		if err := s.storeMedia(ctx, req, &sub); err != nil {
			return nil, false, err
		}
	}

	answer, isUpdate := applySubmission(existing, userID, question.ID, sub, s.now())
	if err := s.Answers.Save(answer); err != nil {
		s.discardMedia(ctx, sub.MediaKey)
		return nil, false, err
	}
	answer.Question = question

	answer.Evaluation = s.evaluate(ctx, question.Text, answer.Text)
	if err := s.Answers.Save(answer); err != nil {
		return nil, false, err
	}

	if s.Cache != nil {
		if err := s.Cache.Invalidate(ctx, userID); err != nil {
			logger.Log.Warn("Dashboard cache invalidation failed", zap.Uint("userID", userID), zap.Error(err))
		}
	}

	logger.Log.Info("Answer submitted",
		zap.Uint("userID", userID),
		zap.Uint("questionID", question.ID),
		zap.Bool("update", isUpdate),
		zap.Bool("scored", answer.Score != nil),
	)
	return answer, isUpdate, nil
}

// evaluate 调用评估器并解析结果；评估器出错或 panic 时返回占位反馈
func (s *AnswerService) evaluate(ctx context.Context, questionText, answerText string) (eval model.Evaluation) {
	unavailable := func() model.Evaluation {
		monitoring.RecordEvaluation(monitoring.OutcomeEvaluatorError)
		return model.Evaluation{Feedback: util.StringPtr(util.FeedbackUnavailable)}
	}
	defer func() {
		if r := recover(); r != nil {
			logger.Log.Error("Answer evaluation panicked", zap.Any("panic", r))
			eval = unavailable()
		}
	}()

	raw, err := s.Evaluator.Evaluate(ctx, questionText, answerText)
	if err != nil {
		logger.Log.Error("Answer evaluation failed", zap.Error(err))
		return unavailable()
	}
	monitoring.RecordEvaluation(monitoring.OutcomeSuccess)
	return ParseFeedback(raw)
}

func (s *AnswerService) storeMedia(ctx context.Context, req AnswerRequest, sub *submission) error {
	data, err := decodeMediaPayload(req.FileBase64)
	if err != nil {
		return &util.StorageError{Op: util.StorageOpDecode, Err: err}
	}

	contentType := util.DetectMimeType(data, req.FileType)
	key, url, err := s.Media.Store(ctx, data, req.Filename, contentType)
	if err != nil {
		return &util.StorageError{Op: util.StorageOpUpload, Err: err}
	}
	sub.MediaKey = key
	sub.FileURL = url

	if s.Probe != nil {
		info, err := s.Probe(data, filepath.Ext(req.Filename))
		if err != nil {
			logger.Log.Warn("Read media metadata failed", zap.String("filename", req.Filename), zap.Error(err))
		} else {
			sub.MediaDuration = &info.Duration
		}
	}
	return nil
}

// discardMedia 删除已上传但未被任何答案引用的文件
func (s *AnswerService) discardMedia(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := s.Media.Remove(ctx, key); err != nil {
		logger.Log.Warn("Failed to remove orphaned media", zap.String("key", key), zap.Error(err))
	}
}

var errEmptyPayload = errors.New("empty file payload")

// decodeMediaPayload 支持纯 base64 或 data URL
func decodeMediaPayload(payload string) ([]byte, error) {
	payload = strings.TrimSpace(payload)
	if strings.HasPrefix(payload, "data:") {
		if i := strings.Index(payload, ","); i >= 0 {
			payload = payload[i+1:]
		}
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, errEmptyPayload
	}
	return data, nil
}

// GetAnswer 获取用户对某题的答案，未作答时返回 nil
func (s *AnswerService) GetAnswer(userID, questionID uint) (*model.Answer, error) {
	return s.Answers.FindByUserAndQuestion(userID, questionID)
}
