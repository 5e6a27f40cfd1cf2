package service

import (
	"context"
	"errors"
	"fmt"
	"interview_prep_backend/internal/config"
	"interview_prep_backend/internal/util"
	"strings"
	"sync"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// GeminiService 使用 Google Gemini 评估答案和生成题目
type GeminiService struct {
	mu     sync.RWMutex
	client *genai.Client
	config config.AIConfig
}

func NewGeminiService(ctx context.Context, cfg config.AIConfig) (*GeminiService, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, errors.New("gemini_api_key is not set")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiAPIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiService{client: client, config: cfg}, nil
}

// UpdateConfig 热更新模型名称和超时，API Key 绑定在客户端上，修改需重启
func (s *GeminiService) UpdateConfig(cfg config.AIConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cfg.GeminiAPIKey = s.config.GeminiAPIKey
	s.config = cfg
}

func (s *GeminiService) Close() error {
	return s.client.Close()
}

func (s *GeminiService) Evaluate(ctx context.Context, questionText, answerText string) (string, error) {
	return s.generate(ctx, opEvaluate, evaluatorSystemPrompt, evaluationPrompt(questionText, answerText))
}

func (s *GeminiService) GenerateQuestions(ctx context.Context, req GenerateQuestionsRequest) (string, error) {
	return s.generate(ctx, opGenerate, generatorSystemPrompt, generationPrompt(req))
}

func (s *GeminiService) generate(ctx context.Context, op, system, prompt string) (string, error) {
	s.mu.RLock()
	cfg := s.config
	s.mu.RUnlock()

	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout())
	defer cancel()

	model := s.client.GenerativeModel(cfg.GeminiModel)
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(system)}}
	if cfg.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(cfg.MaxTokens))
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", &util.EvaluatorError{Op: op, StatusCode: apiStatus(err), Err: err}
	}

	text, err := candidateText(resp)
	if err != nil {
		return "", &util.EvaluatorError{Op: op, Err: err}
	}
	return text, nil
}

// apiStatus 从 googleapi.Error 中取 HTTP 状态码，其他错误返回 0
func apiStatus(err error) int {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	return 0
}

// candidateText 拼接第一个候选结果中的文本片段
func candidateText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", errors.New("gemini returned no text content")
	}
	return text, nil
}
