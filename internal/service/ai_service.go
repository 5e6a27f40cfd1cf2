package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"interview_prep_backend/internal/config"
	"interview_prep_backend/internal/util"
	"io"
	"net/http"
	"strings"
	"sync"
)

const (
	opEvaluate = "evaluate"
	opGenerate = "generate"
)

// AIService 调用兼容 OpenAI 的 chat completions 接口
type AIService struct {
	mu     sync.RWMutex
	config config.AIConfig
	client *http.Client
}

func NewAIService(cfg config.AIConfig) *AIService {
	return &AIService{
		config: cfg,
		client: &http.Client{Timeout: cfg.Timeout()},
	}
}

// UpdateConfig 配置热更新时替换接口地址、密钥和模型
func (s *AIService) UpdateConfig(cfg config.AIConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.config = cfg
	s.client = &http.Client{Timeout: cfg.Timeout()}
}

type AIChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatCompletionRequest struct {
	Model     string          `json:"model"`
	Messages  []AIChatMessage `json:"messages"`
	MaxTokens int             `json:"max_tokens,omitempty"`
}

type ChatCompletionResponse struct {
	Choices []struct {
		Message AIChatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (s *AIService) Evaluate(ctx context.Context, questionText, answerText string) (string, error) {
	return s.complete(ctx, opEvaluate, []AIChatMessage{
		{Role: "system", Content: evaluatorSystemPrompt},
		{Role: "user", Content: evaluationPrompt(questionText, answerText)},
	})
}

func (s *AIService) GenerateQuestions(ctx context.Context, req GenerateQuestionsRequest) (string, error) {
	return s.complete(ctx, opGenerate, []AIChatMessage{
		{Role: "system", Content: generatorSystemPrompt},
		{Role: "user", Content: generationPrompt(req)},
	})
}

func (s *AIService) complete(ctx context.Context, op string, messages []AIChatMessage) (string, error) {
	s.mu.RLock()
	cfg, client := s.config, s.client
	s.mu.RUnlock()

	fail := func(status int, err error) (string, error) {
		return "", &util.EvaluatorError{Op: op, StatusCode: status, Err: err}
	}

	jsonData, err := json.Marshal(ChatCompletionRequest{
		Model:     cfg.Model,
		Messages:  messages,
		MaxTokens: cfg.MaxTokens,
	})
	if err != nil {
		return fail(0, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, strings.TrimRight(cfg.BaseURL, "/")+"/chat/completions", bytes.NewReader(jsonData))
	if err != nil {
		return fail(0, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+cfg.APIKey)

	resp, err := client.Do(req)
	if err != nil {
		return fail(0, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fail(resp.StatusCode, err)
	}

	var result ChatCompletionResponse
	decodeErr := json.Unmarshal(body, &result)

	if result.Error != nil {
		return fail(resp.StatusCode, fmt.Errorf("AI API error: %s", result.Error.Message))
	}
	if resp.StatusCode != http.StatusOK {
		return fail(resp.StatusCode, fmt.Errorf("AI API error: %s", truncate(string(body), 200)))
	}
	if decodeErr != nil {
		return fail(resp.StatusCode, decodeErr)
	}
	if len(result.Choices) == 0 {
		return fail(resp.StatusCode, errors.New("AI returned no choices"))
	}

	content := strings.TrimSpace(result.Choices[0].Message.Content)
	if content == "" {
		return fail(resp.StatusCode, errors.New("AI returned empty content"))
	}
	return content, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
