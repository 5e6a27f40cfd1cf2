package service

import (
	"fmt"
	"interview_prep_backend/internal/model"
	"interview_prep_backend/internal/util"
	"interview_prep_backend/pkg/logger"
	"interview_prep_backend/pkg/monitoring"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// 评估文本模板：
//
//	Score (overall, out of 5): 4
//	Correctness (0–5): 4
//	Completeness (0–5): 3
//	Clarity (0–5): 5
//	Feedback: Good structure, add an example.

type parseState int

const (
	headerScan parseState = iota
	commentary
)

const feedbackMarker = "Feedback:"

// scoreFields 按顺序匹配，第一个命中的前缀生效
var scoreFields = []struct {
	prefix string
	target func(*model.Evaluation) **int
}{
	{"Score", func(e *model.Evaluation) **int { return &e.Score }},
	{"Correctness", func(e *model.Evaluation) **int { return &e.Correctness }},
	{"Completeness", func(e *model.Evaluation) **int { return &e.Completeness }},
	{"Clarity", func(e *model.Evaluation) **int { return &e.Clarity }},
}

// ParseFeedback 将评估器原始输出解析为 Evaluation，不会失败：
// 格式不对的行对应字段留空，内部异常时以原文作为反馈、不带分数
func ParseFeedback(raw string) model.Evaluation {
	return parseWithFallback(raw, parseFeedback)
}

func parseWithFallback(raw string, parse func(string) (model.Evaluation, error)) model.Evaluation {
	eval, err := safeParse(raw, parse)
	if err != nil {
		logger.Log.Warn("Feedback parse fell back to raw text", zap.Error(err))
		monitoring.ParseFallbackCounter.Inc()
		return model.Evaluation{Feedback: &raw}
	}
	return eval
}

func safeParse(raw string, parse func(string) (model.Evaluation, error)) (eval model.Evaluation, err error) {
	defer func() {
		if r := recover(); r != nil {
			eval = model.Evaluation{}
			err = fmt.Errorf("%w: %v", util.ErrParseAnomaly, r)
		}
	}()
	return parse(raw)
}

func parseFeedback(raw string) (model.Evaluation, error) {
	var (
		eval         model.Evaluation
		state        = headerScan
		buf          strings.Builder
		sawScoreLine bool
	)

	for _, line := range strings.Split(raw, "\n") {
		switch state {
		case headerScan:
			if target, ok := matchScoreField(line, &eval); ok {
				*target = extractScore(line)
				sawScoreLine = true
				continue
			}
			if strings.HasPrefix(line, feedbackMarker) {
				state = commentary
				buf.WriteString(strings.TrimSpace(strings.TrimPrefix(line, feedbackMarker)))
			}
		case commentary:
			trimmed := strings.TrimSpace(line)
			if trimmed == "" {
				continue
			}
			if buf.Len() > 0 {
				buf.WriteByte(' ')
			}
			buf.WriteString(trimmed)
		default:
			return model.Evaluation{}, fmt.Errorf("%w: unknown state %d", util.ErrParseAnomaly, state)
		}
	}

	if text := strings.TrimSpace(buf.String()); text != "" {
		eval.Feedback = &text
		return eval, nil
	}

	// 既没有评分行也没有 Feedback 标记时，保留整段原文
	if !sawScoreLine && state == headerScan {
		if text := strings.TrimSpace(raw); text != "" {
			eval.Feedback = &text
		}
	}
	return eval, nil
}

func matchScoreField(line string, eval *model.Evaluation) (**int, bool) {
	for _, f := range scoreFields {
		if strings.HasPrefix(line, f.prefix) {
			return f.target(eval), true
		}
	}
	return nil, false
}

// extractScore 读取第一个与第二个冒号之间的第一段数字，没有或溢出时返回 nil
func extractScore(line string) *int {
	parts := strings.SplitN(line, ":", 3)
	if len(parts) < 2 {
		return nil
	}
	segment := parts[1]

	start := strings.IndexFunc(segment, isDigit)
	if start < 0 {
		return nil
	}
	end := start
	for end < len(segment) && isDigit(rune(segment[end])) {
		end++
	}

	n, err := strconv.Atoi(segment[start:end])
	if err != nil {
		return nil
	}
	return &n
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
