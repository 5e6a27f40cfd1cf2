package controller

import (
	"errors"
	"interview_prep_backend/internal/util"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// respondError 将服务层错误映射为统一响应
func respondError(ctx *gin.Context, err error) {
	var (
		storageErr   *util.StorageError
		evaluatorErr *util.EvaluatorError
	)

	switch {
	case errors.Is(err, util.ErrNotFound):
		util.NotFound(ctx, capitalize(err.Error()))
	case errors.Is(err, util.ErrInvalidAnswerType):
		util.BadRequest(ctx, "Invalid answer type")
	case errors.As(err, &storageErr):
		if storageErr.Op == util.StorageOpDecode {
			util.BadRequest(ctx, "Invalid file payload")
			return
		}
		util.Error(ctx, http.StatusBadGateway, "File upload failed")
	case errors.As(err, &evaluatorErr), errors.Is(err, util.ErrNoQuestionsGenerated):
		util.Error(ctx, http.StatusBadGateway, "Question generation failed, please try again")
	default:
		util.LogInternalError(ctx, err)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
