package controller

import (
	"errors"
	"fmt"
	"interview_prep_backend/internal/model"
	"interview_prep_backend/internal/service"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	v.RegisterStructValidation(answerRequestValidation, service.AnswerRequest{})
	return v
}

// answerRequestValidation 文本答案需要 answerText，音视频答案需要文件内容、类型和文件名
func answerRequestValidation(sl validator.StructLevel) {
	req := sl.Current().Interface().(service.AnswerRequest)

	switch req.AnswerType {
	case model.AnswerTypeText:
		if strings.TrimSpace(req.AnswerText) == "" {
			sl.ReportError(req.AnswerText, "answerText", "AnswerText", "required_for_text", "")
		}
	case model.AnswerTypeAudio, model.AnswerTypeVideo:
		if strings.TrimSpace(req.FileBase64) == "" {
			sl.ReportError(req.FileBase64, "fileBase64", "FileBase64", "required_for_media", "")
		}
		if strings.TrimSpace(req.FileType) == "" {
			sl.ReportError(req.FileType, "fileType", "FileType", "required_for_media", "")
		}
		if strings.TrimSpace(req.Filename) == "" {
			sl.ReportError(req.Filename, "filename", "Filename", "required_for_media", "")
		}
	}
}

// validationMessages 将校验错误转换为可读的提示
func validationMessages(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", field))
		case "required_for_text":
			msgs = append(msgs, "answerText is required for TEXT answers")
		case "required_for_media":
			msgs = append(msgs, fmt.Sprintf("%s is required for AUDIO/VIDEO answers", field))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of [%s]", field, fe.Param()))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", field, fe.Param()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s", field, fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", field))
		}
	}
	return msgs
}
