package controller

import (
	"interview_prep_backend/internal/service"
	"interview_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AnswerController struct {
	AnswerService *service.AnswerService
}

func NewAnswerController(answerService *service.AnswerService) *AnswerController {
	return &AnswerController{AnswerService: answerService}
}

// @Summary 提交答案
// @Description 提交或覆盖当前用户对某题的答案（文本或音视频），并返回AI评估结果
// @Tags 答案
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.AnswerRequest true "答案内容"
// @Success 200 {object} util.Response{data=AnswerResponse} "已更新"
// @Success 201 {object} util.Response{data=AnswerResponse} "已创建"
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/answers [post]
func (c *AnswerController) SubmitAnswer(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.AnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Malformed request body")
		return
	}
	req.AnswerType = req.AnswerType.Normalize()
	if err := validate.Struct(req); err != nil {
		util.ValidationFailed(ctx, validationMessages(err))
		return
	}

	answer, isUpdate, err := c.AnswerService.SubmitAnswer(ctx.Request.Context(), user.UserID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	resp, err := toAnswerResponse(answer)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	if isUpdate {
		util.SuccessWithMessage(ctx, "Answer updated successfully", resp)
		return
	}
	util.Created(ctx, "Answer uploaded successfully", resp)
}

// @Summary 获取答案
// @Description 获取当前用户对某题的答案，未作答时 data 为 null
// @Tags 答案
// @Produce json
// @Security BearerAuth
// @Param questionId path int true "题目ID"
// @Success 200 {object} util.Response{data=AnswerResponse}
// @Router /api/answers/{questionId} [get]
func (c *AnswerController) GetAnswer(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	questionID, ok := util.ParseUintParam(ctx.Param("questionId"))
	if !ok {
		util.BadRequest(ctx, "Invalid question ID")
		return
	}

	answer, err := c.AnswerService.GetAnswer(user.UserID, questionID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	if answer == nil {
		util.SuccessWithMessage(ctx, "No answer found for this question", nil)
		return
	}

	resp, err := toAnswerResponse(answer)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.SuccessWithMessage(ctx, "Answer retrieved successfully", resp)
}
