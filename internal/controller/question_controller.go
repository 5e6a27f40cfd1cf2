package controller

import (
	"interview_prep_backend/internal/service"
	"interview_prep_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	QuestionService *service.QuestionService
}

func NewQuestionController(questionService *service.QuestionService) *QuestionController {
	return &QuestionController{QuestionService: questionService}
}

// @Summary 题目列表
// @Description 分页浏览题目，可按类型、难度模糊筛选（忽略大小写）
// @Tags 题目
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码，从0开始"
// @Param size query int false "每页数量"
// @Param type query string false "题目类型"
// @Param difficulty query string false "难度"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/questions [get]
func (c *QuestionController) ListQuestions(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "0"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", strconv.Itoa(util.DefaultPageSize)))

	result, err := c.QuestionService.ListQuestions(page, size, ctx.Query("type"), ctx.Query("difficulty"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	previews, err := toQuestionPreviews(result.Questions)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  previews,
		Total: result.Total,
		Page:  result.Page,
		Limit: result.Size,
	})
}

// @Summary 题集题目
// @Description 获取题集下的全部题目
// @Tags 题目
// @Produce json
// @Security BearerAuth
// @Param id path int true "题集ID"
// @Success 200 {object} util.Response{data=[]QuestionPreviewResponse}
// @Failure 404 {object} util.Response
// @Router /api/question-sets/{id}/questions [get]
func (c *QuestionController) ListQuestionsBySet(ctx *gin.Context) {
	setID, ok := util.ParseUintParam(ctx.Param("id"))
	if !ok {
		util.BadRequest(ctx, "Invalid question set ID")
		return
	}

	questions, err := c.QuestionService.ListQuestionsBySet(setID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	previews, err := toQuestionPreviews(questions)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, previews)
}

// @Summary 生成题集
// @Description 调用大模型生成题目并保存为草稿题集
// @Tags 题目
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.QuestionSetRequest true "生成参数"
// @Success 201 {object} util.Response{data=QuestionSetResponse}
// @Failure 400 {object} util.Response
// @Failure 502 {object} util.Response
// @Router /api/question-sets/generate [post]
func (c *QuestionController) GenerateQuestionSet(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.QuestionSetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Malformed request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		util.ValidationFailed(ctx, validationMessages(err))
		return
	}

	set, err := c.QuestionService.GenerateQuestionSet(ctx.Request.Context(), user.UserID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, "Question set generated successfully", toQuestionSetResponse(set))
}
