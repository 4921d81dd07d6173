package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"course_compass_backend/internal/assessment"
	"course_compass_backend/internal/service"
	"course_compass_backend/internal/util"
)

type SessionController struct {
	Service *service.SessionService
}

func NewSessionController(svc *service.SessionService) *SessionController {
	return &SessionController{Service: svc}
}

// AnswerRequest 作答请求。单选类填 text，多选填 choices
type AnswerRequest struct {
	QuestionID string   `json:"questionId" binding:"required"`
	Text       string   `json:"text"`
	Choices    []string `json:"choices"`
}

// FixedScoreRequest 固定题库整卷计分请求
type FixedScoreRequest struct {
	Answers     map[string]AnswerBody `json:"answers" binding:"required"`
	StatedLevel string                `json:"statedLevel"`
}

// AnswerBody 单题作答内容
type AnswerBody struct {
	Text    string   `json:"text"`
	Choices []string `json:"choices"`
}

// @Summary 开始评估会话
// @Description 创建自适应评估会话，返回会话令牌与第一道题
// @Tags 评估会话
// @Produce json
// @Success 201 {object} util.Response
// @Router /api/assessment/sessions [post]
func (c *SessionController) Start(ctx *gin.Context) {
	result, err := c.Service.StartSession(ctx.Request.Context())
	if err != nil {
		if errors.Is(err, util.ErrEmptyQuestionBank) {
			util.Error(ctx, http.StatusServiceUnavailable, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, result)
}

// @Summary 获取当前待答题目
// @Tags 评估会话
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/assessment/sessions/current [get]
func (c *SessionController) Current(ctx *gin.Context) {
	claims := util.GetSessionFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	result, err := c.Service.CurrentQuestion(ctx.Request.Context(), claims.SessionID)
	if err != nil {
		c.writeSessionError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// @Summary 提交作答
// @Description 判题并返回下一道题；满足收卷条件时返回最终画像
// @Tags 评估会话
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body AnswerRequest true "作答内容"
// @Success 200 {object} util.Response
// @Router /api/assessment/sessions/answers [post]
func (c *SessionController) Answer(ctx *gin.Context) {
	claims := util.GetSessionFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req AnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	answer := assessment.Answer{Text: req.Text, Choices: req.Choices}
	result, err := c.Service.SubmitAnswer(ctx.Request.Context(), claims.SessionID, req.QuestionID, answer)
	if err != nil {
		c.writeSessionError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// @Summary 获取评估结论
// @Description 由当前画像生成最终评估结论，未收卷也可查询
// @Tags 评估会话
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/assessment/sessions/results [get]
func (c *SessionController) Results(ctx *gin.Context) {
	claims := util.GetSessionFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	profile, err := c.Service.Results(ctx.Request.Context(), claims.SessionID)
	if err != nil {
		c.writeSessionError(ctx, err)
		return
	}
	util.Success(ctx, profile)
}

// @Summary 放弃会话
// @Description 丢弃会话状态，重新评估需另起会话
// @Tags 评估会话
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/assessment/sessions [delete]
func (c *SessionController) Abandon(ctx *gin.Context) {
	claims := util.GetSessionFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.Service.Abandon(ctx.Request.Context(), claims.SessionID); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// @Summary 固定题库整卷计分
// @Description 对整套题库（含主观题）按阶段权重一次性计分
// @Tags 评估会话
// @Accept json
// @Produce json
// @Param body body FixedScoreRequest true "整卷作答"
// @Success 200 {object} util.Response
// @Router /api/assessment/fixed-score [post]
func (c *SessionController) ScoreFixed(ctx *gin.Context) {
	var req FixedScoreRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	answers := make(map[string]assessment.Answer, len(req.Answers))
	for id, a := range req.Answers {
		answers[id] = assessment.Answer{Text: a.Text, Choices: a.Choices}
	}

	result, err := c.Service.ScoreFixed(ctx.Request.Context(), answers, req.StatedLevel)
	if err != nil {
		if errors.Is(err, util.ErrEmptyQuestionBank) {
			util.Error(ctx, http.StatusServiceUnavailable, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

func (c *SessionController) writeSessionError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrSessionNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrSessionComplete), errors.Is(err, util.ErrQuestionMismatch):
		util.Conflict(ctx, err.Error())
	case errors.Is(err, util.ErrNoPendingQuestion):
		util.BadRequest(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}
