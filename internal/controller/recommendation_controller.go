package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"course_compass_backend/internal/recommend"
	"course_compass_backend/internal/service"
	"course_compass_backend/internal/util"
)

type RecommendationController struct {
	Service  *service.RecommendationService
	Sessions *service.SessionService
}

func NewRecommendationController(svc *service.RecommendationService, sessions *service.SessionService) *RecommendationController {
	return &RecommendationController{Service: svc, Sessions: sessions}
}

// PrefsRequest 显式偏好推荐请求。weights 按键覆盖默认权重
type PrefsRequest struct {
	Level    string             `json:"level"`
	Topics   []string           `json:"topics"`
	MaxHours float64            `json:"maxHours"`
	Weights  map[string]float64 `json:"weights"`
}

// @Summary 按偏好推荐课程
// @Description 无评估结论时按显式偏好生成结构化推荐
// @Tags 课程推荐
// @Accept json
// @Produce json
// @Param body body PrefsRequest true "用户偏好"
// @Success 200 {object} util.Response
// @Router /api/recommendations [post]
func (c *RecommendationController) ByPrefs(ctx *gin.Context) {
	var req PrefsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.Service.ForPrefs(ctx.Request.Context(), recommend.Prefs{
		Level:    req.Level,
		Topics:   req.Topics,
		MaxHours: req.MaxHours,
		Weights:  req.Weights,
	})
	if err != nil {
		c.writeError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// @Summary 按评估结论推荐课程
// @Description 由会话当前画像生成结构化推荐，topics 为向导里显式勾选的主题，maxHours 为可接受的课程时长上限
// @Tags 课程推荐
// @Produce json
// @Security BearerAuth
// @Param topics query []string false "显式勾选的主题" collectionFormat(multi)
// @Param maxHours query number false "课程时长上限（小时），0 表示不限"
// @Success 200 {object} util.Response
// @Router /api/assessment/sessions/recommendations [get]
func (c *RecommendationController) BySession(ctx *gin.Context) {
	claims := util.GetSessionFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	profile, err := c.Sessions.Results(ctx.Request.Context(), claims.SessionID)
	if err != nil {
		if errors.Is(err, util.ErrSessionNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	maxHours, err := strconv.ParseFloat(ctx.DefaultQuery("maxHours", "0"), 64)
	if err != nil || maxHours < 0 {
		util.BadRequest(ctx, "maxHours must be a non-negative number")
		return
	}

	result, err := c.Service.ForProfile(ctx.Request.Context(), profile, recommend.Prefs{
		Topics:   ctx.QueryArray("topics"),
		MaxHours: maxHours,
	})
	if err != nil {
		c.writeError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

func (c *RecommendationController) writeError(ctx *gin.Context, err error) {
	if errors.Is(err, util.ErrCatalogUnavailable) {
		util.Error(ctx, http.StatusServiceUnavailable, err.Error())
		return
	}
	util.LogInternalError(ctx, err)
}
