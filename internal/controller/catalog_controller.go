package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"course_compass_backend/internal/service"
	"course_compass_backend/internal/util"
)

type CatalogController struct {
	Service *service.CatalogService
}

func NewCatalogController(svc *service.CatalogService) *CatalogController {
	return &CatalogController{Service: svc}
}

// @Summary 浏览课程目录
// @Description 返回归一化后的课程目录，支持排序
// @Tags 课程目录
// @Produce json
// @Param sort query string false "排序键" Enums(ai_score_desc, rating_desc, duration_asc, title_asc)
// @Success 200 {object} util.Response
// @Router /api/courses [get]
func (c *CatalogController) List(ctx *gin.Context) {
	courses, err := c.Service.Sorted(ctx.Request.Context(), ctx.Query("sort"))
	if err != nil {
		if errors.Is(err, util.ErrCatalogUnavailable) {
			util.Error(ctx, http.StatusServiceUnavailable, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, util.ListResponse{List: courses, Total: len(courses)})
}
