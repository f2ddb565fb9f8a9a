package controller

import (
	"errors"

	"edupath_backend/internal/planner"
	"edupath_backend/internal/service"
	"edupath_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PlanningController struct {
	PlanningService *service.PlanningService
}

func NewPlanningController(planningService *service.PlanningService) *PlanningController {
	return &PlanningController{PlanningService: planningService}
}

// PlanRequest 规划请求。Signals 为显式场景信号，可覆盖画像推断，
// 如 context / institution_type / learning_style / complexity / delivery_mode / group_size。
// swagger:model PlanRequest
type PlanRequest struct {
	Subject string            `json:"subject" binding:"required"`
	Signals map[string]string `json:"signals"`
}

// GeneratePlan godoc
// @Summary 生成学习路径
// @Description 按学习者画像、学科目标和历史进度生成个性化路径，并保存快照
// @Tags 规划
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body PlanRequest true "规划参数"
// @Success 201 {object} util.Response{data=service.PlanResult}
// @Failure 400 {object} util.Response "输入不足以生成规划"
// @Failure 404 {object} util.Response "画像不存在"
// @Router /api/plans [post]
func (c *PlanningController) GeneratePlan(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req PlanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.PlanningService.GeneratePlan(ctx.Request.Context(), claims.UserID, req.Subject, req.Signals)
	if err != nil {
		switch {
		case errors.Is(err, planner.ErrInvalidInput):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, util.ErrProfileNotFound):
			util.NotFound(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, result)
}

// AnalyzeContext godoc
// @Summary 教育场景分析
// @Description 只做场景分析，不生成路径，结果有缓存
// @Tags 规划
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body PlanRequest false "场景信号"
// @Success 200 {object} util.Response{data=planner.EducationalContext}
// @Failure 404 {object} util.Response "画像不存在"
// @Router /api/plans/context [post]
func (c *PlanningController) AnalyzeContext(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req struct {
		Signals map[string]string `json:"signals"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		util.BadRequest(ctx, err.Error())
		return
	}

	eduCtx, err := c.PlanningService.AnalyzeContext(ctx.Request.Context(), claims.UserID, req.Signals)
	if err != nil {
		if errors.Is(err, util.ErrProfileNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, eduCtx)
}

// GetPlan godoc
// @Summary 查看历史规划
// @Tags 规划
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "规划ID"
// @Success 200 {object} util.Response{data=service.PlanResult}
// @Failure 404 {object} util.Response "规划不存在或无权查看"
// @Router /api/plans/{id} [get]
func (c *PlanningController) GetPlan(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	result, err := c.PlanningService.GetPlan(ctx.Param("id"), claims)
	if err != nil {
		if errors.Is(err, util.ErrPlanNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, result)
}

// History godoc
// @Summary 规划历史
// @Description 当前用户最近的规划快照
// @Tags 规划
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.LearningPlanRecord}
// @Router /api/plans [get]
func (c *PlanningController) History(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	records, err := c.PlanningService.History(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, records)
}
