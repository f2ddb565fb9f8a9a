package controller

import (
	"errors"

	"edupath_backend/internal/service"
	"edupath_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

// ProgressRequest 进度上报请求
// swagger:model ProgressRequest
type ProgressRequest struct {
	ObjectiveID      uint `json:"objectiveId" binding:"required"`
	Completed        bool `json:"completed"`
	TimeSpentMinutes int  `json:"timeSpentMinutes" binding:"min=0"`
}

// Record godoc
// @Summary 上报目标进度
// @Description 以 (用户, 目标) 为键写入，重复上报覆盖旧值
// @Tags 进度
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body ProgressRequest true "进度信息"
// @Success 200 {object} util.Response{data=model.ObjectiveProgress}
// @Failure 404 {object} util.Response "目标不存在"
// @Router /api/progress [post]
func (c *ProgressController) Record(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req ProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	record, err := c.ProgressService.Record(claims.UserID, req.ObjectiveID, req.Completed, req.TimeSpentMinutes)
	if err != nil {
		if errors.Is(err, util.ErrObjectiveNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, record)
}

// List godoc
// @Summary 当前用户全部进度
// @Tags 进度
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.ObjectiveProgress}
// @Router /api/progress [get]
func (c *ProgressController) List(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	records, err := c.ProgressService.ListByUser(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, records)
}
