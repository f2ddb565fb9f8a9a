package controller

import (
	"errors"

	"edupath_backend/internal/model"
	"edupath_backend/internal/service"
	"edupath_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ObjectiveController struct {
	ObjectiveService *service.ObjectiveService
}

func NewObjectiveController(objectiveService *service.ObjectiveService) *ObjectiveController {
	return &ObjectiveController{ObjectiveService: objectiveService}
}

// ObjectiveRequest 学习目标写入请求
// swagger:model ObjectiveRequest
type ObjectiveRequest struct {
	Subject     string `json:"subject" binding:"required"`
	Position    int    `json:"position"`
	Description string `json:"description" binding:"required"`
}

// Create godoc
// @Summary 创建学习目标
// @Description 仅教师和管理员可创建
// @Tags 目标
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body ObjectiveRequest true "目标信息"
// @Success 201 {object} util.Response{data=model.LearningObjective}
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/objectives [post]
func (c *ObjectiveController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req ObjectiveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	objective := &model.LearningObjective{
		Subject:     req.Subject,
		Position:    req.Position,
		Description: req.Description,
		CreatorID:   claims.UserID,
	}

	if err := c.ObjectiveService.Create(objective); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, objective)
}

// List godoc
// @Summary 学习目标列表
// @Description 可按学科过滤，按学科内顺序返回
// @Tags 目标
// @Produce  json
// @Security BearerAuth
// @Param   subject query string false "学科"
// @Param   page query int false "页码"
// @Param   limit query int false "每页条数"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/objectives [get]
func (c *ObjectiveController) List(ctx *gin.Context) {
	if subject := ctx.Query("subject"); subject != "" {
		objectives, err := c.ObjectiveService.ListBySubject(subject)
		if err != nil {
			util.LogInternalError(ctx, err)
			return
		}
		util.Success(ctx, objectives)
		return
	}

	page, limit := util.ParsePageQuery(ctx.Query("page"), ctx.Query("limit"))

	objectives, total, err := c.ObjectiveService.List(page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  objectives,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// Update godoc
// @Summary 更新学习目标
// @Tags 目标
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "目标ID"
// @Param   body body ObjectiveRequest true "目标信息"
// @Success 200 {object} util.Response{data=model.LearningObjective}
// @Failure 404 {object} util.Response "目标不存在"
// @Router /api/objectives/{id} [put]
func (c *ObjectiveController) Update(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	objective, err := c.ObjectiveService.GetByID(id)
	if err != nil {
		if errors.Is(err, util.ErrObjectiveNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	var req ObjectiveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	objective.Subject = req.Subject
	objective.Position = req.Position
	objective.Description = req.Description

	if err := c.ObjectiveService.Update(objective); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, objective)
}

// Delete godoc
// @Summary 删除学习目标
// @Tags 目标
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "目标ID"
// @Success 200 {object} util.Response
// @Router /api/objectives/{id} [delete]
func (c *ObjectiveController) Delete(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	if err := c.ObjectiveService.Delete(id); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
