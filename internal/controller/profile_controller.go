package controller

import (
	"encoding/json"
	"errors"

	"edupath_backend/internal/model"
	"edupath_backend/internal/service"
	"edupath_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	ProfileService  *service.ProfileService
	PlanningService *service.PlanningService
}

func NewProfileController(profileService *service.ProfileService, planningService *service.PlanningService) *ProfileController {
	return &ProfileController{
		ProfileService:  profileService,
		PlanningService: planningService,
	}
}

// ProfileRequest 学习者画像写入请求
// swagger:model ProfileRequest
type ProfileRequest struct {
	Age                int                `json:"age"`
	EducationLevel     string             `json:"educationLevel"`
	KnowledgeLevel     string             `json:"knowledgeLevel" binding:"omitempty,oneof=beginner intermediate advanced"`
	LearningStyle      string             `json:"learningStyle" binding:"omitempty,oneof=visual auditory kinesthetic reading mixed"`
	Gifted             bool               `json:"gifted"`
	Language           string             `json:"language"`
	Location           string             `json:"location"`
	CulturalBackground string             `json:"culturalBackground"`
	SocialPreference   string             `json:"socialPreference" binding:"omitempty,oneof=group individual mixed"`
	TechnologyAccess   string             `json:"technologyAccess" binding:"omitempty,oneof=limited standard advanced"`
	AccessibilityNeeds []string           `json:"accessibilityNeeds"`
	ContentPreferences map[string]float64 `json:"contentPreferences"`
	Cognitive          json.RawMessage    `json:"cognitive"`
}

func (r *ProfileRequest) apply(profile *model.LearnerProfile) error {
	profile.Age = r.Age
	profile.EducationLevel = r.EducationLevel
	profile.KnowledgeLevel = r.KnowledgeLevel
	profile.LearningStyle = r.LearningStyle
	profile.Gifted = r.Gifted
	profile.Language = r.Language
	profile.Location = r.Location
	profile.CulturalBackground = r.CulturalBackground
	profile.SocialPreference = r.SocialPreference
	profile.TechnologyAccess = r.TechnologyAccess

	if r.AccessibilityNeeds != nil {
		needs, err := json.Marshal(r.AccessibilityNeeds)
		if err != nil {
			return err
		}
		profile.AccessibilityNeeds = needs
	}
	if r.ContentPreferences != nil {
		prefs, err := json.Marshal(r.ContentPreferences)
		if err != nil {
			return err
		}
		profile.ContentPreferences = prefs
	}
	if len(r.Cognitive) > 0 {
		profile.Cognitive = r.Cognitive
	}
	return nil
}

// Create godoc
// @Summary 创建学习者画像
// @Description 为当前用户创建画像，每个用户仅一份
// @Tags 画像
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body ProfileRequest true "画像信息"
// @Success 201 {object} util.Response{data=model.LearnerProfile}
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/profiles [post]
func (c *ProfileController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req ProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	profile := &model.LearnerProfile{UserID: claims.UserID}
	if err := req.apply(profile); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.ProfileService.Create(profile); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, profile)
}

// Get godoc
// @Summary 获取学习者画像
// @Tags 画像
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.LearnerProfile}
// @Failure 404 {object} util.Response "画像不存在"
// @Router /api/profiles/me [get]
func (c *ProfileController) Get(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	profile, err := c.ProfileService.GetByUserID(claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrProfileNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, profile)
}

// List godoc
// @Summary 学习者画像列表
// @Description 仅管理员可用
// @Tags 画像
// @Produce  json
// @Security BearerAuth
// @Param   page query int false "页码"
// @Param   limit query int false "每页条数"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/admin/profiles [get]
func (c *ProfileController) List(ctx *gin.Context) {
	page, limit := util.ParsePageQuery(ctx.Query("page"), ctx.Query("limit"))

	profiles, total, err := c.ProfileService.List(page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  profiles,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// Update godoc
// @Summary 更新学习者画像
// @Description 更新画像并使缓存的场景分析失效
// @Tags 画像
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body ProfileRequest true "画像信息"
// @Success 200 {object} util.Response{data=model.LearnerProfile}
// @Failure 404 {object} util.Response "画像不存在"
// @Router /api/profiles/me [put]
func (c *ProfileController) Update(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req ProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	profile, err := c.ProfileService.GetByUserID(claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrProfileNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	if err := req.apply(profile); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.ProfileService.Update(profile); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	// 画像变了，缓存的场景分析不再可信
	c.PlanningService.InvalidateContext(ctx.Request.Context(), claims.UserID)

	util.Success(ctx, profile)
}
