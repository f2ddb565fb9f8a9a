package controller

import (
	"errors"
	"strconv"

	"edupath_backend/internal/service"
	"edupath_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ContentController struct {
	ContentService *service.ContentService
}

func NewContentController(contentService *service.ContentService) *ContentController {
	return &ContentController{ContentService: contentService}
}

// Upload godoc
// @Summary 上传学习资源
// @Description 上传资源文件并入库，视频自动探测时长
// @Tags 资源
// @Accept  multipart/form-data
// @Produce  json
// @Security BearerAuth
// @Param   file formData file true "资源文件"
// @Param   title formData string true "标题"
// @Param   subject formData string true "学科"
// @Param   kind formData string true "资源类型 text/video/interactive/simulation"
// @Param   difficulty formData int false "难度 1-5"
// @Success 201 {object} util.Response{data=model.ResourceItem}
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/resources [post]
func (c *ContentController) Upload(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	title := ctx.PostForm("title")
	subject := ctx.PostForm("subject")
	kind := ctx.PostForm("kind")
	if title == "" || subject == "" || kind == "" {
		util.BadRequest(ctx, "title, subject and kind are required")
		return
	}

	difficulty, _ := strconv.Atoi(ctx.DefaultPostForm("difficulty", "1"))
	if difficulty < 1 || difficulty > 5 {
		difficulty = 1
	}

	item, err := c.ContentService.UploadResource(ctx.Request.Context(), file, service.UploadResourceInput{
		Title:      title,
		Subject:    subject,
		Kind:       kind,
		Difficulty: difficulty,
		UploaderID: claims.UserID,
	})
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Created(ctx, item)
}

// List godoc
// @Summary 资源列表
// @Description 按学科和类型过滤，或分页浏览全部
// @Tags 资源
// @Produce  json
// @Security BearerAuth
// @Param   subject query string false "学科"
// @Param   kind query string false "资源类型"
// @Param   page query int false "页码"
// @Param   limit query int false "每页条数"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/resources [get]
func (c *ContentController) List(ctx *gin.Context) {
	subject := ctx.Query("subject")
	kind := ctx.Query("kind")

	if subject != "" && kind != "" {
		items, err := c.ContentService.ListBySubjectAndKind(subject, kind)
		if err != nil {
			util.LogInternalError(ctx, err)
			return
		}
		util.Success(ctx, items)
		return
	}

	page, limit := util.ParsePageQuery(ctx.Query("page"), ctx.Query("limit"))

	items, total, err := c.ContentService.List(page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  items,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// Get godoc
// @Summary 资源详情
// @Tags 资源
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "资源ID"
// @Success 200 {object} util.Response{data=model.ResourceItem}
// @Failure 404 {object} util.Response "资源不存在"
// @Router /api/resources/{id} [get]
func (c *ContentController) Get(ctx *gin.Context) {
	item, err := c.ContentService.GetByID(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrResourceNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, item)
}

// Delete godoc
// @Summary 删除资源
// @Tags 资源
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "资源ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "资源不存在"
// @Router /api/resources/{id} [delete]
func (c *ContentController) Delete(ctx *gin.Context) {
	if err := c.ContentService.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		if errors.Is(err, util.ErrResourceNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, nil)
}
