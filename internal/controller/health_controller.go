package controller

import (
	"context"
	"time"

	"edupath_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

type HealthController struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewHealthController(db *gorm.DB, rdb *redis.Client) *HealthController {
	return &HealthController{DB: db, Redis: rdb}
}

// Health godoc
// @Summary 健康检查
// @Description 检查服务与依赖组件状态
// @Tags 系统
// @Produce  json
// @Success 200 {object} util.Response{data=object}
// @Router /health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()

	status := gin.H{
		"status":   "ok",
		"database": "ok",
		"redis":    "ok",
	}

	if sqlDB, err := c.DB.DB(); err != nil || sqlDB.PingContext(checkCtx) != nil {
		status["database"] = "unavailable"
		status["status"] = "degraded"
	}

	if err := c.Redis.Ping(checkCtx).Err(); err != nil {
		status["redis"] = "unavailable"
		status["status"] = "degraded"
	}

	util.Success(ctx, status)
}
