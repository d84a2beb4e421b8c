package controller

import (
	"net/http"

	"opiol_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

type HealthController struct {
	Redis      *redis.Client
	DraftStore string
}

func NewHealthController(rdb *redis.Client, draftStore string) *HealthController {
	return &HealthController{Redis: rdb, DraftStore: draftStore}
}

// @Summary 健康检查
// @Description 检查服务状态
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	redisStatus := "disabled"
	if c.Redis != nil {
		if err := c.Redis.Ping(ctx.Request.Context()).Err(); err != nil {
			util.Error(ctx, http.StatusServiceUnavailable, "Redis unavailable")
			return
		}
		redisStatus = "up"
	}

	util.Success(ctx, gin.H{
		"status": "ok",
		"components": gin.H{
			"draftStore": c.DraftStore,
			"redis":      redisStatus,
		},
	})
}
