package router

import (
	"resume-match-go/internal/api/handler"

	"github.com/cloudwego/hertz/pkg/app/server"
)

// RegisterRoutes 注册 API 路由
func RegisterRoutes(h *server.Hertz, analyzeHandler *handler.AnalyzeHandler) {
	api := h.Group("/api")

	// 简历分析接口
	api.POST("/analyze", analyzeHandler.HandleAnalyze)

	// 健康检查
	api.GET("/health", analyzeHandler.HandleHealth)
}
