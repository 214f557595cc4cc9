package api

import (
	"gomahjong/analyzer/application/service"
	"gomahjong/common/http"
)

// RegisterRoutes 注册所有路由
func RegisterRoutes(server *http.HttpServer, svc service.AnalysisService) {
	h := &Handler{svc: svc}

	server.GET("/ping", PingHandler)
	server.GET("/health", HealthHandler)

	v1 := server.Group("/api/v1")
	{
		v1.GET("/tiles", h.Tiles)
		v1.POST("/shanten", h.Shanten)
		v1.POST("/analyze", h.Analyze)
		v1.POST("/batch", h.Batch)
	}
}
