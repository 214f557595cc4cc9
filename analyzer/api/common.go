package api

import (
	"time"

	"gomahjong/common/http"
)

// PingHandler ping 检查
func PingHandler(c *http.Context) error {
	c.Success(map[string]any{
		"message":   "pong",
		"timestamp": time.Now().Unix(),
		"service":   "analyzer",
	})
	return nil
}

// HealthHandler 健康检查，服务无状态，能响应即健康
func HealthHandler(c *http.Context) error {
	c.Success(map[string]any{
		"healthy":   true,
		"timestamp": time.Now().Unix(),
	})
	return nil
}
