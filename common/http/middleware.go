package http

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"gomahjong/common/log"
	"gomahjong/common/utils"
)

const RequestIDKey = "requestID"

// CorsMiddleware 跨域
func CorsMiddleware() MiddlewareFunc {
	return func(c *Context) error {
		if c.GetHeader("Origin") != "" {
			c.SetHeader("Access-Control-Allow-Origin", "*")
			c.SetHeader("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
			c.SetHeader("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, X-Request-ID")
			c.SetHeader("Access-Control-Expose-Headers", "Content-Length, X-Request-ID")
		}
		if c.Method() == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
		}
		return nil
	}
}

// LoggerMiddleware 请求处理完之后记录耗时和状态码
func LoggerMiddleware() MiddlewareFunc {
	return func(c *Context) error {
		start := time.Now()
		c.Next()
		log.Info("HTTP %s %s %d %v from %s [%s]", c.Method(), c.Path(), c.StatusCode(), time.Since(start), c.ClientIP(), c.GetString(RequestIDKey))
		return nil
	}
}

// RecoveryMiddleware handler panic 时返回 500
func RecoveryMiddleware() MiddlewareFunc {
	return func(c *Context) error {
		defer func() {
			if r := recover(); r != nil {
				log.Error("Panic recovered: %v", r)
				c.InternalServerError(MsgServerError)
				c.Abort()
			}
		}()
		c.Next()
		return nil
	}
}

// RequestIDMiddleware 透传或生成 X-Request-ID
func RequestIDMiddleware() MiddlewareFunc {
	return func(c *Context) error {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(RequestIDKey, requestID)
		c.SetHeader("X-Request-ID", requestID)
		return nil
	}
}

// RateLimitMiddleware 所有请求共用一个令牌桶，OPTIONS 不计数
func RateLimitMiddleware(limiter *utils.RateLimiter) MiddlewareFunc {
	return func(c *Context) error {
		if c.Method() == http.MethodOptions || limiter.Allow() {
			return nil
		}
		log.Warn("HTTP %s %s 触发限流 [%s]", c.Method(), c.Path(), c.GetString(RequestIDKey))
		c.TooManyRequests()
		c.Abort()
		return nil
	}
}
