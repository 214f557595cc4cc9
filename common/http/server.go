package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type HandlerFunc func(*Context) error
type MiddlewareFunc func(*Context) error

// HttpServer gin 的薄封装
type HttpServer struct {
	engine *gin.Engine
	server *http.Server
	port   int
}

type ServerOption func(*HttpServer)

func WithPort(port int) ServerOption {
	return func(s *HttpServer) {
		s.port = port
	}
}

// WithMode 按日志级别选择 gin 模式，debug 之外都用 release
func WithMode(logLevel string) ServerOption {
	return func(s *HttpServer) {
		if strings.EqualFold(logLevel, "debug") {
			gin.SetMode(gin.DebugMode)
		} else {
			gin.SetMode(gin.ReleaseMode)
		}
	}
}

func NewHttpServer(opts ...ServerOption) *HttpServer {
	server := &HttpServer{port: 8080}
	for _, opt := range opts {
		opt(server)
	}
	server.engine = gin.New()
	server.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", server.port),
		Handler: server.engine,
	}
	return server
}

// wrapHandler handler 返回的错误统一按 500 处理，参数错误由 handler 自己响应
func (s *HttpServer) wrapHandler(handler HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := newContext(c)
		if err := handler(ctx); err != nil {
			ctx.InternalServerError(err.Error())
		}
	}
}

func (s *HttpServer) wrapMiddleware(middleware MiddlewareFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := newContext(c)
		if err := middleware(ctx); err != nil {
			ctx.InternalServerError(err.Error())
			c.Abort()
			return
		}
		c.Next()
	}
}

func (s *HttpServer) GET(path string, handler HandlerFunc) {
	s.engine.GET(path, s.wrapHandler(handler))
}

func (s *HttpServer) POST(path string, handler HandlerFunc) {
	s.engine.POST(path, s.wrapHandler(handler))
}

// Group 创建路由组
func (s *HttpServer) Group(relativePath string, middlewares ...MiddlewareFunc) *RouterGroup {
	ginGroup := s.engine.Group(relativePath)
	for _, middleware := range middlewares {
		ginGroup.Use(s.wrapMiddleware(middleware))
	}
	return &RouterGroup{group: ginGroup, server: s}
}

type RouterGroup struct {
	group  *gin.RouterGroup
	server *HttpServer
}

func (rg *RouterGroup) GET(path string, handler HandlerFunc) {
	rg.group.GET(path, rg.server.wrapHandler(handler))
}

func (rg *RouterGroup) POST(path string, handler HandlerFunc) {
	rg.group.POST(path, rg.server.wrapHandler(handler))
}

// Use 添加全局中间件，需要在注册路由之前调用
func (s *HttpServer) Use(middlewares ...MiddlewareFunc) {
	for _, middleware := range middlewares {
		s.engine.Use(s.wrapMiddleware(middleware))
	}
}

// Start 阻塞直到服务器关闭，正常关闭返回 nil
func (s *HttpServer) Start() error {
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown 优雅关闭服务器
func (s *HttpServer) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Handler 测试时直接交给 httptest
func (s *HttpServer) Handler() http.Handler {
	return s.engine
}

func (s *HttpServer) Port() int {
	return s.port
}
