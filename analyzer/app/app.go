package app

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gomahjong/analyzer/api"
	"gomahjong/analyzer/container"
	"gomahjong/common/config"
	"gomahjong/common/http"
	"gomahjong/common/log"
	"gomahjong/common/utils"
)

func newServer(cfg *config.Config, c *container.AnalyzerContainer) *http.HttpServer {
	// 使用 common 封装的 gin 库 http-server
	server := http.NewHttpServer(
		http.WithPort(cfg.HttpPort),
		http.WithMode(cfg.Log.Level),
	)

	// 中间处理器注册
	server.Use(
		http.RecoveryMiddleware(),
		http.RequestIDMiddleware(),
		http.CorsMiddleware(),
		http.LoggerMiddleware(),
	)
	if cfg.RateLimit.Rate > 0 {
		server.Use(http.RateLimitMiddleware(utils.NewRateLimiter(cfg.RateLimit.Rate, cfg.RateLimit.Burst)))
	}

	// 路由注册
	api.RegisterRoutes(server, c.GetService())
	return server
}

// Run 启动分析服务，收到退出信号或 ctx 结束时优雅关闭
func Run(ctx context.Context, cfg *config.Config) error {
	c, err := container.NewAnalyzerContainer(ctx, cfg)
	if err != nil {
		return err
	}
	defer c.Close()

	server := newServer(cfg, c)

	errCh := make(chan error, 1)
	go func() {
		log.Info("启动 HTTP 服务器，端口: %d", cfg.HttpPort)
		errCh <- server.Start()
	}()

	stop := func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error("HTTP 服务器关闭失败: %v", err)
		} else {
			hits, misses := c.CacheHits()
			log.Info("HTTP 服务器已优雅关闭，缓存命中 %d / 未命中 %d", hits, misses)
		}
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGINT, syscall.SIGHUP)
	defer signal.Stop(sig)
	select {
	case <-ctx.Done():
		stop()
		return nil
	case err := <-errCh:
		if err != nil {
			return errors.Join(errors.New("HTTP 服务器启动失败"), err)
		}
		return nil
	case s := <-sig:
		stop()
		if s == syscall.SIGHUP {
			log.Info("挂起信号，服务停止")
		} else {
			log.Info("中断信号，服务停止")
		}
		return nil
	}
}
