// Package main はAPIサーバーのエントリーポイントです。
//
//	@title						PDF Analyzer API
//	@version					1.0
//	@description				API for analyzing PDF documents using Anthropic's Claude model
//	@BasePath					/
//	@securityDefinitions.apikey	ApiKeyAuth
//	@in							header
//	@name						X-API-Key
package main

//go:generate swag init -g main.go -d ./,../../internal/pdf -o ../../internal/apidoc --outputTypes go --packageName apidoc

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/pdf-analyzer/internal/claude"
	"github.com/yourusername/pdf-analyzer/internal/config"
	"github.com/yourusername/pdf-analyzer/internal/pdf"
)

// Version はビルド時に上書きされます。
var Version = "dev"

const shutdownTimeout = 10 * time.Second

func main() {
	// 設定の読み込み
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	logger := newLogger(cfg)
	if cfg.AnthropicAPIKey == "" {
		logger.Warn("ANTHROPIC_API_KEY is not set; analysis requests will fail with an authentication error")
	}

	// Ginのモードを設定
	gin.SetMode(cfg.GinMode)

	client, err := claude.New(claude.Options{
		APIKey:    cfg.AnthropicAPIKey,
		Model:     cfg.AnthropicModel,
		MaxTokens: cfg.MaxTokens,
		BaseURL:   cfg.AnthropicBaseURL,
		Timeout:   cfg.ProviderTimeout,
	})
	if err != nil {
		logger.Fatalf("Failed to create provider client: %v", err)
	}

	service, err := pdf.NewService(client, logger)
	if err != nil {
		logger.Fatalf("Failed to create analyzer service: %v", err)
	}

	router := newRouter(cfg, logger)
	setupRoutes(router, cfg, service, logger)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.WithFields(logrus.Fields{
			"addr":  srv.Addr,
			"mode":  cfg.GinMode,
			"model": client.Model(),
		}).Info("Starting API server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down API server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("Graceful shutdown failed")
	}
}

// newRouter は共通ミドルウェアを設定した gin.Engine を返します。
func newRouter(cfg *config.Config, logger *logrus.Logger) *gin.Engine {
	router := gin.New()
	router.Use(requestID(), requestLogger(logger), gin.Recovery())

	// CORSミドルウェアの設定
	corsConfig := cors.DefaultConfig()
	origins := cfg.AllowedOrigins()
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = origins
	}
	corsConfig.AllowHeaders = []string{
		"Origin",
		"Content-Type",
		"Accept",
		"Authorization",
		"X-API-Key",
		requestIDHeader,
	}
	corsConfig.ExposeHeaders = []string{requestIDHeader}
	router.Use(cors.New(corsConfig))

	return router
}
