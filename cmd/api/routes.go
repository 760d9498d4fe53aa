package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/yourusername/pdf-analyzer/internal/apidoc"
	"github.com/yourusername/pdf-analyzer/internal/auth"
	"github.com/yourusername/pdf-analyzer/internal/config"
	"github.com/yourusername/pdf-analyzer/internal/pdf"
)

// handleHome はルートのハンドラーです。
func handleHome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":    "Welcome to the PDF Analyzer API",
		"swagger_ui": "/swagger",
	})
}

// handleHealth はヘルスチェックエンドポイントのハンドラーです。
func handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "pdf-analyzer-api",
		"version": Version,
	})
}

// handleSwagger は Swagger UI を返します。/swagger/ は index.html へリダイレクトします。
// /swagger 自体は gin の RedirectTrailingSlash で /swagger/ に転送されます。
func handleSwagger() gin.HandlerFunc {
	docs := ginSwagger.WrapHandler(swaggerFiles.Handler)
	return func(c *gin.Context) {
		if path := c.Param("any"); path == "" || path == "/" {
			c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
			return
		}
		docs(c)
	}
}

// setupRoutes はルーティングと認証周りの配線を行います。
func setupRoutes(router *gin.Engine, cfg *config.Config, svc pdf.AnalyzeService, logger *logrus.Logger) {
	// 誰でも叩けるエンドポイント
	router.GET("/", handleHome)
	router.GET("/health", handleHealth)
	router.GET("/swagger/*any", handleSwagger())

	authManager := auth.NewManager(cfg.APITokenHash)
	if authManager.Enabled() {
		logger.Info("Shared API token required for /pdf endpoints")
	}

	pdfRoutes := router.Group("/pdf")
	pdfRoutes.Use(authManager.RequireToken())
	{
		pdfRoutes.POST("/analyze", pdf.AnalyzeHandler(svc, pdf.HandlerOptions{
			MaxFileSize:    cfg.MaxFileSize,
			StrictPDFCheck: cfg.StrictPDFCheck,
			Logger:         logger,
		}))
	}
}
