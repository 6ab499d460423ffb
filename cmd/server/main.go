package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitfantasy/orgdesk/internal/config"
	"github.com/bitfantasy/orgdesk/internal/handler"
	"github.com/bitfantasy/orgdesk/internal/middleware"
	"github.com/bitfantasy/orgdesk/internal/repository"
	"github.com/bitfantasy/orgdesk/internal/service"
	"github.com/bitfantasy/orgdesk/internal/sse"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	// 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 初始化日志
	zapLogger, err := initLogger(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("Starting orgdesk service",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
	)

	// 初始化记录存储
	db, err := repository.Open(cfg.Store.Path)
	if err != nil {
		zapLogger.Fatal("Failed to open record store", zap.Error(err))
	}
	store := repository.NewRecordStore(db, zapLogger)

	// 初始化依赖
	hub := sse.NewHub(zapLogger)
	services := service.NewServices(store, hub, cfg, zapLogger)
	handlers := handler.NewHandlers(services, hub)

	// 设置Gin模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 创建路由
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(zapLogger))
	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())
	router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/api/v1/events"})))

	// 注册路由
	registerRoutes(router, handlers)

	// 创建HTTP服务器
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// 启动服务器
	go func() {
		zapLogger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("Server exited")
}

func initLogger(cfg config.LogConfig) (*zap.Logger, error) {
	var zapCfg zap.Config

	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	switch cfg.Level {
	case "debug":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	}

	return zapCfg.Build()
}

func registerRoutes(r *gin.Engine, h *handler.Handlers) {
	// 健康检查
	r.GET("/health/live", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/health/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// 版本信息
	r.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"version":    Version,
			"build_time": BuildTime,
		})
	})

	// API v1
	v1 := r.Group("/api/v1")
	{
		// 员工管理
		employees := v1.Group("/employees")
		{
			employees.GET("", h.Employee.List)
			employees.POST("", h.Employee.Save)
			employees.GET("/:id", h.Employee.Get)
			employees.PUT("/:id", h.Employee.Save)
			employees.DELETE("/:id", h.Employee.Delete)
			employees.POST("/import/preview", h.Employee.ImportPreview)
			employees.POST("/import", h.Employee.ImportConfirm)
			employees.GET("/export", h.Employee.Export)
		}

		// 文档管理
		documents := v1.Group("/documents")
		{
			documents.GET("", h.Document.List)
			documents.POST("", h.Document.Save)
			documents.GET("/:id", h.Document.Get)
			documents.PUT("/:id", h.Document.Save)
			documents.DELETE("/:id", h.Document.Delete)
		}

		// 文档分类
		v1.GET("/document-categories", h.Document.ListCategories)

		// 项目管理
		projects := v1.Group("/projects")
		{
			projects.GET("", h.Project.List)
			projects.POST("", h.Project.Save)
			projects.GET("/:id", h.Project.Get)
			projects.PUT("/:id", h.Project.Save)
			projects.DELETE("/:id", h.Project.Delete)
		}

		// 系统设置
		settings := v1.Group("/settings")
		{
			settings.GET("/users", h.Settings.ListUsers)
			settings.POST("/users", h.Settings.SaveUser)
			settings.PUT("/users/:id", h.Settings.SaveUser)
			settings.DELETE("/users/:id", h.Settings.DeleteUser)

			settings.GET("/departments", h.Settings.ListDepartments)
			settings.POST("/departments", h.Settings.SaveDepartment)
			settings.PUT("/departments/:id", h.Settings.SaveDepartment)
			settings.DELETE("/departments/:id", h.Settings.DeleteDepartment)

			settings.GET("/general", h.Settings.GetGeneral)
			settings.PUT("/general", h.Settings.SaveGeneral)
			settings.GET("/mail", h.Settings.GetMail)
			settings.PUT("/mail", h.Settings.SaveMail)
		}

		// 智能助手
		v1.POST("/assistant/ask", h.Assistant.Ask)

		// 仪表盘
		v1.GET("/dashboard/summary", h.Dashboard.Summary)

		// 事件推送
		v1.GET("/events", h.Events.Stream)
	}
}
