package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/noah-isme/university-scheduler-api/api/swagger"
	"github.com/noah-isme/university-scheduler-api/internal/handler"
	internalmiddleware "github.com/noah-isme/university-scheduler-api/internal/middleware"
	"github.com/noah-isme/university-scheduler-api/internal/service"
	"github.com/noah-isme/university-scheduler-api/pkg/config"
	"github.com/noah-isme/university-scheduler-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/university-scheduler-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/university-scheduler-api/pkg/middleware/requestid"
)

// @title University Scheduler API
// @version 0.1.0
// @description Greedy heuristic timetable generation for university courses
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	metricsSvc := service.NewMetricsService()
	timetableSvc := service.NewTimetableService(validator.New(), logr, metricsSvc, service.TimetableServiceConfig{
		ResultTTL: cfg.Scheduler.ResultTTL,
		PDFTitle:  cfg.Export.PDFTitle,
	})
	timetableHandler := handler.NewTimetableHandler(timetableSvc, cfg.Scheduler.MaxCourses)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(internalmiddleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	api := r.Group(cfg.APIPrefix)
	{
		timetable := api.Group("/timetable")
		timetable.POST("/generate", timetableHandler.Generate)
		timetable.GET("/:id", timetableHandler.Get)
		if cfg.Export.Enabled {
			timetable.GET("/:id/export", timetableHandler.Export)
		}
	}

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
