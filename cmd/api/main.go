package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/luct-ict/reporting-api/api/swagger"
	"github.com/luct-ict/reporting-api/internal/handler"
	internalmiddleware "github.com/luct-ict/reporting-api/internal/middleware"
	"github.com/luct-ict/reporting-api/internal/models"
	"github.com/luct-ict/reporting-api/internal/repository"
	"github.com/luct-ict/reporting-api/internal/service"
	"github.com/luct-ict/reporting-api/pkg/config"
	"github.com/luct-ict/reporting-api/pkg/database"
	"github.com/luct-ict/reporting-api/pkg/logger"
	corsmiddleware "github.com/luct-ict/reporting-api/pkg/middleware/cors"
	reqidmiddleware "github.com/luct-ict/reporting-api/pkg/middleware/requestid"
	"github.com/luct-ict/reporting-api/pkg/response"
)

// @title LUCT Reporting API
// @version 1.0.0
// @description Lecture reporting platform for the Faculty of ICT
// @BasePath /api
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

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to database", "error", err)
	}
	defer db.Close()

	validate := validator.New()

	userRepo := repository.NewUserRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	classRepo := repository.NewClassRepository(db)
	reportRepo := repository.NewReportRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)

	authService := service.NewAuthService(userRepo, validate, logr, service.AuthConfig{
		TokenSecret: cfg.JWT.Secret,
		TokenExpiry: cfg.JWT.Expiration,
		Issuer:      cfg.JWT.Issuer,
		BcryptCost:  cfg.Auth.BcryptCost,
	})
	reportService := service.NewReportService(reportRepo, userRepo, validate, logr)
	courseService := service.NewCourseService(courseRepo, classRepo, userRepo, validate, logr)
	classService := service.NewClassService(classRepo, logr)
	feedbackService := service.NewFeedbackService(feedbackRepo, reportRepo, validate, logr)
	searchService := service.NewSearchService(reportRepo, classRepo, courseRepo, logr)
	exportService := service.NewExportService(reportRepo, logr, nil, nil, nil)
	userService := service.NewUserService(userRepo, logr)
	metricsService := service.NewMetricsService()

	authHandler := handler.NewAuthHandler(authService)
	reportHandler := handler.NewReportHandler(reportService)
	courseHandler := handler.NewCourseHandler(courseService)
	classHandler := handler.NewClassHandler(classService)
	feedbackHandler := handler.NewFeedbackHandler(feedbackService)
	searchHandler := handler.NewSearchHandler(searchService)
	exportHandler := handler.NewExportHandler(exportService)
	userHandler := handler.NewUserHandler(userService)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(internalmiddleware.Metrics(metricsService))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metricsService.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/profile", internalmiddleware.JWT(authService), authHandler.Profile)

	secured := api.Group("")
	secured.Use(internalmiddleware.JWT(authService))

	secured.GET("/reports", reportHandler.List)
	secured.GET("/reports/:id", reportHandler.Get)
	secured.POST("/reports", internalmiddleware.RequireRoles(models.RoleLecturer), reportHandler.Create)

	secured.GET("/courses", courseHandler.List)
	secured.GET("/courses/:id", courseHandler.Get)

	management := secured.Group("/course-management")
	management.Use(internalmiddleware.RequireRoles(models.RoleProgramLeader))
	management.POST("", courseHandler.Create)
	management.PUT("/:id", courseHandler.Update)
	management.POST("/:id/assign", courseHandler.AssignLecturer)

	secured.GET("/classes", classHandler.List)
	secured.GET("/classes/:id", classHandler.Get)

	secured.GET("/feedback/report/:reportId", feedbackHandler.ListByReport)
	feedback := secured.Group("/feedback")
	feedback.Use(internalmiddleware.RequireRoles(models.RolePrincipalLecturer))
	feedback.POST("", feedbackHandler.Create)
	feedback.PUT("/:id", feedbackHandler.Update)

	secured.GET("/search", searchHandler.Search)
	secured.GET("/export/reports", exportHandler.Reports)

	secured.GET("/users", userHandler.List)
	secured.GET("/users/lecturers", userHandler.Lecturers)

	r.NoRoute(response.RouteNotFound)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
