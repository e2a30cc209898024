package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/Axolotls/config"
	"github.com/lshigami/Axolotls/database"
	_ "github.com/lshigami/Axolotls/docs" // Swagger docs - auto-generated
	"github.com/lshigami/Axolotls/internal/controller"
	adminctrl "github.com/lshigami/Axolotls/internal/controller/admin"
	studentctrl "github.com/lshigami/Axolotls/internal/controller/student"
	"github.com/lshigami/Axolotls/internal/logger"
	"github.com/lshigami/Axolotls/internal/middleware"
	"github.com/lshigami/Axolotls/internal/model"
	"github.com/lshigami/Axolotls/internal/repository"
	"github.com/lshigami/Axolotls/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Exam Administration API
// @version 1.0
// @description API for exam administration: accounts, exams with question banks, timed attempts, scoring and leaderboard.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
		),

		// Repositories Layer
		fx.Provide(
			repository.NewUserRepository,
			repository.NewExamRepository,
			repository.NewSubmissionRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewAuthService,
			service.NewUserService,
			service.NewAdminExamService,
			service.NewStudentExamService,
			service.NewAttemptPolicyService,
			service.NewScoringService,
			service.NewExamSessionService,
			service.NewLeaderboardService,
		),

		// API Controllers Layer
		fx.Provide(
			controller.NewAuthController,
			adminctrl.NewUserController,
			adminctrl.NewExamController,
			studentctrl.NewExamController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	authCtrl *controller.AuthController,
	userCtrl *adminctrl.UserController,
	examCtrl *adminctrl.ExamController,
	studentExamCtrl *studentctrl.ExamController,
) {
	api := router.Group("/api/v1")

	api.POST("/auth/login", authCtrl.Login)

	// Admin-only routes
	adminGroup := api.Group("/admin",
		middleware.RequireAuth(cfg.Auth.JWTSecret),
		middleware.RequireRoles(model.RoleAdmin),
	)
	{
		adminGroup.POST("/mediators", userCtrl.CreateMediator)
		adminGroup.DELETE("/users/:user_id", userCtrl.DeleteUser)
	}

	// Shared admin/mediator management routes
	manageGroup := api.Group("/manage",
		middleware.RequireAuth(cfg.Auth.JWTSecret),
		middleware.RequireRoles(model.RoleAdmin, model.RoleMediator),
	)
	{
		manageGroup.POST("/students", userCtrl.CreateStudent)
		manageGroup.POST("/students/bulk", userCtrl.BulkCreateStudents)
		manageGroup.GET("/students", userCtrl.ListStudents)

		manageGroup.POST("/exams", examCtrl.CreateExam)
		manageGroup.GET("/exams", examCtrl.ListExams)
		manageGroup.GET("/exams/:exam_id", examCtrl.GetExam)
		manageGroup.PUT("/exams/:exam_id", examCtrl.UpdateExam)
		manageGroup.DELETE("/exams/:exam_id", examCtrl.DeleteExam)

		manageGroup.GET("/leaderboard", examCtrl.Leaderboard)
	}

	// Student routes
	studentGroup := api.Group("/student",
		middleware.RequireAuth(cfg.Auth.JWTSecret),
		middleware.RequireRoles(model.RoleStudent),
	)
	{
		studentGroup.GET("/exams", studentExamCtrl.ListExams)
		studentGroup.GET("/exams/:exam_id", studentExamCtrl.EnterExam)
		studentGroup.POST("/exams/:exam_id/submit", studentExamCtrl.SubmitExam)
		studentGroup.GET("/exams/:exam_id/my-attempts", studentExamCtrl.MyAttempts)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Exam administration server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.Exam{},
		&model.Question{},
		&model.Submission{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
