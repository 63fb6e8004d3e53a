// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/lmittmann/tint"

	"cohort_lms/internal/config"
	"cohort_lms/internal/handlers"
	"cohort_lms/internal/repository"
	"cohort_lms/internal/service"
)

func main() {
	// 設定ファイル読み込み用の一時的なロガー
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)
	log.Println("Log Config Loading...")

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs"
	}
	if err := config.LoadConfig(configPath); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := newLogger(config.Cfg.Log.Level, tempLogger)
	slog.SetDefault(logger)
	slog.Info("Application starting...", slog.String("version", config.AppVersion))

	// 1. DB 接続
	db, err := repository.NewDB(config.Cfg.Database, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	if config.Cfg.Database.Driver == "sqlite" {
		// sqlite はローカル用なので起動時にスキーマを作る
		if err := repository.AutoMigrate(db); err != nil {
			slog.Error("Error migrating database", slog.Any("error", err))
			os.Exit(1)
		}
	}

	// 2. 依存関係の組み立て
	mailer, err := service.NewMailer(&config.Cfg)
	if err != nil {
		slog.Error("Error initializing mailer", slog.Any("error", err))
		os.Exit(1)
	}
	clock := service.SystemClock{}

	userRepo := repository.NewGormUserRepository()
	curriculumRepo := repository.NewGormCurriculumRepository()
	moduleRepo := repository.NewGormModuleRepository()
	lessonRepo := repository.NewGormLessonRepository()
	blockRepo := repository.NewGormContentBlockRepository()
	cohortRepo := repository.NewGormCohortRepository()
	enrollmentRepo := repository.NewGormEnrollmentRepository()
	assignmentRepo := repository.NewGormModuleAssignmentRepository()
	progressRepo := repository.NewGormProgressRepository()
	submissionRepo := repository.NewGormSubmissionRepository()

	services := handlers.Services{
		Users: service.NewUserService(db, userRepo, cohortRepo, enrollmentRepo, assignmentRepo, moduleRepo,
			service.NewIdentityClient(config.Cfg.Identity), clock),
		Dashboard: service.NewDashboardService(db, userRepo, enrollmentRepo, cohortRepo, curriculumRepo,
			progressRepo, submissionRepo, clock),
		Progress: service.NewProgressService(db, progressRepo, blockRepo, lessonRepo, moduleRepo, userRepo, clock),
		Submissions: service.NewSubmissionService(db, submissionRepo, progressRepo, blockRepo, mailer, clock,
			config.Cfg.App.FrontendURL),
		Curricula: service.NewCurriculumService(db, curriculumRepo, moduleRepo),
		Lessons: service.NewLessonService(db, moduleRepo, lessonRepo, blockRepo, enrollmentRepo, progressRepo,
			submissionRepo, clock),
		Cohorts: service.NewCohortService(db, cohortRepo, curriculumRepo, userRepo, enrollmentRepo, assignmentRepo,
			moduleRepo, progressRepo, clock),
	}

	// 3. ルーター
	router, err := handlers.NewRouter(&config.Cfg, db, services, logger)
	if err != nil {
		slog.Error("Error building router", slog.Any("error", err))
		os.Exit(1)
	}

	// 4. サーバー起動
	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}

// newLogger は APP_ENV=dev なら tint、それ以外は JSON で出力する
func newLogger(level string, tempLogger *slog.Logger) *slog.Logger {
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		tempLogger.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	return slog.New(handler)
}
