package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"personal-secretary/config"
	_ "personal-secretary/docs" // Swagger docs
	commandHTTP "personal-secretary/internal/command/delivery/http"
	commandUC "personal-secretary/internal/command/usecase"
	"personal-secretary/internal/httpserver"
	"personal-secretary/internal/interpreter"
	"personal-secretary/internal/middleware"
	"personal-secretary/internal/mirror"
	"personal-secretary/internal/task"
	taskHTTP "personal-secretary/internal/task/delivery/http"
	sqliteRepo "personal-secretary/internal/task/repository/sqlite"
	taskUC "personal-secretary/internal/task/usecase"
	"personal-secretary/pkg/datemath"
	"personal-secretary/pkg/gcalendar"
	"personal-secretary/pkg/log"
)

// @title       Personal Secretary API
// @description Voice/text personal task manager with a natural language command interface.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Personal Secretary...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	db, err := sqliteRepo.Open(cfg.Database.Path)
	if err != nil {
		logger.Errorf(ctx, "Failed to open database %q: %v", cfg.Database.Path, err)
		return
	}
	defer db.Close()

	repo, err := sqliteRepo.New(db, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize task repository: %v", err)
		return
	}

	// 4. Task domain
	var tasks task.UseCase = taskUC.New(repo, logger, nil)

	// Google Calendar mirror (optional)
	if cfg.GoogleCalendar.Enabled && cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			tasks = mirror.NewUseCase(tasks, calendarClient, mirror.Config{
				CalendarID: cfg.GoogleCalendar.CalendarID,
				Timezone:   cfg.Interpreter.Timezone,
			}, logger)
			logger.Info(ctx, "Google Calendar mirror initialized")
		}
	}

	// 5. Command domain
	resolver, err := datemath.NewResolver(cfg.Interpreter.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Interpreter.Timezone, err)
		resolver, _ = datemath.NewResolver("UTC")
	}
	itp := interpreter.New(resolver)
	commands := commandUC.New(logger, itp, tasks, nil)

	// 6. HTTP surface
	rateLimit := 0
	if cfg.RateLimit.Enabled {
		rateLimit = cfg.RateLimit.RequestsPerMin
	}
	mw := middleware.New(logger, middleware.Config{
		AllowedOrigins:  cfg.CORS.AllowedOrigins,
		RateLimitPerMin: rateLimit,
	})

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		Middleware:     mw,
		TaskHandler:    taskHTTP.New(logger, tasks),
		CommandHandler: commandHTTP.New(logger, commands),
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
