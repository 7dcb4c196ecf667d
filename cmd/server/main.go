package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ella-quan/meowhome/internal/config"
	"github.com/ella-quan/meowhome/internal/database"
	"github.com/ella-quan/meowhome/internal/handler"
	"github.com/ella-quan/meowhome/internal/identity"
	"github.com/ella-quan/meowhome/internal/jobs"
	"github.com/ella-quan/meowhome/internal/media"
	"github.com/ella-quan/meowhome/internal/middleware"
	"github.com/ella-quan/meowhome/internal/model"
	"github.com/ella-quan/meowhome/internal/parser"
	"github.com/ella-quan/meowhome/internal/realtime"
	"github.com/ella-quan/meowhome/internal/repository"
	"github.com/ella-quan/meowhome/internal/service"
	"github.com/ella-quan/meowhome/internal/store"
)

func main() {
	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection
	db := database.NewSurrealDB(database.Config{
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	})

	ctx := context.Background()
	if err := db.Connect(ctx); err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	slog.Info("connected to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Database),
	)

	// Family-scoped repository over the four collections
	repo := repository.NewFamilyRepository(db, cfg.Family.ID)

	// In-memory aggregate, change stream hub, and the sync layer that
	// mirrors the database into the store
	appStore := store.New()
	hub := service.NewHub()
	defer hub.Close()

	syncer := realtime.NewSyncer(realtime.Config{
		Store:        appStore,
		Repo:         repo,
		Notifier:     hub,
		Logger:       logger,
		PollInterval: cfg.Sync.PollInterval,
		ReadyTimeout: cfg.Sync.ReadyTimeout,
	})
	syncer.Start(ctx)
	defer syncer.Close()

	// Device identity and photo binary storage
	identityFile := identity.NewFile(cfg.Family.IdentityPath)

	mediaStore, err := media.NewDiskStore(cfg.Media.Dir, cfg.Media.BaseURL)
	if err != nil {
		slog.Error("failed to initialize media storage", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Natural-language parser. Keep the interface nil when the feature
	// is disabled; a typed nil would slip past the service's nil check.
	var inputParser service.InputParser
	if gemini := parser.NewGemini(parser.Config{
		APIKey:  cfg.Parser.GeminiAPIKey,
		Model:   cfg.Parser.GeminiModel,
		BaseURL: cfg.Parser.BaseURL,
	}); gemini != nil {
		inputParser = gemini
		slog.Info("magic input enabled", slog.String("model", cfg.Parser.GeminiModel))
	} else {
		slog.Warn("magic input disabled, no Gemini API key configured")
	}

	// Initialize services
	eventService := service.NewEventService(appStore, repo, hub, logger)
	todoService := service.NewTodoService(appStore, repo, hub, logger)
	memberService := service.NewMemberService(appStore, repo, identityFile, hub, logger)
	photoService := service.NewPhotoService(appStore, repo, mediaStore, hub, logger)
	magicService := service.NewMagicService(appStore, inputParser, todoService, eventService, logger)
	calendarService := service.NewCalendarService(appStore)
	dashboardService := service.NewDashboardService(appStore)

	// Initialize handlers
	eventHandler := handler.NewEventHandler(eventService)
	todoHandler := handler.NewTodoHandler(todoService)
	memberHandler := handler.NewMemberHandler(memberService)
	photoHandler := handler.NewPhotoHandler(photoService)
	magicHandler := handler.NewMagicHandler(magicService)
	calendarHandler := handler.NewCalendarHandler(calendarService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	streamHandler := handler.NewStreamHandler(hub)
	dataHandler := handler.NewAppDataHandler(appStore)

	// Background jobs
	scheduler := jobs.NewScheduler(logger)
	if err := scheduler.Add(cfg.Sync.RefreshCron, jobs.NewSnapshotRefreshJob(syncer)); err != nil {
		slog.Error("failed to schedule snapshot refresh", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := scheduler.Add(cfg.Media.SweepCron, jobs.NewMediaSweepJob(appStore, mediaStore, logger)); err != nil {
		slog.Error("failed to schedule media sweep", slog.String("error", err.Error()))
		os.Exit(1)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// The magic endpoint proxies a metered API, so it gets its own
	// tighter limiter on top of the global one.
	magicLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		Rate:   10,
		Window: time.Minute,
		Burst:  5,
	})
	defer magicLimiter.Stop()

	globalLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{})
	defer globalLimiter.Stop()

	// Routes
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(r.Context()); err != nil {
			handler.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
			return
		}
		handler.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-syncer.Ready():
			handler.WriteJSON(w, http.StatusOK, map[string]string{"status": "ready"})
		default:
			handler.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "starting"})
		}
	})

	mux.HandleFunc("GET /v1/data", dataHandler.Snapshot)
	mux.HandleFunc("GET /v1/stream", streamHandler.Stream)
	mux.HandleFunc("GET /v1/dashboard", dashboardHandler.Summary)

	mux.HandleFunc("GET /v1/events", eventHandler.List)
	mux.HandleFunc("POST /v1/events", eventHandler.Create)
	mux.HandleFunc("GET /v1/events/{id}", eventHandler.Get)
	mux.HandleFunc("PUT /v1/events/{id}", eventHandler.Update)
	mux.HandleFunc("DELETE /v1/events/{id}", eventHandler.Delete)

	mux.HandleFunc("GET /v1/todos", todoHandler.List)
	mux.HandleFunc("POST /v1/todos", todoHandler.Create)
	mux.HandleFunc("POST /v1/todos/{id}/toggle", todoHandler.Toggle)
	mux.HandleFunc("DELETE /v1/todos/{id}", todoHandler.Delete)

	mux.HandleFunc("GET /v1/members", memberHandler.List)
	mux.HandleFunc("POST /v1/onboarding", memberHandler.Onboard)
	mux.HandleFunc("GET /v1/me", memberHandler.Me)

	mux.HandleFunc("GET /v1/photos", photoHandler.List)
	mux.HandleFunc("POST /v1/photos", photoHandler.Create)
	mux.HandleFunc("POST /v1/photos/upload", photoHandler.Upload)
	mux.HandleFunc("DELETE /v1/photos/{id}", photoHandler.Delete)

	mux.HandleFunc("GET /v1/calendar", calendarHandler.Grid)
	mux.HandleFunc("GET /v1/calendar/export.ics", calendarHandler.Export)

	mux.Handle("POST /v1/magic",
		middleware.RateLimit(magicLimiter)(http.HandlerFunc(magicHandler.Process)))

	// Uploaded photo binaries
	mux.Handle("GET "+cfg.Media.BaseURL+"/",
		http.StripPrefix(cfg.Media.BaseURL+"/", mediaStore.Handler()))

	// Apply global middleware
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
		middleware.RateLimit(globalLimiter),
		middleware.Compress,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Block startup on the first member roster (or the timeout), then
	// check the device identity still resolves.
	<-syncer.Ready()
	if id, err := identityFile.Read(); err == nil && id != "" {
		if _, ok := model.MemberByID(appStore.Members(), id); !ok {
			slog.Warn("device identity not found in roster, keeping it",
				slog.String("member_id", id),
			)
		}
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
			slog.String("family", cfg.Family.ID),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
