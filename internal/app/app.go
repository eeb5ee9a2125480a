package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/truthlens-backend/internal/http/handlers"
	"github.com/yungbote/truthlens-backend/internal/platform/logger"
	"github.com/yungbote/truthlens-backend/internal/realtime"
	"github.com/yungbote/truthlens-backend/internal/realtime/bus"
	"github.com/yungbote/truthlens-backend/internal/server"
	"github.com/yungbote/truthlens-backend/internal/services"
	"github.com/yungbote/truthlens-backend/internal/store"
)

type App struct {
	Log    *logger.Logger
	Cfg    Config
	Docs   store.Store
	Hub    *realtime.Hub
	Bus    bus.Bus
	Router *gin.Engine

	cancel context.CancelFunc
}

func New() (*App, error) {
	cfg := LoadConfig()
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	docs, eventsBus := openStore(cfg, log)
	hub := realtime.NewHub(log)

	notifier := services.NewAnalysisNotifier(hub, eventsBus, log)
	userService := services.NewUserService(docs, log)
	uploadService := services.NewUploadService(docs, log)
	analysisService := services.NewAnalysisService(docs, notifier, cfg.FixturePath, log)

	router := server.NewRouter(server.RouterConfig{
		Log:             log,
		CORSOrigins:     cfg.CORSOrigins,
		HealthHandler:   handlers.NewHealthHandler(),
		UserHandler:     handlers.NewUserHandler(userService),
		UploadHandler:   handlers.NewUploadHandler(uploadService),
		AnalysisHandler: handlers.NewAnalysisHandler(analysisService),
		EventsHandler:   handlers.NewEventsHandler(log, hub),
		AdminHandler:    handlers.NewAdminHandler(docs),
	})

	return &App{
		Log:    log,
		Cfg:    cfg,
		Docs:   docs,
		Hub:    hub,
		Bus:    eventsBus,
		Router: router,
	}, nil
}

// openStore picks the backend once at startup. When the external store
// is enabled but unreachable the app degrades to in-memory storage and
// keeps serving, matching the demo's standalone mode.
func openStore(cfg Config, log *logger.Logger) (store.Store, bus.Bus) {
	if !cfg.Store.Enabled {
		log.Info("Using in-memory storage (set USE_DOCSTORE=true for the external store)")
		return store.NewMemory(), nil
	}

	redisStore := store.NewRedis(cfg.Store, log)
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Store.DialTimeout)
	defer cancel()
	if err := redisStore.Connect(ctx); err != nil {
		log.Warn("External store connection failed; falling back to in-memory storage", "error", err)
		return store.NewMemory(), nil
	}

	eventsBus, err := bus.NewRedisBus(bus.ConfigFromEnv(), log)
	if err != nil {
		log.Warn("Events bus init failed; realtime events stay instance-local", "error", err)
		eventsBus = nil
	}
	return redisStore, eventsBus
}

// Start launches the events-bus forwarder so analyses finished on other
// instances reach this instance's subscribers.
func (a *App) Start() {
	if a == nil || a.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel

	if a.Bus != nil {
		if err := a.Bus.StartForwarder(ctx, a.Hub.Broadcast); err != nil {
			a.Log.Warn("Events bus forwarder failed to start", "error", err)
		}
	}
}

// Run serves HTTP until ctx is cancelled, then drains in-flight requests.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.Router == nil {
		return fmt.Errorf("app not initialized")
	}

	srv := &http.Server{
		Addr:    a.Cfg.Addr,
		Handler: a.Router,
	}

	errCh := make(chan error, 1)
	go func() {
		a.Log.Info("HTTP server listening", "addr", a.Cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
	if a.Bus != nil {
		if err := a.Bus.Close(); err != nil {
			a.Log.Warn("Events bus close failed", "error", err)
		}
	}
	if a.Docs != nil {
		if err := a.Docs.Close(); err != nil {
			a.Log.Warn("Store close failed", "error", err)
		}
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
