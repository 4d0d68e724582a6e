package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/joho/godotenv"
	"github.com/treinapp/treinapp/internal/aiplan"
	"github.com/treinapp/treinapp/internal/envstruct"
	"github.com/treinapp/treinapp/internal/errors"
	"github.com/treinapp/treinapp/internal/flightrecorder"
	"github.com/treinapp/treinapp/internal/logging"
	"github.com/treinapp/treinapp/internal/nutrition"
	"github.com/treinapp/treinapp/internal/pprofserver"
	"github.com/treinapp/treinapp/internal/sqlite"
	"github.com/treinapp/treinapp/internal/training"
	"golang.org/x/sync/errgroup"
)

type application struct {
	logger           *slog.Logger
	sessionManager   *scs.SessionManager
	trainingService  *training.Service
	nutritionService *nutrition.Service
	aiPlanner        *aiplan.Generator
	flightRecorder   *flightrecorder.Service
	allowedOrigins   []string
}

type config struct {
	// Addr is the address to listen on. It's possible to choose the address dynamically with localhost:0.
	Addr string `env:"TREINAPP_ADDR" envDefault:"localhost:8081"`
	// SqliteURL is the URL to the SQLite database. You can use ":memory:" for an ethereal in-memory database.
	SqliteURL string `env:"TREINAPP_SQLITE_URL" envDefault:"./treinapp.sqlite3"`
	// PProfAddr is the optional address to listen on for the pprof server.
	PProfAddr string `env:"TREINAPP_PPROF_ADDR" envDefault:""`
	// AllowedOrigins is a comma-separated list of origins allowed to call the API from a browser.
	AllowedOrigins string `env:"TREINAPP_ALLOWED_ORIGINS" envDefault:""`
	// TracesDir enables flight recording of request timeouts when set.
	TracesDir string `env:"TREINAPP_TRACES_DIR" envDefault:""`
	// OpenAIAPIKey enables the LLM-backed program generator when set.
	OpenAIAPIKey string `env:"TREINAPP_OPENAI_API_KEY" envDefault:""`
}

func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	var (
		cancel context.CancelFunc
		err    error
	)

	ctx, cancel = signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	var cfg config
	if err = envstruct.Populate(&cfg, lookupEnv); err != nil {
		return errors.Wrap(err, "populate config")
	}

	db, err := sqlite.NewDatabase(ctx, cfg.SqliteURL, logger)
	if err != nil {
		return errors.Wrap(err, "open db", slog.String("url", cfg.SqliteURL))
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "connected to db")

	app := application{
		logger:           logger,
		sessionManager:   initializeSessionManager(db),
		trainingService:  training.NewService(db, logger),
		nutritionService: nutrition.NewService(db, logger),
		allowedOrigins:   splitOrigins(cfg.AllowedOrigins),
	}
	if cfg.OpenAIAPIKey != "" {
		app.aiPlanner = aiplan.NewGenerator(cfg.OpenAIAPIKey, logger)
	}
	if cfg.TracesDir != "" {
		recorder, recorderErr := flightrecorder.New(flightrecorder.Config{
			Logger:          logger,
			TracesDirectory: cfg.TracesDir,
		})
		if recorderErr != nil {
			return errors.Wrap(recorderErr, "new flight recorder")
		}
		if err = recorder.Start(ctx); err != nil {
			return errors.Wrap(err, "start flight recorder")
		}
		defer recorder.Stop(ctx)
		app.flightRecorder = recorder
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return app.configureAndStartServer(ctx, cfg.Addr)
	})
	if cfg.PProfAddr != "" {
		g.Go(func() error {
			return pprofserver.Launch(ctx, cfg.PProfAddr, logger)
		})
	}
	if err = g.Wait(); err != nil {
		return errors.Wrap(err, "serve")
	}
	return nil
}

func initializeSessionManager(dbs *sqlite.Database) *scs.SessionManager {
	sessionManager := scs.New()
	sessionManager.Store = sqlite3store.NewWithCleanupInterval(dbs.ReadWrite, 24*time.Hour) //nolint:mnd // day
	sessionManager.Lifetime = 12 * time.Hour                                                //nolint:mnd // half a day
	sessionManager.Cookie.Persist = true
	sessionManager.Cookie.Secure = true
	sessionManager.Cookie.HttpOnly = true
	sessionManager.Cookie.SameSite = http.SameSiteStrictMode
	return sessionManager
}

func main() {
	ctx := context.Background()
	_ = godotenv.Load()
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource:   false,
		Level:       slog.LevelDebug,
		ReplaceAttr: nil,
	}))
	logger := slog.New(loggerHandler)
	if err := run(ctx, logger, os.LookupEnv); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "failure starting application", errors.SlogError(err))
		os.Exit(1)
	}
}
