package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/skillone/skillone-backend/internal/adapter/postgres"
	"github.com/skillone/skillone-backend/internal/adapter/postgres/careergoal"
	"github.com/skillone/skillone-backend/internal/adapter/postgres/course"
	"github.com/skillone/skillone-backend/internal/adapter/postgres/interaction"
	"github.com/skillone/skillone-backend/internal/adapter/postgres/learnerprofile"
	"github.com/skillone/skillone-backend/internal/adapter/postgres/learningpath"
	"github.com/skillone/skillone-backend/internal/adapter/postgres/material"
	"github.com/skillone/skillone-backend/internal/adapter/provider/embedder"
	"github.com/skillone/skillone-backend/internal/adapter/storage/sftpstore"
	"github.com/skillone/skillone-backend/internal/auth"
	"github.com/skillone/skillone-backend/internal/config"
	"github.com/skillone/skillone-backend/internal/service/catalog"
	interactionsvc "github.com/skillone/skillone-backend/internal/service/interaction"
	materialsvc "github.com/skillone/skillone-backend/internal/service/material"
	"github.com/skillone/skillone-backend/internal/service/pathgen"
	"github.com/skillone/skillone-backend/internal/service/suggest"
	"github.com/skillone/skillone-backend/internal/transport/middleware"
	"github.com/skillone/skillone-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, applies migrations, wires services and handlers, and serves
// HTTP until ctx is canceled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if err := applyMigrations(ctx, cfg.Database); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	txm := postgres.NewTxManager(pool)

	courseRepo := course.New(pool)
	profileRepo := learnerprofile.New(pool)
	pathRepo := learningpath.New(pool)
	goalRepo := careergoal.New(pool)
	materialRepo := material.New(pool)
	interactionRepo := interaction.New(pool)

	var emb *embedder.Client
	if cfg.Embedder.SemanticEnabled() {
		emb = embedder.New(cfg.Embedder, logger)
	} else {
		logger.Info("embedding provider not configured, scoring is lexical only")
	}

	var uploader *sftpstore.Uploader
	if cfg.Storage.StorageEnabled() {
		uploader = sftpstore.New(cfg.Storage, logger)
	} else {
		logger.Info("file storage not configured, material uploads disabled")
	}

	pathSvc := newPathService(logger, courseRepo, profileRepo, pathRepo, goalRepo, emb, txm, cfg.Pathgen)
	suggestSvc := suggest.NewService(logger, goalRepo, cfg.Pathgen.SuggestionLimit)
	catalogSvc := catalog.NewService(logger, courseRepo, materialRepo)
	materialSvc := newMaterialService(logger, materialRepo, courseRepo, uploader)
	interactionSvc := interactionsvc.NewService(logger, interactionRepo)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)
	verifier := auth.NewCredentialVerifier(cfg.Auth.AdminUsername, cfg.Auth.AdminPasswordHash)

	handlers := rest.Handlers{
		Health:      rest.NewHealthHandler(pool, BuildVersion()),
		Auth:        rest.NewAuthHandler(verifier, jwtManager, logger),
		Path:        rest.NewPathHandler(pathSvc, suggestSvc, logger),
		Course:      rest.NewCourseHandler(catalogSvc, logger),
		Material:    rest.NewMaterialHandler(materialSvc, logger),
		Interaction: rest.NewInteractionHandler(interactionSvc, logger),
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit)
	defer limiter.Stop()

	router := rest.NewRouter(handlers, middleware.AdminAuth(jwtManager))

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		limiter.Limit(),
	)(router)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}

func applyMigrations(ctx context.Context, cfg config.DatabaseConfig) error {
	db, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		return fmt.Errorf("sql.Open: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, os.DirFS(cfg.MigrationsDir))
	if err != nil {
		return fmt.Errorf("goose new provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	return nil
}

// newPathService exists to keep the nil embedder case explicit: a typed nil
// pointer must not be stored in the service's interface field.
func newPathService(
	logger *slog.Logger,
	courses *course.Repo,
	profiles *learnerprofile.Repo,
	paths *learningpath.Repo,
	goals *careergoal.Repo,
	emb *embedder.Client,
	txm *postgres.TxManager,
	cfg config.PathgenConfig,
) *pathgen.Service {
	if emb == nil {
		return pathgen.NewService(logger, courses, profiles, paths, goals, nil, txm, cfg)
	}
	return pathgen.NewService(logger, courses, profiles, paths, goals, emb, txm, cfg)
}

func newMaterialService(
	logger *slog.Logger,
	materials *material.Repo,
	courses *course.Repo,
	uploader *sftpstore.Uploader,
) *materialsvc.Service {
	if uploader == nil {
		return materialsvc.NewService(logger, materials, courses, nil)
	}
	return materialsvc.NewService(logger, materials, courses, uploader)
}
