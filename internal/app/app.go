package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kasa/kasa-web/internal/config"
	"github.com/kasa/kasa-web/internal/database"
	"github.com/kasa/kasa-web/pkg/subscription"
	log "github.com/sirupsen/logrus"
	bolt "go.etcd.io/bbolt"
)

const shutdownTimeout = 10 * time.Second

// Application wires configuration, storage, router, and server lifecycle.
type Application struct {
	cfg    config.Application
	router *mux.Router
	srv    *http.Server
	deps   *Dependencies

	boltDb *bolt.DB
	pool   *pgxpool.Pool
}

// NewApplication constructs the full HTTP application, ready to Run().
func NewApplication(configPath string) (*Application, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	a := &Application{cfg: cfg}

	repo, err := a.openStorage(context.Background())
	if err != nil {
		return nil, err
	}

	deps, err := BuildDependencies(cfg, repo, nil)
	if err != nil {
		a.closeStorage()
		return nil, err
	}
	a.deps = deps

	r := mux.NewRouter()
	SetupMiddleware(r)
	RegisterRoutes(r, deps)
	a.router = r

	a.srv = &http.Server{
		Handler:      r,
		Addr:         cfg.Listen,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return a, nil
}

func (a *Application) openStorage(ctx context.Context) (subscription.Repository, error) {
	switch a.cfg.Storage.Driver {
	case "postgres":
		if err := database.Migrate(ctx, a.cfg.Database); err != nil {
			return nil, err
		}
		pool, err := database.Open(ctx, a.cfg.Database)
		if err != nil {
			return nil, err
		}
		a.pool = pool
		log.Infof("subscription storage: postgres %s:%d/%s", a.cfg.Database.Host, a.cfg.Database.Port, a.cfg.Database.Name)
		return subscription.NewPostgresRepository(pool), nil
	case "bolt", "":
		db, err := database.OpenBolt(a.cfg.Storage.BoltPath)
		if err != nil {
			return nil, err
		}
		repo, err := subscription.NewBoltRepository(db)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		a.boltDb = db
		log.Infof("subscription storage: bolt %s", a.cfg.Storage.BoltPath)
		return repo, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", a.cfg.Storage.Driver)
	}
}

func (a *Application) closeStorage() {
	if a.boltDb != nil {
		if err := a.boltDb.Close(); err != nil {
			log.Errorf("failed to close bolt db: %v", err)
		}
	}
	if a.pool != nil {
		a.pool.Close()
	}
}

// Run starts the HTTP server and the testimonial rotation, and blocks until
// SIGINT or SIGTERM, after which the server is shut down gracefully.
func (a *Application) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.deps.Carousel.Start()

	serveErr := make(chan error, 1)
	go func() {
		log.Infof("Starting server on %s", a.srv.Addr)
		if err := a.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		log.Info("Shutting down")
	case runErr = <-serveErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("server shutdown: %v", err)
	}
	a.deps.Carousel.Stop()
	a.closeStorage()

	return runErr
}
