package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"musicschool/internal/catalog"
	"musicschool/internal/live"
	"musicschool/pkg/database"
	"musicschool/pkg/utils"
)

func main() {
	cfg, err := utils.LoadServerConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	gin.SetMode(gin.ReleaseMode)
	logger := log.Default()

	store, closeSource, err := openStore(cfg, logger)
	if err != nil {
		log.Fatalf("catalog source: %v", err)
	}
	defer closeSource.Close()

	if _, err := store.Reload(context.Background()); err != nil {
		log.Fatalf("initial catalog load failed: %v", err)
	}

	hub := live.NewHub(logger)
	live.BroadcastReloads(store, hub)

	httpSrv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: newRouter(deps{cfg: cfg, store: store, hub: hub, logger: logger}),
	}

	errCh := make(chan error, 1)
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Printf("HTTP API server listening on %s", cfg.HTTPAddr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

loop:
	for {
		select {
		case sig := <-sigCh:
			if sig == syscall.SIGHUP {
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				if _, err := store.Reload(ctx); err != nil {
					log.Printf("[catalog] reload failed, keeping previous snapshot: %v", err)
				}
				cancel()
				continue
			}
			log.Printf("shutdown signal received: %s", sig)
			break loop
		case err := <-errCh:
			log.Printf("server error: %v", err)
			break loop
		}
	}

	log.Println("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Printf("http shutdown error: %v", err)
	}

	wg.Wait()
	log.Println("server stopped")
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// openStore picks the catalog file when one is configured and falls back to
// the SQLite catalog opened read-only.
func openStore(cfg utils.ServerConfig, logger *log.Logger) (*catalog.Store, io.Closer, error) {
	if cfg.CatalogPath != "" {
		return catalog.NewStore(cfg.CatalogPath, catalog.FileLoader(cfg.CatalogPath), logger), nopCloser{}, nil
	}

	dbCfg := database.DefaultConfig()
	if cfg.DBPath != "" {
		dbCfg.Path = cfg.DBPath
	}
	dbCfg.ReadOnly = true

	db, err := database.Open(dbCfg)
	if err != nil {
		return nil, nil, err
	}
	repo := catalog.NewRepo(db)
	return catalog.NewStore(fmt.Sprintf("sqlite:%s", dbCfg.Path), repo.Loader(), logger), db, nil
}
