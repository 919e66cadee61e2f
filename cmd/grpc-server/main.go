package main

import (
	"context"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	"musicschool/internal/catalog"
	"musicschool/internal/grpcserver"
	"musicschool/pkg/database"
	"musicschool/pkg/utils"
)

func main() {
	cfg, err := utils.LoadServerConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := log.Default()

	var store *catalog.Store
	if cfg.CatalogPath != "" {
		store = catalog.NewStore(cfg.CatalogPath, catalog.FileLoader(cfg.CatalogPath), logger)
	} else {
		dbCfg := database.DefaultConfig()
		if cfg.DBPath != "" {
			dbCfg.Path = cfg.DBPath
		}
		dbCfg.ReadOnly = true
		db := database.MustOpen(dbCfg)
		defer db.Close()
		store = catalog.NewStore("sqlite:"+dbCfg.Path, catalog.NewRepo(db).Loader(), logger)
	}

	if _, err := store.Reload(context.Background()); err != nil {
		log.Fatalf("initial catalog load failed: %v", err)
	}

	listener, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		log.Fatalf("grpc listen failed: %v", err)
	}

	grpcServer := grpcserver.New(store, logger)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	go func() {
		for sig := range sigCh {
			if sig == syscall.SIGHUP {
				if _, err := store.Reload(context.Background()); err != nil {
					log.Printf("[catalog] reload failed, keeping previous snapshot: %v", err)
				}
				continue
			}
			log.Printf("shutdown signal received: %s", sig)
			grpcServer.GracefulStop()
			return
		}
	}()

	log.Printf("gRPC server listening on %s", cfg.GRPCAddr)
	if err := grpcServer.Serve(listener); err != nil {
		log.Fatalf("grpc server stopped: %v", err)
	}
}
