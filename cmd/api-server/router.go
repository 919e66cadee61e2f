package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"musicschool/internal/catalog"
	"musicschool/internal/live"
	"musicschool/internal/middleware"
	"musicschool/internal/player"
	"musicschool/internal/progress"
	"musicschool/pkg/utils"
)

type deps struct {
	cfg    utils.ServerConfig
	store  *catalog.Store
	hub    *live.Hub
	logger *log.Logger
}

func newRouter(d deps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger(d.logger))
	_ = router.SetTrustedProxies(d.cfg.TrustedProxies)

	// websocket routes sit outside the compressed group
	router.GET("/ws/search", live.SearchHandler(d.store, d.hub))
	router.GET("/ws/player", live.PlayerHandler(player.SampleTracks(), d.cfg.PlayerTick, d.hub))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/ready", func(c *gin.Context) {
		cat := d.store.Current()
		stats := d.hub.Stats()
		if cat.Len() == 0 {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":     "not_ready",
				"error":      "catalog is empty",
				"ws_clients": stats.WSClients,
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":     "ready",
			"courses":    cat.Len(),
			"ws_clients": stats.WSClients,
		})
	})

	router.GET("/debug", func(c *gin.Context) {
		cat := d.store.Current()
		c.JSON(http.StatusOK, gin.H{
			"source":     cat.Source(),
			"loaded_at":  cat.LoadedAt().UTC().Format(time.RFC3339),
			"courses":    cat.Len(),
			"ws_clients": d.hub.Stats().WSClients,
			"request_id": middleware.GetRequestID(c),
		})
	})

	api := router.Group("")
	api.Use(middleware.Brotli(d.cfg.BrotliLevel))

	courses := catalog.NewHandler(d.store)
	courses.RegisterRoutes(api.Group("/courses"))
	courses.RegisterOptionRoutes(api.Group("/search"))

	progress.NewHandler().RegisterRoutes(api.Group("/progress"))

	api.GET("/landing", func(c *gin.Context) {
		cat := d.store.Current()
		c.JSON(http.StatusOK, gin.H{
			"featured": cat.Featured(),
			"options":  catalog.SearchOptions(),
			"tracks":   player.SampleTracks(),
			"courses":  cat.Len(),
		})
	})

	return router
}
