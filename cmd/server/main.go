package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/TheKazutoPe/MONITOREO-GPS/internal/config"
	"github.com/TheKazutoPe/MONITOREO-GPS/internal/freshness"
	"github.com/TheKazutoPe/MONITOREO-GPS/internal/handlers"
	"github.com/TheKazutoPe/MONITOREO-GPS/internal/identity"
	"github.com/TheKazutoPe/MONITOREO-GPS/internal/ingest"
	"github.com/TheKazutoPe/MONITOREO-GPS/internal/metrics"
	"github.com/TheKazutoPe/MONITOREO-GPS/internal/repository"
	"github.com/TheKazutoPe/MONITOREO-GPS/internal/telegram"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	db, err := repository.ConnectWithRetry(cfg.DBDSN, 10, 2*time.Second)
	if err != nil {
		log.Fatalf("db connect error: %v", err)
	}

	metrics.Register()

	locations := repository.NewLocationRepository(db)
	profiles := repository.NewProfileRepository(db)

	resolver := identity.NewResolver(profiles)
	ingestor := ingest.NewService(locations, resolver)
	aggregator := freshness.NewAggregator(locations)
	botClient := telegram.NewClient(cfg.TelegramAPIURL, cfg.BotToken)

	webhookHandler := handlers.NewWebhookHandler(ingestor)
	locationsHandler := handlers.NewLocationsHandler(aggregator)
	registerHandler := handlers.NewRegisterHandler(botClient, cfg.PublicURL)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), metrics.Middleware())

	router.POST("/webhook/telegram", webhookHandler.Handle)
	router.GET("/api/ubicaciones", locationsHandler.Handle)
	router.GET("/registrar_webhook", registerHandler.Handle)
	router.GET("/", handlers.MapPageHandler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Printf("listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	log.Println("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown error: %v", err)
	}
}
