package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"streamhub/internal/api"
	"streamhub/internal/api/middleware"
	"streamhub/internal/database"
	"streamhub/pkg/factory"
)

func main() {
	appFactory, err := factory.NewFactory()
	if err != nil {
		fmt.Printf("Factory oluşturulamadı: %v\n", err)
		os.Exit(1)
	}

	log := appFactory.GetLogger()
	cfg := appFactory.GetConfig()
	db := appFactory.GetDB()

	defer db.Close()

	log.Info("Uygulama başlatılıyor", map[string]interface{}{"env": cfg.AppEnv, "version": cfg.AppVersion})

	migrationService := database.NewMigrationService(db, log)
	if err := migrationService.RunMigrations(); err != nil {
		log.Fatal("Migrationlar uygulanamadı", map[string]interface{}{"error": err.Error()})
	}

	validate := appFactory.GetValidator()
	responder := api.NewResponder(log, cfg.Debug)

	authService := appFactory.GetAuthService()
	channelService := appFactory.GetChannelService()
	videoService := appFactory.GetVideoService()

	authHandler := api.NewAuthHandler(authService, validate, responder, log)
	channelHandler := api.NewChannelHandler(channelService, validate, responder, log)
	videoHandler := api.NewVideoHandler(videoService, validate, responder, log)
	healthHandler := api.NewHealthHandler(db, appFactory.GetRedisClient(), cfg.AppVersion, log)
	rootHandler := api.NewRootHandler(responder, cfg.AppName, cfg.AppVersion)

	requireAuth := api.RequireAuth(authService, responder)

	mux := http.NewServeMux()

	authHandler.RegisterRoutes(mux, requireAuth)
	channelHandler.RegisterRoutes(mux)
	videoHandler.RegisterRoutes(mux)
	healthHandler.RegisterRoutes(mux)
	rootHandler.RegisterRoutes(mux)

	mux.Handle("GET /metrics", promhttp.Handler())

	handler := middleware.CORSMiddleware(cfg.CORS.Origins)(middleware.MetricsMiddleware(mux))

	server := &http.Server{
		Addr:    cfg.Server.Host + ":" + cfg.Server.Port,
		Handler: handler,
	}

	go func() {
		log.Info("HTTP sunucusu başlatılıyor", map[string]interface{}{"addr": server.Addr})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP sunucusu başlatılamadı", map[string]interface{}{"error": err.Error()})
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Sunucu kapatılıyor...", map[string]interface{}{})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("Sunucu kapatılırken hata oluştu", map[string]interface{}{"error": err.Error()})
	}

	log.Info("Sunucu başarıyla kapatıldı", map[string]interface{}{})
}
