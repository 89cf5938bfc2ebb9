package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/anwaraftab007/women-analytics-backend/internal/config"
	v1 "github.com/anwaraftab007/women-analytics-backend/internal/handler/http/v1"
	"github.com/anwaraftab007/women-analytics-backend/internal/metrics"
	"github.com/anwaraftab007/women-analytics-backend/internal/repository"
	"github.com/anwaraftab007/women-analytics-backend/internal/service"
	"github.com/anwaraftab007/women-analytics-backend/internal/webhook"
	"github.com/anwaraftab007/women-analytics-backend/internal/ws"
	"github.com/anwaraftab007/women-analytics-backend/pkg/logger"
	redisclient "github.com/anwaraftab007/women-analytics-backend/pkg/redis"

	_ "github.com/anwaraftab007/women-analytics-backend/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Women Safety Analytics API
// @version 1.0
// @description Real-time safety alerting service: SOS broadcasting, user location directory and crime zone lookups.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Инициализация каталога пользователей
	userDirectory := repository.NewUserDirectory(log)

	// Инициализация и первичная загрузка набора криминальных записей.
	// Отсутствующий файл не ошибка, битый — ошибка.
	crimeStore := repository.NewCrimeDataset(log)
	if _, err := crimeStore.Load(ctx, cfg.CrimeDataPath); err != nil {
		log.Fatalf("Failed to load crime dataset: %v", err)
	}

	// Запуск хаба рассылки для зрителей дашборда
	hub := ws.NewHub(log)
	go hub.Run(ctx)

	publishers := []service.AlertPublisher{hub}

	// Доставка на внешний вебхук включается только при настроенном WEBHOOK_URL
	if cfg.WebhookURL != "" {
		redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		log.Info("Successfully connected to Redis")

		publishers = append(publishers, webhook.NewRedisAlertPublisher(redisClient))

		relay := webhook.NewRelay(redisClient, log, cfg)
		relay.Start(ctx)
	}

	// Инициализация сервисов
	alertService := service.NewAlertService(userDirectory, log, cfg, publishers...)
	crimeService := service.NewCrimeService(crimeStore, log, cfg)

	// Запуск воркера очистки каталога пользователей
	evictionWorker := service.NewEvictionWorker(userDirectory, log, cfg)
	evictionWorker.Start(ctx)

	// Инициализация хэндлеров
	handler := v1.NewHandler(alertService, crimeService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()

	corsCfg := cors.DefaultConfig()
	if len(cfg.CORSOrigins) == 1 && cfg.CORSOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORSOrigins
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "X-API-Key", "Authorization")
	router.Use(cors.New(corsCfg))

	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// WebSocket-подключение зрителей дашборда
	router.GET("/ws", func(c *gin.Context) {
		hub.ServeWS(c.Writer, c.Request)
	})

	// Метрики Prometheus
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Статика дашборда, если настроена
	if cfg.StaticDir != "" {
		router.Static("/dashboard", cfg.StaticDir)
	}

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
