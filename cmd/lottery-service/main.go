package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/duobao-games/lottery-draw-service/internal/app/background"
	"github.com/duobao-games/lottery-draw-service/internal/config"
	"github.com/duobao-games/lottery-draw-service/internal/delivery/httpapi"
	"github.com/duobao-games/lottery-draw-service/internal/infrastructure/kafka"
	"github.com/duobao-games/lottery-draw-service/internal/infrastructure/logger"
	"github.com/duobao-games/lottery-draw-service/internal/infrastructure/metrics"
	"github.com/duobao-games/lottery-draw-service/internal/infrastructure/migrate"
	"github.com/duobao-games/lottery-draw-service/internal/infrastructure/postgres"
	"github.com/duobao-games/lottery-draw-service/internal/infrastructure/postgres/repository"
	"github.com/duobao-games/lottery-draw-service/internal/retry"
	"github.com/duobao-games/lottery-draw-service/internal/usecase/draw"
	"github.com/duobao-games/lottery-draw-service/internal/usecase/ledger"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	logger.SetupLogger(cfg.LogConfig)

	// Init database
	db := postgres.MustInitDB(cfg)
	if cfg.LotteryDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.LotteryDB.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v\n", err)
		}
	}

	// Init kafka publisher
	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	drawPublisher := kafka.NewKafkaPublisher(brokers, cfg.KafkaService.Topic)

	// Init metrics
	lotteryMetrics := metrics.NewLotteryMetrics()

	// Init repos
	userRepo := repository.NewDefaultUserRepository(db)
	roundRepo := repository.NewDefaultRoundRepository(db)
	productRepo := repository.NewDefaultProductRepository(db)
	orderRepo := repository.NewDefaultOrderRepository(db)
	participationRepo := repository.NewDefaultParticipationRepository(db)
	ledgerRepo := repository.NewDefaultLedgerRepository(db)
	auditLogger := logger.NewPGDrawAuditLogger(db)

	// Init usecases
	ledgerUC := ledger.NewDefaultLedgerUsecase(
		userRepo,
		roundRepo,
		productRepo,
		orderRepo,
		ledgerRepo,
		lotteryMetrics,
	)
	drawUC := draw.NewDefaultDrawUsecase(
		roundRepo,
		participationRepo,
		productRepo,
		drawPublisher,
		auditLogger,
		lotteryMetrics,
		cfg.DrawConfig,
	)
	ledgerUC.AttachDrawTrigger(drawUC)

	// Background sweep and stuck-round monitor
	tasks := background.NewBackgroundTasks(drawUC, cfg.DrawConfig)
	tasks.StartAll(context.Background())

	// Metrics endpoint
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		addr := fmt.Sprintf("%s:%s", cfg.MetricsServer.Host, cfg.MetricsServer.Port)
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Fatalf("failed to serve metrics: %v\n", err)
		}
	}()

	// HTTP API
	policy := retry.New(cfg.RetryConfig.MaxAttempts, cfg.RetryConfig.MinJitter, cfg.RetryConfig.MaxJitter)
	handler := httpapi.NewLotteryHandler(ledgerUC, drawUC, policy)

	router := gin.Default()
	handler.RegisterRoutes(router)

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	log.Printf("lottery service started on %s\n", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}
