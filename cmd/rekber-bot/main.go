package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	tele "gopkg.in/telebot.v3"

	"github.com/rekberinx/rekber-bot/internal/config"
	"github.com/rekberinx/rekber-bot/internal/delivery/telegram"
	"github.com/rekberinx/rekber-bot/internal/infrastructure/kafka"
	"github.com/rekberinx/rekber-bot/internal/infrastructure/metrics"
	"github.com/rekberinx/rekber-bot/internal/infrastructure/migrate"
	"github.com/rekberinx/rekber-bot/internal/infrastructure/postgres"
	"github.com/rekberinx/rekber-bot/internal/infrastructure/postgres/repository"
	"github.com/rekberinx/rekber-bot/internal/infrastructure/storage"
	"github.com/rekberinx/rekber-bot/internal/usecase/identity"
	"github.com/rekberinx/rekber-bot/internal/usecase/notify"
	"github.com/rekberinx/rekber-bot/internal/usecase/payment"
	"github.com/rekberinx/rekber-bot/internal/usecase/transaction"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	// Init database
	db := postgres.MustInitDB(cfg)

	// Apply SQL migrations
	if cfg.Migrations.Path != "" {
		if err := migrate.Run(db, cfg.Migrations.Path); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	// Init repositories
	userRepo := repository.NewDefaultUserRepository(db)
	txRepo := repository.NewDefaultTransactionRepository(db)
	auditRepo := repository.NewDefaultAuditLogRepository(db)
	paymentRepo := repository.NewDefaultPaymentMethodRepository(db)

	// Init kafka publisher
	brokers := []string{fmt.Sprintf("%s:%s", cfg.Kafka.Host, cfg.Kafka.Port)}
	eventPublisher := kafka.NewKafkaPublisher(brokers, cfg.Kafka.Topic)

	// Init metrics and expose them
	botMetrics := metrics.NewBotMetrics()
	go func() {
		http.Handle("/metrics", promhttp.Handler())
		if err := http.ListenAndServe(cfg.Metrics.Addr, nil); err != nil {
			slog.Error("metrics server stopped", "error", err.Error())
		}
	}()

	// Init proof storage
	proofStore, err := storage.NewProofStore(cfg.Proofs.Dir)
	if err != nil {
		log.Fatalf("failed to init proof storage: %v", err)
	}

	// Init bot
	bot, err := tele.NewBot(tele.Settings{
		Token:     cfg.Telegram.Token,
		Poller:    &tele.LongPoller{Timeout: 10 * time.Second},
		ParseMode: tele.ModeHTML,
	})
	if err != nil {
		log.Fatalf("failed to init telegram bot: %v", err)
	}

	// Init transport adapters
	sender := telegram.NewSender(bot)
	channelGate := telegram.NewChannelGate(bot, cfg.Telegram.Channel)

	// Init usecases
	dispatcher := notify.NewDispatcher(sender, userRepo, botMetrics)
	identityUsecase := identity.NewUsecase(userRepo, auditRepo, channelGate, cfg.Telegram.OperatorID)
	paymentUsecase := payment.NewUsecase(paymentRepo)
	txUsecase := transaction.NewUsecase(
		txRepo,
		userRepo,
		auditRepo,
		dispatcher,
		eventPublisher,
		botMetrics,
		cfg.Telegram.OperatorID,
	)

	identityUsecase.EnsureOperator(context.Background())

	// Register routes and start polling
	handler := telegram.NewHandler(
		bot,
		identityUsecase,
		paymentUsecase,
		txUsecase,
		dispatcher,
		proofStore,
		cfg.Telegram.Channel,
		cfg.Telegram.OperatorID,
	)
	handler.Register()

	slog.Info("rekber bot started", "env", cfg.Env, "channel", cfg.Telegram.Channel)
	bot.Start()
}
