package main

import (
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	authapp "github.com/muhammadheryan/restock/application/auth"
	reorderapp "github.com/muhammadheryan/restock/application/reorder"
	"github.com/muhammadheryan/restock/cmd/config"
	redisclient "github.com/muhammadheryan/restock/cmd/redis"
	_ "github.com/muhammadheryan/restock/docs"
	eventRepo "github.com/muhammadheryan/restock/repository/event"
	itemRepo "github.com/muhammadheryan/restock/repository/item"
	purchaseOrderRepo "github.com/muhammadheryan/restock/repository/purchaseorder"
	redisRepo "github.com/muhammadheryan/restock/repository/redis"
	txRepo "github.com/muhammadheryan/restock/repository/tx"
	"github.com/muhammadheryan/restock/thirdparty/rabbitmq"
	"github.com/muhammadheryan/restock/transport"
	"github.com/muhammadheryan/restock/utils/logger"
	validatorx "github.com/muhammadheryan/restock/utils/validator"
	"go.uber.org/zap"
)

// @title RESTOCK API
// @version 1.0
// @description Predictive reorder suggestions for bar inventory
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))
	validatorx.Init()

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Notices are best effort; the API keeps serving without a broker
	var publisher reorderapp.NoticePublisher
	rmq, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Warn("err connect rabbitmq, delivery risk notices disabled", zap.Error(err))
	} else {
		publisher = rmq
		defer rmq.Close()
	}

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	EventRepo := eventRepo.NewEventRepository(db)
	ItemRepo := itemRepo.NewItemRepository(db)
	PurchaseOrderRepo := purchaseOrderRepo.NewPurchaseOrderRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// Initialize application layers
	AuthApp := authapp.NewAuthApp(cfg, RedisRepo)
	ReorderApp := reorderapp.NewReorderApp(cfg, TxRepo, EventRepo, ItemRepo, PurchaseOrderRepo, RedisRepo, publisher)

	httpTransport := transport.NewTransport(ReorderApp, AuthApp, cfg.Internal.APIKey)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
