package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/muhammadheryan/restock/cmd/config"
	"github.com/muhammadheryan/restock/thirdparty/rabbitmq"
	"github.com/muhammadheryan/restock/utils/logger"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer, err := rabbitmq.NewConsumer(
		cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password,
		cfg.Internal.APIURL, cfg.Internal.APIKey,
	)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer consumer.Close()

	logger.Info("Stock movement consumer running", zap.String("queue", rabbitmq.StockMovementQueue))
	if err := consumer.Start(ctx); err != nil {
		logger.Fatal("err start consumer", zap.Error(err))
	}

	<-ctx.Done()
	logger.Info("Stock movement consumer stopped")
}
