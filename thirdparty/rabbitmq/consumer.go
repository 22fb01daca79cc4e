package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/muhammadheryan/restock/model"
	"github.com/muhammadheryan/restock/utils/logger"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const (
	StockMovementExchange   = "stock_movement_exchange"
	StockMovementQueue      = "reorder_cache_invalidation_queue"
	StockMovementRoutingKey = "stock_movement"
)

// Consumer listens for stock movements and asks the API to drop the cached
// suggestions of the affected tenant.
type Consumer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	apiURL  string
	apiKey  string
	client  *http.Client
}

func NewConsumer(host string, port int, user, password, apiURL, apiKey string) (*Consumer, error) {
	dsn := fmt.Sprintf("amqp://%s:%s@%s:%d/", user, password, host, port)
	conn, err := amqp091.Dial(dsn)
	if err != nil {
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	if err := declare(channel, StockMovementExchange, StockMovementQueue, StockMovementRoutingKey); err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	return &Consumer{
		conn:    conn,
		channel: channel,
		apiURL:  apiURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
	}, nil
}

func (c *Consumer) Start(ctx context.Context) error {
	// Set QoS to 1 - process one message at a time
	err := c.channel.Qos(1, 0, false)
	if err != nil {
		return err
	}

	msgs, err := c.channel.Consume(
		StockMovementQueue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}

				var movement model.StockMovementMessage
				if err := json.Unmarshal(msg.Body, &movement); err != nil || movement.TenantID == 0 {
					logger.Warn("[Consumer] drop malformed stock movement", zap.ByteString("body", msg.Body))
					_ = msg.Ack(false)
					continue
				}

				if err := c.callInvalidateAPI(ctx, movement.TenantID); err != nil {
					logger.Error("[Consumer] invalidate reorder cache", zap.Uint64("tenant_id", movement.TenantID), zap.Error(err))
					// Negative ack to requeue
					_ = msg.Nack(false, true)
					continue
				}

				_ = msg.Ack(false)
				logger.Debug("[Consumer] reorder cache invalidated", zap.Uint64("tenant_id", movement.TenantID), zap.Uint64("item_id", movement.ItemID))
			}
		}
	}()

	return nil
}

func (c *Consumer) callInvalidateAPI(ctx context.Context, tenantID uint64) error {
	url := fmt.Sprintf("%s/internal/v1/reorder/%d/invalidate", c.apiURL, tenantID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return err
	}

	// Add authorization header using the API key (internal service key)
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Internal-Service", "reorder-cache-consumer")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 500 {
		return fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	return nil
}
