package listener

import (
	"context"
	"encoding/json"
	"time"

	"github.com/avelora/storefront-admin-service/internal/sales"
	"github.com/avelora/storefront-admin-service/internal/sales/dto"
	"github.com/avelora/storefront-admin-service/pkg/broker"
	"github.com/avelora/storefront-admin-service/pkg/logger"
	"go.uber.org/zap"
)

// OrderListener consumes OrderCreated events from the order service's topic and
// records them for the sales dashboard.
type OrderListener struct {
	consumer *broker.KafkaConsumer
	uc       sales.UseCase
	logger   logger.ZapLogger
}

func NewOrderListener(consumer *broker.KafkaConsumer, uc sales.UseCase, logger logger.ZapLogger) *OrderListener {
	return &OrderListener{
		consumer: consumer,
		uc:       uc,
		logger:   logger,
	}
}

func (l *OrderListener) Start(ctx context.Context) {
	l.logger.Info("Starting Order Kafka Listener")
	for {
		select {
		case <-ctx.Done():
			l.logger.Info("Stopping Order Kafka Listener")
			return
		default:
			msg, err := l.consumer.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				l.logger.Error("Failed to read kafka message", zap.Error(err))
				time.Sleep(1 * time.Second)
				continue
			}
			l.processMessage(ctx, msg.Value)
		}
	}
}

type OrderCreatedEvent struct {
	EventID   string       `json:"event_id"`
	EventType string       `json:"event_type"`
	Payload   OrderPayload `json:"payload"`
	Timestamp time.Time    `json:"timestamp"`
}

type OrderPayload struct {
	ID      string             `json:"id"`
	StoreID string             `json:"store_id"`
	UserID  string             `json:"user_id"`
	Total   float64            `json:"total"`
	Status  string             `json:"status"`
	Items   []OrderItemPayload `json:"items"`
}

type OrderItemPayload struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

func (l *OrderListener) processMessage(ctx context.Context, value []byte) {
	var event OrderCreatedEvent
	if err := json.Unmarshal(value, &event); err != nil {
		l.logger.Error("Failed to unmarshal event", zap.Error(err))
		return
	}

	if event.EventType != "OrderCreated" {
		return
	}

	l.logger.Info("Processing OrderCreated event", zap.String("order_id", event.Payload.ID))

	input := &dto.RecordOrderInput{
		OrderID: event.Payload.ID,
		StoreID: event.Payload.StoreID,
		UserID:  event.Payload.UserID,
		Total:   event.Payload.Total,
		Status:  event.Payload.Status,
	}
	for _, item := range event.Payload.Items {
		input.Items = append(input.Items, dto.RecordOrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	if err := l.uc.RecordOrder(ctx, input); err != nil {
		l.logger.Error("Failed to record order",
			zap.String("order_id", event.Payload.ID),
			zap.Error(err),
		)
	}
}
