package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/incident_dispatch/internal/models"
)

//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks

const (
	dispatchQueueKey = "dispatch_events"
)

// Виды уведомлений для диспетчеров
const (
	EventIncidentReported      = "incident.reported"
	EventIncidentStatusChanged = "incident.status_changed"
)

// DispatchEvent - уведомление диспетчеров об изменении инцидента
type DispatchEvent struct {
	Event     string          `json:"event"`
	Incident  models.Incident `json:"incident"`
	Timestamp time.Time       `json:"timestamp"`
}

// NewDispatchEvent собирает событие с текущим временем
func NewDispatchEvent(event string, incident models.Incident) DispatchEvent {
	return DispatchEvent{
		Event:     event,
		Incident:  incident,
		Timestamp: time.Now().UTC(),
	}
}

// DispatchPublisher - интерфейс для публикации уведомлений
type DispatchPublisher interface {
	Publish(ctx context.Context, event DispatchEvent) error
}

// RedisDispatchPublisher - реализация DispatchPublisher, использующая Redis
type RedisDispatchPublisher struct {
	redisClient *redis.Client
}

// NewRedisDispatchPublisher создает новый RedisDispatchPublisher
func NewRedisDispatchPublisher(client *redis.Client) *RedisDispatchPublisher {
	return &RedisDispatchPublisher{
		redisClient: client,
	}
}

// Publish публикует событие в очередь Redis
func (p *RedisDispatchPublisher) Publish(ctx context.Context, event DispatchEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal dispatch event: %w", err)
	}

	// LPUSH добавляет событие в левую часть списка, воркер забирает справа
	if err := p.redisClient.LPush(ctx, dispatchQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish dispatch event to Redis: %w", err)
	}
	return nil
}

// NopPublisher используется, когда Redis не настроен
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, DispatchEvent) error { return nil }
