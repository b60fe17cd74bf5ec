package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/incident_dispatch/internal/config"
	"github.com/sirupsen/logrus"
)

// SignatureHeader - заголовок с HMAC-SHA256 подписью тела запроса
const SignatureHeader = "X-Webhook-Signature"

// popTimeout ограничивает BRPOP, чтобы воркер замечал отмену контекста
const popTimeout = 5 * time.Second

// DispatchWorker забирает события из очереди и доставляет их на вебхук диспетчеров
type DispatchWorker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
	sleep       func(ctx context.Context, d time.Duration) bool
	done        chan struct{}
}

// NewDispatchWorker создает новый DispatchWorker
func NewDispatchWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config) *DispatchWorker {
	return &DispatchWorker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
		sleep: sleepCtx,
		done:  make(chan struct{}),
	}
}

// Start запускает горутину для обработки очереди
func (w *DispatchWorker) Start(ctx context.Context) {
	w.logger.Info("Starting dispatch worker...")
	go func() {
		defer close(w.done)
		for {
			if ctx.Err() != nil {
				w.logger.Info("Stopping dispatch worker.")
				return
			}

			// BRPOP - блокирующее извлечение из правой части списка (очереди)
			result, err := w.redisClient.BRPop(ctx, popTimeout, dispatchQueueKey).Result()
			if errors.Is(err, redis.Nil) {
				continue
			}
			if err != nil {
				if ctx.Err() == nil {
					w.logger.WithError(err).Error("Failed to pop dispatch event from Redis")
					w.sleep(ctx, w.cfg.WebhookTimeout) // Ждем перед повторной попыткой
				}
				continue
			}

			// result[0] - ключ, result[1] - значение
			payload := result[1]
			var event DispatchEvent
			if err := json.Unmarshal([]byte(payload), &event); err != nil {
				w.logger.WithError(err).Error("Failed to unmarshal dispatch event from Redis")
				continue
			}

			if err := w.deliver(ctx, event, payload); err != nil {
				w.logger.WithError(err).WithField("incident_id", event.Incident.ID).Error("Dispatch event dropped")
			}
		}
	}()
}

// Done закрывается после остановки горутины
func (w *DispatchWorker) Done() <-chan struct{} {
	return w.done
}

// deliver отправляет событие с экспоненциальной задержкой между попытками
func (w *DispatchWorker) deliver(ctx context.Context, event DispatchEvent, rawPayload string) error {
	log := w.logger.WithFields(logrus.Fields{
		"event":       event.Event,
		"incident_id": event.Incident.ID,
	})
	log.Debug("Processing dispatch event...")

	if w.cfg.WebhookURL == "" {
		log.Warn("Webhook URL is not configured. Skipping dispatch delivery.")
		return nil
	}

	maxRetries := max(1, w.cfg.WebhookMaxRetries)
	delay := w.cfg.WebhookBaseDelay

	for i := 0; i < maxRetries; i++ {
		status, err := w.send(ctx, rawPayload)
		if err == nil && status >= 200 && status < 300 {
			log.Info("Dispatch event delivered successfully.")
			return nil
		}

		left := maxRetries - 1 - i
		if err != nil {
			log.WithError(err).Warnf("Failed to send dispatch event. Retries left: %d", left)
		} else {
			log.Warnf("Dispatch delivery failed with status code %d. Retries left: %d", status, left)
		}
		if left == 0 {
			break
		}
		if !w.sleep(ctx, delay) {
			return ctx.Err()
		}
		delay *= 2
	}

	return fmt.Errorf("failed to deliver dispatch event after %d attempts", maxRetries)
}

func (w *DispatchWorker) send(ctx context.Context, rawPayload string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.WebhookURL, bytes.NewBufferString(rawPayload))
	if err != nil {
		return 0, fmt.Errorf("failed to create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	// HMAC подпись добавляется, только если задан WEBHOOK_SECRET
	if w.cfg.WebhookSecret != "" {
		req.Header.Set(SignatureHeader, sign(rawPayload, w.cfg.WebhookSecret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	return resp.StatusCode, nil
}

// sign генерирует HMAC-SHA256 подпись для данных
func sign(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
