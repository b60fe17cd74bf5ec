package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/incident_dispatch/internal/models"
	"github.com/sirupsen/logrus"
)

// IncidentChangesChannel - канал, в который пишет триггер notify_incident_change
// (migrations/000001_create_incidents.up.sql). Имена должны совпадать.
const IncidentChangesChannel = "incident_changes"

// notification - полезная нагрузка pg_notify из триггера notify_incident_change
type notification struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// ChangeFeed слушает канал LISTEN/NOTIFY, в который триггер таблицы incidents
// пишет вид операции и id строки. Для INSERT/UPDATE строка дочитывается по id.
type ChangeFeed struct {
	db     *pgxpool.Pool
	repo   *IncidentRepository
	logger *logrus.Logger
}

func NewChangeFeed(db *pgxpool.Pool, repo *IncidentRepository, logger *logrus.Logger) *ChangeFeed {
	return &ChangeFeed{
		db:     db,
		repo:   repo,
		logger: logger,
	}
}

// Listen держит отдельное соединение из пула до отмены ctx.
// ready вызывается сразу после успешного LISTEN.
func (f *ChangeFeed) Listen(ctx context.Context, ready func(), handle func(models.ChangeEvent)) error {
	conn, err := f.db.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire listen connection: %w", err)
	}
	defer func() {
		// Соединение возвращается в пул, поэтому подписку нужно снять
		cleanupCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if _, err := conn.Exec(cleanupCtx, "UNLISTEN *"); err != nil {
			conn.Conn().Close(cleanupCtx)
		}
		conn.Release()
	}()

	if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{IncidentChangesChannel}.Sanitize()); err != nil {
		return fmt.Errorf("failed to listen on %s: %w", IncidentChangesChannel, err)
	}

	log := f.logger.WithField("channel", IncidentChangesChannel)
	log.Info("Listening for incident changes")
	ready()

	for {
		n, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("Stopped listening for incident changes")
				return nil
			}
			return fmt.Errorf("failed to wait for notification: %w", err)
		}

		ev, ok, err := f.decode(ctx, n.Payload)
		if err != nil {
			log.WithError(err).Warn("Failed to decode incident change")
			continue
		}
		if !ok {
			continue
		}
		handle(ev)
	}
}

// decode превращает уведомление в событие. ok=false, если строка уже удалена.
func (f *ChangeFeed) decode(ctx context.Context, payload string) (models.ChangeEvent, bool, error) {
	var n notification
	if err := json.Unmarshal([]byte(payload), &n); err != nil {
		return models.ChangeEvent{}, false, fmt.Errorf("failed to unmarshal notification: %w", err)
	}

	kind := models.ChangeKind(n.Type)
	switch kind {
	case models.ChangeDelete:
		return models.ChangeEvent{Kind: kind, OldID: n.ID}, true, nil
	case models.ChangeInsert, models.ChangeUpdate:
		row, err := f.repo.GetIncident(ctx, n.ID)
		if err != nil {
			if errors.Is(err, ErrIncidentNotFound) {
				return models.ChangeEvent{}, false, nil
			}
			return models.ChangeEvent{}, false, err
		}
		return models.ChangeEvent{Kind: kind, New: row}, true, nil
	}
	return models.ChangeEvent{}, false, fmt.Errorf("%w: %s", models.ErrUnknownChange, n.Type)
}
