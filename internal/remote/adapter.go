package remote

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shenikar/incident_dispatch/internal/models"
	"github.com/shenikar/incident_dispatch/internal/store"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=adapter.go -destination=mocks/mock_adapter.go -package=mocks

// IncidentTable - операции над таблицей incidents во внешнем хранилище
type IncidentTable interface {
	ListIncidents(ctx context.Context) ([]models.IncidentRow, error)
	ListIncidentsByUser(ctx context.Context, userID string) ([]models.IncidentRow, error)
	InsertIncident(ctx context.Context, row models.NewIncidentRow) (*models.IncidentRow, error)
	GetUpvoteCount(ctx context.Context, id string) (int, error)
	SetUpvoteCount(ctx context.Context, id string, upvotes int) error
	UpdateStatus(ctx context.Context, id, status string, notes *string) (*models.IncidentRow, error)
	DeleteIncident(ctx context.Context, id, userID string) error
}

// UpvoteTable - операции над таблицей incident_upvotes.
// FindUpvote возвращает nil без ошибки, если записи нет.
type UpvoteTable interface {
	FindUpvote(ctx context.Context, incidentID, userID string) (*models.UpvoteRecord, error)
	InsertUpvote(ctx context.Context, incidentID, userID string) (*models.UpvoteRecord, error)
	DeleteUpvote(ctx context.Context, id string) error
}

// ChangeFeed - лента изменений таблицы incidents.
// Listen вызывает ready, когда подписка на канал установлена,
// и блокируется до отмены ctx или ошибки соединения.
type ChangeFeed interface {
	Listen(ctx context.Context, ready func(), handle func(models.ChangeEvent)) error
}

// Adapter связывает Store с внешней таблицей и ее лентой изменений
type Adapter struct {
	incidents IncidentTable
	upvotes   UpvoteTable
	feed      ChangeFeed
	store     *store.Store
	logger    *logrus.Logger
	queueSize int

	retryDelay    time.Duration
	maxRetryDelay time.Duration

	mu  sync.Mutex
	sub *Subscription
}

func NewAdapter(incidents IncidentTable, upvotes UpvoteTable, feed ChangeFeed, st *store.Store, logger *logrus.Logger) *Adapter {
	return &Adapter{
		incidents: incidents,
		upvotes:   upvotes,
		feed:      feed,
		store:     st,
		logger:    logger,
		queueSize: 64,

		retryDelay:    time.Second,
		maxRetryDelay: 30 * time.Second,
	}
}

// LoadAll загружает все инциденты (новые первыми) и заменяет локальную коллекцию.
// При ошибке коллекция не меняется.
func (a *Adapter) LoadAll(ctx context.Context) ([]models.Incident, error) {
	rows, err := a.incidents.ListIncidents(ctx)
	if err != nil {
		return nil, fmt.Errorf("remote: could not fetch incidents: %w", err)
	}
	incidents := models.RowsToIncidents(rows)
	a.store.Replace(incidents)

	a.logger.WithFields(logrus.Fields{
		"component": "remote",
		"method":    "LoadAll",
		"count":     len(incidents),
	}).Debug("Incidents loaded")
	return incidents, nil
}

// Create записывает новый отчет и возвращает сохраненную строку.
// Локально инцидент появится, когда придет событие INSERT из ленты.
func (a *Adapter) Create(ctx context.Context, draft models.IncidentDraft) (models.Incident, error) {
	row, err := a.incidents.InsertIncident(ctx, models.DraftToRow(draft))
	if err != nil {
		return models.Incident{}, fmt.Errorf("remote: could not create incident: %w", err)
	}
	return models.RowToIncident(*row), nil
}

// Upvote переключает голос зрителя во внешнем хранилище и перезагружает коллекцию.
// Возвращает true, если голос добавлен.
//
// Последовательность "прочитать счетчик - записать счетчик" не транзакционна:
// одновременные голоса разных зрителей могут потеряться.
func (a *Adapter) Upvote(ctx context.Context, id, viewerID string) (bool, error) {
	existing, err := a.upvotes.FindUpvote(ctx, id, viewerID)
	if err != nil {
		return false, fmt.Errorf("remote: could not check upvote: %w", err)
	}

	added := existing == nil
	if added {
		if _, err := a.upvotes.InsertUpvote(ctx, id, viewerID); err != nil {
			return false, fmt.Errorf("remote: could not insert upvote: %w", err)
		}
	} else {
		if err := a.upvotes.DeleteUpvote(ctx, existing.ID); err != nil {
			return false, fmt.Errorf("remote: could not delete upvote: %w", err)
		}
	}

	count, err := a.incidents.GetUpvoteCount(ctx, id)
	if err != nil {
		return false, fmt.Errorf("remote: could not read upvote count: %w", err)
	}
	if added {
		count++
	} else {
		count = max(0, count-1)
	}
	if err := a.incidents.SetUpvoteCount(ctx, id, count); err != nil {
		return false, fmt.Errorf("remote: could not write upvote count: %w", err)
	}

	if _, err := a.LoadAll(ctx); err != nil {
		return false, err
	}
	a.store.SetUpvoted(id, viewerID, added)
	return added, nil
}

// UpdateStatus записывает новый статус и сразу применяет сохраненную строку локально.
// Повторное применение того же события из ленты ничего не меняет.
func (a *Adapter) UpdateStatus(ctx context.Context, id string, status models.Status, notes string) (models.Incident, error) {
	var notesPtr *string
	if notes != "" {
		notesPtr = &notes
	}
	row, err := a.incidents.UpdateStatus(ctx, id, models.StatusToExternal(status), notesPtr)
	if err != nil {
		return models.Incident{}, fmt.Errorf("remote: could not update status: %w", err)
	}
	incident := models.RowToIncident(*row)
	if err := a.store.Apply(models.IncidentChange{Kind: models.ChangeUpdate, ID: incident.ID, Incident: incident}); err != nil {
		return models.Incident{}, fmt.Errorf("remote: could not apply status update: %w", err)
	}
	if local, ok := a.store.Get(incident.ID); ok {
		return local, nil
	}
	return incident, nil
}

// Delete удаляет отчет владельца напрямую во внешнем хранилище, минуя Store.
// Локальную коллекцию обновит событие DELETE.
func (a *Adapter) Delete(ctx context.Context, id, ownerID string) error {
	if err := a.incidents.DeleteIncident(ctx, id, ownerID); err != nil {
		return fmt.Errorf("remote: could not delete incident: %w", err)
	}
	return nil
}

// ListByUser возвращает отчеты пользователя, не трогая локальную коллекцию
func (a *Adapter) ListByUser(ctx context.Context, userID string) ([]models.Incident, error) {
	rows, err := a.incidents.ListIncidentsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("remote: could not fetch user incidents: %w", err)
	}
	return models.RowsToIncidents(rows), nil
}
