package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shenikar/incident_dispatch/internal/models"
	"github.com/shenikar/incident_dispatch/internal/store"
	"github.com/shenikar/incident_dispatch/internal/webhook"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=incident.go -destination=mocks/mock_incident.go -package=mocks

var (
	ErrIncidentNotFound = errors.New("incident not found")
	ErrNotOwner         = errors.New("incident belongs to another user")
)

// RemoteSync определяет контракт синхронизации с внешним хранилищем.
// Реализуется remote.Adapter.
type RemoteSync interface {
	LoadAll(ctx context.Context) ([]models.Incident, error)
	Create(ctx context.Context, draft models.IncidentDraft) (models.Incident, error)
	Upvote(ctx context.Context, id, viewerID string) (bool, error)
	UpdateStatus(ctx context.Context, id string, status models.Status, notes string) (models.Incident, error)
	Delete(ctx context.Context, id, ownerID string) error
	ListByUser(ctx context.Context, userID string) ([]models.Incident, error)
	FeedErr() error
}

// IncidentService определяет контракт для бизнес-логики работы с инцидентами
type IncidentService interface {
	ReportIncident(ctx context.Context, draft models.IncidentDraft) (models.Incident, error)
	ListIncidents(ctx context.Context) []models.Incident
	GetIncident(ctx context.Context, id string) (models.Incident, error)
	UpvoteIncident(ctx context.Context, id, viewerID string) (models.Incident, error)
	UpdateStatus(ctx context.Context, id string, status models.Status, notes string) (models.Incident, error)
	DeleteIncident(ctx context.Context, id, ownerID string) error
	ListReportsByUser(ctx context.Context, userID string) ([]models.Incident, error)

	Filters(ctx context.Context) models.Filters
	SetFilters(ctx context.Context, patch models.FilterPatch) models.Filters
	ClearFilters(ctx context.Context)

	SelectIncident(ctx context.Context, id string) (models.Incident, error)
	SelectedIncident(ctx context.Context) (models.Incident, bool)
	ClearSelection(ctx context.Context)

	Stats(ctx context.Context) models.Stats
	ResponderQueue(ctx context.Context, sortBy store.SortBy) []models.Incident
	MapView(ctx context.Context) models.MapView

	Sync(ctx context.Context) (int, error)
	Status(ctx context.Context) models.SystemStatus
}

type incidentService struct {
	store     *store.Store
	remote    RemoteSync
	publisher webhook.DispatchPublisher
	logger    *logrus.Logger
}

// NewIncidentService создает сервис. При remote == nil сервис работает только с локальной коллекцией.
func NewIncidentService(st *store.Store, remote RemoteSync, publisher webhook.DispatchPublisher, logger *logrus.Logger) IncidentService {
	if publisher == nil {
		publisher = webhook.NopPublisher{}
	}
	return &incidentService{
		store:     st,
		remote:    remote,
		publisher: publisher,
		logger:    logger,
	}
}

func (s *incidentService) log(method string) *logrus.Entry {
	return s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  method,
	})
}

// ReportIncident создает отчет. Пустой адрес заполняется координатами.
func (s *incidentService) ReportIncident(ctx context.Context, draft models.IncidentDraft) (models.Incident, error) {
	log := s.log("ReportIncident").WithFields(logrus.Fields{
		"type":     draft.Type,
		"severity": draft.Severity,
	})
	log.Info("Attempting to report a new incident")

	if draft.Location.Address == "" {
		draft.Location.Address = fmt.Sprintf("%.4f, %.4f (Auto-detected)", draft.Location.Lat, draft.Location.Lng)
	}
	if draft.ReportedBy == "" {
		draft.ReportedBy = models.AnonymousReporter
	}

	var incident models.Incident
	if s.remote != nil {
		created, err := s.remote.Create(ctx, draft)
		if err != nil {
			log.WithError(err).Error("Failed to create incident in remote store")
			return models.Incident{}, fmt.Errorf("service: could not report incident: %w", err)
		}
		incident = created
	} else {
		incident = s.store.Add(draft)
	}

	log.WithField("incident_id", incident.ID).Info("Incident reported successfully")
	s.publish(ctx, webhook.EventIncidentReported, incident)
	return s.forViewer(ctx, incident), nil
}

// ListIncidents возвращает коллекцию с учетом активных фильтров
func (s *incidentService) ListIncidents(ctx context.Context) []models.Incident {
	return s.store.ForViewer(ViewerFromContext(ctx), s.store.Filtered())
}

// GetIncident получает инцидент по ID
func (s *incidentService) GetIncident(ctx context.Context, id string) (models.Incident, error) {
	incident, ok := s.store.Get(id)
	if !ok {
		return models.Incident{}, fmt.Errorf("service: %w: %s", ErrIncidentNotFound, id)
	}
	return s.forViewer(ctx, incident), nil
}

// UpvoteIncident переключает голос зрителя. Голоса учитываются отдельно для каждого зрителя.
func (s *incidentService) UpvoteIncident(ctx context.Context, id, viewerID string) (models.Incident, error) {
	log := s.log("UpvoteIncident").WithFields(logrus.Fields{
		"incident_id": id,
		"viewer_id":   viewerID,
	})

	if s.remote == nil {
		incident, ok := s.store.Upvote(id, viewerID)
		if !ok {
			log.Warn("Attempted to upvote a non-existent incident")
			return models.Incident{}, fmt.Errorf("service: %w: %s", ErrIncidentNotFound, id)
		}
		log.WithField("upvoted", incident.HasUpvoted).Info("Upvote toggled")
		return incident, nil
	}

	if _, ok := s.store.Get(id); !ok {
		log.Warn("Attempted to upvote a non-existent incident")
		return models.Incident{}, fmt.Errorf("service: %w: %s", ErrIncidentNotFound, id)
	}
	added, err := s.remote.Upvote(ctx, id, viewerID)
	if err != nil {
		log.WithError(err).Error("Failed to toggle upvote in remote store")
		return models.Incident{}, fmt.Errorf("service: could not upvote incident: %w", err)
	}
	incident, ok := s.store.Get(id)
	if !ok {
		return models.Incident{}, fmt.Errorf("service: %w: %s", ErrIncidentNotFound, id)
	}
	incident.HasUpvoted = s.store.HasUpvoted(id, viewerID)
	log.WithField("upvoted", added).Info("Upvote toggled")
	return incident, nil
}

// UpdateStatus меняет статус инцидента. Переходы между статусами не ограничены.
func (s *incidentService) UpdateStatus(ctx context.Context, id string, status models.Status, notes string) (models.Incident, error) {
	log := s.log("UpdateStatus").WithFields(logrus.Fields{
		"incident_id": id,
		"status":      status,
	})
	log.Info("Attempting to update incident status")

	if !status.Valid() {
		return models.Incident{}, fmt.Errorf("service: unknown status %q", status)
	}

	var incident models.Incident
	if s.remote == nil {
		updated, ok := s.store.UpdateStatus(id, status, notes)
		if !ok {
			log.Warn("Attempted to update a non-existent incident")
			return models.Incident{}, fmt.Errorf("service: %w: %s", ErrIncidentNotFound, id)
		}
		incident = updated
	} else {
		if _, ok := s.store.Get(id); !ok {
			log.Warn("Attempted to update a non-existent incident")
			return models.Incident{}, fmt.Errorf("service: %w: %s", ErrIncidentNotFound, id)
		}
		updated, err := s.remote.UpdateStatus(ctx, id, status, notes)
		if err != nil {
			log.WithError(err).Error("Failed to update status in remote store")
			return models.Incident{}, fmt.Errorf("service: could not update status: %w", err)
		}
		incident = updated
	}

	log.Info("Incident status updated successfully")
	s.publish(ctx, webhook.EventIncidentStatusChanged, incident)
	return s.forViewer(ctx, incident), nil
}

// DeleteIncident удаляет отчет. Удалить можно только свой не анонимный отчет.
func (s *incidentService) DeleteIncident(ctx context.Context, id, ownerID string) error {
	log := s.log("DeleteIncident").WithFields(logrus.Fields{
		"incident_id": id,
		"owner_id":    ownerID,
	})
	log.Info("Attempting to delete incident")

	incident, ok := s.store.Get(id)
	if !ok {
		log.Warn("Attempted to delete a non-existent incident")
		return fmt.Errorf("service: %w: %s", ErrIncidentNotFound, id)
	}
	if ownerID == "" || ownerID == models.AnonymousReporter || incident.ReportedBy != ownerID {
		log.Warn("Attempted to delete someone else's incident")
		return fmt.Errorf("service: %w", ErrNotOwner)
	}

	if s.remote != nil {
		if err := s.remote.Delete(ctx, id, ownerID); err != nil {
			log.WithError(err).Error("Failed to delete incident in remote store")
			return fmt.Errorf("service: could not delete incident: %w", err)
		}
	} else {
		s.store.Remove(id)
	}

	log.Info("Incident deleted successfully")
	return nil
}

// ListReportsByUser возвращает отчеты пользователя, новые первыми
func (s *incidentService) ListReportsByUser(ctx context.Context, userID string) ([]models.Incident, error) {
	log := s.log("ListReportsByUser").WithField("user_id", userID)

	if s.remote != nil {
		incidents, err := s.remote.ListByUser(ctx, userID)
		if err != nil {
			log.WithError(err).Error("Failed to list user incidents from remote store")
			return nil, fmt.Errorf("service: could not list user incidents: %w", err)
		}
		return s.store.ForViewer(ViewerFromContext(ctx), incidents), nil
	}

	var incidents []models.Incident
	for _, incident := range s.store.All() {
		if incident.ReportedBy == userID {
			incidents = append(incidents, incident)
		}
	}
	log.WithField("count", len(incidents)).Debug("User incidents listed")
	return s.store.ForViewer(ViewerFromContext(ctx), incidents), nil
}

func (s *incidentService) Filters(ctx context.Context) models.Filters {
	return s.store.Filters()
}

func (s *incidentService) SetFilters(ctx context.Context, patch models.FilterPatch) models.Filters {
	return s.store.SetFilters(patch)
}

func (s *incidentService) ClearFilters(ctx context.Context) {
	s.store.ClearFilters()
}

// SelectIncident выбирает инцидент для детального просмотра
func (s *incidentService) SelectIncident(ctx context.Context, id string) (models.Incident, error) {
	incident, ok := s.store.SelectIncident(id)
	if !ok {
		return models.Incident{}, fmt.Errorf("service: %w: %s", ErrIncidentNotFound, id)
	}
	return s.forViewer(ctx, incident), nil
}

func (s *incidentService) SelectedIncident(ctx context.Context) (models.Incident, bool) {
	incident, ok := s.store.Selected()
	if !ok {
		return models.Incident{}, false
	}
	return s.forViewer(ctx, incident), true
}

func (s *incidentService) ClearSelection(ctx context.Context) {
	s.store.ClearSelection()
}

func (s *incidentService) Stats(ctx context.Context) models.Stats {
	return s.store.Stats()
}

func (s *incidentService) ResponderQueue(ctx context.Context, sortBy store.SortBy) []models.Incident {
	return s.store.ForViewer(ViewerFromContext(ctx), s.store.ResponderQueue(sortBy))
}

func (s *incidentService) MapView(ctx context.Context) models.MapView {
	return s.store.MapView()
}

// Sync перечитывает коллекцию из внешнего хранилища
func (s *incidentService) Sync(ctx context.Context) (int, error) {
	log := s.log("Sync")
	if s.remote == nil {
		return s.store.Len(), nil
	}
	incidents, err := s.remote.LoadAll(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to reload incidents")
		return 0, fmt.Errorf("service: could not sync incidents: %w", err)
	}
	log.WithField("count", len(incidents)).Info("Incidents synced")
	return len(incidents), nil
}

func (s *incidentService) Status(ctx context.Context) models.SystemStatus {
	mode := "local"
	if s.remote != nil {
		mode = "remote"
	}
	status := models.SystemStatus{Mode: mode, Incidents: s.store.Len()}
	if s.remote != nil {
		if err := s.remote.FeedErr(); err != nil {
			status.FeedError = err.Error()
		}
	}
	return status
}

func (s *incidentService) forViewer(ctx context.Context, incident models.Incident) models.Incident {
	incident.HasUpvoted = s.store.HasUpvoted(incident.ID, ViewerFromContext(ctx))
	return incident
}

// publish отправляет уведомление диспетчерам. Ошибка публикации не отменяет операцию.
func (s *incidentService) publish(ctx context.Context, event string, incident models.Incident) {
	if err := s.publisher.Publish(ctx, webhook.NewDispatchEvent(event, incident)); err != nil {
		s.log("publish").WithError(err).WithFields(logrus.Fields{
			"event":       event,
			"incident_id": incident.ID,
		}).Error("Failed to publish dispatch event")
	}
}
