package store

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/incident_dispatch/internal/models"
)

// Store - источник истины для коллекции инцидентов одной сессии:
// сама коллекция, голоса зрителей, активные фильтры и выбранный инцидент.
// Все методы атомарны относительно друг друга и возвращают копии.
// Поле HasUpvoted в коллекции всегда false: отметка зависит от зрителя
// и вычисляется через HasUpvoted/ForViewer.
type Store struct {
	mu         sync.RWMutex
	incidents  []models.Incident
	voters     map[string]map[string]struct{}
	filters    models.Filters
	selectedID string

	now   func() time.Time
	newID func() string
}

type Option func(*Store)

// WithClock подменяет источник текущего времени
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator подменяет генератор идентификаторов
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// WithIncidents задает начальную коллекцию
func WithIncidents(incidents []models.Incident) Option {
	return func(s *Store) { s.incidents = cloneAll(incidents) }
}

func New(opts ...Option) *Store {
	s := &Store{
		incidents: make([]models.Incident, 0),
		voters:    make(map[string]map[string]struct{}),
		now:       time.Now,
		newID:     NewIncidentID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewIncidentID генерирует идентификатор вида INC-1A2B3C4D5E6F
func NewIncidentID() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "INC-" + strings.ToUpper(raw[:12])
}

// Add добавляет новый инцидент в начало коллекции
func (s *Store) Add(draft models.IncidentDraft) models.Incident {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	reportedBy := draft.ReportedBy
	if reportedBy == "" {
		reportedBy = models.AnonymousReporter
	}
	incident := models.Incident{
		ID:          s.newID(),
		Type:        draft.Type,
		Title:       draft.Title,
		Description: draft.Description,
		Severity:    draft.Severity,
		Status:      models.StatusUnverified,
		Location:    draft.Location,
		ReportedAt:  now,
		UpdatedAt:   now,
		ReportedBy:  reportedBy,
		Upvotes:     0,
		HasUpvoted:  false,
	}
	if len(draft.Images) > 0 {
		incident.Images = append([]string(nil), draft.Images...)
	}

	s.incidents = append([]models.Incident{incident}, s.incidents...)
	return incident.Clone()
}

// Upvote переключает голос зрителя и меняет счетчик на единицу.
// Счетчик не опускается ниже нуля. Отсутствующий id - не ошибка.
func (s *Store) Upvote(id, viewerID string) (models.Incident, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Incident{}, false
	}
	inc := &s.incidents[i]
	upvoted := !s.hasVoter(id, viewerID)
	if upvoted {
		inc.Upvotes++
	} else {
		inc.Upvotes = max(0, inc.Upvotes-1)
	}
	s.setVoter(id, viewerID, upvoted)
	inc.UpdatedAt = s.advance(inc.ReportedAt)

	out := inc.Clone()
	out.HasUpvoted = upvoted
	return out, true
}

// UpdateStatus меняет статус. Заметки перезаписываются, только если переданы.
// Граф переходов не проверяется: ответственный может вернуть любой статус.
func (s *Store) UpdateStatus(id string, status models.Status, notes string) (models.Incident, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Incident{}, false
	}
	inc := &s.incidents[i]
	inc.Status = status
	if notes != "" {
		inc.ResponderNotes = notes
	}
	inc.UpdatedAt = s.advance(inc.ReportedAt)
	return inc.Clone(), true
}

// SetUpvoted выставляет отметку зрителя без изменения счетчика.
// Используется после перезагрузки, когда счетчик пришел из внешнего хранилища.
func (s *Store) SetUpvoted(id, viewerID string, upvoted bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(id) < 0 {
		return false
	}
	s.setVoter(id, viewerID, upvoted)
	return true
}

// HasUpvoted сообщает, голосовал ли зритель за инцидент
func (s *Store) HasUpvoted(id, viewerID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hasVoter(id, viewerID)
}

// ForViewer проставляет HasUpvoted в копиях инцидентов для указанного зрителя
func (s *Store) ForViewer(viewerID string, incidents []models.Incident) []models.Incident {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range incidents {
		incidents[i].HasUpvoted = s.hasVoter(incidents[i].ID, viewerID)
	}
	return incidents
}

// Apply применяет изменение из ленты внешнего хранилища
func (s *Store) Apply(change models.IncidentChange) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch change.Kind {
	case models.ChangeInsert:
		incident := ingest(change.Incident)
		if i := s.indexOf(incident.ID); i >= 0 {
			s.incidents[i] = incident
			return nil
		}
		s.incidents = append([]models.Incident{incident}, s.incidents...)
	case models.ChangeUpdate:
		if i := s.indexOf(change.Incident.ID); i >= 0 {
			s.incidents[i] = ingest(change.Incident)
		}
	case models.ChangeDelete:
		s.remove(change.ID)
	default:
		return models.ErrUnknownChange
	}
	return nil
}

// Replace заменяет всю коллекцию. Голоса зрителей сохраняются
// для инцидентов, оставшихся в коллекции.
func (s *Store) Replace(incidents []models.Incident) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.incidents = cloneAll(incidents)
	keep := make(map[string]struct{}, len(s.incidents))
	for _, inc := range s.incidents {
		keep[inc.ID] = struct{}{}
	}
	for id := range s.voters {
		if _, ok := keep[id]; !ok {
			delete(s.voters, id)
		}
	}
}

// Remove удаляет инцидент из коллекции
func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remove(id)
}

// Get возвращает инцидент по id
func (s *Store) Get(id string) (models.Incident, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Incident{}, false
	}
	return s.incidents[i].Clone(), true
}

// All возвращает всю коллекцию в текущем порядке
func (s *Store) All() []models.Incident {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.incidents)
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.incidents)
}

// SetFilters объединяет патч с активными фильтрами
func (s *Store) SetFilters(patch models.FilterPatch) models.Filters {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = s.filters.Merge(patch)
	return s.filters
}

func (s *Store) ClearFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = models.Filters{}
}

func (s *Store) Filters() models.Filters {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filters
}

// SelectIncident запоминает выбранный инцидент. Пустой id сбрасывает выбор.
func (s *Store) SelectIncident(id string) (models.Incident, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id == "" {
		s.selectedID = ""
		return models.Incident{}, false
	}
	i := s.indexOf(id)
	if i < 0 {
		return models.Incident{}, false
	}
	s.selectedID = id
	return s.incidents[i].Clone(), true
}

func (s *Store) ClearSelection() {
	s.SelectIncident("")
}

// Selected возвращает актуальную версию выбранного инцидента
func (s *Store) Selected() (models.Incident, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.selectedID == "" {
		return models.Incident{}, false
	}
	i := s.indexOf(s.selectedID)
	if i < 0 {
		return models.Incident{}, false
	}
	return s.incidents[i].Clone(), true
}

// advance возвращает текущее время, но не раньше времени создания
func (s *Store) advance(reportedAt time.Time) time.Time {
	now := s.now()
	if now.Before(reportedAt) {
		return reportedAt
	}
	return now
}

func (s *Store) indexOf(id string) int {
	for i := range s.incidents {
		if s.incidents[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) hasVoter(id, viewerID string) bool {
	_, ok := s.voters[id][viewerID]
	return ok
}

func (s *Store) setVoter(id, viewerID string, upvoted bool) {
	set := s.voters[id]
	if !upvoted {
		delete(set, viewerID)
		if len(set) == 0 {
			delete(s.voters, id)
		}
		return
	}
	if set == nil {
		set = make(map[string]struct{})
		s.voters[id] = set
	}
	set[viewerID] = struct{}{}
}

func (s *Store) remove(id string) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.incidents = append(s.incidents[:i:i], s.incidents[i+1:]...)
	delete(s.voters, id)
	if s.selectedID == id {
		s.selectedID = ""
	}
	return true
}

// ingest копирует инцидент, пришедший извне, и сбрасывает отметку зрителя
func ingest(inc models.Incident) models.Incident {
	out := inc.Clone()
	out.HasUpvoted = false
	return out
}

func cloneAll(incidents []models.Incident) []models.Incident {
	out := make([]models.Incident, len(incidents))
	for i, inc := range incidents {
		out[i] = ingest(inc)
	}
	return out
}
