package models

import (
	"errors"
	"time"
)

// Значения, которые используются во внешней таблице incidents
const (
	ExternalSeverityCritical = "critical"
	ExternalStatusReported   = "reported"
	ExternalStatusResponding = "responding"
)

var ErrUnknownChange = errors.New("unknown change kind")

// IncidentRow - строка таблицы incidents во внешнем хранилище
type IncidentRow struct {
	ID             string    `json:"id"`
	UserID         *string   `json:"user_id"`
	Type           string    `json:"type"`
	Severity       string    `json:"severity"`
	Status         string    `json:"status"`
	Title          string    `json:"title"`
	Description    *string   `json:"description"`
	LocationName   string    `json:"location_name"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	Upvotes        *int      `json:"upvotes"`
	ImageURL       *string   `json:"image_url"`
	ResponderNotes *string   `json:"responder_notes"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewIncidentRow - данные для вставки новой строки
type NewIncidentRow struct {
	UserID       *string
	Type         string
	Severity     string
	Status       string
	Title        string
	Description  string
	LocationName string
	Latitude     float64
	Longitude    float64
	ImageURL     *string
}

// UpvoteRecord - запись таблицы incident_upvotes
type UpvoteRecord struct {
	ID         string    `json:"id"`
	IncidentID string    `json:"incident_id"`
	UserID     string    `json:"user_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// ChangeEvent - событие ленты изменений таблицы incidents.
// New заполнен для INSERT/UPDATE, OldID - для DELETE.
type ChangeEvent struct {
	Kind  ChangeKind
	New   *IncidentRow
	OldID string
}

// SeverityFromExternal: "critical" во внешнем хранилище соответствует "high"
func SeverityFromExternal(s string) Severity {
	if s == ExternalSeverityCritical {
		return SeverityHigh
	}
	return Severity(s)
}

func SeverityToExternal(s Severity) string {
	if s == SeverityHigh {
		return ExternalSeverityCritical
	}
	return string(s)
}

func StatusFromExternal(s string) Status {
	switch s {
	case ExternalStatusReported:
		return StatusUnverified
	case ExternalStatusResponding:
		return StatusInProgress
	}
	return Status(s)
}

func StatusToExternal(s Status) string {
	switch s {
	case StatusUnverified:
		return ExternalStatusReported
	case StatusInProgress:
		return ExternalStatusResponding
	}
	return string(s)
}

// RowToIncident преобразует строку внешнего хранилища в доменную модель
func RowToIncident(row IncidentRow) Incident {
	incident := Incident{
		ID:          row.ID,
		Type:        IncidentType(row.Type),
		Title:       row.Title,
		Description: deref(row.Description),
		Severity:    SeverityFromExternal(row.Severity),
		Status:      StatusFromExternal(row.Status),
		Location: Location{
			Lat:     row.Latitude,
			Lng:     row.Longitude,
			Address: row.LocationName,
		},
		ReportedAt:     row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
		ReportedBy:     AnonymousReporter,
		ResponderNotes: deref(row.ResponderNotes),
	}
	if row.UserID != nil {
		incident.ReportedBy = *row.UserID
	}
	if row.Upvotes != nil {
		incident.Upvotes = *row.Upvotes
	}
	if row.ImageURL != nil {
		incident.Images = []string{*row.ImageURL}
	}
	return incident
}

// RowsToIncidents преобразует слайс строк, сохраняя порядок
func RowsToIncidents(rows []IncidentRow) []Incident {
	incidents := make([]Incident, len(rows))
	for i, row := range rows {
		incidents[i] = RowToIncident(row)
	}
	return incidents
}

// DraftToRow готовит строку для вставки. Анонимный автор пишется как NULL.
func DraftToRow(draft IncidentDraft) NewIncidentRow {
	row := NewIncidentRow{
		Type:         string(draft.Type),
		Severity:     SeverityToExternal(draft.Severity),
		Status:       StatusToExternal(StatusUnverified),
		Title:        draft.Title,
		Description:  draft.Description,
		LocationName: draft.Location.Address,
		Latitude:     draft.Location.Lat,
		Longitude:    draft.Location.Lng,
	}
	if draft.ReportedBy != "" && draft.ReportedBy != AnonymousReporter {
		userID := draft.ReportedBy
		row.UserID = &userID
	}
	if len(draft.Images) > 0 {
		image := draft.Images[0]
		row.ImageURL = &image
	}
	return row
}

// EventToChange переводит событие ленты в изменение локальной коллекции
func EventToChange(ev ChangeEvent) (IncidentChange, error) {
	switch ev.Kind {
	case ChangeInsert, ChangeUpdate:
		if ev.New == nil {
			return IncidentChange{}, errors.New("change event without row")
		}
		incident := RowToIncident(*ev.New)
		return IncidentChange{Kind: ev.Kind, ID: incident.ID, Incident: incident}, nil
	case ChangeDelete:
		return IncidentChange{Kind: ChangeDelete, ID: ev.OldID}, nil
	}
	return IncidentChange{}, ErrUnknownChange
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
