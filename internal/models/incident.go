package models

import (
	"fmt"
	"time"
)

// IncidentType - тип происшествия
type IncidentType string

const (
	TypeAccident       IncidentType = "accident"
	TypeMedical        IncidentType = "medical"
	TypeFire           IncidentType = "fire"
	TypeInfrastructure IncidentType = "infrastructure"
	TypeCrime          IncidentType = "crime"
)

// Severity - уровень срочности
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Status - положение инцидента в жизненном цикле обработки.
// Переходы между статусами не ограничиваются.
type Status string

const (
	StatusUnverified   Status = "unverified"
	StatusVerified     Status = "verified"
	StatusAcknowledged Status = "acknowledged"
	StatusInProgress   Status = "in-progress"
	StatusResolved     Status = "resolved"
)

// AnonymousReporter используется, когда автор отчета неизвестен
const AnonymousReporter = "anonymous"

var (
	IncidentTypes = []IncidentType{TypeAccident, TypeMedical, TypeFire, TypeInfrastructure, TypeCrime}
	Severities    = []Severity{SeverityLow, SeverityMedium, SeverityHigh}
	Statuses      = []Status{StatusUnverified, StatusVerified, StatusAcknowledged, StatusInProgress, StatusResolved}
)

var IncidentTypeLabels = map[IncidentType]string{
	TypeAccident:       "Accident",
	TypeMedical:        "Medical Emergency",
	TypeFire:           "Fire",
	TypeInfrastructure: "Infrastructure",
	TypeCrime:          "Crime",
}

var IncidentTypeIcons = map[IncidentType]string{
	TypeAccident:       "Car",
	TypeMedical:        "Heart",
	TypeFire:           "Flame",
	TypeInfrastructure: "Construction",
	TypeCrime:          "Shield",
}

var SeverityLabels = map[Severity]string{
	SeverityLow:    "Low",
	SeverityMedium: "Medium",
	SeverityHigh:   "High",
}

var StatusLabels = map[Status]string{
	StatusUnverified:   "Unverified",
	StatusVerified:     "Verified",
	StatusAcknowledged: "Acknowledged",
	StatusInProgress:   "In Progress",
	StatusResolved:     "Resolved",
}

func init() {
	if err := checkExhaustive(IncidentTypes, IncidentTypeLabels); err != nil {
		panic(err)
	}
	if err := checkExhaustive(IncidentTypes, IncidentTypeIcons); err != nil {
		panic(err)
	}
	if err := checkExhaustive(Severities, SeverityLabels); err != nil {
		panic(err)
	}
	if err := checkExhaustive(Statuses, StatusLabels); err != nil {
		panic(err)
	}
}

// checkExhaustive проверяет, что таблица содержит ровно все значения перечисления
func checkExhaustive[K ~string](values []K, table map[K]string) error {
	if len(table) != len(values) {
		return fmt.Errorf("lookup table has %d entries, want %d", len(table), len(values))
	}
	for _, v := range values {
		if _, ok := table[v]; !ok {
			return fmt.Errorf("lookup table is missing %q", v)
		}
	}
	return nil
}

func (t IncidentType) Valid() bool {
	_, ok := IncidentTypeLabels[t]
	return ok
}

func (s Severity) Valid() bool {
	_, ok := SeverityLabels[s]
	return ok
}

func (s Status) Valid() bool {
	_, ok := StatusLabels[s]
	return ok
}

// Rank возвращает порядок сортировки: high раньше low
func (s Severity) Rank() int {
	switch s {
	case SeverityHigh:
		return 0
	case SeverityMedium:
		return 1
	case SeverityLow:
		return 2
	}
	return 3
}

type Location struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address"`
}

type Incident struct {
	ID             string       `json:"id"`
	Type           IncidentType `json:"type"`
	Title          string       `json:"title"`
	Description    string       `json:"description"`
	Severity       Severity     `json:"severity"`
	Status         Status       `json:"status"`
	Location       Location     `json:"location"`
	ReportedAt     time.Time    `json:"reported_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
	ReportedBy     string       `json:"reported_by"`
	Upvotes        int          `json:"upvotes"`
	HasUpvoted     bool         `json:"has_upvoted"`
	Images         []string     `json:"images,omitempty"`
	ResponderNotes string       `json:"responder_notes,omitempty"`
}

// Clone возвращает копию инцидента, не разделяющую слайс изображений
func (i Incident) Clone() Incident {
	if i.Images != nil {
		i.Images = append([]string(nil), i.Images...)
	}
	return i
}

// IncidentDraft - данные нового отчета до присвоения идентификатора и статуса
type IncidentDraft struct {
	Type        IncidentType
	Severity    Severity
	Title       string
	Description string
	Location    Location
	ReportedBy  string
	Images      []string
}

// ChangeKind - вид изменения строки во внешнем хранилище
type ChangeKind string

const (
	ChangeInsert ChangeKind = "INSERT"
	ChangeUpdate ChangeKind = "UPDATE"
	ChangeDelete ChangeKind = "DELETE"
)

// IncidentChange - изменение, применяемое к локальной коллекции.
// Для удаления заполняется только ID.
type IncidentChange struct {
	Kind     ChangeKind
	ID       string
	Incident Incident
}

// Stats - сводные счетчики для панелей мониторинга
type Stats struct {
	Total        int `json:"total"`
	Active       int `json:"active"`
	HighSeverity int `json:"high_severity"`
	Verified     int `json:"verified"`
	Unverified   int `json:"unverified"`
	InProgress   int `json:"in_progress"`
	Resolved     int `json:"resolved"`
}

// MapMarker - положение инцидента на карте в процентах от размеров холста
type MapMarker struct {
	ID       string       `json:"id"`
	Type     IncidentType `json:"type"`
	Severity Severity     `json:"severity"`
	X        float64      `json:"x"`
	Y        float64      `json:"y"`
}

type MapView struct {
	CenterLat float64     `json:"center_lat"`
	CenterLng float64     `json:"center_lng"`
	Markers   []MapMarker `json:"markers"`
}

// SystemStatus - сводка для проверки состояния сервиса
// FeedError пуст, пока лента изменений работает.
type SystemStatus struct {
	Mode      string `json:"mode"`
	Incidents int    `json:"incidents"`
	FeedError string `json:"feed_error,omitempty"`
}
