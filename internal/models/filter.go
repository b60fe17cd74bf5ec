package models

import "time"

// TimeRange - окно времени для фильтра по дате отчета
type TimeRange string

const (
	TimeRangeHour     TimeRange = "1h"
	TimeRangeSixHours TimeRange = "6h"
	TimeRangeDay      TimeRange = "24h"
	TimeRangeWeek     TimeRange = "7d"
	TimeRangeAll      TimeRange = "all"
)

var timeRangeWindows = map[TimeRange]time.Duration{
	TimeRangeHour:     time.Hour,
	TimeRangeSixHours: 6 * time.Hour,
	TimeRangeDay:      24 * time.Hour,
	TimeRangeWeek:     168 * time.Hour,
}

// Window возвращает длительность окна. Для "all" и пустого значения окна нет.
// Неизвестное значение трактуется как 24h.
func (r TimeRange) Window() (time.Duration, bool) {
	if r == "" || r == TimeRangeAll {
		return 0, false
	}
	if d, ok := timeRangeWindows[r]; ok {
		return d, true
	}
	return 24 * time.Hour, true
}

// Filters - активный набор фильтров. Пустое значение поля означает "любое".
type Filters struct {
	Type        IncidentType `json:"type,omitempty"`
	Severity    Severity     `json:"severity,omitempty"`
	Status      Status       `json:"status,omitempty"`
	TimeRange   TimeRange    `json:"time_range,omitempty"`
	SearchQuery string       `json:"search_query,omitempty"`
}

// IsEmpty сообщает, что ни один фильтр не активен
func (f Filters) IsEmpty() bool {
	_, windowed := f.TimeRange.Window()
	return f.Type == "" && f.Severity == "" && f.Status == "" && !windowed && f.SearchQuery == ""
}

// FilterPatch - частичное обновление фильтров.
// nil оставляет текущее значение, указатель на пустую строку сбрасывает его.
type FilterPatch struct {
	Type        *IncidentType
	Severity    *Severity
	Status      *Status
	TimeRange   *TimeRange
	SearchQuery *string
}

// Merge применяет патч к фильтрам и возвращает результат
func (f Filters) Merge(p FilterPatch) Filters {
	if p.Type != nil {
		f.Type = *p.Type
	}
	if p.Severity != nil {
		f.Severity = *p.Severity
	}
	if p.Status != nil {
		f.Status = *p.Status
	}
	if p.TimeRange != nil {
		f.TimeRange = *p.TimeRange
	}
	if p.SearchQuery != nil {
		f.SearchQuery = *p.SearchQuery
	}
	return f
}
