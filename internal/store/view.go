package store

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/shenikar/incident_dispatch/internal/models"
)

// SortBy - порядок очереди ответственного
type SortBy string

const (
	SortBySeverity SortBy = "severity"
	SortByTime     SortBy = "time"
)

// Центр карты, когда в выборке нет инцидентов
const (
	DefaultCenterLat = 40.7128
	DefaultCenterLng = -74.006
)

// predicate - одно условие фильтра
type predicate func(models.Incident) bool

// Filtered возвращает инциденты, прошедшие все активные фильтры.
// Порядок коллекции сохраняется, сама коллекция не меняется.
func (s *Store) Filtered() []models.Incident {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filterIncidents(s.incidents, s.filters, s.now())
}

// predicates собирает условия в фиксированном порядке:
// тип, срочность, статус, окно времени, текстовый поиск
func predicates(f models.Filters, now time.Time) []predicate {
	var preds []predicate
	if f.Type != "" {
		preds = append(preds, func(inc models.Incident) bool { return inc.Type == f.Type })
	}
	if f.Severity != "" {
		preds = append(preds, func(inc models.Incident) bool { return inc.Severity == f.Severity })
	}
	if f.Status != "" {
		preds = append(preds, func(inc models.Incident) bool { return inc.Status == f.Status })
	}
	if window, ok := f.TimeRange.Window(); ok {
		cutoff := now.Add(-window)
		preds = append(preds, func(inc models.Incident) bool { return !inc.ReportedAt.Before(cutoff) })
	}
	if f.SearchQuery != "" {
		query := strings.ToLower(f.SearchQuery)
		preds = append(preds, func(inc models.Incident) bool {
			return strings.Contains(strings.ToLower(inc.Title), query) ||
				strings.Contains(strings.ToLower(inc.Description), query) ||
				strings.Contains(strings.ToLower(inc.Location.Address), query) ||
				strings.Contains(strings.ToLower(inc.ID), query)
		})
	}
	return preds
}

func filterIncidents(incidents []models.Incident, f models.Filters, now time.Time) []models.Incident {
	preds := predicates(f, now)
	out := make([]models.Incident, 0, len(incidents))
next:
	for _, inc := range incidents {
		for _, p := range preds {
			if !p(inc) {
				continue next
			}
		}
		out = append(out, inc.Clone())
	}
	return out
}

// Stats считает сводку по всей коллекции
func (s *Store) Stats() models.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := models.Stats{Total: len(s.incidents)}
	for _, inc := range s.incidents {
		switch inc.Status {
		case models.StatusResolved:
			stats.Resolved++
		case models.StatusUnverified:
			stats.Unverified++
		case models.StatusVerified, models.StatusAcknowledged, models.StatusInProgress:
			stats.Verified++
		}
		if inc.Status == models.StatusInProgress {
			stats.InProgress++
		}
		if inc.Status != models.StatusResolved {
			stats.Active++
			if inc.Severity == models.SeverityHigh {
				stats.HighSeverity++
			}
		}
	}
	return stats
}

// ResponderQueue возвращает нерешенные инциденты в порядке обработки
func (s *Store) ResponderQueue(sortBy SortBy) []models.Incident {
	s.mu.RLock()
	queue := make([]models.Incident, 0, len(s.incidents))
	for _, inc := range s.incidents {
		if inc.Status != models.StatusResolved {
			queue = append(queue, inc.Clone())
		}
	}
	s.mu.RUnlock()

	byTime := func(a, b models.Incident) int {
		return b.ReportedAt.Compare(a.ReportedAt)
	}
	if sortBy == SortByTime {
		slices.SortStableFunc(queue, byTime)
		return queue
	}
	slices.SortStableFunc(queue, func(a, b models.Incident) int {
		if c := cmp.Compare(a.Severity.Rank(), b.Severity.Rank()); c != 0 {
			return c
		}
		return byTime(a, b)
	})
	return queue
}

// MapView размещает отфильтрованные инциденты на карте линейной проекцией
// относительно их центра. Координаты - проценты холста в пределах [10, 90].
func (s *Store) MapView() models.MapView {
	incidents := s.Filtered()

	view := models.MapView{
		CenterLat: DefaultCenterLat,
		CenterLng: DefaultCenterLng,
		Markers:   make([]models.MapMarker, 0, len(incidents)),
	}
	if len(incidents) > 0 {
		var sumLat, sumLng float64
		for _, inc := range incidents {
			sumLat += inc.Location.Lat
			sumLng += inc.Location.Lng
		}
		view.CenterLat = sumLat / float64(len(incidents))
		view.CenterLng = sumLng / float64(len(incidents))
	}

	for _, inc := range incidents {
		view.Markers = append(view.Markers, models.MapMarker{
			ID:       inc.ID,
			Type:     inc.Type,
			Severity: inc.Severity,
			X:        clampPercent(50 + (inc.Location.Lng-view.CenterLng)*1000),
			Y:        clampPercent(50 - (inc.Location.Lat-view.CenterLat)*1000),
		})
	}
	return view
}

func clampPercent(v float64) float64 {
	return max(10, min(90, v))
}
