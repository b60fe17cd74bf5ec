package store

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/shenikar/incident_dispatch/internal/models"
)

var demoLocations = []models.Location{
	{Lat: 40.7128, Lng: -74.006, Address: "123 Broadway, New York, NY"},
	{Lat: 40.7589, Lng: -73.9851, Address: "Times Square, Manhattan, NY"},
	{Lat: 40.7484, Lng: -73.9857, Address: "Empire State Building, NY"},
	{Lat: 40.7614, Lng: -73.9776, Address: "5th Avenue, New York, NY"},
	{Lat: 40.7831, Lng: -73.9712, Address: "Central Park West, NY"},
	{Lat: 40.7061, Lng: -74.0088, Address: "Wall Street, New York, NY"},
	{Lat: 40.7527, Lng: -73.9772, Address: "Grand Central Terminal, NY"},
	{Lat: 40.689, Lng: -74.0445, Address: "Liberty Island, NY"},
}

var demoTitles = map[models.IncidentType][]string{
	models.TypeAccident:       {"Multi-vehicle collision on highway", "Pedestrian struck at crosswalk", "Motorcycle accident reported", "Hit and run incident"},
	models.TypeMedical:        {"Cardiac arrest at subway station", "Allergic reaction emergency", "Person collapsed on sidewalk", "Heat stroke victim"},
	models.TypeFire:           {"Building fire reported", "Kitchen fire in apartment", "Electrical fire in commercial building", "Vehicle fire on highway"},
	models.TypeInfrastructure: {"Water main break", "Power lines down", "Sinkhole forming", "Bridge structural concern"},
	models.TypeCrime:          {"Armed robbery in progress", "Assault reported", "Suspicious activity", "Vandalism incident"},
}

const demoDescription = "Emergency incident requiring immediate attention. Multiple reports received from the area. First responders have been notified."

// GenerateDemoIncidents создает n случайных инцидентов за последние 24 часа,
// отсортированных от новых к старым
func GenerateDemoIncidents(n int, now time.Time, rnd *rand.Rand) []models.Incident {
	incidents := make([]models.Incident, 0, n)
	for range n {
		typ := pick(rnd, models.IncidentTypes)
		loc := pick(rnd, demoLocations)
		loc.Lat += (rnd.Float64() - 0.5) * 0.02
		loc.Lng += (rnd.Float64() - 0.5) * 0.02
		reportedAt := now.Add(-time.Duration(rnd.Float64() * float64(24*time.Hour)))
		updatedAt := reportedAt.Add(time.Duration(rnd.Float64() * float64(time.Hour)))
		if updatedAt.After(now) {
			updatedAt = now
		}

		incidents = append(incidents, models.Incident{
			ID:          NewIncidentID(),
			Type:        typ,
			Title:       pick(rnd, demoTitles[typ]),
			Description: demoDescription,
			Severity:    pick(rnd, models.Severities),
			Status:      pick(rnd, models.Statuses),
			Location:    loc,
			ReportedAt:  reportedAt,
			UpdatedAt:   updatedAt,
			ReportedBy:  fmt.Sprintf("citizen_%05d", rnd.IntN(100000)),
			Upvotes:     rnd.IntN(25),
		})
	}
	slices.SortFunc(incidents, func(a, b models.Incident) int {
		return b.ReportedAt.Compare(a.ReportedAt)
	})
	return incidents
}

// SeedDemo заменяет коллекцию демонстрационными данными
func (s *Store) SeedDemo(n int, rnd *rand.Rand) {
	s.Replace(GenerateDemoIncidents(n, s.now(), rnd))
}

func pick[T any](rnd *rand.Rand, items []T) T {
	return items[rnd.IntN(len(items))]
}
