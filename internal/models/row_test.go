package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestRowToIncident_RemapsExternalVocabulary(t *testing.T) {
	createdAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	row := IncidentRow{
		ID:           "b7d1c1de-0000-4000-8000-000000000001",
		Type:         "fire",
		Severity:     "critical",
		Status:       "responding",
		Title:        "Warehouse fire",
		LocationName: "Pier 17",
		Latitude:     40.7,
		Longitude:    -74.0,
		Upvotes:      nil,
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt.Add(time.Minute),
	}

	incident := RowToIncident(row)

	assert.Equal(t, StatusInProgress, incident.Status)
	assert.Equal(t, SeverityHigh, incident.Severity)
	assert.Equal(t, 0, incident.Upvotes)
	assert.Equal(t, "", incident.Description)
	assert.Equal(t, AnonymousReporter, incident.ReportedBy)
	assert.Nil(t, incident.Images)
	assert.Equal(t, Location{Lat: 40.7, Lng: -74.0, Address: "Pier 17"}, incident.Location)
	assert.Equal(t, createdAt, incident.ReportedAt)
	assert.Equal(t, createdAt.Add(time.Minute), incident.UpdatedAt)
}

func TestRowToIncident_Passthrough(t *testing.T) {
	upvotes := 7
	row := IncidentRow{
		ID:             "id-1",
		UserID:         strPtr("user-1"),
		Type:           "crime",
		Severity:       "medium",
		Status:         "reported",
		Description:    strPtr("Broken window"),
		Upvotes:        &upvotes,
		ImageURL:       strPtr("https://img.example/1.jpg"),
		ResponderNotes: strPtr("unit 4 en route"),
	}

	incident := RowToIncident(row)

	assert.Equal(t, StatusUnverified, incident.Status)
	assert.Equal(t, SeverityMedium, incident.Severity)
	assert.Equal(t, "user-1", incident.ReportedBy)
	assert.Equal(t, 7, incident.Upvotes)
	assert.Equal(t, "Broken window", incident.Description)
	assert.Equal(t, []string{"https://img.example/1.jpg"}, incident.Images)
	assert.Equal(t, "unit 4 en route", incident.ResponderNotes)

	row.Status = "verified"
	assert.Equal(t, StatusVerified, RowToIncident(row).Status)
}

func TestDraftToRow(t *testing.T) {
	draft := IncidentDraft{
		Type:        TypeMedical,
		Severity:    SeverityHigh,
		Title:       "Collapsed person",
		Description: "Near the entrance",
		Location:    Location{Lat: 1, Lng: 2, Address: "Main st"},
		ReportedBy:  "u1",
		Images:      []string{"a.jpg", "b.jpg"},
	}

	row := DraftToRow(draft)

	assert.Equal(t, "critical", row.Severity)
	assert.Equal(t, "reported", row.Status)
	assert.Equal(t, "medical", row.Type)
	require.NotNil(t, row.UserID)
	assert.Equal(t, "u1", *row.UserID)
	require.NotNil(t, row.ImageURL)
	assert.Equal(t, "a.jpg", *row.ImageURL)
	assert.Equal(t, "Main st", row.LocationName)

	draft.ReportedBy = AnonymousReporter
	draft.Severity = SeverityLow
	draft.Images = nil
	row = DraftToRow(draft)
	assert.Nil(t, row.UserID)
	assert.Nil(t, row.ImageURL)
	assert.Equal(t, "low", row.Severity)
}

func TestStatusToExternal(t *testing.T) {
	assert.Equal(t, "reported", StatusToExternal(StatusUnverified))
	assert.Equal(t, "responding", StatusToExternal(StatusInProgress))
	assert.Equal(t, "resolved", StatusToExternal(StatusResolved))
	for _, s := range Statuses {
		assert.Equal(t, s, StatusFromExternal(StatusToExternal(s)))
	}
	for _, s := range Severities {
		assert.Equal(t, s, SeverityFromExternal(SeverityToExternal(s)))
	}
}

func TestEventToChange(t *testing.T) {
	row := &IncidentRow{ID: "id-9", Status: "reported", Severity: "low", Type: "fire"}

	change, err := EventToChange(ChangeEvent{Kind: ChangeInsert, New: row})
	require.NoError(t, err)
	assert.Equal(t, ChangeInsert, change.Kind)
	assert.Equal(t, "id-9", change.ID)
	assert.Equal(t, StatusUnverified, change.Incident.Status)

	change, err = EventToChange(ChangeEvent{Kind: ChangeDelete, OldID: "id-9"})
	require.NoError(t, err)
	assert.Equal(t, ChangeDelete, change.Kind)
	assert.Equal(t, "id-9", change.ID)

	_, err = EventToChange(ChangeEvent{Kind: ChangeUpdate})
	assert.Error(t, err)

	_, err = EventToChange(ChangeEvent{Kind: "TRUNCATE"})
	assert.ErrorIs(t, err, ErrUnknownChange)
}
