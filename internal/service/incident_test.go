package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shenikar/incident_dispatch/internal/models"
	"github.com/shenikar/incident_dispatch/internal/service/mocks"
	"github.com/shenikar/incident_dispatch/internal/store"
	"github.com/shenikar/incident_dispatch/internal/webhook"
	webhook_mocks "github.com/shenikar/incident_dispatch/internal/webhook/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var reportedAt = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

func seed() []models.Incident {
	return []models.Incident{
		{ID: "INC-2", Type: models.TypeFire, Severity: models.SeverityHigh, Status: models.StatusUnverified, ReportedBy: "user-1", ReportedAt: reportedAt, UpdatedAt: reportedAt},
		{ID: "INC-1", Type: models.TypeCrime, Severity: models.SeverityLow, Status: models.StatusVerified, ReportedBy: models.AnonymousReporter, ReportedAt: reportedAt, UpdatedAt: reportedAt},
	}
}

// newLocalService создает сервис без внешнего хранилища
func newLocalService(t *testing.T) (*incidentService, *store.Store, *webhook_mocks.MockDispatchPublisher) {
	ctrl := gomock.NewController(t)
	publisherMock := webhook_mocks.NewMockDispatchPublisher(ctrl)
	st := store.New(
		store.WithIncidents(seed()),
		store.WithClock(func() time.Time { return reportedAt.Add(time.Hour) }),
	)
	svc := NewIncidentService(st, nil, publisherMock, newTestLogger())
	return svc.(*incidentService), st, publisherMock
}

// newRemoteService создает сервис с мокированной синхронизацией
func newRemoteService(t *testing.T) (*incidentService, *store.Store, *mocks.MockRemoteSync, *webhook_mocks.MockDispatchPublisher) {
	ctrl := gomock.NewController(t)
	remoteMock := mocks.NewMockRemoteSync(ctrl)
	publisherMock := webhook_mocks.NewMockDispatchPublisher(ctrl)
	st := store.New(store.WithIncidents(seed()))
	svc := NewIncidentService(st, remoteMock, publisherMock, newTestLogger())
	return svc.(*incidentService), st, remoteMock, publisherMock
}

func TestReportIncident_Local(t *testing.T) {
	// Подготовка
	svc, st, publisherMock := newLocalService(t)
	ctx := context.Background()
	draft := models.IncidentDraft{
		Type:     models.TypeMedical,
		Severity: models.SeverityMedium,
		Title:    "Person collapsed",
		Location: models.Location{Lat: 40.71281, Lng: -74.00601},
	}

	// Ожидания
	var published webhook.DispatchEvent
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, ev webhook.DispatchEvent) error {
			published = ev
			return nil
		}).
		Times(1)

	// Действие
	incident, err := svc.ReportIncident(ctx, draft)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "40.7128, -74.0060 (Auto-detected)", incident.Location.Address)
	assert.Equal(t, models.AnonymousReporter, incident.ReportedBy)
	assert.Equal(t, models.StatusUnverified, incident.Status)
	assert.Equal(t, 3, st.Len())
	assert.Equal(t, incident.ID, st.All()[0].ID)
	assert.Equal(t, webhook.EventIncidentReported, published.Event)
	assert.Equal(t, incident.ID, published.Incident.ID)
}

func TestReportIncident_PublishFailureIsNotFatal(t *testing.T) {
	svc, _, publisherMock := newLocalService(t)
	ctx := context.Background()

	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Return(errors.New("redis down")).
		Times(1)

	_, err := svc.ReportIncident(ctx, models.IncidentDraft{
		Type:     models.TypeFire,
		Severity: models.SeverityHigh,
		Title:    "Smoke",
		Location: models.Location{Address: "Main st"},
	})

	assert.NoError(t, err)
}

func TestReportIncident_Remote(t *testing.T) {
	svc, st, remoteMock, publisherMock := newRemoteService(t)
	ctx := context.Background()
	draft := models.IncidentDraft{
		Type:       models.TypeAccident,
		Severity:   models.SeverityHigh,
		Title:      "Crash",
		Location:   models.Location{Lat: 1, Lng: 2, Address: "5th ave"},
		ReportedBy: "user-7",
	}
	stored := models.Incident{ID: "7f0c1b9e", Title: "Crash", ReportedBy: "user-7"}

	remoteMock.EXPECT().Create(ctx, draft).Return(stored, nil).Times(1)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	incident, err := svc.ReportIncident(ctx, draft)

	require.NoError(t, err)
	assert.Equal(t, stored, incident)
	// Локально инцидент появится только из ленты изменений
	assert.Equal(t, 2, st.Len())
}

func TestReportIncident_RemoteError(t *testing.T) {
	svc, st, remoteMock, _ := newRemoteService(t)
	ctx := context.Background()
	dbError := errors.New("connection refused")

	remoteMock.EXPECT().Create(ctx, gomock.Any()).Return(models.Incident{}, dbError).Times(1)

	_, err := svc.ReportIncident(ctx, models.IncidentDraft{Title: "x", Location: models.Location{Address: "a"}})

	require.Error(t, err)
	assert.ErrorIs(t, err, dbError)
	assert.Contains(t, err.Error(), "service: could not report incident")
	assert.Equal(t, 2, st.Len())
}

func TestGetIncident(t *testing.T) {
	svc, _, _ := newLocalService(t)
	ctx := context.Background()

	incident, err := svc.GetIncident(ctx, "INC-1")
	require.NoError(t, err)
	assert.Equal(t, models.TypeCrime, incident.Type)

	_, err = svc.GetIncident(ctx, "INC-404")
	assert.ErrorIs(t, err, ErrIncidentNotFound)
}

func TestUpvoteIncident_LocalToggle(t *testing.T) {
	svc, _, _ := newLocalService(t)
	ctx := context.Background()

	incident, err := svc.UpvoteIncident(ctx, "INC-1", "viewer")
	require.NoError(t, err)
	assert.True(t, incident.HasUpvoted)
	assert.Equal(t, 1, incident.Upvotes)

	incident, err = svc.UpvoteIncident(ctx, "INC-1", "viewer")
	require.NoError(t, err)
	assert.False(t, incident.HasUpvoted)
	assert.Equal(t, 0, incident.Upvotes)

	_, err = svc.UpvoteIncident(ctx, "INC-404", "viewer")
	assert.ErrorIs(t, err, ErrIncidentNotFound)
}

func TestUpvoteIncident_LocalPerViewer(t *testing.T) {
	svc, _, _ := newLocalService(t)
	ctx := context.Background()

	incident, err := svc.UpvoteIncident(ctx, "INC-2", "viewerA")
	require.NoError(t, err)
	assert.Equal(t, 1, incident.Upvotes)
	assert.True(t, incident.HasUpvoted)

	incident, err = svc.UpvoteIncident(ctx, "INC-2", "viewerB")
	require.NoError(t, err)
	assert.Equal(t, 2, incident.Upvotes)
	assert.True(t, incident.HasUpvoted)

	// каждый зритель видит свою отметку
	forA, err := svc.GetIncident(WithViewer(ctx, "viewerA"), "INC-2")
	require.NoError(t, err)
	assert.True(t, forA.HasUpvoted)
	assert.Equal(t, 2, forA.Upvotes)

	for _, inc := range svc.ListIncidents(WithViewer(ctx, "viewerC")) {
		assert.False(t, inc.HasUpvoted, inc.ID)
	}

	incident, err = svc.UpvoteIncident(ctx, "INC-2", "viewerA")
	require.NoError(t, err)
	assert.Equal(t, 1, incident.Upvotes)
	assert.False(t, incident.HasUpvoted)

	forB, err := svc.SelectIncident(WithViewer(ctx, "viewerB"), "INC-2")
	require.NoError(t, err)
	assert.True(t, forB.HasUpvoted)
}

func TestViewerFromContext(t *testing.T) {
	assert.Equal(t, models.AnonymousReporter, ViewerFromContext(context.Background()))
	assert.Equal(t, models.AnonymousReporter, ViewerFromContext(WithViewer(context.Background(), "")))
	assert.Equal(t, "user-7", ViewerFromContext(WithViewer(context.Background(), "user-7")))
}

func TestUpvoteIncident_Remote(t *testing.T) {
	svc, st, remoteMock, _ := newRemoteService(t)
	ctx := context.Background()

	remoteMock.EXPECT().
		Upvote(ctx, "INC-2", "viewer").
		DoAndReturn(func(_ context.Context, id, viewerID string) (bool, error) {
			st.SetUpvoted(id, viewerID, true)
			return true, nil
		}).
		Times(1)

	incident, err := svc.UpvoteIncident(ctx, "INC-2", "viewer")

	require.NoError(t, err)
	assert.Equal(t, "INC-2", incident.ID)
	assert.True(t, incident.HasUpvoted)

	other, err := svc.GetIncident(WithViewer(ctx, "other"), "INC-2")
	require.NoError(t, err)
	assert.False(t, other.HasUpvoted)
}

func TestUpvoteIncident_RemoteUnknownID(t *testing.T) {
	svc, _, _, _ := newRemoteService(t)

	// Во внешнее хранилище не обращаемся
	_, err := svc.UpvoteIncident(context.Background(), "INC-404", "viewer")

	assert.ErrorIs(t, err, ErrIncidentNotFound)
}

func TestUpdateStatus_Local(t *testing.T) {
	svc, _, publisherMock := newLocalService(t)
	ctx := context.Background()

	var published webhook.DispatchEvent
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, ev webhook.DispatchEvent) error {
			published = ev
			return nil
		}).
		Times(1)

	incident, err := svc.UpdateStatus(ctx, "INC-2", models.StatusInProgress, "crew en route")

	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, incident.Status)
	assert.Equal(t, "crew en route", incident.ResponderNotes)
	assert.Equal(t, webhook.EventIncidentStatusChanged, published.Event)
	assert.Equal(t, models.StatusInProgress, published.Incident.Status)
}

func TestUpdateStatus_Errors(t *testing.T) {
	svc, _, _ := newLocalService(t)
	ctx := context.Background()

	_, err := svc.UpdateStatus(ctx, "INC-2", models.Status("closed"), "")
	assert.ErrorContains(t, err, "unknown status")

	_, err = svc.UpdateStatus(ctx, "INC-404", models.StatusResolved, "")
	assert.ErrorIs(t, err, ErrIncidentNotFound)
}

func TestUpdateStatus_Remote(t *testing.T) {
	svc, _, remoteMock, publisherMock := newRemoteService(t)
	ctx := context.Background()
	updated := models.Incident{ID: "INC-2", Status: models.StatusResolved}

	remoteMock.EXPECT().UpdateStatus(ctx, "INC-2", models.StatusResolved, "").Return(updated, nil).Times(1)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	incident, err := svc.UpdateStatus(ctx, "INC-2", models.StatusResolved, "")

	require.NoError(t, err)
	assert.Equal(t, updated, incident)
}

func TestDeleteIncident_Local(t *testing.T) {
	svc, st, _ := newLocalService(t)
	ctx := context.Background()

	err := svc.DeleteIncident(ctx, "INC-2", "user-2")
	assert.ErrorIs(t, err, ErrNotOwner)

	// Анонимный отчет удалить нельзя
	err = svc.DeleteIncident(ctx, "INC-1", models.AnonymousReporter)
	assert.ErrorIs(t, err, ErrNotOwner)

	err = svc.DeleteIncident(ctx, "INC-404", "user-1")
	assert.ErrorIs(t, err, ErrIncidentNotFound)

	require.NoError(t, svc.DeleteIncident(ctx, "INC-2", "user-1"))
	_, ok := st.Get("INC-2")
	assert.False(t, ok)
}

func TestDeleteIncident_RemoteBypassesStore(t *testing.T) {
	svc, st, remoteMock, _ := newRemoteService(t)
	ctx := context.Background()

	remoteMock.EXPECT().Delete(ctx, "INC-2", "user-1").Return(nil).Times(1)

	require.NoError(t, svc.DeleteIncident(ctx, "INC-2", "user-1"))
	_, ok := st.Get("INC-2")
	assert.True(t, ok)
}

func TestListReportsByUser(t *testing.T) {
	svc, _, _ := newLocalService(t)

	incidents, err := svc.ListReportsByUser(context.Background(), "user-1")

	require.NoError(t, err)
	require.Len(t, incidents, 1)
	assert.Equal(t, "INC-2", incidents[0].ID)
}

func TestListReportsByUser_Remote(t *testing.T) {
	svc, _, remoteMock, _ := newRemoteService(t)
	ctx := context.Background()
	mine := []models.Incident{{ID: "a"}, {ID: "b"}}

	remoteMock.EXPECT().ListByUser(ctx, "user-1").Return(mine, nil).Times(1)

	incidents, err := svc.ListReportsByUser(ctx, "user-1")

	require.NoError(t, err)
	assert.Equal(t, mine, incidents)
}

func TestFiltersAndSelection(t *testing.T) {
	svc, _, _ := newLocalService(t)
	ctx := context.Background()
	fire := models.TypeFire

	filters := svc.SetFilters(ctx, models.FilterPatch{Type: &fire})
	assert.Equal(t, models.TypeFire, filters.Type)
	require.Len(t, svc.ListIncidents(ctx), 1)

	svc.ClearFilters(ctx)
	assert.Len(t, svc.ListIncidents(ctx), 2)

	_, err := svc.SelectIncident(ctx, "INC-404")
	assert.ErrorIs(t, err, ErrIncidentNotFound)

	selected, err := svc.SelectIncident(ctx, "INC-1")
	require.NoError(t, err)
	assert.Equal(t, "INC-1", selected.ID)

	svc.ClearSelection(ctx)
	_, ok := svc.SelectedIncident(ctx)
	assert.False(t, ok)
}

func TestSync(t *testing.T) {
	svc, _, remoteMock, _ := newRemoteService(t)
	ctx := context.Background()

	remoteMock.EXPECT().LoadAll(ctx).Return([]models.Incident{{ID: "a"}}, nil).Times(1)
	n, err := svc.Sync(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	remoteMock.EXPECT().LoadAll(ctx).Return(nil, errors.New("timeout")).Times(1)
	_, err = svc.Sync(ctx)
	assert.ErrorContains(t, err, "service: could not sync incidents")
}

func TestStatus(t *testing.T) {
	local, _, _ := newLocalService(t)
	assert.Equal(t, models.SystemStatus{Mode: "local", Incidents: 2}, local.Status(context.Background()))

	remote, _, remoteMock, _ := newRemoteService(t)
	remoteMock.EXPECT().FeedErr().Return(nil).Times(1)
	assert.Equal(t, models.SystemStatus{Mode: "remote", Incidents: 2}, remote.Status(context.Background()))

	remoteMock.EXPECT().FeedErr().Return(errors.New("remote: change feed failed: conn reset")).Times(1)
	status := remote.Status(context.Background())
	assert.Equal(t, "remote: change feed failed: conn reset", status.FeedError)
}
