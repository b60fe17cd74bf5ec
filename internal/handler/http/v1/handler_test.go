package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/incident_dispatch/internal/config"
	"github.com/shenikar/incident_dispatch/internal/models"
	"github.com/shenikar/incident_dispatch/internal/service"
	"github.com/shenikar/incident_dispatch/internal/service/mocks"
	"github.com/shenikar/incident_dispatch/internal/store"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var apiKey = map[string]string{"X-API-Key": "test-api-key"}

// newTestHandler создает новый экземпляр Handler с мокированным сервисом
func newTestHandler(t *testing.T) (*Handler, *mocks.MockIncidentService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockIncidentService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys: []string{"test-api-key"},
	}

	handler := NewHandler(mockService, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, mockService, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func sampleIncident() models.Incident {
	now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	return models.Incident{
		ID:         "INC-1A2B3C4D5E6F",
		Type:       models.TypeFire,
		Title:      "Kitchen fire",
		Severity:   models.SeverityHigh,
		Status:     models.StatusUnverified,
		Location:   models.Location{Lat: 40.7, Lng: -74, Address: "Main st"},
		ReportedAt: now,
		UpdatedAt:  now,
		ReportedBy: "user-1",
	}
}

func TestCreateIncident_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := CreateIncidentRequest{
		Type:      "fire",
		Severity:  "high",
		Title:     "Kitchen fire",
		Latitude:  40.7,
		Longitude: -74,
	}

	var gotDraft models.IncidentDraft
	mockService.EXPECT().
		ReportIncident(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, draft models.IncidentDraft) (models.Incident, error) {
			gotDraft = draft
			return sampleIncident(), nil
		}).Times(1)

	w := makeRequest(router, "POST", "/api/v1/incidents", jsonBody(t, reqBody), map[string]string{userIDHeader: "user-1"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, models.TypeFire, gotDraft.Type)
	assert.Equal(t, models.SeverityHigh, gotDraft.Severity)
	assert.Equal(t, "user-1", gotDraft.ReportedBy)
	assert.Equal(t, -74.0, gotDraft.Location.Lng)

	var resp IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INC-1A2B3C4D5E6F", resp.ID)
	assert.Equal(t, "Fire", resp.TypeLabel)
	assert.Equal(t, "Main st", resp.Location.Address)
}

func TestCreateIncident_AnonymousReporter(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		ReportIncident(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, draft models.IncidentDraft) (models.Incident, error) {
			assert.Equal(t, models.AnonymousReporter, draft.ReportedBy)
			return sampleIncident(), nil
		}).Times(1)

	w := makeRequest(router, "POST", "/api/v1/incidents", jsonBody(t, CreateIncidentRequest{Type: "crime", Severity: "low", Title: "Theft"}))

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateIncident_InvalidJSON(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().ReportIncident(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBufferString(`{"title": "test"`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestCreateIncident_ValidationError(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().ReportIncident(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	tests := map[string]struct {
		body  CreateIncidentRequest
		field string
		tag   string
	}{
		"missing title":   {CreateIncidentRequest{Type: "fire", Severity: "high"}, "Title", "required"},
		"unknown type":    {CreateIncidentRequest{Type: "flood", Severity: "high", Title: "Water"}, "Type", "incident_type"},
		"critical level":  {CreateIncidentRequest{Type: "fire", Severity: "critical", Title: "Smoke"}, "Severity", "severity"},
		"latitude bounds": {CreateIncidentRequest{Type: "fire", Severity: "low", Title: "Smoke", Latitude: 91}, "Latitude", "latitude"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			w := makeRequest(router, "POST", "/api/v1/incidents", jsonBody(t, tc.body))

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), fmt.Sprintf("Error:Field validation for '%s' failed on the '%s' tag", tc.field, tc.tag))
		})
	}
}

func TestCreateIncident_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		ReportIncident(gomock.Any(), gomock.Any()).
		Return(models.Incident{}, errors.New("db down")).
		Times(1)

	w := makeRequest(router, "POST", "/api/v1/incidents", jsonBody(t, CreateIncidentRequest{Type: "fire", Severity: "high", Title: "Smoke"}))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestListIncidents(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().ListIncidents(gomock.Any()).Return([]models.Incident{sampleIncident()}).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "unverified", resp[0].Status)
}

func TestListIncidents_ViewerInContext(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	var viewers []string
	mockService.EXPECT().
		ListIncidents(gomock.Any()).
		DoAndReturn(func(ctx context.Context) []models.Incident {
			viewers = append(viewers, service.ViewerFromContext(ctx))
			return nil
		}).
		Times(2)

	makeRequest(router, "GET", "/api/v1/incidents", nil, map[string]string{userIDHeader: " viewer-3 "})
	makeRequest(router, "GET", "/api/v1/incidents", nil)

	assert.Equal(t, []string{"viewer-3", models.AnonymousReporter}, viewers)
}

func TestGetIncident_NotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		GetIncident(gomock.Any(), "INC-404").
		Return(models.Incident{}, fmt.Errorf("service: %w: INC-404", service.ErrIncidentNotFound)).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents/INC-404", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListMyIncidents(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/incidents/mine", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	mockService.EXPECT().ListReportsByUser(gomock.Any(), "user-1").Return([]models.Incident{sampleIncident()}, nil).Times(1)

	w = makeRequest(router, "GET", "/api/v1/incidents/mine", nil, map[string]string{userIDHeader: "user-1"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpvoteIncident(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	upvoted := sampleIncident()
	upvoted.Upvotes = 1
	upvoted.HasUpvoted = true

	mockService.EXPECT().UpvoteIncident(gomock.Any(), upvoted.ID, "viewer-9").Return(upvoted, nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/incidents/"+upvoted.ID+"/upvote", nil, map[string]string{userIDHeader: "viewer-9"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.HasUpvoted)
	assert.Equal(t, 1, resp.Upvotes)
}

func TestUpvoteIncident_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		UpvoteIncident(gomock.Any(), "INC-1", models.AnonymousReporter).
		Return(models.Incident{}, errors.New("remote: could not check upvote")).
		Times(1)

	w := makeRequest(router, "POST", "/api/v1/incidents/INC-1/upvote", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "failed to upvote incident")
}

func TestDeleteIncident(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	owner := map[string]string{userIDHeader: "user-2"}

	mockService.EXPECT().
		DeleteIncident(gomock.Any(), "INC-1", "user-2").
		Return(fmt.Errorf("service: %w", service.ErrNotOwner)).
		Times(1)
	w := makeRequest(router, "DELETE", "/api/v1/incidents/INC-1", nil, owner)
	assert.Equal(t, http.StatusForbidden, w.Code)

	mockService.EXPECT().DeleteIncident(gomock.Any(), "INC-2", "user-2").Return(nil).Times(1)
	w = makeRequest(router, "DELETE", "/api/v1/incidents/INC-2", nil, owner)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestUpdateStatus_RequiresAPIKey(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	body := UpdateStatusRequest{Status: "resolved"}

	mockService.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "PATCH", "/api/v1/incidents/INC-1/status", jsonBody(t, body))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")

	w = makeRequest(router, "PATCH", "/api/v1/incidents/INC-1/status", jsonBody(t, body), map[string]string{"X-API-Key": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")
}

func TestUpdateStatus_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	updated := sampleIncident()
	updated.Status = models.StatusInProgress
	updated.ResponderNotes = "crew en route"

	mockService.EXPECT().
		UpdateStatus(gomock.Any(), updated.ID, models.StatusInProgress, "crew en route").
		Return(updated, nil).
		Times(1)

	w := makeRequest(router, "PATCH", "/api/v1/incidents/"+updated.ID+"/status",
		jsonBody(t, UpdateStatusRequest{Status: "in-progress", Notes: "crew en route"}),
		map[string]string{"Authorization": "Bearer test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "in-progress", resp.Status)
	assert.Equal(t, "crew en route", resp.ResponderNotes)
}

func TestUpdateStatus_ValidationError(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "PATCH", "/api/v1/incidents/INC-1/status", jsonBody(t, UpdateStatusRequest{Status: "responding"}), apiKey)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "failed on the 'status' tag")
}

func TestResponderQueue(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/responder/queue?sort=upvotes", nil, apiKey)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	mockService.EXPECT().ResponderQueue(gomock.Any(), store.SortByTime).Return([]models.Incident{sampleIncident()}).Times(1)
	w = makeRequest(router, "GET", "/api/v1/responder/queue?sort=time", nil, apiKey)
	assert.Equal(t, http.StatusOK, w.Code)

	mockService.EXPECT().ResponderQueue(gomock.Any(), store.SortBySeverity).Return(nil).Times(1)
	w = makeRequest(router, "GET", "/api/v1/responder/queue", nil, apiKey)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestUpdateFilters_Patch(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	var gotPatch models.FilterPatch
	mockService.EXPECT().
		SetFilters(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, patch models.FilterPatch) models.Filters {
			gotPatch = patch
			return models.Filters{Type: models.TypeFire}
		}).Times(1)

	w := makeRequest(router, "PATCH", "/api/v1/filters", bytes.NewBufferString(`{"type":"fire","search_query":""}`))

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, gotPatch.Type)
	assert.Equal(t, models.TypeFire, *gotPatch.Type)
	require.NotNil(t, gotPatch.SearchQuery)
	assert.Empty(t, *gotPatch.SearchQuery)
	assert.Nil(t, gotPatch.Severity)
	assert.Nil(t, gotPatch.TimeRange)

	var resp FiltersResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Active)
	assert.Equal(t, "all", resp.TimeRange)
}

func TestUpdateFilters_ValidationError(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().SetFilters(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "PATCH", "/api/v1/filters", bytes.NewBufferString(`{"time_range":"2w"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "failed on the 'time_range' tag")
}

func TestClearFilters(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().ClearFilters(gomock.Any()).Times(1)

	w := makeRequest(router, "DELETE", "/api/v1/filters", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestSelection(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().SelectedIncident(gomock.Any()).Return(models.Incident{}, false).Times(1)
	w := makeRequest(router, "GET", "/api/v1/selection", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	mockService.EXPECT().
		SelectIncident(gomock.Any(), "INC-404").
		Return(models.Incident{}, service.ErrIncidentNotFound).
		Times(1)
	w = makeRequest(router, "PUT", "/api/v1/selection", jsonBody(t, SelectIncidentRequest{ID: "INC-404"}))
	assert.Equal(t, http.StatusNotFound, w.Code)

	mockService.EXPECT().SelectIncident(gomock.Any(), "INC-1").Return(sampleIncident(), nil).Times(1)
	w = makeRequest(router, "PUT", "/api/v1/selection", jsonBody(t, SelectIncidentRequest{ID: "INC-1"}))
	assert.Equal(t, http.StatusOK, w.Code)

	mockService.EXPECT().ClearSelection(gomock.Any()).Times(1)
	w = makeRequest(router, "DELETE", "/api/v1/selection", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestGetStats(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().Stats(gomock.Any()).Return(models.Stats{Total: 4, Active: 3, HighSeverity: 1, Resolved: 1}).Times(1)

	w := makeRequest(router, "GET", "/api/v1/dashboard/stats", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp StatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 4, resp.Total)
	assert.Equal(t, 1, resp.HighSeverity)
}

func TestGetMap(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().MapView(gomock.Any()).Return(models.MapView{
		CenterLat: 40.7,
		CenterLng: -74,
		Markers:   []models.MapMarker{{ID: "INC-1", Type: models.TypeMedical, Severity: models.SeverityLow, X: 50, Y: 50}},
	}).Times(1)

	w := makeRequest(router, "GET", "/api/v1/map", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp MapResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Markers, 1)
	assert.Equal(t, models.IncidentTypeIcons[models.TypeMedical], resp.Markers[0].Icon)
}

func TestSyncIncidents(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().Sync(gomock.Any()).Return(0, errors.New("timeout")).Times(1)
	w := makeRequest(router, "POST", "/api/v1/system/sync", nil, apiKey)
	assert.Equal(t, http.StatusBadGateway, w.Code)

	mockService.EXPECT().Sync(gomock.Any()).Return(12, nil).Times(1)
	w = makeRequest(router, "POST", "/api/v1/system/sync", nil, apiKey)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"loaded":12}`, w.Body.String())
}

func TestHealthCheck(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().Status(gomock.Any()).Return(models.SystemStatus{Mode: "local", Incidents: 15}).Times(1)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","mode":"local","incidents":15}`, w.Body.String())
}

func TestHealthCheck_FeedDown(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		Status(gomock.Any()).
		Return(models.SystemStatus{Mode: "remote", Incidents: 3, FeedError: "remote: change feed failed: conn reset"}).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"degraded","mode":"remote","incidents":3,"feed_error":"remote: change feed failed: conn reset"}`, w.Body.String())
}
