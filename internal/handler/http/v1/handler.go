package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/incident_dispatch/internal/config"
	"github.com/shenikar/incident_dispatch/internal/models"
	"github.com/shenikar/incident_dispatch/internal/service"
	"github.com/shenikar/incident_dispatch/internal/store"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	incidentService service.IncidentService
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(incidentService service.IncidentService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		incidentService: incidentService,
		logger:          logger,
		validate:        newValidator(),
		cfg:             cfg,
	}
}

// @Summary Report a new incident
// @Description Report an incident. An empty address is filled from the coordinates. The reporter is taken from X-User-ID.
// @Tags Incidents
// @Accept json
// @Produce json
// @Param X-User-ID header string false "Reporter ID"
// @Param incident body CreateIncidentRequest true "Incident report"
// @Success 201 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [post]
func (h *Handler) createIncident(c *gin.Context) {
	var input CreateIncidentRequest
	log := h.logger.WithField("method", "createIncident")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	incident, err := h.incidentService.ReportIncident(c.Request.Context(), DTOToIncidentDraft(input, viewerID(c)))
	if err != nil {
		log.WithError(err).Error("Failed to report incident in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToIncidentResponse(incident))
}

// @Summary Get a list of incidents
// @Description Get incidents matching the active filters, newest first.
// @Tags Incidents
// @Produce json
// @Success 200 {array} IncidentResponse
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	incidents := h.incidentService.ListIncidents(c.Request.Context())
	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary Get my reports
// @Description Get the reports submitted by the user from X-User-ID.
// @Tags Incidents
// @Produce json
// @Param X-User-ID header string true "Reporter ID"
// @Success 200 {array} IncidentResponse
// @Failure 400 {object} map[string]string "Missing user ID"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/mine [get]
func (h *Handler) listMyIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listMyIncidents")
	userID := c.GetHeader(userIDHeader)
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "X-User-ID header required"})
		return
	}

	incidents, err := h.incidentService.ListReportsByUser(c.Request.Context(), userID)
	if err != nil {
		log.WithError(err).Error("Failed to list user incidents from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary Get incident by ID
// @Description Get a single incident by its ID.
// @Tags Incidents
// @Produce json
// @Param id path string true "Incident ID"
// @Success 200 {object} IncidentResponse
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getIncident").WithField("id", id)

	incident, err := h.incidentService.GetIncident(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get incident from service")
		c.JSON(http.StatusNotFound, gin.H{"error": "incident not found"})
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Toggle upvote
// @Description Upvote an incident or withdraw the upvote of the viewer from X-User-ID.
// @Tags Incidents
// @Produce json
// @Param id path string true "Incident ID"
// @Param X-User-ID header string false "Viewer ID"
// @Success 200 {object} IncidentResponse
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id}/upvote [post]
func (h *Handler) upvoteIncident(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "upvoteIncident").WithField("id", id)

	incident, err := h.incidentService.UpvoteIncident(c.Request.Context(), id, viewerID(c))
	if err != nil {
		h.writeServiceError(c, log, err, "failed to upvote incident")
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Delete my report
// @Description Delete a report owned by the user from X-User-ID.
// @Tags Incidents
// @Param id path string true "Incident ID"
// @Param X-User-ID header string true "Owner ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string "Not the owner"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id} [delete]
func (h *Handler) deleteIncident(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "deleteIncident").WithField("id", id)

	if err := h.incidentService.DeleteIncident(c.Request.Context(), id, c.GetHeader(userIDHeader)); err != nil {
		h.writeServiceError(c, log, err, "failed to delete incident")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Update incident status
// @Description Set the status of an incident. Any transition is allowed. Requires API key.
// @Tags Responder
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param status body UpdateStatusRequest true "New status"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id}/status [patch]
func (h *Handler) updateStatus(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "updateStatus").WithField("id", id)

	var input UpdateStatusRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	incident, err := h.incidentService.UpdateStatus(c.Request.Context(), id, models.Status(input.Status), input.Notes)
	if err != nil {
		h.writeServiceError(c, log, err, "failed to update status")
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Responder queue
// @Description Unresolved incidents sorted by severity (default) or by report time. Requires API key.
// @Tags Responder
// @Produce json
// @Security ApiKeyAuth
// @Param sort query string false "Sort order" Enums(severity, time) default(severity)
// @Success 200 {array} IncidentResponse
// @Failure 400 {object} map[string]string "Unknown sort order"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /responder/queue [get]
func (h *Handler) responderQueue(c *gin.Context) {
	sortBy := store.SortBy(c.DefaultQuery("sort", string(store.SortBySeverity)))
	if sortBy != store.SortBySeverity && sortBy != store.SortByTime {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sort must be severity or time"})
		return
	}
	c.JSON(http.StatusOK, ModelsToIncidentResponses(h.incidentService.ResponderQueue(c.Request.Context(), sortBy)))
}

// @Summary Get active filters
// @Tags Filters
// @Produce json
// @Success 200 {object} FiltersResponse
// @Router /filters [get]
func (h *Handler) getFilters(c *gin.Context) {
	c.JSON(http.StatusOK, ModelToFiltersResponse(h.incidentService.Filters(c.Request.Context())))
}

// @Summary Update filters
// @Description Merge the given fields into the active filters. An empty string clears a field.
// @Tags Filters
// @Accept json
// @Produce json
// @Param filters body UpdateFiltersRequest true "Filter patch"
// @Success 200 {object} FiltersResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Router /filters [patch]
func (h *Handler) updateFilters(c *gin.Context) {
	var input UpdateFiltersRequest
	log := h.logger.WithField("method", "updateFilters")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filters := h.incidentService.SetFilters(c.Request.Context(), DTOToFilterPatch(input))
	c.JSON(http.StatusOK, ModelToFiltersResponse(filters))
}

// @Summary Clear filters
// @Tags Filters
// @Success 204 "No Content"
// @Router /filters [delete]
func (h *Handler) clearFilters(c *gin.Context) {
	h.incidentService.ClearFilters(c.Request.Context())
	c.Status(http.StatusNoContent)
}

// @Summary Get selected incident
// @Tags Selection
// @Produce json
// @Success 200 {object} IncidentResponse
// @Success 204 "Nothing selected"
// @Router /selection [get]
func (h *Handler) getSelection(c *gin.Context) {
	incident, ok := h.incidentService.SelectedIncident(c.Request.Context())
	if !ok {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Select incident
// @Tags Selection
// @Accept json
// @Produce json
// @Param selection body SelectIncidentRequest true "Incident to select"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /selection [put]
func (h *Handler) selectIncident(c *gin.Context) {
	var input SelectIncidentRequest
	log := h.logger.WithField("method", "selectIncident")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	incident, err := h.incidentService.SelectIncident(c.Request.Context(), input.ID)
	if err != nil {
		h.writeServiceError(c, log, err, "failed to select incident")
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Clear selection
// @Tags Selection
// @Success 204 "No Content"
// @Router /selection [delete]
func (h *Handler) clearSelection(c *gin.Context) {
	h.incidentService.ClearSelection(c.Request.Context())
	c.Status(http.StatusNoContent)
}

// @Summary Get dashboard statistics
// @Description Counters over the whole collection.
// @Tags Dashboard
// @Produce json
// @Success 200 {object} StatsResponse
// @Router /dashboard/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	c.JSON(http.StatusOK, ModelToStatsResponse(h.incidentService.Stats(c.Request.Context())))
}

// @Summary Get map markers
// @Description Markers for the filtered incidents, positioned in percent around their centroid.
// @Tags Dashboard
// @Produce json
// @Success 200 {object} MapResponse
// @Router /map [get]
func (h *Handler) getMap(c *gin.Context) {
	c.JSON(http.StatusOK, ModelToMapResponse(h.incidentService.MapView(c.Request.Context())))
}

// @Summary Reload incidents
// @Description Reload the collection from the remote store. Requires API key.
// @Tags System
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} SyncResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Remote store unavailable"
// @Router /system/sync [post]
func (h *Handler) syncIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "syncIncidents")

	n, err := h.incidentService.Sync(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to sync incidents")
		c.JSON(http.StatusBadGateway, gin.H{"error": "remote store unavailable"})
		return
	}
	c.JSON(http.StatusOK, SyncResponse{Loaded: n})
}

// @Summary Health check
// @Description Check if the service is running. Status is "degraded" while the remote change feed is down.
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	status := h.incidentService.Status(c.Request.Context())
	resp := HealthResponse{
		Status:    "ok",
		Mode:      status.Mode,
		Incidents: status.Incidents,
		FeedError: status.FeedError,
	}
	if status.FeedError != "" {
		resp.Status = "degraded"
	}
	c.JSON(http.StatusOK, resp)
}

// writeServiceError переводит ошибки сервиса в коды ответа
func (h *Handler) writeServiceError(c *gin.Context, log *logrus.Entry, err error, msg string) {
	switch {
	case errors.Is(err, service.ErrIncidentNotFound):
		log.WithError(err).Warn("Incident not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "incident not found"})
	case errors.Is(err, service.ErrNotOwner):
		log.WithError(err).Warn("Forbidden")
		c.JSON(http.StatusForbidden, gin.H{"error": "incident belongs to another user"})
	default:
		log.WithError(err).Error("Service call failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
	}
}
