package v1

import "github.com/shenikar/incident_dispatch/internal/models"

// DTOToIncidentDraft преобразует DTO создания в черновик отчета
func DTOToIncidentDraft(dto CreateIncidentRequest, reportedBy string) models.IncidentDraft {
	return models.IncidentDraft{
		Type:        models.IncidentType(dto.Type),
		Severity:    models.Severity(dto.Severity),
		Title:       dto.Title,
		Description: dto.Description,
		Location: models.Location{
			Lat:     dto.Latitude,
			Lng:     dto.Longitude,
			Address: dto.Address,
		},
		ReportedBy: reportedBy,
		Images:     dto.Images,
	}
}

// DTOToFilterPatch преобразует DTO фильтров в патч. nil-поля не меняют фильтр.
func DTOToFilterPatch(dto UpdateFiltersRequest) models.FilterPatch {
	var patch models.FilterPatch
	if dto.Type != nil {
		v := models.IncidentType(*dto.Type)
		patch.Type = &v
	}
	if dto.Severity != nil {
		v := models.Severity(*dto.Severity)
		patch.Severity = &v
	}
	if dto.Status != nil {
		v := models.Status(*dto.Status)
		patch.Status = &v
	}
	if dto.TimeRange != nil {
		v := models.TimeRange(*dto.TimeRange)
		patch.TimeRange = &v
	}
	patch.SearchQuery = dto.SearchQuery
	return patch
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model models.Incident) IncidentResponse {
	return IncidentResponse{
		ID:          model.ID,
		Type:        string(model.Type),
		TypeLabel:   models.IncidentTypeLabels[model.Type],
		Icon:        models.IncidentTypeIcons[model.Type],
		Title:       model.Title,
		Description: model.Description,
		Severity:    string(model.Severity),
		Status:      string(model.Status),
		StatusLabel: models.StatusLabels[model.Status],
		Location: LocationResponse{
			Latitude:  model.Location.Lat,
			Longitude: model.Location.Lng,
			Address:   model.Location.Address,
		},
		ReportedAt:     model.ReportedAt,
		UpdatedAt:      model.UpdatedAt,
		ReportedBy:     model.ReportedBy,
		Upvotes:        model.Upvotes,
		HasUpvoted:     model.HasUpvoted,
		Images:         model.Images,
		ResponderNotes: model.ResponderNotes,
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(incidents []models.Incident) []IncidentResponse {
	responses := make([]IncidentResponse, len(incidents))
	for i, incident := range incidents {
		responses[i] = ModelToIncidentResponse(incident)
	}
	return responses
}

func ModelToFiltersResponse(f models.Filters) FiltersResponse {
	timeRange := f.TimeRange
	if timeRange == "" {
		timeRange = models.TimeRangeAll
	}
	return FiltersResponse{
		Type:        string(f.Type),
		Severity:    string(f.Severity),
		Status:      string(f.Status),
		TimeRange:   string(timeRange),
		SearchQuery: f.SearchQuery,
		Active:      !f.IsEmpty(),
	}
}

func ModelToStatsResponse(s models.Stats) StatsResponse {
	return StatsResponse{
		Total:        s.Total,
		Active:       s.Active,
		HighSeverity: s.HighSeverity,
		Verified:     s.Verified,
		Unverified:   s.Unverified,
		InProgress:   s.InProgress,
		Resolved:     s.Resolved,
	}
}

func ModelToMapResponse(view models.MapView) MapResponse {
	markers := make([]MapMarkerResponse, len(view.Markers))
	for i, m := range view.Markers {
		markers[i] = MapMarkerResponse{
			ID:       m.ID,
			Type:     string(m.Type),
			Icon:     models.IncidentTypeIcons[m.Type],
			Severity: string(m.Severity),
			X:        m.X,
			Y:        m.Y,
		}
	}
	return MapResponse{
		CenterLat: view.CenterLat,
		CenterLng: view.CenterLng,
		Markers:   markers,
	}
}
