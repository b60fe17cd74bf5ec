package v1

import "time"

// CreateIncidentRequest DTO для создания отчета об инциденте
// @Description DTO для создания отчета об инциденте
type CreateIncidentRequest struct {
	Type        string   `json:"type" validate:"required,incident_type"`
	Severity    string   `json:"severity" validate:"required,severity"`
	Title       string   `json:"title" validate:"required,min=3,max=255"`
	Description string   `json:"description,omitempty" validate:"max=2000"`
	Latitude    float64  `json:"latitude" validate:"latitude"`
	Longitude   float64  `json:"longitude" validate:"longitude"`
	Address     string   `json:"address,omitempty" validate:"max=255"`
	Images      []string `json:"images,omitempty" validate:"max=5,dive,url"`
}

// UpdateStatusRequest DTO для смены статуса инцидента
// @Description DTO для смены статуса инцидента
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,status"`
	Notes  string `json:"notes,omitempty" validate:"max=2000"`
}

// UpdateFiltersRequest DTO для частичного обновления фильтров.
// Отсутствующее поле не меняется, пустая строка сбрасывает фильтр.
// @Description DTO для частичного обновления фильтров
type UpdateFiltersRequest struct {
	Type        *string `json:"type" validate:"omitempty,incident_type"`
	Severity    *string `json:"severity" validate:"omitempty,severity"`
	Status      *string `json:"status" validate:"omitempty,status"`
	TimeRange   *string `json:"time_range" validate:"omitempty,time_range"`
	SearchQuery *string `json:"search_query" validate:"omitempty,max=255"`
}

// SelectIncidentRequest DTO для выбора инцидента
// @Description DTO для выбора инцидента
type SelectIncidentRequest struct {
	ID string `json:"id" validate:"required"`
}

// LocationResponse DTO для координат и адреса
// @Description DTO для координат и адреса
type LocationResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID             string           `json:"id"`
	Type           string           `json:"type"`
	TypeLabel      string           `json:"type_label"`
	Icon           string           `json:"icon"`
	Title          string           `json:"title"`
	Description    string           `json:"description,omitempty"`
	Severity       string           `json:"severity"`
	Status         string           `json:"status"`
	StatusLabel    string           `json:"status_label"`
	Location       LocationResponse `json:"location"`
	ReportedAt     time.Time        `json:"reported_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
	ReportedBy     string           `json:"reported_by"`
	Upvotes        int              `json:"upvotes"`
	HasUpvoted     bool             `json:"has_upvoted"`
	Images         []string         `json:"images,omitempty"`
	ResponderNotes string           `json:"responder_notes,omitempty"`
}

// FiltersResponse DTO для активных фильтров
// @Description DTO для активных фильтров
type FiltersResponse struct {
	Type        string `json:"type"`
	Severity    string `json:"severity"`
	Status      string `json:"status"`
	TimeRange   string `json:"time_range"`
	SearchQuery string `json:"search_query"`
	Active      bool   `json:"active"`
}

// StatsResponse DTO для ответа со статистикой
// @Description DTO для ответа со статистикой
type StatsResponse struct {
	Total        int `json:"total"`
	Active       int `json:"active"`
	HighSeverity int `json:"high_severity"`
	Verified     int `json:"verified"`
	Unverified   int `json:"unverified"`
	InProgress   int `json:"in_progress"`
	Resolved     int `json:"resolved"`
}

// MapMarkerResponse DTO для маркера на карте (координаты в процентах)
// @Description DTO для маркера на карте
type MapMarkerResponse struct {
	ID       string  `json:"id"`
	Type     string  `json:"type"`
	Icon     string  `json:"icon"`
	Severity string  `json:"severity"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
}

// MapResponse DTO для карты инцидентов
// @Description DTO для карты инцидентов
type MapResponse struct {
	CenterLat float64             `json:"center_lat"`
	CenterLng float64             `json:"center_lng"`
	Markers   []MapMarkerResponse `json:"markers"`
}

// SyncResponse DTO для результата синхронизации
// @Description DTO для результата синхронизации
type SyncResponse struct {
	Loaded int `json:"loaded"`
}

// HealthResponse DTO для проверки состояния
// @Description DTO для проверки состояния
type HealthResponse struct {
	Status    string `json:"status"`
	Mode      string `json:"mode"`
	Incidents int    `json:"incidents"`
	FeedError string `json:"feed_error,omitempty"`
}
