package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.Use(ViewerMiddleware())

	// Маршруты для граждан
	incidents := api.Group("/incidents")
	{
		incidents.POST("", h.createIncident)
		incidents.GET("", h.listIncidents)
		incidents.GET("/mine", h.listMyIncidents)
		incidents.GET("/:id", h.getIncident)
		incidents.POST("/:id/upvote", h.upvoteIncident)
		incidents.DELETE("/:id", h.deleteIncident)
	}

	filters := api.Group("/filters")
	{
		filters.GET("", h.getFilters)
		filters.PATCH("", h.updateFilters)
		filters.DELETE("", h.clearFilters)
	}

	selection := api.Group("/selection")
	{
		selection.GET("", h.getSelection)
		selection.PUT("", h.selectIncident)
		selection.DELETE("", h.clearSelection)
	}

	api.GET("/dashboard/stats", h.getStats)
	api.GET("/map", h.getMap)

	// Маршруты для спасателей требуют API-ключ
	responder := api.Group("", APIKeyAuthMiddleware(h.cfg, h.logger))
	{
		responder.PATCH("/incidents/:id/status", h.updateStatus)
		responder.GET("/responder/queue", h.responderQueue)
		responder.POST("/system/sync", h.syncIncidents)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
