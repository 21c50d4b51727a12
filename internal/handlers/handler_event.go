package handlers

import (
	"log/slog"
	"net/http"

	"github.com/campusfunds/event_funds_app/internal/core/domain"
	portssvc "github.com/campusfunds/event_funds_app/internal/core/ports/services"
	"github.com/campusfunds/event_funds_app/internal/dto"
	"github.com/campusfunds/event_funds_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// eventHandler handles HTTP requests related to events.
type eventHandler struct {
	eventService portssvc.EventSvcFacade
}

// newEventHandler creates a new eventHandler.
func newEventHandler(es portssvc.EventSvcFacade) *eventHandler {
	return &eventHandler{
		eventService: es,
	}
}

// registerEventRoutes registers the public event read routes.
func registerEventRoutes(rg *gin.RouterGroup, eventService portssvc.EventSvcFacade) {
	h := newEventHandler(eventService)

	rg.GET("/events", h.listEvents)
	rg.GET("/events/:eventID", h.getEventByID)
	rg.GET("/events-with-funds", h.listEventsWithFunds)
}

// registerEventAdminRoutes registers the guarded event write routes.
func registerEventAdminRoutes(rg *gin.RouterGroup, eventService portssvc.EventSvcFacade) {
	h := newEventHandler(eventService)

	rg.POST("/events", h.createEvent)
	rg.PUT("/events/:eventID", h.updateEvent)
	rg.DELETE("/events/:eventID", h.deleteEvent)
}

// listEvents godoc
// @Summary List events
// @Description Returns all events newest first. Optional status or type filters bypass the snapshot cache and filter at the data source.
// @Tags events
// @Produce json
// @Param status query string false "Filter by lifecycle status" Enums(Upcoming, Ongoing, Completed, Cancelled)
// @Param type query string false "Filter by category tag"
// @Success 200 {array} dto.EventResponse
// @Failure 500 {object} map[string]string "Failed to list events"
// @Router /events [get]
func (h *eventHandler) listEvents(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var (
		events []domain.Event
		err    error
	)
	switch {
	case c.Query("status") != "":
		events, err = h.eventService.ListEventsByStatus(c.Request.Context(), domain.EventStatus(c.Query("status")))
	case c.Query("type") != "":
		events, err = h.eventService.ListEventsByType(c.Request.Context(), c.Query("type"))
	default:
		events, err = h.eventService.ListEvents(c.Request.Context())
	}
	if err != nil {
		respondWithError(c, logger, err, "Failed to list events")
		return
	}

	c.JSON(http.StatusOK, dto.ToListEventResponse(events))
}

// getEventByID godoc
// @Summary Get one event
// @Tags events
// @Produce json
// @Param eventID path string true "Event ID"
// @Success 200 {object} dto.EventResponse
// @Failure 404 {object} map[string]string "Event not found"
// @Router /events/{eventID} [get]
func (h *eventHandler) getEventByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("eventID")

	event, err := h.eventService.GetEventByID(c.Request.Context(), eventID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to get event")
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

// listEventsWithFunds godoc
// @Summary List events joined with their cashbooks
// @Description Returns the full event and cashbook collections in one response; both fetches run concurrently when the cache is stale.
// @Tags events
// @Produce json
// @Success 200 {object} dto.EventsWithFundsResponse
// @Failure 500 {object} map[string]string "Failed to list events with funds"
// @Router /events-with-funds [get]
func (h *eventHandler) listEventsWithFunds(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	result, err := h.eventService.ListEventsWithFunds(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to list events with funds")
		return
	}

	c.JSON(http.StatusOK, dto.ToEventsWithFundsResponse(result))
}

// createEvent godoc
// @Summary Create an event
// @Tags events
// @Accept json
// @Produce json
// @Param event body dto.CreateEventRequest true "Event details"
// @Success 201 {object} dto.EventResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /events [post]
func (h *eventHandler) createEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createEvent", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create event")
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

// updateEvent godoc
// @Summary Update an event
// @Tags events
// @Accept json
// @Produce json
// @Param eventID path string true "Event ID"
// @Param event body dto.UpdateEventRequest true "Fields to update"
// @Success 200 {object} dto.EventResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Event not found"
// @Security BearerAuth
// @Router /events/{eventID} [put]
func (h *eventHandler) updateEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("eventID")

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateEvent", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	event, err := h.eventService.UpdateEvent(c.Request.Context(), eventID, req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to update event")
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

// deleteEvent godoc
// @Summary Delete an event
// @Tags events
// @Produce json
// @Param eventID path string true "Event ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Event not found"
// @Security BearerAuth
// @Router /events/{eventID} [delete]
func (h *eventHandler) deleteEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("eventID")

	if err := h.eventService.DeleteEvent(c.Request.Context(), eventID); err != nil {
		respondWithError(c, logger, err, "Failed to delete event")
		return
	}

	c.Status(http.StatusNoContent)
}
