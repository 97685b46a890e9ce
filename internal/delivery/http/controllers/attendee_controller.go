package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"eventhub/internal/delivery/http/helpers"
	"eventhub/internal/delivery/http/middleware"
	"eventhub/internal/domain"
	"eventhub/internal/metrics"
)

type AttendeeController struct {
	Logger  *slog.Logger
	Service domain.AttendeeService
}

func NewAttendeeController(logger *slog.Logger, svc domain.AttendeeService) *AttendeeController {
	return &AttendeeController{
		Logger:  logger,
		Service: svc,
	}
}

// JoinEvent godoc
// @Summary Join an event
// @Description Adds the authenticated user to the event's attendees. A user can join an event only once.
// @Tags attendees
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} helpers.MessageResponse "Successfully joined the event"
// @Failure 400 {object} helpers.APIError "code: bad_request (already joined)"
// @Failure 401 {object} helpers.APIError "code: unauthorized"
// @Failure 404 {object} helpers.APIError "code: not_found"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /events/{eventID}/join [post]
func (c *AttendeeController) JoinEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := eventIDFromPath(w, r)
	if !ok {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "Unauthorized")
		return
	}
	if _, err := c.Service.JoinEvent(r.Context(), eventID, userID); err != nil {
		switch {
		case errors.Is(err, domain.ErrAlreadyJoined):
			metrics.EventJoinsTotal.WithLabelValues("duplicate").Inc()
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "Already joined this event")
		case errors.Is(err, domain.ErrNotFound):
			metrics.EventJoinsTotal.WithLabelValues("not_found").Inc()
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "Event not found")
		default:
			metrics.EventJoinsTotal.WithLabelValues("error").Inc()
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "Error joining event")
		}
		return
	}
	metrics.EventJoinsTotal.WithLabelValues("joined").Inc()
	helpers.WriteMessage(w, http.StatusOK, "Successfully joined the event")
}

// ListAttendees godoc
// @Summary List attendees of an event
// @Tags attendees
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {array} domain.Attendee
// @Failure 404 {object} helpers.APIError "code: not_found"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /events/{eventID}/attendees [get]
func (c *AttendeeController) ListAttendees(w http.ResponseWriter, r *http.Request) {
	eventID, ok := eventIDFromPath(w, r)
	if !ok {
		return
	}
	attendees, err := c.Service.ListAttendees(r.Context(), eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "Event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "Error fetching attendees")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, attendees)
}
