package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/danaholt/giftwish/internal/auth"
	"github.com/danaholt/giftwish/internal/middleware"
	"github.com/danaholt/giftwish/internal/models"
	"github.com/danaholt/giftwish/internal/services"
	appErrors "github.com/danaholt/giftwish/pkg/errors"
	"github.com/danaholt/giftwish/pkg/response"
)

// EventHandler serves event creation and the role-aware event page payload.
type EventHandler struct {
	events   *services.EventService
	registry *auth.Registry
}

func NewEventHandler(events *services.EventService, registry *auth.Registry) *EventHandler {
	return &EventHandler{events: events, registry: registry}
}

type createEventRequest struct {
	Name      string `json:"name" validate:"required,max=200"`
	Date      string `json:"date" validate:"required,max=64"`
	HostEmail string `json:"hostEmail" validate:"required,email"`
}

type sessionDTO struct {
	EventID uint      `json:"eventId"`
	Role    auth.Role `json:"role"`
}

type createEventResponse struct {
	Event    models.Event `json:"event"`
	Session  sessionDTO   `json:"session"`
	Redirect string       `json:"redirect"`
}

// Create inserts the event and logs the creator straight in as host. The
// response carries both access codes once; afterwards only host sessions can
// read them back.
func (h *EventHandler) Create(c *gin.Context) {
	var req createEventRequest
	if !bindAndValidate(c, &req) {
		return
	}

	event, err := h.events.CreateEvent(requestContext(c), services.CreateEventInput{
		Name:      req.Name,
		Date:      req.Date,
		HostEmail: req.HostEmail,
	})
	if err != nil {
		response.Error(c, mapServiceError(err))
		return
	}

	session, err := h.registry.Create(event.ID, auth.RoleHost)
	if err != nil {
		response.Error(c, appErrors.ErrInternalServer.WithInternal(err))
		return
	}
	auth.SetSessionCookie(c, session, int(h.registry.TTL().Seconds()))

	response.Success(c, http.StatusCreated, createEventResponse{
		Event:    *event,
		Session:  sessionDTO{EventID: session.EventID, Role: session.Role},
		Redirect: fmt.Sprintf("/host/%d", event.ID),
	})
}

// Detail returns the event with its items and derived statuses. The session
// must be bound to the requested event; hosts additionally see the codes.
func (h *EventHandler) Detail(c *gin.Context) {
	eventID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	session, ok := middleware.SessionFromContext(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	if session.EventID != eventID {
		response.Error(c, appErrors.NewForbidden("session is not bound to this event"))
		return
	}

	detail, err := h.events.GetDetail(requestContext(c), eventID, session.Role)
	if err != nil {
		response.Error(c, mapServiceError(err))
		return
	}

	response.Success(c, http.StatusOK, detail)
}
