package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/danaholt/giftwish/internal/auth"
	"github.com/danaholt/giftwish/internal/services"
	appErrors "github.com/danaholt/giftwish/pkg/errors"
	"github.com/danaholt/giftwish/pkg/metrics"
	"github.com/danaholt/giftwish/pkg/response"
)

// AuthHandler exchanges access codes for sessions and tears sessions down.
type AuthHandler struct {
	events   *services.EventService
	registry *auth.Registry
}

func NewAuthHandler(events *services.EventService, registry *auth.Registry) *AuthHandler {
	return &AuthHandler{events: events, registry: registry}
}

type loginRequest struct {
	Code string `json:"code" validate:"required"`
}

type loginResponse struct {
	Redirect string    `json:"redirect"`
	Role     auth.Role `json:"role"`
	EventID  uint      `json:"eventId"`
}

// Login matches the submitted code against host and guest codes. A match
// creates a session bound to the event with the matched role; anything else
// is a 401 without revealing which part failed.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if !bindAndValidate(c, &req) {
		return
	}

	event, role, err := h.events.LookupByCode(requestContext(c), req.Code)
	if err != nil {
		metrics.LoginAttempts.WithLabelValues("failure").Inc()
		if errors.Is(err, services.ErrEventNotFound) || errors.Is(err, services.ErrMissingFields) {
			response.Error(c, appErrors.ErrInvalidCode)
			return
		}
		response.Error(c, appErrors.ErrInternalServer.WithInternal(err))
		return
	}

	session, err := h.registry.Create(event.ID, role)
	if err != nil {
		metrics.LoginAttempts.WithLabelValues("failure").Inc()
		response.Error(c, appErrors.ErrInternalServer.WithInternal(err))
		return
	}

	metrics.LoginAttempts.WithLabelValues("success").Inc()
	auth.SetSessionCookie(c, session, int(h.registry.TTL().Seconds()))

	response.Success(c, http.StatusOK, loginResponse{
		Redirect: redirectPath(role, event.ID),
		Role:     role,
		EventID:  event.ID,
	})
}

// Logout drops the server-side session, if any, and clears the cookie. It is
// deliberately idempotent.
func (h *AuthHandler) Logout(c *gin.Context) {
	if id := auth.SessionIDFromRequest(c); id != "" {
		h.registry.Delete(id)
	}
	auth.ClearSessionCookie(c)

	response.Success(c, http.StatusOK, gin.H{"loggedOut": true})
}

func redirectPath(role auth.Role, eventID uint) string {
	if role == auth.RoleHost {
		return fmt.Sprintf("/host/%d", eventID)
	}
	return fmt.Sprintf("/guest/%d", eventID)
}
