package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/danaholt/giftwish/internal/auth"
	"github.com/danaholt/giftwish/internal/middleware"
	"github.com/danaholt/giftwish/internal/models"
	"github.com/danaholt/giftwish/internal/services"
	appErrors "github.com/danaholt/giftwish/pkg/errors"
	"github.com/danaholt/giftwish/pkg/response"
)

// ClaimHandler records and removes claims against items.
type ClaimHandler struct {
	claims *services.ClaimService
}

func NewClaimHandler(claims *services.ClaimService) *ClaimHandler {
	return &ClaimHandler{claims: claims}
}

type createClaimRequest struct {
	Status    string `json:"status" validate:"required,oneof=PLANNING BOUGHT"`
	Name      string `json:"name" validate:"required,max=200"`
	Email     string `json:"email" validate:"omitempty,email"`
	Anonymous bool   `json:"anonymous"`
}

type undoClaimRequest struct {
	Name string `json:"name" validate:"omitempty,max=200"`
}

// Create appends a claim to the item. The item's owning event must match the
// session's event; the service re-derives that binding from the item row.
func (h *ClaimHandler) Create(c *gin.Context) {
	itemID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	session, ok := middleware.SessionFromContext(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req createClaimRequest
	if !bindAndValidate(c, &req) {
		return
	}

	claim, err := h.claims.ClaimItem(requestContext(c), itemID, session.EventID, services.ClaimItemInput{
		Status:    models.ClaimStatus(req.Status),
		Name:      req.Name,
		Email:     req.Email,
		Anonymous: req.Anonymous,
	})
	if err != nil {
		response.Error(c, mapServiceError(err))
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"claim": claim})
}

// Delete branches on role: the host clears every claim on the item, a guest
// undoes only the most recent claim and must resubmit the claimant name.
func (h *ClaimHandler) Delete(c *gin.Context) {
	itemID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	session, ok := middleware.SessionFromContext(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	if session.Role == auth.RoleHost {
		if err := h.claims.ClearClaims(requestContext(c), itemID, session.EventID); err != nil {
			response.Error(c, mapServiceError(err))
			return
		}
		response.Success(c, http.StatusOK, gin.H{"cleared": true})
		return
	}

	var req undoClaimRequest
	if !bindAndValidate(c, &req) {
		return
	}

	if err := h.claims.UndoClaim(requestContext(c), itemID, session.EventID, req.Name); err != nil {
		response.Error(c, mapServiceError(err))
		return
	}

	response.Success(c, http.StatusOK, gin.H{"undone": true})
}
