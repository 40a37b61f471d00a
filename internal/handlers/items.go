package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/danaholt/giftwish/internal/auth"
	"github.com/danaholt/giftwish/internal/middleware"
	"github.com/danaholt/giftwish/internal/services"
	appErrors "github.com/danaholt/giftwish/pkg/errors"
	"github.com/danaholt/giftwish/pkg/response"
)

// ItemHandler serves wishlist item creation.
type ItemHandler struct {
	items *services.ItemService
}

func NewItemHandler(items *services.ItemService) *ItemHandler {
	return &ItemHandler{items: items}
}

type createItemRequest struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Link        *string `json:"link" validate:"omitempty,max=2048"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	Quantity    *int    `json:"quantity" validate:"omitempty,min=1"`
}

// Create inserts an item under the event in the path. Hosts only, and the
// session must be bound to that same event.
func (h *ItemHandler) Create(c *gin.Context) {
	eventID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	session, ok := middleware.SessionFromContext(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	if session.Role != auth.RoleHost {
		response.Error(c, appErrors.NewForbidden("only the host can add items"))
		return
	}
	if session.EventID != eventID {
		response.Error(c, appErrors.NewForbidden("session is not bound to this event"))
		return
	}

	var req createItemRequest
	if !bindAndValidate(c, &req) {
		return
	}

	item, err := h.items.AddItem(requestContext(c), eventID, services.AddItemInput{
		Name:        req.Name,
		Link:        req.Link,
		Description: req.Description,
		Quantity:    req.Quantity,
	})
	if err != nil {
		response.Error(c, mapServiceError(err))
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"item": item})
}
