package events

import (
	"net/http"

	"eventuraa/internal/shared/apperrors"
	"eventuraa/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// CreateEvent handles POST /api/v1/events
func (c *Controller) CreateEvent(ctx *gin.Context) {
	idValue, exists := ctx.Get("account_id")
	if !exists {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "account not authenticated", nil, nil)
		return
	}
	idStr, _ := idValue.(string)
	organizerID, err := uuid.Parse(idStr)
	if err != nil {
		response.RespondError(ctx, apperrors.Validation("invalid account ID"))
		return
	}

	var req CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondError(ctx, apperrors.Wrap(apperrors.KindValidation, "invalid request body", err))
		return
	}

	event, err := c.service.CreateEvent(ctx.Request.Context(), organizerID, req)
	if err != nil {
		response.RespondError(ctx, err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Event created successfully", event, nil)
}

// GetEvent handles GET /api/v1/events/:id
func (c *Controller) GetEvent(ctx *gin.Context) {
	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondError(ctx, apperrors.Validation("invalid event ID"))
		return
	}

	event, err := c.service.GetEvent(ctx.Request.Context(), eventID)
	if err != nil {
		response.RespondError(ctx, err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Event retrieved successfully", event, nil)
}

// ListEvents handles GET /api/v1/events
func (c *Controller) ListEvents(ctx *gin.Context) {
	var query EventListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RespondError(ctx, apperrors.Wrap(apperrors.KindValidation, "invalid query parameters", err))
		return
	}

	result, err := c.service.ListEvents(ctx.Request.Context(), query)
	if err != nil {
		response.RespondError(ctx, err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Events retrieved successfully", result, nil)
}

// UpdateEventStatus handles PUT /api/v1/admin/events/:id/status
func (c *Controller) UpdateEventStatus(ctx *gin.Context) {
	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondError(ctx, apperrors.Validation("invalid event ID"))
		return
	}

	var req UpdateEventStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondError(ctx, apperrors.Wrap(apperrors.KindValidation, "invalid request body", err))
		return
	}

	if err := c.service.UpdateEventStatus(ctx.Request.Context(), eventID, Status(req.Status)); err != nil {
		response.RespondError(ctx, err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Event status updated", nil, nil)
}
