package venues

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

// CreateVenue handles POST /api/v1/venues
func (c *Controller) CreateVenue(ctx *gin.Context) {
	ownerID, ok := accountIDFromContext(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "account not authenticated", nil, nil)
		return
	}

	var req CreateVenueRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondError(ctx, apperrors.Wrap(apperrors.KindValidation, "invalid request body", err))
		return
	}

	venue, err := c.service.CreateVenue(ctx.Request.Context(), ownerID, req)
	if err != nil {
		response.RespondError(ctx, err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Venue created successfully", venue, nil)
}

// GetVenue handles GET /api/v1/venues/:id
func (c *Controller) GetVenue(ctx *gin.Context) {
	venueID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondError(ctx, apperrors.Validation("invalid venue ID"))
		return
	}

	venue, err := c.service.GetVenue(ctx.Request.Context(), venueID)
	if err != nil {
		response.RespondError(ctx, err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Venue retrieved successfully", venue, nil)
}

// ListVenues handles GET /api/v1/venues
func (c *Controller) ListVenues(ctx *gin.Context) {
	var query VenueListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RespondError(ctx, apperrors.Wrap(apperrors.KindValidation, "invalid query parameters", err))
		return
	}

	result, err := c.service.ListVenues(ctx.Request.Context(), query)
	if err != nil {
		response.RespondError(ctx, err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Venues retrieved successfully", result, nil)
}

// UpdateVenue handles PUT /api/v1/venues/:id
func (c *Controller) UpdateVenue(ctx *gin.Context) {
	venueID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondError(ctx, apperrors.Validation("invalid venue ID"))
		return
	}

	var req UpdateVenueRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondError(ctx, apperrors.Wrap(apperrors.KindValidation, "invalid request body", err))
		return
	}

	venue, err := c.service.UpdateVenue(ctx.Request.Context(), venueID, req)
	if err != nil {
		response.RespondError(ctx, err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Venue updated successfully", venue, nil)
}

// ApproveVenue handles PUT /api/v1/admin/venues/:id/approval
func (c *Controller) ApproveVenue(ctx *gin.Context) {
	venueID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondError(ctx, apperrors.Validation("invalid venue ID"))
		return
	}

	var req struct {
		Status string `json:"status" binding:"required,oneof=PENDING APPROVED REJECTED"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondError(ctx, apperrors.Wrap(apperrors.KindValidation, "invalid request body", err))
		return
	}

	if err := c.service.SetApproval(ctx.Request.Context(), venueID, ApprovalStatus(req.Status)); err != nil {
		response.RespondError(ctx, err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Venue approval updated", nil, nil)
}

// CreateRoomType handles POST /api/v1/venues/:id/room-types
func (c *Controller) CreateRoomType(ctx *gin.Context) {
	venueID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondError(ctx, apperrors.Validation("invalid venue ID"))
		return
	}

	var req CreateRoomTypeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondError(ctx, apperrors.Wrap(apperrors.KindValidation, "invalid request body", err))
		return
	}

	roomType, err := c.service.CreateRoomType(ctx.Request.Context(), venueID, req)
	if err != nil {
		response.RespondError(ctx, err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Room type created successfully", roomType, nil)
}

// ListRoomTypes handles GET /api/v1/venues/:id/room-types
func (c *Controller) ListRoomTypes(ctx *gin.Context) {
	venueID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondError(ctx, apperrors.Validation("invalid venue ID"))
		return
	}

	roomTypes, err := c.service.ListRoomTypes(ctx.Request.Context(), venueID)
	if err != nil {
		response.RespondError(ctx, err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Room types retrieved successfully", roomTypes, nil)
}

// CreateRoom handles POST /api/v1/room-types/:id/rooms
func (c *Controller) CreateRoom(ctx *gin.Context) {
	roomTypeID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondError(ctx, apperrors.Validation("invalid room type ID"))
		return
	}

	var req CreateRoomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondError(ctx, apperrors.Wrap(apperrors.KindValidation, "invalid request body", err))
		return
	}

	room, err := c.service.CreateRoom(ctx.Request.Context(), roomTypeID, req)
	if err != nil {
		response.RespondError(ctx, err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Room created successfully", room, nil)
}

// ListRooms handles GET /api/v1/room-types/:id/rooms
func (c *Controller) ListRooms(ctx *gin.Context) {
	roomTypeID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondError(ctx, apperrors.Validation("invalid room type ID"))
		return
	}

	rooms, err := c.service.ListRooms(ctx.Request.Context(), roomTypeID)
	if err != nil {
		response.RespondError(ctx, err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Rooms retrieved successfully", rooms, nil)
}

// UpdateRoomStatus handles PUT /api/v1/rooms/:id/status
func (c *Controller) UpdateRoomStatus(ctx *gin.Context) {
	roomID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondError(ctx, apperrors.Validation("invalid room ID"))
		return
	}

	var req UpdateRoomStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondError(ctx, apperrors.Wrap(apperrors.KindValidation, "invalid request body", err))
		return
	}

	if err := c.service.UpdateRoomStatus(ctx.Request.Context(), roomID, RoomStatus(req.Status)); err != nil {
		response.RespondError(ctx, err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Room status updated", nil, nil)
}

func accountIDFromContext(ctx *gin.Context) (uuid.UUID, bool) {
	idValue, exists := ctx.Get("account_id")
	if !exists {
		return uuid.Nil, false
	}
	idStr, ok := idValue.(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
