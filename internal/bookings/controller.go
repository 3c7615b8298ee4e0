package bookings

import (
	"net/http"
	"strconv"
	"time"

	"eventuraa/internal/accounts"
	"eventuraa/internal/shared/apperrors"
	"eventuraa/internal/shared/middleware"
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

// CreateBooking handles POST /api/v1/bookings
func (c *Controller) CreateBooking(ctx *gin.Context) {
	var req CreateBookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondError(ctx, apperrors.Wrap(apperrors.KindValidation, "invalid request body", err))
		return
	}

	// Guest checkout: a missing account identity is allowed
	var accountID *uuid.UUID
	if idValue, exists := ctx.Get("account_id"); exists {
		if idStr, ok := idValue.(string); ok {
			if id, err := uuid.Parse(idStr); err == nil {
				accountID = &id
			}
		}
	}

	booking, err := c.service.CreateBooking(ctx.Request.Context(), accountID, req)
	if err != nil {
		response.RespondError(ctx, err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Booking created successfully", booking, nil)
}

// CheckAvailability handles GET /api/v1/bookings/check-availability/:roomTypeId
func (c *Controller) CheckAvailability(ctx *gin.Context) {
	roomTypeID, err := uuid.Parse(ctx.Param("roomTypeId"))
	if err != nil {
		response.RespondError(ctx, apperrors.Validation("invalid room type ID"))
		return
	}

	var query CheckAvailabilityQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RespondError(ctx, apperrors.Wrap(apperrors.KindValidation, "invalid query parameters", err))
		return
	}

	checkIn, _ := time.Parse(DateLayout, query.CheckInDate)
	checkOut, _ := time.Parse(DateLayout, query.CheckOutDate)

	available, err := c.service.CheckAvailability(ctx.Request.Context(), roomTypeID, checkIn, checkOut, uuid.Nil)
	if err != nil {
		response.RespondError(ctx, err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Availability checked",
		AvailabilityResponse{Available: available}, nil)
}

// ChangeStatus handles PUT /api/v1/bookings/:id/status
func (c *Controller) ChangeStatus(ctx *gin.Context) {
	bookingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondError(ctx, apperrors.Validation("invalid booking ID"))
		return
	}

	var req ChangeStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondError(ctx, apperrors.Wrap(apperrors.KindValidation, "invalid request body", err))
		return
	}

	actorRole := middleware.ActorRole(ctx)

	booking, err := c.service.ChangeStatus(ctx.Request.Context(), bookingID, Status(req.Status), actorRole, req.Reason)
	if err != nil {
		response.RespondError(ctx, err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Booking status updated", booking, nil)
}

// GetBooking handles GET /api/v1/bookings/:id
func (c *Controller) GetBooking(ctx *gin.Context) {
	bookingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondError(ctx, apperrors.Validation("invalid booking ID"))
		return
	}

	booking, err := c.service.GetBooking(ctx.Request.Context(), bookingID)
	if err != nil {
		response.RespondError(ctx, err)
		return
	}

	// Non-admin callers can only see their own bookings
	actorRole := middleware.ActorRole(ctx)
	if actorRole != accounts.RoleAdmin && actorRole != accounts.RoleHost {
		idValue, _ := ctx.Get("account_id")
		idStr, _ := idValue.(string)
		if booking.AccountID == nil || booking.AccountID.String() != idStr {
			response.RespondJSON(ctx, "error", http.StatusForbidden, "Access denied", nil, nil)
			return
		}
	}

	resp := booking.ToResponse()
	response.RespondJSON(ctx, "success", http.StatusOK, "Booking retrieved successfully", resp, nil)
}

// GetAccountBookings handles GET /api/v1/accounts/bookings
func (c *Controller) GetAccountBookings(ctx *gin.Context) {
	idValue, exists := ctx.Get("account_id")
	if !exists {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "account not authenticated", nil, nil)
		return
	}
	idStr, ok := idValue.(string)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "invalid account ID format", nil, nil)
		return
	}
	accountID, err := uuid.Parse(idStr)
	if err != nil {
		response.RespondError(ctx, apperrors.Validation("invalid account ID"))
		return
	}

	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	if err != nil || limit <= 0 {
		limit = 10
	}
	offset, err := strconv.Atoi(ctx.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	bookings, err := c.service.GetAccountBookings(ctx.Request.Context(), accountID, limit, offset)
	if err != nil {
		response.RespondError(ctx, err)
		return
	}

	responses := make([]BookingResponse, 0, len(bookings))
	for i := range bookings {
		responses = append(responses, bookings[i].ToResponse())
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Bookings retrieved successfully", gin.H{
		"bookings": responses,
		"count":    len(responses),
		"limit":    limit,
		"offset":   offset,
	}, nil)
}
