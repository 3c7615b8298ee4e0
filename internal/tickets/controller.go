package tickets

import (
	"net/http"

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

// Purchase handles POST /api/v1/tickets/purchase
func (c *Controller) Purchase(ctx *gin.Context) {
	var req PurchaseRequest
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

	purchase, err := c.service.Purchase(ctx.Request.Context(), accountID, req)
	if err != nil {
		response.RespondError(ctx, err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Tickets purchased successfully", purchase, nil)
}

// GetPurchase handles GET /api/v1/tickets/purchases/:id
func (c *Controller) GetPurchase(ctx *gin.Context) {
	purchaseID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondError(ctx, apperrors.Validation("invalid purchase ID"))
		return
	}

	purchase, err := c.service.GetPurchase(ctx.Request.Context(), purchaseID)
	if err != nil {
		response.RespondError(ctx, err)
		return
	}

	// Non-admin callers can only see their own purchases
	actorRole := middleware.ActorRole(ctx)
	if actorRole != accounts.RoleAdmin {
		idValue, _ := ctx.Get("account_id")
		idStr, _ := idValue.(string)
		if purchase.AccountID == nil || purchase.AccountID.String() != idStr {
			response.RespondJSON(ctx, "error", http.StatusForbidden, "Access denied", nil, nil)
			return
		}
	}

	resp := purchase.ToResponse()
	response.RespondJSON(ctx, "success", http.StatusOK, "Purchase retrieved successfully", resp, nil)
}

// GetAccountPurchases handles GET /api/v1/accounts/purchases
func (c *Controller) GetAccountPurchases(ctx *gin.Context) {
	accountID, ok := c.authenticatedAccountID(ctx)
	if !ok {
		return
	}

	limit, offset := paginationParams(ctx)

	result, err := c.service.GetAccountPurchases(ctx.Request.Context(), accountID, limit, offset)
	if err != nil {
		response.RespondError(ctx, err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Purchases retrieved successfully", result, nil)
}

// GetOrganizerSales handles GET /api/v1/organizers/sales
func (c *Controller) GetOrganizerSales(ctx *gin.Context) {
	organizerID, ok := c.authenticatedAccountID(ctx)
	if !ok {
		return
	}

	limit, offset := paginationParams(ctx)

	result, err := c.service.GetOrganizerSales(ctx.Request.Context(), organizerID, limit, offset)
	if err != nil {
		response.RespondError(ctx, err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Sales retrieved successfully", result, nil)
}

func (c *Controller) authenticatedAccountID(ctx *gin.Context) (uuid.UUID, bool) {
	idValue, exists := ctx.Get("account_id")
	if !exists {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "account not authenticated", nil, nil)
		return uuid.Nil, false
	}
	idStr, _ := idValue.(string)
	accountID, err := uuid.Parse(idStr)
	if err != nil {
		response.RespondError(ctx, apperrors.Validation("invalid account ID"))
		return uuid.Nil, false
	}
	return accountID, true
}

func paginationParams(ctx *gin.Context) (limit, offset int) {
	var query PurchaseListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil || query.Limit <= 0 {
		return 10, 0
	}
	return query.Limit, query.Offset
}
