package controller

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/Little-Town-Labs/homeschooltranscripttracker/internal/service"
	"github.com/Little-Town-Labs/homeschooltranscripttracker/internal/util"
)

type BillingController struct {
	BillingService *service.BillingService
}

func NewBillingController(billingService *service.BillingService) *BillingController {
	return &BillingController{BillingService: billingService}
}

// @Summary Get the tenant's subscription
// @Tags billing
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/billing/subscription [get]
func (c *BillingController) GetSubscription(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	sub, err := c.BillingService.Current(claims.TenantID)
	if err != nil {
		if errors.Is(err, util.ErrSubscriptionNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, sub)
}

// @Summary Start a subscription checkout
// @Description Creates a payment gateway transaction priced per enrolled student; only the primary guardian may check out
// @Tags billing
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/billing/checkout [post]
func (c *BillingController) Checkout(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	result, err := c.BillingService.Checkout(claims)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrNotPrimaryGuardian):
			util.Forbidden(ctx)
		case errors.Is(err, util.ErrSubscriptionNotFound):
			util.NotFound(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, result)
}

// @Summary Cancel the tenant's subscription
// @Description Marks the subscription canceled at the end of the paid period; only the primary guardian may cancel
// @Tags billing
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/billing/cancel [post]
func (c *BillingController) Cancel(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	sub, err := c.BillingService.Cancel(claims)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrNotPrimaryGuardian):
			util.Forbidden(ctx)
		case errors.Is(err, util.ErrSubscriptionNotFound):
			util.NotFound(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, sub)
}

// @Summary Payment gateway notification webhook
// @Description Unauthenticated endpoint the gateway calls with transaction status updates
// @Tags billing
// @Accept json
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/billing/notifications [post]
func (c *BillingController) Notifications(ctx *gin.Context) {
	raw, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		util.BadRequest(ctx, "unreadable body")
		return
	}

	if err := c.BillingService.HandleNotification(ctx.Request.Context(), raw); err != nil {
		// the gateway retries on non-2xx, so only transient failures
		// should surface here
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "ok"})
}
