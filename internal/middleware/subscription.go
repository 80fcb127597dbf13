package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Little-Town-Labs/homeschooltranscripttracker/internal/model"
	"github.com/Little-Town-Labs/homeschooltranscripttracker/internal/repository"
	"github.com/Little-Town-Labs/homeschooltranscripttracker/internal/util"
)

// SubscriptionRequired blocks writes for tenants whose subscription has
// lapsed. Reads always pass so a family never loses access to records it
// already entered.
func SubscriptionRequired(subscriptionRepo *repository.SubscriptionRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet {
			c.Next()
			return
		}

		claims := util.GetUserFromContext(c)
		if claims == nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		sub, err := subscriptionRepo.FindByTenant(claims.TenantID)
		if err != nil {
			util.PaymentRequired(c, util.ErrSubscriptionRequired.Error())
			c.Abort()
			return
		}

		switch sub.Status {
		case model.SubscriptionCanceled, model.SubscriptionExpired:
			util.PaymentRequired(c, util.ErrSubscriptionRequired.Error())
			c.Abort()
			return
		}

		c.Next()
	}
}
