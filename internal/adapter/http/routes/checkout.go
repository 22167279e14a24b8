package routes

import (
	"github.com/aprendizandoads-pixel/BuscaTodos-Beta/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCheckout = "/checkout"
	PathLeads    = "/leads"
)

func addCheckoutRoutes(rg *gin.RouterGroup, checkoutHandler *handlers.CheckoutHandler, leadHandler *handlers.LeadHandler) {
	checkout := rg.Group(PathCheckout)
	{
		checkout.POST("", checkoutHandler.SubmitCheckout)
		checkout.GET("/:session_id", checkoutHandler.GetSession)
		checkout.DELETE("/:session_id", checkoutHandler.CloseSession)
	}

	rg.POST(PathLeads, leadHandler.CreateLead)
}
