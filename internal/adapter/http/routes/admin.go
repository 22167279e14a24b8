package routes

import (
	"github.com/aprendizandoads-pixel/BuscaTodos-Beta/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathAdmin = "/admin"

func addAdminRoutes(rg *gin.RouterGroup, adminHandler *handlers.AdminHandler, leadHandler *handlers.LeadHandler) {
	admin := rg.Group(PathAdmin)
	{
		admin.GET("/config/payment", adminHandler.GetPaymentConfig)
		admin.PUT("/config/payment", adminHandler.PutPaymentConfig)
		admin.GET("/config/efi", adminHandler.GetEfiConfig)
		admin.PUT("/config/efi", adminHandler.PutEfiConfig)
		admin.GET("/config/plans", adminHandler.GetPlanCatalog)
		admin.PUT("/config/plans", adminHandler.PutPlanCatalog)

		admin.POST("/credentials/validate", adminHandler.ValidateCredentials)
		admin.POST("/webhook/simulate", adminHandler.SimulateWebhook)

		admin.GET("/logs", adminHandler.GetLogs)
		admin.GET("/orders", adminHandler.ListOrders)
		admin.GET("/leads", leadHandler.ListLeads)
	}
}
