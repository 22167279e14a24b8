package routes

import (
	"log"
	"os"
	"strconv"

	_ "github.com/aprendizandoads-pixel/BuscaTodos-Beta/docs" // This will be auto-generated
	"github.com/aprendizandoads-pixel/BuscaTodos-Beta/internal/adapter/http/handlers"
	repository2 "github.com/aprendizandoads-pixel/BuscaTodos-Beta/internal/adapter/persistence/repository"
	"github.com/aprendizandoads-pixel/BuscaTodos-Beta/internal/infrastructure/database"
	"github.com/aprendizandoads-pixel/BuscaTodos-Beta/internal/infrastructure/eventlog"
	"github.com/aprendizandoads-pixel/BuscaTodos-Beta/internal/infrastructure/payments"
	"github.com/aprendizandoads-pixel/BuscaTodos-Beta/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()
	events := eventlog.NewRing(0)

	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	leadRepo := repository2.NewLeadDynamoRepository(ddb)
	configRepo := repository2.NewConfigDynamoRepository(ddb)

	configUseCase := usecase.NewConfigUseCase(configRepo, events)
	ledgerUseCase := usecase.NewOrderLedgerUseCase(orderRepo)
	leadUseCase := usecase.NewLeadUseCase(leadRepo)

	gatewayFactory := payments.NewGatewayFactory(os.Getenv("CHECKOUT_ORIGIN"), events)
	sessions := usecase.NewCheckoutSessionStore()
	watcher := usecase.NewSettlementWatcher(ledgerUseCase, 0)

	checkoutUseCase := usecase.NewCheckoutUseCase(configUseCase, ledgerUseCase, gatewayFactory, sessions, watcher)

	checkoutHandler := handlers.NewCheckoutHandler(checkoutUseCase, ledgerUseCase, sessions)
	leadHandler := handlers.NewLeadHandler(leadUseCase)
	adminHandler := handlers.NewAdminHandler(configUseCase, ledgerUseCase, events)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCheckoutRoutes(v1, checkoutHandler, leadHandler)
	addAdminRoutes(v1, adminHandler, leadHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
