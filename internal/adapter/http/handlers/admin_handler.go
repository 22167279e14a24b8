package handlers

import (
	"log"
	"net/http"

	request "github.com/aprendizandoads-pixel/BuscaTodos-Beta/internal/adapter/http/dto/request"
	response "github.com/aprendizandoads-pixel/BuscaTodos-Beta/internal/adapter/http/dto/response"
	"github.com/aprendizandoads-pixel/BuscaTodos-Beta/internal/domain/entities"
	"github.com/aprendizandoads-pixel/BuscaTodos-Beta/internal/infrastructure/eventlog"
	"github.com/aprendizandoads-pixel/BuscaTodos-Beta/internal/usecase"
	"github.com/aprendizandoads-pixel/BuscaTodos-Beta/internal/usecase/interfaces"
	"github.com/aprendizandoads-pixel/BuscaTodos-Beta/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidAdminPayload = pkg.NewDomainErrorSimple("INVALID_ADMIN_INPUT", "Invalid admin payload", http.StatusBadRequest)

// AdminHandler serves the operator surface: configuration, credential checks,
// webhook simulation, the event log, and the order/lead projections.

type AdminHandler struct {
	configs usecase.IConfigUseCase
	ledger  usecase.IOrderLedgerUseCase
	events  *eventlog.Ring
}

func NewAdminHandler(configs usecase.IConfigUseCase, ledger usecase.IOrderLedgerUseCase, events *eventlog.Ring) *AdminHandler {
	return &AdminHandler{configs: configs, ledger: ledger, events: events}
}

func (h *AdminHandler) GetPaymentConfig(c *gin.Context) {
	cfg, err := h.configs.PaymentConfig(c.Request.Context())
	if err != nil {
		appErr := mapAdminError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentConfig(cfg))
}

// PutPaymentConfig merges the request over the stored config. Empty strings
// and absent booleans keep the stored value; a masked secret echoed back by
// the admin screen therefore never overwrites a real credential.
func (h *AdminHandler) PutPaymentConfig(c *gin.Context) {
	var payload request.PaymentConfigRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAdminPayload.HTTPStatus, errInvalidAdminPayload.ToHTTPError())
		return
	}

	cfg, err := h.configs.PaymentConfig(c.Request.Context())
	if err != nil {
		appErr := mapAdminError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	applyPaymentConfig(&cfg, payload)

	saved, err := h.configs.SavePaymentConfig(c.Request.Context(), cfg)
	if err != nil {
		appErr := mapAdminError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[admin][handler] payment config saved gateway=%s", saved.ActiveGateway)

	c.JSON(http.StatusOK, response.FromPaymentConfig(saved))
}

func (h *AdminHandler) GetEfiConfig(c *gin.Context) {
	cfg, err := h.configs.EfiConfig(c.Request.Context())
	if err != nil {
		appErr := mapAdminError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEfiConfig(cfg))
}

func (h *AdminHandler) PutEfiConfig(c *gin.Context) {
	var payload request.EfiConfigRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAdminPayload.HTTPStatus, errInvalidAdminPayload.ToHTTPError())
		return
	}

	cfg, err := h.configs.EfiConfig(c.Request.Context())
	if err != nil {
		appErr := mapAdminError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	applyEfiConfig(&cfg, payload)

	saved, err := h.configs.SaveEfiConfig(c.Request.Context(), cfg)
	if err != nil {
		appErr := mapAdminError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[admin][handler] efi config saved sandbox=%t", saved.Sandbox)

	c.JSON(http.StatusOK, response.FromEfiConfig(saved))
}

func (h *AdminHandler) GetPlanCatalog(c *gin.Context) {
	catalog, err := h.configs.PlanCatalog(c.Request.Context())
	if err != nil {
		appErr := mapAdminError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, catalog)
}

func (h *AdminHandler) PutPlanCatalog(c *gin.Context) {
	var catalog entities.PlanCatalog
	if err := c.ShouldBindJSON(&catalog); err != nil {
		c.JSON(errInvalidAdminPayload.HTTPStatus, errInvalidAdminPayload.ToHTTPError())
		return
	}

	if err := h.configs.SavePlanCatalog(c.Request.Context(), catalog); err != nil {
		appErr := mapAdminError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[admin][handler] plan catalog saved")

	c.JSON(http.StatusOK, catalog)
}

func (h *AdminHandler) ValidateCredentials(c *gin.Context) {
	var payload request.CredentialsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAdminPayload.HTTPStatus, errInvalidAdminPayload.ToHTTPError())
		return
	}

	report := h.configs.ValidateCredentials(c.Request.Context(), payload.AccessToken)
	log.Printf("[admin][handler] credentials validated valid=%t source=%s", report.Valid, report.Source)
	c.JSON(http.StatusOK, report)
}

func (h *AdminHandler) SimulateWebhook(c *gin.Context) {
	var payload request.WebhookSimulateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAdminPayload.HTTPStatus, errInvalidAdminPayload.ToHTTPError())
		return
	}

	status := entities.OrderStatus(payload.Status)
	if status == "" {
		status = entities.OrderStatusApproved
	}

	if err := h.configs.SimulateWebhook(c.Request.Context(), payload.PaymentID, status); err != nil {
		c.JSON(errInvalidAdminPayload.HTTPStatus, errInvalidAdminPayload.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"simulated": true, "payment_id": payload.PaymentID, "status": string(status)})
}

func (h *AdminHandler) GetLogs(c *gin.Context) {
	c.JSON(http.StatusOK, h.events.List())
}

func (h *AdminHandler) ListOrders(c *gin.Context) {
	filter := interfaces.OrderFilter{
		Status: entities.OrderStatus(c.Query("status")),
		Plan:   entities.Plan(c.Query("plan")),
	}

	orders, err := h.ledger.List(c.Request.Context(), filter)
	if err != nil {
		appErr := mapAdminError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

func applyPaymentConfig(cfg *entities.PaymentConfig, payload request.PaymentConfigRequest) {
	if payload.ActiveGateway != "" {
		cfg.ActiveGateway = entities.GatewayName(payload.ActiveGateway)
	}
	if payload.MercadoPagoEnabled != nil {
		cfg.MercadoPagoEnabled = *payload.MercadoPagoEnabled
	}
	if payload.EfiEnabled != nil {
		cfg.EfiEnabled = *payload.EfiEnabled
	}
	if payload.Sandbox != nil {
		cfg.Sandbox = *payload.Sandbox
	}
	if payload.AccessToken != "" && !isMasked(payload.AccessToken) {
		cfg.AccessToken = payload.AccessToken
	}
	if payload.PublicKey != "" {
		cfg.PublicKey = payload.PublicKey
	}
	if payload.ApplicationID != "" {
		cfg.ApplicationID = payload.ApplicationID
	}
	if payload.UserID != "" {
		cfg.UserID = payload.UserID
	}
	if payload.WebhookURL != "" {
		cfg.WebhookURL = payload.WebhookURL
	}
	if payload.Mode != "" {
		cfg.Mode = entities.CheckoutMode(payload.Mode)
	}
	if payload.InstallmentsEnabled != nil {
		cfg.InstallmentsEnabled = *payload.InstallmentsEnabled
	}
	if payload.MaxInstallments > 0 {
		cfg.MaxInstallments = payload.MaxInstallments
	}
	if payload.StatementDescriptor != "" {
		cfg.StatementDescriptor = payload.StatementDescriptor
	}
	if payload.ExpirationMinutes > 0 {
		cfg.ExpirationMinutes = payload.ExpirationMinutes
	}
	if payload.AutoReturn != "" {
		cfg.AutoReturn = entities.AutoReturnPolicy(payload.AutoReturn)
	}
	if payload.BinaryMode != nil {
		cfg.BinaryMode = *payload.BinaryMode
	}
}

func applyEfiConfig(cfg *entities.EfiConfig, payload request.EfiConfigRequest) {
	if payload.ClientID != "" {
		cfg.ClientID = payload.ClientID
	}
	if payload.ClientSecret != "" && !isMasked(payload.ClientSecret) {
		cfg.ClientSecret = payload.ClientSecret
	}
	if payload.CertificatePEM != "" {
		cfg.CertificatePEM = payload.CertificatePEM
	}
	if payload.PixKey != "" {
		cfg.PixKey = payload.PixKey
	}
	if payload.Sandbox != nil {
		cfg.Sandbox = *payload.Sandbox
	}
}

// isMasked detects a secret echoed back from a masked read.
func isMasked(s string) bool {
	for _, r := range s {
		if r == '*' {
			return true
		}
	}
	return false
}

func mapAdminError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}
