package controllers

import (
	stderrors "errors"
	"net/http"

	apperrors "rannafy-server/errors"
	"rannafy-server/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PaymentController struct {
	Payments *services.PaymentService
	Logger   *zap.Logger
}

func NewPaymentController(payments *services.PaymentService, logger *zap.Logger) *PaymentController {
	return &PaymentController{Payments: payments, Logger: logger}
}

// CreateCheckoutSession returns the processor-hosted redirect URL for an
// order. No local record is written at this stage.
func (pc *PaymentController) CreateCheckoutSession(c *gin.Context) {
	var req services.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	url, err := pc.Payments.CreateCheckoutSession(&req)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

// PaymentSuccess confirms a checkout session after the client is redirected
// back. The session id is required; everything else comes from the processor.
func (pc *PaymentController) PaymentSuccess(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session_id is required"})
		return
	}

	result, err := pc.Payments.ConfirmPayment(c.Request.Context(), sessionID)
	if err != nil {
		if stderrors.Is(err, apperrors.ErrMissingParameter) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "session_id is required"})
			return
		}
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (pc *PaymentController) GetPayments(c *gin.Context) {
	payments, err := pc.Payments.ListPayments(c.Request.Context())
	if err != nil {
		pc.Logger.Error("Failed to list payments", zap.Error(err))
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}
