package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vyaparbooks/billing_app/internal/apperrors"
	portssvc "github.com/vyaparbooks/billing_app/internal/core/ports/services"
	"github.com/vyaparbooks/billing_app/internal/dto"
	"github.com/vyaparbooks/billing_app/internal/middleware"
)

// paymentHandler handles HTTP requests related to vendor payments.
type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

// newPaymentHandler creates a new paymentHandler.
func newPaymentHandler(ps portssvc.PaymentSvcFacade) *paymentHandler {
	return &paymentHandler{
		paymentService: ps,
	}
}

// registerPaymentRoutes registers routes related to payments.
func registerPaymentRoutes(rg *gin.RouterGroup, paymentService portssvc.PaymentSvcFacade) {
	h := newPaymentHandler(paymentService)

	payments := rg.Group("/payments")
	{
		payments.POST("", h.createPayment)
		payments.GET("", h.listPayments)
		payments.GET("/:id", h.getPaymentByID)
		payments.POST("/allocation-preview", h.previewAllocation)
	}
}

// previewAllocation godoc
// @Summary Preview a payment allocation
// @Description Computes how an amount would spread oldest-first across outstanding bills. Nothing is persisted.
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   x-organization-id header string true "Organization ID"
// @Param   preview body dto.PreviewAllocationRequest true "Amount and vendor or inline bills"
// @Success 200 {object} dto.PreviewAllocationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to preview allocation"
// @Router /payments/allocation-preview [post]
func (h *paymentHandler) previewAllocation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID, err := middleware.GetOrganizationIDFromContext(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req dto.PreviewAllocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PreviewAllocation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	alloc, totals, err := h.paymentService.PreviewAllocation(c.Request.Context(), organizationID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to preview allocation in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to preview allocation"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPreviewAllocationResponse(alloc, totals))
}

// createPayment godoc
// @Summary Record a vendor payment
// @Description Records a payment. Without explicit allocations the amount spreads oldest-first; explicit splits are validated against each bill's open balance.
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   x-organization-id header string true "Organization ID"
// @Param   payment body dto.CreatePaymentRequest true "Payment details"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Vendor not found"
// @Failure 500 {object} map[string]string "Failed to create payment"
// @Router /payments [post]
func (h *paymentHandler) createPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID, err := middleware.GetOrganizationIDFromContext(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor := middleware.GetActorFromContext(c.Request.Context())

	payment, err := h.paymentService.CreatePayment(c.Request.Context(), organizationID, req, actor)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Vendor not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create payment in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment))
}

// getPaymentByID godoc
// @Summary Get a payment by ID
// @Description Retrieves a payment with its allocations
// @Tags payments
// @Produce  json
// @Param   x-organization-id header string true "Organization ID"
// @Param   id path string true "Payment ID"
// @Success 200 {object} dto.PaymentResponse
// @Failure 404 {object} map[string]string "Payment not found"
// @Failure 500 {object} map[string]string "Failed to retrieve payment"
// @Router /payments/{id} [get]
func (h *paymentHandler) getPaymentByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID, err := middleware.GetOrganizationIDFromContext(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payment, err := h.paymentService.GetPaymentByID(c.Request.Context(), organizationID, c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
		} else {
			logger.Error("Failed to get payment from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve payment"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

// listPayments godoc
// @Summary List payments
// @Description Retrieves payments of the organization, newest first
// @Tags payments
// @Produce  json
// @Param   x-organization-id header string true "Organization ID"
// @Param   limit query int false "Page size" default(20)
// @Param   offset query int false "Page offset" default(0)
// @Success 200 {array} dto.PaymentResponse
// @Failure 500 {object} map[string]string "Failed to list payments"
// @Router /payments [get]
func (h *paymentHandler) listPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID, err := middleware.GetOrganizationIDFromContext(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	payments, err := h.paymentService.ListPayments(c.Request.Context(), organizationID, limit, offset)
	if err != nil {
		logger.Error("Failed to list payments from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list payments"})
		return
	}

	responses := make([]dto.PaymentResponse, len(payments))
	for i := range payments {
		responses[i] = dto.ToPaymentResponse(&payments[i])
	}

	c.JSON(http.StatusOK, responses)
}
