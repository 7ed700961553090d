package handlers

import (
	"context"
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

// invoiceHandler handles HTTP requests related to invoices.
type invoiceHandler struct {
	invoiceService portssvc.InvoiceSvcFacade
}

// newInvoiceHandler creates a new invoiceHandler.
func newInvoiceHandler(is portssvc.InvoiceSvcFacade) *invoiceHandler {
	return &invoiceHandler{
		invoiceService: is,
	}
}

// registerInvoiceRoutes registers routes related to invoices.
func registerInvoiceRoutes(rg *gin.RouterGroup, invoiceService portssvc.InvoiceSvcFacade) {
	h := newInvoiceHandler(invoiceService)

	invoices := rg.Group("/invoices")
	{
		invoices.POST("", h.createInvoice)
		invoices.GET("", h.listInvoices)
		invoices.GET("/:id", h.getInvoiceByID)
		invoices.POST("/:id/finalize", h.finalizeInvoice)
		invoices.POST("/:id/void", h.voidInvoice)
	}
}

// createInvoice godoc
// @Summary Create a new invoice
// @Description Creates a draft invoice. The customer snapshot, GST regime, and all tax figures are computed server-side.
// @Tags invoices
// @Accept  json
// @Produce  json
// @Param   x-organization-id header string true "Organization ID"
// @Param   invoice body dto.CreateInvoiceRequest true "Invoice details"
// @Success 201 {object} dto.InvoiceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Customer not found"
// @Failure 500 {object} map[string]string "Failed to create invoice"
// @Router /invoices [post]
func (h *invoiceHandler) createInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID, err := middleware.GetOrganizationIDFromContext(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateInvoice", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor := middleware.GetActorFromContext(c.Request.Context())

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), organizationID, req, actor)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create invoice in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create invoice"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(invoice))
}

// getInvoiceByID godoc
// @Summary Get an invoice by ID
// @Description Retrieves an invoice with its lines and captured customer snapshot
// @Tags invoices
// @Produce  json
// @Param   x-organization-id header string true "Organization ID"
// @Param   id path string true "Invoice ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 500 {object} map[string]string "Failed to retrieve invoice"
// @Router /invoices/{id} [get]
func (h *invoiceHandler) getInvoiceByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID, err := middleware.GetOrganizationIDFromContext(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	invoice, err := h.invoiceService.GetInvoiceByID(c.Request.Context(), organizationID, c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		} else {
			logger.Error("Failed to get invoice from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve invoice"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}

// listInvoices godoc
// @Summary List invoices
// @Description Retrieves a page of invoices ordered by invoice date descending, with a cursor for the next page
// @Tags invoices
// @Produce  json
// @Param   x-organization-id header string true "Organization ID"
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Cursor from the previous page"
// @Success 200 {object} dto.ListInvoicesResponse
// @Failure 400 {object} map[string]string "Invalid pagination token"
// @Failure 500 {object} map[string]string "Failed to list invoices"
// @Router /invoices [get]
func (h *invoiceHandler) listInvoices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID, err := middleware.GetOrganizationIDFromContext(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	var nextToken *string
	if token := c.Query("nextToken"); token != "" {
		nextToken = &token
	}

	invoices, token, err := h.invoiceService.ListInvoices(c.Request.Context(), organizationID, limit, nextToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to list invoices from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list invoices"})
		}
		return
	}

	responses := make([]dto.InvoiceResponse, len(invoices))
	for i := range invoices {
		responses[i] = dto.ToInvoiceResponse(&invoices[i])
	}

	c.JSON(http.StatusOK, dto.ListInvoicesResponse{Invoices: responses, NextToken: token})
}

// finalizeInvoice godoc
// @Summary Finalize a draft invoice
// @Description Transitions a DRAFT invoice to FINALIZED
// @Tags invoices
// @Produce  json
// @Param   x-organization-id header string true "Organization ID"
// @Param   id path string true "Invoice ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid status transition"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 500 {object} map[string]string "Failed to finalize invoice"
// @Router /invoices/{id}/finalize [post]
func (h *invoiceHandler) finalizeInvoice(c *gin.Context) {
	h.transition(c, h.invoiceService.FinalizeInvoice)
}

// voidInvoice godoc
// @Summary Void an invoice
// @Description Transitions a DRAFT or FINALIZED invoice to VOID
// @Tags invoices
// @Produce  json
// @Param   x-organization-id header string true "Organization ID"
// @Param   id path string true "Invoice ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid status transition"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 500 {object} map[string]string "Failed to void invoice"
// @Router /invoices/{id}/void [post]
func (h *invoiceHandler) voidInvoice(c *gin.Context) {
	h.transition(c, h.invoiceService.VoidInvoice)
}

func (h *invoiceHandler) transition(c *gin.Context, op func(ctx context.Context, organizationID, invoiceID, updaterUserID string) error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID, err := middleware.GetOrganizationIDFromContext(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	actor := middleware.GetActorFromContext(c.Request.Context())

	if err := op(c.Request.Context(), organizationID, c.Param("id"), actor); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update invoice status in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update invoice status"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
