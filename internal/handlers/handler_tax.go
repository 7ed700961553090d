package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vyaparbooks/billing_app/internal/apperrors"
	portssvc "github.com/vyaparbooks/billing_app/internal/core/ports/services"
	"github.com/vyaparbooks/billing_app/internal/dto"
	"github.com/vyaparbooks/billing_app/internal/middleware"
)

// taxHandler handles HTTP requests for GST previews backing the transaction forms.
type taxHandler struct {
	taxService portssvc.TaxSvcFacade
}

// newTaxHandler creates a new taxHandler.
func newTaxHandler(ts portssvc.TaxSvcFacade) *taxHandler {
	return &taxHandler{
		taxService: ts,
	}
}

// registerTaxRoutes registers the tax preview routes.
func registerTaxRoutes(rg *gin.RouterGroup, taxService portssvc.TaxSvcFacade) {
	h := newTaxHandler(taxService)

	tax := rg.Group("/tax")
	{
		tax.POST("/regime-preview", h.previewTaxRegime)
		tax.POST("/item-preview", h.previewItemTax)
	}
}

// previewTaxRegime godoc
// @Summary Preview the GST regime for a transaction
// @Description Resolves intra/inter/exempt treatment for a stored or inline customer. Without a customer the same-state default is returned.
// @Tags tax
// @Accept  json
// @Produce  json
// @Param   x-organization-id header string true "Organization ID"
// @Param   preview body dto.TaxRegimePreviewRequest true "Customer reference or inline record"
// @Success 200 {object} dto.TaxRegimeResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Customer not found"
// @Failure 500 {object} map[string]string "Failed to preview tax regime"
// @Router /tax/regime-preview [post]
func (h *taxHandler) previewTaxRegime(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID, err := middleware.GetOrganizationIDFromContext(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req dto.TaxRegimePreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PreviewTaxRegime", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	regime, err := h.taxService.PreviewTaxRegime(c.Request.Context(), organizationID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		} else {
			logger.Error("Failed to preview tax regime in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to preview tax regime"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTaxRegimeResponse(regime))
}

// previewItemTax godoc
// @Summary Preview the tax split on one line amount
// @Description Splits the GST on a line amount per the resolved regime (CGST+SGST, IGST, or none)
// @Tags tax
// @Accept  json
// @Produce  json
// @Param   x-organization-id header string true "Organization ID"
// @Param   preview body dto.ItemTaxPreviewRequest true "Amount, rate, and customer reference"
// @Success 200 {object} dto.ItemTaxResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Customer not found"
// @Failure 500 {object} map[string]string "Failed to preview item tax"
// @Router /tax/item-preview [post]
func (h *taxHandler) previewItemTax(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID, err := middleware.GetOrganizationIDFromContext(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req dto.ItemTaxPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PreviewItemTax", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	tax, regime, err := h.taxService.PreviewItemTax(c.Request.Context(), organizationID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		} else {
			logger.Error("Failed to preview item tax in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to preview item tax"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToItemTaxResponse(tax, regime))
}
