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

// billHandler handles HTTP requests related to vendor bills.
type billHandler struct {
	billService portssvc.BillSvcFacade
}

// newBillHandler creates a new billHandler.
func newBillHandler(bs portssvc.BillSvcFacade) *billHandler {
	return &billHandler{
		billService: bs,
	}
}

// registerBillRoutes registers routes related to bills.
func registerBillRoutes(rg *gin.RouterGroup, billService portssvc.BillSvcFacade) {
	h := newBillHandler(billService)

	bills := rg.Group("/bills")
	{
		bills.POST("", h.createBill)
		bills.GET("", h.listBills)
		bills.GET("/outstanding", h.listOutstandingBills)
		bills.GET("/:id", h.getBillByID)
	}
}

// createBill godoc
// @Summary Record a new vendor bill
// @Description Records a payable bill. Date may be omitted for imported bills; such bills allocate as most recent.
// @Tags bills
// @Accept  json
// @Produce  json
// @Param   x-organization-id header string true "Organization ID"
// @Param   bill body dto.CreateBillRequest true "Bill details"
// @Success 201 {object} dto.BillResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Vendor not found"
// @Failure 500 {object} map[string]string "Failed to create bill"
// @Router /bills [post]
func (h *billHandler) createBill(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID, err := middleware.GetOrganizationIDFromContext(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req dto.CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBill", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor := middleware.GetActorFromContext(c.Request.Context())

	bill, err := h.billService.CreateBill(c.Request.Context(), organizationID, req, actor)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Vendor not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create bill in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create bill"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToBillResponse(bill))
}

// getBillByID godoc
// @Summary Get a bill by ID
// @Description Retrieves a bill with its open balance
// @Tags bills
// @Produce  json
// @Param   x-organization-id header string true "Organization ID"
// @Param   id path string true "Bill ID"
// @Success 200 {object} dto.BillResponse
// @Failure 404 {object} map[string]string "Bill not found"
// @Failure 500 {object} map[string]string "Failed to retrieve bill"
// @Router /bills/{id} [get]
func (h *billHandler) getBillByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID, err := middleware.GetOrganizationIDFromContext(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bill, err := h.billService.GetBillByID(c.Request.Context(), organizationID, c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bill not found"})
		} else {
			logger.Error("Failed to get bill from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve bill"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToBillResponse(bill))
}

// listBills godoc
// @Summary List bills
// @Description Retrieves bills of the organization, optionally filtered by vendor
// @Tags bills
// @Produce  json
// @Param   x-organization-id header string true "Organization ID"
// @Param   vendorID query string false "Vendor ID filter"
// @Param   limit query int false "Page size" default(20)
// @Param   offset query int false "Page offset" default(0)
// @Success 200 {array} dto.BillResponse
// @Failure 500 {object} map[string]string "Failed to list bills"
// @Router /bills [get]
func (h *billHandler) listBills(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID, err := middleware.GetOrganizationIDFromContext(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	bills, err := h.billService.ListBills(c.Request.Context(), organizationID, c.Query("vendorID"), limit, offset)
	if err != nil {
		logger.Error("Failed to list bills from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list bills"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListBillResponse(bills))
}

// listOutstandingBills godoc
// @Summary List a vendor's outstanding bills
// @Description Retrieves bills with an open balance, oldest first, the order payments allocate in
// @Tags bills
// @Produce  json
// @Param   x-organization-id header string true "Organization ID"
// @Param   vendorID query string true "Vendor ID"
// @Success 200 {array} dto.BillResponse
// @Failure 400 {object} map[string]string "Missing vendorID"
// @Failure 500 {object} map[string]string "Failed to list outstanding bills"
// @Router /bills/outstanding [get]
func (h *billHandler) listOutstandingBills(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID, err := middleware.GetOrganizationIDFromContext(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vendorID := c.Query("vendorID")
	if vendorID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "vendorID query parameter is required"})
		return
	}

	bills, err := h.billService.ListOutstandingBills(c.Request.Context(), organizationID, vendorID)
	if err != nil {
		logger.Error("Failed to list outstanding bills from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list outstanding bills"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListBillResponse(bills))
}
