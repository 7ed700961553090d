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

// customerHandler handles HTTP requests related to customers and vendors.
type customerHandler struct {
	customerService portssvc.CustomerSvcFacade
}

// newCustomerHandler creates a new customerHandler.
func newCustomerHandler(cs portssvc.CustomerSvcFacade) *customerHandler {
	return &customerHandler{
		customerService: cs,
	}
}

// registerCustomerRoutes registers routes related to customers.
func registerCustomerRoutes(rg *gin.RouterGroup, customerService portssvc.CustomerSvcFacade) {
	h := newCustomerHandler(customerService)

	customers := rg.Group("/customers")
	{
		customers.POST("", h.createCustomer)
		customers.GET("", h.listCustomers)
		customers.GET("/:id", h.getCustomerByID)
		customers.PATCH("/:id", h.updateCustomer)
		customers.DELETE("/:id", h.deactivateCustomer)
		customers.GET("/:id/snapshot", h.snapshotCustomer)
	}
}

// createCustomer godoc
// @Summary Create a new customer
// @Description Adds a customer or vendor to the organization. Addresses may be strings or structured objects.
// @Tags customers
// @Accept  json
// @Produce  json
// @Param   x-organization-id header string true "Organization ID"
// @Param   customer body dto.CreateCustomerRequest true "Customer details"
// @Success 201 {object} dto.CustomerResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create customer"
// @Router /customers [post]
func (h *customerHandler) createCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID, err := middleware.GetOrganizationIDFromContext(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCustomer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor := middleware.GetActorFromContext(c.Request.Context())

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), organizationID, req, actor)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Organization not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create customer in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create customer"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToCustomerResponse(customer))
}

// getCustomerByID godoc
// @Summary Get a customer by ID
// @Description Retrieves a customer scoped to the organization
// @Tags customers
// @Produce  json
// @Param   x-organization-id header string true "Organization ID"
// @Param   id path string true "Customer ID"
// @Success 200 {object} dto.CustomerResponse
// @Failure 404 {object} map[string]string "Customer not found"
// @Failure 500 {object} map[string]string "Failed to retrieve customer"
// @Router /customers/{id} [get]
func (h *customerHandler) getCustomerByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID, err := middleware.GetOrganizationIDFromContext(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customer, err := h.customerService.GetCustomerByID(c.Request.Context(), organizationID, c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		} else {
			logger.Error("Failed to get customer from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve customer"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

// listCustomers godoc
// @Summary List customers
// @Description Retrieves active customers of the organization
// @Tags customers
// @Produce  json
// @Param   x-organization-id header string true "Organization ID"
// @Param   limit query int false "Page size" default(20)
// @Param   offset query int false "Page offset" default(0)
// @Success 200 {array} dto.CustomerResponse
// @Failure 500 {object} map[string]string "Failed to list customers"
// @Router /customers [get]
func (h *customerHandler) listCustomers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID, err := middleware.GetOrganizationIDFromContext(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	customers, err := h.customerService.ListCustomers(c.Request.Context(), organizationID, limit, offset)
	if err != nil {
		logger.Error("Failed to list customers from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list customers"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListCustomerResponse(customers))
}

// updateCustomer godoc
// @Summary Update a customer
// @Description Applies partial updates to a customer. Omitted fields stay unchanged.
// @Tags customers
// @Accept  json
// @Produce  json
// @Param   x-organization-id header string true "Organization ID"
// @Param   id path string true "Customer ID"
// @Param   customer body dto.UpdateCustomerRequest true "Fields to update"
// @Success 200 {object} dto.CustomerResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Customer not found"
// @Failure 500 {object} map[string]string "Failed to update customer"
// @Router /customers/{id} [patch]
func (h *customerHandler) updateCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID, err := middleware.GetOrganizationIDFromContext(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req dto.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateCustomer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor := middleware.GetActorFromContext(c.Request.Context())

	customer, err := h.customerService.UpdateCustomer(c.Request.Context(), organizationID, c.Param("id"), req, actor)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update customer in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update customer"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

// deactivateCustomer godoc
// @Summary Deactivate a customer
// @Description Soft-deletes a customer. Snapshots on existing transactions are unaffected.
// @Tags customers
// @Produce  json
// @Param   x-organization-id header string true "Organization ID"
// @Param   id path string true "Customer ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Customer not found"
// @Failure 500 {object} map[string]string "Failed to deactivate customer"
// @Router /customers/{id} [delete]
func (h *customerHandler) deactivateCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID, err := middleware.GetOrganizationIDFromContext(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	actor := middleware.GetActorFromContext(c.Request.Context())

	if err := h.customerService.DeactivateCustomer(c.Request.Context(), organizationID, c.Param("id"), actor); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		} else {
			logger.Error("Failed to deactivate customer in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deactivate customer"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// snapshotCustomer godoc
// @Summary Capture a customer snapshot
// @Description Returns the immutable point-in-time copy that a transaction created now would carry
// @Tags customers
// @Produce  json
// @Param   x-organization-id header string true "Organization ID"
// @Param   id path string true "Customer ID"
// @Success 200 {object} dto.CustomerSnapshotResponse
// @Failure 404 {object} map[string]string "Customer not found"
// @Failure 500 {object} map[string]string "Failed to snapshot customer"
// @Router /customers/{id}/snapshot [get]
func (h *customerHandler) snapshotCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID, err := middleware.GetOrganizationIDFromContext(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snapshot, err := h.customerService.SnapshotCustomer(c.Request.Context(), organizationID, c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		} else {
			logger.Error("Failed to snapshot customer in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to snapshot customer"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.CustomerSnapshotResponse{Snapshot: *snapshot})
}
