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

// organizationHandler handles HTTP requests related to organizations.
type organizationHandler struct {
	organizationService portssvc.OrganizationSvcFacade
}

// newOrganizationHandler creates a new organizationHandler.
func newOrganizationHandler(os portssvc.OrganizationSvcFacade) *organizationHandler {
	return &organizationHandler{
		organizationService: os,
	}
}

// registerOrganizationRoutes registers routes related to organizations.
func registerOrganizationRoutes(rg *gin.RouterGroup, organizationService portssvc.OrganizationSvcFacade) {
	h := newOrganizationHandler(organizationService)

	organizations := rg.Group("/organizations")
	{
		organizations.POST("", h.createOrganization)
		organizations.GET("", h.listOrganizations)
		organizations.GET("/:id", h.getOrganizationByID)
	}
}

// createOrganization godoc
// @Summary Create a new organization
// @Description Registers a new tenant organization (the seller)
// @Tags organizations
// @Accept  json
// @Produce  json
// @Param   organization body dto.CreateOrganizationRequest true "Organization details"
// @Success 201 {object} dto.OrganizationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create organization"
// @Router /organizations [post]
func (h *organizationHandler) createOrganization(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateOrganization", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor := middleware.GetActorFromContext(c.Request.Context())

	org, err := h.organizationService.CreateOrganization(c.Request.Context(), req, actor)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create organization in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create organization"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToOrganizationResponse(org))
}

// getOrganizationByID godoc
// @Summary Get an organization by ID
// @Description Retrieves a specific organization
// @Tags organizations
// @Produce  json
// @Param   id path string true "Organization ID"
// @Success 200 {object} dto.OrganizationResponse
// @Failure 404 {object} map[string]string "Organization not found"
// @Failure 500 {object} map[string]string "Failed to retrieve organization"
// @Router /organizations/{id} [get]
func (h *organizationHandler) getOrganizationByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID := c.Param("id")

	org, err := h.organizationService.GetOrganizationByID(c.Request.Context(), organizationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Organization not found"})
		} else {
			logger.Error("Failed to get organization from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve organization"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToOrganizationResponse(org))
}

// listOrganizations godoc
// @Summary List organizations
// @Description Retrieves all active organizations
// @Tags organizations
// @Produce  json
// @Success 200 {array} dto.OrganizationResponse
// @Failure 500 {object} map[string]string "Failed to list organizations"
// @Router /organizations [get]
func (h *organizationHandler) listOrganizations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	orgs, err := h.organizationService.ListOrganizations(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list organizations from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list organizations"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListOrganizationResponse(orgs))
}
