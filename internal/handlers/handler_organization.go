package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/saiuttej/books-backend/internal/core/ports/services"
	"github.com/saiuttej/books-backend/internal/dto"
	"github.com/saiuttej/books-backend/internal/middleware"
)

// organizationHandler handles organization management requests.
type organizationHandler struct {
	orgService portssvc.OrganizationSvcFacade
}

func registerOrganizationRoutes(rg *gin.RouterGroup, orgService portssvc.OrganizationSvcFacade) {
	h := &organizationHandler{orgService: orgService}

	orgs := rg.Group("/organizations")
	{
		orgs.POST("", h.createOrganization)
		orgs.GET("", h.listOrganizations)
		orgs.GET("/:organization_id", h.getOrganization)
		orgs.PUT("/:organization_id", h.updateOrganization)
	}
}

// createOrganization godoc
// @Summary Create organization
// @Description Creates an organization and makes the caller its owner.
// @Tags organizations
// @Accept json
// @Produce json
// @Param organization body dto.SaveOrganizationRequest true "Organization details"
// @Success 201 {object} dto.OrganizationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Name or subdomain already taken"
// @Security BearerAuth
// @Router /organizations [post]
func (h *organizationHandler) createOrganization(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req dto.SaveOrganizationRequest
	if !bindJSON(c, &req) {
		return
	}

	org, err := h.orgService.CreateOrganization(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToOrganizationResponse(org))
}

// listOrganizations godoc
// @Summary List organizations
// @Description Lists the organizations the caller belongs to.
// @Tags organizations
// @Produce json
// @Success 200 {object} dto.ListOrganizationsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /organizations [get]
func (h *organizationHandler) listOrganizations(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	orgs, err := h.orgService.ListUserOrganizations(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListOrganizationsResponse(orgs))
}

// getOrganization godoc
// @Summary Get organization
// @Description Retrieves an organization the caller is a member of.
// @Tags organizations
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Success 200 {object} dto.OrganizationResponse
// @Failure 403 {object} map[string]string "Not a member"
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /organizations/{organization_id} [get]
func (h *organizationHandler) getOrganization(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	org, err := h.orgService.GetOrganizationByID(c.Request.Context(), c.Param("organization_id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOrganizationResponse(org))
}

// updateOrganization godoc
// @Summary Update organization
// @Description Updates an organization. Only owners and admins may update.
// @Tags organizations
// @Accept json
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param organization body dto.SaveOrganizationRequest true "Organization details"
// @Success 200 {object} dto.OrganizationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Insufficient role"
// @Failure 409 {object} map[string]string "Name or subdomain already taken"
// @Security BearerAuth
// @Router /organizations/{organization_id} [put]
func (h *organizationHandler) updateOrganization(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req dto.SaveOrganizationRequest
	if !bindJSON(c, &req) {
		return
	}

	org, err := h.orgService.UpdateOrganization(c.Request.Context(), c.Param("organization_id"), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOrganizationResponse(org))
}
