package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/saiuttej/books-backend/internal/core/ports/services"
	"github.com/saiuttej/books-backend/internal/dto"
)

// projectHandler handles project management requests within an organization.
type projectHandler struct {
	projectService portssvc.ProjectSvcFacade
}

func registerProjectRoutes(rg *gin.RouterGroup, projectService portssvc.ProjectSvcFacade) {
	h := &projectHandler{projectService: projectService}

	projects := rg.Group("/projects")
	{
		projects.POST("", h.createProject)
		projects.GET("", h.listProjects)
		projects.GET("/:project_id", h.getProject)
		projects.PUT("/:project_id", h.updateProject)
		projects.DELETE("/:project_id", h.deleteProject)
	}
}

// createProject godoc
// @Summary Create project
// @Description Creates a project, optionally linked to a client.
// @Tags projects
// @Accept json
// @Produce json
// @Param X-Organization-Id header string true "Organization ID"
// @Param project body dto.SaveProjectRequest true "Project details"
// @Success 201 {object} dto.ProjectResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Project code already exists"
// @Security BearerAuth
// @Router /projects [post]
func (h *projectHandler) createProject(c *gin.Context) {
	organizationID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	var req dto.SaveProjectRequest
	if !bindJSON(c, &req) {
		return
	}

	project, err := h.projectService.CreateProject(c.Request.Context(), organizationID, userID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToProjectResponse(project))
}

// listProjects godoc
// @Summary List projects
// @Description Lists the projects of the active organization.
// @Tags projects
// @Produce json
// @Param X-Organization-Id header string true "Organization ID"
// @Success 200 {object} dto.ListProjectsResponse
// @Security BearerAuth
// @Router /projects [get]
func (h *projectHandler) listProjects(c *gin.Context) {
	organizationID, _, ok := requestScope(c)
	if !ok {
		return
	}

	projects, err := h.projectService.ListProjects(c.Request.Context(), organizationID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListProjectsResponse(projects))
}

// getProject godoc
// @Summary Get project
// @Tags projects
// @Produce json
// @Param X-Organization-Id header string true "Organization ID"
// @Param project_id path string true "Project ID"
// @Success 200 {object} dto.ProjectResponse
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /projects/{project_id} [get]
func (h *projectHandler) getProject(c *gin.Context) {
	organizationID, _, ok := requestScope(c)
	if !ok {
		return
	}

	project, err := h.projectService.GetProjectByID(c.Request.Context(), organizationID, c.Param("project_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectResponse(project))
}

// updateProject godoc
// @Summary Update project
// @Description Applies changed fields to a project. A request that changes
// @Description nothing performs no writes.
// @Tags projects
// @Accept json
// @Produce json
// @Param X-Organization-Id header string true "Organization ID"
// @Param project_id path string true "Project ID"
// @Param project body dto.SaveProjectRequest true "Project details"
// @Success 200 {object} dto.ProjectResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Not found"
// @Failure 409 {object} map[string]string "Project code already exists"
// @Security BearerAuth
// @Router /projects/{project_id} [put]
func (h *projectHandler) updateProject(c *gin.Context) {
	organizationID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	var req dto.SaveProjectRequest
	if !bindJSON(c, &req) {
		return
	}

	project, err := h.projectService.UpdateProject(c.Request.Context(), organizationID, userID, c.Param("project_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectResponse(project))
}

// deleteProject godoc
// @Summary Delete project
// @Tags projects
// @Produce json
// @Param X-Organization-Id header string true "Organization ID"
// @Param project_id path string true "Project ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /projects/{project_id} [delete]
func (h *projectHandler) deleteProject(c *gin.Context) {
	organizationID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	if err := h.projectService.DeleteProject(c.Request.Context(), organizationID, userID, c.Param("project_id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
