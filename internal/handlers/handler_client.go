package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/saiuttej/books-backend/internal/core/ports/services"
	"github.com/saiuttej/books-backend/internal/dto"
)

// clientHandler handles client management requests within an organization.
type clientHandler struct {
	clientService portssvc.ClientSvcFacade
}

func registerClientRoutes(rg *gin.RouterGroup, clientService portssvc.ClientSvcFacade) {
	h := &clientHandler{clientService: clientService}

	clients := rg.Group("/clients")
	{
		clients.POST("", h.createClient)
		clients.GET("", h.listClients)
		clients.GET("/:client_id", h.getClient)
		clients.PUT("/:client_id", h.updateClient)
		clients.DELETE("/:client_id", h.deleteClient)
	}
}

// createClient godoc
// @Summary Create client
// @Description Creates a client with its contact persons.
// @Tags clients
// @Accept json
// @Produce json
// @Param X-Organization-Id header string true "Organization ID"
// @Param client body dto.SaveClientRequest true "Client details"
// @Success 201 {object} dto.ClientResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Client name already exists"
// @Security BearerAuth
// @Router /clients [post]
func (h *clientHandler) createClient(c *gin.Context) {
	organizationID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	var req dto.SaveClientRequest
	if !bindJSON(c, &req) {
		return
	}

	client, err := h.clientService.CreateClient(c.Request.Context(), organizationID, userID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToClientResponse(client))
}

// listClients godoc
// @Summary List clients
// @Description Lists the clients of the active organization.
// @Tags clients
// @Produce json
// @Param X-Organization-Id header string true "Organization ID"
// @Success 200 {object} dto.ListClientsResponse
// @Security BearerAuth
// @Router /clients [get]
func (h *clientHandler) listClients(c *gin.Context) {
	organizationID, _, ok := requestScope(c)
	if !ok {
		return
	}

	clients, err := h.clientService.ListClients(c.Request.Context(), organizationID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListClientsResponse(clients))
}

// getClient godoc
// @Summary Get client
// @Description Retrieves a client with its contact persons.
// @Tags clients
// @Produce json
// @Param X-Organization-Id header string true "Organization ID"
// @Param client_id path string true "Client ID"
// @Success 200 {object} dto.ClientResponse
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /clients/{client_id} [get]
func (h *clientHandler) getClient(c *gin.Context) {
	organizationID, _, ok := requestScope(c)
	if !ok {
		return
	}

	client, err := h.clientService.GetClientByID(c.Request.Context(), organizationID, c.Param("client_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToClientResponse(client))
}

// updateClient godoc
// @Summary Update client
// @Description Applies changed fields and reconciles contact persons. A
// @Description request that changes nothing performs no writes.
// @Tags clients
// @Accept json
// @Produce json
// @Param X-Organization-Id header string true "Organization ID"
// @Param client_id path string true "Client ID"
// @Param client body dto.SaveClientRequest true "Client details"
// @Success 200 {object} dto.ClientResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Not found"
// @Failure 409 {object} map[string]string "Client name already exists"
// @Security BearerAuth
// @Router /clients/{client_id} [put]
func (h *clientHandler) updateClient(c *gin.Context) {
	organizationID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	var req dto.SaveClientRequest
	if !bindJSON(c, &req) {
		return
	}

	client, err := h.clientService.UpdateClient(c.Request.Context(), organizationID, userID, c.Param("client_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToClientResponse(client))
}

// deleteClient godoc
// @Summary Delete client
// @Description Removes a client and its contact persons.
// @Tags clients
// @Produce json
// @Param X-Organization-Id header string true "Organization ID"
// @Param client_id path string true "Client ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /clients/{client_id} [delete]
func (h *clientHandler) deleteClient(c *gin.Context) {
	organizationID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	if err := h.clientService.DeleteClient(c.Request.Context(), organizationID, userID, c.Param("client_id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
