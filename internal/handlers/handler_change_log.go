package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/saiuttej/books-backend/internal/core/domain"
	portssvc "github.com/saiuttej/books-backend/internal/core/ports/services"
	"github.com/saiuttej/books-backend/internal/dto"
)

// changeLogHandler exposes the audit trail of organization entities.
type changeLogHandler struct {
	changeLogService portssvc.ChangeLogSvcFacade
}

var changeLogEntityNames = map[string]bool{
	domain.ChangeLogEntityOrganizations:        true,
	domain.ChangeLogEntityClients:              true,
	domain.ChangeLogEntityClientContactPersons: true,
	domain.ChangeLogEntityProjects:             true,
	domain.ChangeLogEntityExpenseTypes:         true,
	domain.ChangeLogEntityInvoices:             true,
	domain.ChangeLogEntityQuotes:               true,
}

func registerChangeLogRoutes(rg *gin.RouterGroup, changeLogService portssvc.ChangeLogSvcFacade) {
	h := &changeLogHandler{changeLogService: changeLogService}

	rg.GET("/change-logs/:entity_name/:entity_id", h.listChangeLogs)
}

// listChangeLogs godoc
// @Summary List change logs
// @Description Lists the change history of one entity, newest first.
// @Tags change-logs
// @Produce json
// @Param X-Organization-Id header string true "Organization ID"
// @Param entity_name path string true "Entity name (e.g. INVOICES, CLIENTS)"
// @Param entity_id path string true "Entity ID"
// @Success 200 {object} dto.ListChangeLogsResponse
// @Failure 400 {object} map[string]string "Unknown entity name"
// @Security BearerAuth
// @Router /change-logs/{entity_name}/{entity_id} [get]
func (h *changeLogHandler) listChangeLogs(c *gin.Context) {
	organizationID, _, ok := requestScope(c)
	if !ok {
		return
	}

	entityName := strings.ToUpper(c.Param("entity_name"))
	if !changeLogEntityNames[entityName] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown entity name"})
		return
	}

	logs, err := h.changeLogService.ListEntityChangeLogs(c.Request.Context(), organizationID, entityName, c.Param("entity_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListChangeLogsResponse(logs))
}
