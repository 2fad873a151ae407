package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/saiuttej/books-backend/internal/core/ports/services"
	"github.com/saiuttej/books-backend/internal/dto"
)

// expenseTypeHandler handles expense type management requests.
type expenseTypeHandler struct {
	expenseTypeService portssvc.ExpenseTypeSvcFacade
}

func registerExpenseTypeRoutes(rg *gin.RouterGroup, expenseTypeService portssvc.ExpenseTypeSvcFacade) {
	h := &expenseTypeHandler{expenseTypeService: expenseTypeService}

	types := rg.Group("/expense-types")
	{
		types.POST("", h.createExpenseType)
		types.GET("", h.listExpenseTypes)
		types.GET("/:expense_type_id", h.getExpenseType)
		types.PUT("/:expense_type_id", h.updateExpenseType)
		types.DELETE("/:expense_type_id", h.deleteExpenseType)
	}
}

// createExpenseType godoc
// @Summary Create expense type
// @Tags expense-types
// @Accept json
// @Produce json
// @Param X-Organization-Id header string true "Organization ID"
// @Param expenseType body dto.SaveExpenseTypeRequest true "Expense type details"
// @Success 201 {object} dto.ExpenseTypeResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Name already exists"
// @Security BearerAuth
// @Router /expense-types [post]
func (h *expenseTypeHandler) createExpenseType(c *gin.Context) {
	organizationID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	var req dto.SaveExpenseTypeRequest
	if !bindJSON(c, &req) {
		return
	}

	expenseType, err := h.expenseTypeService.CreateExpenseType(c.Request.Context(), organizationID, userID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToExpenseTypeResponse(expenseType))
}

// listExpenseTypes godoc
// @Summary List expense types
// @Tags expense-types
// @Produce json
// @Param X-Organization-Id header string true "Organization ID"
// @Success 200 {object} dto.ListExpenseTypesResponse
// @Security BearerAuth
// @Router /expense-types [get]
func (h *expenseTypeHandler) listExpenseTypes(c *gin.Context) {
	organizationID, _, ok := requestScope(c)
	if !ok {
		return
	}

	types, err := h.expenseTypeService.ListExpenseTypes(c.Request.Context(), organizationID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListExpenseTypesResponse(types))
}

// getExpenseType godoc
// @Summary Get expense type
// @Tags expense-types
// @Produce json
// @Param X-Organization-Id header string true "Organization ID"
// @Param expense_type_id path string true "Expense type ID"
// @Success 200 {object} dto.ExpenseTypeResponse
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /expense-types/{expense_type_id} [get]
func (h *expenseTypeHandler) getExpenseType(c *gin.Context) {
	organizationID, _, ok := requestScope(c)
	if !ok {
		return
	}

	expenseType, err := h.expenseTypeService.GetExpenseTypeByID(c.Request.Context(), organizationID, c.Param("expense_type_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToExpenseTypeResponse(expenseType))
}

// updateExpenseType godoc
// @Summary Update expense type
// @Tags expense-types
// @Accept json
// @Produce json
// @Param X-Organization-Id header string true "Organization ID"
// @Param expense_type_id path string true "Expense type ID"
// @Param expenseType body dto.SaveExpenseTypeRequest true "Expense type details"
// @Success 200 {object} dto.ExpenseTypeResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Not found"
// @Failure 409 {object} map[string]string "Name already exists"
// @Security BearerAuth
// @Router /expense-types/{expense_type_id} [put]
func (h *expenseTypeHandler) updateExpenseType(c *gin.Context) {
	organizationID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	var req dto.SaveExpenseTypeRequest
	if !bindJSON(c, &req) {
		return
	}

	expenseType, err := h.expenseTypeService.UpdateExpenseType(c.Request.Context(), organizationID, userID, c.Param("expense_type_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToExpenseTypeResponse(expenseType))
}

// deleteExpenseType godoc
// @Summary Delete expense type
// @Tags expense-types
// @Produce json
// @Param X-Organization-Id header string true "Organization ID"
// @Param expense_type_id path string true "Expense type ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /expense-types/{expense_type_id} [delete]
func (h *expenseTypeHandler) deleteExpenseType(c *gin.Context) {
	organizationID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	if err := h.expenseTypeService.DeleteExpenseType(c.Request.Context(), organizationID, userID, c.Param("expense_type_id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
