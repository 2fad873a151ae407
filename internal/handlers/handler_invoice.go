package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/saiuttej/books-backend/internal/core/ports/services"
	"github.com/saiuttej/books-backend/internal/dto"
)

// invoiceHandler handles invoice management requests within an organization.
type invoiceHandler struct {
	invoiceService portssvc.InvoiceSvcFacade
}

func registerInvoiceRoutes(rg *gin.RouterGroup, invoiceService portssvc.InvoiceSvcFacade) {
	h := &invoiceHandler{invoiceService: invoiceService}

	invoices := rg.Group("/invoices")
	{
		invoices.POST("", h.createInvoice)
		invoices.GET("", h.listInvoices)
		invoices.GET("/:invoice_id", h.getInvoice)
		invoices.PUT("/:invoice_id", h.updateInvoice)
		invoices.DELETE("/:invoice_id", h.deleteInvoice)
	}
}

// createInvoice godoc
// @Summary Create invoice
// @Description Validates the invoice arithmetic, tax details and references,
// @Description then persists it with a change log entry.
// @Tags invoices
// @Accept json
// @Produce json
// @Param X-Organization-Id header string true "Organization ID"
// @Param invoice body dto.SaveInvoiceRequest true "Invoice details"
// @Success 201 {object} dto.InvoiceResponse
// @Failure 400 {object} map[string]string "Validation failed"
// @Failure 409 {object} map[string]string "Invoice number already exists"
// @Security BearerAuth
// @Router /invoices [post]
func (h *invoiceHandler) createInvoice(c *gin.Context) {
	organizationID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	var req dto.SaveInvoiceRequest
	if !bindJSON(c, &req) {
		return
	}

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), organizationID, userID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(invoice))
}

// listInvoices godoc
// @Summary List invoices
// @Description Lists the invoices of the active organization without items.
// @Tags invoices
// @Produce json
// @Param X-Organization-Id header string true "Organization ID"
// @Success 200 {object} dto.ListInvoicesResponse
// @Security BearerAuth
// @Router /invoices [get]
func (h *invoiceHandler) listInvoices(c *gin.Context) {
	organizationID, _, ok := requestScope(c)
	if !ok {
		return
	}

	invoices, err := h.invoiceService.ListInvoices(c.Request.Context(), organizationID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListInvoicesResponse(invoices))
}

// getInvoice godoc
// @Summary Get invoice
// @Description Retrieves an invoice with its items in position order.
// @Tags invoices
// @Produce json
// @Param X-Organization-Id header string true "Organization ID"
// @Param invoice_id path string true "Invoice ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /invoices/{invoice_id} [get]
func (h *invoiceHandler) getInvoice(c *gin.Context) {
	organizationID, _, ok := requestScope(c)
	if !ok {
		return
	}

	invoice, err := h.invoiceService.GetInvoiceByID(c.Request.Context(), organizationID, c.Param("invoice_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}

// updateInvoice godoc
// @Summary Update invoice
// @Description Re-validates the full invoice, applies changed fields and
// @Description records a change log. A request that changes nothing performs
// @Description no writes.
// @Tags invoices
// @Accept json
// @Produce json
// @Param X-Organization-Id header string true "Organization ID"
// @Param invoice_id path string true "Invoice ID"
// @Param invoice body dto.SaveInvoiceRequest true "Invoice details"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 400 {object} map[string]string "Validation failed"
// @Failure 404 {object} map[string]string "Not found"
// @Failure 409 {object} map[string]string "Invoice number already exists"
// @Security BearerAuth
// @Router /invoices/{invoice_id} [put]
func (h *invoiceHandler) updateInvoice(c *gin.Context) {
	organizationID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	var req dto.SaveInvoiceRequest
	if !bindJSON(c, &req) {
		return
	}

	invoice, err := h.invoiceService.UpdateInvoice(c.Request.Context(), organizationID, userID, c.Param("invoice_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}

// deleteInvoice godoc
// @Summary Delete invoice
// @Tags invoices
// @Produce json
// @Param X-Organization-Id header string true "Organization ID"
// @Param invoice_id path string true "Invoice ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /invoices/{invoice_id} [delete]
func (h *invoiceHandler) deleteInvoice(c *gin.Context) {
	organizationID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	if err := h.invoiceService.DeleteInvoice(c.Request.Context(), organizationID, userID, c.Param("invoice_id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
