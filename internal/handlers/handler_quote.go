package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/saiuttej/books-backend/internal/core/ports/services"
	"github.com/saiuttej/books-backend/internal/dto"
)

// quoteHandler handles quote management requests within an organization.
type quoteHandler struct {
	quoteService portssvc.QuoteSvcFacade
}

func registerQuoteRoutes(rg *gin.RouterGroup, quoteService portssvc.QuoteSvcFacade) {
	h := &quoteHandler{quoteService: quoteService}

	quotes := rg.Group("/quotes")
	{
		quotes.POST("", h.createQuote)
		quotes.GET("", h.listQuotes)
		quotes.GET("/:quote_id", h.getQuote)
		quotes.PUT("/:quote_id", h.updateQuote)
		quotes.DELETE("/:quote_id", h.deleteQuote)
	}
}

// createQuote godoc
// @Summary Create quote
// @Description Validates the quote arithmetic, tax details and references,
// @Description then persists it with a change log entry.
// @Tags quotes
// @Accept json
// @Produce json
// @Param X-Organization-Id header string true "Organization ID"
// @Param quote body dto.SaveQuoteRequest true "Quote details"
// @Success 201 {object} dto.QuoteResponse
// @Failure 400 {object} map[string]string "Validation failed"
// @Failure 409 {object} map[string]string "Quote number already exists"
// @Security BearerAuth
// @Router /quotes [post]
func (h *quoteHandler) createQuote(c *gin.Context) {
	organizationID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	var req dto.SaveQuoteRequest
	if !bindJSON(c, &req) {
		return
	}

	quote, err := h.quoteService.CreateQuote(c.Request.Context(), organizationID, userID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToQuoteResponse(quote))
}

// listQuotes godoc
// @Summary List quotes
// @Description Lists the quotes of the active organization without items.
// @Tags quotes
// @Produce json
// @Param X-Organization-Id header string true "Organization ID"
// @Success 200 {object} dto.ListQuotesResponse
// @Security BearerAuth
// @Router /quotes [get]
func (h *quoteHandler) listQuotes(c *gin.Context) {
	organizationID, _, ok := requestScope(c)
	if !ok {
		return
	}

	quotes, err := h.quoteService.ListQuotes(c.Request.Context(), organizationID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListQuotesResponse(quotes))
}

// getQuote godoc
// @Summary Get quote
// @Description Retrieves a quote with its items in position order.
// @Tags quotes
// @Produce json
// @Param X-Organization-Id header string true "Organization ID"
// @Param quote_id path string true "Quote ID"
// @Success 200 {object} dto.QuoteResponse
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /quotes/{quote_id} [get]
func (h *quoteHandler) getQuote(c *gin.Context) {
	organizationID, _, ok := requestScope(c)
	if !ok {
		return
	}

	quote, err := h.quoteService.GetQuoteByID(c.Request.Context(), organizationID, c.Param("quote_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToQuoteResponse(quote))
}

// updateQuote godoc
// @Summary Update quote
// @Description Re-validates the full quote, applies changed fields and
// @Description records a change log. A request that changes nothing performs
// @Description no writes.
// @Tags quotes
// @Accept json
// @Produce json
// @Param X-Organization-Id header string true "Organization ID"
// @Param quote_id path string true "Quote ID"
// @Param quote body dto.SaveQuoteRequest true "Quote details"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} map[string]string "Validation failed"
// @Failure 404 {object} map[string]string "Not found"
// @Failure 409 {object} map[string]string "Quote number already exists"
// @Security BearerAuth
// @Router /quotes/{quote_id} [put]
func (h *quoteHandler) updateQuote(c *gin.Context) {
	organizationID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	var req dto.SaveQuoteRequest
	if !bindJSON(c, &req) {
		return
	}

	quote, err := h.quoteService.UpdateQuote(c.Request.Context(), organizationID, userID, c.Param("quote_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToQuoteResponse(quote))
}

// deleteQuote godoc
// @Summary Delete quote
// @Tags quotes
// @Produce json
// @Param X-Organization-Id header string true "Organization ID"
// @Param quote_id path string true "Quote ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /quotes/{quote_id} [delete]
func (h *quoteHandler) deleteQuote(c *gin.Context) {
	organizationID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	if err := h.quoteService.DeleteQuote(c.Request.Context(), organizationID, userID, c.Param("quote_id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
