package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saiuttej/books-backend/internal/dto"
)

// registerStaticDataRoutes exposes the static reference tables used by
// document and client forms.
func registerStaticDataRoutes(rg *gin.RouterGroup) {
	rg.GET("/static-data", getStaticData)
}

// getStaticData godoc
// @Summary Get static reference data
// @Description Returns the tax rate table, advance tax types and subtypes,
// @Description GST treatment options and customer types.
// @Tags static-data
// @Produce json
// @Success 200 {object} dto.StaticDataResponse
// @Security BearerAuth
// @Router /static-data [get]
func getStaticData(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToStaticDataResponse())
}
