package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fieldserve/models"
	searchsvc "fieldserve/services/search"
	"fieldserve/utils"
)

// SearchHandler exposes the public candidate-matching endpoints.
type SearchHandler struct {
	Service searchsvc.SearchService
}

func (h *SearchHandler) Search(c *gin.Context) {
	var query models.SearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid query", err.Error())
		return
	}

	result, err := h.Service.Search(c.Request.Context(), query)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *SearchHandler) Categories(c *gin.Context) {
	categories, err := h.Service.Categories(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}
