package handler

import (
	"net/http"

	"pokeboard/backend/internal/pokeapi"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes operational controls over the lookup cache.
type AdminHandler struct {
	API *pokeapi.Client
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(api *pokeapi.Client) *AdminHandler {
	return &AdminHandler{API: api}
}

// PurgeLookupCache godoc
// @Summary      Purge the species lookup cache (Admin only)
// @Description  Drops every memoized provider response.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} map[string]string "{"message": "Cache purged"}"
// @Failure      403 {object} ErrorResponse "Admin access required"
// @Router       /admin/cache [delete]
func (h *AdminHandler) PurgeLookupCache(c *gin.Context) {
	h.API.Purge()
	c.JSON(http.StatusOK, gin.H{"message": "Cache purged"})
}

// InvalidateLookupEntry godoc
// @Summary      Evict one lookup cache entry (Admin only)
// @Description  Removes a single memoized entry, e.g. "pokemon:pikachu".
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        key path string true "Cache key"
// @Success      200 {object} map[string]bool "{"evicted": true}"
// @Failure      403 {object} ErrorResponse "Admin access required"
// @Router       /admin/cache/{key} [delete]
func (h *AdminHandler) InvalidateLookupEntry(c *gin.Context) {
	evicted := h.API.Invalidate(c.Param("key"))
	c.JSON(http.StatusOK, gin.H{"evicted": evicted})
}
