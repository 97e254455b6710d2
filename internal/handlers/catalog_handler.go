package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListApartments returns every apartment listing, unfiltered.
func (h *Handler) ListApartments(c *gin.Context) {
	items, err := h.Stores.Apartments.ListAll(c.Request.Context())
	if err != nil {
		h.serverError(c, "could not list apartments", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// ListFAQs returns every FAQ record.
func (h *Handler) ListFAQs(c *gin.Context) {
	items, err := h.Stores.FAQs.ListAll(c.Request.Context())
	if err != nil {
		h.serverError(c, "could not list faqs", err)
		return
	}
	c.JSON(http.StatusOK, items)
}
