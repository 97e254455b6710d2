package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nhasan/building-api/internal/models"
)

type createCartItemRequest struct {
	Email       string `json:"email" binding:"required"`
	UserName    string `json:"userName"`
	FloorNo     int    `json:"floorNo"`
	BlockName   string `json:"blockName"`
	ApartmentNo string `json:"apartmentNo"`
	Rent        int    `json:"rent"`
}

// CreateCartItem records a rental agreement request. The item starts without
// a status; an admin approval sets it to "checked".
func (h *Handler) CreateCartItem(c *gin.Context) {
	var req createCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "email is required"})
		return
	}

	item := models.CartItem{
		Email:       req.Email,
		UserName:    req.UserName,
		FloorNo:     req.FloorNo,
		BlockName:   req.BlockName,
		ApartmentNo: req.ApartmentNo,
		Rent:        req.Rent,
	}

	id, err := h.Stores.Carts.Insert(c.Request.Context(), item)
	if err != nil {
		h.serverError(c, "could not create cart item", err)
		return
	}
	c.JSON(http.StatusOK, insertResponse{InsertedID: id.Hex()})
}

// ListCartItems returns the caller's own cart items. Callers may only list
// by their own email.
func (h *Handler) ListCartItems(c *gin.Context) {
	email, ok := selfMatch(c)
	if !ok {
		return
	}

	items, err := h.Stores.Carts.FindByEmail(c.Request.Context(), email)
	if err != nil {
		h.serverError(c, "could not list cart items", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// ListAgreements returns every agreement request, pending or checked. Admin
// only.
func (h *Handler) ListAgreements(c *gin.Context) {
	items, err := h.Stores.Carts.ListAll(c.Request.Context())
	if err != nil {
		h.serverError(c, "could not list agreements", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// ApproveAgreement marks an agreement request as checked. Admin only.
func (h *Handler) ApproveAgreement(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	result, err := h.Stores.Carts.SetStatusChecked(c.Request.Context(), id)
	if err != nil {
		h.serverError(c, "could not approve agreement", err)
		return
	}
	c.JSON(http.StatusOK, updateResponse{MatchedCount: result.MatchedCount, ModifiedCount: result.ModifiedCount})
}

// DeleteCartItem removes a cart item by id. Any authenticated caller may
// delete any item: owners withdraw their own requests and admins clear
// approved or stale ones through the same route, so no ownership check is
// applied here.
func (h *Handler) DeleteCartItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	result, err := h.Stores.Carts.DeleteByID(c.Request.Context(), id)
	if err != nil {
		h.serverError(c, "could not delete cart item", err)
		return
	}
	c.JSON(http.StatusOK, deleteResponse{DeletedCount: result.DeletedCount})
}
