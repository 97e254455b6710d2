package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/nhasan/building-api/internal/models"
)

type createAnnouncementRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

// CreateAnnouncement stores a new announcement.
func (h *Handler) CreateAnnouncement(c *gin.Context) {
	var req createAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "title is required"})
		return
	}

	item := models.Announcement{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
	}

	id, err := h.Stores.Announcements.Insert(c.Request.Context(), item)
	if err != nil {
		h.serverError(c, "could not create announcement", err)
		return
	}
	c.JSON(http.StatusOK, insertResponse{InsertedID: id.Hex()})
}

// ListAnnouncements returns every announcement. Authenticated users only.
func (h *Handler) ListAnnouncements(c *gin.Context) {
	items, err := h.Stores.Announcements.ListAll(c.Request.Context())
	if err != nil {
		h.serverError(c, "could not list announcements", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetAnnouncement returns one announcement by id, or null when it does not
// exist.
func (h *Handler) GetAnnouncement(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	item, err := h.Stores.Announcements.FindByID(c.Request.Context(), id)
	if err != nil {
		h.serverError(c, "could not load announcement", err)
		return
	}
	c.JSON(http.StatusOK, item)
}

type updateAnnouncementRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
}

// UpdateAnnouncement merge-sets the supplied fields onto the record. Fields
// left out of the request are untouched. Admin only.
func (h *Handler) UpdateAnnouncement(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req updateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	fields := bson.M{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Date != nil {
		fields["date"] = *req.Date
	}
	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "no update fields provided"})
		return
	}

	result, err := h.Stores.Announcements.MergeByID(c.Request.Context(), id, fields)
	if err != nil {
		h.serverError(c, "could not update announcement", err)
		return
	}
	c.JSON(http.StatusOK, updateResponse{MatchedCount: result.MatchedCount, ModifiedCount: result.ModifiedCount})
}

// DeleteAnnouncement removes an announcement by id. Admin only.
func (h *Handler) DeleteAnnouncement(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	result, err := h.Stores.Announcements.DeleteByID(c.Request.Context(), id)
	if err != nil {
		h.serverError(c, "could not delete announcement", err)
		return
	}
	c.JSON(http.StatusOK, deleteResponse{DeletedCount: result.DeletedCount})
}
