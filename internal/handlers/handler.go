package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nhasan/building-api/internal/auth"
	"github.com/nhasan/building-api/internal/store"
)

// Handler owns the collaborators every route needs. One instance is built at
// startup and shared; it holds no per-request state.
type Handler struct {
	Stores store.Stores
	Tokens *auth.TokenService
	Log    *zap.Logger
}

func NewHandler(stores store.Stores, tokens *auth.TokenService, log *zap.Logger) *Handler {
	return &Handler{
		Stores: stores,
		Tokens: tokens,
		Log:    log,
	}
}

// Response shapes mirror the document-store results the API has always
// returned on writes.

type insertResponse struct {
	InsertedID string `json:"insertedId"`
}

type updateResponse struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

type deleteResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}

// Liveness answers the root probe.
func (h *Handler) Liveness(c *gin.Context) {
	c.String(http.StatusOK, "building is running")
}

func (h *Handler) serverError(c *gin.Context, msg string, err error) {
	h.Log.Error(msg, zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"message": msg})
}
