package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type issueTokenRequest struct {
	Email string `json:"email" binding:"required"`
}

type issueTokenResponse struct {
	Token string `json:"token"`
}

// IssueToken exchanges an identity payload for a signed bearer token.
func (h *Handler) IssueToken(c *gin.Context) {
	var req issueTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "email is required"})
		return
	}

	token, err := h.Tokens.Issue(req.Email)
	if err != nil {
		h.Log.Error("could not sign token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "could not generate token"})
		return
	}

	c.JSON(http.StatusOK, issueTokenResponse{Token: token})
}
