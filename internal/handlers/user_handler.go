package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nhasan/building-api/internal/models"
	"github.com/nhasan/building-api/internal/utils"
)

type registerUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// RegisterUser inserts a user unless one already exists with the same email.
// Re-registering is a no-op that reports a null insertedId rather than an
// error, so clients can call it on every sign-in.
func (h *Handler) RegisterUser(c *gin.Context) {
	var req registerUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "email is required"})
		return
	}

	existing, err := h.Stores.Users.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		h.serverError(c, "could not look up user", err)
		return
	}
	if existing != nil {
		c.JSON(http.StatusOK, gin.H{"message": "user already exists", "insertedId": nil})
		return
	}

	user := models.User{
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
	}
	if req.Password != "" {
		hashed, err := utils.HashPassword(req.Password)
		if err != nil {
			h.serverError(c, "could not hash password", err)
			return
		}
		user.Password = hashed
	}

	id, err := h.Stores.Users.Insert(c.Request.Context(), user)
	if err != nil {
		h.serverError(c, "could not create user", err)
		return
	}

	c.JSON(http.StatusOK, insertResponse{InsertedID: id.Hex()})
}

// ListUsers returns every user record. Admin only.
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.Stores.Users.List(c.Request.Context())
	if err != nil {
		h.serverError(c, "could not list users", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

type adminStatusResponse struct {
	Admin bool `json:"admin"`
}

// CheckAdmin reports whether the caller is an admin. Callers may only ask
// about their own email.
func (h *Handler) CheckAdmin(c *gin.Context) {
	email, ok := selfMatch(c)
	if !ok {
		return
	}

	user, err := h.Stores.Users.FindByEmail(c.Request.Context(), email)
	if err != nil {
		h.serverError(c, "could not look up user", err)
		return
	}

	c.JSON(http.StatusOK, adminStatusResponse{Admin: user.IsAdmin()})
}

// GetMember returns the caller's own user record, or null when none exists.
func (h *Handler) GetMember(c *gin.Context) {
	email, ok := selfMatch(c)
	if !ok {
		return
	}

	user, err := h.Stores.Users.FindByEmail(c.Request.Context(), email)
	if err != nil {
		h.serverError(c, "could not look up user", err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// DemoteAdminByID resets an admin back to the plain user role.
func (h *Handler) DemoteAdminByID(c *gin.Context) {
	h.setRoleByID(c, models.RoleUser)
}

// PromoteToAdminByID grants the admin role.
func (h *Handler) PromoteToAdminByID(c *gin.Context) {
	h.setRoleByID(c, models.RoleAdmin)
}

func (h *Handler) setRoleByID(c *gin.Context, role string) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	result, err := h.Stores.Users.SetRoleByID(c.Request.Context(), id, role)
	if err != nil {
		h.serverError(c, "could not update role", err)
		return
	}
	c.JSON(http.StatusOK, updateResponse{MatchedCount: result.MatchedCount, ModifiedCount: result.ModifiedCount})
}

// SetRoleMemberByEmail marks a user as a building member.
func (h *Handler) SetRoleMemberByEmail(c *gin.Context) {
	h.setRoleByEmail(c, models.RoleMember)
}

// SetRoleUserByEmail resets a member back to the plain user role.
func (h *Handler) SetRoleUserByEmail(c *gin.Context) {
	h.setRoleByEmail(c, models.RoleUser)
}

func (h *Handler) setRoleByEmail(c *gin.Context, role string) {
	result, err := h.Stores.Users.SetRoleByEmail(c.Request.Context(), c.Param("email"), role)
	if err != nil {
		h.serverError(c, "could not update role", err)
		return
	}
	c.JSON(http.StatusOK, updateResponse{MatchedCount: result.MatchedCount, ModifiedCount: result.ModifiedCount})
}

// DeleteUser removes a user by id. Admin only.
func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	result, err := h.Stores.Users.DeleteByID(c.Request.Context(), id)
	if err != nil {
		h.serverError(c, "could not delete user", err)
		return
	}
	c.JSON(http.StatusOK, deleteResponse{DeletedCount: result.DeletedCount})
}
