package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nhasan/building-api/internal/middleware"
)

// Register wires the full route table. The two gates are passed in so the
// caller decides how they are built; routes compose them in order: auth
// first, then admin.
func (h *Handler) Register(r *gin.Engine, requireAuth, requireAdmin gin.HandlerFunc) {
	r.GET("/", h.Liveness)
	r.POST("/jwt", h.IssueToken)

	r.POST("/users", h.RegisterUser)
	r.GET("/users", requireAuth, requireAdmin, h.ListUsers)
	r.GET("/users/admin/:email", requireAuth, h.CheckAdmin)
	r.GET("/users/member/:email", requireAuth, h.GetMember)
	r.PATCH("/users/admin/:id", requireAuth, requireAdmin, h.DemoteAdminByID)
	r.PATCH("/users/makeAdmin/:id", requireAuth, requireAdmin, h.PromoteToAdminByID)
	r.PATCH("/usersRole/admin/:email", requireAuth, requireAdmin, h.SetRoleMemberByEmail)
	r.PATCH("/usersRole/:email", requireAuth, requireAdmin, h.SetRoleUserByEmail)
	r.DELETE("/users/:id", requireAuth, requireAdmin, h.DeleteUser)

	r.GET("/apartments", h.ListApartments)
	r.GET("/faqs", h.ListFAQs)

	r.POST("/itemCards", h.CreateCartItem)
	r.GET("/itemCarts/:email", requireAuth, h.ListCartItems)
	r.DELETE("/itemCarts/:id", requireAuth, h.DeleteCartItem)

	r.GET("/agreements", requireAuth, requireAdmin, h.ListAgreements)
	r.PATCH("/agreements/:id", requireAuth, requireAdmin, h.ApproveAgreement)

	r.POST("/announcement", h.CreateAnnouncement)
	r.GET("/announcement", requireAuth, h.ListAnnouncements)
	r.GET("/announcement/:id", h.GetAnnouncement)
	r.PATCH("/announcement/:id", requireAuth, requireAdmin, h.UpdateAnnouncement)
	r.DELETE("/announcement/:id", requireAuth, requireAdmin, h.DeleteAnnouncement)
}

// pathID parses the :id path param, answering 400 on malformed hex.
func pathID(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return primitive.NilObjectID, false
	}
	return id, true
}

// selfMatch enforces that the :email path param equals the token claim's
// email, answering 403 on a mismatch.
func selfMatch(c *gin.Context) (string, bool) {
	email := c.Param("email")
	if email != c.GetString(middleware.ClaimEmailKey) {
		c.JSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
		return "", false
	}
	return email, true
}
