package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/openpitch/field-booking/internal/audit"
	"github.com/openpitch/field-booking/internal/domain/access"
	"github.com/openpitch/field-booking/internal/httperr"
	"github.com/openpitch/field-booking/internal/middleware"
	"github.com/openpitch/field-booking/internal/models"
)

type UserHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewUserHandler(db *gorm.DB, audit *audit.Dispatcher) *UserHandler {
	return &UserHandler{db: db, audit: audit}
}

type SetRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// SetRole changes a user's role. Roles are immutable after provisioning
// except through this admin-only operation; the route is gated by
// RequireRole(admin).
func (h *UserHandler) SetRole(c *gin.Context) {
	requester, _ := middleware.RequesterFrom(c)

	var req SetRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "invalid request body")
		return
	}

	role, ok := access.ParseRole(req.Role)
	if !ok {
		httperr.BadRequest(c, "invalid_role", "unknown role")
		return
	}

	var user models.User
	if err := h.db.Where("id = ?", c.Param("id")).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "user_not_found", "user not found")
			return
		}
		httperr.Internal(c, "failed_to_get_user", "failed to load user")
		return
	}

	user.Role = string(role)
	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_update_user", "failed to update user")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &requester.ID,
		Action:   "role_changed",
		Entity:   "user",
		EntityID: &user.ID,
		Metadata: map[string]any{"role": user.Role},
	})

	c.JSON(http.StatusOK, user)
}
