package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/openpitch/field-booking/internal/httperr"
	"github.com/openpitch/field-booking/internal/middleware"
	"github.com/openpitch/field-booking/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	requester, ok := middleware.RequesterFrom(c)
	if !ok {
		httperr.Unauthorized(c, "unauthorized", "authentication required")
		return
	}

	var user models.User
	if err := h.db.First(&user, requester.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "user_not_found", "user not found")
			return
		}
		httperr.Internal(c, "failed_to_get_user", "failed to load user")
		return
	}

	c.JSON(http.StatusOK, user)
}
