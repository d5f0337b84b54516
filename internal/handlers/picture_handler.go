package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/openpitch/field-booking/internal/audit"
	"github.com/openpitch/field-booking/internal/config"
	"github.com/openpitch/field-booking/internal/domain/access"
	"github.com/openpitch/field-booking/internal/httperr"
	"github.com/openpitch/field-booking/internal/middleware"
	"github.com/openpitch/field-booking/internal/models"
	"github.com/openpitch/field-booking/internal/storage"
)

type PictureHandler struct {
	db       *gorm.DB
	pictures *storage.PictureStore
	audit    *audit.Dispatcher
	maxBytes int64
}

func NewPictureHandler(
	db *gorm.DB,
	pictures *storage.PictureStore,
	audit *audit.Dispatcher,
	cfg *config.Config,
) *PictureHandler {
	return &PictureHandler{
		db:       db,
		pictures: pictures,
		audit:    audit,
		maxBytes: cfg.PictureMaxBytes,
	}
}

// Upload replaces a field's picture: the image is decoded, downscaled,
// re-encoded as webp and stored on S3; the object key lands on the
// field record.
func (h *PictureHandler) Upload(c *gin.Context) {
	if h.pictures == nil {
		httperr.Write(c, http.StatusServiceUnavailable, "picture_storage_disabled", "picture storage is not configured")
		return
	}

	requester, _ := middleware.RequesterFrom(c)

	fieldID, err := paramID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_field_id", "invalid field id")
		return
	}

	var field models.Field
	if err := h.db.First(&field, fieldID).Error; err != nil {
		httperr.NotFound(c, "field_not_found", "field not found")
		return
	}

	if !access.CanMutateField(requester, field.OwnerID) {
		httperr.Forbidden(c, "forbidden", "not allowed to modify this field")
		return
	}

	fileHeader, err := c.FormFile("picture")
	if err != nil {
		httperr.BadRequest(c, "missing_picture", "picture file is required")
		return
	}
	if fileHeader.Size > h.maxBytes {
		httperr.BadRequest(c, "picture_too_large", "picture exceeds the size limit")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_picture", "failed to read picture")
		return
	}
	defer file.Close()

	payload, err := storage.NormalizePicture(file)
	if err != nil {
		httperr.BadRequest(c, "invalid_picture", "picture must be a valid image")
		return
	}

	key, err := h.pictures.UploadPicture(c.Request.Context(), field.ID, payload)
	if err != nil {
		httperr.Internal(c, "failed_to_upload_picture", "failed to store picture")
		return
	}

	field.PictureKey = key
	if err := h.db.Save(&field).Error; err != nil {
		httperr.Internal(c, "failed_to_update_field", "failed to update field")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &requester.ID,
		Action:   "field_picture_uploaded",
		Entity:   "field",
		EntityID: &field.ID,
	})

	c.JSON(http.StatusOK, gin.H{"picture_key": key})
}
