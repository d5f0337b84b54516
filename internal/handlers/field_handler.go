package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/openpitch/field-booking/internal/domain/access"
	"github.com/openpitch/field-booking/internal/geo"
	"github.com/openpitch/field-booking/internal/httperr"
	"github.com/openpitch/field-booking/internal/httpresp"
	"github.com/openpitch/field-booking/internal/middleware"
	ucfield "github.com/openpitch/field-booking/internal/usecase/field"
)

// ======================================================
// HANDLER
// ======================================================

type FieldHandler struct {
	listUC   *ucfield.ListFields
	getUC    *ucfield.GetField
	createUC *ucfield.CreateField
	updateUC *ucfield.UpdateField
	deleteUC *ucfield.DeleteField
}

func NewFieldHandler(
	listUC *ucfield.ListFields,
	getUC *ucfield.GetField,
	createUC *ucfield.CreateField,
	updateUC *ucfield.UpdateField,
	deleteUC *ucfield.DeleteField,
) *FieldHandler {
	return &FieldHandler{
		listUC:   listUC,
		getUC:    getUC,
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateFieldRequest struct {
	Name          string         `json:"name" binding:"required"`
	Address       string         `json:"address"`
	ContactNumber string         `json:"contact_number"`
	Description   string         `json:"description"`
	PricePerHour  float64        `json:"price_per_hour" binding:"gte=0"`
	Longitude     float64        `json:"longitude" binding:"longitude_range"`
	Latitude      float64        `json:"latitude" binding:"latitude_range"`
	Facilities    map[string]any `json:"facilities"`
}

type UpdateFieldRequest struct {
	Name          *string        `json:"name"`
	Address       *string        `json:"address"`
	ContactNumber *string        `json:"contact_number"`
	Description   *string        `json:"description"`
	PricePerHour  *float64       `json:"price_per_hour"`
	Longitude     *float64       `json:"longitude"`
	Latitude      *float64       `json:"latitude"`
	Facilities    map[string]any `json:"facilities"`
	Active        *bool          `json:"active"`
}

// ======================================================
// LIST (public)
// ======================================================

func (h *FieldHandler) List(c *gin.Context) {
	in := ucfield.ListFieldsInput{
		ActiveOnly:    c.Query("active_only") == "true",
		AvailableOnly: c.Query("available_only") == "true",
		Interval:      intervalFromQuery(c),
	}

	// Malformed coordinates are ignored; the catalog falls back to its
	// natural order rather than erroring the whole listing.
	if point, ok := geo.ParseCoordinate(c.Query("lat"), c.Query("lng")); ok {
		in.Coordinate = &point
	}

	items, err := h.listUC.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.Internal(c, "failed_to_list_fields", "failed to list fields")
		return
	}

	httpresp.List(c, items)
}

// ======================================================
// GET (public, richer when authenticated)
// ======================================================

func (h *FieldHandler) Get(c *gin.Context) {
	fieldID, err := paramID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_field_id", "invalid field id")
		return
	}

	var requester *access.Requester
	if r, ok := middleware.RequesterFrom(c); ok {
		requester = &r
	}

	detail, err := h.getUC.Execute(c.Request.Context(), requester, fieldID, intervalFromQuery(c))
	if err != nil {
		httperr.WriteBusiness(c, err, "failed_to_get_field", "failed to load field")
		return
	}

	httpresp.OK(c, detail)
}

// ======================================================
// CREATE
// ======================================================

func (h *FieldHandler) Create(c *gin.Context) {
	requester, _ := middleware.RequesterFrom(c)

	var req CreateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "invalid request body")
		return
	}

	field, err := h.createUC.Execute(c.Request.Context(), requester, ucfield.CreateFieldInput{
		Name:          req.Name,
		Address:       req.Address,
		ContactNumber: req.ContactNumber,
		Description:   req.Description,
		PricePerHour:  req.PricePerHour,
		Longitude:     req.Longitude,
		Latitude:      req.Latitude,
		Facilities:    req.Facilities,
	})
	if err != nil {
		httperr.WriteBusiness(c, err, "failed_to_create_field", "failed to create field")
		return
	}

	httpresp.Created(c, field)
}

// ======================================================
// UPDATE
// ======================================================

func (h *FieldHandler) Update(c *gin.Context) {
	requester, _ := middleware.RequesterFrom(c)

	fieldID, err := paramID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_field_id", "invalid field id")
		return
	}

	var req UpdateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "invalid request body")
		return
	}

	field, err := h.updateUC.Execute(c.Request.Context(), requester, fieldID, ucfield.FieldPatch{
		Name:          req.Name,
		Address:       req.Address,
		ContactNumber: req.ContactNumber,
		Description:   req.Description,
		PricePerHour:  req.PricePerHour,
		Longitude:     req.Longitude,
		Latitude:      req.Latitude,
		Facilities:    req.Facilities,
		Active:        req.Active,
	})
	if err != nil {
		httperr.WriteBusiness(c, err, "failed_to_update_field", "failed to update field")
		return
	}

	httpresp.OK(c, field)
}

// ======================================================
// DELETE (future-booking gate)
// ======================================================

func (h *FieldHandler) Delete(c *gin.Context) {
	requester, _ := middleware.RequesterFrom(c)

	fieldID, err := paramID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_field_id", "invalid field id")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), requester, fieldID); err != nil {
		var upcoming *ucfield.UpcomingBookingsError
		if errors.As(err, &upcoming) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error_code": "field_has_upcoming_bookings",
				"message":    "field has upcoming bookings that must be cancelled first",
				"bookings":   upcoming.Bookings,
			})
			return
		}
		httperr.WriteBusiness(c, err, "failed_to_delete_field", "failed to delete field")
		return
	}

	c.Status(http.StatusNoContent)
}

// ======================================================
// HELPERS
// ======================================================

func paramID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
