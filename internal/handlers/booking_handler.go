package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/openpitch/field-booking/internal/httperr"
	"github.com/openpitch/field-booking/internal/httpresp"
	"github.com/openpitch/field-booking/internal/middleware"
	ucbooking "github.com/openpitch/field-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	createUC       *ucbooking.CreateBooking
	getUC          *ucbooking.GetBooking
	updateUC       *ucbooking.UpdateBooking
	deleteUC       *ucbooking.DeleteBooking
	listUC         *ucbooking.ListBookings
	listForFieldUC *ucbooking.ListFieldBookings
}

func NewBookingHandler(
	createUC *ucbooking.CreateBooking,
	getUC *ucbooking.GetBooking,
	updateUC *ucbooking.UpdateBooking,
	deleteUC *ucbooking.DeleteBooking,
	listUC *ucbooking.ListBookings,
	listForFieldUC *ucbooking.ListFieldBookings,
) *BookingHandler {
	return &BookingHandler{
		createUC:       createUC,
		getUC:          getUC,
		updateUC:       updateUC,
		deleteUC:       deleteUC,
		listUC:         listUC,
		listForFieldUC: listForFieldUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	FieldID uint      `json:"field_id" binding:"required"`
	Start   time.Time `json:"start_time" binding:"required"`
	End     time.Time `json:"end_time" binding:"required"`
}

type UpdateBookingRequest struct {
	Start  *time.Time `json:"start_time"`
	End    *time.Time `json:"end_time"`
	Status *string    `json:"status"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	requester, _ := middleware.RequesterFrom(c)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "invalid request body")
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), requester, ucbooking.CreateBookingInput{
		FieldID: req.FieldID,
		Start:   req.Start,
		End:     req.End,
	})
	if err != nil {
		httperr.WriteBusiness(c, err, "failed_to_create_booking", "failed to create booking")
		return
	}

	httpresp.Created(c, b)
}

// ======================================================
// GET
// ======================================================

func (h *BookingHandler) Get(c *gin.Context) {
	requester, _ := middleware.RequesterFrom(c)

	bookingID, err := paramID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "invalid booking id")
		return
	}

	b, err := h.getUC.Execute(c.Request.Context(), requester, bookingID)
	if err != nil {
		httperr.WriteBusiness(c, err, "failed_to_get_booking", "failed to load booking")
		return
	}

	httpresp.OK(c, b)
}

// ======================================================
// LIST (role-scoped)
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	requester, _ := middleware.RequesterFrom(c)

	bookings, err := h.listUC.Execute(c.Request.Context(), requester)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "failed to list bookings")
		return
	}

	httpresp.List(c, bookings)
}

// ListForField lists the bookings on one field (admin / field owner).
func (h *BookingHandler) ListForField(c *gin.Context) {
	requester, _ := middleware.RequesterFrom(c)

	fieldID, err := paramID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_field_id", "invalid field id")
		return
	}

	bookings, err := h.listForFieldUC.Execute(c.Request.Context(), requester, fieldID)
	if err != nil {
		httperr.WriteBusiness(c, err, "failed_to_list_bookings", "failed to list bookings")
		return
	}

	httpresp.List(c, bookings)
}

// ======================================================
// UPDATE
// ======================================================

func (h *BookingHandler) Update(c *gin.Context) {
	requester, _ := middleware.RequesterFrom(c)

	bookingID, err := paramID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "invalid booking id")
		return
	}

	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "invalid request body")
		return
	}

	b, err := h.updateUC.Execute(c.Request.Context(), requester, bookingID, ucbooking.BookingPatch{
		Start:  req.Start,
		End:    req.End,
		Status: req.Status,
	})
	if err != nil {
		httperr.WriteBusiness(c, err, "failed_to_update_booking", "failed to update booking")
		return
	}

	httpresp.OK(c, b)
}

// ======================================================
// DELETE
// ======================================================

func (h *BookingHandler) Delete(c *gin.Context) {
	requester, _ := middleware.RequesterFrom(c)

	bookingID, err := paramID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "invalid booking id")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), requester, bookingID); err != nil {
		httperr.WriteBusiness(c, err, "failed_to_delete_booking", "failed to delete booking")
		return
	}

	c.Status(http.StatusNoContent)
}
