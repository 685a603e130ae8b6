package handlers

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/slot-exchange/internal/httperr"
	"github.com/BruksfildServices01/slot-exchange/internal/httpresp"
	ucBooking "github.com/BruksfildServices01/slot-exchange/internal/usecase/booking"
)

type BookingHandler struct {
	cancel  *ucBooking.CancelBooking
	resolve *ucBooking.ResolveCancellation
	log     *zap.Logger
}

func NewBookingHandler(
	cancel *ucBooking.CancelBooking,
	resolve *ucBooking.ResolveCancellation,
	log *zap.Logger,
) *BookingHandler {
	return &BookingHandler{
		cancel:  cancel,
		resolve: resolve,
		log:     log,
	}
}

type CancelBookingRequest struct {
	Reason string `json:"reason"`
}

type ResolveCancellationRequest struct {
	Action string `json:"action" binding:"required"`
}

// Cancel accepts an empty body; the reason is optional.
func (h *BookingHandler) Cancel(c *gin.Context) {
	var req CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		httperr.BadRequest(c, "invalid_request", "Request body is missing or malformed.")
		return
	}

	b, err := h.cancel.Execute(c.Request.Context(), mustActor(c), c.Param("id"), req.Reason)
	if err != nil {
		httperr.Respond(c, h.log, "booking_cancel_failed", err)
		return
	}

	httpresp.OK(c, b)
}

func (h *BookingHandler) ResolveCancellation(c *gin.Context) {
	var req ResolveCancellationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Field action is required.")
		return
	}

	b, err := h.resolve.Execute(c.Request.Context(), mustActor(c), c.Param("id"), req.Action)
	if err != nil {
		httperr.Respond(c, h.log, "booking_resolve_failed", err)
		return
	}

	httpresp.OK(c, b)
}
