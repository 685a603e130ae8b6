package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/slot-exchange/internal/dto"
	"github.com/BruksfildServices01/slot-exchange/internal/httperr"
	"github.com/BruksfildServices01/slot-exchange/internal/httpresp"
	ucExchange "github.com/BruksfildServices01/slot-exchange/internal/usecase/exchange"
)

// ======================================================
// HANDLER
// ======================================================

type ExchangeHandler struct {
	create *ucExchange.CreateExchange
	update *ucExchange.UpdateExchange
	get    *ucExchange.GetExchange
	list   *ucExchange.ListExchanges
	log    *zap.Logger
}

func NewExchangeHandler(
	create *ucExchange.CreateExchange,
	update *ucExchange.UpdateExchange,
	get *ucExchange.GetExchange,
	list *ucExchange.ListExchanges,
	log *zap.Logger,
) *ExchangeHandler {
	return &ExchangeHandler{
		create: create,
		update: update,
		get:    get,
		list:   list,
		log:    log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateExchangeRequest struct {
	MyBookingID     string `json:"myBookingId" binding:"required"`
	TargetBookingID string `json:"targetBookingId" binding:"required"`
	Message         string `json:"message"`
}

type ExchangeActionRequest struct {
	Action string `json:"action" binding:"required"`
}

// ======================================================
// ROUTES
// ======================================================

func (h *ExchangeHandler) Create(c *gin.Context) {
	actor := mustActor(c)

	var req CreateExchangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Both myBookingId and targetBookingId are required.")
		return
	}

	ex, err := h.create.Execute(c.Request.Context(), actor, ucExchange.CreateExchangeInput{
		MyBookingID:     req.MyBookingID,
		TargetBookingID: req.TargetBookingID,
		Message:         req.Message,
	})
	if err != nil {
		httperr.Respond(c, h.log, "exchange_create_failed", err)
		return
	}

	httpresp.OK(c, ex)
}

func (h *ExchangeHandler) Update(c *gin.Context) {
	actor := mustActor(c)

	var req ExchangeActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Field action is required.")
		return
	}

	ex, err := h.update.Execute(c.Request.Context(), actor, c.Param("id"), req.Action)
	if err != nil {
		httperr.Respond(c, h.log, "exchange_update_failed", err)
		return
	}

	httpresp.OK(c, ex)
}

func (h *ExchangeHandler) Get(c *gin.Context) {
	ex, err := h.get.Execute(c.Request.Context(), mustActor(c), c.Param("id"))
	if err != nil {
		httperr.Respond(c, h.log, "exchange_get_failed", err)
		return
	}

	httpresp.OK(c, ex)
}

func (h *ExchangeHandler) List(c *gin.Context) {
	exchanges, err := h.list.Execute(c.Request.Context(), mustActor(c))
	if err != nil {
		httperr.Respond(c, h.log, "exchange_list_failed", err)
		return
	}

	httpresp.List(c, dto.NewExchangeList(exchanges))
}
