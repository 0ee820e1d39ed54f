package api

import (
	"net/http"
	"strings"

	reqdto "seat-hold-ticketing/internal/handler/dto/request"
	resdto "seat-hold-ticketing/internal/handler/dto/response"
	"seat-hold-ticketing/internal/handler/middleware"
	"seat-hold-ticketing/internal/pkg/errs"
	"seat-hold-ticketing/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type HoldHandler struct {
	hold    commands.HoldCommands
	confirm commands.ConfirmCommands
}

func NewHoldHandler(hold commands.HoldCommands, confirm commands.ConfirmCommands) *HoldHandler {
	return &HoldHandler{hold: hold, confirm: confirm}
}

// @Summary Hold seats
// @Description Hold 1 to 4 seats of an event for a limited time
// @Tags holds
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventId path int true "Event ID"
// @Param Idempotency-Key header string true "Idempotency key"
// @Param request body reqdto.HoldRequest true "Seats to hold"
// @Success 201 {object} resdto.HoldResponse
// @Success 200 {object} resdto.HoldResponse "Replay of an earlier request"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /events/{eventId}/holds [post]
func (h *HoldHandler) Hold(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	eventID, ok := positiveIDParam(c, "eventId")
	if !ok {
		return
	}

	key := strings.TrimSpace(c.GetHeader("Idempotency-Key"))
	if key == "" {
		writeBusinessError(c, errs.ErrIdempotencyKeyRequired)
		return
	}

	var req reqdto.HoldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortValidation(c, err, "Invalid request")
		return
	}

	result, err := h.hold.Hold(c.Request.Context(), req.ToCommand(userID, eventID, key))
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	res, err := resdto.FromHoldResult(result)
	if err != nil {
		writeBusinessError(c, err)
		return
	}
	status := http.StatusCreated
	if result.Replayed {
		c.Header(headerIdempotentReplayed, "true")
		status = http.StatusOK
	}
	c.JSON(status, res)
}

// @Summary Confirm hold
// @Description Convert a live hold into a booking paid by an approved payment transaction
// @Tags holds
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventId path int true "Event ID"
// @Param request body reqdto.ConfirmRequest true "Confirm request"
// @Success 201 {object} resdto.ConfirmResponse
// @Success 200 {object} resdto.ConfirmResponse "Replay of an earlier confirmation"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 504 {object} httperr.Response
// @Router /events/{eventId}/confirm [post]
func (h *HoldHandler) Confirm(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	eventID, ok := positiveIDParam(c, "eventId")
	if !ok {
		return
	}

	var req reqdto.ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortValidation(c, err, "Invalid request")
		return
	}

	result, err := h.confirm.Confirm(c.Request.Context(), req.ToCommand(userID, eventID))
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	res, err := resdto.FromConfirmResult(result)
	if err != nil {
		writeBusinessError(c, err)
		return
	}
	status := http.StatusCreated
	if result.Replayed {
		c.Header(headerIdempotentReplayed, "true")
		status = http.StatusOK
	}
	c.JSON(status, res)
}
