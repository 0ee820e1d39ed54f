package api

import (
	"net/http"

	resdto "seat-hold-ticketing/internal/handler/dto/response"
	"seat-hold-ticketing/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	q queries.EventQueries
}

func NewEventHandler(q queries.EventQueries) *EventHandler {
	return &EventHandler{q: q}
}

// @Summary Event seat map
// @Description List the seats of an event with their current availability
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param eventId path int true "Event ID"
// @Success 200 {array} resdto.SeatResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /events/{eventId}/seats [get]
func (h *EventHandler) Seats(c *gin.Context) {
	eventID, ok := positiveIDParam(c, "eventId")
	if !ok {
		return
	}
	views, err := h.q.ListSeats(c.Request.Context(), eventID)
	if err != nil {
		writeBusinessError(c, err)
		return
	}
	res, err := resdto.FromSeatViews(views)
	if err != nil {
		writeBusinessError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
