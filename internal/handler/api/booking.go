package api

import (
	"net/http"

	resdto "seat-hold-ticketing/internal/handler/dto/response"
	"seat-hold-ticketing/internal/handler/middleware"
	"seat-hold-ticketing/internal/infra/ticketqr"
	"seat-hold-ticketing/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type TicketRenderer interface {
	PNG(content string) ([]byte, error)
}

type BookingHandler struct {
	q       queries.BookingQueries
	tickets TicketRenderer
}

func NewBookingHandler(q queries.BookingQueries, tickets TicketRenderer) *BookingHandler {
	return &BookingHandler{q: q, tickets: tickets}
}

// @Summary Get booking
// @Description Get a booking with its seats. Only the owner or an admin can see it.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	view, ok := h.load(c)
	if !ok {
		return
	}
	res, err := resdto.FromBookingView(view)
	if err != nil {
		writeBusinessError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Booking ticket QR code
// @Description PNG QR code encoding the booking, event and seats
// @Tags bookings
// @Produce png
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Success 200 {file} binary
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id}/qr [get]
func (h *BookingHandler) QR(c *gin.Context) {
	view, ok := h.load(c)
	if !ok {
		return
	}

	seatIDs := make([]int64, len(view.Seats))
	for i, s := range view.Seats {
		seatIDs[i] = s.SeatID
	}
	png, err := h.tickets.PNG(ticketqr.Content(view.ID, view.EventID, seatIDs))
	if err != nil {
		writeBusinessError(c, err)
		return
	}
	c.Header("Cache-Control", "private, max-age=300")
	c.Data(http.StatusOK, "image/png", png)
}

func (h *BookingHandler) load(c *gin.Context) (*queries.BookingView, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthorized(c)
		return nil, false
	}
	id, ok := positiveIDParam(c, "id")
	if !ok {
		return nil, false
	}
	role, _ := middleware.GetUserRole(c)

	view, err := h.q.GetByID(c.Request.Context(), id, userID, role.IsAdmin())
	if err != nil {
		writeBusinessError(c, err)
		return nil, false
	}
	return view, true
}
