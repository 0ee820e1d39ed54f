package response

import (
	"time"

	"seat-hold-ticketing/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type BookingSeatResponse struct {
	SeatID   int64  `json:"seatId"`
	ZoneCode string `json:"zoneCode"`
	SeatNo   string `json:"seatNo"`
	Price    int64  `json:"price"`
}

type BookingResponse struct {
	ID            int64                 `json:"id"`
	EventID       int64                 `json:"eventId"`
	EventTitle    string                `json:"eventTitle"`
	UserID        int64                 `json:"userId"`
	PaymentTxID   string                `json:"paymentTxId"`
	PaymentStatus string                `json:"paymentStatus"`
	TotalAmount   int64                 `json:"totalAmount"`
	Seats         []BookingSeatResponse `json:"seats"`
	CreatedAt     time.Time             `json:"createdAt"`
}

func FromBookingView(v *queries.BookingView) (*BookingResponse, error) {
	var res BookingResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	if res.Seats == nil {
		res.Seats = []BookingSeatResponse{}
	}
	return &res, nil
}

type SeatResponse struct {
	ID           int64  `json:"id"`
	ZoneCode     string `json:"zoneCode"`
	SeatNo       string `json:"seatNo"`
	Price        int64  `json:"price"`
	Availability string `json:"availability"`
}

func FromSeatViews(views []queries.SeatView) ([]SeatResponse, error) {
	res := make([]SeatResponse, 0, len(views))
	if err := copier.Copy(&res, views); err != nil {
		return nil, err
	}
	if res == nil {
		res = []SeatResponse{}
	}
	return res, nil
}
