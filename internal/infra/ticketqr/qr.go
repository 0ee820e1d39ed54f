package ticketqr

import (
	"strconv"
	"strings"

	"seat-hold-ticketing/internal/pkg/errs"

	qrcode "github.com/skip2/go-qrcode"
)

const defaultSize = 256

type Generator struct {
	size  int
	level qrcode.RecoveryLevel
}

func NewGenerator() *Generator {
	return &Generator{size: defaultSize, level: qrcode.Medium}
}

// PNG renders content as a square PNG image.
func (g *Generator) PNG(content string) ([]byte, error) {
	if content == "" {
		return nil, errs.New("empty qr content")
	}
	png, err := qrcode.Encode(content, g.level, g.size)
	if err != nil {
		return nil, errs.Wrap(err, "encode qr code")
	}
	return png, nil
}

// Content is the text scanned at the gate, e.g. "TICKET:41:7:12,35".
func Content(bookingID, eventID int64, seatIDs []int64) string {
	seats := make([]string, len(seatIDs))
	for i, id := range seatIDs {
		seats[i] = strconv.FormatInt(id, 10)
	}
	return "TICKET:" + strconv.FormatInt(bookingID, 10) +
		":" + strconv.FormatInt(eventID, 10) +
		":" + strings.Join(seats, ",")
}
