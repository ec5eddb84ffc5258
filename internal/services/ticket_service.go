package services

import (
	"bytes"
	"fmt"

	"railway/internal/domain"
	"railway/internal/domain/models"
	"railway/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// TicketService renders printable e-tickets for owned bookings.
type TicketService struct {
	Bookings BookingService
}

// ExportTicket returns PDF bytes and a suggested filename.
func (s TicketService) ExportTicket(userID, bookingID int64) ([]byte, string, error) {
	d, err := s.Bookings.Detail(userID, bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent("ticket", "export", fmt.Sprintf("booking_id=%d", bookingID))
	return buildTicketPDF(d)
}

func buildTicketPDF(d models.BookingDetail) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Railway E-Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "RAILWAY E-TICKET")
	pdf.Ln(14)

	pdf.SetFont("Courier", "", 12)
	lines := []string{
		fmt.Sprintf("Booking ID  : %d", d.BookingID),
		fmt.Sprintf("Train       : %s", safe(d.TrainName)),
		fmt.Sprintf("From        : %s", safe(d.Source)),
		fmt.Sprintf("To          : %s", safe(d.Destination)),
		fmt.Sprintf("Travel date : %s", safe(d.BookingDate)),
	}
	for _, line := range lines {
		pdf.Cell(0, 8, line)
		pdf.Ln(8)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.Cell(0, 8, "Carry a valid photo ID while travelling.")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", domain.InternalError{Msg: "ticket rendering failed", Err: err}
	}
	return buf.Bytes(), fmt.Sprintf("ticket_%d.pdf", d.BookingID), nil
}

func safe(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
