package service

import "natours/internal/domain/entity"

// QRCodeService defines the interface for booking ticket QR codes
type QRCodeService interface {
	// GenerateTicketQR encodes ticket as a PNG QR code
	GenerateTicketQR(ticket *entity.Ticket) ([]byte, error)

	// ParseTicketQR decodes the text content of a ticket QR code
	ParseTicketQR(qrData string) (*entity.Ticket, error)
}
