package qrcode

import (
	"encoding/json"
	"strings"

	"natours/config"
	"natours/internal/domain/entity"
	"natours/internal/domain/service"
	"natours/internal/errors"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize = 256
	ticketType  = "natours.ticket"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// ticketPayload is the text encoded into a ticket QR code
type ticketPayload struct {
	Type string `json:"type"`
	entity.Ticket
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return newQRCodeService(defaultSize, "")
	}

	return newQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func newQRCodeService(size int, errorCorrectionLevel string) *qrcodeService {
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(errorCorrectionLevel),
	}
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToLower(level) {
	case "l", "low":
		return qrcode.Low
	case "q", "high":
		return qrcode.High
	case "h", "highest":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateTicketQR renders a booking ticket as a PNG QR code
func (s *qrcodeService) GenerateTicketQR(ticket *entity.Ticket) ([]byte, error) {
	if ticket == nil || ticket.BookingID == uuid.Nil {
		return nil, errors.New("ticket must reference a booking")
	}

	jsonData, err := json.Marshal(ticketPayload{Type: ticketType, Ticket: *ticket})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal ticket")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseTicketQR decodes the scanned text of a ticket QR code
func (s *qrcodeService) ParseTicketQR(qrData string) (*entity.Ticket, error) {
	var payload ticketPayload
	if err := json.Unmarshal([]byte(qrData), &payload); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal ticket")
	}

	if payload.Type != ticketType {
		return nil, errors.Errorf("invalid QR code type: %s", payload.Type)
	}
	if payload.BookingID == uuid.Nil {
		return nil, errors.New("ticket has no booking id")
	}

	ticket := payload.Ticket

	return &ticket, nil
}
