package service

import "github.com/google/uuid"

// QRCodeService renders share invites as QR codes so a list can be opened on
// another user's device.
type QRCodeService interface {
	// GenerateShareQR encodes a list invite and returns it as a PNG image.
	GenerateShareQR(listID uuid.UUID) ([]byte, error)

	// ParseShareQR decodes invite data scanned from a QR code and returns
	// the list ID it refers to.
	ParseShareQR(qrData string) (uuid.UUID, error)
}
