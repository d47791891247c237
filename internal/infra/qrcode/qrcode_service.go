// Package qrcode renders shopping-list share invites as QR code images.
package qrcode

import (
	"encoding/json"
	"fmt"

	"shopsync/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// ShareInvite is the payload encoded into a share QR code.
type ShareInvite struct {
	ListID string `json:"list_id"`
	Type   string `json:"type"`
}

const inviteType = "share"

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateShareQR encodes a list invite as a PNG image.
func (s *qrcodeService) GenerateShareQR(listID uuid.UUID) ([]byte, error) {
	invite := ShareInvite{
		ListID: listID.String(),
		Type:   inviteType,
	}

	jsonData, err := json.Marshal(invite)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal share invite: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseShareQR decodes scanned invite data and returns the list ID.
func (s *qrcodeService) ParseShareQR(qrData string) (uuid.UUID, error) {
	var invite ShareInvite
	if err := json.Unmarshal([]byte(qrData), &invite); err != nil {
		return uuid.Nil, fmt.Errorf("failed to unmarshal share invite: %w", err)
	}

	if invite.Type != inviteType {
		return uuid.Nil, fmt.Errorf("invalid QR code type: %s", invite.Type)
	}

	listID, err := uuid.Parse(invite.ListID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse list ID: %w", err)
	}

	return listID, nil
}
