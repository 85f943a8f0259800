package service

// QRCodeService defines the interface for QR code generation services
type QRCodeService interface {
	// GenerateTrackingQR generates a QR code image encoding a tracking ID
	GenerateTrackingQR(trackingID string) ([]byte, error)
}
