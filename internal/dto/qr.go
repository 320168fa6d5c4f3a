package dto

// Response of GET /api/qr/{profileId}
type QRResponse struct {
	QR  string `json:"qr"` // data:image/png;base64,...
	URL string `json:"url"`
}
