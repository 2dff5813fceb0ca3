package service

// QRCodeService renders share codes for public pages.
type QRCodeService interface {
	// ProjectQR returns a PNG QR code that links to the public page of slug.
	ProjectQR(slug string) ([]byte, error)

	// ProjectURL is the link encoded by ProjectQR.
	ProjectURL(slug string) string
}
