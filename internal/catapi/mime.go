package catapi

import "strings"

const (
	MIMEJpeg = "image/jpeg"
	MIMEPng  = "image/png"
	MIMEGif  = "image/gif"
	MIMEWebp = "image/webp"
)

// PickMIMEType maps a Content-Type header to a supported upload type, defaulting to JPEG.
func PickMIMEType(contentType string) string {
	ct := strings.ToLower(contentType)
	switch {
	case strings.Contains(ct, "png"):
		return MIMEPng
	case strings.Contains(ct, "jpeg"), strings.Contains(ct, "jpg"):
		return MIMEJpeg
	case strings.Contains(ct, "gif"):
		return MIMEGif
	case strings.Contains(ct, "webp"):
		return MIMEWebp
	default:
		return MIMEJpeg
	}
}
