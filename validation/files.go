package validation

import "fmt"

// File caps, checked at selection time before any network round trip.
const (
	MaxImageBytes  = 5 * 1024 * 1024
	MaxResumeBytes = 10 * 1024 * 1024
)

var imageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

var resumeTypes = map[string]bool{
	"application/pdf": true,
}

// UploadError marks a rejected file selection. It is raised before any
// storage call, so a rejection never touches form or record state.
type UploadError struct {
	Message string
}

func (e *UploadError) Error() string {
	return e.Message
}

// CheckImage validates an image selection against the 5 MB cap and the
// JPG/PNG/WEBP allow-list.
func CheckImage(size int64, contentType string) error {
	if size > MaxImageBytes {
		return &UploadError{Message: "Maximum file size is 5MB"}
	}
	if !imageTypes[contentType] {
		return &UploadError{Message: fmt.Sprintf("Only JPG, PNG, and WEBP files are allowed (got %s)", contentType)}
	}
	return nil
}

// CheckResume validates a resume selection against the 10 MB cap and the
// PDF allow-list.
func CheckResume(size int64, contentType string) error {
	if size > MaxResumeBytes {
		return &UploadError{Message: "Maximum file size is 10MB"}
	}
	if !resumeTypes[contentType] {
		return &UploadError{Message: fmt.Sprintf("Only PDF files are allowed (got %s)", contentType)}
	}
	return nil
}
