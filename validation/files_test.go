package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckImageSizeBoundary(t *testing.T) {
	// 5,242,880 bytes is exactly 5 MB and must pass
	assert.NoError(t, CheckImage(5242880, "image/png"))

	err := CheckImage(5242881, "image/png")
	assert.Error(t, err)

	var uerr *UploadError
	assert.True(t, errors.As(err, &uerr))
	assert.Equal(t, "Maximum file size is 5MB", uerr.Message)
}

func TestCheckImageContentType(t *testing.T) {
	assert.NoError(t, CheckImage(100, "image/jpeg"))
	assert.NoError(t, CheckImage(100, "image/webp"))

	err := CheckImage(100, "image/gif")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "image/gif")
}

func TestCheckResume(t *testing.T) {
	assert.NoError(t, CheckResume(10*1024*1024, "application/pdf"))

	err := CheckResume(10*1024*1024+1, "application/pdf")
	assert.Error(t, err)
	assert.Equal(t, "Maximum file size is 10MB", err.Error())

	err = CheckResume(100, "application/msword")
	assert.Error(t, err)
}
