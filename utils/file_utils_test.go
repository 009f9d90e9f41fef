package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateImageFileAcceptsImages(t *testing.T) {
	assert.NoError(t, ValidateImageFile("logo.png", "image/png"))
	assert.NoError(t, ValidateImageFile("photo.JPG", "image/jpeg"))
	assert.NoError(t, ValidateImageFile("icon.svg", "image/svg+xml"))
}

func TestValidateImageFileRejectsNonImages(t *testing.T) {
	assert.Error(t, ValidateImageFile("notes.pdf", "application/pdf"))
	assert.Error(t, ValidateImageFile("script.sh", "text/x-shellscript"))
	// Image extension but non-image MIME type
	assert.Error(t, ValidateImageFile("fake.png", "application/octet-stream"))
}

func TestCleanFilenameStripsPathComponents(t *testing.T) {
	assert.Equal(t, "passwd", cleanFilename("../../etc/passwd"))
	assert.Equal(t, "photo1.jpg", cleanFilename("photo 1!.jpg"))
}
