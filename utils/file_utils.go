package utils

import (
	"bytes"
	"fmt"
	"image/jpeg"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/disintegration/imaging"
)

const (
	// Base directory for storing uploaded files
	uploadBaseDir = "uploads"
	// Base URL for serving files
	baseURL = "/uploads"
	// MaxFileSize is the upload size cap (10MB)
	MaxFileSize = 10 * 1024 * 1024
)

// Allowed image extensions
var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".svg":  true,
}

// cleanFilename removes any potentially dangerous characters from the filename
func cleanFilename(filename string) string {
	// Remove any path components
	filename = filepath.Base(filename)
	// Remove any non-alphanumeric characters except for dots and hyphens
	reg := regexp.MustCompile(`[^a-zA-Z0-9.-]`)
	return reg.ReplaceAllString(filename, "")
}

// ValidateImageFile checks extension and declared MIME type. Only
// images are accepted anywhere in the system.
func ValidateImageFile(filename, contentType string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedImageExts[ext] {
		return fmt.Errorf("unsupported image format. Allowed formats: jpg, jpeg, png, gif, webp, svg")
	}
	if contentType != "" && !strings.HasPrefix(contentType, "image/") {
		return fmt.Errorf("only image files are allowed")
	}
	return nil
}

// InitializeStorage creates necessary directories for file storage
func InitializeStorage() error {
	dirs := []string{
		uploadBaseDir,
		filepath.Join(uploadBaseDir, "providers"),
		filepath.Join(uploadBaseDir, "gallery"),
		filepath.Join(uploadBaseDir, "reviews"),
		filepath.Join(uploadBaseDir, "thumbnails"),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %v", dir, err)
		}
	}
	return nil
}

// UploadFile saves a file to local storage and returns the public URL.
func UploadFile(fileData []byte, filename string, contentType string) (string, error) {
	return UploadFileToPath(fileData, filename, contentType, "")
}

// UploadFileToPath saves a file to a specific subdirectory and returns the URL
func UploadFileToPath(fileData []byte, filename string, contentType string, subDir string) (string, error) {
	// Validate file size
	if len(fileData) > MaxFileSize {
		return "", fmt.Errorf("file too large. Maximum size is %d bytes", MaxFileSize)
	}

	// Clean and validate filename
	filename = cleanFilename(filename)
	if err := ValidateImageFile(filename, contentType); err != nil {
		return "", err
	}

	fullPath := filepath.Join(uploadBaseDir, subDir, filename)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create directory %s: %v", filepath.Dir(fullPath), err)
	}

	// Write the file with restricted permissions
	if err := os.WriteFile(fullPath, fileData, 0644); err != nil {
		return "", fmt.Errorf("failed to write file %s: %v", fullPath, err)
	}

	if subDir == "" {
		return fmt.Sprintf("%s/%s", baseURL, filename), nil
	}
	return fmt.Sprintf("%s/%s/%s", baseURL, strings.TrimPrefix(subDir, "uploads/"), filename), nil
}

// GenerateImageThumbnail produces a 320px-wide JPEG thumbnail for an
// uploaded image and saves it under uploads/thumbnails. SVG and other
// undecodable formats are skipped without error.
func GenerateImageThumbnail(fileData []byte, filename string) (string, error) {
	img, err := imaging.Decode(bytes.NewReader(fileData))
	if err != nil {
		// Not a bitmap we can decode; no thumbnail.
		return "", nil
	}

	// Resize to max width of 320px while maintaining aspect ratio
	resized := imaging.Resize(img, 320, 0, imaging.Lanczos)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: 85}); err != nil {
		return "", fmt.Errorf("failed to encode thumbnail: %v", err)
	}

	base := strings.TrimSuffix(cleanFilename(filename), filepath.Ext(filename))
	thumbnailPath := filepath.Join(uploadBaseDir, "thumbnails", base+".jpg")
	if err := os.MkdirAll(filepath.Dir(thumbnailPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create thumbnail directory: %v", err)
	}
	if err := os.WriteFile(thumbnailPath, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("failed to save thumbnail: %v", err)
	}

	return fmt.Sprintf("%s/thumbnails/%s.jpg", baseURL, base), nil
}
