// controllers/upload_controller.go
package controllers

import (
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/top5deutschland/top5_backend/utils"
)

// MaxBatchUploadFiles caps one multi-upload request.
const MaxBatchUploadFiles = 10

// UploadController implements the standalone file relay: it accepts
// image uploads, stores them on local disk and returns public /uploads
// URLs. It has no access to the catalog.
type UploadController struct{}

func NewUploadController() *UploadController {
	return &UploadController{}
}

// The relay speaks its own flat wire format rather than the catalog
// API envelope; frontend upload widgets consume these shapes directly.
type relayUploadResult struct {
	Success  bool   `json:"success"`
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

type relayBatchResult struct {
	Success   bool     `json:"success"`
	URLs      []string `json:"urls"`
	Filenames []string `json:"filenames"`
}

type relayError struct {
	Error string `json:"error"`
}

type uploadedFile struct {
	URL      string
	Filename string
}

func storeUpload(file *multipart.FileHeader) (uploadedFile, error) {
	var out uploadedFile

	src, err := file.Open()
	if err != nil {
		return out, err
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return out, err
	}

	filename := uuid.New().String() + "-" + file.Filename
	url, err := utils.UploadFile(data, filename, file.Header.Get("Content-Type"))
	if err != nil {
		return out, err
	}

	if _, err := utils.GenerateImageThumbnail(data, filename); err != nil {
		logrus.WithError(err).WithField("file", filename).Warn("thumbnail generation failed")
	}

	return uploadedFile{URL: url, Filename: filename}, nil
}

// UploadSingle handles one image in the "image" form field.
func (uc *UploadController) UploadSingle(c echo.Context) error {
	file, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, relayError{Error: "Image file is required in the 'image' field"})
	}
	if file.Size > utils.MaxFileSize {
		return c.JSON(http.StatusBadRequest, relayError{Error: "File too large. Maximum size is 10MB"})
	}

	stored, err := storeUpload(file)
	if err != nil {
		return c.JSON(http.StatusBadRequest, relayError{Error: err.Error()})
	}

	return c.JSON(http.StatusOK, relayUploadResult{
		Success:  true,
		URL:      stored.URL,
		Filename: stored.Filename,
	})
}

// UploadMultiple handles up to ten images in the "images" form field.
// The batch is all-or-nothing on validation: one bad file rejects the
// request before anything is written.
func (uc *UploadController) UploadMultiple(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.JSON(http.StatusBadRequest, relayError{Error: "Multipart form with 'images' field is required"})
	}

	files := form.File["images"]
	if len(files) == 0 {
		return c.JSON(http.StatusBadRequest, relayError{Error: "At least one file is required in the 'images' field"})
	}
	if len(files) > MaxBatchUploadFiles {
		return c.JSON(http.StatusBadRequest, relayError{Error: "Too many files. Maximum is 10 per request"})
	}

	for _, file := range files {
		if file.Size > utils.MaxFileSize {
			return c.JSON(http.StatusBadRequest, relayError{Error: "File too large: " + file.Filename})
		}
		if err := utils.ValidateImageFile(file.Filename, file.Header.Get("Content-Type")); err != nil {
			return c.JSON(http.StatusBadRequest, relayError{Error: err.Error()})
		}
	}

	result := relayBatchResult{
		Success:   true,
		URLs:      make([]string, 0, len(files)),
		Filenames: make([]string, 0, len(files)),
	}
	for _, file := range files {
		stored, err := storeUpload(file)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, relayError{Error: "Failed to store " + file.Filename})
		}
		result.URLs = append(result.URLs, stored.URL)
		result.Filenames = append(result.Filenames, stored.Filename)
	}

	return c.JSON(http.StatusOK, result)
}

// Health is the relay liveness probe.
func (uc *UploadController) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
