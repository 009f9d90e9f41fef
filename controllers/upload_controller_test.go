package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/top5deutschland/top5_backend/utils"
)

// chdirTemp moves the working directory into a scratch dir so uploads
// land there instead of the package directory.
func chdirTemp(t *testing.T) {
	t.Helper()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { os.Chdir(orig) })
	require.NoError(t, utils.InitializeStorage())
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func multipartRequest(t *testing.T, e *echo.Echo, target, field string, files map[string][]byte) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for name, data := range files {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, name))
		contentType := mime.TypeByExtension(filepath.Ext(name))
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		header.Set("Content-Type", contentType)
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestUploadSingleStoresFile(t *testing.T) {
	chdirTemp(t)
	e := newTestEcho()
	uc := NewUploadController()

	c, rec := multipartRequest(t, e, "/api/upload", "image", map[string][]byte{"photo.png": pngBytes(t)})
	require.NoError(t, uc.UploadSingle(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success  bool   `json:"success"`
		URL      string `json:"url"`
		Filename string `json:"filename"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.True(t, strings.HasPrefix(resp.URL, "/uploads/"))
	assert.True(t, strings.HasSuffix(resp.Filename, "-photo.png"))
}

func TestUploadSingleRequiresImageField(t *testing.T) {
	chdirTemp(t)
	e := newTestEcho()
	uc := NewUploadController()

	c, rec := multipartRequest(t, e, "/api/upload", "file", map[string][]byte{"photo.png": pngBytes(t)})
	require.NoError(t, uc.UploadSingle(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadSingleRejectsNonImage(t *testing.T) {
	chdirTemp(t)
	e := newTestEcho()
	uc := NewUploadController()

	c, rec := multipartRequest(t, e, "/api/upload", "image", map[string][]byte{"doc.pdf": []byte("%PDF-1.4")})
	require.NoError(t, uc.UploadSingle(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Error)
}

func TestUploadMultiple(t *testing.T) {
	chdirTemp(t)
	e := newTestEcho()
	uc := NewUploadController()

	c, rec := multipartRequest(t, e, "/api/upload-multiple", "images", map[string][]byte{
		"a.png": pngBytes(t),
		"b.png": pngBytes(t),
	})
	require.NoError(t, uc.UploadMultiple(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success   bool     `json:"success"`
		URLs      []string `json:"urls"`
		Filenames []string `json:"filenames"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.URLs, 2)
	require.Len(t, resp.Filenames, 2)
	for _, url := range resp.URLs {
		assert.True(t, strings.HasPrefix(url, "/uploads/"))
	}
}

func TestUploadMultipleRejectsTooManyFiles(t *testing.T) {
	chdirTemp(t)
	e := newTestEcho()
	uc := NewUploadController()

	files := map[string][]byte{}
	data := pngBytes(t)
	for i := 0; i < MaxBatchUploadFiles+1; i++ {
		files[string(rune('a'+i))+".png"] = data
	}

	c, rec := multipartRequest(t, e, "/api/upload-multiple", "images", files)
	require.NoError(t, uc.UploadMultiple(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadMultipleAllOrNothing(t *testing.T) {
	chdirTemp(t)
	e := newTestEcho()
	uc := NewUploadController()

	c, rec := multipartRequest(t, e, "/api/upload-multiple", "images", map[string][]byte{
		"ok.png":  pngBytes(t),
		"bad.exe": []byte("MZ"),
	})
	require.NoError(t, uc.UploadMultiple(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealth(t *testing.T) {
	e := newTestEcho()
	uc := NewUploadController()

	c, rec := getRequest(e, "/api/health")
	require.NoError(t, uc.Health(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Status    string `json:"status"`
		Timestamp string `json:"timestamp"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	_, err := time.Parse(time.RFC3339, resp.Timestamp)
	assert.NoError(t, err)
}
