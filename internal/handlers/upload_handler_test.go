package handlers

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"egramseva-backend/internal/schema"
	"egramseva-backend/internal/service"
)

type stubUploader struct {
	url string
	err error
}

func (s stubUploader) Upload(ctx context.Context, filename, contentType string, data io.Reader) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.url, nil
}

func newUploadRouter(uploader stubUploader, maxSize int64) *gin.Engine {
	editorService := service.NewEditorService(schema.DefaultCatalog(), newMemorySectionAPI(), uploader, nil)
	handler := NewUploadHandler(editorService, maxSize)
	router := gin.New()
	router.POST("/editor/uploads", handler.UploadImage)
	return router
}

func multipartUpload(t *testing.T, router *gin.Engine, filename, contentType, content string) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("failed to create part: %v", err)
	}
	io.Copy(part, strings.NewReader(content))
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/editor/uploads", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestUploadImageEndpoint(t *testing.T) {
	router := newUploadRouter(stubUploader{url: "https://cdn.example.in/photo.jpg"}, 1<<20)

	w := multipartUpload(t, router, "photo.jpg", "image/jpeg", "jpeg-bytes")
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "https://cdn.example.in/photo.jpg") {
		t.Fatalf("expected url in response, got %s", w.Body.String())
	}
}

func TestUploadImageEndpoint_MissingFile(t *testing.T) {
	router := newUploadRouter(stubUploader{url: "x"}, 1<<20)

	req := httptest.NewRequest(http.MethodPost, "/editor/uploads", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing file, got %d", w.Code)
	}
}

func TestUploadImageEndpoint_TooLarge(t *testing.T) {
	router := newUploadRouter(stubUploader{url: "x"}, 4)

	w := multipartUpload(t, router, "photo.png", "image/png", "more than four bytes")
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d", w.Code)
	}
}

func TestUploadImageEndpoint_BadExtension(t *testing.T) {
	router := newUploadRouter(stubUploader{url: "x"}, 1<<20)

	w := multipartUpload(t, router, "report.pdf", "application/pdf", "%PDF")
	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502 for rejected upload, got %d", w.Code)
	}
}

func TestUploadImageEndpoint_UploaderDisabled(t *testing.T) {
	editorService := service.NewEditorService(schema.DefaultCatalog(), newMemorySectionAPI(), nil, nil)
	handler := NewUploadHandler(editorService, 1<<20)
	router := gin.New()
	router.POST("/editor/uploads", handler.UploadImage)

	w := multipartUpload(t, router, "photo.jpg", "image/jpeg", "bytes")
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 when uploads are not configured, got %d", w.Code)
	}
}
