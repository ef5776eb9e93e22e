package handlers

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rapt-app/rapt/pkg/resume"
	"github.com/rapt-app/rapt/pkg/storage/blob"
)

type stubResumeRepo struct {
	meta      resume.Resume
	metaErr   error
	parsed    resume.Parsed
	parsedErr error
}

func (s *stubResumeRepo) Create(context.Context, resume.Resume) error     { return nil }
func (s *stubResumeRepo) SaveParsed(context.Context, resume.Parsed) error { return nil }

func (s *stubResumeRepo) GetParsed(context.Context, uuid.UUID) (resume.Parsed, error) {
	return s.parsed, s.parsedErr
}

func (s *stubResumeRepo) GetMetaForOwner(context.Context, uuid.UUID, uuid.UUID) (resume.Resume, error) {
	return s.meta, s.metaErr
}

func (s *stubResumeRepo) GetMetaAny(context.Context, uuid.UUID) (resume.Resume, error) {
	return s.meta, s.metaErr
}

func (s *stubResumeRepo) ListByOwner(context.Context, uuid.UUID, int, int) ([]resume.Resume, error) {
	return nil, nil
}

func (s *stubResumeRepo) ListAll(context.Context, int, int) ([]resume.Resume, error) {
	return nil, nil
}

func (s *stubResumeRepo) DeleteForOwner(context.Context, uuid.UUID, uuid.UUID) (resume.Resume, error) {
	return s.meta, s.metaErr
}

func (s *stubResumeRepo) DeleteAny(context.Context, uuid.UUID) (resume.Resume, error) {
	return s.meta, s.metaErr
}

func newResumesApp(t *testing.T, repo resume.Repository) *fiber.App {
	t.Helper()
	app := fiber.New()
	// Stand-in for the JWT middleware: the handlers only read the locals.
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userId", uuid.New().String())
		return c.Next()
	})
	h := NewResumesHandler(repo, blob.NewLocalStore(t.TempDir()), 1<<20)
	app.Post("/resumes", h.Upload)
	app.Get("/resumes/:id", h.Get)
	return app
}

func multipartFile(t *testing.T, filename string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestUploadUnsupportedExtension(t *testing.T) {
	app := newResumesApp(t, &stubResumeRepo{})
	body, contentType := multipartFile(t, "resume.odt", []byte("content"))

	req := httptest.NewRequest(http.MethodPost, "/resumes", body)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUploadBrokenDocument(t *testing.T) {
	app := newResumesApp(t, &stubResumeRepo{})
	body, contentType := multipartFile(t, "resume.pdf", []byte("not a pdf at all"))

	req := httptest.NewRequest(http.MethodPost, "/resumes", body)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUploadMissingFileField(t *testing.T) {
	app := newResumesApp(t, &stubResumeRepo{})

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/resumes", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetResumeNotFound(t *testing.T) {
	app := newResumesApp(t, &stubResumeRepo{metaErr: resume.ErrNotFound})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/resumes/"+uuid.New().String(), nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetResumeWithoutParsedText(t *testing.T) {
	id := uuid.New()
	app := newResumesApp(t, &stubResumeRepo{
		meta:      resume.Resume{ID: id, Filename: "cv.pdf"},
		parsedErr: resume.ErrNotFound,
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/resumes/"+id.String(), nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestGetResumeParsedLoadFailure(t *testing.T) {
	id := uuid.New()
	app := newResumesApp(t, &stubResumeRepo{
		meta:      resume.Resume{ID: id, Filename: "cv.pdf"},
		parsedErr: errors.New("connection reset"),
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/resumes/"+id.String(), nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}
