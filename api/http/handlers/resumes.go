package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/rapt-app/rapt/api/http/presenter"
	"github.com/rapt-app/rapt/pkg/resume"
	"github.com/rapt-app/rapt/pkg/storage/blob"
)

type ResumesHandler struct {
	repo     resume.Repository
	store    blob.Store
	maxBytes int64
}

func NewResumesHandler(repo resume.Repository, store blob.Store, maxBytes int64) *ResumesHandler {
	if maxBytes <= 0 {
		maxBytes = 15 << 20 // 15MB
	}
	return &ResumesHandler{repo: repo, store: store, maxBytes: maxBytes}
}

// Upload accepts a resume file, stores the original bytes in the blob store
// and the extracted text in the database.
// @Summary Upload resume
// @Description Accepts PDF/DOCX, stores the file and extracts text for analysis.
// @Tags        resumes
// @Accept      multipart/form-data
// @Produce     json
// @Param       file formData file true "resume file (PDF/DOCX)"
// @Security    BearerAuth
// @Success     201 {object} map[string]any
// @Failure     400 {object} presenter.ErrorResponse
// @Failure     401 {object} presenter.ErrorResponse
// @Failure     500 {object} presenter.ErrorResponse
// @Router      /resumes [post]
func (h *ResumesHandler) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return presenter.Error(c, http.StatusBadRequest, "file is required (pdf or docx)")
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if ext != ".pdf" && ext != ".docx" {
		return presenter.Error(c, http.StatusBadRequest, resume.ErrUnsupportedFormat.Error())
	}
	file, err := fh.Open()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "failed to open uploaded file")
	}
	defer file.Close()
	data, err := readAtMost(file, h.maxBytes)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}

	// Extract text first: a broken document should fail before anything is
	// persisted.
	txt, err := resume.ExtractText(fh.Filename, data)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, fmt.Sprintf("failed to parse resume: %v", err))
	}

	id := uuid.New()
	key := id.String() + ext
	if err := h.store.Put(c.Context(), key, data, fh.Header.Get("Content-Type")); err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to store file")
	}

	ownerIDStr, _ := c.Locals("userId").(string)
	ownerID, _ := uuid.Parse(ownerIDStr)
	meta := resume.Resume{
		ID:         id,
		OwnerID:    ownerID,
		Filename:   fh.Filename,
		MimeType:   fh.Header.Get("Content-Type"),
		Size:       fh.Size,
		StorageKey: key,
	}
	if err := h.repo.Create(c.Context(), meta); err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to save metadata")
	}
	if err := h.repo.SaveParsed(c.Context(), resume.Parsed{ResumeID: id, Text: txt}); err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to save parsed text")
	}
	return presenter.JSON(c, http.StatusCreated, fiber.Map{
		"id":       id.String(),
		"filename": fh.Filename,
		"sizeB":    fh.Size,
	})
}

// List returns the user's resumes (all of them for admins).
// @Summary List resumes
// @Tags    resumes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resume.Resume
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /resumes [get]
func (h *ResumesHandler) List(c *fiber.Ctx) error {
	isAdmin, _ := c.Locals("isAdmin").(bool)
	userIDStr, _ := c.Locals("userId").(string)
	uid, _ := uuid.Parse(userIDStr)
	limit, offset := parseLimitOffset(c, 50)
	var items []resume.Resume
	var err error
	if isAdmin {
		items, err = h.repo.ListAll(c.Context(), limit, offset)
	} else {
		items, err = h.repo.ListByOwner(c.Context(), uid, limit, offset)
	}
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list resumes")
	}
	return presenter.JSON(c, http.StatusOK, items)
}

// Get returns resume metadata and the extracted text.
// @Summary Get resume
// @Tags    resumes
// @Produce json
// @Param   id path string true "resume ID (UUID)"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /resumes/{id} [get]
func (h *ResumesHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	meta, err := h.getMeta(c, id)
	if err != nil {
		return presenter.Error(c, http.StatusNotFound, "resume not found")
	}
	parsed, err := h.repo.GetParsed(c.Context(), id)
	if err != nil && !errors.Is(err, resume.ErrNotFound) {
		// no parsed text is fine, a failing repository is not
		return presenter.Error(c, http.StatusInternalServerError, "failed to load parsed text")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"meta":   meta,
		"parsed": parsed.Text,
	})
}

// Download returns the original resume file.
// @Summary Download resume file
// @Tags    resumes
// @Produce application/octet-stream
// @Param   id path string true "resume ID (UUID)"
// @Security BearerAuth
// @Success 200 {file} file
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /resumes/{id}/file [get]
func (h *ResumesHandler) Download(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	meta, err := h.getMeta(c, id)
	if err != nil {
		return presenter.Error(c, http.StatusNotFound, "resume not found")
	}
	data, err := h.store.Get(c.Context(), meta.StorageKey)
	if err != nil {
		if errors.Is(err, blob.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "file not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to read file")
	}
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, meta.Filename))
	if meta.MimeType != "" {
		c.Set(fiber.HeaderContentType, meta.MimeType)
	}
	return c.Send(data)
}

// Delete removes a resume, its analyses (via cascade) and the stored file.
// @Summary Delete resume
// @Tags    resumes
// @Param   id path string true "resume ID (UUID)"
// @Security BearerAuth
// @Success 204 {object} nil
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /resumes/{id} [delete]
func (h *ResumesHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	isAdmin, _ := c.Locals("isAdmin").(bool)
	userIDStr, _ := c.Locals("userId").(string)
	uid, _ := uuid.Parse(userIDStr)
	var meta resume.Resume
	if isAdmin {
		meta, err = h.repo.DeleteAny(c.Context(), id)
	} else {
		meta, err = h.repo.DeleteForOwner(c.Context(), uid, id)
	}
	if err != nil {
		return presenter.Error(c, http.StatusNotFound, "resume not found")
	}
	_ = h.store.Delete(c.Context(), meta.StorageKey)
	return c.SendStatus(http.StatusNoContent)
}

func (h *ResumesHandler) getMeta(c *fiber.Ctx, id uuid.UUID) (resume.Resume, error) {
	isAdmin, _ := c.Locals("isAdmin").(bool)
	userIDStr, _ := c.Locals("userId").(string)
	uid, _ := uuid.Parse(userIDStr)
	if isAdmin {
		return h.repo.GetMetaAny(c.Context(), id)
	}
	return h.repo.GetMetaForOwner(c.Context(), uid, id)
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("file too large: limit is %d bytes", max)
	}
	return b, nil
}
