package resume

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Resume holds metadata about an uploaded document. The original bytes live
// in the blob store under StorageKey; the extracted text lives in Parsed.
type Resume struct {
	ID         uuid.UUID `json:"id"`
	OwnerID    uuid.UUID `json:"ownerId,omitempty"`
	Filename   string    `json:"filename"`
	MimeType   string    `json:"mimeType"`
	Size       int64     `json:"size"`
	StorageKey string    `json:"storageKey,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Parsed is the text extracted from a resume document.
type Parsed struct {
	ResumeID uuid.UUID
	Text     string
}

// Repository is the persistence port for resumes and their extracted text.
type Repository interface {
	Create(ctx context.Context, r Resume) error
	SaveParsed(ctx context.Context, p Parsed) error
	GetParsed(ctx context.Context, resumeID uuid.UUID) (Parsed, error)
	// meta
	GetMetaForOwner(ctx context.Context, ownerID, id uuid.UUID) (Resume, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Resume, error)
	// admin
	GetMetaAny(ctx context.Context, id uuid.UUID) (Resume, error)
	ListAll(ctx context.Context, limit, offset int) ([]Resume, error)
	// delete returns the removed meta so the caller can clean up the blob
	DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) (Resume, error)
	DeleteAny(ctx context.Context, id uuid.UUID) (Resume, error)
}
