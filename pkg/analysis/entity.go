package analysis

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/rapt-app/rapt/pkg/engine"
)

// ErrNotFound covers both a missing analysis and one the actor cannot see.
var ErrNotFound = errors.New("analysis not found")

// Report is the JSON document stored alongside the flat score/skills
// columns: the feedback block plus the structural details that explain the
// score.
type Report struct {
	Feedback      engine.Feedback `json:"feedback"`
	SectionsFound []string        `json:"sectionsFound"`
	WordCount     int             `json:"wordCount"`
}

// Analysis is a persisted engine run for one resume.
type Analysis struct {
	ID            uuid.UUID `json:"id"`
	ResumeID      uuid.UUID `json:"resumeId"`
	Score         int       `json:"score"`
	Skills        []string  `json:"skills"`
	MissingSkills []string  `json:"missingSkills"`
	Report        Report    `json:"report"`
	EngineVersion string    `json:"engineVersion"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Repository is the persistence port for analyses. Owner-scoped methods see
// only analyses whose resume belongs to the owner; Any-methods are for
// admins.
type Repository interface {
	Create(ctx context.Context, a Analysis) (Analysis, error)
	GetByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (Analysis, error)
	GetByIDAny(ctx context.Context, id uuid.UUID) (Analysis, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Analysis, error)
	ListAll(ctx context.Context, limit, offset int) ([]Analysis, error)
	ListByResumeForOwner(ctx context.Context, ownerID, resumeID uuid.UUID, limit, offset int) ([]Analysis, error)
	ListByResumeAny(ctx context.Context, resumeID uuid.UUID, limit, offset int) ([]Analysis, error)
	DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error
	DeleteAny(ctx context.Context, id uuid.UUID) error
}
