package analysis

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rapt-app/rapt/pkg/engine"
	"github.com/rapt-app/rapt/pkg/resume"
)

// UseCase covers creating and reading ATS analyses for stored resumes.
type UseCase interface {
	Create(ctx context.Context, actorID uuid.UUID, isAdmin bool, resumeID uuid.UUID) (Analysis, error)
	Get(ctx context.Context, actorID uuid.UUID, isAdmin bool, id uuid.UUID) (Analysis, error)
	List(ctx context.Context, actorID uuid.UUID, isAdmin bool, limit, offset int) ([]Analysis, error)
	ListByResume(ctx context.Context, actorID uuid.UUID, isAdmin bool, resumeID uuid.UUID, limit, offset int) ([]Analysis, error)
	Delete(ctx context.Context, actorID uuid.UUID, isAdmin bool, id uuid.UUID) error
}

type service struct {
	repo    Repository
	resumes resume.Repository
	eng     *engine.Engine
}

// NewService wires the deterministic engine to the persistence ports.
func NewService(repo Repository, resumes resume.Repository, eng *engine.Engine) UseCase {
	return &service{repo: repo, resumes: resumes, eng: eng}
}

func (s *service) Create(ctx context.Context, actorID uuid.UUID, isAdmin bool, resumeID uuid.UUID) (Analysis, error) {
	// Access check via resume ownership (unless admin).
	var err error
	if isAdmin {
		_, err = s.resumes.GetMetaAny(ctx, resumeID)
	} else {
		_, err = s.resumes.GetMetaForOwner(ctx, actorID, resumeID)
	}
	if err != nil {
		return Analysis{}, resume.ErrNotFound
	}

	parsed, err := s.resumes.GetParsed(ctx, resumeID)
	if err != nil {
		return Analysis{}, resume.ErrNotFound
	}

	// The engine is total: empty or garbage text still yields a result,
	// it just scores zero.
	res := s.eng.Analyze(parsed.Text)

	a := Analysis{
		ID:            uuid.New(),
		ResumeID:      resumeID,
		Score:         res.Score,
		Skills:        res.SkillsDetected,
		MissingSkills: res.MissingCoreSkills,
		Report: Report{
			Feedback:      res.Feedback,
			SectionsFound: res.SectionsFound,
			WordCount:     res.WordCount,
		},
		EngineVersion: res.EngineVersion,
		CreatedAt:     time.Now().UTC(),
	}
	return s.repo.Create(ctx, a)
}

func (s *service) Get(ctx context.Context, actorID uuid.UUID, isAdmin bool, id uuid.UUID) (Analysis, error) {
	if isAdmin {
		return s.repo.GetByIDAny(ctx, id)
	}
	return s.repo.GetByIDForOwner(ctx, actorID, id)
}

func (s *service) List(ctx context.Context, actorID uuid.UUID, isAdmin bool, limit, offset int) ([]Analysis, error) {
	if isAdmin {
		return s.repo.ListAll(ctx, limit, offset)
	}
	return s.repo.ListByOwner(ctx, actorID, limit, offset)
}

func (s *service) ListByResume(ctx context.Context, actorID uuid.UUID, isAdmin bool, resumeID uuid.UUID, limit, offset int) ([]Analysis, error) {
	if isAdmin {
		return s.repo.ListByResumeAny(ctx, resumeID, limit, offset)
	}
	return s.repo.ListByResumeForOwner(ctx, actorID, resumeID, limit, offset)
}

func (s *service) Delete(ctx context.Context, actorID uuid.UUID, isAdmin bool, id uuid.UUID) error {
	if isAdmin {
		return s.repo.DeleteAny(ctx, id)
	}
	return s.repo.DeleteForOwner(ctx, actorID, id)
}
