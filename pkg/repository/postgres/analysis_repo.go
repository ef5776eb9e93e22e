package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rapt-app/rapt/pkg/analysis"
)

// AnalysisRepository stores engine results. Skills and gaps are kept as flat
// array columns for querying; the feedback report is a JSONB document.
type AnalysisRepository struct {
	pool *pgxpool.Pool
}

func NewAnalysisRepository(pool *pgxpool.Pool) (*AnalysisRepository, error) {
	r := &AnalysisRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *AnalysisRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS analyses (
	id UUID PRIMARY KEY,
	resume_id UUID NOT NULL REFERENCES resumes(id) ON DELETE CASCADE,
	score INT NOT NULL,
	skills TEXT[] NOT NULL,
	missing_skills TEXT[] NOT NULL,
	report JSONB NOT NULL,
	engine_version TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
`)
	return err
}

const analysisColumns = `a.id, a.resume_id, a.score, a.skills, a.missing_skills, a.report, a.engine_version, a.created_at`

func (r *AnalysisRepository) Create(ctx context.Context, a analysis.Analysis) (analysis.Analysis, error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	if a.Skills == nil {
		a.Skills = []string{}
	}
	if a.MissingSkills == nil {
		a.MissingSkills = []string{}
	}
	reportJSON, err := json.Marshal(a.Report)
	if err != nil {
		return analysis.Analysis{}, err
	}
	_, err = r.pool.Exec(ctx, `
INSERT INTO analyses (id, resume_id, score, skills, missing_skills, report, engine_version, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`, a.ID, a.ResumeID, a.Score, a.Skills, a.MissingSkills, reportJSON, a.EngineVersion, a.CreatedAt)
	if err != nil {
		return analysis.Analysis{}, err
	}
	return a, nil
}

func scanAnalysis(row pgx.Row) (analysis.Analysis, error) {
	var a analysis.Analysis
	var reportBytes []byte
	var created time.Time
	if err := row.Scan(&a.ID, &a.ResumeID, &a.Score, &a.Skills, &a.MissingSkills, &reportBytes, &a.EngineVersion, &created); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return analysis.Analysis{}, analysis.ErrNotFound
		}
		return analysis.Analysis{}, err
	}
	if err := json.Unmarshal(reportBytes, &a.Report); err != nil {
		return analysis.Analysis{}, err
	}
	a.CreatedAt = created.UTC()
	return a, nil
}

func (r *AnalysisRepository) GetByIDAny(ctx context.Context, id uuid.UUID) (analysis.Analysis, error) {
	return scanAnalysis(r.pool.QueryRow(ctx, `
SELECT `+analysisColumns+` FROM analyses a WHERE a.id = $1
`, id))
}

func (r *AnalysisRepository) GetByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (analysis.Analysis, error) {
	return scanAnalysis(r.pool.QueryRow(ctx, `
SELECT `+analysisColumns+`
FROM analyses a
JOIN resumes r ON r.id = a.resume_id
WHERE a.id = $1 AND r.owner_id = $2
`, id, ownerID))
}

func (r *AnalysisRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]analysis.Analysis, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
SELECT `+analysisColumns+`
FROM analyses a
JOIN resumes r ON r.id = a.resume_id
WHERE r.owner_id = $3
ORDER BY a.created_at DESC
LIMIT $1 OFFSET $2
`, limit, offset, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAnalyses(rows)
}

func (r *AnalysisRepository) ListAll(ctx context.Context, limit, offset int) ([]analysis.Analysis, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
SELECT `+analysisColumns+` FROM analyses a
ORDER BY a.created_at DESC
LIMIT $1 OFFSET $2
`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAnalyses(rows)
}

func (r *AnalysisRepository) ListByResumeForOwner(ctx context.Context, ownerID, resumeID uuid.UUID, limit, offset int) ([]analysis.Analysis, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
SELECT `+analysisColumns+`
FROM analyses a
JOIN resumes r ON r.id = a.resume_id
WHERE a.resume_id = $3 AND r.owner_id = $4
ORDER BY a.created_at DESC
LIMIT $1 OFFSET $2
`, limit, offset, resumeID, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAnalyses(rows)
}

func (r *AnalysisRepository) ListByResumeAny(ctx context.Context, resumeID uuid.UUID, limit, offset int) ([]analysis.Analysis, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
SELECT `+analysisColumns+` FROM analyses a
WHERE a.resume_id = $3
ORDER BY a.created_at DESC
LIMIT $1 OFFSET $2
`, limit, offset, resumeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAnalyses(rows)
}

func collectAnalyses(rows pgx.Rows) ([]analysis.Analysis, error) {
	var res []analysis.Analysis
	for rows.Next() {
		a, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, a)
	}
	return res, rows.Err()
}

func (r *AnalysisRepository) DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `
DELETE FROM analyses a
USING resumes r
WHERE a.id = $1 AND r.id = a.resume_id AND r.owner_id = $2
`, id, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return analysis.ErrNotFound
	}
	return nil
}

func (r *AnalysisRepository) DeleteAny(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM analyses WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return analysis.ErrNotFound
	}
	return nil
}
