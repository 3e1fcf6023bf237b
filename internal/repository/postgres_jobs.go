package repository

import (
	"context"
	"encoding/json"

	"sitebuilder/internal/domain/content"
	"sitebuilder/internal/domain/resume"
)

func (r *PostgresStore) CreateJob(ctx context.Context, job content.Job) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO jobs (id, title, skills, description, location, type, salary_range)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			skills = EXCLUDED.skills,
			description = EXCLUDED.description,
			location = EXCLUDED.location,
			type = EXCLUDED.type,
			salary_range = EXCLUDED.salary_range`,
		job.ID, job.Title, job.Skills, job.Description, job.Location, job.Type, job.SalaryRange,
	)
	return err
}

func (r *PostgresStore) ListJobs(ctx context.Context) ([]content.Job, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, title, skills, description, location, type, salary_range, created_at
		 FROM jobs
		 ORDER BY created_at ASC, id ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]content.Job, 0)
	for rows.Next() {
		var j content.Job
		if err := rows.Scan(&j.ID, &j.Title, &j.Skills, &j.Description, &j.Location, &j.Type, &j.SalaryRange, &j.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func nullableJSON(v any) (*string, error) {
	if v == nil {
		return nil, nil
	}
	s, err := marshalJSON(v)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *PostgresStore) CreateApplication(ctx context.Context, app content.Application) error {
	var parsed, score *string
	var err error
	if app.Parsed != nil {
		if parsed, err = nullableJSON(app.Parsed); err != nil {
			return err
		}
	}
	if app.Score != nil {
		if score, err = nullableJSON(app.Score); err != nil {
			return err
		}
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO applications (id, name, email, job_title, resume_path, parsed, score)
		 VALUES ($1, $2, $3, $4, $5, $6::jsonb, $7::jsonb)`,
		app.ID, app.Name, app.Email, app.JobTitle, app.ResumePath, parsed, score,
	)
	return err
}

func (r *PostgresStore) ListApplications(ctx context.Context) ([]content.Application, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, email, job_title, resume_path, parsed, score, created_at
		 FROM applications
		 ORDER BY created_at ASC, id ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]content.Application, 0)
	for rows.Next() {
		var (
			a                 content.Application
			parsedRaw, scoreR []byte
		)
		if err := rows.Scan(&a.ID, &a.Name, &a.Email, &a.JobTitle, &a.ResumePath, &parsedRaw, &scoreR, &a.CreatedAt); err != nil {
			return nil, err
		}
		if len(parsedRaw) > 0 {
			var p resume.ParsedResume
			if err := json.Unmarshal(parsedRaw, &p); err != nil {
				return nil, err
			}
			a.Parsed = &p
		}
		if len(scoreR) > 0 {
			var s resume.ScoreResult
			if err := json.Unmarshal(scoreR, &s); err != nil {
				return nil, err
			}
			a.Score = &s
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresStore) CreatePortfolio(ctx context.Context, p content.Portfolio) error {
	meta, err := marshalJSON(p.Meta)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx,
		`INSERT INTO portfolios (id, html, meta) VALUES ($1, $2, $3::jsonb)`,
		p.ID, p.HTML, meta,
	)
	return err
}

func (r *PostgresStore) GetPortfolio(ctx context.Context, id string) (content.Portfolio, error) {
	var (
		p   content.Portfolio
		raw []byte
	)
	row := r.db.QueryRow(ctx, `SELECT id, html, meta, created_at FROM portfolios WHERE id = $1`, id)
	if err := row.Scan(&p.ID, &p.HTML, &raw, &p.CreatedAt); err != nil {
		if isNoRows(err) {
			return content.Portfolio{}, ErrNotFound
		}
		return content.Portfolio{}, err
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &p.Meta); err != nil {
			return content.Portfolio{}, err
		}
	}
	return p, nil
}

func (r *PostgresStore) CountPortfolios(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM portfolios`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
