package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"sitebuilder/internal/database"
	"sitebuilder/internal/domain/content"
)

type PostgresStore struct {
	db database.DB
}

func NewPostgresStore(db database.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func NewPostgresBackedStore(db database.DB) *Store {
	p := NewPostgresStore(db)
	return &Store{
		Pages:        p,
		Jobs:         p,
		Applications: p,
		Portfolios:   p,
		Posts:        p,
		Testimonials: p,
		FAQ:          p,
		Themes:       p,
		Messages:     p,
		Analytics:    p,
		ping:         db.Ping,
	}
}

func isNoRows(err error) bool {
	return errors.Is(err, database.ErrNoRows) || errors.Is(err, sql.ErrNoRows)
}

func marshalJSON(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func unmarshalMap(b []byte) (map[string]any, error) {
	out := map[string]any{}
	if len(b) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresStore) GetPage(ctx context.Context, name string) (content.Page, error) {
	var (
		p   content.Page
		raw []byte
	)
	row := r.db.QueryRow(ctx, `SELECT name, content, created_at FROM pages WHERE name = $1`, name)
	if err := row.Scan(&p.Name, &raw, &p.CreatedAt); err != nil {
		if isNoRows(err) {
			return content.Page{}, ErrNotFound
		}
		return content.Page{}, err
	}
	c, err := unmarshalMap(raw)
	if err != nil {
		return content.Page{}, err
	}
	p.Content = c
	return p, nil
}

func (r *PostgresStore) PutPage(ctx context.Context, page content.Page) error {
	raw, err := marshalJSON(page.Content)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx,
		`INSERT INTO pages (name, content) VALUES ($1, $2::jsonb)
		 ON CONFLICT (name) DO UPDATE SET content = EXCLUDED.content`,
		page.Name, raw,
	)
	return err
}

func (r *PostgresStore) ListPages(ctx context.Context) ([]content.Page, error) {
	rows, err := r.db.Query(ctx, `SELECT name, content, created_at FROM pages ORDER BY created_at ASC, name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]content.Page, 0)
	for rows.Next() {
		var (
			p   content.Page
			raw []byte
		)
		if err := rows.Scan(&p.Name, &raw, &p.CreatedAt); err != nil {
			return nil, err
		}
		if p.Content, err = unmarshalMap(raw); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresStore) PutAnalytics(ctx context.Context, a content.Analytics) error {
	raw, err := marshalJSON(a.Value)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx,
		`INSERT INTO analytics (key, value, updated_at) VALUES ($1, $2::jsonb, now())
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		a.Key, raw,
	)
	return err
}

func (r *PostgresStore) GetAnalytics(ctx context.Context, key string) (content.Analytics, error) {
	var (
		a   content.Analytics
		raw []byte
	)
	row := r.db.QueryRow(ctx, `SELECT key, value, updated_at FROM analytics WHERE key = $1`, key)
	if err := row.Scan(&a.Key, &raw, &a.UpdatedAt); err != nil {
		if isNoRows(err) {
			return content.Analytics{}, ErrNotFound
		}
		return content.Analytics{}, err
	}
	v, err := unmarshalMap(raw)
	if err != nil {
		return content.Analytics{}, err
	}
	a.Value = v
	return a, nil
}

func (r *PostgresStore) PutTheme(ctx context.Context, t content.Theme) error {
	raw, err := marshalJSON(t.Palette)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx,
		`INSERT INTO themes (tone, palette) VALUES ($1, $2::jsonb)
		 ON CONFLICT (tone) DO UPDATE SET palette = EXCLUDED.palette`,
		t.Tone, raw,
	)
	return err
}

func (r *PostgresStore) GetTheme(ctx context.Context, tone string) (content.Theme, error) {
	var (
		t   content.Theme
		raw []byte
	)
	row := r.db.QueryRow(ctx, `SELECT tone, palette FROM themes WHERE tone = $1`, tone)
	if err := row.Scan(&t.Tone, &raw); err != nil {
		if isNoRows(err) {
			return content.Theme{}, ErrNotFound
		}
		return content.Theme{}, err
	}
	p, err := unmarshalMap(raw)
	if err != nil {
		return content.Theme{}, err
	}
	t.Palette = p
	return t, nil
}

func (r *PostgresStore) ListThemes(ctx context.Context) ([]content.Theme, error) {
	rows, err := r.db.Query(ctx, `SELECT tone, palette FROM themes ORDER BY created_at ASC, tone ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]content.Theme, 0)
	for rows.Next() {
		var (
			t   content.Theme
			raw []byte
		)
		if err := rows.Scan(&t.Tone, &raw); err != nil {
			return nil, err
		}
		if t.Palette, err = unmarshalMap(raw); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
