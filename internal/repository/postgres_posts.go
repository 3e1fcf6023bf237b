package repository

import (
	"context"

	"sitebuilder/internal/domain/content"
)

func (r *PostgresStore) CreatePost(ctx context.Context, post content.BlogPost) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO blog_posts (id, title, content, summary, date) VALUES ($1, $2, $3, $4, $5)`,
		post.ID, post.Title, post.Content, post.Summary, post.Date,
	)
	return err
}

func (r *PostgresStore) GetPost(ctx context.Context, id string) (content.BlogPost, error) {
	var p content.BlogPost
	row := r.db.QueryRow(ctx,
		`SELECT id, title, content, summary, date, created_at FROM blog_posts WHERE id = $1`, id)
	if err := row.Scan(&p.ID, &p.Title, &p.Content, &p.Summary, &p.Date, &p.CreatedAt); err != nil {
		if isNoRows(err) {
			return content.BlogPost{}, ErrNotFound
		}
		return content.BlogPost{}, err
	}
	return p, nil
}

func (r *PostgresStore) ListPosts(ctx context.Context) ([]content.BlogPost, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, title, content, summary, date, created_at FROM blog_posts ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]content.BlogPost, 0)
	for rows.Next() {
		var p content.BlogPost
		if err := rows.Scan(&p.ID, &p.Title, &p.Content, &p.Summary, &p.Date, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresStore) CreateTestimonial(ctx context.Context, t content.Testimonial) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO testimonials (id, client, quote, author) VALUES ($1, $2, $3, $4)`,
		t.ID, t.Client, t.Quote, t.Author,
	)
	return err
}

func (r *PostgresStore) ListTestimonials(ctx context.Context) ([]content.Testimonial, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, client, quote, author, created_at FROM testimonials ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]content.Testimonial, 0)
	for rows.Next() {
		var t content.Testimonial
		if err := rows.Scan(&t.ID, &t.Client, &t.Quote, &t.Author, &t.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresStore) AppendFAQ(ctx context.Context, e content.FAQEntry) error {
	_, err := r.db.Exec(ctx, `INSERT INTO faq_entries (q, a) VALUES ($1, $2)`, e.Q, e.A)
	return err
}

func (r *PostgresStore) ListFAQ(ctx context.Context) ([]content.FAQEntry, error) {
	return r.queryFAQ(ctx, `SELECT q, a, created_at FROM faq_entries ORDER BY id ASC`)
}

func (r *PostgresStore) RecentFAQ(ctx context.Context, limit int) ([]content.FAQEntry, error) {
	if limit <= 0 {
		return []content.FAQEntry{}, nil
	}
	return r.queryFAQ(ctx,
		`SELECT q, a, created_at FROM (
			SELECT id, q, a, created_at FROM faq_entries ORDER BY id DESC LIMIT $1
		 ) recent ORDER BY id ASC`,
		limit,
	)
}

func (r *PostgresStore) queryFAQ(ctx context.Context, query string, args ...any) ([]content.FAQEntry, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]content.FAQEntry, 0)
	for rows.Next() {
		var e content.FAQEntry
		if err := rows.Scan(&e.Q, &e.A, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresStore) CreateMessage(ctx context.Context, m content.ContactMessage) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO contact_messages (id, name, email, message) VALUES ($1, $2, $3, $4)`,
		m.ID, m.Name, m.Email, m.Message,
	)
	return err
}

func (r *PostgresStore) ListMessages(ctx context.Context) ([]content.ContactMessage, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, email, message, created_at FROM contact_messages ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]content.ContactMessage, 0)
	for rows.Next() {
		var m content.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Message, &m.Created); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
