package posts

import (
	"context"
	"database/sql"
	"errors"
)

// NOTE: This repository assumes the following tables exist:
// - posts (id, content, img, user_id, created_at)
// - hashtags (id, title UNIQUE)
// - post_hashtags (post_id, hashtag_id)

type PostgresRepo struct {
	db *sql.DB
}

func NewPostgresRepo(db *sql.DB) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (r *PostgresRepo) FindPostsByUserID(ctx context.Context, userID int64) ([]Post, error) {
	const q = `
SELECT id, content, COALESCE(img, ''), user_id, created_at
FROM posts
WHERE user_id = $1
ORDER BY created_at DESC, id DESC
`
	return r.queryPosts(ctx, q, userID)
}

func (r *PostgresRepo) FindPostsByHashtag(ctx context.Context, title string) ([]Post, error) {
	h, err := r.findHashtag(ctx, title)
	if err != nil {
		return nil, err
	}

	const q = `
SELECT p.id, p.content, COALESCE(p.img, ''), p.user_id, p.created_at
FROM posts p
JOIN post_hashtags ph ON ph.post_id = p.id
WHERE ph.hashtag_id = $1
ORDER BY p.created_at DESC, p.id DESC
`
	return r.queryPosts(ctx, q, h.ID)
}

func (r *PostgresRepo) findHashtag(ctx context.Context, title string) (Hashtag, error) {
	const q = `
SELECT id, title
FROM hashtags
WHERE title = $1
LIMIT 1
`
	var h Hashtag
	if err := r.db.QueryRowContext(ctx, q, title).Scan(&h.ID, &h.Title); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Hashtag{}, ErrNotFound
		}
		return Hashtag{}, err
	}
	return h, nil
}

func (r *PostgresRepo) queryPosts(ctx context.Context, q string, args ...any) ([]Post, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Post, 0)
	for rows.Next() {
		var p Post
		if err := rows.Scan(
			&p.ID,
			&p.Content,
			&p.Img,
			&p.UserID,
			&p.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
