package tenant

import (
	"context"
	"database/sql"
	"errors"
)

// NOTE: This repository assumes the following tables exist:
// - users (id, nick)
// - domains (id, host, client_secret UNIQUE, user_id REFERENCES users)

type PostgresRepo struct {
	db *sql.DB
}

func NewPostgresRepo(db *sql.DB) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (r *PostgresRepo) FindBySecret(ctx context.Context, secret string) (Tenant, error) {
	const q = `
SELECT d.id, d.host, d.client_secret, u.id, u.nick
FROM domains d
JOIN users u ON u.id = d.user_id
WHERE d.client_secret = $1
LIMIT 1
`
	var t Tenant
	if err := r.db.QueryRowContext(ctx, q, secret).Scan(
		&t.ID,
		&t.Host,
		&t.ClientSecret,
		&t.UserID,
		&t.UserNick,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Tenant{}, ErrNotFound
		}
		return Tenant{}, err
	}
	return t, nil
}
