package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/clinic/internal/clinic/domain"
)

type revokedTokensRepo struct {
	q querier
}

func (r *revokedTokensRepo) RevokeToken(ctx context.Context, t domain.RevokedToken) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO revoked_tokens (fingerprint, expires_at) VALUES (?, ?)
		 ON CONFLICT (fingerprint) DO NOTHING`,
		t.Fingerprint, t.ExpiresAt.Unix(),
	)
	return err
}

func (r *revokedTokensRepo) IsRevoked(ctx context.Context, fingerprint string) (bool, error) {
	var n int
	err := r.q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM revoked_tokens WHERE fingerprint = ?`, fingerprint).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *revokedTokensRepo) DeleteExpiredRevokedTokens(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.q.ExecContext(ctx,
		`DELETE FROM revoked_tokens WHERE expires_at <= ?`, now.Unix())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
