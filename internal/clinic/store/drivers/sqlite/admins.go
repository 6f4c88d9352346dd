package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/clinic/internal/clinic/domain"
)

type adminsRepo struct {
	q querier
}

const adminColumns = `id, username, password_hash, role, created_at, updated_at`

func scanAdmin(row interface{ Scan(...any) error }) (domain.Admin, error) {
	var a domain.Admin
	var role string
	if err := row.Scan(&a.ID, &a.Username, &a.PasswordHash, &role, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return domain.Admin{}, err
	}
	a.Role = domain.Role(role)
	return a, nil
}

func (r *adminsRepo) GetAdminByID(ctx context.Context, id string) (domain.Admin, error) {
	a, err := scanAdmin(r.q.QueryRowContext(ctx,
		`SELECT `+adminColumns+` FROM admins WHERE id = ?`, id))
	if err != nil {
		return domain.Admin{}, mapNotFound(err)
	}
	return a, nil
}

func (r *adminsRepo) GetAdminByUsername(ctx context.Context, username string) (domain.Admin, error) {
	a, err := scanAdmin(r.q.QueryRowContext(ctx,
		`SELECT `+adminColumns+` FROM admins WHERE username = ?`, username))
	if err != nil {
		return domain.Admin{}, mapNotFound(err)
	}
	return a, nil
}

func (r *adminsRepo) ListAdmins(ctx context.Context) ([]domain.Admin, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT `+adminColumns+` FROM admins ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Admin{}
	for rows.Next() {
		a, err := scanAdmin(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *adminsRepo) CreateAdmin(ctx context.Context, a domain.Admin) error {
	now := stamp(a.CreatedAt)
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO admins (`+adminColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		a.ID, a.Username, a.PasswordHash, string(a.Role), now, now,
	)
	return mapConstraint(err)
}

func (r *adminsRepo) UpdateAdmin(ctx context.Context, a domain.Admin) error {
	return expectOne(r.q.ExecContext(ctx,
		`UPDATE admins SET username = ?, password_hash = ?, role = ?, updated_at = ? WHERE id = ?`,
		a.Username, a.PasswordHash, string(a.Role), time.Now().UTC(), a.ID,
	))
}

func (r *adminsRepo) DeleteAdmin(ctx context.Context, id string) error {
	return expectOne(r.q.ExecContext(ctx, `DELETE FROM admins WHERE id = ?`, id))
}

func (r *adminsRepo) HasRole(ctx context.Context, role domain.Role) (bool, error) {
	var n int
	err := r.q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM admins WHERE role = ?`, string(role)).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// stamp defaults a zero timestamp to now, in UTC.
func stamp(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now().UTC()
	}
	return t.UTC()
}
