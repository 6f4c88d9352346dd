package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/clinic/internal/clinic/domain"
)

type doctorsRepo struct {
	q querier
}

const doctorColumns = `id, full_name, phone_number, special, created_at, updated_at`

func scanDoctor(row interface{ Scan(...any) error }) (domain.Doctor, error) {
	var d domain.Doctor
	err := row.Scan(&d.ID, &d.FullName, &d.PhoneNumber, &d.Special, &d.CreatedAt, &d.UpdatedAt)
	return d, err
}

func (r *doctorsRepo) GetDoctorByID(ctx context.Context, id string) (domain.Doctor, error) {
	d, err := scanDoctor(r.q.QueryRowContext(ctx,
		`SELECT `+doctorColumns+` FROM doctors WHERE id = ?`, id))
	if err != nil {
		return domain.Doctor{}, mapNotFound(err)
	}
	return d, nil
}

func (r *doctorsRepo) GetDoctorByPhone(ctx context.Context, phone string) (domain.Doctor, error) {
	d, err := scanDoctor(r.q.QueryRowContext(ctx,
		`SELECT `+doctorColumns+` FROM doctors WHERE phone_number = ?`, phone))
	if err != nil {
		return domain.Doctor{}, mapNotFound(err)
	}
	return d, nil
}

func (r *doctorsRepo) ListDoctors(ctx context.Context) ([]domain.Doctor, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT `+doctorColumns+` FROM doctors ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Doctor{}
	for rows.Next() {
		d, err := scanDoctor(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *doctorsRepo) CreateDoctor(ctx context.Context, d domain.Doctor) error {
	now := stamp(d.CreatedAt)
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO doctors (`+doctorColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		d.ID, d.FullName, d.PhoneNumber, d.Special, now, now,
	)
	return mapConstraint(err)
}

func (r *doctorsRepo) UpdateDoctor(ctx context.Context, d domain.Doctor) error {
	return expectOne(r.q.ExecContext(ctx,
		`UPDATE doctors SET full_name = ?, phone_number = ?, special = ?, updated_at = ? WHERE id = ?`,
		d.FullName, d.PhoneNumber, d.Special, time.Now().UTC(), d.ID,
	))
}

func (r *doctorsRepo) DeleteDoctor(ctx context.Context, id string) error {
	return expectOne(r.q.ExecContext(ctx, `DELETE FROM doctors WHERE id = ?`, id))
}
