package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/clinic/internal/clinic/domain"
)

type patientsRepo struct {
	q querier
}

const patientColumns = `id, full_name, phone_number, password_hash, address, age, gender, created_at, updated_at`

func scanPatient(row interface{ Scan(...any) error }) (domain.Patient, error) {
	var p domain.Patient
	var gender string
	err := row.Scan(&p.ID, &p.FullName, &p.PhoneNumber, &p.PasswordHash,
		&p.Address, &p.Age, &gender, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return domain.Patient{}, err
	}
	p.Gender = domain.Gender(gender)
	return p, nil
}

func (r *patientsRepo) GetPatientByID(ctx context.Context, id string) (domain.Patient, error) {
	p, err := scanPatient(r.q.QueryRowContext(ctx,
		`SELECT `+patientColumns+` FROM patients WHERE id = ?`, id))
	if err != nil {
		return domain.Patient{}, mapNotFound(err)
	}
	return p, nil
}

func (r *patientsRepo) GetPatientByPhone(ctx context.Context, phone string) (domain.Patient, error) {
	p, err := scanPatient(r.q.QueryRowContext(ctx,
		`SELECT `+patientColumns+` FROM patients WHERE phone_number = ?`, phone))
	if err != nil {
		return domain.Patient{}, mapNotFound(err)
	}
	return p, nil
}

func (r *patientsRepo) ListPatients(ctx context.Context) ([]domain.Patient, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT `+patientColumns+` FROM patients ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Patient{}
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *patientsRepo) CreatePatient(ctx context.Context, p domain.Patient) error {
	now := stamp(p.CreatedAt)
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO patients (`+patientColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.FullName, p.PhoneNumber, p.PasswordHash, p.Address, p.Age, string(p.Gender), now, now,
	)
	return mapConstraint(err)
}

func (r *patientsRepo) UpdatePatient(ctx context.Context, p domain.Patient) error {
	return expectOne(r.q.ExecContext(ctx,
		`UPDATE patients
		    SET full_name = ?, phone_number = ?, password_hash = ?, address = ?, age = ?, gender = ?, updated_at = ?
		  WHERE id = ?`,
		p.FullName, p.PhoneNumber, p.PasswordHash, p.Address, p.Age, string(p.Gender), time.Now().UTC(), p.ID,
	))
}

func (r *patientsRepo) UpdatePasswordHash(ctx context.Context, id, hash string) error {
	return expectOne(r.q.ExecContext(ctx,
		`UPDATE patients SET password_hash = ?, updated_at = ? WHERE id = ?`,
		hash, time.Now().UTC(), id,
	))
}

func (r *patientsRepo) DeletePatient(ctx context.Context, id string) error {
	return expectOne(r.q.ExecContext(ctx, `DELETE FROM patients WHERE id = ?`, id))
}
