package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/clinic/internal/clinic/domain"
	"github.com/aussiebroadwan/clinic/internal/clinic/store"
)

type appointmentsRepo struct {
	q querier
}

const appointmentColumns = `id, patient_id, graph_id, complaint, status, created_at, updated_at`

func scanAppointment(row interface{ Scan(...any) error }) (domain.Appointment, error) {
	var a domain.Appointment
	var status string
	err := row.Scan(&a.ID, &a.PatientID, &a.GraphID, &a.Complaint, &status, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return domain.Appointment{}, err
	}
	a.Status = domain.AppointmentStatus(status)
	return a, nil
}

func (r *appointmentsRepo) GetAppointmentByID(ctx context.Context, id string) (domain.Appointment, error) {
	a, err := scanAppointment(r.q.QueryRowContext(ctx,
		`SELECT `+appointmentColumns+` FROM appointments WHERE id = ?`, id))
	if err != nil {
		return domain.Appointment{}, mapNotFound(err)
	}
	return a, nil
}

func (r *appointmentsRepo) ListAppointments(
	ctx context.Context,
	f store.AppointmentFilter,
) ([]domain.Appointment, error) {
	var w where
	w.eq("patient_id", f.PatientID)
	w.eq("graph_id", f.GraphID)
	w.eq("status", string(f.Status))

	rows, err := r.q.QueryContext(ctx,
		`SELECT `+appointmentColumns+` FROM appointments`+w.String()+` ORDER BY id`, w.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Appointment{}
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *appointmentsRepo) CreateAppointment(ctx context.Context, a domain.Appointment) error {
	now := stamp(a.CreatedAt)
	status := a.Status
	if status == "" {
		status = domain.AppointmentPending
	}
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO appointments (`+appointmentColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.PatientID, a.GraphID, a.Complaint, string(status), now, now,
	)
	return mapConstraint(err)
}

func (r *appointmentsRepo) UpdateAppointment(ctx context.Context, a domain.Appointment) error {
	return expectOne(r.q.ExecContext(ctx,
		`UPDATE appointments SET patient_id = ?, graph_id = ?, complaint = ?, status = ?, updated_at = ? WHERE id = ?`,
		a.PatientID, a.GraphID, a.Complaint, string(a.Status), time.Now().UTC(), a.ID,
	))
}

func (r *appointmentsRepo) DeleteAppointment(ctx context.Context, id string) error {
	return expectOne(r.q.ExecContext(ctx, `DELETE FROM appointments WHERE id = ?`, id))
}
