package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/clinic/internal/clinic/domain"
	"github.com/aussiebroadwan/clinic/internal/clinic/store"
)

type graphsRepo struct {
	q querier
}

const graphColumns = `id, date, time, status, doctor_id, created_at, updated_at`

func scanGraph(row interface{ Scan(...any) error }) (domain.Graph, error) {
	var g domain.Graph
	var status string
	if err := row.Scan(&g.ID, &g.Date, &g.Time, &status, &g.DoctorID, &g.CreatedAt, &g.UpdatedAt); err != nil {
		return domain.Graph{}, err
	}
	g.Status = domain.GraphStatus(status)
	return g, nil
}

func (r *graphsRepo) GetGraphByID(ctx context.Context, id string) (domain.Graph, error) {
	g, err := scanGraph(r.q.QueryRowContext(ctx,
		`SELECT `+graphColumns+` FROM graphs WHERE id = ?`, id))
	if err != nil {
		return domain.Graph{}, mapNotFound(err)
	}
	return g, nil
}

func (r *graphsRepo) ListGraphs(ctx context.Context, f store.GraphFilter) ([]domain.Graph, error) {
	var w where
	w.eq("doctor_id", f.DoctorID)
	w.eq("status", string(f.Status))
	w.eq("date", f.Date)

	rows, err := r.q.QueryContext(ctx,
		`SELECT `+graphColumns+` FROM graphs`+w.String()+` ORDER BY date, time, id`, w.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Graph{}
	for rows.Next() {
		g, err := scanGraph(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (r *graphsRepo) CreateGraph(ctx context.Context, g domain.Graph) error {
	now := stamp(g.CreatedAt)
	status := g.Status
	if status == "" {
		status = domain.GraphFree
	}
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO graphs (`+graphColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		g.ID, g.Date, g.Time, string(status), g.DoctorID, now, now,
	)
	return mapConstraint(err)
}

func (r *graphsRepo) UpdateGraph(ctx context.Context, g domain.Graph) error {
	return expectOne(r.q.ExecContext(ctx,
		`UPDATE graphs SET date = ?, time = ?, status = ?, doctor_id = ?, updated_at = ? WHERE id = ?`,
		g.Date, g.Time, string(g.Status), g.DoctorID, time.Now().UTC(), g.ID,
	))
}

func (r *graphsRepo) DeleteGraph(ctx context.Context, id string) error {
	return expectOne(r.q.ExecContext(ctx, `DELETE FROM graphs WHERE id = ?`, id))
}
