package http

import (
	"github.com/aussiebroadwan/clinic/internal/clinic/domain"
	"github.com/aussiebroadwan/clinic/pkg/clinicsdk"
)

func adminView(a domain.Admin) clinicsdk.AdminResponse {
	return clinicsdk.AdminResponse{
		ID:        a.ID,
		Username:  a.Username,
		Role:      a.Role.String(),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func doctorView(d domain.Doctor) clinicsdk.DoctorResponse {
	out := clinicsdk.DoctorResponse{
		ID:          d.ID,
		FullName:    d.FullName,
		PhoneNumber: d.PhoneNumber,
		Special:     d.Special,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
	if len(d.Graphs) > 0 {
		out.Graphs = views(d.Graphs, graphView)
	}
	return out
}

func patientView(p domain.Patient) clinicsdk.PatientResponse {
	return clinicsdk.PatientResponse{
		ID:          p.ID,
		FullName:    p.FullName,
		PhoneNumber: p.PhoneNumber,
		Address:     p.Address,
		Age:         p.Age,
		Gender:      string(p.Gender),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func graphView(g domain.Graph) clinicsdk.GraphResponse {
	return clinicsdk.GraphResponse{
		ID:        g.ID,
		Date:      g.Date,
		Time:      g.Time,
		Status:    string(g.Status),
		DoctorID:  g.DoctorID,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}

func appointmentView(a domain.Appointment) clinicsdk.AppointmentResponse {
	out := clinicsdk.AppointmentResponse{
		ID:        a.ID,
		PatientID: a.PatientID,
		GraphID:   a.GraphID,
		Complaint: a.Complaint,
		Status:    string(a.Status),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
	if a.Patient != nil {
		p := patientView(*a.Patient)
		out.Patient = &p
	}
	if a.Graph != nil {
		g := graphView(*a.Graph)
		out.Graph = &g
	}
	return out
}

// views maps a slice, always returning a non-nil one so lists encode as [].
func views[T, V any](in []T, fn func(T) V) []V {
	out := make([]V, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}
	return out
}
