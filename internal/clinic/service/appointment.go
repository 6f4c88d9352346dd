package service

import (
	"context"
	"log/slog"

	"github.com/aussiebroadwan/clinic/internal/clinic/domain"
	"github.com/aussiebroadwan/clinic/internal/clinic/store"
	"github.com/aussiebroadwan/clinic/pkg/clinicsdk"
	"github.com/aussiebroadwan/clinic/pkg/errx"
	"github.com/aussiebroadwan/clinic/pkg/idx"
	"github.com/aussiebroadwan/clinic/pkg/slogx"
)

type AppointmentService struct {
	Store store.Store
}

// Create books an appointment on a slot. A patient books for themselves; an
// admin must name the patient.
func (s *AppointmentService) Create(
	ctx context.Context,
	caller domain.Principal,
	req clinicsdk.CreateAppointmentRequest,
) (domain.Appointment, error) {
	if err := validate(req); err != nil {
		return domain.Appointment{}, err
	}

	patientID := req.PatientID
	switch {
	case caller.Role == domain.RolePatient:
		if patientID != "" && patientID != caller.ID {
			return domain.Appointment{}, ErrForbidden
		}
		patientID = caller.ID
	case !caller.Role.AtLeast(domain.RoleAdmin):
		return domain.Appointment{}, ErrForbidden
	case patientID == "":
		return domain.Appointment{}, errx.Validation(`"patient_id" is required`)
	}

	if _, err := s.Store.Patients().GetPatientByID(ctx, patientID); err != nil {
		return domain.Appointment{}, lookup(err, errNotFoundPatient.Detail)
	}
	if _, err := s.Store.Graphs().GetGraphByID(ctx, req.GraphID); err != nil {
		return domain.Appointment{}, lookup(err, errNotFoundGraph.Detail)
	}

	a := domain.Appointment{
		ID:        idx.New().String(),
		PatientID: patientID,
		GraphID:   req.GraphID,
		Complaint: req.Complaint,
		Status:    domain.AppointmentStatus(req.Status),
	}
	if err := persist(s.Store.Appointments().CreateAppointment(ctx, a), nil, ""); err != nil {
		return domain.Appointment{}, err
	}

	slogx.FromContext(ctx).Info("appointment created",
		slog.String("appointment_id", a.ID),
		slog.String("patient_id", patientID),
		slog.String("graph_id", a.GraphID),
	)
	return s.Get(ctx, a.ID)
}

// List returns appointments with their patient and slot attached.
func (s *AppointmentService) List(ctx context.Context, f store.AppointmentFilter) ([]domain.Appointment, error) {
	list, err := s.Store.Appointments().ListAppointments(ctx, f)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if err := s.populate(ctx, &list[i]); err != nil {
			return nil, err
		}
	}
	return list, nil
}

func (s *AppointmentService) Get(ctx context.Context, id string) (domain.Appointment, error) {
	if !idx.Valid(id) {
		return domain.Appointment{}, errNotFoundAppointment
	}
	a, err := s.Store.Appointments().GetAppointmentByID(ctx, id)
	if err != nil {
		return domain.Appointment{}, lookup(err, errNotFoundAppointment.Detail)
	}
	return a, s.populate(ctx, &a)
}

func (s *AppointmentService) populate(ctx context.Context, a *domain.Appointment) error {
	p, err := s.Store.Patients().GetPatientByID(ctx, a.PatientID)
	if err != nil {
		return lookup(err, errNotFoundPatient.Detail)
	}
	g, err := s.Store.Graphs().GetGraphByID(ctx, a.GraphID)
	if err != nil {
		return lookup(err, errNotFoundGraph.Detail)
	}
	a.Patient, a.Graph = &p, &g
	return nil
}

// Owner returns the id of the patient an appointment belongs to.
func (s *AppointmentService) Owner(ctx context.Context, id string) (string, error) {
	if !idx.Valid(id) {
		return "", errNotFoundAppointment
	}
	a, err := s.Store.Appointments().GetAppointmentByID(ctx, id)
	if err != nil {
		return "", lookup(err, errNotFoundAppointment.Detail)
	}
	return a.PatientID, nil
}

func (s *AppointmentService) Update(ctx context.Context, id string, req clinicsdk.UpdateAppointmentRequest) (domain.Appointment, error) {
	if err := validate(req); err != nil {
		return domain.Appointment{}, err
	}
	a, err := s.Get(ctx, id)
	if err != nil {
		return domain.Appointment{}, err
	}

	if req.GraphID != nil && *req.GraphID != a.GraphID {
		if _, err := s.Store.Graphs().GetGraphByID(ctx, *req.GraphID); err != nil {
			return domain.Appointment{}, lookup(err, errNotFoundGraph.Detail)
		}
		a.GraphID = *req.GraphID
	}
	if req.Complaint != nil {
		a.Complaint = *req.Complaint
	}
	if req.Status != nil {
		a.Status = domain.AppointmentStatus(*req.Status)
	}

	if err := persist(s.Store.Appointments().UpdateAppointment(ctx, a), nil, errNotFoundAppointment.Detail); err != nil {
		return domain.Appointment{}, err
	}
	return s.Get(ctx, id)
}

func (s *AppointmentService) Delete(ctx context.Context, id string) error {
	if !idx.Valid(id) {
		return errNotFoundAppointment
	}
	return persist(s.Store.Appointments().DeleteAppointment(ctx, id), nil, errNotFoundAppointment.Detail)
}
