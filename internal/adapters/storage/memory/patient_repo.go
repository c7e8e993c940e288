package memory

import (
	"context"

	"elderly-health-monitor/internal/domain/patient"
)

// patientRepo sirve el registro de referencia del paciente desde memoria.
// El registro no se modifica después de la construcción.
type patientRepo struct {
	rec patient.Record
}

func NewPatientRepo(rec patient.Record) patient.Repository {
	rec.Conditions = append([]patient.Condition(nil), rec.Conditions...)
	rec.Medications = append([]patient.Medication(nil), rec.Medications...)
	return &patientRepo{rec: rec}
}

func (r *patientRepo) Profile(ctx context.Context) (patient.Profile, error) {
	return r.rec.Profile, nil
}

func (r *patientRepo) Conditions(ctx context.Context) ([]patient.Condition, error) {
	return append([]patient.Condition(nil), r.rec.Conditions...), nil
}

func (r *patientRepo) Medications(ctx context.Context) ([]patient.Medication, error) {
	return append([]patient.Medication(nil), r.rec.Medications...), nil
}
