package memory

import (
	"context"
	"testing"

	"elderly-health-monitor/internal/domain/patient"
)

func TestPatientRepo_ReturnsSeedData(t *testing.T) {
	rec := patient.DefaultRecord()
	repo := NewPatientRepo(rec)
	ctx := context.Background()

	p, err := repo.Profile(ctx)
	if err != nil {
		t.Fatalf("Profile() error = %v", err)
	}
	if p != rec.Profile {
		t.Fatalf("Profile() = %+v, want %+v", p, rec.Profile)
	}

	conds, err := repo.Conditions(ctx)
	if err != nil {
		t.Fatalf("Conditions() error = %v", err)
	}
	if len(conds) != len(rec.Conditions) {
		t.Fatalf("len(Conditions()) = %d, want %d", len(conds), len(rec.Conditions))
	}

	meds, err := repo.Medications(ctx)
	if err != nil {
		t.Fatalf("Medications() error = %v", err)
	}
	if len(meds) != len(rec.Medications) {
		t.Fatalf("len(Medications()) = %d, want %d", len(meds), len(rec.Medications))
	}
}

func TestPatientRepo_CopiesAreDefensive(t *testing.T) {
	rec := patient.DefaultRecord()
	repo := NewPatientRepo(rec)
	ctx := context.Background()

	// Mutar el slice original del llamador no debe afectar al repositorio.
	rec.Conditions[0].Name = "mutado"

	conds, err := repo.Conditions(ctx)
	if err != nil {
		t.Fatalf("Conditions() error = %v", err)
	}
	if conds[0].Name != "Diabetes" {
		t.Fatalf("Conditions()[0].Name = %q, want %q", conds[0].Name, "Diabetes")
	}

	// Mutar el slice devuelto tampoco debe afectar lecturas posteriores.
	conds[0].Present = false
	again, err := repo.Conditions(ctx)
	if err != nil {
		t.Fatalf("Conditions() error = %v", err)
	}
	if !again[0].Present {
		t.Fatalf("Conditions()[0].Present = false tras mutar la copia devuelta")
	}

	meds, err := repo.Medications(ctx)
	if err != nil {
		t.Fatalf("Medications() error = %v", err)
	}
	meds[0].Dosage = "999mg"
	againMeds, err := repo.Medications(ctx)
	if err != nil {
		t.Fatalf("Medications() error = %v", err)
	}
	if againMeds[0].Dosage != "75mg" {
		t.Fatalf("Medications()[0].Dosage = %q, want %q", againMeds[0].Dosage, "75mg")
	}
}
