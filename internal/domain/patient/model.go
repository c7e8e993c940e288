package patient

import (
	"errors"
	"strings"
)

// Profile son los datos de identificación del paciente monitoreado.
type Profile struct {
	Name             string
	Age              int
	Gender           string
	BloodGroup       string
	Allergies        string
	EmergencyContact string
	Address          string
	AssignedDoctor   string
}

// Condition es una condición médica con su flag binario de presencia.
type Condition struct {
	Name    string
	Present bool
}

// Medication es una entrada del plan de medicación.
type Medication struct {
	Name   string
	Dosage string // dosis con unidad, ej. "75mg"
	Time   string // etiqueta de hora del día, ej. "8:00 AM"
}

// Record agrupa los datos estáticos de referencia del paciente.
// Se construye una sola vez al arranque y no se muta después; la capa de
// presentación lo recibe tal cual.
type Record struct {
	Profile     Profile
	Conditions  []Condition
	Medications []Medication
}

// DefaultRecord es el paciente de referencia del monitor.
func DefaultRecord() Record {
	return Record{
		Profile: Profile{
			Name:             "John Doe",
			Age:              72,
			Gender:           "Male",
			BloodGroup:       "B+",
			Allergies:        "None",
			EmergencyContact: "Jane Doe (+1234567890)",
			Address:          "123 Elderly Lane, Healthville",
			AssignedDoctor:   "Dr. Smith, General Medicine",
		},
		Conditions: []Condition{
			{Name: "Diabetes", Present: true},
			{Name: "Hypertension", Present: true},
			{Name: "Arthritis", Present: false},
			{Name: "Asthma", Present: false},
			{Name: "Heart Disease", Present: true},
			{Name: "Others", Present: false},
		},
		Medications: []Medication{
			{Name: "Aspirin", Dosage: "75mg", Time: "8:00 AM"},
			{Name: "Metformin", Dosage: "500mg", Time: "12:00 PM"},
			{Name: "Atorvastatin", Dosage: "10mg", Time: "8:00 PM"},
		},
	}
}

// Validate exige los mínimos no-vacíos del record antes de servirlo.
func (r Record) Validate() error {
	if strings.TrimSpace(r.Profile.Name) == "" {
		return errors.New("patient record: profile name required")
	}
	if len(r.Conditions) == 0 {
		return errors.New("patient record: at least one condition entry required")
	}
	if len(r.Medications) == 0 {
		return errors.New("patient record: at least one medication entry required")
	}
	return nil
}
