package patient

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/patient", func(pr chi.Router) {
		pr.Get("/", getProfileHandler(svc))
		pr.Get("/conditions", listConditionsHandler(svc))
		pr.Get("/medications", listMedicationsHandler(svc))
	})
}

// profileResponse es el perfil del paciente devuelto por la API.
type profileResponse struct {
	Name             string `json:"name"`
	Age              int    `json:"age"`
	Gender           string `json:"gender"`
	BloodGroup       string `json:"blood_group"`
	Allergies        string `json:"allergies"`
	EmergencyContact string `json:"emergency_contact"`
	Address          string `json:"address"`
	AssignedDoctor   string `json:"assigned_doctor"`
}

// conditionResponse es una condición médica con su flag de presencia.
type conditionResponse struct {
	Name    string `json:"name"`
	Present bool   `json:"present"`
}

// medicationResponse es una entrada del plan de medicación.
type medicationResponse struct {
	Name   string `json:"name"`
	Dosage string `json:"dosage"`
	Time   string `json:"time"`
}

// getProfileHandler godoc
// @Summary Perfil del paciente
// @Description Devuelve el perfil estático del paciente monitoreado.
// @Tags patient
// @Produce json
// @Success 200 {object} profileResponse
// @Failure 500 {string} string "internal error"
// @Router /patient [get]
func getProfileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.Profile(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toProfileResponse(p))
	}
}

// listConditionsHandler godoc
// @Summary Condiciones médicas del paciente
// @Description Lista las condiciones médicas con su flag binario de presencia, en orden de presentación.
// @Tags patient
// @Produce json
// @Success 200 {array} conditionResponse
// @Failure 500 {string} string "internal error"
// @Router /patient/conditions [get]
func listConditionsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.Conditions(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]conditionResponse, 0, len(items))
		for _, c := range items {
			out = append(out, toConditionResponse(c))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// listMedicationsHandler godoc
// @Summary Plan de medicación del paciente
// @Description Lista las entradas del plan de medicación (medicamento, dosis y hora del día), en orden.
// @Tags patient
// @Produce json
// @Success 200 {array} medicationResponse
// @Failure 500 {string} string "internal error"
// @Router /patient/medications [get]
func listMedicationsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.Medications(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]medicationResponse, 0, len(items))
		for _, m := range items {
			out = append(out, toMedicationResponse(m))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func toProfileResponse(p Profile) profileResponse {
	return profileResponse{
		Name:             p.Name,
		Age:              p.Age,
		Gender:           p.Gender,
		BloodGroup:       p.BloodGroup,
		Allergies:        p.Allergies,
		EmergencyContact: p.EmergencyContact,
		Address:          p.Address,
		AssignedDoctor:   p.AssignedDoctor,
	}
}

func toConditionResponse(c Condition) conditionResponse {
	return conditionResponse{
		Name:    c.Name,
		Present: c.Present,
	}
}

func toMedicationResponse(m Medication) medicationResponse {
	return medicationResponse{
		Name:   m.Name,
		Dosage: m.Dosage,
		Time:   m.Time,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
// Si más adelante se repite en más módulos, recién conviene extraerlo a un helper común.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
