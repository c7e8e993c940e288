package vitals

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/vitals", func(vr chi.Router) {
		vr.Get("/", listVitalsHandler(svc))

		// Última lectura (para las tarjetas de "lectura actual")
		vr.Get("/latest", latestVitalHandler(svc))
	})
}

// sampleResponse es una lectura puntual de signos vitales devuelta por la API.
type sampleResponse struct {
	Timestamp    time.Time `json:"timestamp"`
	HeartRate    float64   `json:"heart_rate"`
	Systolic     float64   `json:"systolic"`
	Diastolic    float64   `json:"diastolic"`
	SpO2         float64   `json:"spo2"`
	TemperatureF float64   `json:"temperature_f"`
}

// seriesResponse es la serie completa de un snapshot de generación.
type seriesResponse struct {
	SnapshotID  string           `json:"snapshot_id"`
	GeneratedAt time.Time        `json:"generated_at"`
	Samples     []sampleResponse `json:"samples"`
}

// listVitalsHandler godoc
// @Summary Serie de vitales de las últimas 24 horas
// @Description Genera una serie sintética de 24 muestras horarias terminando en el instante actual. Cada llamada produce un snapshot independiente; dos llamadas no tienen por qué coincidir en valores.
// @Tags vitals
// @Produce json
// @Success 200 {object} seriesResponse
// @Failure 500 {string} string "vitals integrity: ..."
// @Router /vitals [get]
func listVitalsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		series := svc.Generate()

		// Chequeo de integridad: una sola vez, recién generada y antes de
		// entregar nada a la capa de presentación.
		if err := series.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toSeriesResponse(series))
	}
}

// latestVitalHandler godoc
// @Summary Última lectura de vitales
// @Description Genera un snapshot nuevo y devuelve su muestra más reciente. Alimenta las tarjetas de lectura actual del dashboard.
// @Tags vitals
// @Produce json
// @Success 200 {object} sampleResponse
// @Failure 500 {string} string "vitals integrity: ... / empty series"
// @Router /vitals/latest [get]
func latestVitalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		series := svc.Generate()

		if err := series.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		last, err := series.Latest()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toSampleResponse(last))
	}
}

func toSampleResponse(s Sample) sampleResponse {
	return sampleResponse{
		Timestamp:    s.Timestamp,
		HeartRate:    s.HeartRate,
		Systolic:     s.Systolic,
		Diastolic:    s.Diastolic,
		SpO2:         s.SpO2,
		TemperatureF: s.TemperatureF,
	}
}

func toSeriesResponse(s Series) seriesResponse {
	out := seriesResponse{
		SnapshotID:  s.SnapshotID,
		GeneratedAt: s.GeneratedAt,
		Samples:     make([]sampleResponse, 0, len(s.Samples)),
	}
	for _, sm := range s.Samples {
		out.Samples = append(out.Samples, toSampleResponse(sm))
	}
	return out
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos (vitals/patient)
// para evitar crear paquetes/helpers compartidos demasiado pronto.
// Si más adelante se repite en más módulos, recién conviene extraerlo a un helper común.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
