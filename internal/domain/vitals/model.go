package vitals

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// SampleCount es la cantidad fija de muestras por serie (ventana de 24 horas,
// una muestra por hora).
const SampleCount = 24

var (
	ErrEmptySeries = errors.New("empty series")
)

// Sample es una lectura puntual de signos vitales.
type Sample struct {
	Timestamp time.Time

	HeartRate    float64 // BPM
	Systolic     float64 // mmHg
	Diastolic    float64 // mmHg
	SpO2         float64 // %
	TemperatureF float64 // °F
}

// Series es la secuencia cronológica de muestras de una generación.
// Cada generación es un snapshot independiente; Samples no se muta una vez creada.
type Series struct {
	SnapshotID  string
	GeneratedAt time.Time
	Samples     []Sample
}

// Latest devuelve la muestra más reciente (la última de la serie).
func (s Series) Latest() (Sample, error) {
	if len(s.Samples) == 0 {
		return Sample{}, ErrEmptySeries
	}
	return s.Samples[len(s.Samples)-1], nil
}

// IntegrityError indica que una serie no es apta para presentación.
type IntegrityError struct {
	Reason string
}

func (e *IntegrityError) Error() string {
	return "vitals integrity: " + e.Reason
}

// Validate se corre una sola vez sobre la serie recién generada, antes de
// entregarla a la capa de presentación. Serie vacía o algún campo no finito
// (NaN/Inf) la invalidan; en ese caso no se sirven gráficos con esos datos.
func (s Series) Validate() error {
	if len(s.Samples) == 0 {
		return &IntegrityError{Reason: "series is empty"}
	}

	for i, sm := range s.Samples {
		fields := []struct {
			name  string
			value float64
		}{
			{"heart_rate", sm.HeartRate},
			{"systolic", sm.Systolic},
			{"diastolic", sm.Diastolic},
			{"spo2", sm.SpO2},
			{"temperature_f", sm.TemperatureF},
		}
		for _, f := range fields {
			if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
				return &IntegrityError{
					Reason: fmt.Sprintf("sample %d: %s is not a finite number", i, f.name),
				}
			}
		}
	}

	return nil
}
