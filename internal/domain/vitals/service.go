package vitals

import (
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Distribución de cada señal: media y desviación estándar.
const (
	heartRateMean, heartRateSD = 75.0, 5.0
	systolicMean, systolicSD   = 120.0, 10.0
	diastolicMean, diastolicSD = 80.0, 5.0
	spo2Mean, spo2SD           = 98.0, 1.0
	tempFMean, tempFSD         = 98.6, 0.5
)

type Service struct {
	now     func() time.Time
	newRand func() *rand.Rand
}

func NewService() *Service {
	return &Service{
		now: time.Now,
		// Fuente nueva por llamada: generaciones concurrentes no comparten
		// estado del generador.
		newRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
	}
}

// Generate produce la serie de las últimas 24 horas terminando en now:
// timestamps now-23h..now con separación exacta de una hora, y las cinco
// señales muestreadas de sus gaussianas, redondeadas a un decimal.
// Los valores no se recortan: diastólica > sistólica y SpO2 > 100 son posibles.
// No falla: sin I/O y sin estado compartido entre llamadas.
func (s *Service) Generate() Series {
	now := s.now()
	rng := s.newRand()

	samples := make([]Sample, 0, SampleCount)
	for i := SampleCount - 1; i >= 0; i-- {
		samples = append(samples, Sample{
			Timestamp:    now.Add(-time.Duration(i) * time.Hour),
			HeartRate:    round1(rng.NormFloat64()*heartRateSD + heartRateMean),
			Systolic:     round1(rng.NormFloat64()*systolicSD + systolicMean),
			Diastolic:    round1(rng.NormFloat64()*diastolicSD + diastolicMean),
			SpO2:         round1(rng.NormFloat64()*spo2SD + spo2Mean),
			TemperatureF: round1(rng.NormFloat64()*tempFSD + tempFMean),
		})
	}

	return Series{
		SnapshotID:  uuid.NewString(),
		GeneratedAt: now,
		Samples:     samples,
	}
}

// round1 redondea a un decimal (mitades lejos de cero).
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
