package vitals

import (
	"math"
	"math/rand"
	"testing"
	"time"
)

func fixedNow() time.Time {
	return time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
}

func TestService_Generate_SeriesShape(t *testing.T) {
	svc := NewService()
	svc.now = fixedNow

	series := svc.Generate()

	if len(series.Samples) != SampleCount {
		t.Fatalf("expected %d samples, got %d", SampleCount, len(series.Samples))
	}
	if series.SnapshotID == "" {
		t.Fatalf("expected non-empty snapshot id")
	}
	if !series.GeneratedAt.Equal(fixedNow()) {
		t.Fatalf("expected GeneratedAt %s, got %s", fixedNow(), series.GeneratedAt)
	}

	wantFirst := time.Date(2023, 12, 31, 13, 0, 0, 0, time.UTC)
	if got := series.Samples[0].Timestamp; !got.Equal(wantFirst) {
		t.Fatalf("expected first timestamp %s, got %s", wantFirst, got)
	}
	if got := series.Samples[len(series.Samples)-1].Timestamp; !got.Equal(fixedNow()) {
		t.Fatalf("expected last timestamp %s, got %s", fixedNow(), got)
	}

	// Estrictamente creciente, separación exacta de 1h
	for i := 1; i < len(series.Samples); i++ {
		d := series.Samples[i].Timestamp.Sub(series.Samples[i-1].Timestamp)
		if d != time.Hour {
			t.Fatalf("expected 1h between samples %d and %d, got %s", i-1, i, d)
		}
	}
}

func TestService_Generate_FieldsFiniteAndRounded(t *testing.T) {
	svc := NewService()
	series := svc.Generate()

	for i, s := range series.Samples {
		values := []float64{s.HeartRate, s.Systolic, s.Diastolic, s.SpO2, s.TemperatureF}
		for j, v := range values {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("sample %d field %d: non-finite value %v", i, j, v)
			}
			scaled := v * 10
			if math.Abs(scaled-math.Round(scaled)) > 1e-9 {
				t.Fatalf("sample %d field %d: value %v not rounded to one decimal", i, j, v)
			}
		}
	}
}

func TestService_Generate_FixedSeed_Reproducible(t *testing.T) {
	svc := NewService()
	svc.now = fixedNow
	svc.newRand = func() *rand.Rand { return rand.New(rand.NewSource(42)) }

	a := svc.Generate()
	b := svc.Generate()

	if len(a.Samples) != len(b.Samples) {
		t.Fatalf("expected equal lengths, got %d vs %d", len(a.Samples), len(b.Samples))
	}
	for i := range a.Samples {
		if a.Samples[i] != b.Samples[i] {
			t.Fatalf("expected identical samples at %d with fixed seed: %+v vs %+v",
				i, a.Samples[i], b.Samples[i])
		}
	}

	// El ID de snapshot sí distingue las dos generaciones
	if a.SnapshotID == b.SnapshotID {
		t.Fatalf("expected distinct snapshot ids")
	}
}

func TestService_Generate_IndependentCalls_SameTimestamps(t *testing.T) {
	svc := NewService()
	svc.now = fixedNow

	a := svc.Generate()
	b := svc.Generate()

	if len(a.Samples) != len(b.Samples) {
		t.Fatalf("expected equal lengths, got %d vs %d", len(a.Samples), len(b.Samples))
	}
	for i := range a.Samples {
		if !a.Samples[i].Timestamp.Equal(b.Samples[i].Timestamp) {
			t.Fatalf("timestamps diverge at %d: %s vs %s",
				i, a.Samples[i].Timestamp, b.Samples[i].Timestamp)
		}
	}
	// Los valores numéricos pueden diferir entre llamadas; no se exige igualdad.
}

func TestService_Generate_ValidatesClean(t *testing.T) {
	svc := NewService()

	if err := svc.Generate().Validate(); err != nil {
		t.Fatalf("expected generated series to pass validation, got %v", err)
	}
}
