package vitals

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"
)

func sampleAt(ts time.Time) Sample {
	return Sample{
		Timestamp:    ts,
		HeartRate:    75.0,
		Systolic:     120.0,
		Diastolic:    80.0,
		SpO2:         98.0,
		TemperatureF: 98.6,
	}
}

func TestSeries_Latest_ReturnsMostRecent(t *testing.T) {
	base := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	series := Series{
		Samples: []Sample{
			sampleAt(base),
			sampleAt(base.Add(time.Hour)),
			sampleAt(base.Add(2 * time.Hour)),
		},
	}

	last, err := series.Latest()
	if err != nil {
		t.Fatalf("Latest returned error: %v", err)
	}
	if !last.Timestamp.Equal(base.Add(2 * time.Hour)) {
		t.Fatalf("expected latest timestamp %s, got %s", base.Add(2*time.Hour), last.Timestamp)
	}
}

func TestSeries_Latest_EmptySeries(t *testing.T) {
	var series Series

	_, err := series.Latest()
	if err == nil {
		t.Fatalf("expected error for empty series")
	}
	if !errors.Is(err, ErrEmptySeries) {
		t.Fatalf("expected ErrEmptySeries, got %v", err)
	}
}

func TestSeries_Validate_Empty(t *testing.T) {
	var series Series

	err := series.Validate()
	if err == nil {
		t.Fatalf("expected integrity error for empty series")
	}

	var ie *IntegrityError
	if !errors.As(err, &ie) {
		t.Fatalf("expected *IntegrityError, got %T: %v", err, err)
	}
}

func TestSeries_Validate_NonFiniteField(t *testing.T) {
	ts := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	bad := sampleAt(ts)
	bad.SpO2 = math.NaN()

	series := Series{Samples: []Sample{sampleAt(ts.Add(-time.Hour)), bad}}

	err := series.Validate()
	if err == nil {
		t.Fatalf("expected integrity error for NaN field")
	}

	var ie *IntegrityError
	if !errors.As(err, &ie) {
		t.Fatalf("expected *IntegrityError, got %T: %v", err, err)
	}
	// El mensaje nombra el campo defectuoso
	if !strings.Contains(err.Error(), "spo2") {
		t.Fatalf("expected message to name the field, got %q", err.Error())
	}
}

func TestSeries_Validate_InfField(t *testing.T) {
	ts := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	bad := sampleAt(ts)
	bad.TemperatureF = math.Inf(1)

	series := Series{Samples: []Sample{bad}}

	if err := series.Validate(); err == nil {
		t.Fatalf("expected integrity error for Inf field")
	}
}

func TestSeries_Validate_OK(t *testing.T) {
	ts := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	series := Series{Samples: []Sample{sampleAt(ts), sampleAt(ts.Add(time.Hour))}}

	if err := series.Validate(); err != nil {
		t.Fatalf("expected valid series, got %v", err)
	}
}
