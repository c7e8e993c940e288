package dashboard

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

func TestPageHandler_ServesDashboard(t *testing.T) {
	r := chi.NewRouter()
	RegisterRoutes(r)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("Content-Type = %q, want text/html", ct)
	}
}

func TestPageHandler_ContainsSectionsAndCharts(t *testing.T) {
	r := chi.NewRouter()
	RegisterRoutes(r)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	body := rec.Body.String()

	sections := []string{
		"Elderly Patient Health Dashboard",
		"Patient Profile",
		"Real-time Vitals",
		"Medical History",
		"Medication Schedule",
		"Vitals Trend (Last 24 Hours)",
		"Developed for remote elderly patient health tracking.",
	}
	for _, s := range sections {
		if !strings.Contains(body, s) {
			t.Fatalf("la página no contiene la sección %q", s)
		}
	}

	// Un canvas (o contenedor) por gráfico del tablero.
	ids := []string{
		`id="conditions-pie"`,
		`id="hr-line"`,
		`id="bp-line"`,
		`id="spo2-line"`,
		`id="temp-line"`,
		`id="hr-bar"`,
		`id="temp-area"`,
		`id="bp-scatter"`,
		`id="hr-hist"`,
		`id="temp-box"`,
		`id="scatter-matrix"`,
		`id="error-banner"`,
	}
	for _, id := range ids {
		if !strings.Contains(body, id) {
			t.Fatalf("la página no contiene %s", id)
		}
	}

	// Endpoints que consume la página.
	paths := []string{
		"/api/v1/vitals",
		"/api/v1/vitals/latest",
		"/api/v1/patient",
		"/api/v1/patient/conditions",
		"/api/v1/patient/medications",
	}
	for _, p := range paths {
		if !strings.Contains(body, p) {
			t.Fatalf("la página no referencia %s", p)
		}
	}
}
