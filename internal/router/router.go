package router

import (
	"net/http"

	mem "elderly-health-monitor/internal/adapters/storage/memory"
	"elderly-health-monitor/internal/dashboard"
	"elderly-health-monitor/internal/domain/patient"
	"elderly-health-monitor/internal/domain/vitals"
	"elderly-health-monitor/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "elderly-health-monitor/docs"
)

type Options struct {
	Logger zerolog.Logger

	// Record es el paciente servido por la API; validado en el arranque.
	Record patient.Record
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(opts.Logger))
	r.Use(middleware.Recover(opts.Logger))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Repos in-memory: el monitor no persiste nada
	patientRepo := mem.NewPatientRepo(opts.Record)

	// Services por módulo
	vitalsSvc := vitals.NewService()
	patientSvc := patient.NewService(patientRepo)

	// Rutas por módulo bajo el prefijo de la API
	r.Route("/api/v1", func(api chi.Router) {
		vitals.RegisterRoutes(api, vitalsSvc)
		patient.RegisterRoutes(api, patientSvc)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// Tablero en la raíz
	dashboard.RegisterRoutes(r)

	return r
}
