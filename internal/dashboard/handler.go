package dashboard

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes publica la página del tablero en la raíz.
func RegisterRoutes(r chi.Router) {
	r.Get("/", pageHandler())
}

func pageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(pageHTML))
	}
}
