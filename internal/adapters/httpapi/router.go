package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/Overland-East-Bay/participant-api/internal/platform/metrics"
)

const maxBodyBytes = 1 << 20

type RouterOptions struct {
	// AuthMiddleware guards every participant route. Nil leaves them open, which only tests do.
	AuthMiddleware func(http.Handler) http.Handler
	Logger         zerolog.Logger
}

// NewRouter constructs the API HTTP router.
func NewRouter(api *Server, opts RouterOptions) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(CorrelationID(opts.Logger))
	r.Use(RequestLogging)
	r.Use(middleware.Recoverer)
	r.Use(metrics.HTTPMiddleware)

	// Infra endpoints are unauthenticated.
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Group(func(r chi.Router) {
		if opts.AuthMiddleware != nil {
			r.Use(opts.AuthMiddleware)
		}
		r.Use(middleware.RequestSize(maxBodyBytes))

		r.Get("/", api.Welcome)
		r.Post("/participants/add", api.AddParticipant)
		r.Get("/participants", api.ListParticipants)
		r.Get("/participants/details", api.ListActiveDetails)
		r.Get("/participants/details/{email}", api.GetParticipantDetails)
		r.Get("/participants/work/{email}", api.GetParticipantWork)
		r.Get("/participants/home/{email}", api.GetParticipantHome)
		r.Delete("/participants/{email}", api.DeleteParticipant)
		r.Put("/participants/{email}", api.UpdateParticipant)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusMethodNotAllowed, "Method not allowed")
	})
	return r
}
