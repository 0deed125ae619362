package http

import (
	"net/http"

	"github.com/MKhiriev/go-ai-feedback/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGunzipBody, compressJSON)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Handle("/metrics", promhttp.Handler())

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
		r.Get("/api/characters", h.characters)
		r.Get("/api/version", h.getServerVersion)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Put("/api/user/character", h.updateCharacter)

		r.Get("/api/logs", h.fetchLogs)
		r.Get("/api/logs/{chatID}", h.getLog)

		r.Post("/api/session/messages", h.sendMessage)
		r.Get("/api/session", h.getSession)
		r.Delete("/api/session", h.clearSession)
		r.Post("/api/session/save", h.saveSession)
		r.Post("/api/session/resume", h.resumeSession)
		r.Get("/api/session/audio", h.sessionAudio)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))
	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	})

	return router
}
