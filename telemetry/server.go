package telemetry

import (
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/automoto/swamp-preachers/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter builds the debug router. It starts nothing, so tests can drive
// it with httptest.
//
//	GET /metrics           prometheus exposition
//	GET /healthz           liveness
//	GET /debug/characters  latest controller snapshots
func NewRouter(rec *Recorder, requestLogging bool) *chi.Mux {
	r := chi.NewRouter()
	if requestLogging {
		r.Use(middleware.Logger)
	}
	r.Use(middleware.Recoverer)

	r.Handle("/metrics", promhttp.HandlerFor(rec.Registry(), promhttp.HandlerOpts{}))
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Get("/debug/characters", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, rec.Snapshots())
	})

	return r
}

// StartDebugServer serves the debug router on cfg.ListenAddr. It returns a
// nil server when telemetry is disabled. Bind errors are returned; serve
// errors after that are logged.
func StartDebugServer(cfg config.TelemetryConfig, rec *Recorder) (*http.Server, error) {
	if !cfg.Enabled {
		log.Println("[telemetry] debug server disabled")
		return nil, nil
	}

	ln, err := net.Listen("tcp", cfg.ListenAddr)
	if err != nil {
		return nil, fmt.Errorf("listen %s: %w", cfg.ListenAddr, err)
	}

	srv := &http.Server{
		Addr:              ln.Addr().String(),
		Handler:           NewRouter(rec, false),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Printf("[telemetry] debug server on http://%s (/metrics, /debug/characters)", srv.Addr)
		if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			log.Printf("[telemetry] debug server error: %v", err)
		}
	}()

	return srv, nil
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("[telemetry] encode response: %v", err)
	}
}
