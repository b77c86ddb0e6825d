package metrics

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/misakazip/h265-converter/internal/logging"
)

// Serve starts the metrics HTTP endpoint on addr in a background goroutine.
// It returns the server so the caller can shut it down; a nil return means
// metrics are disabled (empty addr).
func Serve(addr string) *http.Server {
	if addr == "" {
		return nil
	}

	router := mux.NewRouter()
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")
	router.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods("GET")

	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		logging.Info("Metrics endpoint listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn("Metrics server error: %v", err)
		}
	}()

	return srv
}
