// Package server serves rendered y axes and their saved presets over HTTP.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"vislib-axis/internal/chart"
	"vislib-axis/internal/format"
	"vislib-axis/internal/metrics"
	"vislib-axis/internal/yaxis"
)

const shutdownTimeout = 5 * time.Second

// Options configures a Server. Zero fields fall back to defaults.
type Options struct {
	Metrics   *metrics.AxisMetrics
	Gatherer  prometheus.Gatherer
	CacheTTL  time.Duration
	Formatter *format.Formatter
	Margin    yaxis.Margin
	Painter   chart.PainterOption
}

type Server struct {
	opt   Options
	cache *renderCache
	mux   *http.ServeMux
}

func New(opt Options) *Server {
	if opt.Metrics == nil {
		opt.Metrics = metrics.New(prometheus.NewRegistry())
	}
	if opt.Gatherer == nil {
		opt.Gatherer = prometheus.DefaultGatherer
	}
	if opt.Formatter == nil {
		opt.Formatter = format.English
	}

	s := &Server{
		opt:   opt,
		cache: newRenderCache(opt.CacheTTL),
		mux:   http.NewServeMux(),
	}

	s.mux.HandleFunc("GET /axis.svg", s.handleAxis(svgOutput))
	s.mux.HandleFunc("GET /axis.png", s.handleAxis(pngOutput))
	s.mux.HandleFunc("GET /presets", s.handleListPresets)
	s.mux.HandleFunc("GET /presets/{name}", s.handleGetPreset)
	s.mux.HandleFunc("PUT /presets/{name}", s.handlePutPreset)
	s.mux.HandleFunc("DELETE /presets/{name}", s.handleDeletePreset)
	s.mux.Handle("/metrics", promhttp.HandlerFor(opt.Gatherer, promhttp.HandlerOpts{}))
	s.mux.HandleFunc("/health", healthCheckHandler)

	return s
}

func (s *Server) Handler() http.Handler {
	return s.mux
}

// ListenAndServe serves on port until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, port int) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: s.mux,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Errorf("Failed to shut down server: %v", err)
		}
	}()

	log.Infof("Launching axis server on :%d", port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return errors.Wrap(err, "axis server failed")
	}
	return nil
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
