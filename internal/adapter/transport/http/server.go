package http_server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/dayanaadylkhanova/codetime-charts/internal/entity"
	"github.com/dayanaadylkhanova/codetime-charts/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Server struct {
	log     *zap.Logger
	addr    string
	runner  service.AggregationRunner
	charts  service.ChartReader
	httpSrv *http.Server
}

func NewServer(log *zap.Logger, addr string, runner service.AggregationRunner, charts service.ChartReader, gatherer prometheus.Gatherer) *Server {
	s := &Server{log: log, addr: addr, runner: runner, charts: charts}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(zapLogger(log))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) })
	r.Post("/aggregations", s.handleAggregate())
	r.Get("/charts", s.handleSnapshot())
	r.Get("/charts/{field}", s.handleChart())
	if gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	s.httpSrv = &http.Server{Addr: addr, Handler: r}
	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler { return s.httpSrv.Handler }

func (s *Server) Start() error {
	s.log.Info("http listen", zap.String("addr", s.addr))
	return s.httpSrv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}

func zapLogger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.Info("http",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.String("request_id", middleware.GetReqID(r.Context())),
				zap.Duration("latency", time.Since(start)),
			)
		})
	}
}

func (s *Server) handleAggregate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req entity.AggregationRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		req.Identifier = strings.TrimSpace(req.Identifier)
		if req.Identifier == "" {
			http.Error(w, "identifier is required", http.StatusBadRequest)
			return
		}
		mode, err := entity.ParseMode(string(req.Mode))
		if err != nil {
			http.Error(w, "invalid mode", http.StatusBadRequest)
			return
		}

		if err := s.runner.RunAggregation(r.Context(), req.Identifier, mode); err != nil {
			if errors.Is(err, service.ErrAggregationFailed) {
				http.Error(w, err.Error(), http.StatusBadGateway)
				return
			}
			s.log.Error("aggregate", zap.Error(err))
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) handleSnapshot() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, err := s.charts.Snapshot(r.Context())
		if err != nil {
			s.log.Error("snapshot", zap.Error(err))
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(snap)
	}
}

func (s *Server) handleChart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		field, ok := entity.ParseChartField(chi.URLParam(r, "field"))
		if !ok {
			http.Error(w, "unknown field", http.StatusNotFound)
			return
		}
		snap, err := s.charts.Snapshot(r.Context())
		if err != nil {
			s.log.Error("snapshot", zap.Error(err))
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		cfg, ok := snap.Charts[field]
		if !ok {
			http.Error(w, "chart not built yet", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(cfg)
	}
}
