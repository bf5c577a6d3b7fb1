// Package httpapi serves the coloring engine over HTTP using the
// resolver_coloreo wire format: Spanish field names, with the trace under
// animacion_pasos, as the existing web front-ends expect.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/oklog/ulid/v2"

	"github.com/katalvlaran/mapcolor/coloring"
	"github.com/katalvlaran/mapcolor/internal/config"
	"github.com/katalvlaran/mapcolor/internal/metrics"
)

// RequestIDHeader carries the per-request ULID. An incoming value is kept.
const RequestIDHeader = "X-Request-Id"

// maxBodyBytes bounds a request body.
const maxBodyBytes = 1 << 20

// metricsSource labels searches started by this transport.
const metricsSource = "http"

// Server holds the dependencies of the HTTP handlers.
type Server struct {
	cfg     config.Config
	log     *slog.Logger
	metrics *metrics.Recorder

	solveSchema *openapi3.Schema

	mu      sync.Mutex
	entropy *rand.Rand
}

// New validates the embedded OpenAPI document and builds a Server.
// rec may be nil, in which case /metrics is not mounted.
func New(cfg config.Config, log *slog.Logger, rec *metrics.Recorder) (*Server, error) {
	if log == nil {
		log = slog.Default()
	}
	doc, err := loadSpec(context.Background())
	if err != nil {
		return nil, err
	}
	sch, err := schema(doc, "SolveRequest")
	if err != nil {
		return nil, err
	}

	return &Server{
		cfg:         cfg,
		log:         log,
		metrics:     rec,
		solveSchema: sch,
		entropy:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

// Handler returns the routed, CORS-enabled handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestID)
	r.Use(s.logRequests)

	r.Post("/api/resolver_coloreo", s.handleSolve(messageDone))
	r.Get("/api/test", s.handleHealth(healthOK))

	// Routes of the first, unprefixed deployment.
	r.Post("/resolver_coloreo/", s.handleSolve(legacyMessageDone))
	r.Get("/", s.handleHealth(legacyHealthOK))

	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		if _, err := w.Write(rawSpec); err != nil {
			s.log.Error("openapi write failed", "error", err)
		}
	})
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	}

	return s.enableCORS(r)
}

func (s *Server) enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", s.cfg.CORSOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+RequestIDHeader)
		w.Header().Set("Access-Control-Expose-Headers", RequestIDHeader)
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type ctxKey struct{}

// RequestID returns the request ID stored by the middleware, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

func (s *Server) newID() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = s.newID()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, id)))
	})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", RequestID(r.Context()),
		)
	})
}

// handleSolve returns the handler of POST /api/resolver_coloreo and its legacy
// route; only the mensaje text differs between the two.
func (s *Server) handleSolve(message string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.solve(w, r, message)
	}
}

func (s *Server) solve(w http.ResponseWriter, r *http.Request, message string) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, fmt.Errorf("read body: %w", err))
		return
	}
	if err := validateBody(s.solveSchema, body); err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}
	req, err := decodeSolveRequest(body)
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}
	if err := s.checkLimits(req); err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.RequestTimeout)
	defer cancel()

	start := time.Now()
	res, err := coloring.Solve(req.Map, req.NumColors,
		coloring.WithContext(ctx),
		coloring.WithMaxSteps(s.cfg.MaxSteps),
	)
	s.metrics.Observe(metricsSource, res, err, time.Since(start))
	if err != nil {
		s.writeError(w, r, statusFor(err), err)
		return
	}
	if res.Solved && req.Map.Symmetric() {
		if verr := coloring.Verify(req.Map, res.Assignment, req.NumColors); verr != nil {
			s.writeError(w, r, http.StatusInternalServerError, verr)
			return
		}
	}

	s.writeJSON(w, r, http.StatusOK, newSolveResponse(message, req.Map.Regions(), res))
}

func (s *Server) checkLimits(req solveRequest) error {
	if s.cfg.MaxColors > 0 && req.NumColors > s.cfg.MaxColors {
		return fmt.Errorf("%s=%d exceeds the limit of %d", fieldNumColors, req.NumColors, s.cfg.MaxColors)
	}
	if s.cfg.MaxRegions > 0 && req.Map.Len() > s.cfg.MaxRegions {
		return fmt.Errorf("%s has %d regions, the limit is %d", fieldMap, req.Map.Len(), s.cfg.MaxRegions)
	}

	return nil
}

// handleHealth returns the handler of GET /api/test and GET /.
func (s *Server) handleHealth(status string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.writeJSON(w, r, http.StatusOK, healthResponse{Status: status})
	}
}

// statusFor maps a search error to an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, coloring.ErrStepLimit):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	if status >= http.StatusInternalServerError {
		s.log.Error("solve failed", "error", err, "status", status, "request_id", RequestID(r.Context()))
	} else {
		s.log.Warn("solve rejected", "error", err, "status", status, "request_id", RequestID(r.Context()))
	}
	s.writeJSON(w, r, status, errorResponse{Detail: err.Error()})
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("response encode failed", "error", err, "request_id", RequestID(r.Context()))
	}
}
