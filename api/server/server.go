package server

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/VictoriaMetrics/metrics"
	"github.com/puzpuzpuz/xsync/v3"

	"github.com/ion-oset/electorate-vanadium-core/api/codec"
	"github.com/ion-oset/electorate-vanadium-core/api/common"
	"github.com/ion-oset/electorate-vanadium-core/lib/ids"
	"github.com/ion-oset/electorate-vanadium-core/lib/lockmgr"
	"github.com/ion-oset/electorate-vanadium-core/lib/store"
)

var Logger = common.GetLogger("server")

// dataset couples one store with the name it is served under. The store has
// no locking of its own, all access goes through the server's lock manager.
type dataset struct {
	name  string
	store *store.Store[[]byte]
}

// DataServer serves one or more datasets over HTTP. Each dataset is an
// independent key-value namespace addressed by the request path.
type DataServer struct {
	config   common.ServerConfig
	codec    codec.ICodec
	datasets *xsync.MapOf[string, *dataset]
	locks    lockmgr.ILockManager
	source   store.IDSource
}

// NewDataServer creates a data server with one store per configured dataset.
//
// Usage:
//
//	s, err := server.NewDataServer(*config, codec.NewJSONCodec())
//	if err != nil {
//		panic(err)
//	}
//
//	if err := s.Serve(); err != nil {
//		panic(err)
//	}
func NewDataServer(config common.ServerConfig, c codec.ICodec) (*DataServer, error) {
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}

	// Init logger
	common.InitLoggers(config)

	source, err := ids.NewSource(config.IDSource)
	if err != nil {
		return nil, err
	}

	if len(config.Datasets) == 0 {
		return nil, fmt.Errorf("at least one dataset is required")
	}

	// Create datasets map. All datasets share the identifier source so keys
	// stay unique across the whole server.
	datasets := xsync.NewMapOf[string, *dataset]()
	for _, name := range config.Datasets {
		if name == "" {
			return nil, fmt.Errorf("dataset name must not be empty")
		}
		if _, exists := datasets.Load(name); exists {
			return nil, fmt.Errorf("duplicate dataset name %q", name)
		}
		datasets.Store(name, &dataset{
			name:  name,
			store: store.New[[]byte](source),
		})
		Logger.Infof("created dataset %q", name)
	}

	Logger.Infof("Created data server")
	Logger.Infof(config.String())

	return &DataServer{
		config:   config,
		codec:    c,
		datasets: datasets,
		locks:    lockmgr.NewLockManager(),
		source:   source,
	}, nil
}

// Handler returns the HTTP handler serving the data API, the health check
// and the metrics endpoint. It is exposed separately from Serve so tests
// can drive the server through net/http/httptest.
func (s *DataServer) Handler() http.Handler {
	mux := http.NewServeMux()

	// Register handler
	if s.config.LogLevel == "debug" {
		mux.HandleFunc("POST /{dataset}", loggerMiddleware(s.handleRequest))
	} else {
		mux.HandleFunc("POST /{dataset}", s.handleRequest)
	}
	mux.HandleFunc("GET /healthz", s.handleHealthz)
	mux.HandleFunc("GET /metrics", s.handleMetrics)

	return mux
}

// Serve starts the HTTP server and blocks until it fails.
func (s *DataServer) Serve() error {
	timeout := time.Duration(s.config.TimeoutSecond) * time.Second

	srv := &http.Server{
		Addr:         s.config.Endpoint,
		Handler:      s.Handler(),
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}

	Logger.Infof("Starting HTTP server on %s", s.config.Endpoint)
	return srv.ListenAndServe()
}

// --------------------------------------------------------------------------
// Helper Methods
// --------------------------------------------------------------------------

// handleRequest handles incoming HTTP requests and writes the response to the writer
func (s *DataServer) handleRequest(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	// Read request body
	body, err := io.ReadAll(r.Body)
	defer r.Body.Close()

	// Check if body could be read
	if err != nil {
		countError("read_body")
		http.Error(w, "Failed to read request body", http.StatusInternalServerError)
		return
	}

	resp := s.dispatch(r.PathValue("dataset"), body, start)

	// Encode response
	data, err := s.codec.Encode(*resp)
	if err != nil {
		countError("encode")
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}

	// Write response
	w.Header().Set("Content-Type", s.codec.ContentType())
	if _, err = w.Write(data); err != nil {
		Logger.Errorf("failed to write response: %v", err)
	}
}

// dispatch decodes one request, runs it against the named dataset under the
// dataset's lock and returns the response message.
func (s *DataServer) dispatch(name string, body []byte, start time.Time) *common.Message {
	// Get appropriate dataset
	ds, ok := s.datasets.Load(name)

	// Case dataset does not exist -> error
	if !ok {
		countError("unknown_dataset")
		return common.NewErrorResponse(fmt.Sprintf("dataset %q not found", name))
	}

	// Decode the request
	var req common.Message
	if err := s.codec.Decode(body, &req); err != nil {
		countError("decode")
		return common.NewErrorResponse(fmt.Sprintf("failed to decode request: %s", err))
	}

	// The store requires external serialization, the per-dataset lock
	// provides it.
	s.locks.Lock(ds.name)
	resp := handle(&req, ds.store)
	s.locks.Unlock(ds.name)

	observe(ds.name, req.MsgType, start)
	return resp
}

func (s *DataServer) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	if _, err := w.Write([]byte("ok")); err != nil {
		Logger.Errorf("failed to write health response: %v", err)
	}
}

func (s *DataServer) handleMetrics(w http.ResponseWriter, _ *http.Request) {
	metrics.WritePrometheus(w, true)
}

// --------------------------------------------------------------------------
// Metrics
// --------------------------------------------------------------------------

// observe records one completed operation for a dataset.
func observe(dataset string, op common.MessageType, start time.Time) {
	labels := fmt.Sprintf(`dataset=%q,op=%q`, dataset, op.String())
	metrics.GetOrCreateCounter(fmt.Sprintf(`vanadium_requests_total{%s}`, labels)).Inc()
	metrics.GetOrCreateHistogram(fmt.Sprintf(`vanadium_request_duration_seconds{%s}`, labels)).UpdateDuration(start)
}

// countError records one request that never reached a store operation.
func countError(reason string) {
	metrics.GetOrCreateCounter(fmt.Sprintf(`vanadium_request_errors_total{reason=%q}`, reason)).Inc()
}

// --------------------------------------------------------------------------
// Middleware (logging)
// --------------------------------------------------------------------------

// responseWriter is a custom ResponseWriter that captures status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

// WriteHeader captures the status code before writing it
func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// loggerMiddleware is a middleware that logs HTTP requests
func loggerMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Create custom response writer to capture status code
		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		// Process request
		next.ServeHTTP(rw, r)

		// Log the request
		duration := time.Since(start)
		Logger.Debugf("%s %s => %d took %s", r.Method, r.URL.Path, rw.statusCode, duration)
	}
}
