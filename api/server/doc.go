// Package server implements the HTTP data server. It serves one or more
// named datasets, each an independent key-value namespace backed by its own
// store, and routes decoded request messages to store operations.
//
// The package focuses on:
//   - Serving the message protocol over HTTP with a pluggable codec
//   - Per-dataset serialization of store access through a lock manager,
//     since the stores themselves carry no locking
//   - Operational endpoints for health checking and Prometheus metrics
//
// Key Components:
//
//   - DataServer: The server itself. Created from a ServerConfig and a
//     codec, it builds one store per configured dataset, all sharing a
//     single identifier source so generated keys never collide across
//     datasets.
//
//   - Handler: The http.Handler wiring. Requests are POSTed to /{dataset}
//     with an encoded Message body, responses travel the same way. GET
//     /healthz and GET /metrics serve liveness and metrics.
//
// Usage Example:
//
//	// Create server configuration
//	config := common.ServerConfig{
//	  Datasets:      []string{"registrations"},
//	  IDSource:      "timestamp",
//	  Endpoint:      "0.0.0.0:8080",
//	  TimeoutSecond: 10,
//	  LogLevel:      "info",
//	}
//
//	// Create and start the server
//	s, err := server.NewDataServer(config, codec.NewJSONCodec())
//	if err != nil {
//	  log.Fatalf("Server error: %v", err)
//	}
//
//	// Start the server
//	if err := s.Serve(); err != nil {
//	  log.Fatalf("Server error: %v", err)
//	}
package server
