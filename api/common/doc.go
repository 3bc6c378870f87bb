// Package common provides core data structures and utilities shared across
// the vanadium data service. It defines fundamental types, configuration
// structures, and protocol elements used by other packages.
//
// The package focuses on:
//   - Message protocol definition for client/server communication
//   - Configuration structures for client and server components
//   - Leveled logging shared by all components
//
// Key Components:
//
//   - Message: Core data structure for all communication between components,
//     with a flexible structure that adapts to different operation types.
//     Includes factory methods for creating various request and response messages.
//
//   - MessageType: Enumeration defining all supported operation types of the
//     data service, mirroring the operations of the underlying store.
//
//   - ServerConfig: Configuration for the data server, including the served
//     datasets, key generation, network settings and the log level.
//
//   - ClientConfig: Configuration for client components, controlling connection
//     parameters, timeouts, and retry behavior.
//
//   - Logger: Named logger registry providing consistent formatting across
//     the application.
package common
