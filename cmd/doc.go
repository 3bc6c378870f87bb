// Package cmd implements the command-line interface for the vanadium data
// service. It provides a hierarchical command structure with operations for
// running the server and interacting with it as a client.
//
// The package is organized into several subpackages:
//
//   - ds: Commands for raw dataset operations (lookup, insert, upsert, etc.)
//   - reg: Commands for the voter registration workflow (submit, status, etc.)
//   - serve: Commands for starting and configuring the vanadium server
//   - util: Shared utilities for command-line processing and configuration (internal use)
//
// See vanadium -help for a list of all commands.
package cmd
