// Package api provides the remote access layer of the vanadium data
// service. It acts as the communication layer between clients and the
// server, carrying store operations across network boundaries.
//
// The package is organized into several subpackages:
//
//   - common: Core data structures and utilities used across the api,
//     including the Message protocol, configuration structures, and logging.
//
//   - codec: Message encoding with multiple format options (Binary, JSON, GOB)
//     for converting between Message objects and byte arrays.
//
//   - client: The data client and the registration workflow built on it,
//     allowing applications to interact with remote datasets transparently.
//
//   - server: The HTTP data server serving named datasets, including the
//     operation dispatch, health check and metrics endpoints.
package api
