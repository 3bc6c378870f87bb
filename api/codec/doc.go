// Package codec provides message encoding for the data server's HTTP API.
// It defines a common interface and multiple implementations for converting
// between Message values and the byte payloads exchanged by client and
// server.
//
// The package focuses on:
//   - Providing a consistent interface for different wire formats
//   - Offering multiple implementations with different performance
//     characteristics
//   - Supporting efficient encoding of the system's message structure,
//     including the key and value listings
//
// Key Components:
//
//   - ICodec: Core interface that all codec implementations must satisfy.
//     Besides encoding and decoding it reports the Content-Type the format
//     travels under.
//
//   - binaryCodecImpl: Custom binary format implementation optimized for
//     speed and space efficiency. Uses a flag-based approach to encode only
//     present fields, with length-prefixed entries for the listing fields.
//
//   - gobCodecImpl: Implementation using Go's built-in gob encoding,
//     offering good compatibility with Go's type system but with larger
//     payload sizes.
//
//   - jsonCodecImpl: Implementation using JSON encoding, useful for
//     debugging or interoperability with other systems, but with lower
//     performance.
//
// Thread Safety:
//
//	All codec implementations are stateless and safe for concurrent use
//	across multiple goroutines without additional synchronization.
//
// Usage:
//
//	Codecs are typically created once and reused throughout the application:
//
//	  c := codec.NewBinaryCodec()
//	  data, err := c.Encode(message)
//	  // ... send data ...
//	  var receivedMsg common.Message
//	  err = c.Decode(receivedData, &receivedMsg)
package codec
