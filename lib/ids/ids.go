package ids

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/ion-oset/electorate-vanadium-core/lib/store"
)

// ---------------------------------------------------------------------------
// Timestamp Source
// ---------------------------------------------------------------------------

// NewTimestampSource creates a store.IDSource that issues identifiers of the
// form
//
//	<16 hex ns timestamp>-<8 hex source discriminator>-<16 hex counter>
//
// The timestamp keeps identifiers roughly ordered by creation time, the
// discriminator separates sources created within the same process, and the
// strictly increasing counter makes identifiers from one source unique even
// when issued within the same nanosecond.
//
// Thread-safety: the returned source is safe for concurrent use.
func NewTimestampSource() store.IDSource {
	return &timestampSource{discriminator: randomDiscriminator()}
}

type timestampSource struct {
	discriminator uint32
	counter       atomic.Uint64
}

func (s *timestampSource) NextID() string {
	return fmt.Sprintf("%016x-%08x-%016x",
		uint64(time.Now().UnixNano()), s.discriminator, s.counter.Add(1))
}

// randomDiscriminator generates a random per-source discriminator
func randomDiscriminator() uint32 {
	var b [4]byte
	_, err := rand.Read(b[:])
	if err != nil {
		// fall back to the clock, only as a last resort
		return uint32(time.Now().UnixNano())
	}
	return binary.LittleEndian.Uint32(b[:])
}

// ---------------------------------------------------------------------------
// UUID Source
// ---------------------------------------------------------------------------

// NewUUIDSource creates a store.IDSource that issues random (version 4)
// UUID strings.
//
// Thread-safety: the returned source is safe for concurrent use.
func NewUUIDSource() store.IDSource {
	return &uuidSource{}
}

type uuidSource struct{}

func (s *uuidSource) NextID() string {
	return uuid.NewString()
}

// ---------------------------------------------------------------------------
// Factory
// ---------------------------------------------------------------------------

// NewSource creates an identifier source by its configuration name.
func NewSource(name string) (store.IDSource, error) {
	switch name {
	case "timestamp":
		return NewTimestampSource(), nil
	case "uuid":
		return NewUUIDSource(), nil
	default:
		return nil, fmt.Errorf("invalid id source %s (expected one of: timestamp, uuid)", name)
	}
}
