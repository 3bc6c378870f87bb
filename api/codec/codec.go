package codec

import (
	"fmt"

	"github.com/ion-oset/electorate-vanadium-core/api/common"
)

// ICodec is the interface for all Message codecs
type ICodec interface {
	// Encode serializes a Message into a byte array
	// It returns the serialized byte array and an error if any
	Encode(msg common.Message) ([]byte, error)
	// Decode deserializes a byte array into a Message
	// It takes a byte array and a pointer to a Message as parameters
	// It returns an error if any
	Decode(b []byte, msg *common.Message) error
	// ContentType returns the MIME type advertised for payloads produced
	// by Encode
	ContentType() string
}

// New creates a codec by its configuration name.
func New(name string) (ICodec, error) {
	switch name {
	case "json":
		return NewJSONCodec(), nil
	case "gob":
		return NewGOBCodec(), nil
	case "binary":
		return NewBinaryCodec(), nil
	default:
		return nil, fmt.Errorf("invalid codec %s (expected one of: json, gob, binary)", name)
	}
}
