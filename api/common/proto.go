package common

import (
	"encoding/json"
	"fmt"
)

// --------------------------------------------------------------------------
// Message Structure
// --------------------------------------------------------------------------

// Message represents a single message used for both requests and responses.
// Which fields are used depends on the type of message.
type Message struct {
	// Type of message
	MsgType MessageType `json:"msg_type"`

	// General fields
	Key   string `json:"key,omitempty"`   // Used for: Lookup, Insert, Update, Upsert, Remove requests; Insert, Upsert responses (effective key)
	Value []byte `json:"value,omitempty"` // Used for: Insert, Update, Upsert requests; Lookup, Update, Remove responses

	// Listing fields
	Keys   []string `json:"keys,omitempty"`   // Used for: Keys responses
	Values [][]byte `json:"values,omitempty"` // Used for: Values responses

	// Response only fields
	Ok  bool   `json:"ok,omitempty"`  // Present/conflict signal, see the factory functions
	Err string `json:"err,omitempty"` // Empty if no error, otherwise contains the error message
}

// --------------------------------------------------------------------------
// Message Factory Functions
// --------------------------------------------------------------------------

// NewLookupRequest creates a new Lookup request
func NewLookupRequest(key string) *Message {
	return &Message{
		MsgType: MsgTLookup,
		Key:     key,
	}
}

// NewLookupResponse creates a new Lookup response. Ok reports whether the
// key was present.
func NewLookupResponse(value []byte, ok bool, err error) *Message {
	msg := &Message{
		MsgType: MsgTLookup,
		Value:   value,
		Ok:      ok,
	}
	if err != nil {
		msg.Err = err.Error()
	}
	return msg
}

// NewInsertRequest creates a new Insert request. An empty key asks the
// server to generate one.
func NewInsertRequest(key string, value []byte) *Message {
	return &Message{
		MsgType: MsgTInsert,
		Key:     key,
		Value:   value,
	}
}

// NewInsertResponse creates a new Insert response. Key carries the
// effective key, Ok is false if the key was already taken.
func NewInsertResponse(key string, ok bool, err error) *Message {
	msg := &Message{
		MsgType: MsgTInsert,
		Key:     key,
		Ok:      ok,
	}
	if err != nil {
		msg.Err = err.Error()
	}
	return msg
}

// NewUpdateRequest creates a new Update request
func NewUpdateRequest(key string, value []byte) *Message {
	return &Message{
		MsgType: MsgTUpdate,
		Key:     key,
		Value:   value,
	}
}

// NewUpdateResponse creates a new Update response. Value carries the new
// value, Ok is false if the key was absent.
func NewUpdateResponse(value []byte, ok bool, err error) *Message {
	msg := &Message{
		MsgType: MsgTUpdate,
		Value:   value,
		Ok:      ok,
	}
	if err != nil {
		msg.Err = err.Error()
	}
	return msg
}

// NewUpsertRequest creates a new Upsert request. An empty key asks the
// server to generate one.
func NewUpsertRequest(key string, value []byte) *Message {
	return &Message{
		MsgType: MsgTUpsert,
		Key:     key,
		Value:   value,
	}
}

// NewUpsertResponse creates a new Upsert response carrying the effective key.
func NewUpsertResponse(key string, err error) *Message {
	msg := &Message{
		MsgType: MsgTUpsert,
		Key:     key,
	}
	if err != nil {
		msg.Err = err.Error()
	}
	return msg
}

// NewRemoveRequest creates a new Remove request
func NewRemoveRequest(key string) *Message {
	return &Message{
		MsgType: MsgTRemove,
		Key:     key,
	}
}

// NewRemoveResponse creates a new Remove response. Value carries the
// removed value, Ok is false if the key was absent.
func NewRemoveResponse(value []byte, ok bool, err error) *Message {
	msg := &Message{
		MsgType: MsgTRemove,
		Value:   value,
		Ok:      ok,
	}
	if err != nil {
		msg.Err = err.Error()
	}
	return msg
}

// NewKeysRequest creates a new Keys request
func NewKeysRequest() *Message {
	return &Message{
		MsgType: MsgTKeys,
	}
}

// NewKeysResponse creates a new Keys response
func NewKeysResponse(keys []string, err error) *Message {
	msg := &Message{
		MsgType: MsgTKeys,
		Keys:    keys,
	}
	if err != nil {
		msg.Err = err.Error()
	}
	return msg
}

// NewValuesRequest creates a new Values request
func NewValuesRequest() *Message {
	return &Message{
		MsgType: MsgTValues,
	}
}

// NewValuesResponse creates a new Values response
func NewValuesResponse(values [][]byte, err error) *Message {
	msg := &Message{
		MsgType: MsgTValues,
		Values:  values,
	}
	if err != nil {
		msg.Err = err.Error()
	}
	return msg
}

// NewErrorResponse creates a new Error response
func NewErrorResponse(err string) *Message {
	return &Message{
		MsgType: MsgTError,
		Err:     err,
	}
}

// --------------------------------------------------------------------------
// Message Type Definition
// --------------------------------------------------------------------------

// MessageType defines the type of message exchanged with the data server.
type MessageType uint8

// String returns the string representation of a MessageType.
func (t MessageType) String() string {
	switch t {
	case MsgTLookup:
		return "lookup"
	case MsgTInsert:
		return "insert"
	case MsgTUpdate:
		return "update"
	case MsgTUpsert:
		return "upsert"
	case MsgTRemove:
		return "remove"
	case MsgTKeys:
		return "keys"
	case MsgTValues:
		return "values"
	case MsgTError:
		return "error"
	default:
		return "unknown"
	}
}

// MarshalJSON implements the json.Marshaller interface for MessageType.
// This allows MessageType to be serialized as a string in JSON.
func (t MessageType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface for MessageType.
// This allows MessageType to be deserialized from a string in JSON.
func (t *MessageType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	// Convert string back to MessageType
	switch s {
	case "lookup":
		*t = MsgTLookup
	case "insert":
		*t = MsgTInsert
	case "update":
		*t = MsgTUpdate
	case "upsert":
		*t = MsgTUpsert
	case "remove":
		*t = MsgTRemove
	case "keys":
		*t = MsgTKeys
	case "values":
		*t = MsgTValues
	case "error":
		*t = MsgTError
	default:
		return fmt.Errorf("unknown message type: %s", s)
	}

	return nil
}

// --------------------------------------------------------------------------
// Message Type Constants
// --------------------------------------------------------------------------

const (
	// General message types

	MsgTUnknown MessageType = iota
	MsgTError               // Indicates an error occurred

	// Store operations

	MsgTLookup // Look up a value by key
	MsgTInsert // Insert a value, never overwriting
	MsgTUpdate // Replace the value of an existing key
	MsgTUpsert // Store a value unconditionally
	MsgTRemove // Remove a key and return its value
	MsgTKeys   // List all keys
	MsgTValues // List all values
)
