package codec

import (
	"reflect"
	"testing"

	"github.com/ion-oset/electorate-vanadium-core/api/common"
)

// testCodecs is a map of codec name to factory function
var testCodecs = map[string]func() ICodec{
	"JSON":   NewJSONCodec,
	"GOB":    NewGOBCodec,
	"Binary": NewBinaryCodec,
}

// testMessages creates a set of test messages with different fields filled
func testMessages() []common.Message {
	return []common.Message{
		// Basic message with just a type
		{MsgType: common.MsgTLookup},

		// Lookup request
		{
			MsgType: common.MsgTLookup,
			Key:     "test-key",
		},

		// Insert request
		{
			MsgType: common.MsgTInsert,
			Key:     "test-key",
			Value:   []byte("test-value"),
		},

		// Lookup response
		{
			MsgType: common.MsgTLookup,
			Value:   []byte("test-value"),
			Ok:      true,
		},

		// Keys response
		{
			MsgType: common.MsgTKeys,
			Keys:    []string{"alpha", "beta", "gamma"},
		},

		// Values response
		{
			MsgType: common.MsgTValues,
			Values:  [][]byte{[]byte("one"), []byte("two"), []byte("three")},
		},

		// Error response
		{
			MsgType: common.MsgTError,
			Err:     "test error message",
		},

		// Message with all fields filled
		{
			MsgType: common.MsgTUpsert,
			Key:     "test-upsert-key",
			Value:   []byte("test-upsert-value"),
			Keys:    []string{"a", "b"},
			Values:  [][]byte{[]byte("x"), []byte("y")},
			Ok:      true,
			Err:     "",
		},
	}
}

// TestCodecRoundTrip tests that messages can be encoded and decoded correctly
func TestCodecRoundTrip(t *testing.T) {
	messages := testMessages()

	for name, factory := range testCodecs {
		t.Run(name, func(t *testing.T) {
			c := factory()

			for i, msg := range messages {
				// Encode
				data, err := c.Encode(msg)
				if err != nil {
					t.Errorf("Failed to encode message %d: %v", i, err)
					continue
				}

				// Decode
				var result common.Message
				err = c.Decode(data, &result)
				if err != nil {
					t.Errorf("Failed to decode message %d: %v", i, err)
					continue
				}

				// Compare
				if !reflect.DeepEqual(msg, result) {
					t.Errorf("Message %d doesn't match after round trip:\nOriginal: %+v\nResult: %+v",
						i, msg, result)
				}
			}
		})
	}
}

// TestMessageTypes tests each message type with each codec
func TestMessageTypes(t *testing.T) {
	for name, factory := range testCodecs {
		t.Run(name, func(t *testing.T) {
			c := factory()

			// Test each message type (don't test MsgTUnknown since this should raise an error)
			for msgType := common.MsgTError; msgType <= common.MsgTValues; msgType++ {
				msg := common.Message{MsgType: msgType}

				// Encode
				data, err := c.Encode(msg)
				if err != nil {
					t.Errorf("Failed to encode message type %s: %v", msgType.String(), err)
					continue
				}

				// Decode
				var result common.Message
				err = c.Decode(data, &result)
				if err != nil {
					t.Errorf("Failed to decode message type %s: %v", msgType.String(), err)
					continue
				}

				// Check type
				if result.MsgType != msgType {
					t.Errorf("Message type doesn't match after round trip: Expected %s, got %s",
						msgType.String(), result.MsgType.String())
				}
			}
		})
	}
}

// TestContentTypes checks the advertised MIME type per codec
func TestContentTypes(t *testing.T) {
	want := map[string]string{
		"JSON":   "application/json",
		"GOB":    "application/x-gob",
		"Binary": "application/octet-stream",
	}
	for name, factory := range testCodecs {
		if got := factory().ContentType(); got != want[name] {
			t.Errorf("Expected content type %s for %s, got %s", want[name], name, got)
		}
	}
}

// TestBinaryCodecSpecific tests specific edge cases for the binary codec
func TestBinaryCodecSpecific(t *testing.T) {
	c := NewBinaryCodec()

	// Test cases for empty or zero values
	testCases := []struct {
		name string
		msg  common.Message
	}{
		{
			name: "Empty message",
			msg:  common.Message{},
		},
		{
			name: "Message with empty strings and zero values",
			msg: common.Message{
				MsgType: common.MsgTInsert,
				Key:     "",
				Value:   []byte{},
				Ok:      false,
				Err:     "",
			},
		},
		{
			name: "Message with empty key but Ok=true",
			msg: common.Message{
				MsgType: common.MsgTLookup,
				Key:     "",
				Ok:      true,
				Value:   nil,
			},
		},
		{
			name: "Message with empty value slice but not nil",
			msg: common.Message{
				MsgType: common.MsgTUpsert,
				Key:     "test",
				Value:   []byte{},
			},
		},
		{
			name: "Message with empty listings but not nil",
			msg: common.Message{
				MsgType: common.MsgTKeys,
				Keys:    []string{},
				Values:  [][]byte{},
			},
		},
		{
			name: "Message with empty entries inside listings",
			msg: common.Message{
				MsgType: common.MsgTValues,
				Keys:    []string{"", "non-empty", ""},
				Values:  [][]byte{[]byte("data"), {}},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Encode
			data, err := c.Encode(tc.msg)
			if err != nil {
				t.Fatalf("Failed to encode: %v", err)
			}

			// Decode
			var result common.Message
			err = c.Decode(data, &result)
			if err != nil {
				t.Fatalf("Failed to decode: %v", err)
			}

			// Verify scalar fields
			if tc.msg.Key != result.Key {
				t.Errorf("Key mismatch: expected '%s', got '%s'", tc.msg.Key, result.Key)
			}
			if tc.msg.Ok != result.Ok {
				t.Errorf("Ok mismatch: expected %v, got %v", tc.msg.Ok, result.Ok)
			}
			if tc.msg.Err != result.Err {
				t.Errorf("Err mismatch: expected '%s', got '%s'", tc.msg.Err, result.Err)
			}
			if tc.msg.MsgType != result.MsgType {
				t.Errorf("MsgType mismatch: expected %v, got %v", tc.msg.MsgType, result.MsgType)
			}

			// Byte slices may be nil or empty, which must be preserved
			if (tc.msg.Value == nil) != (result.Value == nil) {
				t.Errorf("Value nil/non-nil mismatch: expected %v, got %v", tc.msg.Value, result.Value)
			} else if len(tc.msg.Value) != len(result.Value) {
				t.Errorf("Value length mismatch: expected %d, got %d", len(tc.msg.Value), len(result.Value))
			}

			// Same nil/empty distinction for the listings
			if (tc.msg.Keys == nil) != (result.Keys == nil) {
				t.Errorf("Keys nil/non-nil mismatch: expected %v, got %v", tc.msg.Keys, result.Keys)
			} else if len(tc.msg.Keys) != len(result.Keys) {
				t.Errorf("Keys length mismatch: expected %d, got %d", len(tc.msg.Keys), len(result.Keys))
			} else {
				for i := range tc.msg.Keys {
					if tc.msg.Keys[i] != result.Keys[i] {
						t.Errorf("Keys content mismatch at index %d", i)
					}
				}
			}
			if (tc.msg.Values == nil) != (result.Values == nil) {
				t.Errorf("Values nil/non-nil mismatch: expected %v, got %v", tc.msg.Values, result.Values)
			} else if len(tc.msg.Values) != len(result.Values) {
				t.Errorf("Values length mismatch: expected %d, got %d", len(tc.msg.Values), len(result.Values))
			} else {
				for i := range tc.msg.Values {
					if string(tc.msg.Values[i]) != string(result.Values[i]) {
						t.Errorf("Values content mismatch at index %d", i)
					}
				}
			}
		})
	}
}

// TestInvalidBinaryData tests how the binary codec handles corrupt or invalid data
func TestInvalidBinaryData(t *testing.T) {
	c := NewBinaryCodec()

	testCases := []struct {
		name        string
		data        []byte
		expectError bool
	}{
		{
			name:        "Empty data",
			data:        []byte{},
			expectError: true,
		},
		{
			name:        "Too short header",
			data:        []byte{2}, // Only message type, no flags
			expectError: true,
		},
		{
			name:        "Valid header only",
			data:        []byte{2, 0}, // Message type 2, no flags
			expectError: false,
		},
		{
			name:        "Invalid length for key",
			data:        []byte{2, 1, 0, 0, 0, 5, 'a', 'b', 'c'}, // Claims key length 5 but only 3 bytes provided
			expectError: true,
		},
		{
			name:        "Invalid length for value",
			data:        []byte{2, 2, 0, 0, 0, 10}, // Claims value length 10 but no bytes provided
			expectError: true,
		},
		{
			name:        "Truncated key count",
			data:        []byte{2, 4, 0, 0}, // hasKeys set but count cut off
			expectError: true,
		},
		{
			name:        "Key count exceeding data",
			data:        []byte{2, 4, 255, 255, 255, 255}, // Claims ~4 billion keys
			expectError: true,
		},
		{
			name:        "Truncated list entry",
			data:        []byte{2, 8, 0, 0, 0, 1, 0, 0, 0, 9, 'x'}, // One value of claimed length 9, one byte provided
			expectError: true,
		},
		{
			name:        "Missing Ok byte",
			data:        []byte{2, 16}, // hasOk set but no payload
			expectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var msg common.Message
			err := c.Decode(tc.data, &msg)

			if tc.expectError && err == nil {
				t.Errorf("Expected error but got none")
			} else if !tc.expectError && err != nil {
				t.Errorf("Did not expect error but got: %v", err)
			}
		})
	}
}

// TestNewFactory tests codec construction by configuration name
func TestNewFactory(t *testing.T) {
	for _, name := range []string{"json", "gob", "binary"} {
		c, err := New(name)
		if err != nil {
			t.Errorf("Expected codec %s to be created, got error: %v", name, err)
		}
		if c == nil {
			t.Errorf("Expected non-nil codec for %s", name)
		}
	}

	if _, err := New("xml"); err == nil {
		t.Errorf("Expected error for unknown codec name")
	}
}
