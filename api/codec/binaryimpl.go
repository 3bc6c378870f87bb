package codec

import (
	"encoding/binary"
	"fmt"

	"github.com/ion-oset/electorate-vanadium-core/api/common"
)

// NewBinaryCodec creates a new codec using a custom binary format
// optimized for speed and efficiency
func NewBinaryCodec() ICodec {
	return &binaryCodecImpl{}
}

// binaryCodecImpl implements ICodec using a custom binary format
type binaryCodecImpl struct {
}

// Bit flags to indicate which optional fields are present
const (
	hasKey    byte = 1 << 0
	hasValue  byte = 1 << 1
	hasKeys   byte = 1 << 2
	hasValues byte = 1 << 3
	hasOk     byte = 1 << 4
	hasErr    byte = 1 << 5
)

// --------------------------------------------------------------------------
// Interface Methods (docu see codec.ICodec)
// --------------------------------------------------------------------------

func (b binaryCodecImpl) Encode(msg common.Message) ([]byte, error) {
	// Calculate total size needed
	totalSize := b.sizeBytes(msg)
	result := make([]byte, totalSize)

	// Write message type
	result[0] = byte(msg.MsgType)

	// Initialize flags byte
	var flags byte = 0

	// Set position for writing
	pos := 2 // Start after MsgType and flags

	// Handle Key
	if msg.Key != "" {
		flags |= hasKey
		keyBytes := []byte(msg.Key)
		keyLen := len(keyBytes)

		// Write key length
		binary.BigEndian.PutUint32(result[pos:pos+4], uint32(keyLen))
		pos += 4

		// Write key data
		copy(result[pos:pos+keyLen], keyBytes)
		pos += keyLen
	}

	// Handle Value
	if msg.Value != nil {
		flags |= hasValue
		valueLen := len(msg.Value)

		// Write value length
		binary.BigEndian.PutUint32(result[pos:pos+4], uint32(valueLen))
		pos += 4

		// Write value data
		if valueLen > 0 {
			copy(result[pos:pos+valueLen], msg.Value)
			pos += valueLen
		}
	}

	// Handle Keys list
	if msg.Keys != nil {
		flags |= hasKeys

		// Write entry count
		binary.BigEndian.PutUint32(result[pos:pos+4], uint32(len(msg.Keys)))
		pos += 4

		// Write entries, each length-prefixed
		for _, key := range msg.Keys {
			keyLen := len(key)
			binary.BigEndian.PutUint32(result[pos:pos+4], uint32(keyLen))
			pos += 4
			copy(result[pos:pos+keyLen], key)
			pos += keyLen
		}
	}

	// Handle Values list
	if msg.Values != nil {
		flags |= hasValues

		// Write entry count
		binary.BigEndian.PutUint32(result[pos:pos+4], uint32(len(msg.Values)))
		pos += 4

		// Write entries, each length-prefixed
		for _, value := range msg.Values {
			valueLen := len(value)
			binary.BigEndian.PutUint32(result[pos:pos+4], uint32(valueLen))
			pos += 4
			if valueLen > 0 {
				copy(result[pos:pos+valueLen], value)
				pos += valueLen
			}
		}
	}

	// Handle Ok
	if msg.Ok {
		flags |= hasOk
		result[pos] = 1
		pos += 1
	}

	// Handle Err
	if msg.Err != "" {
		flags |= hasErr
		errBytes := []byte(msg.Err)
		errLen := len(errBytes)

		// Write error length
		binary.BigEndian.PutUint32(result[pos:pos+4], uint32(errLen))
		pos += 4

		// Write error data
		copy(result[pos:pos+errLen], errBytes)
		pos += errLen
	}

	// Set flags byte after knowing which fields are present
	result[1] = flags

	return result, nil
}

func (b binaryCodecImpl) Decode(data []byte, msg *common.Message) error {
	// Check minimum size (MsgType + flags)
	if len(data) < 2 {
		return fmt.Errorf("data too short for message header")
	}

	// Read message type
	msg.MsgType = common.MessageType(data[0])

	// Read flags
	flags := data[1]

	// Initialize read position
	pos := 2

	// Read Key if present
	if flags&hasKey != 0 {
		if pos+4 > len(data) {
			return fmt.Errorf("data too short for key length")
		}

		// Read key length
		keyLen := binary.BigEndian.Uint32(data[pos : pos+4])
		pos += 4

		if pos+int(keyLen) > len(data) {
			return fmt.Errorf("data too short for key data")
		}

		// Read key data
		msg.Key = string(data[pos : pos+int(keyLen)])
		pos += int(keyLen)
	} else {
		msg.Key = ""
	}

	// Read Value if present
	if flags&hasValue != 0 {
		if pos+4 > len(data) {
			return fmt.Errorf("data too short for value length")
		}

		// Read value length
		valueLen := binary.BigEndian.Uint32(data[pos : pos+4])
		pos += 4

		if pos+int(valueLen) > len(data) {
			return fmt.Errorf("data too short for value data")
		}

		// Read value data - create an empty slice (not nil) if length is 0
		// Allocate only if needed
		if msg.Value == nil || cap(msg.Value) < int(valueLen) {
			msg.Value = make([]byte, valueLen)
		} else {
			msg.Value = msg.Value[:valueLen]
		}

		if valueLen > 0 {
			copy(msg.Value, data[pos:pos+int(valueLen)])
		}
		pos += int(valueLen)
	} else {
		msg.Value = nil
	}

	// Read Keys list if present
	if flags&hasKeys != 0 {
		if pos+4 > len(data) {
			return fmt.Errorf("data too short for key count")
		}

		// Read entry count
		count := binary.BigEndian.Uint32(data[pos : pos+4])
		pos += 4

		// Every entry carries at least its own length prefix
		if int64(count)*4 > int64(len(data)-pos) {
			return fmt.Errorf("key count %d exceeds remaining data", count)
		}

		msg.Keys = make([]string, count)
		for i := range msg.Keys {
			if pos+4 > len(data) {
				return fmt.Errorf("data too short for key length")
			}
			keyLen := binary.BigEndian.Uint32(data[pos : pos+4])
			pos += 4

			if pos+int(keyLen) > len(data) {
				return fmt.Errorf("data too short for key data")
			}
			msg.Keys[i] = string(data[pos : pos+int(keyLen)])
			pos += int(keyLen)
		}
	} else {
		msg.Keys = nil
	}

	// Read Values list if present
	if flags&hasValues != 0 {
		if pos+4 > len(data) {
			return fmt.Errorf("data too short for value count")
		}

		// Read entry count
		count := binary.BigEndian.Uint32(data[pos : pos+4])
		pos += 4

		// Every entry carries at least its own length prefix
		if int64(count)*4 > int64(len(data)-pos) {
			return fmt.Errorf("value count %d exceeds remaining data", count)
		}

		msg.Values = make([][]byte, count)
		for i := range msg.Values {
			if pos+4 > len(data) {
				return fmt.Errorf("data too short for value length")
			}
			valueLen := binary.BigEndian.Uint32(data[pos : pos+4])
			pos += 4

			if pos+int(valueLen) > len(data) {
				return fmt.Errorf("data too short for value data")
			}
			msg.Values[i] = make([]byte, valueLen)
			if valueLen > 0 {
				copy(msg.Values[i], data[pos:pos+int(valueLen)])
			}
			pos += int(valueLen)
		}
	} else {
		msg.Values = nil
	}

	// Read Ok if present
	if flags&hasOk != 0 {
		if pos+1 > len(data) {
			return fmt.Errorf("data too short for Ok flag")
		}

		msg.Ok = data[pos] != 0
		pos += 1
	} else {
		msg.Ok = false
	}

	// Read Err if present
	if flags&hasErr != 0 {
		if pos+4 > len(data) {
			return fmt.Errorf("data too short for error length")
		}

		// Read error length
		errLen := binary.BigEndian.Uint32(data[pos : pos+4])
		pos += 4

		if pos+int(errLen) > len(data) {
			return fmt.Errorf("data too short for error data")
		}

		// Read error data
		msg.Err = string(data[pos : pos+int(errLen)])
		pos += int(errLen)
	} else {
		msg.Err = ""
	}

	return nil
}

func (b binaryCodecImpl) ContentType() string {
	return "application/octet-stream"
}

// --------------------------------------------------------------------------
// Helper Methods
// --------------------------------------------------------------------------

// sizeBytes calculates the total size needed for serialization
func (b binaryCodecImpl) sizeBytes(msg common.Message) int {
	// 1 byte for MsgType + 1 byte for flags
	size := 2

	// Add sizes for fields that require length encoding
	if msg.Key != "" {
		size += 4 + len(msg.Key) // 4 bytes for length + key string
	}
	if msg.Value != nil {
		size += 4 + len(msg.Value) // 4 bytes for length + value bytes
	}
	if msg.Keys != nil {
		size += 4 // 4 bytes for entry count
		for _, key := range msg.Keys {
			size += 4 + len(key)
		}
	}
	if msg.Values != nil {
		size += 4 // 4 bytes for entry count
		for _, value := range msg.Values {
			size += 4 + len(value)
		}
	}
	if msg.Ok {
		size += 1 // 1 byte for boolean
	}
	if msg.Err != "" {
		size += 4 + len(msg.Err) // 4 bytes for length + error string
	}

	return size
}
