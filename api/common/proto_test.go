package common

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestMessageTypeJSONRoundTrip(t *testing.T) {
	types := []MessageType{
		MsgTError, MsgTLookup, MsgTInsert, MsgTUpdate,
		MsgTUpsert, MsgTRemove, MsgTKeys, MsgTValues,
	}

	for _, mt := range types {
		data, err := json.Marshal(mt)
		if err != nil {
			t.Fatalf("Expected marshal of %s to succeed, got %v", mt, err)
		}

		var decoded MessageType
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("Expected unmarshal of %s to succeed, got %v", data, err)
		}
		if decoded != mt {
			t.Errorf("Expected %s to round-trip, got %s", mt, decoded)
		}
	}
}

func TestMessageTypeUnknownString(t *testing.T) {
	var mt MessageType
	if err := json.Unmarshal([]byte(`"compact"`), &mt); err == nil {
		t.Errorf("Expected unmarshal of unknown type to fail")
	}
	if MessageType(250).String() != "unknown" {
		t.Errorf("Expected out-of-range type to stringify as unknown")
	}
}

func TestResponseFactories(t *testing.T) {
	resp := NewLookupResponse([]byte("v"), true, nil)
	if resp.MsgType != MsgTLookup || !resp.Ok || resp.Err != "" {
		t.Errorf("Expected clean lookup response, got %+v", resp)
	}

	resp = NewInsertResponse("", false, errors.New("boom"))
	if resp.Err != "boom" {
		t.Errorf("Expected error to be carried, got %q", resp.Err)
	}

	resp = NewErrorResponse("bad request")
	if resp.MsgType != MsgTError || resp.Err != "bad request" {
		t.Errorf("Expected error response, got %+v", resp)
	}
}

func TestRequestFactories(t *testing.T) {
	if req := NewInsertRequest("", []byte("v")); req.Key != "" || req.MsgType != MsgTInsert {
		t.Errorf("Expected keyless insert request, got %+v", req)
	}
	if req := NewKeysRequest(); req.MsgType != MsgTKeys || req.Key != "" {
		t.Errorf("Expected bare keys request, got %+v", req)
	}
	if req := NewRemoveRequest("k"); req.Key != "k" {
		t.Errorf("Expected remove request for k, got %+v", req)
	}
}
