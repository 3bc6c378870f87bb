package server

import (
	"fmt"

	"github.com/ion-oset/electorate-vanadium-core/api/common"
	"github.com/ion-oset/electorate-vanadium-core/lib/store"
)

// handle executes one decoded request against a dataset's store and builds
// the response message. The caller must hold the dataset's lock.
func handle(req *common.Message, st *store.Store[[]byte]) *common.Message {
	// Check for nil store
	if st == nil {
		return common.NewErrorResponse("handler: store is nil")
	}

	// Handle different message types
	switch req.MsgType {
	case common.MsgTLookup:
		value, ok := st.Lookup(req.Key)
		return common.NewLookupResponse(value, ok, nil)
	case common.MsgTInsert:
		key, ok := st.Insert(req.Key, req.Value)
		return common.NewInsertResponse(key, ok, nil)
	case common.MsgTUpdate:
		value, ok := st.Update(req.Key, req.Value)
		return common.NewUpdateResponse(value, ok, nil)
	case common.MsgTUpsert:
		key := st.Upsert(req.Key, req.Value)
		return common.NewUpsertResponse(key, nil)
	case common.MsgTRemove:
		value, ok := st.Remove(req.Key)
		return common.NewRemoveResponse(value, ok, nil)
	case common.MsgTKeys:
		return common.NewKeysResponse(st.Keys(), nil)
	case common.MsgTValues:
		return common.NewValuesResponse(st.Values(), nil)
	default:
		return common.NewErrorResponse(
			fmt.Sprintf("handler: unsupported message type: %s", req.MsgType),
		)
	}
}
