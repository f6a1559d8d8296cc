package query

import (
	"google.golang.org/protobuf/encoding/protowire"
)

// SmartContractStatePath is the gRPC method, and ABCI query path, of a wasm smart query
const SmartContractStatePath = "/cosmwasm.wasm.v1.Query/SmartContractState"

// Field numbers of cosmwasm.wasm.v1.QuerySmartContractStateRequest/Response
const (
	requestAddressField   protowire.Number = 1
	requestQueryDataField protowire.Number = 2
	responseDataField     protowire.Number = 1
)

// marshalSmartQueryRequest encodes a QuerySmartContractStateRequest
func marshalSmartQueryRequest(contract string, queryData []byte) []byte {
	var b []byte
	b = protowire.AppendTag(b, requestAddressField, protowire.BytesType)
	b = protowire.AppendString(b, contract)
	b = protowire.AppendTag(b, requestQueryDataField, protowire.BytesType)
	b = protowire.AppendBytes(b, queryData)
	return b
}

// unmarshalSmartQueryResponse returns the data field of a
// QuerySmartContractStateResponse, which is the contract's json reply
func unmarshalSmartQueryResponse(b []byte) ([]byte, error) {
	var data []byte
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, protowire.ParseError(n)
		}
		b = b[n:]

		if num == responseDataField && typ == protowire.BytesType {
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return nil, protowire.ParseError(n)
			}
			data = append(data[:0], v...)
			b = b[n:]
			continue
		}

		n = protowire.ConsumeFieldValue(num, typ, b)
		if n < 0 {
			return nil, protowire.ParseError(n)
		}
		b = b[n:]
	}
	return data, nil
}

// rawCodec passes pre-encoded protobuf bytes through gRPC untouched
type rawCodec struct{}

func (rawCodec) Marshal(v interface{}) ([]byte, error) {
	b, ok := v.(*[]byte)
	if !ok {
		return nil, errUnexpectedMessage
	}
	return *b, nil
}

func (rawCodec) Unmarshal(data []byte, v interface{}) error {
	b, ok := v.(*[]byte)
	if !ok {
		return errUnexpectedMessage
	}
	*b = append((*b)[:0], data...)
	return nil
}

// Name keeps the proto content subtype so servers treat the call as protobuf
func (rawCodec) Name() string { return "proto" }

func (rawCodec) String() string { return "proto" }
