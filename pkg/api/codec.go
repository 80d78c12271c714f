package api

import (
	"encoding/json"
	"fmt"
)

// CodecName is the Connect codec name the housesplit services speak.
// Requests are sent with Content-Type application/json.
const CodecName = "json"

// JSONCodec marshals the plain Go messages in this package. It replaces
// Connect's default "json" codec, which only accepts protobuf messages.
type JSONCodec struct{}

func (JSONCodec) Name() string { return CodecName }

func (JSONCodec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

func (JSONCodec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, msg); err != nil {
		return fmt.Errorf("unmarshal %T: %w", msg, err)
	}
	return nil
}
