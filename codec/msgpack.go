package codec

import (
	"bytes"

	"github.com/vmihailenco/msgpack/v5"
)

// MessagePack encodes documents as MessagePack with sorted map keys.
type MessagePack struct{}

func (MessagePack) Encode(doc map[string]any) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetSortMapKeys(true)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (MessagePack) Name() string { return "msgpack" }
